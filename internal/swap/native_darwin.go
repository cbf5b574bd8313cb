//go:build darwin

// Package swap exchanges the names of two file-system entries.
//
// This file contains the macOS implementation using renameatx_np with
// RENAME_SWAP, the Darwin counterpart of Linux renameat2 RENAME_EXCHANGE.
package swap

import (
	"log/slog"
	"os"

	"golang.org/x/sys/unix"
)

// nativeSwap atomically exchanges path1 and path2. Relative paths resolve
// against the current working directory. Both entries must exist and must
// live on the same filesystem. Failures are reported as *os.LinkError,
// matching os.Rename, so callers classify them uniformly.
func nativeSwap(path1, path2 string) error {
	slog.Debug("Exchanging entries with renameatx_np",
		"path1", path1,
		"path2", path2)

	if err := unix.RenameatxNp(unix.AT_FDCWD, path1, unix.AT_FDCWD, path2, unix.RENAME_SWAP); err != nil {
		return &os.LinkError{Op: "renameatx_np", Old: path1, New: path2, Err: err}
	}
	return nil
}
