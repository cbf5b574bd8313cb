//go:build linux

// Package swap exchanges the names of two file-system entries.
//
// This file contains the Linux implementation using renameat2 with
// RENAME_EXCHANGE, which atomically swaps two directory entries of any
// type as long as both live on the same filesystem.
package swap

import (
	"log/slog"
	"os"

	"golang.org/x/sys/unix"
)

// nativeSwap atomically exchanges path1 and path2. Relative paths resolve
// against the current working directory. Both entries must exist; unlike a
// plain rename there is no target to overwrite, only two names to swap.
// Failures are reported as *os.LinkError, matching os.Rename, so callers
// classify them uniformly.
func nativeSwap(path1, path2 string) error {
	slog.Debug("Exchanging entries with renameat2",
		"path1", path1,
		"path2", path2)

	if err := unix.Renameat2(unix.AT_FDCWD, path1, unix.AT_FDCWD, path2, unix.RENAME_EXCHANGE); err != nil {
		return &os.LinkError{Op: "renameat2", Old: path1, New: path2, Err: err}
	}
	return nil
}
