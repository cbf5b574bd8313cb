//go:build unix

// Package swap exchanges the names of two file-system entries.
//
// This file detects cross-device rename failures on Unix platforms.
package swap

import (
	"errors"
	"os"
	"syscall"
)

// IsCrossDevice reports whether err is a rename failure caused by the two
// paths living on different filesystems. Renames never cross a device
// boundary and neither does the exchange, so callers use this to report
// the condition precisely instead of folding it into unknown failures.
func IsCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		return false
	}
	return errors.Is(linkErr.Err, syscall.EXDEV)
}
