//go:build windows

// Package swap exchanges the names of two file-system entries.
//
// This file detects cross-volume rename failures on Windows.
package swap

import (
	"errors"
	"os"

	"golang.org/x/sys/windows"
)

// IsCrossDevice reports whether err is a rename failure caused by the two
// paths living on different volumes. MoveFileEx without MOVEFILE_COPY_ALLOWED
// reports ERROR_NOT_SAME_DEVICE in that case, and the exchange never copies.
func IsCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		return false
	}
	return errors.Is(linkErr.Err, windows.ERROR_NOT_SAME_DEVICE)
}
