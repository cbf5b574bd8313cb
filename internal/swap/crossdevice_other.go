//go:build !unix && !windows

// Package swap exchanges the names of two file-system entries.
//
// This file covers platforms without a defined cross-device error number.
package swap

// IsCrossDevice always reports false; the platform does not distinguish
// cross-device rename failures.
func IsCrossDevice(_ error) bool {
	return false
}
