//go:build linux || darwin

// Package swap exchanges the names of two file-system entries.
//
// This file selects the native implementation for platforms whose kernel
// can swap two directory entries in a single call.
package swap

const activeStrategy = StrategyNativeSwap

func exchangeInternal(path1, path2 string) error {
	return nativeSwap(path1, path2)
}
