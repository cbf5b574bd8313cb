//go:build !linux && !darwin

// Package swap exchanges the names of two file-system entries.
//
// This file selects the portable implementation for platforms without a
// native swap primitive: three renames through a sentinel name.
package swap

const activeStrategy = StrategyTempRename

func exchangeInternal(path1, path2 string) error {
	return renameSwapWithFS(path1, path2, defaultFS)
}
