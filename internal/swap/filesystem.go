package swap

import (
	"io/fs"
	"os"
)

// FileSystem is the slice of file-system behavior the fallback rename
// sequence depends on. The default implementation passes straight through
// to the os package; tests substitute a mock to drive the sequence through
// each of its failure windows.
type FileSystem interface {
	// Rename renames (moves) oldpath to newpath with os.Rename semantics.
	Rename(oldpath, newpath string) error

	// Lstat returns information about the entry at path without following
	// symbolic links.
	Lstat(path string) (fs.FileInfo, error)
}

// osFS implements FileSystem using the local disk
var defaultFS FileSystem = osFS{}

type osFS struct{}

func (osFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (osFS) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}
