// Package safeio reads small files while refusing symbolic links, so a
// planted link cannot redirect a read to a file the user never named.
package safeio

import (
	"errors"
	"fmt"
	"io"
)

// MaxFileSize caps how many bytes ReadFile accepts (1 MiB). The files
// read through this package are small configs; anything larger is a
// mistake or an attack.
const MaxFileSize = 1 << 20

var (
	// ErrIsSymlink indicates that the path names a symbolic link.
	ErrIsSymlink = errors.New("path is a symbolic link")

	// ErrFileTooLarge indicates that the file exceeds MaxFileSize.
	ErrFileTooLarge = errors.New("file too large")

	// ErrNotRegular indicates that the path names something other than a
	// regular file, such as a device or a pipe.
	ErrNotRegular = errors.New("not a regular file")
)

// ReadFile reads the regular file at path. A symbolic link at the final
// component is refused. Type and size are checked on the open descriptor,
// so a concurrent replace cannot bypass them.
func ReadFile(path string) ([]byte, error) {
	file, err := openNoFollow(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, path)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, path)
	}

	content, err := io.ReadAll(io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if int64(len(content)) > MaxFileSize {
		return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, path)
	}
	return content, nil
}
