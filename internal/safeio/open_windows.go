//go:build windows

package safeio

import (
	"fmt"
	"os"
)

// openNoFollow opens path read-only. Windows has no O_NOFOLLOW, so the
// link check is a separate Lstat before the open; the type and size
// checks still run on the opened descriptor.
func openNoFollow(path string) (*os.File, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return nil, fmt.Errorf("%w: %s", ErrIsSymlink, path)
	}
	return os.Open(path)
}
