//go:build unix

package safeio

import (
	"fmt"
	"os"
	"syscall"
)

// openNoFollow opens path read-only with O_NOFOLLOW, so a symbolic link
// at the final component is refused by the kernel instead of followed.
func openNoFollow(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_RDONLY|syscall.O_NOFOLLOW, 0)
	if err != nil {
		if isNoFollowError(err) {
			return nil, fmt.Errorf("%w: %s", ErrIsSymlink, path)
		}
		return nil, err
	}
	return file, nil
}
