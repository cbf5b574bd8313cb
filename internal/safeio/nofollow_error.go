//go:build unix && !netbsd

package safeio

import (
	"errors"
	"os"
	"syscall"
)

// isNoFollowError reports whether err is the kernel refusing to open a
// symbolic link under O_NOFOLLOW.
func isNoFollowError(err error) bool {
	var pathErr *os.PathError
	if !errors.As(err, &pathErr) {
		return false
	}
	return errors.Is(pathErr.Err, syscall.ELOOP) || errors.Is(pathErr.Err, syscall.EMLINK)
}
