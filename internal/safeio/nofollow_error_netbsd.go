//go:build netbsd

package safeio

import (
	"errors"
	"os"
	"syscall"
)

// isNoFollowError reports whether err is the kernel refusing to open a
// symbolic link under O_NOFOLLOW. NetBSD reports EFTYPE where other
// systems report ELOOP.
func isNoFollowError(err error) bool {
	var pathErr *os.PathError
	if !errors.As(err, &pathErr) {
		return false
	}
	return errors.Is(pathErr.Err, syscall.EFTYPE)
}
