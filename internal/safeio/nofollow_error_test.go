//go:build unix && !netbsd

package safeio

import (
	"os"
	"syscall"
	"testing"
)

func TestIsNoFollowError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		// POSIX systems return ELOOP when opening a symlink with O_NOFOLLOW
		{
			name: "ELOOP error",
			err:  &os.PathError{Op: "open", Path: "/tmp/link", Err: syscall.ELOOP},
			want: true,
		},
		// FreeBSD returns EMLINK when opening a symlink with O_NOFOLLOW
		{
			name: "EMLINK error",
			err:  &os.PathError{Op: "open", Path: "/tmp/link", Err: syscall.EMLINK},
			want: true,
		},
		{
			name: "missing file",
			err:  &os.PathError{Op: "open", Path: "/tmp/gone", Err: syscall.ENOENT},
			want: false,
		},
		{
			name: "bare error",
			err:  os.ErrNotExist,
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNoFollowError(tt.err); got != tt.want {
				t.Errorf("isNoFollowError() = %v, want %v", got, tt.want)
			}
		})
	}
}
