//go:build !unix && !windows

package safeio

import "os"

// openNoFollow opens path read-only with a plain open on platforms
// without symbolic links.
func openNoFollow(path string) (*os.File, error) {
	return os.Open(path)
}
