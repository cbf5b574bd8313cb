package swap

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/oklog/ulid/v2"
)

// sentinelAttempts bounds how many candidate names are probed before the
// exchange is abandoned. With 80 bits of ULID entropy per candidate, more
// than one collision means something is squatting on the names.
const sentinelAttempts = 3

// ErrSentinelBusy indicates that no free sentinel name could be found.
var ErrSentinelBusy = errors.New("no free sentinel name")

// sentinelName returns an unused name in path's parent directory for
// parking the displaced entry during the rename sequence. Candidates have
// the form .<base>.exchange-<ULID>. The ULID keeps concurrent exchanges of
// the same path apart, and its leading timestamp lets leftovers from
// interrupted runs be ordered by age when cleaning up by hand.
//
// The existence probe and the later rename are not atomic. The window is
// accepted: landing on a name created in between requires guessing a fresh
// ULID, which does not happen by accident.
func sentinelName(path string, fsys FileSystem) (string, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	for i := 0; i < sentinelAttempts; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf(".%s.exchange-%s", base, ulid.Make()))
		_, err := fsys.Lstat(candidate)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return candidate, nil
		case err != nil:
			return "", fmt.Errorf("cannot probe sentinel name %s: %w", candidate, err)
		}
		// Name taken; try another.
	}
	return "", fmt.Errorf("%w for %s after %d attempts", ErrSentinelBusy, path, sentinelAttempts)
}
