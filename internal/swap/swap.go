// Package swap exchanges the names of two file-system entries.
//
// On Linux and macOS the exchange is a single kernel call and both names
// move indivisibly. Every other platform falls back to a sequence of three
// ordinary renames through a sentinel name, which leaves short windows
// where a concurrent observer can see one of the names missing. Active
// reports which implementation the running binary carries.
//
// The package operates on names, not contents: callers pass paths exactly
// as they should reach rename(2), and failures come back as the raw
// platform errors (or a *StrandedError when the fallback sequence stops
// partway) for the caller to classify.
package swap

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNestedPaths indicates that one path is lexically contained in the
// other. No rename sequence can exchange a directory with its own
// descendant, so such pairs are refused before anything moves.
var ErrNestedPaths = errors.New("one path contains the other")

// Exchange swaps what path1 and path2 refer to. The paths must be
// non-empty and distinct; the caller is expected to have normalized them
// already. Symbolic links are not followed, so exchanging a link moves the
// link itself. On fallback platforms a partial failure is reported as a
// *StrandedError naming where the displaced entry ended up.
func Exchange(path1, path2 string) error {
	if err := checkNesting(path1, path2); err != nil {
		return err
	}
	return exchangeInternal(path1, path2)
}

// checkNesting refuses pairs where one path lexically contains the other.
// The check is a cheap guard, not a proof: pairs aliased through symlinks
// or through differing relative anchors are not detected here and surface
// as rename errors instead.
func checkNesting(path1, path2 string) error {
	if isAncestor(path1, path2) {
		return fmt.Errorf("%w: %s is inside %s", ErrNestedPaths, path2, path1)
	}
	if isAncestor(path2, path1) {
		return fmt.Errorf("%w: %s is inside %s", ErrNestedPaths, path1, path2)
	}
	return nil
}

// isAncestor reports whether child lies below parent in purely lexical
// terms, after cleaning both paths.
func isAncestor(parent, child string) bool {
	p := filepath.Clean(parent)
	c := filepath.Clean(child)
	if p == c {
		return false
	}

	sep := string(filepath.Separator)
	if p == "." {
		// Clean never leaves a "./" prefix, so any relative path that does
		// not climb out of the current directory lies below it.
		return !filepath.IsAbs(c) && c != ".." && !strings.HasPrefix(c, ".."+sep)
	}
	if !strings.HasSuffix(p, sep) {
		p += sep
	}
	return strings.HasPrefix(c, p)
}
