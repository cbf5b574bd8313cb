package nameexchange

import (
	"github.com/isseis/go-name-exchange/internal/pathcheck"
	"github.com/isseis/go-name-exchange/internal/swap"
)

// Exchange swaps what path1 and path2 refer to. Files, directories,
// symbolic links and any other directory entries can be exchanged, the two
// need not be of the same type, and both must already exist; there is no
// "move to a free name" mode.
//
// Paths are taken nearly verbatim: surrounding whitespace and quote
// characters are stripped, but symbolic links are not resolved and
// relative paths keep their meaning against the current working directory,
// exactly as in rename(2). Exchanging a path with itself is already
// complete and succeeds without touching the filesystem.
//
// Failures are classified against the package taxonomy: match them with
// [errors.Is] against the Err sentinels, dig out partial fallback failures
// with [errors.As] and [*StrandedError], or degrade them with [StatusOf]
// to the numeric contract.
func Exchange(path1, path2 string) error {
	p1, err := pathcheck.Normalize(path1)
	if err != nil {
		return classify(err)
	}
	p2, err := pathcheck.Normalize(path2)
	if err != nil {
		return classify(err)
	}

	if p1 == p2 {
		return nil
	}

	return classify(swap.Exchange(p1, p2))
}
