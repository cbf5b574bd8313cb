package swap

import (
	"fmt"
	"log/slog"
)

// StrandedError reports that the fallback rename sequence stopped with the
// entry originally at the first path parked under Sentinel instead of under
// either requested name. Err is the failure that interrupted the sequence.
// RollbackErr is non-nil when renaming the entry back to its original name
// failed as well, leaving the first name vacant; callers should surface
// Sentinel so an operator can reconcile by hand.
type StrandedError struct {
	Sentinel    string
	Err         error
	RollbackErr error
}

// Error implements the error interface
func (e *StrandedError) Error() string {
	if e.RollbackErr != nil {
		return fmt.Sprintf("exchange interrupted and rollback failed: displaced entry left at %s: %v (rollback: %v)",
			e.Sentinel, e.Err, e.RollbackErr)
	}
	return fmt.Sprintf("exchange interrupted: displaced entry left at %s: %v", e.Sentinel, e.Err)
}

// Unwrap exposes the interrupting failure so callers can classify it.
func (e *StrandedError) Unwrap() error {
	return e.Err
}

// renameSwapWithFS exchanges path1 and path2 with three renames through a
// sentinel name in path1's parent directory:
//
//	rename(path1, sentinel)
//	rename(path2, path1)
//	rename(sentinel, path2)
//
// Each rename is atomic on its own; between the steps a concurrent
// observer sees first path1 and then path2 briefly missing. A failure in
// step 2 is undone by renaming the sentinel back, so the caller sees an
// unchanged tree. A failure in step 3, or of the rollback itself, leaves
// the displaced entry under the sentinel name and is reported as a
// *StrandedError.
func renameSwapWithFS(path1, path2 string, fsys FileSystem) error {
	sentinel, err := sentinelName(path1, fsys)
	if err != nil {
		return err
	}

	slog.Debug("Exchanging entries with rename sequence",
		"path1", path1,
		"path2", path2,
		"sentinel", sentinel)

	// Step 1: park path1 under the sentinel name. Nothing has moved yet if
	// this fails.
	if err := fsys.Rename(path1, sentinel); err != nil {
		return err
	}

	// Step 2: move path2 into path1's old name.
	if err := fsys.Rename(path2, path1); err != nil {
		if rbErr := fsys.Rename(sentinel, path1); rbErr != nil {
			slog.Error("Rollback after failed exchange did not restore the entry",
				"sentinel", sentinel,
				"error", rbErr)
			return &StrandedError{Sentinel: sentinel, Err: err, RollbackErr: rbErr}
		}
		return err
	}

	// Step 3: give the parked entry path2's old name.
	if err := fsys.Rename(sentinel, path2); err != nil {
		slog.Error("Final rename of exchange failed, entry left under sentinel name",
			"sentinel", sentinel,
			"error", err)
		return &StrandedError{Sentinel: sentinel, Err: err}
	}

	return nil
}
