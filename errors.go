package nameexchange

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/isseis/go-name-exchange/internal/pathcheck"
	"github.com/isseis/go-name-exchange/internal/swap"
)

// The stable failure taxonomy. Every error returned by [Exchange] either
// matches exactly one of these sentinels under [errors.Is], or is an
// unclassified failure that only [StatusUnknown] can represent.
var (
	// ErrNotExists indicates that an entry named by one of the paths is
	// absent, or that a path was empty and named nothing at all.
	ErrNotExists = errors.New("entry does not exist")

	// ErrPermissionDenied indicates that the platform refused one of the
	// exchange's operations for lack of permission.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrAlreadyExists indicates that a name the exchange needed to claim
	// is already taken.
	ErrAlreadyExists = errors.New("entry already exists")

	// ErrCrossDevice indicates that the two paths live on different
	// filesystems. Renames cannot cross a device boundary and the exchange
	// never degrades to copying, so such pairs are refused. The boundary
	// reports this as StatusUnknown.
	ErrCrossDevice = errors.New("paths are on different filesystems")
)

// StrandedError reports a partially completed exchange on platforms using
// the rename fallback: the entry originally at the first path is parked
// under Sentinel instead of under either requested name. Err is the
// classified failure that interrupted the sequence. RollbackErr is non-nil
// when undoing the first rename failed as well; the first name is then
// vacant, and the outcome always degrades to StatusUnknown no matter what
// interrupted the sequence. Surface Sentinel to the operator so the entry
// can be reconciled by hand.
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

// Unwrap exposes the interrupting failure so callers can match it against
// the taxonomy sentinels.
func (e *StrandedError) Unwrap() error {
	return e.Err
}

// classify maps a failure from the validator or the engine onto the
// taxonomy. The mapping is total: anything unrecognized passes through
// unchanged and reaches the boundary as StatusUnknown. Classification
// never consults the filesystem, only the error values.
func classify(err error) error {
	if err == nil {
		return nil
	}

	// Partial fallback failures keep their structure; the interrupting
	// cause inside them is classified like any other failure.
	var stranded *swap.StrandedError
	if errors.As(err, &stranded) {
		return &StrandedError{
			Sentinel:    stranded.Sentinel,
			Err:         classify(stranded.Err),
			RollbackErr: stranded.RollbackErr,
		}
	}

	switch {
	case errors.Is(err, pathcheck.ErrEmptyPath):
		// An empty path names nothing, and nothing cannot be exchanged.
		return fmt.Errorf("%w: %v", ErrNotExists, err)
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %v", ErrNotExists, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	case errors.Is(err, fs.ErrExist):
		return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
	case swap.IsCrossDevice(err):
		return fmt.Errorf("%w: %v", ErrCrossDevice, err)
	default:
		return err
	}
}
