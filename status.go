package nameexchange

import (
	"errors"
	"fmt"
)

// Status is the numeric outcome that crosses the C boundary. The values
// are a permanent contract with non-Go callers and are never renumbered or
// reused.
type Status int32

const (
	// StatusSuccess indicates that both names now refer to the other entry.
	StatusSuccess Status = 0

	// StatusNotExists indicates that an entry named by one of the paths
	// was absent, or that a path was empty.
	StatusNotExists Status = 1

	// StatusPermissionDenied indicates that the platform refused access.
	StatusPermissionDenied Status = 2

	// StatusAlreadyExists indicates that a name the exchange needed to
	// claim was already taken.
	StatusAlreadyExists Status = 3

	// StatusUnknown indicates any failure outside the named classes,
	// including invalid arguments, cross-device pairs and partial fallback
	// failures whose rollback also failed.
	StatusUnknown Status = 255
)

// String returns a short stable name for the status, suitable for logs.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNotExists:
		return "not-exists"
	case StatusPermissionDenied:
		return "permission-denied"
	case StatusAlreadyExists:
		return "already-exists"
	case StatusUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("status(%d)", int32(s))
	}
}

// StatusOf degrades an error from [Exchange] to its boundary status. The
// mapping is total and deterministic: nil is success, each taxonomy
// sentinel has exactly one code, and everything unrecognized is
// StatusUnknown.
func StatusOf(err error) Status {
	if err == nil {
		return StatusSuccess
	}

	// A stranded exchange whose rollback also failed left the tree in a
	// state no single-cause code can summarize.
	var stranded *StrandedError
	if errors.As(err, &stranded) && stranded.RollbackErr != nil {
		return StatusUnknown
	}

	switch {
	case errors.Is(err, ErrNotExists):
		return StatusNotExists
	case errors.Is(err, ErrPermissionDenied):
		return StatusPermissionDenied
	case errors.Is(err, ErrAlreadyExists):
		return StatusAlreadyExists
	default:
		return StatusUnknown
	}
}
