package nameexchange

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodesAreStable(t *testing.T) {
	// The numeric values are a contract with C callers; changing one here
	// is an ABI break, not a refactor.
	assert.Equal(t, Status(0), StatusSuccess)
	assert.Equal(t, Status(1), StatusNotExists)
	assert.Equal(t, Status(2), StatusPermissionDenied)
	assert.Equal(t, Status(3), StatusAlreadyExists)
	assert.Equal(t, Status(255), StatusUnknown)
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Status
	}{
		{name: "nil is success", err: nil, want: StatusSuccess},
		{name: "not exists", err: fmt.Errorf("%w: gone", ErrNotExists), want: StatusNotExists},
		{name: "permission denied", err: fmt.Errorf("%w: refused", ErrPermissionDenied), want: StatusPermissionDenied},
		{name: "already exists", err: fmt.Errorf("%w: taken", ErrAlreadyExists), want: StatusAlreadyExists},
		{name: "cross device degrades to unknown", err: fmt.Errorf("%w: other volume", ErrCrossDevice), want: StatusUnknown},
		{name: "unrecognized is unknown", err: errors.New("mystery"), want: StatusUnknown},
		{
			name: "stranded final step keeps its cause",
			err: &StrandedError{
				Sentinel: "/d/.a.exchange-X",
				Err:      fmt.Errorf("%w: refused", ErrPermissionDenied),
			},
			want: StatusPermissionDenied,
		},
		{
			name: "failed rollback is always unknown",
			err: fmt.Errorf("exchange: %w", &StrandedError{
				Sentinel:    "/d/.a.exchange-X",
				Err:         fmt.Errorf("%w: refused", ErrPermissionDenied),
				RollbackErr: errors.New("second failure"),
			}),
			want: StatusUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "not-exists", StatusNotExists.String())
	assert.Equal(t, "permission-denied", StatusPermissionDenied.String())
	assert.Equal(t, "already-exists", StatusAlreadyExists.String())
	assert.Equal(t, "unknown", StatusUnknown.String())
	assert.Equal(t, "status(7)", Status(7).String())
}
