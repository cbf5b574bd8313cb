package nameexchange

import "github.com/isseis/go-name-exchange/internal/swap"

// Strategy identifies how the running binary exchanges two names.
type Strategy uint8

const (
	// StrategyNativeSwap means both names move in one kernel call and no
	// intermediate state is ever observable. Linux and macOS build this
	// way.
	StrategyNativeSwap Strategy = iota

	// StrategyTempRename means the exchange runs as three ordinary renames
	// through a sentinel name. Each rename is atomic, the sequence is not,
	// and a partial failure surfaces as a [StrandedError]. All other
	// platforms build this way.
	StrategyTempRename
)

// String returns a short stable name for the strategy, suitable for logs.
func (s Strategy) String() string {
	switch s {
	case StrategyNativeSwap:
		return "native-swap"
	case StrategyTempRename:
		return "temp-rename"
	default:
		return "unknown"
	}
}

// ActiveStrategy reports the exchange strategy compiled into this binary.
// The choice is fixed per target platform at build time and never
// re-evaluated at run time.
func ActiveStrategy() Strategy {
	if swap.Active() == swap.StrategyNativeSwap {
		return StrategyNativeSwap
	}
	return StrategyTempRename
}
