package swap

// Strategy identifies how this binary exchanges two directory entries. The
// choice is fixed per target platform at build time and is never
// re-evaluated at run time: a platform either has a usable swap primitive
// or it does not.
type Strategy uint8

const (
	// StrategyNativeSwap exchanges both names in one kernel call:
	// renameat2(2) with RENAME_EXCHANGE on Linux, renameatx_np(2) with
	// RENAME_SWAP on macOS. No intermediate state is ever observable.
	StrategyNativeSwap Strategy = iota

	// StrategyTempRename exchanges the names with three ordinary renames
	// through a sentinel name. Each step is atomic on its own but the
	// sequence as a whole is not.
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

// Active returns the strategy compiled into this binary.
func Active() Strategy {
	return activeStrategy
}
