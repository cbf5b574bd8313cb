// Package nameexchange swaps the names of two file-system entries, so that
// afterwards the first path refers to what the second named and vice versa,
// with the strongest atomicity the platform offers.
//
// On Linux and macOS the swap is a single kernel primitive (renameat2 with
// RENAME_EXCHANGE, renameatx_np with RENAME_SWAP): either both names move
// or neither does. Other platforms fall back to three ordinary renames
// through a sentinel name; a concurrent observer can briefly see one of
// the names missing, and an interrupted sequence is reported through
// [StrandedError] rather than repaired silently. [ActiveStrategy] reports
// which of the two the running binary carries.
//
// Entries are never copied: exchanging paths on different filesystems
// fails with [ErrCrossDevice] instead of degrading to copy and delete, so
// a successful exchange preserves inode identity where the platform does.
//
// Outcomes cross the C boundary (built from cmd/exchange) as fixed status
// codes:
//
//	0   success
//	1   a named entry does not exist
//	2   permission denied
//	3   a needed name is already taken
//	255 everything else, including invalid input and partial fallback failures
//
// The table is a permanent contract; [StatusOf] implements it for in-process
// callers.
//
// Calls are synchronous and independent: the package keeps no state between
// calls, and concurrent exchanges of disjoint path pairs do not interfere.
// Concurrent calls touching the same names race exactly as the underlying
// renames do.
package nameexchange
