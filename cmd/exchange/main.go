// Package main builds the C shared library for the name exchange API.
// It exports a single C symbol that swaps two file system entries and
// reports the outcome as a numeric status code.
//
// Build with:
//
//	go build -buildmode=c-shared -o libnameexchange.so ./cmd/exchange
package main

/*
#include <stdint.h>
*/
import "C"

import (
	nameexchange "github.com/isseis/go-name-exchange"
	"github.com/isseis/go-name-exchange/internal/logging"
)

func init() {
	logging.SetupLibrary()
}

// exchange swaps the entries named by path1 and path2 and returns a
// status code: 0 success, 1 missing entry, 2 permission denied,
// 3 conflicting entry, 255 any other failure. NULL pointers yield 255.
//
//export exchange
func exchange(path1, path2 *C.char) C.int32_t {
	if path1 == nil || path2 == nil {
		return C.int32_t(nameexchange.StatusUnknown)
	}
	return C.int32_t(exchangeStatus(C.GoString(path1), C.GoString(path2)))
}

func main() {}
