package main

import (
	"log/slog"

	nameexchange "github.com/isseis/go-name-exchange"
)

// exchangeFn performs the actual swap. It is a variable so tests can
// substitute a failing or panicking implementation.
var exchangeFn = nameexchange.Exchange

// exchangeStatus runs the swap and converts the result into a numeric
// status code. No panic escapes across the C boundary: any panic is
// logged and reported as StatusUnknown.
func exchangeStatus(path1, path2 string) (status int32) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Internal fault contained at library boundary",
				"panic", r,
				"path1", path1,
				"path2", path2)
			status = int32(nameexchange.StatusUnknown)
		}
	}()

	err := exchangeFn(path1, path2)
	if err != nil {
		slog.Error("Exchange failed",
			"path1", path1,
			"path2", path2,
			"error", err)
	}
	return int32(nameexchange.StatusOf(err))
}
