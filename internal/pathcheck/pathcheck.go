// Package pathcheck validates and normalizes caller-supplied paths before
// they reach the exchange engine.
//
// Inputs arriving over the C boundary are frequently copied out of shell
// commands or configuration files, so a small amount of grooming is applied
// first: surrounding whitespace is dropped and shell-style quote characters
// are stripped from both ends. Nothing else is rewritten. Symbolic links are
// not resolved, relative paths are not anchored, and no path component is
// required to exist, so the engine operates on exactly the name the caller
// gave it.
package pathcheck

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyPath indicates that a path is empty once whitespace and quotes
	// are removed, leaving nothing to exchange.
	ErrEmptyPath = errors.New("path is empty")

	// ErrNULByte indicates that a path contains a NUL byte. Such a name
	// cannot exist on any supported filesystem and cannot round-trip
	// through a C string, so it is rejected outright.
	ErrNULByte = errors.New("path contains a NUL byte")
)

// Normalize prepares one raw path for the exchange engine. It trims
// surrounding whitespace, strips any run of leading and trailing quote
// characters (both " and '), and rejects paths that end up empty or carry
// an embedded NUL. Interior whitespace and interior quotes are preserved;
// they are legal in file names.
func Normalize(raw string) (string, error) {
	path := strings.TrimSpace(raw)
	path = strings.Trim(path, `"'`)
	if path == "" {
		return "", ErrEmptyPath
	}
	if strings.IndexByte(path, 0) >= 0 {
		return "", fmt.Errorf("%w: %q", ErrNULByte, raw)
	}
	return path, nil
}
