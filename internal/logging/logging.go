// Package logging wires log/slog for the exchange library and its
// command-line front ends.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// DebugEnv is the environment variable that switches the shared library
// boundary to verbose per-step diagnostics. Truthy values: 1, true, yes
// (case insensitive).
const DebugEnv = "NAME_EXCHANGE_DEBUG"

// Format selects the wire format of log records.
type Format string

const (
	// FormatText emits human-oriented key=value lines.
	FormatText Format = "text"

	// FormatJSON emits one JSON object per record.
	FormatJSON Format = "json"
)

// Common errors
var (
	ErrUnknownFormat = errors.New("unknown log format")
	ErrUnknownLevel  = errors.New("unknown log level")
)

// ParseFormat maps a format name from flag or config to its Format value.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
	}
}

// ParseLevel maps a level name to its slog value. Accepted names are the
// ones slog itself understands: debug, info, warn, error, with optional
// offsets like warn+2.
func ParseLevel(value string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, value)
	}
	return level, nil
}

// Setup installs the process-wide default logger.
func Setup(w io.Writer, level slog.Level, format Format) {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// SetupLibrary configures logging for the C shared library build. Records
// go to stderr, the only channel an ABI caller is guaranteed to have, and
// stay at error level unless DebugEnv asks for per-step diagnostics.
func SetupLibrary() {
	level := slog.LevelError
	if isTruthy(os.Getenv(DebugEnv)) {
		level = slog.LevelDebug
	}
	Setup(os.Stderr, level, FormatText)
}

// isTruthy checks if a string value should be considered "true"
// Supports: "1", "true", "yes" (case insensitive)
func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// NewRunID generates a new UUID v4 identifying one invocation in the logs.
func NewRunID() string {
	return uuid.New().String()
}
