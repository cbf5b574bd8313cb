// Package color provides small helpers for coloring the swap command's
// terminal output with ANSI escape sequences. Call sites pick their
// palette once, swapping in None when color is disabled, and never branch
// per message.
//
//nolint:revive // package name conflicts with standard library
package color

// ANSI color codes
const (
	resetCode  = "\033[0m"
	grayCode   = "\033[90m" // Bright black/gray
	greenCode  = "\033[32m"
	yellowCode = "\033[33m"
	redCode    = "\033[31m"
)

// Color represents a color function that wraps text with ANSI escape
// sequences.
type Color func(text string) string

// NewColor creates a color function with the specified ANSI code.
func NewColor(ansiCode string) Color {
	return func(text string) string {
		return ansiCode + text + resetCode
	}
}

// None returns text unchanged; it stands in for any Color when coloring
// is off.
func None(text string) string {
	return text
}

// Enabled returns c when on is true and None otherwise.
func Enabled(on bool, c Color) Color {
	if on {
		return c
	}
	return None
}

// Predefined color functions
var (
	// Gray colors text in gray (bright black)
	Gray = NewColor(grayCode)

	// Green colors text in green
	Green = NewColor(greenCode)

	// Yellow colors text in yellow
	Yellow = NewColor(yellowCode)

	// Red colors text in red
	Red = NewColor(redCode)
)
