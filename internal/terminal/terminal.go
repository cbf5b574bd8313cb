// Package terminal decides whether the swap command talks to a person or
// to automation, and whether its output should be colored.
package terminal

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Mode is the user's explicit color choice from the flag or the config
// file.
type Mode string

const (
	// ModeAuto colors output only when the process looks interactive.
	ModeAuto Mode = "auto"
	// ModeAlways colors output unconditionally.
	ModeAlways Mode = "always"
	// ModeNever never colors output.
	ModeNever Mode = "never"
)

// ErrUnknownMode indicates a color mode outside auto, always and never.
var ErrUnknownMode = errors.New("unknown color mode")

// ParseMode maps a color mode name from flag or config to its Mode value.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeAuto:
		return ModeAuto, nil
	case ModeAlways:
		return ModeAlways, nil
	case ModeNever:
		return ModeNever, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, value)
	}
}

// ciEnvVars contains common CI environment variables
var ciEnvVars = []string{
	"CI",             // Generic CI indicator
	"GITHUB_ACTIONS", // GitHub Actions
	"GITLAB_CI",      // GitLab CI
	"JENKINS_URL",    // Jenkins
	"CIRCLECI",       // Circle CI
	"TRAVIS",         // Travis CI
	"BUILDKITE",      // Buildkite
	"TF_BUILD",       // Azure DevOps
}

// colorTerminals lists TERM values (or prefixes) known to support basic
// colors.
var colorTerminals = []string{
	"xterm",
	"screen",
	"tmux",
	"rxvt",
	"vt100",
	"vt220",
	"ansi",
	"linux",
	"cygwin",
	"putty",
}

// IsTerminal reports whether both stdout and stderr are connected to a
// terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

// IsCI reports whether the process appears to run under a CI system. CI
// itself must be truthy; CI=false explicitly opts out.
func IsCI() bool {
	for _, envVar := range ciEnvVars {
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		if envVar == "CI" {
			return isCITruthy(value)
		}
		return true
	}
	return false
}

// IsInteractive reports whether output goes to a person: a terminal on
// both output streams and no CI environment.
func IsInteractive() bool {
	return !IsCI() && IsTerminal()
}

// SupportsColor resolves the effective color decision in priority order:
// explicit mode, CLICOLOR_FORCE, NO_COLOR, CLICOLOR, then interactivity
// combined with the terminal's own capability.
func SupportsColor(mode Mode) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}

	if force := os.Getenv("CLICOLOR_FORCE"); force != "" && isTruthy(force) {
		return true
	}
	// NO_COLOR disables color by mere presence, even when empty.
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	if !IsInteractive() || !termSupportsColor(os.Getenv("TERM")) {
		return false
	}
	if cliColor := os.Getenv("CLICOLOR"); cliColor != "" {
		return isTruthy(cliColor)
	}
	return true
}

// termSupportsColor reports whether a TERM value names a color-capable
// terminal. Unknown terminals count as incapable; missing color is better
// than escape sequences on a terminal that cannot render them.
func termSupportsColor(value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || value == "dumb" {
		return false
	}
	for _, known := range colorTerminals {
		if value == known || strings.HasPrefix(value, known+"-") {
			return true
		}
	}
	return false
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

// isCITruthy treats everything except an explicit opt-out as true; CI
// vendors set CI=true but users export CI=false to escape CI behavior.
func isCITruthy(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	return lower != "false" && lower != "0" && lower != "no"
}
