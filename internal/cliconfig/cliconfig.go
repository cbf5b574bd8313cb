// Package cliconfig loads the optional TOML configuration consumed by the
// swap command-line front end. The C shared library never reads it;
// boundary behavior must not depend on files lying around.
package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/isseis/go-name-exchange/internal/safeio"
)

// EnvConfigPath names an alternative config file location. It takes
// precedence over the default path but not over the -config flag.
const EnvConfigPath = "NAME_EXCHANGE_CONFIG"

// Config carries presentation settings for the swap command. Values are
// kept as strings and parsed by the packages that consume them, so an
// unusable setting is reported where its meaning is defined.
type Config struct {
	// LogLevel is the minimum level emitted: debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	// LogFormat selects text or json records.
	LogFormat string `toml:"log_format"`

	// Color controls colored output: auto, always or never.
	Color string `toml:"color"`
}

// Default returns the settings used when neither a config file nor a flag
// says otherwise.
func Default() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: "text",
		Color:     "auto",
	}
}

// Load reads the TOML file at path and overlays it on the defaults; keys
// absent from the file keep their default values. The read refuses
// symbolic links and oversized files, see safeio.ReadFile.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := safeio.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve picks the config file to consult: the flag wins, then
// EnvConfigPath, then the per-user default under the XDG config home.
// explicit reports whether the caller named the file; an explicitly named
// file must exist, while a missing default file just means defaults.
func Resolve(flagPath string) (path string, explicit bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, true
	}
	return filepath.Join(xdg.ConfigHome, "name-exchange", "config.toml"), false
}
