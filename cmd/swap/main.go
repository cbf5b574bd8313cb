// Package main provides the swap command. It exchanges what two paths
// refer to and exits with the same status code the shared library
// reports, so scripts can treat both entry points alike.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	nameexchange "github.com/isseis/go-name-exchange"
	"github.com/isseis/go-name-exchange/internal/cliconfig"
	"github.com/isseis/go-name-exchange/internal/color"
	"github.com/isseis/go-name-exchange/internal/logging"
	"github.com/isseis/go-name-exchange/internal/terminal"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

var errTwoPathsRequired = errors.New("exactly two paths are required")

type swapConfig struct {
	path1       string
	path2       string
	level       slog.Level
	format      logging.Format
	colorMode   terminal.Mode
	quiet       bool
	showVersion bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, fs, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if errors.Is(err, errTwoPathsRequired) {
			printUsage(fs, stderr)
		}
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return int(nameexchange.StatusUnknown)
	}

	if cfg.showVersion {
		_, _ = fmt.Fprintf(stdout, "swap %s\n", version)
		return 0
	}

	logging.Setup(stderr, cfg.level, cfg.format)

	useColor := terminal.SupportsColor(cfg.colorMode)
	green := color.Enabled(useColor, color.Green)
	red := color.Enabled(useColor, color.Red)

	runID := logging.NewRunID()
	slog.Debug("Starting exchange",
		"run_id", runID,
		"strategy", nameexchange.ActiveStrategy().String(),
		"path1", cfg.path1,
		"path2", cfg.path2)

	err = nameexchange.Exchange(cfg.path1, cfg.path2)
	status := nameexchange.StatusOf(err)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%s %v\n", red("Error:"), err)
		var stranded *nameexchange.StrandedError
		if errors.As(err, &stranded) {
			_, _ = fmt.Fprintf(stderr, "The entry from %s is parked at %s; restore it manually.\n", cfg.path1, stranded.Sentinel)
		}
		return int(status)
	}

	if !cfg.quiet {
		_, _ = fmt.Fprintf(stdout, "%s %s <-> %s\n", green("Swapped"), cfg.path1, cfg.path2)
	}
	return int(status)
}

func parseArgs(args []string, stderr io.Writer) (*swapConfig, *flag.FlagSet, error) {
	options := struct {
		configPath string
		logLevel   string
		logFormat  string
		colorMode  string
		quiet      bool
		version    bool
	}{}

	fs := flag.NewFlagSet("swap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs, stderr) }
	fs.StringVar(&options.configPath, "config", "", "Path to the TOML config file (default: "+cliconfig.EnvConfigPath+" or the XDG config home)")
	fs.StringVar(&options.logLevel, "log-level", "", "Log level: debug, info, warn or error (default: warn)")
	fs.StringVar(&options.logFormat, "log-format", "", "Log format: text or json (default: text)")
	fs.StringVar(&options.colorMode, "color", "", "Colored output: auto, always or never (default: auto)")
	fs.BoolVar(&options.quiet, "quiet", false, "Suppress the success message")
	fs.BoolVar(&options.version, "version", false, "Print the version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}

	if options.version {
		return &swapConfig{showVersion: true}, fs, nil
	}

	if fs.NArg() != 2 {
		return nil, fs, errTwoPathsRequired
	}

	fileCfg, err := loadFileConfig(options.configPath)
	if err != nil {
		return nil, fs, err
	}

	// Flags override file settings; empty means the flag was not given.
	if options.logLevel != "" {
		fileCfg.LogLevel = options.logLevel
	}
	if options.logFormat != "" {
		fileCfg.LogFormat = options.logFormat
	}
	if options.colorMode != "" {
		fileCfg.Color = options.colorMode
	}

	level, err := logging.ParseLevel(fileCfg.LogLevel)
	if err != nil {
		return nil, fs, err
	}
	format, err := logging.ParseFormat(fileCfg.LogFormat)
	if err != nil {
		return nil, fs, err
	}
	mode, err := terminal.ParseMode(fileCfg.Color)
	if err != nil {
		return nil, fs, err
	}

	return &swapConfig{
		path1:     fs.Arg(0),
		path2:     fs.Arg(1),
		level:     level,
		format:    format,
		colorMode: mode,
		quiet:     options.quiet,
	}, fs, nil
}

// loadFileConfig resolves and reads the config file. A missing file at
// the default location just means defaults; a file the user named must
// exist.
func loadFileConfig(flagPath string) (cliconfig.Config, error) {
	path, explicit := cliconfig.Resolve(flagPath)
	cfg, err := cliconfig.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cliconfig.Default(), nil
		}
		return cfg, err
	}
	return cfg, nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	if fs == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Usage: %s [flags] <path1> <path2>\n", filepath.Base(os.Args[0]))
	_, _ = fmt.Fprintln(w, "Swap what two file system names refer to.")
	fs.PrintDefaults()
}
