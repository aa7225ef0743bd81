// Package cli implements the tapecut command-line interface.
//
// This package provides commands for generating punched-tape DXF drawings
// from files, message text, or banner strings, previewing the tape layout in
// the terminal, and inspecting the supported code tables. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - generate: Transcode input and write the tape drawing file(s)
//   - preview: Render the tape row-by-row in the terminal
//   - codes: Show the character set of each tape code
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/punchtape/tapecut/pkg/buildinfo"
	"github.com/punchtape/tapecut/pkg/errors"
	"github.com/punchtape/tapecut/pkg/pipeline"
	"github.com/punchtape/tapecut/pkg/tape"
)

// appName is the application name used for directories and display.
const appName = "tapecut"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Tapecut cuts punched paper tape on a stencil cutter",
		Long:         `Tapecut converts bytes, text, or banner messages into punched-paper-tape geometry as DXF files, ready for a desktop CNC stencil cutter. It speaks plain ASCII tape, 5-level Baudot/ITA2, and two historical Morse tape codes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.codesCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// configDir returns the config directory using XDG standard
// (~/.config/tapecut/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// parseMode maps the mutually exclusive code flags onto a pipeline mode.
func parseMode(baudot, wheatstone, cable bool) (pipeline.Mode, error) {
	set := 0
	for _, b := range []bool{baudot, wheatstone, cable} {
		if b {
			set++
		}
	}
	if set > 1 {
		return 0, errors.New(errors.ErrCodeInvalidMode,
			"--baudot, --wheatstone, and --cable are mutually exclusive")
	}
	switch {
	case baudot:
		return pipeline.ModeBaudot, nil
	case wheatstone:
		return pipeline.ModeWheatstone, nil
	case cable:
		return pipeline.ModeCable, nil
	default:
		return pipeline.ModeASCII, nil
	}
}

// parseParity maps the --parity flag value.
func parseParity(s string) (tape.Parity, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return tape.ParityNone, nil
	case "even":
		return tape.ParityEven, nil
	case "odd":
		return tape.ParityOdd, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidParity,
			"invalid parity %q (must be 'none', 'even', or 'odd')", s)
	}
}

// parseNumbering maps the comma-separated --number flag into region flags.
func parseNumbering(s string) (tape.NumberFlags, error) {
	var flags tape.NumberFlags
	if s == "" {
		return flags, nil
	}
	for _, part := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "banner":
			flags.Banner = true
		case "leader":
			flags.Leader = true
		case "code":
			flags.Code = true
		case "trailer":
			flags.Trailer = true
		case "all":
			flags.Banner, flags.Leader, flags.Code, flags.Trailer = true, true, true, true
			flags.All = true
		default:
			return flags, fmt.Errorf(
				"invalid region %q (must be 'banner', 'leader', 'code', 'trailer', or 'all')", part)
		}
	}
	return flags, nil
}

// defaultOutputPath derives the output file name from the input source.
func defaultOutputPath(inputPath string) string {
	if inputPath == "" {
		return "tape.dxf"
	}
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return base + ".dxf"
}
