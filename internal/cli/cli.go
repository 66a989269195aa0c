// Package cli implements the hbdtex command-line interface.
//
// This package provides commands for compiling box diagram descriptions
// to LaTeX, inspecting the parsed element tree, previewing diagrams in
// the terminal, and managing the compile cache. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - compile: Translate .hbd files into a standalone LaTeX document
//   - inspect: Emit the parsed element tree as Graphviz DOT or SVG
//   - preview: Draw a terminal approximation of a diagram
//   - cache: Manage the compile cache
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hbdtex/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "hbdtex"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "hbdtex compiles hierarchical box diagrams to LaTeX",
		Long: `hbdtex translates a line-oriented description of nested horizontal,
vertical and plain boxes into LaTeX tabular markup, suitable for
typesetting architecture and block diagrams.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.compileCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
