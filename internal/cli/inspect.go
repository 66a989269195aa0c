package cli

import (
	"bytes"
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hbdtex/pkg/errors"
	"github.com/matzehuels/hbdtex/pkg/hbd"
	"github.com/matzehuels/hbdtex/pkg/render/dot"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	output string
	format string
}

// inspectCommand creates the inspect command: it parses a diagram and
// emits its element tree as Graphviz DOT, or as an SVG rendered through
// Graphviz. Useful for debugging nesting and column assignment.
func (c *CLI) inspectCommand() *cobra.Command {
	opts := inspectOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the parsed element tree as DOT or SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := stdinName
			if len(args) == 1 {
				name = args[0]
			}
			return c.runInspect(cmd.Context(), name, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to a file instead of stdout")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, name string, opts *inspectOpts) error {
	src, display, err := readInput(name)
	if err != nil {
		return err
	}
	root, err := hbd.Parse(display, bytes.NewReader(src), hbd.Style{})
	if err != nil {
		return err
	}

	graph := dot.ToDOT(root)
	switch opts.format {
	case formatDOT:
		return writeOutput(opts.output, []byte(graph))
	case formatSVG:
		svg, err := dot.RenderSVG(ctx, graph)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render %s", display)
		}
		return writeOutput(opts.output, svg)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want dot or svg)", opts.format)
	}
}
