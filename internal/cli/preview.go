package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hbdtex/pkg/config"
	"github.com/matzehuels/hbdtex/pkg/hbd"
	"github.com/matzehuels/hbdtex/pkg/render/term"
)

// previewCommand creates the preview command: a lossy terminal
// rendering of a diagram for quick iteration without running LaTeX.
func (c *CLI) previewCommand() *cobra.Command {
	var noColor bool
	var configPath string

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Draw a terminal approximation of a diagram",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := stdinName
			if len(args) == 1 {
				name = args[0]
			}

			cfg, err := config.Discover(configPath)
			if err != nil {
				return err
			}
			color := cfg.Preview.Color
			if cmd.Flags().Changed("no-color") {
				color = !noColor
			}

			src, display, err := readInput(name)
			if err != nil {
				return err
			}
			root, err := hbd.Parse(display, bytes.NewReader(src), hbd.Style{})
			if err != nil {
				return err
			}

			fmt.Println(term.Render(root, term.Options{Color: color}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable color fills in the preview")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default "+config.FileName+" if present)")

	return cmd
}
