package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hbdtex/pkg/cache"
	"github.com/matzehuels/hbdtex/pkg/config"
	"github.com/matzehuels/hbdtex/pkg/errors"
	"github.com/matzehuels/hbdtex/pkg/hbd"
	"github.com/matzehuels/hbdtex/pkg/latex"
)

// stdinName is the sentinel argument selecting standard input.
const stdinName = "-"

// compileOpts holds the command-line flags for the compile command.
type compileOpts struct {
	output     string // output file path ("" for stdout)
	prologue   string // LaTeX preamble override file
	separate   bool   // doubled rule separators between vbox columns
	bare       bool   // omit the standalone document wrapper
	useCache   bool   // consult the compile cache
	configPath string // explicit config file
}

// compileCommand creates the compile command, the tool's main entry
// point: it reads each input (or stdin), parses the diagram, renders it
// to LaTeX and writes one standalone document covering all inputs.
//
// A syntax error in any input aborts the whole run without producing
// output; there is no partial-success mode across files.
func (c *CLI) compileCommand() *cobra.Command {
	var opts compileOpts

	cmd := &cobra.Command{
		Use:   "compile [file...]",
		Short: "Compile box diagrams to a standalone LaTeX document",
		Long: `Compile reads hierarchical box diagram descriptions and writes LaTeX
markup to stdout (or --output). With no arguments, or with "-", input is
read from standard input.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				inputs = []string{stdinName}
			}
			return c.runCompile(cmd.Context(), cmd, inputs, &opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.separate, "separate-boxes", "s", false, "place vbox elements into separate boxes")
	cmd.Flags().StringVarP(&opts.prologue, "prologue", "p", "", "LaTeX prologue file replacing the built-in preamble")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the document to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.bare, "bare", false, "emit diagram bodies without the document wrapper")
	cmd.Flags().BoolVar(&opts.useCache, "cache", false, "reuse compiled bodies from the compile cache")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default "+config.FileName+" if present)")

	return cmd
}

func (c *CLI) runCompile(ctx context.Context, cmd *cobra.Command, inputs []string, opts *compileOpts) error {
	cfg, err := config.Discover(opts.configPath)
	if err != nil {
		return err
	}
	// Flags beat config; config beats built-in defaults.
	if !cmd.Flags().Changed("separate-boxes") {
		opts.separate = cfg.Render.SeparateBoxes
	}
	if !cmd.Flags().Changed("cache") {
		opts.useCache = cfg.Cache.Enabled
	}
	if opts.prologue == "" {
		opts.prologue = cfg.Render.Prologue
	}

	store, err := c.openCache(cfg, opts.useCache)
	if err != nil {
		return err
	}
	defer store.Close()
	ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour

	doc := latex.NewDocument()
	if opts.prologue != "" {
		doc, err = latex.NewDocumentWithPreamble(opts.prologue)
		if err != nil {
			return err
		}
	}

	p := newProgress(c.Logger)
	style := hbd.Style{SeparateBoxes: opts.separate}
	bodies := make([]string, 0, len(inputs))
	for _, name := range inputs {
		body, err := c.compileOne(ctx, name, style, store, ttl)
		if err != nil {
			return err
		}
		bodies = append(bodies, body)
	}

	var out string
	if opts.bare {
		out = strings.Join(bodies, "\n")
	} else {
		out = doc.Render(bodies...)
	}
	if err := writeOutput(opts.output, []byte(out)); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Compiled %d diagram(s)", len(bodies)))
	return nil
}

// compileOne reads a single input and returns its rendered body,
// consulting the compile cache first.
func (c *CLI) compileOne(ctx context.Context, name string, style hbd.Style, store cache.Cache, ttl time.Duration) (string, error) {
	src, display, err := readInput(name)
	if err != nil {
		return "", err
	}

	key := cache.CompileKey(src, style.SeparateBoxes)
	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		c.Logger.Debug("compile cache hit", "file", display)
		return string(data), nil
	}

	root, err := hbd.Parse(display, bytes.NewReader(src), style)
	if err != nil {
		return "", err
	}
	body := root.Render()
	c.Logger.Debug("compiled", "file", display, "bytes", len(body))

	if err := store.Set(ctx, key, []byte(body), ttl); err != nil {
		// A failed cache write must not fail the compile.
		c.Logger.Warn("compile cache write failed", "file", display, "err", err)
	}
	return body, nil
}

// openCache returns the file cache when enabled, a null cache otherwise.
func (c *CLI) openCache(cfg config.Config, enabled bool) (cache.Cache, error) {
	if !enabled {
		return cache.NewNullCache(), nil
	}
	dir, err := cfg.CacheDir()
	if err != nil {
		return nil, err
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// readInput returns the raw bytes of a file argument plus the name to
// use in diagnostics.
func readInput(name string) ([]byte, string, error) {
	if name == stdinName {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", errors.Wrap(errors.ErrCodeInternal, err, "read stdin")
		}
		return data, "<stdin>", nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", name)
		}
		return nil, "", errors.Wrap(errors.ErrCodeInternal, err, "read %s", name)
	}
	return data, name, nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
