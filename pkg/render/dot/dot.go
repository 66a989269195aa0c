// Package dot renders a diagram tree as a Graphviz node-link view: one
// node per element with parent-child edges. It shows the parsed
// structure rather than the final layout, which makes it useful for
// debugging nesting and column assignment before running LaTeX.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/hbdtex/pkg/hbd"
)

// ToDOT converts a diagram tree to Graphviz DOT format. The resulting
// string can be rendered with [RenderSVG].
func ToDOT(root *hbd.Box) string {
	var buf bytes.Buffer
	buf.WriteString("digraph diagram {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	w := walker{buf: &buf}
	w.visit(root)

	buf.WriteString("}\n")
	return buf.String()
}

// walker assigns node IDs in visit order and emits nodes and edges.
type walker struct {
	buf  *bytes.Buffer
	next int
}

func (w *walker) visit(e hbd.Element) string {
	id := fmt.Sprintf("n%d", w.next)
	w.next++
	fmt.Fprintf(w.buf, "  %s [%s];\n", id, strings.Join(attrs(e), ", "))

	if box, ok := e.(*hbd.Box); ok {
		for _, c := range box.Children() {
			cid := w.visit(c)
			fmt.Fprintf(w.buf, "  %s -> %s;\n", id, cid)
		}
	}
	return id
}

func attrs(e hbd.Element) []string {
	var label, color string
	var synthetic bool

	switch v := e.(type) {
	case *hbd.Box:
		label = fmt.Sprintf("%s\ncols: %d", v.Kind(), v.Columns())
		color = v.Color()
	case *hbd.HorizontalLabel:
		label = "hl: " + v.Text()
		color = v.Color()
	case *hbd.VerticalLabel:
		label = fmt.Sprintf("vl: %s\ncol: %d", v.Text(), v.Ordinal())
		color = v.Color()
	case *hbd.HorizontalSpace:
		label = "hspace " + v.Amount()
		synthetic = true
	case *hbd.NewLine:
		label = "newline"
		synthetic = true
	}

	a := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case synthetic:
		a = append(a, `style="rounded,filled,dashed"`, "fillcolor=lightgrey")
	case color != "":
		// svgnames color names are a superset of the X11 scheme
		// Graphviz understands, so pass them through unchanged.
		a = append(a, fmt.Sprintf("fillcolor=%q", color))
	}
	return a
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
