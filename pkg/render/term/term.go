// Package term draws a diagram tree as styled text for the terminal,
// using lipgloss borders for boxes and background fills for colors.
//
// The preview is deliberately lossy: terminals cannot rotate text, so
// vertical labels are stacked rune by rune and vertical boxes are drawn
// unrotated with a double border marking the rotation. It exists for
// quick iteration on diagram structure before running LaTeX.
package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/hbdtex/pkg/hbd"
)

// Options configures the preview.
type Options struct {
	// Color enables background fills for colored elements.
	Color bool
}

// Render returns the terminal rendering of a diagram tree.
func Render(root *hbd.Box, opts Options) string {
	r := renderer{opts: opts}
	return r.box(root)
}

type renderer struct {
	opts Options
}

// box lays out children into rows: vertical labels and nested boxes
// accumulate side by side, horizontal labels span their own row, blank
// lines flush the current row. This mirrors how the LaTeX backend
// terminates table rows.
func (r *renderer) box(b *hbd.Box) string {
	var rows []string
	var cur []string

	flush := func() {
		if len(cur) == 0 {
			return
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cur...))
		cur = nil
	}

	for _, e := range b.Children() {
		switch v := e.(type) {
		case *hbd.NewLine:
			flush()
		case *hbd.HorizontalSpace:
			flush()
			rows = append(rows, "")
		case *hbd.HorizontalLabel:
			flush()
			rows = append(rows, r.fill(v.Color()).Render(v.Text()))
		case *hbd.VerticalLabel:
			cur = append(cur, r.fill(v.Color()).Render(stack(v.Text())), " ")
		case *hbd.Box:
			cur = append(cur, r.box(v), " ")
		}
	}
	flush()

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	style := lipgloss.NewStyle()
	switch b.Kind() {
	case hbd.BoxHorizontal:
		style = style.Border(lipgloss.NormalBorder()).Padding(0, 1)
	case hbd.BoxVertical:
		// Double border stands in for the 90 degree rotation.
		style = style.Border(lipgloss.DoubleBorder()).Padding(0, 1)
	}
	if c, ok := r.color(b.Color()); ok {
		style = style.Background(c)
	}
	return style.Render(content)
}

// fill returns a style with the element's background fill, if any.
func (r *renderer) fill(color string) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := r.color(color); ok {
		style = style.Background(c)
	}
	return style
}

func (r *renderer) color(name string) (lipgloss.Color, bool) {
	if !r.opts.Color || name == "" {
		return "", false
	}
	c, ok := palette[strings.ToLower(name)]
	return c, ok
}

// palette maps the commonly used svgnames colors to hex values lipgloss
// understands. Unknown names render without a fill rather than failing,
// matching the renderer's no-failure contract.
var palette = map[string]lipgloss.Color{
	"black":       "#000000",
	"white":       "#ffffff",
	"red":         "#ff0000",
	"green":       "#008000",
	"blue":        "#0000ff",
	"yellow":      "#ffff00",
	"orange":      "#ffa500",
	"purple":      "#800080",
	"cyan":        "#00ffff",
	"magenta":     "#ff00ff",
	"gray":        "#808080",
	"grey":        "#808080",
	"lightgray":   "#d3d3d3",
	"lightgrey":   "#d3d3d3",
	"lightblue":   "#add8e6",
	"lightgreen":  "#90ee90",
	"lightyellow": "#ffffe0",
	"lightcyan":   "#e0ffff",
	"pink":        "#ffc0cb",
	"salmon":      "#fa8072",
	"gold":        "#ffd700",
	"beige":       "#f5f5dc",
	"ivory":       "#fffff0",
	"lavender":    "#e6e6fa",
	"khaki":       "#f0e68c",
	"azure":       "#f0ffff",
}

// stack turns a label into one rune per line, the closest a terminal
// gets to rotated text.
func stack(text string) string {
	runes := []rune(text)
	lines := make([]string, len(runes))
	for i, r := range runes {
		lines[i] = string(r)
	}
	return strings.Join(lines, "\n")
}
