package hbd

import (
	"strconv"
	"strings"
)

// LaTeX emission for every element variant. The markup targets the
// tabular/hhline/adjustbox/xcolor package set declared by the default
// document preamble in pkg/latex.

// cellColor returns the cell fill command for a color, or "" for none.
func cellColor(color string) string {
	if color == "" {
		return ""
	}
	return `\cellcolor{` + color + `}`
}

// Render implements [Element] with a table row break.
func (*NewLine) Render() string { return "\\\\\n" }

// Render implements [Element] with a merged cell spanning every column
// of the enclosing box.
func (l *HorizontalLabel) Render() string {
	return `\multicolumn{` + strconv.Itoa(l.box.ncol-1) + `}{|c|}{` +
		cellColor(l.color) + l.text + "} \\\\\n"
}

// Render implements [Element] with a merged cell producing vertical
// blank space instead of a visible row.
func (s *HorizontalSpace) Render() string {
	return `\multicolumn{` + strconv.Itoa(s.box.ncol-1) + `}{c@{\hspace{` +
		s.amount + "}}}{} \\\\\n"
}

// Render implements [Element] with a single rotated cell. The label in
// column 1 draws the leading rule for the whole row; the label in the
// box's last column closes the row, every other one continues it.
func (l *VerticalLabel) Render() string {
	var sb strings.Builder
	if l.ordinal == 1 {
		if l.box.style.SeparateBoxes {
			sb.WriteString(`\hhline{` + l.box.composeRepeat("-", "||", "||", "||") + "}% vl\n")
		} else {
			sb.WriteString("\\hline% vl\n")
		}
	}

	isFirst := l.ordinal == 1
	isLast := l.ordinal == l.box.ncol-1
	sb.WriteString(`\multicolumn{1}{`)
	if l.box.style.SeparateBoxes {
		if isFirst {
			sb.WriteString("||")
		}
		sb.WriteString("c||}")
	} else {
		sb.WriteString("|c")
		if isLast {
			sb.WriteString("|")
		}
		sb.WriteString("}")
	}
	sb.WriteString("{" + l.box.verticalAdjustbox())
	sb.WriteString("{" + cellColor(l.color) + l.text + "}}")
	if isLast {
		sb.WriteString("\\\\\n")
	} else {
		sb.WriteString("&\n")
	}
	return sb.String()
}

// Render implements [Element] with a nested tabular: optional color
// wrapper, column spec, top border, children in insertion order, the
// last child's row terminator, bottom border. Vertical boxes wrap the
// whole construct in a 90 degree rotation.
func (b *Box) Render() string {
	var sb strings.Builder
	if b.color != "" {
		sb.WriteString(`\colorbox{` + b.color + "}{%\n")
	} else {
		sb.WriteString("{")
	}

	vb := b.verticalBorder()
	var spec string
	if b.style.SeparateBoxes {
		spec = b.composeRepeat("l", "||", vb, vb)
	} else {
		spec = b.composeRepeat("l", "", vb, vb)
	}
	sb.WriteString(`\begin{tabular}[t]{` + spec + "}\n")
	sb.WriteString(b.topHorizontalBorder())
	for _, c := range b.children {
		sb.WriteString(c.Render())
	}
	if n := len(b.children); n > 0 {
		sb.WriteString(b.children[n-1].EndLine())
	}
	sb.WriteString(b.bottomHorizontalBorder())
	sb.WriteString(`\end{tabular}}\hspace{1em}`)

	if b.kind == BoxVertical {
		return "\\rotatebox[origin=rt]{90}{\n" + sb.String() + "}\n"
	}
	return sb.String()
}

// verticalBorder returns the column spec border character(s) for the
// box's outer edges.
func (b *Box) verticalBorder() string {
	if b.kind == BoxPlain {
		return ""
	}
	if b.style.SeparateBoxes && b.ncol > 1 {
		return "||"
	}
	return "|"
}

func (b *Box) topHorizontalBorder() string {
	if b.kind == BoxPlain {
		return ""
	}
	return "\\hline% top box border\n"
}

func (b *Box) bottomHorizontalBorder() string {
	if b.kind == BoxPlain {
		return ""
	}
	var r string
	if b.style.SeparateBoxes && b.ncol > 1 {
		r = `\hhline{` + b.composeRepeat(":=:", "b", "|b", "b|") + "}% bottom box border\n"
	} else {
		r = `\hline`
	}
	return r + "\\noalign{\\vskip 2mm}% bottom box border\n"
}

// verticalAdjustbox returns the rotation wrapper for vertical labels in
// this box. A vertical box rotates its labels -90 degrees so they read
// correctly inside the already rotated frame; horizontal and plain boxes
// defer to their container, with +90 degrees at the document root.
func (b *Box) verticalAdjustbox() string {
	if b.kind == BoxVertical {
		return `\adjustbox{angle=-90,margin=0 0.5em 0 0}`
	}
	if b.parent != nil {
		return b.parent.verticalAdjustbox()
	}
	return `\adjustbox{angle=90,margin=0 0 0 0.5em}`
}
