package hbd

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	apperrors "github.com/matzehuels/hbdtex/pkg/errors"
)

// Line classification patterns. Annotations are stripped before the
// directive patterns run, so a directive never sees its own attributes.
var (
	reEmpty   = regexp.MustCompile(`^\s*(#.*)?$`)
	reComment = regexp.MustCompile(`#.*`)

	// Inline attribute annotations, e.g. "[color=red]" or "[adornlr=udots]".
	reColor   = regexp.MustCompile(`\[?\s*color\s*=(\w+)\s*[\],]`)
	reAdornLR = regexp.MustCompile(`\[?\s*adornlr\s*=(\w+)\s*[\],]`)

	reHorBox      = regexp.MustCompile(`^\s*hbox\s*\{`)
	reHorBoxLabel = regexp.MustCompile(`^\s*hbox\s+([^{\s].*)`)
	reVerBox      = regexp.MustCompile(`^\s*vbox\s*\{`)
	rePlainBox    = regexp.MustCompile(`^\s*pbox\s*\{`)
	reBlockEnd    = regexp.MustCompile(`^\s*\}`)
	reHorLabel    = regexp.MustCompile(`^\s*hl\s+(.*)`)
	reVerLabel    = regexp.MustCompile(`^\s*vl\s+(.*)`)
	reHorSpace    = regexp.MustCompile(`^\s*hspace\s+(.*)`)
)

// Reader turns a line stream into a diagram tree by recursive descent:
// each block-open directive recurses into a fresh box that consumes
// lines until the matching block close. The line cursor is shared across
// recursion levels through the single scanner; reading is strictly
// sequential and single-threaded.
type Reader struct {
	name    string
	scanner *bufio.Scanner
	style   Style
	lineno  int
}

// NewReader creates a reader over r. The name (typically the file path,
// or "<stdin>") is used in diagnostics only.
func NewReader(name string, r io.Reader, style Style) *Reader {
	return &Reader{
		name:    name,
		scanner: bufio.NewScanner(r),
		style:   style,
	}
}

// Parse reads a whole diagram from r and returns its root: a plain box
// holding the top-level elements. A line matching no directive aborts
// the parse with an ErrCodeInvalidSyntax error naming the line; a block
// left open at end of input is returned as-is.
func Parse(name string, r io.Reader, style Style) (*Box, error) {
	return NewReader(name, r, style).Read()
}

// Read consumes the whole line stream and returns the root element.
// A Reader is exhausted after one call.
func (r *Reader) Read() (*Box, error) {
	root := NewBox(nil, BoxPlain, "", r.style)
	if err := r.readBox(root); err != nil {
		return nil, err
	}
	return root, nil
}

// readBox consumes lines as children of box until the block close or the
// end of input.
func (r *Reader) readBox(box *Box) error {
	for r.scanner.Scan() {
		r.lineno++
		line := r.scanner.Text()
		if reBlockEnd.MatchString(line) {
			return nil
		}
		e, err := r.readLine(line, box)
		if err != nil {
			return err
		}
		if e != nil {
			box.Append(e)
		}
	}
	if err := r.scanner.Err(); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "read %s", r.name)
	}
	return nil
}

// readLine classifies a single line and returns the element it produces,
// or nil for lines carrying no content (comments). Block-open directives
// recurse into the line stream for the box's children.
func (r *Reader) readLine(line string, container *Box) (Element, error) {
	line = strings.TrimRight(line, " \t")
	if line != "" && reEmpty.MatchString(line) {
		return nil, nil // comment-only line
	}
	line = reComment.ReplaceAllString(line, "")
	if line == "" {
		return &NewLine{}, nil
	}

	line, color := extractAttr(line, reColor)
	line, adorn := extractAttr(line, reAdornLR)
	var adornLeft, adornRight string
	if adorn != "" {
		adornLeft = `$\` + adorn + `$ `
		adornRight = ` $\` + adorn + `$`
	}

	switch {
	case reHorBox.MatchString(line):
		return r.readChildBox(container, BoxHorizontal, color)
	case reVerBox.MatchString(line):
		return r.readChildBox(container, BoxVertical, color)
	case rePlainBox.MatchString(line):
		return r.readChildBox(container, BoxPlain, color)
	}

	if m := reHorLabel.FindStringSubmatch(line); m != nil {
		text := adornLeft + strings.TrimSpace(m[1]) + adornRight
		return NewHorizontalLabel(container, text, color), nil
	}
	if m := reHorSpace.FindStringSubmatch(line); m != nil {
		return NewHorizontalSpace(container, strings.TrimSpace(m[1])), nil
	}
	// Single-line shorthand: a horizontal box holding one label.
	if m := reHorBoxLabel.FindStringSubmatch(line); m != nil {
		box := NewBox(container, BoxHorizontal, color, r.style)
		text := adornLeft + strings.TrimSpace(m[1]) + adornRight
		box.Append(NewHorizontalLabel(box, text, color))
		return box, nil
	}
	if m := reVerLabel.FindStringSubmatch(line); m != nil {
		return NewVerticalLabel(container, strings.TrimSpace(m[1]), color), nil
	}

	return nil, apperrors.New(apperrors.ErrCodeInvalidSyntax,
		"%s:%d: syntax error in line: %s", r.name, r.lineno, strings.TrimSpace(line))
}

// readChildBox opens a box of the given kind inside container and
// recurses until its block close.
func (r *Reader) readChildBox(container *Box, kind BoxKind, color string) (Element, error) {
	box := NewBox(container, kind, color, r.style)
	if err := r.readBox(box); err != nil {
		return nil, err
	}
	return box, nil
}

// extractAttr removes every occurrence of an attribute pattern from the
// line and returns the remaining line plus the first captured value.
func extractAttr(line string, re *regexp.Regexp) (string, string) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return line, ""
	}
	return re.ReplaceAllString(line, ""), m[1]
}
