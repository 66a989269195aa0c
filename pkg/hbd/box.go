package hbd

import "strings"

// BoxKind distinguishes the three box variants of the language.
type BoxKind int

const (
	// BoxPlain is a borderless box, used for the implicit document root
	// and for inline single-label boxes.
	BoxPlain BoxKind = iota
	// BoxHorizontal is a bordered box laid out left to right.
	BoxHorizontal
	// BoxVertical is a bordered box rotated by 90 degrees. The rotation
	// propagates to descendant vertical labels so their text reads
	// correctly inside the rotated frame.
	BoxVertical
)

// String returns the directive keyword of the kind.
func (k BoxKind) String() string {
	switch k {
	case BoxHorizontal:
		return "hbox"
	case BoxVertical:
		return "vbox"
	default:
		return "pbox"
	}
}

// Box is a container element holding an ordered sequence of children.
// Insertion order is rendering order. The zero value is not usable; use
// [NewBox].
type Box struct {
	kind     BoxKind
	parent   *Box // nil only at the document root
	children []Element
	ncol     int
	color    string // explicit fill color, drawn behind the whole box
	inherit  string // effective color handed down to children
	style    Style
}

// NewBox creates an empty box of the given kind inside parent (nil for
// the document root). The column count starts at 1 and grows as children
// are appended. A box without an explicit color hands its parent's
// effective color down to its children.
func NewBox(parent *Box, kind BoxKind, color string, style Style) *Box {
	b := &Box{
		kind:   kind,
		parent: parent,
		ncol:   1,
		color:  color,
		style:  style,
	}
	b.inherit = color
	if color == "" && parent != nil {
		b.inherit = parent.inherit
	}
	return b
}

// Append adds e as the last child, growing the column count by the
// columns e requires. A nested box never widens its parent.
func (b *Box) Append(e Element) {
	b.children = append(b.children, e)
	b.ncol += e.RequiredColumns()
}

// Kind returns the box variant.
func (b *Box) Kind() BoxKind { return b.kind }

// Children returns the box's elements in insertion order. The returned
// slice must not be modified.
func (b *Box) Children() []Element { return b.children }

// Columns returns the box's column count: 1 plus the required columns of
// every child appended so far.
func (b *Box) Columns() int { return b.ncol }

// Color returns the box's explicit fill color, or "" for none.
func (b *Box) Color() string { return b.color }

// RequiredColumns implements [Element]. A nested box occupies no
// additional column of its parent.
func (*Box) RequiredColumns() int { return 0 }

// EndLine implements [Element]. A box ending a table row needs an
// explicit row break.
func (*Box) EndLine() string { return "\\\\\n" }

// composeRepeat builds the string "left e sep e sep ... e right" with
// one e per column, used for tabular column specs and hhline patterns.
func (b *Box) composeRepeat(element, sep, left, right string) string {
	n := b.ncol - 2
	if n < 0 {
		n = 0
	}
	return left + strings.Repeat(element+sep, n) + element + right
}
