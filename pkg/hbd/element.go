package hbd

// Style holds the process-wide rendering options established once per run.
// It is passed down at construction so every node carries its resolved
// settings and the finished tree needs no parent walks.
type Style struct {
	// SeparateBoxes renders adjacent vertical-box columns with doubled
	// rule separators for sharper visual segmentation.
	SeparateBoxes bool
}

// Element is one node of a diagram tree. The variant set is closed:
// [NewLine], [HorizontalLabel], [VerticalLabel], [HorizontalSpace] and
// [Box] (in its plain, horizontal and vertical kinds).
type Element interface {
	// RequiredColumns reports how many additional table columns the
	// element occupies in its container (1 for vertical labels, 0 for
	// everything else).
	RequiredColumns() int

	// EndLine returns the string that terminates a table row whose last
	// element is this one. Labels, spacing and row breaks terminate
	// themselves; boxes need an explicit row break.
	EndLine() string

	// Render returns the element's LaTeX markup, recursively rendering
	// children for containers.
	Render() string
}

// NewLine forces a row break in the enclosing table. Authors produce it
// with a blank line inside a box.
type NewLine struct{}

// RequiredColumns implements [Element].
func (*NewLine) RequiredColumns() int { return 0 }

// EndLine implements [Element].
func (*NewLine) EndLine() string { return "" }

// HorizontalLabel is a text label spanning the full width of its box.
type HorizontalLabel struct {
	box   *Box
	text  string
	color string
}

// NewHorizontalLabel creates a label inside box. An empty color inherits
// the box's effective fill color.
func NewHorizontalLabel(box *Box, text, color string) *HorizontalLabel {
	return &HorizontalLabel{box: box, text: text, color: resolveColor(box, color)}
}

// Text returns the label text including any adornment.
func (l *HorizontalLabel) Text() string { return l.text }

// Color returns the label's resolved fill color, or "" for none.
func (l *HorizontalLabel) Color() string { return l.color }

// RequiredColumns implements [Element].
func (*HorizontalLabel) RequiredColumns() int { return 0 }

// EndLine implements [Element].
func (*HorizontalLabel) EndLine() string { return "" }

// VerticalLabel is a rotated text label occupying exactly one new column
// of its box. The column ordinal is fixed at construction time: the
// renderer compares it against the box's final column count to decide
// whether the label opens, continues or closes its table row.
type VerticalLabel struct {
	box     *Box
	text    string
	color   string
	ordinal int
}

// NewVerticalLabel creates a rotated label inside box, capturing the
// box's current column count as the label's ordinal. Append the label to
// the same box immediately; interleaving other appends would skew the
// captured ordinal.
func NewVerticalLabel(box *Box, text, color string) *VerticalLabel {
	return &VerticalLabel{
		box:     box,
		text:    text,
		color:   resolveColor(box, color),
		ordinal: box.ncol,
	}
}

// Text returns the label text.
func (l *VerticalLabel) Text() string { return l.text }

// Color returns the label's resolved fill color, or "" for none.
func (l *VerticalLabel) Color() string { return l.color }

// Ordinal returns the column the label occupies, counted from 1 in
// append order.
func (l *VerticalLabel) Ordinal() int { return l.ordinal }

// RequiredColumns implements [Element].
func (*VerticalLabel) RequiredColumns() int { return 1 }

// EndLine implements [Element].
func (*VerticalLabel) EndLine() string { return "" }

// HorizontalSpace inserts blank vertical spacing of a given LaTeX length
// (e.g. "2mm") instead of a visible row.
type HorizontalSpace struct {
	box    *Box
	amount string
}

// NewHorizontalSpace creates a spacing element of the given length
// inside box.
func NewHorizontalSpace(box *Box, amount string) *HorizontalSpace {
	return &HorizontalSpace{box: box, amount: amount}
}

// Amount returns the LaTeX length token of the spacing.
func (s *HorizontalSpace) Amount() string { return s.amount }

// RequiredColumns implements [Element].
func (*HorizontalSpace) RequiredColumns() int { return 0 }

// EndLine implements [Element].
func (*HorizontalSpace) EndLine() string { return "" }

// resolveColor returns the explicit color if given, otherwise the
// container's effective color. Cell-level override beats the container
// default.
func resolveColor(box *Box, color string) string {
	if color != "" || box == nil {
		return color
	}
	return box.inherit
}
