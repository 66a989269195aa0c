// Package hbd implements the hierarchical box diagram language: a small
// line-oriented notation for nested horizontal, vertical and plain boxes
// containing text labels.
//
// # Language
//
// One directive per line; `#` starts a comment; blank lines force a row
// break inside the enclosing box:
//
//	hbox {          open a bordered box laid out left to right
//	vbox {          open a bordered box rotated by 90 degrees
//	pbox {          open a borderless box
//	}               close the innermost open box
//	hbox <text>     shorthand for a box holding a single label
//	hl <text>       label spanning the full width of its box
//	vl <text>       rotated label occupying one new column
//	hspace <len>    vertical blank space of the given LaTeX length
//
// Any directive may carry inline annotations: `[color=NAME]` fills the
// element with a named xcolor/svgnames color, and `[adornlr=SYM]` wraps
// the label text in the math symbol SYM on both sides.
//
// # Model
//
// Parsing produces a tree of [Element] values rooted at a plain [Box].
// Each element knows how many table columns it occupies, how a table row
// it ends is terminated, and how to render itself as LaTeX tabular
// markup. The tree is built once by [Parse] and is immutable afterwards;
// rendering never fails.
//
// # Example
//
//	root, err := hbd.Parse("arch.hbd", f, hbd.Style{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(root.Render())
package hbd
