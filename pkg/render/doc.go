// Package render groups the auxiliary renderers over a parsed diagram
// tree: [dot] emits the tree structure as Graphviz DOT or SVG for
// inspection, [term] draws a lossy terminal approximation for quick
// iteration. The LaTeX backend itself lives with the data model in
// pkg/hbd.
//
// [dot]: https://pkg.go.dev/github.com/matzehuels/hbdtex/pkg/render/dot
// [term]: https://pkg.go.dev/github.com/matzehuels/hbdtex/pkg/render/term
package render
