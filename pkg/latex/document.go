// Package latex wraps rendered diagram bodies in a standalone LaTeX
// document: a package preamble declaring table, color and rotation
// support, the document opening, one body per input, and the closing.
package latex

import (
	"os"
	"strings"

	"github.com/matzehuels/hbdtex/pkg/errors"
)

// DefaultPreamble declares the packages the emitted markup relies on:
// adjustbox for label rotation, hhline for doubled rules, xcolor with
// svgnames for fills, MnSymbol for adornment symbols.
const DefaultPreamble = `\documentclass{standalone}

\usepackage{adjustbox}
\usepackage{MnSymbol}
\usepackage{array}
\usepackage{graphicx}
\usepackage{hhline}
\usepackage[table,svgnames]{xcolor}
`

// documentOpen begins the document proper. The \textsf group stays open
// across every body and is closed by documentClose.
const documentOpen = `
\begin{document}

\arrayrulewidth=1pt

\textsf{
`

const documentClose = "}\n\\end{document}\n"

// Document assembles standalone LaTeX documents around rendered
// diagram bodies.
type Document struct {
	preamble string
}

// NewDocument creates a document with the default preamble.
func NewDocument() *Document {
	return &Document{preamble: DefaultPreamble}
}

// NewDocumentWithPreamble creates a document whose package preamble is
// read from the given file, replacing [DefaultPreamble]. The document
// opening and closing are fixed.
func NewDocumentWithPreamble(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "prologue %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read prologue %s", path)
	}
	return &Document{preamble: string(data)}, nil
}

// Render returns the complete document wrapping the given bodies, one
// per input file, in order.
func (d *Document) Render(bodies ...string) string {
	var sb strings.Builder
	sb.WriteString(d.preamble)
	sb.WriteString(documentOpen)
	for _, b := range bodies {
		sb.WriteString(b)
		sb.WriteString("\n")
	}
	sb.WriteString(documentClose)
	return sb.String()
}
