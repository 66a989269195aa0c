package dot

import (
	"strings"
	"testing"

	"github.com/matzehuels/hbdtex/pkg/hbd"
)

func parse(t *testing.T, src string) *hbd.Box {
	t.Helper()
	root, err := hbd.Parse("test.hbd", strings.NewReader(src), hbd.Style{})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return root
}

func TestToDOT(t *testing.T) {
	root := parse(t, "hbox [color=red] {\nvl a\nhl title\n\nhspace 2mm\n}")
	got := ToDOT(root)

	for _, want := range []string{
		"digraph diagram {",
		// Root plus hbox plus four children
		`label="pbox\ncols: 1"`,
		`label="hbox\ncols: 2"`,
		`label="vl: a\ncol: 1"`,
		`label="hl: title"`,
		`label="hspace 2mm"`,
		`label="newline"`,
		// Root -> hbox, hbox -> first child
		"n0 -> n1;",
		"n1 -> n2;",
		// Explicit color carried through, synthetic nodes dashed
		`fillcolor="red"`,
		`style="rounded,filled,dashed"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DOT missing %q:\n%s", want, got)
		}
	}
}

func TestToDOTEdgeCount(t *testing.T) {
	// Every element except the root has exactly one incoming edge.
	root := parse(t, "hbox {\nvbox {\nhl A\n}\nvl b\n}")
	got := ToDOT(root)

	if n := strings.Count(got, "->"); n != 4 {
		t.Errorf("edges = %d, want 4:\n%s", n, got)
	}
}
