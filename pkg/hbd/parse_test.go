package hbd

import (
	"strings"
	"testing"

	apperrors "github.com/matzehuels/hbdtex/pkg/errors"
)

func parse(t *testing.T, src string, style Style) *Box {
	t.Helper()
	root, err := Parse("test.hbd", strings.NewReader(src), style)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return root
}

func TestParseDirectives(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want func(t *testing.T, root *Box)
	}{
		{
			name: "horizontal label",
			src:  "hl Kernel",
			want: func(t *testing.T, root *Box) {
				l, ok := root.Children()[0].(*HorizontalLabel)
				if !ok {
					t.Fatalf("child = %T, want *HorizontalLabel", root.Children()[0])
				}
				if l.Text() != "Kernel" {
					t.Errorf("Text() = %q, want %q", l.Text(), "Kernel")
				}
			},
		},
		{
			name: "vertical label",
			src:  "vl Scheduler",
			want: func(t *testing.T, root *Box) {
				l, ok := root.Children()[0].(*VerticalLabel)
				if !ok {
					t.Fatalf("child = %T, want *VerticalLabel", root.Children()[0])
				}
				if l.Text() != "Scheduler" {
					t.Errorf("Text() = %q, want %q", l.Text(), "Scheduler")
				}
				if l.Ordinal() != 1 {
					t.Errorf("Ordinal() = %d, want 1", l.Ordinal())
				}
			},
		},
		{
			name: "horizontal space",
			src:  "hspace 2mm",
			want: func(t *testing.T, root *Box) {
				s, ok := root.Children()[0].(*HorizontalSpace)
				if !ok {
					t.Fatalf("child = %T, want *HorizontalSpace", root.Children()[0])
				}
				if s.Amount() != "2mm" {
					t.Errorf("Amount() = %q, want %q", s.Amount(), "2mm")
				}
			},
		},
		{
			name: "blank line is a row break",
			src:  "hl A\n\nhl B",
			want: func(t *testing.T, root *Box) {
				if len(root.Children()) != 3 {
					t.Fatalf("len(Children()) = %d, want 3", len(root.Children()))
				}
				if _, ok := root.Children()[1].(*NewLine); !ok {
					t.Errorf("middle child = %T, want *NewLine", root.Children()[1])
				}
			},
		},
		{
			name: "comment-only line produces nothing",
			src:  "hl A\n# a comment\nhl B",
			want: func(t *testing.T, root *Box) {
				if len(root.Children()) != 2 {
					t.Fatalf("len(Children()) = %d, want 2", len(root.Children()))
				}
			},
		},
		{
			name: "trailing comment stripped",
			src:  "hl A # explains A",
			want: func(t *testing.T, root *Box) {
				l := root.Children()[0].(*HorizontalLabel)
				if l.Text() != "A" {
					t.Errorf("Text() = %q, want %q", l.Text(), "A")
				}
			},
		},
		{
			name: "nested boxes",
			src:  "hbox {\nvbox {\nhl A\n}\n}",
			want: func(t *testing.T, root *Box) {
				outer := root.Children()[0].(*Box)
				if outer.Kind() != BoxHorizontal {
					t.Errorf("outer Kind() = %v, want BoxHorizontal", outer.Kind())
				}
				inner := outer.Children()[0].(*Box)
				if inner.Kind() != BoxVertical {
					t.Errorf("inner Kind() = %v, want BoxVertical", inner.Kind())
				}
				if _, ok := inner.Children()[0].(*HorizontalLabel); !ok {
					t.Errorf("leaf = %T, want *HorizontalLabel", inner.Children()[0])
				}
			},
		},
		{
			name: "plain box",
			src:  "pbox {\nhl A\n}",
			want: func(t *testing.T, root *Box) {
				if root.Children()[0].(*Box).Kind() != BoxPlain {
					t.Errorf("Kind() = %v, want BoxPlain", root.Children()[0].(*Box).Kind())
				}
			},
		},
		{
			name: "unterminated block returned as-is",
			src:  "hbox {\nhl A",
			want: func(t *testing.T, root *Box) {
				box := root.Children()[0].(*Box)
				if len(box.Children()) != 1 {
					t.Errorf("len(Children()) = %d, want 1", len(box.Children()))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, parse(t, tt.src, Style{}))
		})
	}
}

func TestParseShorthandBox(t *testing.T) {
	root := parse(t, "hbox Foo", Style{})

	box, ok := root.Children()[0].(*Box)
	if !ok {
		t.Fatalf("child = %T, want *Box", root.Children()[0])
	}
	if box.Kind() != BoxHorizontal {
		t.Errorf("Kind() = %v, want BoxHorizontal", box.Kind())
	}
	if len(box.Children()) != 1 {
		t.Fatalf("len(Children()) = %d, want 1", len(box.Children()))
	}
	l := box.Children()[0].(*HorizontalLabel)
	if l.Text() != "Foo" {
		t.Errorf("Text() = %q, want %q", l.Text(), "Foo")
	}
}

func TestParseColumnCount(t *testing.T) {
	// ncol = 1 + sum of RequiredColumns of direct children, so
	// vertical labels are the only elements that widen a box.
	root := parse(t, "hbox {\nvl a\nvl b\nvl c\nhl title\n}", Style{})
	box := root.Children()[0].(*Box)

	if box.Columns() != 4 {
		t.Errorf("Columns() = %d, want 4", box.Columns())
	}
	for i, want := range []int{1, 2, 3} {
		l := box.Children()[i].(*VerticalLabel)
		if l.Ordinal() != want {
			t.Errorf("child %d Ordinal() = %d, want %d", i, l.Ordinal(), want)
		}
	}
	// A nested box never widens its parent.
	root = parse(t, "hbox {\nhbox {\nvl a\nvl b\n}\n}", Style{})
	if got := root.Children()[0].(*Box).Columns(); got != 1 {
		t.Errorf("parent Columns() = %d, want 1", got)
	}
}

func TestParseAnnotations(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantText  string
		wantColor string
	}{
		{
			name:      "color on label",
			src:       "hl Kernel [color=red]",
			wantText:  "Kernel",
			wantColor: "red",
		},
		{
			name:     "adornlr wraps text",
			src:      "hl API [adornlr=downarrow]",
			wantText: `$\downarrow$ API $\downarrow$`,
		},
		{
			name:      "color and adornlr together",
			src:       "hl API [color=gray,adornlr=uparrow]",
			wantText:  `$\uparrow$ API $\uparrow$`,
			wantColor: "gray",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := parse(t, tt.src, Style{})
			l := root.Children()[0].(*HorizontalLabel)
			if l.Text() != tt.wantText {
				t.Errorf("Text() = %q, want %q", l.Text(), tt.wantText)
			}
			if l.Color() != tt.wantColor {
				t.Errorf("Color() = %q, want %q", l.Color(), tt.wantColor)
			}
		})
	}
}

func TestParseColorInheritance(t *testing.T) {
	root := parse(t, "hbox [color=red] {\nhl A\nhl B [color=blue]\n}", Style{})
	box := root.Children()[0].(*Box)

	if box.Color() != "red" {
		t.Errorf("box Color() = %q, want %q", box.Color(), "red")
	}
	if got := box.Children()[0].(*HorizontalLabel).Color(); got != "red" {
		t.Errorf("label without color = %q, want inherited %q", got, "red")
	}
	if got := box.Children()[1].(*HorizontalLabel).Color(); got != "blue" {
		t.Errorf("label with explicit color = %q, want %q", got, "blue")
	}
}

func TestParseSyntaxError(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string // substring of the diagnostic
	}{
		{"unknown directive", "xyz abc", "xyz abc"},
		{"bad line inside box", "hbox {\nhl A\nbogus line\n}", "test.hbd:3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test.hbd", strings.NewReader(tt.src), Style{})
			if err == nil {
				t.Fatal("Parse() error = nil, want syntax error")
			}
			if !apperrors.Is(err, apperrors.ErrCodeInvalidSyntax) {
				t.Errorf("error code = %v, want INVALID_SYNTAX", apperrors.GetCode(err))
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestReaderExhaustedAfterRead(t *testing.T) {
	r := NewReader("test.hbd", strings.NewReader("hl A"), Style{})
	first, err := r.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(first.Children()) != 1 {
		t.Fatalf("len(Children()) = %d, want 1", len(first.Children()))
	}

	second, err := r.Read()
	if err != nil {
		t.Fatalf("second Read() error: %v", err)
	}
	if len(second.Children()) != 0 {
		t.Errorf("second Read() children = %d, want 0", len(second.Children()))
	}
}
