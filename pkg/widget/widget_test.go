package widget

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTextAndDivider(t *testing.T) {
	if got := (Text{Content: "abc"}).View(); got != "abc" {
		t.Errorf("Text.View() = %q", got)
	}
	if got := (Divider{}).View(); got != "" {
		t.Errorf("Divider.View() = %q", got)
	}
}

func TestPileCentersItems(t *testing.T) {
	p := NewPile(Text{Content: "abcdef"}, Text{Content: "ab"})
	lines := strings.Split(p.View(), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0] != "abcdef" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "  ab  " {
		t.Errorf("line 1 = %q, want centered", lines[1])
	}
}

func TestPileWithDividers(t *testing.T) {
	p := &Pile{Items: []Widget{Divider{}, Text{Content: "x"}, Divider{}}, Align: lipgloss.Left}
	w, h := Size(p)
	if w != 1 || h != 3 {
		t.Errorf("Size() = %dx%d, want 1x3", w, h)
	}
}

func TestColumnsKeepRowsSeparate(t *testing.T) {
	left := Text{Content: "aa\nbb\ncc"}
	right := Text{Content: "11\n22"}
	c := NewColumns(left, right)

	lines := strings.Split(c.View(), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	want := []string{"aa  11", "bb  22", "cc    "}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestColumnsEmpty(t *testing.T) {
	if got := NewColumns().View(); got != "" {
		t.Errorf("empty Columns.View() = %q", got)
	}
	if got := NewPile().View(); got != "" {
		t.Errorf("empty Pile.View() = %q", got)
	}
}
