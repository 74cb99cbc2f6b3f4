// Package widget provides the small set of composable text widgets the
// renderer produces: static text, vertical piles, side-by-side columns and
// blank dividers. Layout is delegated to lipgloss.
package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Widget is anything that can draw itself as a block of terminal text.
type Widget interface {
	View() string
}

// Size returns the width and height in cells of a widget's view.
func Size(w Widget) (width, height int) {
	return lipgloss.Size(w.View())
}

// Text is pre-rendered, possibly styled text.
type Text struct {
	Content string
}

// View returns the content unchanged.
func (t Text) View() string { return t.Content }

// Divider is a single blank line.
type Divider struct{}

// View returns an empty line.
func (Divider) View() string { return "" }

// Pile stacks widgets vertically, aligning each to Align.
type Pile struct {
	Items []Widget
	Align lipgloss.Position
}

// NewPile returns a pile that centers its items.
func NewPile(items ...Widget) *Pile {
	return &Pile{Items: items, Align: lipgloss.Center}
}

// View joins the item views top to bottom.
func (p *Pile) View() string {
	if len(p.Items) == 0 {
		return ""
	}
	views := make([]string, len(p.Items))
	for i, it := range p.Items {
		views[i] = it.View()
	}
	return lipgloss.JoinVertical(p.Align, views...)
}

// Columns places widgets side by side, top aligned, separated by Gap
// blank cells.
type Columns struct {
	Items []Widget
	Gap   int
}

// DefaultGap separates adjacent columns.
const DefaultGap = 2

// NewColumns returns columns separated by DefaultGap.
func NewColumns(items ...Widget) *Columns {
	return &Columns{Items: items, Gap: DefaultGap}
}

// View joins the item views left to right. Each item keeps its own line
// breaks; shorter items are padded with blank lines.
func (c *Columns) View() string {
	if len(c.Items) == 0 {
		return ""
	}
	gap := strings.Repeat(" ", max(c.Gap, 0))
	parts := make([]string, 0, 2*len(c.Items)-1)
	for i, it := range c.Items {
		if i > 0 && gap != "" {
			parts = append(parts, gap)
		}
		parts = append(parts, it.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
