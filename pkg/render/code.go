package render

import "github.com/matzehuels/qrterm/pkg/widget"

// Code is a rendered code with an optional caption centered below it.
type Code struct {
	Block   Block
	Caption string

	theme   *Theme
	caption widget.Widget
}

// View draws the code and its caption.
func (c *Code) View() string {
	items := []widget.Widget{widget.Text{Content: c.theme.Render(c.Block)}}
	if c.caption != nil {
		items = append(items, c.caption)
	}
	return widget.NewPile(items...).View()
}
