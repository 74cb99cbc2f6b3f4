package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/matzehuels/qrterm/pkg/errors"
	"github.com/matzehuels/qrterm/pkg/glyph"
)

// Default theme colors: ANSI bright white and black.
const (
	DefaultLight = "15"
	DefaultDark  = "0"
)

// Theme maps glyph attributes to lipgloss styles. On a renderer without
// colors the theme is monochrome: attributes are folded into the glyphs.
type Theme struct {
	normal lipgloss.Style
	invert lipgloss.Style
	mono   bool
}

// NewTheme builds a theme on r. Normal draws light on dark, Invert dark on
// light. A nil r uses the default lipgloss renderer.
func NewTheme(r *lipgloss.Renderer, light, dark string) (*Theme, error) {
	if err := errors.ValidateColor(light); err != nil {
		return nil, err
	}
	if err := errors.ValidateColor(dark); err != nil {
		return nil, err
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	l, d := lipgloss.Color(light), lipgloss.Color(dark)
	return &Theme{
		normal: r.NewStyle().Foreground(l).Background(d),
		invert: r.NewStyle().Foreground(d).Background(l),
		mono:   r.ColorProfile() == termenv.Ascii,
	}, nil
}

// DefaultTheme returns the white-on-black theme on the default renderer.
func DefaultTheme() *Theme {
	t, _ := NewTheme(nil, DefaultLight, DefaultDark)
	return t
}

// Monochrome reports whether the theme draws without colors.
func (t *Theme) Monochrome() bool { return t.mono }

// Style returns the style for an attribute.
func (t *Theme) Style(a glyph.Attr) lipgloss.Style {
	if a == glyph.Invert {
		return t.invert
	}
	return t.normal
}

// Render draws b. Adjacent segments that share an attribute are styled
// together.
func (t *Theme) Render(b Block) string {
	if t.mono {
		return b.Plain()
	}
	var out strings.Builder
	var pending strings.Builder
	attr := glyph.Normal

	flush := func() {
		if pending.Len() > 0 {
			out.WriteString(t.Style(attr).Render(pending.String()))
			pending.Reset()
		}
	}

	for _, s := range b.Segments() {
		if s == LineBreak {
			flush()
			out.WriteByte('\n')
			continue
		}
		if s.Attr != attr {
			flush()
			attr = s.Attr
		}
		pending.WriteString(s.Text)
	}
	flush()
	return out.String()
}
