package markup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/matzehuels/qrterm/pkg/widget"
)

var (
	colorCode = lipgloss.Color("36")  // Teal
	colorLink = lipgloss.Color("75")  // Light blue
	colorText = lipgloss.Color("255") // Bright white
)

// Renderer renders inline markdown with lipgloss styles.
type Renderer struct {
	md   goldmark.Markdown
	base lipgloss.Style
	code lipgloss.Style
	link lipgloss.Style
}

// NewRenderer creates a renderer whose styles are bound to r. A nil r uses
// the default lipgloss renderer.
func NewRenderer(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		md:   goldmark.New(),
		base: r.NewStyle().Foreground(colorText),
		code: r.NewStyle().Foreground(colorCode),
		link: r.NewStyle().Foreground(colorLink).Underline(true),
	}
}

// inlineState tracks the emphasis that applies to the next text node.
type inlineState struct {
	bold, italic, code, link int
}

func (s inlineState) style(r *Renderer) lipgloss.Style {
	st := r.base
	switch {
	case s.code > 0:
		st = r.code
	case s.link > 0:
		st = r.link
	}
	if s.bold > 0 {
		st = st.Bold(true)
	}
	if s.italic > 0 {
		st = st.Italic(true)
	}
	return st
}

// Inline renders src as a caption widget. Block structure is flattened:
// top-level blocks become separate lines.
func (r *Renderer) Inline(src string) widget.Widget {
	source := []byte(src)
	doc := r.md.Parser().Parse(text.NewReader(source))

	var (
		b       strings.Builder
		state   inlineState
		pending bool
	)
	write := func(s string) {
		if s == "" {
			return
		}
		if pending && b.Len() > 0 {
			b.WriteByte('\n')
		}
		pending = false
		b.WriteString(state.style(r).Render(s))
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n := n.(type) {
		case *ast.Emphasis:
			d := delta(entering)
			if n.Level >= 2 {
				state.bold += d
			} else {
				state.italic += d
			}
		case *ast.CodeSpan:
			state.code += delta(entering)
		case *ast.Link:
			state.link += delta(entering)
		case *ast.AutoLink:
			if entering {
				state.link++
				write(string(n.Label(source)))
				state.link--
			}
		case *ast.Heading:
			state.bold += delta(entering)
		case *ast.Text:
			if entering {
				write(string(n.Segment.Value(source)))
				if n.HardLineBreak() {
					pending = true
				} else if n.SoftLineBreak() {
					b.WriteByte(' ')
				}
			}
		case *ast.String:
			if entering {
				write(string(n.Value))
			}
		case *ast.RawHTML, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}

		if !entering && n.Type() == ast.TypeBlock && n.Parent() != nil && n.Parent().Kind() == ast.KindDocument {
			pending = true
		}
		return ast.WalkContinue, nil
	})

	return widget.Text{Content: b.String()}
}

func delta(entering bool) int {
	if entering {
		return 1
	}
	return -1
}
