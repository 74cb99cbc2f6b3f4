package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/qrterm/pkg/bitmap"
	"github.com/matzehuels/qrterm/pkg/errors"
	"github.com/matzehuels/qrterm/pkg/widget"
)

// Encoder turns data into a pixel matrix.
type Encoder interface {
	Encode(data string) (bitmap.Matrix, error)
}

// Markup renders caption text.
type Markup interface {
	Inline(text string) widget.Widget
}

// plainMarkup shows captions verbatim.
type plainMarkup struct{}

func (plainMarkup) Inline(text string) widget.Widget { return widget.Text{Content: text} }

// Request describes one code to render.
type Request struct {
	Data        string
	Autocaption bool
	Caption     *string
}

// ResolveCaption returns the caption to show: the explicit caption if set,
// else the first line of Data when Autocaption is on, else "".
func (r Request) ResolveCaption() string {
	if r.Caption != nil {
		return *r.Caption
	}
	if r.Autocaption {
		return strings.Split(r.Data, "\n")[0]
	}
	return ""
}

// Engine renders requests into widgets.
type Engine struct {
	encoder Encoder
	markup  Markup
	theme   *Theme
	border  int
	logger  *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithMarkup sets the caption renderer. Captions are shown verbatim by
// default.
func WithMarkup(m Markup) Option {
	return func(e *Engine) { e.markup = m }
}

// WithTheme sets the glyph colors.
func WithTheme(t *Theme) Option {
	return func(e *Engine) { e.theme = t }
}

// WithBorder sets the quiet-zone width. Negative values are ignored.
func WithBorder(width int) Option {
	return func(e *Engine) {
		if width >= 0 {
			e.border = width
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates an engine around enc with a four-module border, the
// default theme and plain captions.
func NewEngine(enc Encoder, opts ...Option) *Engine {
	e := &Engine{
		encoder: enc,
		markup:  plainMarkup{},
		border:  bitmap.DefaultBorder,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.theme == nil {
		e.theme = DefaultTheme()
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	return e
}

// Border returns the configured quiet-zone width.
func (e *Engine) Border() int { return e.border }

// Theme returns the configured theme.
func (e *Engine) Theme() *Theme { return e.theme }

// Render encodes req.Data and returns the captioned code widget.
// Encoder failures are reported as ENCODING_FAILED; nothing is rendered.
func (e *Engine) Render(req Request) (*Code, error) {
	m, err := e.encoder.Encode(req.Data)
	if err != nil {
		if errors.GetCode(err) == "" {
			err = errors.Wrap(errors.ErrCodeEncoding, err, "cannot encode data")
		}
		return nil, err
	}

	block, err := RenderMatrix(m, e.border)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncoding, err, "encoder returned an invalid matrix")
	}
	e.logger.Debug("rendered code", "modules", m.Rows(), "lines", block.Rows(), "width", block.Width())

	code := &Code{Block: block, Caption: req.ResolveCaption(), theme: e.theme}
	if code.Caption != "" {
		code.caption = e.markup.Inline(code.Caption)
	}
	return code, nil
}

// RenderColumns renders every request and places the codes side by side
// in input order. It fails without partial output if any request fails.
func (e *Engine) RenderColumns(reqs []Request) (*widget.Columns, error) {
	items := make([]widget.Widget, 0, len(reqs))
	for i, req := range reqs {
		code, err := e.Render(req)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		items = append(items, code)
	}
	return widget.NewColumns(items...), nil
}
