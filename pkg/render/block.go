package render

import (
	"strings"

	"github.com/matzehuels/qrterm/pkg/bitmap"
	"github.com/matzehuels/qrterm/pkg/glyph"
)

// LineBreak separates consecutive rows in [Block.Segments].
var LineBreak = glyph.Segment{Text: "\n"}

// Block is composed half-block text: one glyph run per square-row.
// A Block is immutable once built.
type Block struct {
	rows []glyph.Run
}

// Compose maps every square to its glyph run and concatenates the runs of
// each square-row in column order. Rows are separated by line breaks; there
// is no break after the last row.
func Compose(rows [][]bitmap.Square) Block {
	out := make([]glyph.Run, len(rows))
	for i, row := range rows {
		line := make(glyph.Run, 0, 2*len(row))
		for _, sq := range row {
			line = append(line, glyph.Map(sq)...)
		}
		out[i] = line
	}
	return Block{rows: out}
}

// Rows returns the number of text lines.
func (b Block) Rows() int { return len(b.rows) }

// Row returns a copy of line i.
func (b Block) Row(i int) glyph.Run {
	return append(glyph.Run(nil), b.rows[i]...)
}

// Width returns the width in cells of the widest line.
func (b Block) Width() int {
	w := 0
	for _, r := range b.rows {
		w = max(w, r.Width())
	}
	return w
}

// Segments returns every segment in display order with [LineBreak]
// between rows.
func (b Block) Segments() []glyph.Segment {
	var out []glyph.Segment
	for i, r := range b.rows {
		if i > 0 {
			out = append(out, LineBreak)
		}
		out = append(out, r...)
	}
	return out
}

// Text returns the glyphs without colors, rows joined by newlines.
func (b Block) Text() string {
	lines := make([]string, len(b.rows))
	for i, r := range b.rows {
		lines[i] = r.Text()
	}
	return strings.Join(lines, "\n")
}

// Plain returns the glyphs with attributes folded in, readable without
// colors.
func (b Block) Plain() string {
	lines := make([]string, len(b.rows))
	for i, r := range b.rows {
		lines[i] = r.Plain()
	}
	return strings.Join(lines, "\n")
}

// RenderMatrix pads m with border light cells and composes it.
func RenderMatrix(m bitmap.Matrix, border int) (Block, error) {
	if err := m.Validate(); err != nil {
		return Block{}, err
	}
	return Compose(bitmap.Partition(bitmap.Pad(m, border))), nil
}
