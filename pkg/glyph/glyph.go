// Package glyph maps 2x2 pixel squares to half-block glyph runs.
//
// A terminal cell shows two stacked pixels when it draws a lower half block
// with independent foreground and background colors. [Map] covers all
// sixteen light/dark patterns of a [bitmap.Square] with a fixed table; every
// run it returns is exactly two cells wide.
package glyph

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Attr selects the color pairing of a segment.
type Attr uint8

const (
	// Normal draws a bright foreground on a dark background.
	Normal Attr = iota
	// Invert swaps the foreground and background of Normal.
	Invert
)

// String returns "N" or "I".
func (a Attr) String() string {
	if a == Invert {
		return "I"
	}
	return "N"
}

// Swap returns the opposite attribute.
func (a Attr) Swap() Attr {
	if a == Invert {
		return Normal
	}
	return Invert
}

// Glyphs used by the table.
const (
	FullBlock      = "█"
	LowerHalfBlock = "▄"
	UpperHalfBlock = "▀"
)

// Segment is a glyph string drawn with one attribute.
type Segment struct {
	Attr Attr
	Text string
}

// Plain returns the segment's glyphs as they read without colors, where
// the glyph itself is light and the cell background is dark. Normal text
// is unchanged; Invert text has its light and dark halves swapped.
func (s Segment) Plain() string {
	if s.Attr != Invert {
		return s.Text
	}
	return invertPlain.Replace(s.Text)
}

var invertPlain = strings.NewReplacer(
	FullBlock, " ",
	" ", FullBlock,
	LowerHalfBlock, UpperHalfBlock,
	UpperHalfBlock, LowerHalfBlock,
)

// Run is the ordered output for one square.
type Run []Segment

var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Width returns the number of terminal cells the run occupies.
func (r Run) Width() int {
	n := 0
	for _, s := range r {
		n += widthCond.StringWidth(s.Text)
	}
	return n
}

// Text returns the glyphs of the run without attributes.
func (r Run) Text() string {
	var b strings.Builder
	for _, s := range r {
		b.WriteString(s.Text)
	}
	return b.String()
}

// String renders the run as "[(N,"██")]" for debugging and test output.
func (r Run) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range r {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(" + s.Attr.String() + ",\"" + s.Text + "\")")
	}
	b.WriteByte(']')
	return b.String()
}

// Plain returns the glyphs of the run with attributes folded in.
func (r Run) Plain() string {
	var b strings.Builder
	for _, s := range r {
		b.WriteString(s.Plain())
	}
	return b.String()
}

// Cells splits the run into one single-glyph segment per terminal cell.
func (r Run) Cells() []Segment {
	var out []Segment
	for _, s := range r {
		for _, c := range s.Text {
			out = append(out, Segment{Attr: s.Attr, Text: string(c)})
		}
	}
	return out
}
