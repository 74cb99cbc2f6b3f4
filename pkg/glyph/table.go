package glyph

import (
	"github.com/matzehuels/qrterm/pkg/bitmap"
	"github.com/matzehuels/qrterm/pkg/errors"
)

const (
	full = FullBlock
	half = LowerHalfBlock
)

func seg(a Attr, s string) Segment { return Segment{Attr: a, Text: s} }

// table is indexed by TL<<3 | TR<<2 | BL<<1 | BR with Dark = 1.
var table = [16]Run{
	0b0000: {seg(Normal, full+full)},
	0b1111: {seg(Invert, full+full)},

	0b1100: {seg(Normal, half+half)},
	0b0011: {seg(Invert, half+half)},

	0b1000: {seg(Normal, half+full)},
	0b0010: {seg(Invert, half), seg(Normal, full)},
	0b0001: {seg(Normal, full), seg(Invert, half)},
	0b0100: {seg(Normal, full+half)},

	0b1010: {seg(Invert, full), seg(Normal, full)},
	0b0101: {seg(Normal, full), seg(Invert, full)},

	0b1001: {seg(Normal, half), seg(Invert, half)},
	0b0110: {seg(Invert, half), seg(Normal, half)},

	0b0111: {seg(Invert, half), seg(Invert, full)},
	0b1011: {seg(Invert, full), seg(Invert, half)},
	0b1101: {seg(Normal, half), seg(Invert, full)},
	0b1110: {seg(Invert, full), seg(Normal, half)},
}

// Index returns the table index of a square, or false when a corner holds
// something other than Light or Dark.
func Index(sq bitmap.Square) (int, bool) {
	idx := 0
	for _, p := range sq {
		if p != bitmap.Light && p != bitmap.Dark {
			return 0, false
		}
		idx = idx<<1 | int(p)
	}
	return idx, true
}

// Map returns a fresh copy of the glyph run for sq.
//
// Map panics with an INTERNAL_ERROR coded error if a corner of sq is not a
// valid pixel or the table has no entry for it; both are programming errors.
func Map(sq bitmap.Square) Run {
	idx, ok := Index(sq)
	if !ok {
		panic(errors.New(errors.ErrCodeInternal, "square %v has an invalid pixel", sq))
	}
	run := table[idx]
	if len(run) == 0 {
		panic(errors.New(errors.ErrCodeInternal, "no glyph run for square %v", sq))
	}
	return append(Run(nil), run...)
}
