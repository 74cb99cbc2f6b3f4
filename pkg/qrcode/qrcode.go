// Package qrcode encodes strings as QR module matrices.
//
// The encoder returns the bare symbol without a quiet zone; callers pad it
// with [bitmap.Pad] before rendering.
package qrcode

import (
	"strings"

	"rsc.io/qr"

	"github.com/matzehuels/qrterm/pkg/bitmap"
	"github.com/matzehuels/qrterm/pkg/errors"
)

// Level is a QR error-correction level.
type Level = qr.Level

// DefaultLevel is the highest error-correction level.
const DefaultLevel = qr.H

// ParseLevel converts "L", "M", "Q" or "H" (any case) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return qr.L, nil
	case "M":
		return qr.M, nil
	case "Q":
		return qr.Q, nil
	case "H", "":
		return qr.H, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidConfig, "invalid error correction level: %q (must be L, M, Q or H)", s)
	}
}

// LevelName returns the letter of a level.
func LevelName(l Level) string {
	switch l {
	case qr.L:
		return "L"
	case qr.M:
		return "M"
	case qr.Q:
		return "Q"
	default:
		return "H"
	}
}

// Encoder encodes strings at a fixed error-correction level.
// The zero value encodes at level L.
type Encoder struct {
	Level Level
}

// NewEncoder returns an encoder for level.
func NewEncoder(level Level) *Encoder {
	return &Encoder{Level: level}
}

// Encode returns the module matrix for data. Data that does not fit the
// largest symbol at the encoder's level fails with ENCODING_FAILED.
func (e *Encoder) Encode(data string) (bitmap.Matrix, error) {
	code, err := qr.Encode(data, e.Level)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncoding, err, "cannot encode %d bytes at level %s", len(data), LevelName(e.Level))
	}

	m := make(bitmap.Matrix, code.Size)
	for y := range m {
		m[y] = make([]bitmap.Pixel, code.Size)
		for x := range m[y] {
			if code.Black(x, y) {
				m[y][x] = bitmap.Dark
			}
		}
	}
	return m, nil
}
