package bitmap

import (
	"fmt"
	"strings"

	"github.com/matzehuels/qrterm/pkg/errors"
)

// DefaultBorder is the quiet-zone width QR readers expect, in modules.
const DefaultBorder = 4

// Pixel is the state of a single matrix cell.
type Pixel uint8

const (
	Light Pixel = iota
	Dark
)

// String returns "L" or "D".
func (p Pixel) String() string {
	switch p {
	case Light:
		return "L"
	case Dark:
		return "D"
	default:
		return fmt.Sprintf("Pixel(%d)", uint8(p))
	}
}

// Matrix is a rectangular grid of pixels indexed [row][col].
type Matrix [][]Pixel

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of columns, taken from the first row.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Validate reports an empty or non-rectangular matrix.
func (m Matrix) Validate() error {
	if m.Rows() == 0 || m.Cols() == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "matrix must have at least one row and one column")
	}
	cols := m.Cols()
	for i, row := range m {
		if len(row) != cols {
			return errors.New(errors.ErrCodeInvalidInput, "matrix row %d has %d cells, want %d", i, len(row), cols)
		}
	}
	return nil
}

// String draws the matrix with '#' for dark and '.' for light cells.
func (m Matrix) String() string {
	var b strings.Builder
	for i, row := range m {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, p := range row {
			if p == Dark {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// FromBools builds a matrix where true is dark.
func FromBools(rows [][]bool) Matrix {
	m := make(Matrix, len(rows))
	for i, row := range rows {
		m[i] = make([]Pixel, len(row))
		for j, dark := range row {
			if dark {
				m[i][j] = Dark
			}
		}
	}
	return m
}

// Parse reads the format produced by [Matrix.String]: one line per row,
// '#' or '1' for dark, '.' or '0' for light. Blank lines are skipped.
func Parse(s string) (Matrix, error) {
	var m Matrix
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]Pixel, 0, len(line))
		for _, c := range line {
			switch c {
			case '#', '1':
				row = append(row, Dark)
			case '.', '0':
				row = append(row, Light)
			default:
				return nil, errors.New(errors.ErrCodeInvalidInput, "unexpected matrix character %q", c)
			}
		}
		m = append(m, row)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
