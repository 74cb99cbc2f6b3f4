package bitmap

// Corner positions within a [Square].
const (
	TopLeft = iota
	TopRight
	BottomLeft
	BottomRight
)

// Square is a 2x2 block of pixels ordered top-left, top-right,
// bottom-left, bottom-right.
type Square [4]Pixel

// Invert returns the square with every light corner dark and vice versa.
func (s Square) Invert() Square {
	var out Square
	for i, p := range s {
		if p == Light {
			out[i] = Dark
		} else {
			out[i] = Light
		}
	}
	return out
}

// String returns the corners as "L,D,L,D".
func (s Square) String() string {
	return s[0].String() + "," + s[1].String() + "," + s[2].String() + "," + s[3].String()
}

// Resolve returns the pixel at (row, col). Coordinates outside m resolve
// to Dark.
func Resolve(m Matrix, row, col int) Pixel {
	if row < 0 || row >= m.Rows() || col < 0 || col >= len(m[row]) {
		return Dark
	}
	if m[row][col] == Light {
		return Light
	}
	return Dark
}

// Partition groups m into rows of squares, two source rows and two source
// columns at a time, in row-major order. The result has ceil(rows/2) rows
// of ceil(cols/2) squares.
func Partition(m Matrix) [][]Square {
	rows, cols := m.Rows(), m.Cols()

	out := make([][]Square, 0, (rows+1)/2)
	for r := 0; r < rows; r += 2 {
		line := make([]Square, 0, (cols+1)/2)
		for c := 0; c < cols; c += 2 {
			line = append(line, Square{
				Resolve(m, r, c),
				Resolve(m, r, c+1),
				Resolve(m, r+1, c),
				Resolve(m, r+1, c+1),
			})
		}
		out = append(out, line)
	}
	return out
}
