package bitmap

// Pad returns a copy of m surrounded by width light cells on every side.
// The result has m.Rows()+2*width rows and m.Cols()+2*width columns.
// A negative width is treated as zero.
func Pad(m Matrix, width int) Matrix {
	if width < 0 {
		width = 0
	}
	cols := m.Cols() + 2*width

	out := make(Matrix, 0, m.Rows()+2*width)
	for i := 0; i < width; i++ {
		out = append(out, make([]Pixel, cols))
	}
	for _, row := range m {
		padded := make([]Pixel, cols)
		copy(padded[width:], row)
		out = append(out, padded)
	}
	for i := 0; i < width; i++ {
		out = append(out, make([]Pixel, cols))
	}
	return out
}
