// Package bitmap holds two-level pixel matrices and the geometry that turns
// them into 2x2 squares for half-block rendering.
//
// # Overview
//
// A [Matrix] is a rectangular grid of [Pixel] values, usually the module
// grid of a QR symbol. Rendering goes through two steps here:
//
//  1. [Pad] surrounds the matrix with a light quiet zone.
//  2. [Partition] groups the padded matrix into rows of [Square] values,
//     each covering two source rows and two source columns.
//
// # Odd Dimensions
//
// When the padded matrix has an odd number of rows or columns the last
// square-row or square-column hangs off the edge. [Resolve] reports
// out-of-bounds coordinates as [Dark], so those corners render dark:
//
//	m := bitmap.Matrix{{bitmap.Light}}
//	bitmap.Partition(m) // [[{Light, Dark, Dark, Dark}]]
//
// All functions are pure and never mutate their input.
package bitmap
