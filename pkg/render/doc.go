// Package render turns pixel matrices into half-block terminal text.
//
// # Overview
//
// Rendering is a strictly one-way pipeline:
//
//	matrix -> padded matrix -> squares -> glyph runs -> Block -> Code widget
//
// [Compose] builds a [Block] from partitioned squares. A [Theme] colors the
// block with lipgloss styles. An [Engine] drives the whole pipeline for a
// [Request]: it encodes the data, renders the block and adds a caption.
//
//	eng := render.NewEngine(qrcode.NewEncoder(qrcode.DefaultLevel))
//	code, err := eng.Render(render.Request{Data: "https://example.com", Autocaption: true})
//	fmt.Println(code.View())
//
// # Captions
//
// With Autocaption set and no explicit Caption, the caption is the first
// line of the data. An explicit empty caption suppresses it.
//
// # Columns
//
// [Engine.RenderColumns] renders several requests and places them side by
// side. Each code keeps its own line breaks.
//
// Every function here is pure; an Engine holds only configuration and is
// safe for concurrent use.
package render
