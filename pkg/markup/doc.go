// Package markup reads the markdown that surrounds and labels rendered
// codes.
//
// [Renderer.Inline] turns a caption written in inline markdown (emphasis,
// strong, code spans, links) into styled terminal text. [Fences] lists the
// fenced code blocks of a markdown document so a host can offer each one
// to the qrcode plugin.
//
// Both are built on goldmark's parser; only the AST is used, never its HTML
// renderer.
package markup
