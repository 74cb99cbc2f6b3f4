package markup

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fence is a fenced code block found in a markdown document.
type Fence struct {
	Lang string // first word of the info string, may be empty
	Body string // block content without the trailing newline
	Line int    // 1-based line of the opening fence
}

// Fences returns the fenced code blocks of src in document order.
func Fences(src []byte) []Fence {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var out []Fence
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fc, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		var body strings.Builder
		lines := fc.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			body.Write(seg.Value(src))
		}

		out = append(out, Fence{
			Lang: string(fc.Language(src)),
			Body: strings.TrimSuffix(body.String(), "\n"),
			Line: fenceLine(src, fc),
		})
		return ast.WalkSkipChildren, nil
	})
	return out
}

// fenceLine locates the opening fence: the line before the first content
// line, or the line of the info string for an empty block.
func fenceLine(src []byte, fc *ast.FencedCodeBlock) int {
	if fc.Info != nil {
		return lineOf(src, fc.Info.Segment.Start)
	}
	if fc.Lines().Len() > 0 {
		return lineOf(src, fc.Lines().At(0).Start) - 1
	}
	return 0
}

func lineOf(src []byte, offset int) int {
	if offset > len(src) {
		offset = len(src)
	}
	return bytes.Count(src[:offset], []byte("\n")) + 1
}
