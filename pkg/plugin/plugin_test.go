package plugin

import (
	"strings"
	"testing"

	"github.com/matzehuels/qrterm/pkg/errors"
	"github.com/matzehuels/qrterm/pkg/render"
	"github.com/matzehuels/qrterm/pkg/widget"
)

// recordingRenderer captures the requests it is asked to render.
type recordingRenderer struct {
	calls [][]render.Request
	err   error
}

func (r *recordingRenderer) RenderColumns(reqs []render.Request) (*widget.Columns, error) {
	r.calls = append(r.calls, reqs)
	if r.err != nil {
		return nil, r.err
	}
	items := make([]widget.Widget, len(reqs))
	for i, req := range reqs {
		items[i] = widget.Text{Content: req.Data}
	}
	return widget.NewColumns(items...), nil
}

func TestRenderCodeDeclinesOtherLanguages(t *testing.T) {
	rec := &recordingRenderer{}
	h := NewHandler(rec, nil)

	for _, lang := range []string{"", "notqrcode", "python", "QRCODE", "qrcode2"} {
		w, handled, err := h.RenderCode(lang, "data")
		if handled || w != nil || err != nil {
			t.Errorf("RenderCode(%q) = %v, %v, %v; want nil, false, nil", lang, w, handled, err)
		}
	}
	if len(rec.calls) != 0 {
		t.Errorf("renderer called %d times for declined blocks", len(rec.calls))
	}
}

func TestRenderCodeQRCodeDefaults(t *testing.T) {
	rec := &recordingRenderer{}
	h := NewHandler(rec, nil)

	w, handled, err := h.RenderCode(LangQRCode, "data")
	if err != nil || !handled {
		t.Fatalf("RenderCode = %v, %v", handled, err)
	}

	pile, ok := w.(*widget.Pile)
	if !ok || len(pile.Items) != 3 {
		t.Fatalf("widget = %#v, want a 3-item pile", w)
	}
	if _, ok := pile.Items[0].(widget.Divider); !ok {
		t.Error("first item is not a divider")
	}
	if _, ok := pile.Items[1].(*widget.Columns); !ok {
		t.Error("second item is not columns")
	}
	if _, ok := pile.Items[2].(widget.Divider); !ok {
		t.Error("last item is not a divider")
	}

	if len(rec.calls) != 1 || len(rec.calls[0]) != 1 {
		t.Fatalf("calls = %v, want one call with one column", rec.calls)
	}
	got := rec.calls[0][0]
	// A plain qrcode block always autocaptions.
	if got.Data != "data" || !got.Autocaption || got.Caption != nil {
		t.Errorf("request = %+v, want {data true nil}", got)
	}
}

func TestRenderCodeQRCodeEx(t *testing.T) {
	rec := &recordingRenderer{}
	h := NewHandler(rec, nil)

	body := `
columns:
  - data: new data
    autocaption: false
    caption: A different caption
`
	_, handled, err := h.RenderCode(LangQRCodeEx, body)
	if err != nil || !handled {
		t.Fatalf("RenderCode = %v, %v", handled, err)
	}

	got := rec.calls[0][0]
	if got.Data != "new data" || got.Autocaption || got.Caption == nil || *got.Caption != "A different caption" {
		t.Errorf("request = %+v", got)
	}
}

func TestRenderCodeMultipleColumns(t *testing.T) {
	rec := &recordingRenderer{}
	h := NewHandler(rec, nil)

	body := `
columns:
  - data: column1
    autocaption: false
    caption: A different caption
  - data: column2
`
	w, _, err := h.RenderCode(LangQRCodeEx, body)
	if err != nil {
		t.Fatalf("RenderCode: %v", err)
	}
	reqs := rec.calls[0]
	if len(reqs) != 2 || reqs[0].Data != "column1" || reqs[1].Data != "column2" {
		t.Fatalf("requests = %+v", reqs)
	}
	if !reqs[1].Autocaption || reqs[1].Caption != nil {
		t.Errorf("column 2 defaults = %+v, want autocaption true and no caption", reqs[1])
	}
	if !strings.Contains(w.View(), "column1  column2") {
		t.Errorf("view = %q", w.View())
	}
}

func TestRenderCodeMalformed(t *testing.T) {
	rec := &recordingRenderer{}
	h := NewHandler(rec, nil)

	w, handled, err := h.RenderCode(LangQRCodeEx, "columns: [")
	if !handled || w != nil {
		t.Errorf("RenderCode = %v, %v; want nil, true", w, handled)
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
	if len(rec.calls) != 0 {
		t.Error("renderer called for a malformed document")
	}
}

func TestRenderCodeEmptyData(t *testing.T) {
	tests := []struct {
		lang string
		body string
	}{
		{LangQRCode, ""},
		{LangQRCodeEx, "columns:\n  - data: \"\""},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			rec := &recordingRenderer{}
			h := NewHandler(rec, nil)

			w, handled, err := h.RenderCode(tt.lang, tt.body)
			if !handled || w != nil {
				t.Errorf("RenderCode = %v, %v; want nil, true", w, handled)
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidConfig)
			}
			if len(rec.calls) != 0 {
				t.Error("renderer called for a block without data")
			}
		})
	}
}

func TestRenderCodeRenderError(t *testing.T) {
	rec := &recordingRenderer{err: errors.New(errors.ErrCodeEncoding, "too big")}
	h := NewHandler(rec, nil)

	_, handled, err := h.RenderCode(LangQRCode, "data")
	if !handled || !errors.Is(err, errors.ErrCodeEncoding) {
		t.Errorf("RenderCode = %v, %v", handled, err)
	}
}

func TestLoadDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"syntax", "columns: ["},
		{"no columns", "other: 1"},
		{"columns missing", "{}"},
		{"empty columns", "columns: []"},
		{"missing data", "columns:\n  - caption: x"},
		{"empty data", "columns:\n  - data: \"\""},
		{"unknown column key", "columns:\n  - data: x\n    size: 3"},
		{"not a mapping", "- data: x"},
		{"bad autocaption", "columns:\n  - data: x\n    autocaption: [1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDocument([]byte(tt.body))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("LoadDocument(%q) error = %v, want %s", tt.body, err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoadDocumentNullCaption(t *testing.T) {
	doc, err := LoadDocument([]byte("columns:\n  - data: x\n    caption: null\n"))
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if doc.Columns[0].Caption != nil {
		t.Errorf("caption = %q, want nil", *doc.Columns[0].Caption)
	}
}

func TestDumpDocument(t *testing.T) {
	caption := "Scan me"
	doc := &Document{Columns: []Column{
		{Data: "https://example.com", Autocaption: false, Caption: &caption},
		{Data: "second", Autocaption: true},
	}}

	out, err := DumpDocument(doc)
	if err != nil {
		t.Fatalf("DumpDocument: %v", err)
	}
	if !strings.HasPrefix(string(out), "columns:\n") {
		t.Errorf("output = %q", out)
	}

	back, err := LoadDocument(out)
	if err != nil {
		t.Fatalf("LoadDocument(dump): %v", err)
	}
	if len(back.Columns) != 2 || back.Columns[0].Autocaption || *back.Columns[0].Caption != caption ||
		back.Columns[1].Caption != nil || !back.Columns[1].Autocaption {
		t.Errorf("reloaded = %+v", back.Columns)
	}
}

func TestHandles(t *testing.T) {
	h := NewHandler(nil, nil)
	if !h.Handles(LangQRCode) || !h.Handles(LangQRCodeEx) || h.Handles("go") {
		t.Error("Handles() disagrees with the supported languages")
	}
}
