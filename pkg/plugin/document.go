package plugin

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/qrterm/pkg/errors"
	"github.com/matzehuels/qrterm/pkg/render"
)

// Column is one code in a qrcode-ex document.
type Column struct {
	Data        string  `yaml:"data"`
	Autocaption bool    `yaml:"autocaption"`
	Caption     *string `yaml:"caption,omitempty"`
}

// Request converts the column to a render request.
func (c Column) Request() render.Request {
	return render.Request{Data: c.Data, Autocaption: c.Autocaption, Caption: c.Caption}
}

// Document is the structured body of a qrcode-ex block.
type Document struct {
	Columns []Column `yaml:"columns"`
}

// Requests returns one render request per column, in order.
func (d *Document) Requests() []render.Request {
	reqs := make([]render.Request, len(d.Columns))
	for i, c := range d.Columns {
		reqs[i] = c.Request()
	}
	return reqs
}

// SingleColumn returns the document a plain qrcode block stands for: data
// with autocaption on and no explicit caption.
func SingleColumn(data string) *Document {
	return &Document{Columns: []Column{{Data: data, Autocaption: true}}}
}

// rawColumn keeps optional fields as pointers so defaults can be applied.
type rawColumn struct {
	Data        *string `yaml:"data"`
	Autocaption *bool   `yaml:"autocaption"`
	Caption     *string `yaml:"caption"`
}

type rawDocument struct {
	Columns []rawColumn `yaml:"columns"`
}

// LoadDocument parses a qrcode-ex YAML document. Unknown keys, a missing or
// empty column list and columns without data fail with INVALID_CONFIG.
// A column's autocaption defaults to true and its caption to none.
func LoadDocument(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var raw rawDocument
	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "qrcode-ex document is empty")
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid qrcode-ex document")
	}

	if raw.Columns == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "qrcode-ex document has no columns")
	}
	if len(raw.Columns) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "qrcode-ex document needs at least one column")
	}

	doc := &Document{Columns: make([]Column, len(raw.Columns))}
	for i, rc := range raw.Columns {
		if rc.Data == nil || *rc.Data == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "column %d: data is required", i+1)
		}
		col := Column{Data: *rc.Data, Autocaption: true, Caption: rc.Caption}
		if rc.Autocaption != nil {
			col.Autocaption = *rc.Autocaption
		}
		doc.Columns[i] = col
	}
	return doc, nil
}

// DumpDocument serializes doc as a qrcode-ex YAML document.
func DumpDocument(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode qrcode-ex document")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode qrcode-ex document")
	}
	return buf.Bytes(), nil
}
