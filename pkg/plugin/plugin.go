// Package plugin is the boundary between a markdown host and the renderer.
//
// A host hands every fenced code block to [Handler.RenderCode]. Blocks
// tagged "qrcode" carry raw data; blocks tagged "qrcode-ex" carry a YAML
// [Document]:
//
//	columns:
//	  - data: "Data to be qr encoded"
//	    autocaption: true   # optional, default true
//	    caption: "Manual"   # optional markdown caption
//
// Any other tag is declined so the host can offer the block elsewhere.
package plugin

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/qrterm/pkg/errors"
	"github.com/matzehuels/qrterm/pkg/render"
	"github.com/matzehuels/qrterm/pkg/widget"
)

// Languages handled by this plugin.
const (
	LangQRCode   = "qrcode"
	LangQRCodeEx = "qrcode-ex"
)

// ColumnRenderer renders requests side by side. *render.Engine satisfies it.
type ColumnRenderer interface {
	RenderColumns(reqs []render.Request) (*widget.Columns, error)
}

// Handler renders qrcode and qrcode-ex blocks.
type Handler struct {
	renderer ColumnRenderer
	logger   *log.Logger
}

// NewHandler creates a handler around r. A nil logger discards output.
func NewHandler(r ColumnRenderer, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Handler{renderer: r, logger: logger}
}

// Handles reports whether lang is one of the plugin's languages.
func (h *Handler) Handles(lang string) bool {
	return lang == LangQRCode || lang == LangQRCodeEx
}

// Document returns the column document a block describes. The boolean is
// false when the language is not handled. Blocks of either language without
// data fail with INVALID_CONFIG.
func (h *Handler) Document(lang, body string) (*Document, bool, error) {
	switch lang {
	case LangQRCode:
		if body == "" {
			return nil, true, errors.New(errors.ErrCodeInvalidConfig, "qrcode block has no data")
		}
		return SingleColumn(body), true, nil
	case LangQRCodeEx:
		doc, err := LoadDocument([]byte(body))
		if err != nil {
			return nil, true, err
		}
		return doc, true, nil
	default:
		return nil, false, nil
	}
}

// RenderCode renders a block. It returns (nil, false, nil) for languages it
// does not handle. Handled blocks render as a divider, the columns and a
// divider; failures are returned with handled set to true.
func (h *Handler) RenderCode(lang, body string) (widget.Widget, bool, error) {
	doc, ok, err := h.Document(lang, body)
	if !ok {
		h.logger.Debug("declined block", "lang", lang)
		return nil, false, nil
	}
	if err != nil {
		return nil, true, err
	}

	cols, err := h.renderer.RenderColumns(doc.Requests())
	if err != nil {
		return nil, true, err
	}
	h.logger.Debug("rendered block", "lang", lang, "columns", len(doc.Columns))

	return widget.NewPile(widget.Divider{}, cols, widget.Divider{}), true, nil
}
