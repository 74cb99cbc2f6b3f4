package server

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/qrterm/pkg/cache"
	"github.com/matzehuels/qrterm/pkg/errors"
	"github.com/matzehuels/qrterm/pkg/observability"
	"github.com/matzehuels/qrterm/pkg/plugin"
	"github.com/matzehuels/qrterm/pkg/render"
)

const (
	// maxBorder bounds the border query parameter.
	maxBorder = 32

	// cacheKind prefixes cache keys and names the cache in hook events.
	cacheKind = "render"
)

// handleData renders the data given in ?data= or in the request path.
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	data := q.Get("data")
	if data == "" {
		data = pathData(r)
	}
	if err := errors.ValidateData(data); err != nil {
		s.writeError(w, r, err)
		return
	}

	req := render.Request{Data: data, Autocaption: s.opts.Autocaption}
	if v := q.Get("autocaption"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid autocaption: %q", v))
			return
		}
		req.Autocaption = b
	}
	if q.Has("caption") {
		c := q.Get("caption")
		req.Caption = &c
	}

	s.serve(w, r, []render.Request{req})
}

// handleDocument renders a qrcode-ex document posted as the request body.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}

	doc, err := plugin.LoadDocument(body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	for i, c := range doc.Columns {
		if err := errors.ValidateData(c.Data); err != nil {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "column %d: %s", i+1, errors.UserMessage(err)))
			return
		}
	}

	s.serve(w, r, doc.Requests())
}

// serve renders reqs side by side, consulting the cache first.
func (s *Server) serve(w http.ResponseWriter, r *http.Request, reqs []render.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	border, err := s.border(q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	fl, err := s.pickFlavor(q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	key := cache.Key(cacheKind, s.opts.Level, s.opts.Light, s.opts.Dark, fl.name, border, reqs)
	if data, hit, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("cache read failed", "err", err)
	} else if hit {
		observability.Cache().OnCacheHit(ctx, cacheKind)
		writeText(w, "HIT", data)
		return
	}
	observability.Cache().OnCacheMiss(ctx, cacheKind)

	eng := render.NewEngine(s.opts.Encoder,
		render.WithTheme(fl.theme),
		render.WithMarkup(fl.markup),
		render.WithBorder(border),
		render.WithLogger(s.logger),
	)
	start := time.Now()
	cols, err := eng.RenderColumns(reqs)
	observability.Render().OnRenderComplete(ctx, len(reqs), time.Since(start), err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := []byte(cols.View() + "\n")
	if err := s.cache.Set(ctx, key, out, s.opts.CacheTTL); err != nil {
		s.logger.Warn("cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, cacheKind, len(out))
	}
	writeText(w, "MISS", out)
}

func (s *Server) border(q url.Values) (int, error) {
	v := q.Get("border")
	if v == "" {
		return s.opts.Border, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > maxBorder {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid border: %q (must be 0-%d)", v, maxBorder)
	}
	return n, nil
}

func (s *Server) pickFlavor(q url.Values) (flavor, error) {
	v := q.Get("color")
	if v == "" {
		return s.colored, nil
	}
	on, err := strconv.ParseBool(v)
	if err != nil {
		return flavor{}, errors.New(errors.ErrCodeInvalidInput, "invalid color: %q", v)
	}
	if on {
		return s.colored, nil
	}
	return s.plain, nil
}

// pathData returns the unescaped wildcard path segment. The router matches
// on RawPath when it is set and on the already decoded Path otherwise.
func pathData(r *http.Request) string {
	param := chi.URLParam(r, "*")
	if r.URL.RawPath == "" {
		return param
	}
	if unescaped, err := url.PathUnescape(param); err == nil {
		return unescaped
	}
	return param
}

func writeText(w http.ResponseWriter, cacheStatus string, data []byte) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Cache", cacheStatus)
	_, _ = w.Write(data)
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeEncoding):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("render failed", "id", requestIDFromContext(r.Context()), "err", err)
	} else {
		s.logger.Debug("request rejected", "id", requestIDFromContext(r.Context()), "err", err)
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, errors.UserMessage(err)+"\n")
}
