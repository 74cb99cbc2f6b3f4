// Package server exposes rendering over HTTP so codes can be fetched with
// curl straight into a terminal:
//
//	curl localhost:8080/https://example.com
//	curl 'localhost:8080/?data=hello%0Aworld&autocaption=false'
//	curl --data-binary @columns.yaml localhost:8080/render
//
// The paths /healthz and /version are reserved.
//
// Responses are plain text with ANSI colors. Rendered output is cached by a
// hash of everything that affects it.
package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/muesli/termenv"

	"github.com/matzehuels/qrterm/pkg/bitmap"
	"github.com/matzehuels/qrterm/pkg/buildinfo"
	"github.com/matzehuels/qrterm/pkg/cache"
	"github.com/matzehuels/qrterm/pkg/markup"
	"github.com/matzehuels/qrterm/pkg/render"
)

// maxBodyBytes bounds POST /render documents.
const maxBodyBytes = 64 << 10

// Options configures a Server.
type Options struct {
	Encoder     render.Encoder
	Level       string // error-correction level name, part of cache keys
	Border      int
	Autocaption bool
	Light       string
	Dark        string
	Profile     termenv.Profile // color profile used for colored responses
	Cache       cache.Cache
	CacheTTL    time.Duration
	Logger      *log.Logger
}

// flavor is a theme and caption renderer bound to one color profile.
type flavor struct {
	name   string
	theme  *render.Theme
	markup *markup.Renderer
}

// Server renders codes for HTTP clients.
type Server struct {
	opts    Options
	colored flavor
	plain   flavor
	cache   cache.Cache
	logger  *log.Logger
}

// New validates opts and builds a server.
func New(opts Options) (*Server, error) {
	if opts.Border < 0 {
		opts.Border = bitmap.DefaultBorder
	}
	if opts.Light == "" {
		opts.Light = render.DefaultLight
	}
	if opts.Dark == "" {
		opts.Dark = render.DefaultDark
	}

	colored, err := newFlavor("color", opts.Profile, opts.Light, opts.Dark)
	if err != nil {
		return nil, err
	}
	plain, err := newFlavor("plain", termenv.Ascii, opts.Light, opts.Dark)
	if err != nil {
		return nil, err
	}

	s := &Server{
		opts:    opts,
		colored: colored,
		plain:   plain,
		cache:   opts.Cache,
		logger:  opts.Logger,
	}
	if s.cache == nil {
		s.cache = cache.NewNullCache()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s, nil
}

func newFlavor(name string, profile termenv.Profile, light, dark string) (flavor, error) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	theme, err := render.NewTheme(r, light, dark)
	if err != nil {
		return flavor{}, err
	}
	return flavor{name: name, theme: theme, markup: markup.NewRenderer(r)}, nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok\n")
	})
	r.Get("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, buildinfo.String()+"\n")
	})
	r.Post("/render", s.handleDocument)
	r.Get("/", s.handleData)
	r.Get("/*", s.handleData)

	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("Listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("Shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}
