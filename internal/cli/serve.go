package cli

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/qrterm/pkg/cache"
	qrerrors "github.com/matzehuels/qrterm/pkg/errors"
	"github.com/matzehuels/qrterm/pkg/observability"
	"github.com/matzehuels/qrterm/pkg/qrcode"
	"github.com/matzehuels/qrterm/pkg/server"
)

// redisPrefix namespaces server entries in a shared redis.
const redisPrefix = appName + ":"

type serveOpts struct {
	addr     string
	redisURL string
	noCache  bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered codes over HTTP",
		Long: `Serve rendered codes over HTTP.

  GET  /{data}   render one code (?caption=, ?autocaption=false, ?border=, ?color=false)
  GET  /?data=   same, with the data in the query
  POST /render   render a qrcode-ex YAML document

Responses are cached in redis when --redis (or server.redis_url) is set,
otherwise in the local cache directory.`,
		Example: `  qrterm serve --addr :9000
  curl localhost:9000/https://example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&opts.redisURL, "redis", "", "redis URL for the response cache (default from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable response caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cmd *cobra.Command, opts serveOpts) error {
	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()

	addr := c.cfg.Server.Addr
	if opts.addr != "" {
		addr = opts.addr
	}
	redisURL := c.cfg.Server.RedisURL
	if opts.redisURL != "" {
		redisURL = opts.redisURL
	}

	level, err := qrcode.ParseLevel(c.cfg.Level)
	if err != nil {
		return err
	}
	ttl, err := c.cfg.CacheTTL()
	if err != nil {
		return err
	}

	store, backend, err := newServerCache(ctx, opts.noCache, redisURL)
	if err != nil {
		return err
	}
	defer store.Close()

	hooks := logHooks{logger: logger}
	observability.SetRenderHooks(hooks)
	observability.SetCacheHooks(hooks)

	profile := termenv.TrueColor
	if c.color == colorNever {
		profile = termenv.Ascii
	}

	srv, err := server.New(server.Options{
		Encoder:     qrcode.NewEncoder(level),
		Level:       qrcode.LevelName(level),
		Border:      c.cfg.Border,
		Autocaption: c.cfg.Autocaption,
		Light:       c.cfg.Theme.Light,
		Dark:        c.cfg.Theme.Dark,
		Profile:     profile,
		Cache:       store,
		CacheTTL:    ttl,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	printInfo(out, "Serving codes on %s", StyleTitle.Render(addr))
	printKeyValue(out, "level", qrcode.LevelName(level))
	printKeyValue(out, "cache", backend)

	err = srv.ListenAndServe(ctx, addr)
	if errors.Is(err, context.Canceled) {
		printSuccess(out, "Server stopped")
	}
	return err
}

// newServerCache picks the response cache: none, redis, or the file cache.
// It also returns a short description for display.
func newServerCache(ctx context.Context, noCache bool, redisURL string) (cache.Cache, string, error) {
	switch {
	case noCache:
		return cache.NewNullCache(), "disabled", nil
	case redisURL != "":
		rc, err := cache.NewRedisCache(ctx, redisURL, redisPrefix)
		if err != nil {
			return nil, "", qrerrors.Wrap(qrerrors.ErrCodeInvalidConfig, err, "connect to redis")
		}
		return rc, "redis", nil
	default:
		fc, err := newCache(false)
		if err != nil {
			return nil, "", err
		}
		if f, ok := fc.(*cache.FileCache); ok {
			return fc, f.Dir(), nil
		}
		return fc, "disabled", nil
	}
}

// logHooks reports server render and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnRenderComplete(_ context.Context, columns int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "columns", columns, "err", err)
		return
	}
	h.logger.Debug("rendered", "columns", columns, "duration", d.Round(time.Microsecond))
}

func (h logHooks) OnCacheHit(_ context.Context, kind string) {
	h.logger.Debug("cache hit", "kind", kind)
}

func (h logHooks) OnCacheMiss(_ context.Context, kind string) {
	h.logger.Debug("cache miss", "kind", kind)
}

func (h logHooks) OnCacheSet(_ context.Context, kind string, size int) {
	h.logger.Debug("cache set", "kind", kind, "bytes", size)
}
