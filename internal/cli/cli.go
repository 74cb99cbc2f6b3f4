// Package cli implements the qrterm command-line interface.
//
// Commands:
//   - render: encode arguments and print the codes side by side
//   - doc: render every qrcode and qrcode-ex block of a markdown file
//   - present: page through a file's code blocks full screen
//   - serve: render codes over HTTP
//   - cache: manage the response cache
//
// Every command reads the TOML config (see package config) before it runs;
// flags override file values.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/qrterm/pkg/buildinfo"
	"github.com/matzehuels/qrterm/pkg/cache"
	"github.com/matzehuels/qrterm/pkg/config"
	"github.com/matzehuels/qrterm/pkg/errors"
	"github.com/matzehuels/qrterm/pkg/markup"
	"github.com/matzehuels/qrterm/pkg/qrcode"
	"github.com/matzehuels/qrterm/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "qrterm"

// Values accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	color      string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		color:  colorAuto,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "qrterm renders QR codes as terminal text",
		Long: `qrterm draws QR codes with half-block characters so two rows of modules
fit in one line of text. Codes can be rendered from arguments, from the
qrcode and qrcode-ex blocks of a markdown file, or served over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.setup()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/qrterm/config.toml)")
	root.PersistentFlags().StringVar(&c.color, "color", colorAuto, "color output: auto, always, never")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.docCommand())
	root.AddCommand(c.presentCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup validates global flags and loads the config file.
func (c *CLI) setup() error {
	switch c.color {
	case colorAuto, colorAlways, colorNever:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "invalid --color: %q (must be auto, always or never)", c.color)
	}

	path, err := c.configFile()
	if err != nil {
		c.Logger.Debug("no config directory", "err", err)
		return nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.Logger.Debug("loaded config", "path", path)
	return nil
}

// configFile returns --config, or the default location. An explicit path
// must exist.
func (c *CLI) configFile() (string, error) {
	if c.configPath != "" {
		if _, err := os.Stat(c.configPath); os.IsNotExist(err) {
			return "", errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", c.configPath)
		}
		return c.configPath, nil
	}
	dir, err := config.Dir(appName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, config.FileName), nil
}

// =============================================================================
// Engine Factory
// =============================================================================

// codeOpts holds the flags shared by commands that render codes.
type codeOpts struct {
	border int
	level  string
}

func addCodeFlags(cmd *cobra.Command, o *codeOpts) {
	cmd.Flags().IntVar(&o.border, "border", -1, "quiet-zone width in modules (default from config)")
	cmd.Flags().StringVar(&o.level, "level", "", "error correction level: L, M, Q, H (default from config)")
}

// newRenderer returns a lipgloss renderer for w honoring --color.
func (c *CLI) newRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch c.color {
	case colorAlways:
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI256)
		}
	case colorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// newEngine builds a render engine writing to w, applying flag overrides
// on top of the config.
func (c *CLI) newEngine(w io.Writer, logger *log.Logger, o codeOpts) (*render.Engine, error) {
	border := c.cfg.Border
	if o.border < -1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid --border: %d", o.border)
	}
	if o.border >= 0 {
		border = o.border
	}

	levelName := c.cfg.Level
	if o.level != "" {
		levelName = o.level
	}
	level, err := qrcode.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	r := c.newRenderer(w)
	theme, err := render.NewTheme(r, c.cfg.Theme.Light, c.cfg.Theme.Dark)
	if err != nil {
		return nil, err
	}

	return render.NewEngine(qrcode.NewEncoder(level),
		render.WithTheme(theme),
		render.WithMarkup(markup.NewRenderer(r)),
		render.WithBorder(border),
		render.WithLogger(logger),
	), nil
}

// =============================================================================
// Cache
// =============================================================================

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/qrterm/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
