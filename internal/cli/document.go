package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/qrterm/pkg/errors"
	"github.com/matzehuels/qrterm/pkg/markup"
	"github.com/matzehuels/qrterm/pkg/plugin"
	"github.com/matzehuels/qrterm/pkg/render"
)

// slide is one rendered block of a markdown file.
type slide struct {
	fence markup.Fence
	view  string
}

// docCommand creates the doc command.
func (c *CLI) docCommand() *cobra.Command {
	var opts codeOpts

	cmd := &cobra.Command{
		Use:   "doc FILE",
		Short: "Render the qrcode blocks of a markdown file",
		Long: `Render every fenced block tagged qrcode or qrcode-ex in a markdown file,
in document order. Blocks with other languages are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			logger := loggerFromContext(cmd.Context())

			eng, err := c.newEngine(out, logger, opts)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			slides, err := renderDocument(cmd.Context(), args[0], eng)
			if err != nil {
				return err
			}
			if len(slides) == 0 {
				printWarning(cmd.ErrOrStderr(), "No qrcode blocks in %s", args[0])
				return nil
			}

			views := make([]string, len(slides))
			for i, s := range slides {
				views[i] = s.view
			}
			fmt.Fprintln(out, strings.Join(views, "\n"))
			prog.done(fmt.Sprintf("Rendered %d blocks", len(slides)))
			return nil
		},
	}

	addCodeFlags(cmd, &opts)
	return cmd
}

// renderDocument renders every handled fenced block of the markdown file
// at path. The first failing block aborts with its file position.
func renderDocument(ctx context.Context, path string, eng *render.Engine) ([]slide, error) {
	src, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	logger := loggerFromContext(ctx)
	h := plugin.NewHandler(eng, logger)

	var slides []slide
	for _, f := range markup.Fences(src) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		w, ok, err := h.RenderCode(f.Lang, f.Body)
		if !ok {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, f.Line, err)
		}
		slides = append(slides, slide{fence: f, view: w.View()})
	}
	return slides, nil
}
