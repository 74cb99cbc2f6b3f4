package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/qrterm/pkg/errors"
	"github.com/matzehuels/qrterm/pkg/plugin"
)

// stdinArg makes render read one column's data from standard input.
const stdinArg = "-"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	codeOpts
	captions      []string // explicit captions, matched to arguments by position
	noAutocaption bool     // suppress first-line captions
	emitYAML      bool     // print the equivalent qrcode-ex block instead
}

// renderCommand creates the render command. Every argument becomes one
// column; columns are printed side by side.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render DATA...",
		Short: "Render data as QR codes",
		Example: `  qrterm render https://example.com
  qrterm render --caption Wifi "WIFI:S:home;T:WPA;P:secret;;" https://example.com
  echo hello | qrterm render -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, opts)
		},
	}

	addCodeFlags(cmd, &opts.codeOpts)
	cmd.Flags().StringArrayVar(&opts.captions, "caption", nil, "caption for the matching argument (repeatable, markdown allowed)")
	cmd.Flags().BoolVar(&opts.noAutocaption, "no-autocaption", false, "do not caption codes with the first line of their data")
	cmd.Flags().BoolVar(&opts.emitYAML, "emit-yaml", false, "print the equivalent qrcode-ex markdown block")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, opts renderOpts) error {
	out := cmd.OutOrStdout()

	doc, err := buildDocument(args, opts, c.cfg.Autocaption, cmd.InOrStdin())
	if err != nil {
		return err
	}

	if opts.emitYAML {
		data, err := plugin.DumpDocument(doc)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "```%s\n%s```\n", plugin.LangQRCodeEx, data)
		return nil
	}

	logger := loggerFromContext(cmd.Context())
	eng, err := c.newEngine(out, logger, opts.codeOpts)
	if err != nil {
		return err
	}
	cols, err := eng.RenderColumns(doc.Requests())
	if err != nil {
		return err
	}
	fmt.Fprintln(out, cols.View())
	return nil
}

// buildDocument turns arguments into columns. Captions are assigned by
// position; autocaption applies to every column unless disabled.
func buildDocument(args []string, opts renderOpts, autocaption bool, stdin io.Reader) (*plugin.Document, error) {
	if len(opts.captions) > len(args) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"%d captions given for %d arguments", len(opts.captions), len(args))
	}

	doc := &plugin.Document{Columns: make([]plugin.Column, 0, len(args))}
	readStdin := false
	for i, arg := range args {
		data := arg
		if arg == stdinArg {
			if readStdin {
				return nil, errors.New(errors.ErrCodeInvalidInput, "standard input can only be read once")
			}
			readStdin = true
			b, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			data = strings.TrimSuffix(string(b), "\n")
		}
		if err := errors.ValidateData(data); err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "argument %d: %s", i+1, errors.UserMessage(err))
		}

		col := plugin.Column{Data: data, Autocaption: autocaption && !opts.noAutocaption}
		if i < len(opts.captions) {
			caption := opts.captions[i]
			col.Caption = &caption
		}
		doc.Columns = append(doc.Columns, col)
	}
	return doc, nil
}
