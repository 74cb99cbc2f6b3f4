package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/qrterm/pkg/errors"
)

var (
	footerStyle  = lipgloss.NewStyle().Foreground(colorDim)
	counterStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

// presentCommand creates the present command.
func (c *CLI) presentCommand() *cobra.Command {
	var opts codeOpts

	cmd := &cobra.Command{
		Use:   "present FILE",
		Short: "Page through the qrcode blocks of a markdown file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			eng, err := c.newEngine(out, loggerFromContext(ctx), opts)
			if err != nil {
				return err
			}
			slides, err := renderDocument(ctx, args[0], eng)
			if err != nil {
				return err
			}
			if len(slides) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "no qrcode blocks in %s", args[0])
			}

			p := tea.NewProgram(newPresentModel(args[0], slides),
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(out),
			)
			_, err = p.Run()
			return err
		},
	}

	addCodeFlags(cmd, &opts)
	return cmd
}

// =============================================================================
// presentModel - one rendered block per screen
// =============================================================================

// presentModel is the bubbletea model behind the present command.
type presentModel struct {
	Path   string
	Slides []slide
	Cursor int
	Width  int
	Height int
}

// newPresentModel creates a pager positioned at the first slide.
func newPresentModel(path string, slides []slide) presentModel {
	return presentModel{Path: path, Slides: slides}
}

func (m presentModel) Init() tea.Cmd {
	return nil
}

func (m presentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "p", "pgup", "backspace":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "right", "l", "n", "pgdown", " ", "enter":
			if m.Cursor < len(m.Slides)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = len(m.Slides) - 1
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	}
	return m, nil
}

func (m presentModel) View() string {
	if len(m.Slides) == 0 {
		return ""
	}
	s := m.Slides[m.Cursor]

	footer := counterStyle.Render(fmt.Sprintf("[%d/%d]", m.Cursor+1, len(m.Slides))) + " " +
		footerStyle.Render(fmt.Sprintf("%s:%d  ←/→ navigate  q quit", m.Path, s.fence.Line))

	if m.Width == 0 || m.Height < 2 {
		return s.view + "\n" + footer
	}

	var b strings.Builder
	b.WriteString(lipgloss.Place(m.Width, m.Height-1, lipgloss.Center, lipgloss.Center, s.view))
	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}
