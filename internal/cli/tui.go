package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/autolayout/pkg/demo"
	"github.com/matzehuels/autolayout/pkg/layout"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// SceneBrowserModel - Interactive scene browser
// =============================================================================

// SceneBrowserModel is the bubbletea model for browsing demo scenes. The
// selected scene is solved on every move and its frames shown next to the
// list.
type SceneBrowserModel struct {
	Scenes  []demo.Scene
	Cursor  int
	Options demo.Options

	ctx    context.Context
	result *demo.Result
	err    error
}

// NewSceneBrowserModel creates a browser over scenes, solving each with opts.
func NewSceneBrowserModel(ctx context.Context, scenes []demo.Scene, opts demo.Options) SceneBrowserModel {
	m := SceneBrowserModel{Scenes: scenes, Options: opts, ctx: ctx}
	m.solve()
	return m
}

func (m *SceneBrowserModel) solve() {
	if len(m.Scenes) == 0 {
		return
	}
	m.result, m.err = demo.Run(m.ctx, m.Scenes[m.Cursor], m.Options)
}

func (m SceneBrowserModel) Init() tea.Cmd {
	return nil
}

func (m SceneBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
			m.solve()
		}
	case "down", "j":
		if m.Cursor < len(m.Scenes)-1 {
			m.Cursor++
			m.solve()
		}
	case "d":
		if m.Options.Direction == layout.DirectionRightToLeft {
			m.Options.Direction = layout.DirectionLeftToRight
		} else {
			m.Options.Direction = layout.DirectionRightToLeft
		}
		m.solve()
	}
	return m, nil
}

func (m SceneBrowserModel) View() string {
	var list strings.Builder
	list.WriteString(StyleTitle.Render("Scenes"))
	list.WriteString("\n\n")
	for i, sc := range m.Scenes {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		list.WriteString(style.Render(cursor + sc.Name))
		list.WriteString("\n")
	}

	var detail strings.Builder
	switch {
	case m.err != nil:
		detail.WriteString(listErrorStyle.Render(m.err.Error()))
	case m.result != nil:
		detail.WriteString(listDimStyle.Render(fmt.Sprintf("%s · %s · %gx%g",
			m.result.Scene.Description, m.Options.Direction,
			m.Options.Size.Width, m.Options.Size.Height)))
		detail.WriteString("\n")
		detail.WriteString(frameTable(m.result))
		for _, line := range droppedLines(m.result) {
			detail.WriteString("\n")
			detail.WriteString(StyleWarning.Render(iconWarning + " dropped " + line))
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().PaddingRight(4).Render(list.String()),
		detail.String()))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  d flip direction  q quit"))
	return b.String()
}

// browseCommand creates the browse command, an interactive scene browser.
func (c *CLI) browseCommand() *cobra.Command {
	var flags sceneFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the demo scenes interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, flags)
			if err != nil {
				return err
			}
			// The browser owns the terminal; keep solver warnings off it.
			opts.Logger = newLogger(io.Discard, LogInfo)

			model := NewSceneBrowserModel(cmd.Context(), demo.All(), opts)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}
