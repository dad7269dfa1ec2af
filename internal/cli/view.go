package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazeroute/pkg/maze"
	"github.com/matzehuels/mazeroute/pkg/pipeline"
	"github.com/matzehuels/mazeroute/pkg/render"
	"github.com/matzehuels/mazeroute/pkg/routegraph"
)

// viewCommand creates the interactive viewer command.
func (c *CLI) viewCommand() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse the solved maze in the terminal",
		Long: `View solves a maze and opens a full-screen viewer. Tab switches between
the tile view, the per-direction cost view and the plain text view.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			text, err := pipeline.ReadInput(args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, true)
			if err != nil {
				return err
			}
			defer runner.Close()

			m, g, res, err := runner.Solve(ctx, text)
			if err != nil {
				return err
			}
			palette := render.DefaultPalette()
			if noColor {
				palette = render.NoColor()
			}

			model := newViewModel(args[0], m, g, res, palette)
			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "draw without ANSI colours")
	return cmd
}

// =============================================================================
// viewModel - Interactive maze viewer
// =============================================================================

var viewNames = []string{"tiles", "costs", "plain"}

// viewModel is the bubbletea model behind "mazeroute view". Every view is
// rendered once up front; scrolling only slices the prepared lines.
type viewModel struct {
	title   string
	summary string
	pages   [][]string
	page    int

	top, left     int
	height, width int
}

func newViewModel(title string, m *maze.Maze, g *routegraph.Graph, res *pipeline.Result, p render.Palette) viewModel {
	pages := [][]string{
		splitLines(render.Tight(g, m, p)),
		splitLines(render.Costs(g, m, p)),
		splitLines(render.Plain(g, m)),
	}
	return viewModel{
		title:   title,
		summary: fmt.Sprintf("score %d · seats %d · %s", res.BestCost, res.Seats, m.Describe()),
		pages:   pages,
		height:  20,
		width:   80,
	}
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.page = (m.page + 1) % len(m.pages)
			m.top, m.left = 0, 0
		case "shift+tab":
			m.page = (m.page + len(m.pages) - 1) % len(m.pages)
			m.top, m.left = 0, 0
		case "up", "k":
			m.top--
		case "down", "j":
			m.top++
		case "pgup":
			m.top -= m.height
		case "pgdown", " ":
			m.top += m.height
		case "left", "h":
			m.left -= 4
		case "right", "l":
			m.left += 4
		case "home", "g":
			m.top, m.left = 0, 0
		case "end", "G":
			m.top = len(m.lines())
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-4, 5)
		m.width = max(msg.Width, 20)
	}
	m.clamp()
	return m, nil
}

func (m viewModel) lines() []string {
	return m.pages[m.page]
}

// clamp keeps the viewport inside the current page.
func (m *viewModel) clamp() {
	lines := m.lines()
	m.top = min(m.top, max(len(lines)-m.height, 0))
	m.top = max(m.top, 0)

	widest := 0
	for _, l := range lines {
		widest = max(widest, ansi.StringWidth(l))
	}
	m.left = min(m.left, max(widest-m.width, 0))
	m.left = max(m.left, 0)
}

func (m viewModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(m.title))
	b.WriteString("  ")
	b.WriteString(styleDim.Render(m.summary))
	b.WriteString("\n")

	tabs := make([]string, len(viewNames))
	for i, name := range viewNames {
		if i == m.page {
			tabs[i] = styleActiveTab.Render("[" + name + "]")
		} else {
			tabs[i] = styleDim.Render(" " + name + " ")
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")

	lines := m.lines()
	end := min(m.top+m.height, len(lines))
	for _, l := range lines[m.top:end] {
		b.WriteString(ansi.Cut(l, m.left, m.left+m.width))
		b.WriteString("\n")
	}

	b.WriteString(styleDim.Render(fmt.Sprintf("↑/↓/←/→ scroll  tab switch view  q quit  [%d-%d/%d]", m.top+1, end, len(lines))))
	return b.String()
}
