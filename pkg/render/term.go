package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/matzehuels/mazeroute/pkg/grid"
	"github.com/matzehuels/mazeroute/pkg/maze"
	"github.com/matzehuels/mazeroute/pkg/routegraph"
)

// Palette holds the styles used by the terminal views.
type Palette struct {
	Wall      lipgloss.Style
	Floor     lipgloss.Style
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Endpoint  lipgloss.Style
}

// DefaultPalette colours the primary path green, other seats cyan and the
// endpoints yellow on a dark maze, using the colour profile lipgloss
// detected for stdout.
func DefaultPalette() Palette {
	return PaletteFor(lipgloss.DefaultRenderer())
}

// FixedPalette is DefaultPalette drawn with a fixed 256-colour profile, so
// the output does not depend on the terminal it is produced in. Cached
// artifacts use it.
func FixedPalette() Palette {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	return PaletteFor(r)
}

// PaletteFor builds the default colours with styles bound to r.
func PaletteFor(r *lipgloss.Renderer) Palette {
	return Palette{
		Wall:      r.NewStyle().Foreground(lipgloss.Color("8")).Background(lipgloss.Color("0")),
		Floor:     r.NewStyle(),
		Primary:   r.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2")),
		Secondary: r.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")),
		Endpoint:  r.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Bold(true),
	}
}

// NoColor returns a palette without any styling.
func NoColor() Palette {
	s := lipgloss.NewStyle()
	return Palette{Wall: s, Floor: s, Primary: s, Secondary: s, Endpoint: s}
}

const (
	wallGlyph   = "█"
	wallBlock   = "███████████████"
	costWidth   = 5
	bigCost     = 99999
	cellDivider = "|"
)

// Tight renders one character per tile.
func Tight(g *routegraph.Graph, m *maze.Maze, p Palette) string {
	var b strings.Builder
	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			pos := grid.FromRC(row, col)
			switch {
			case pos == m.Start():
				b.WriteString(p.Endpoint.Render("S"))
			case pos == m.End():
				b.WriteString(p.Endpoint.Render("E"))
			case !m.IsFloor(pos):
				b.WriteString(p.Wall.Render(wallGlyph))
			case g.OnPrimary(pos):
				b.WriteString(p.Primary.Render(" "))
			case g.IsSeat(pos):
				b.WriteString(p.Secondary.Render(" "))
			default:
				b.WriteString(p.Floor.Render(" "))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Plain renders the seat map without colour: '#' walls, 'S' and 'E'
// endpoints, 'O' seats and '.' other floor.
func Plain(g *routegraph.Graph, m *maze.Maze) string {
	var b strings.Builder
	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			pos := grid.FromRC(row, col)
			switch {
			case pos == m.Start():
				b.WriteByte('S')
			case pos == m.End():
				b.WriteByte('E')
			case !m.IsFloor(pos):
				b.WriteByte('#')
			case g.IsSeat(pos):
				b.WriteByte('O')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Costs renders each tile as a 15×3 block: the north cost on top, west and
// east costs either side of the "row,col" label, the south cost below.
// Unreached routes print MAX and costs above 99999 print BIG.
func Costs(g *routegraph.Graph, m *maze.Maze, p Palette) string {
	var b strings.Builder
	blank := strings.Repeat(" ", costWidth)

	for row := 0; row < m.Height(); row++ {
		// north
		for col := 0; col < m.Width(); col++ {
			pos := grid.FromRC(row, col)
			if m.IsFloor(pos) {
				b.WriteString(blank + routeCost(g, pos, grid.North, p) + blank)
			} else {
				b.WriteString(p.Wall.Render(wallBlock))
			}
			b.WriteString(cellDivider)
		}
		b.WriteByte('\n')

		// west, label, east
		for col := 0; col < m.Width(); col++ {
			pos := grid.FromRC(row, col)
			if m.IsFloor(pos) {
				b.WriteString(routeCost(g, pos, grid.West, p))
				b.WriteString(cellLabel(g, m, pos, row, col, p))
				b.WriteString(routeCost(g, pos, grid.East, p))
			} else {
				b.WriteString(p.Wall.Render(wallBlock))
			}
			b.WriteString(cellDivider)
		}
		b.WriteByte('\n')

		// south
		for col := 0; col < m.Width(); col++ {
			pos := grid.FromRC(row, col)
			if m.IsFloor(pos) {
				b.WriteString(blank + routeCost(g, pos, grid.South, p) + blank)
			} else {
				b.WriteString(p.Wall.Render(wallBlock))
			}
			b.WriteString(cellDivider)
		}
		b.WriteByte('\n')

		b.WriteString(strings.Repeat(strings.Repeat("-", len(blank)*3)+cellDivider, m.Width()))
		b.WriteByte('\n')
	}
	return b.String()
}

func routeCost(g *routegraph.Graph, pos grid.XY, d grid.Direction, p Palette) string {
	cost, _ := g.Cost(pos, d)
	switch {
	case cost == routegraph.Infinity:
		return " MAX "
	case cost > bigCost:
		return " BIG "
	case g.OnPath(routegraph.RouteID{Cell: pos, Dir: d}):
		return p.Primary.Render(center(fmt.Sprint(cost), costWidth))
	default:
		return center(fmt.Sprint(cost), costWidth)
	}
}

func cellLabel(g *routegraph.Graph, m *maze.Maze, pos grid.XY, row, col int, p Palette) string {
	switch {
	case pos == m.Start():
		return p.Endpoint.Render("START")
	case pos == m.End():
		return p.Endpoint.Render(" END ")
	}
	label := center(fmt.Sprintf("%d,%d", row, col), costWidth)
	switch {
	case g.OnPrimary(pos):
		return p.Primary.Render(label)
	case g.IsSeat(pos):
		return p.Secondary.Render(label)
	}
	return label
}

// center pads s with spaces to width, extra space going right. Longer
// strings are returned unchanged.
func center(s string, width int) string {
	gap := width - len(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
