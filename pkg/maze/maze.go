// Package maze parses reindeer-maze puzzle input.
//
// The input is one row per line using four characters:
//
//	#  wall
//	.  floor
//	S  floor, the start tile (exactly one)
//	E  floor, the end tile (exactly one)
//
// Anything else is a format error. A parsed [Maze] is immutable.
package maze

import (
	"errors"
	"fmt"
	"strings"

	mrerrors "github.com/matzehuels/mazeroute/pkg/errors"
	"github.com/matzehuels/mazeroute/pkg/grid"
)

var (
	// ErrEmpty is returned by [Parse] when the input has no rows.
	ErrEmpty = errors.New("maze has no rows")

	// ErrUnknownCharacter is returned by [Parse] for characters outside "#.SE".
	ErrUnknownCharacter = errors.New("unknown input character")

	// ErrMissingStart is returned by [Parse] when no 'S' tile exists.
	ErrMissingStart = errors.New("should have a starting position")

	// ErrMissingEnd is returned by [Parse] when no 'E' tile exists.
	ErrMissingEnd = errors.New("should have an ending position")

	// ErrDuplicateStart is returned by [Parse] when 'S' appears more than once.
	ErrDuplicateStart = errors.New("more than one starting position")

	// ErrDuplicateEnd is returned by [Parse] when 'E' appears more than once.
	ErrDuplicateEnd = errors.New("more than one ending position")
)

// Kind is the content of a maze tile.
type Kind uint8

const (
	Wall Kind = iota
	Floor
)

func (k Kind) String() string {
	if k == Floor {
		return "floor"
	}
	return "wall"
}

// Maze is a parsed puzzle: walls and floors plus the start and end tiles.
type Maze struct {
	tiles *grid.Grid[Kind]
	start grid.XY
	end   grid.XY
	floor int
}

// Parse reads a maze from text. All failures are returned as
// INVALID_INPUT errors wrapping one of the package sentinels.
func Parse(text string) (*Maze, error) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, invalid(ErrEmpty, "empty input")
	}

	var (
		start, end       grid.XY
		hasStart, hasEnd bool
		floor            int
	)
	tiles := grid.NewGrid[Kind]()

	for row, line := range lines {
		cells := make([]Kind, 0, len(line))
		col := -1
		for _, c := range line {
			col++
			pos := grid.FromRC(row, col)
			switch c {
			case '#':
				cells = append(cells, Wall)
				continue
			case '.':
			case 'S':
				if hasStart {
					return nil, invalid(ErrDuplicateStart, "second 'S' at %v", pos)
				}
				start, hasStart = pos, true
			case 'E':
				if hasEnd {
					return nil, invalid(ErrDuplicateEnd, "second 'E' at %v", pos)
				}
				end, hasEnd = pos, true
			default:
				return nil, invalid(ErrUnknownCharacter, "%q at row %d, column %d", c, row, col)
			}
			cells = append(cells, Floor)
			floor++
		}
		if err := tiles.Push(cells); err != nil {
			return nil, invalid(err, "row %d", row)
		}
	}

	if !hasStart {
		return nil, invalid(ErrMissingStart, "no 'S' tile")
	}
	if !hasEnd {
		return nil, invalid(ErrMissingEnd, "no 'E' tile")
	}

	return &Maze{tiles: tiles, start: start, end: end, floor: floor}, nil
}

func invalid(cause error, format string, args ...any) error {
	return mrerrors.Wrap(mrerrors.ErrCodeInvalidInput, cause, format, args...)
}

// Start returns the start tile.
func (m *Maze) Start() grid.XY { return m.start }

// End returns the end tile.
func (m *Maze) End() grid.XY { return m.end }

// Width returns the number of columns.
func (m *Maze) Width() int { return m.tiles.Width() }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.tiles.Height() }

// FloorCount returns the number of floor tiles, start and end included.
func (m *Maze) FloorCount() int { return m.floor }

// At returns the tile at p. Positions outside the maze read as walls.
func (m *Maze) At(p grid.XY) Kind {
	k, ok := m.tiles.AtOK(p)
	if !ok {
		return Wall
	}
	return k
}

// IsFloor reports whether p is an in-bounds floor tile.
func (m *Maze) IsFloor(p grid.XY) bool {
	return m.At(p) == Floor
}

// String renders the maze back into its input form.
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow((m.Width() + 1) * m.Height())
	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			p := grid.FromRC(row, col)
			switch {
			case p == m.start:
				b.WriteByte('S')
			case p == m.end:
				b.WriteByte('E')
			case m.At(p) == Floor:
				b.WriteByte('.')
			default:
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Describe returns a one-line summary used in logs.
func (m *Maze) Describe() string {
	return fmt.Sprintf("%dx%d maze, %d floor tiles, start %v, end %v",
		m.Width(), m.Height(), m.floor, m.start, m.end)
}
