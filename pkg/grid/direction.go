package grid

// Direction is one of the four compass headings. The numeric values are used
// as array indexes by the route graph and must stay dense and stable.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every heading in index order.
var Directions = [4]Direction{North, South, East, West}

// Clockwise returns the heading after a 90° right turn.
func (d Direction) Clockwise() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

// CounterClockwise returns the heading after a 90° left turn.
func (d Direction) CounterClockwise() Direction {
	switch d {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	default:
		return North
	}
}

// Mirror returns the opposite heading.
func (d Direction) Mirror() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Offset returns the unit step for d.
func (d Direction) Offset() XY {
	switch d {
	case North:
		return XY{X: 0, Y: -1}
	case South:
		return XY{X: 0, Y: 1}
	case East:
		return XY{X: 1, Y: 0}
	default:
		return XY{X: -1, Y: 0}
	}
}

// Char returns an arrow glyph for d.
func (d Direction) Char() rune {
	return [...]rune{'^', 'v', '>', '<'}[d&3]
}

// Letter returns the compass initial for d.
func (d Direction) Letter() rune {
	return [...]rune{'N', 'S', 'E', 'W'}[d&3]
}

func (d Direction) String() string {
	return [...]string{"north", "south", "east", "west"}[d&3]
}
