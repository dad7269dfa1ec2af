package grid

import "fmt"

// XY is an integer position on a grid. X grows to the east (columns) and Y
// grows to the south (rows).
type XY struct {
	X int64
	Y int64
}

// New returns the position (x, y).
func New(x, y int64) XY {
	return XY{X: x, Y: y}
}

// FromRC converts a row/column pair into a position.
func FromRC(row, col int) XY {
	return XY{X: int64(col), Y: int64(row)}
}

// Row returns the row index of p.
func (p XY) Row() int { return int(p.Y) }

// Col returns the column index of p.
func (p XY) Col() int { return int(p.X) }

// Offset returns p moved by (dx, dy).
func (p XY) Offset(dx, dy int64) XY {
	return XY{X: p.X + dx, Y: p.Y + dy}
}

// OffsetWith returns p moved by the components of o.
func (p XY) OffsetWith(o XY) XY {
	return XY{X: p.X + o.X, Y: p.Y + o.Y}
}

// Step returns the neighbouring position in direction d.
func (p XY) Step(d Direction) XY {
	return p.OffsetWith(d.Offset())
}

// Manhattan returns the taxicab distance between p and q.
func (p XY) Manhattan(q XY) int64 {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func (p XY) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
