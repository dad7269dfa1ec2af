package routegraph

import (
	"errors"
	"iter"
	"math"

	mrerrors "github.com/matzehuels/mazeroute/pkg/errors"
	"github.com/matzehuels/mazeroute/pkg/grid"
	"github.com/matzehuels/mazeroute/pkg/maze"
)

const (
	// MoveCost is the weight of a forward step into the neighbouring tile.
	MoveCost int64 = 1

	// TurnCost is the weight of a 90° turn in place.
	TurnCost int64 = 1000

	// Infinity marks a route that has not been reached.
	Infinity int64 = math.MaxInt64
)

var (
	// ErrNotFloor is returned when a start or end position is a wall or lies
	// outside the maze.
	ErrNotFloor = errors.New("position is not a floor tile")

	// ErrUnreachable is returned by path marking when no route at the end
	// tile was reached by relaxation.
	ErrUnreachable = errors.New("end is not reachable from start")

	// ErrBrokenPath is returned when the backward walk cannot find a
	// cost-consistent predecessor. It indicates marking without relaxation.
	ErrBrokenPath = errors.New("no cost-consistent predecessor")
)

// Turn identifies the kind of connection between two routes. Its value is
// the slot index in a route's destination and source arrays.
type Turn uint8

const (
	Forward Turn = iota
	Left
	Right
)

func (t Turn) String() string {
	return [...]string{"forward", "left", "right"}[t%3]
}

// Weight returns the fixed cost of taking a connection of kind t.
func (t Turn) Weight() int64 {
	if t == Forward {
		return MoveCost
	}
	return TurnCost
}

// RouteID names a route node: standing on Cell, facing Dir.
type RouteID struct {
	Cell grid.XY
	Dir  grid.Direction
}

// Connection is a weighted edge from one route to another.
type Connection struct {
	Target RouteID
	Turn   Turn
	Weight int64
}

// route is a node of the graph. destinations and sources are indexed by
// Turn; a nil slot means the move is blocked.
type route struct {
	id           RouteID
	destinations [3]*Connection
	sources      [3]*RouteID
	cost         int64
	onPath       bool
}

// cell owns the four routes of a floor tile.
type cell struct {
	pos         grid.XY
	routes      [4]route
	onPrimary   bool
	onSecondary bool
}

func newCell(pos grid.XY) *cell {
	c := &cell{pos: pos}
	for _, d := range grid.Directions {
		c.routes[d] = route{id: RouteID{Cell: pos, Dir: d}, cost: Infinity}
	}
	return c
}

// Graph is the routing graph of a maze: four routes per floor tile wired by
// forward, left-turn and right-turn connections.
//
// Routes live in a grid-shaped arena and refer to each other by [RouteID];
// a nil arena cell is a wall. A Graph is built once, mutated by
// [Graph.IdentifyShortestConnections] and the path marking methods, and is
// not safe for concurrent use.
type Graph struct {
	cells   *grid.Grid[*cell]
	queue   *routeQueue
	opts    options
	nodes   int
	edges   int
	popped  int
	primary []RouteID
}

// New builds the routing graph for m. Every route starts at [Infinity] and
// is registered in the priority queue.
func New(m *maze.Maze, opts ...Option) *Graph {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		cells: createCells(m),
		opts:  cfg,
	}
	g.populateConnections()
	return g
}

func createCells(m *maze.Maze) *grid.Grid[*cell] {
	cells := grid.Make[*cell](m.Width(), m.Height())
	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			pos := grid.FromRC(row, col)
			if m.IsFloor(pos) {
				cells.Set(pos, newCell(pos))
			}
		}
	}
	return cells
}

// populateConnections wires destinations and sources and fills the queue.
// Turn sources are local to the tile and set immediately; forward sources
// are only known once every tile has been scanned, so they are collected
// and applied in a second pass.
func (g *Graph) populateConnections() {
	g.queue = newRouteQueue(4 * g.cells.Width() * g.cells.Height())
	forward := make(map[RouteID]RouteID)

	for pos, c := range g.cells.All() {
		if c == nil {
			continue
		}
		for i := range c.routes {
			r := &c.routes[i]
			dir := r.id.Dir

			if next, _ := g.cells.AtOK(pos.Step(dir)); next != nil {
				r.destinations[Forward] = &Connection{
					Target: RouteID{Cell: next.pos, Dir: dir},
					Turn:   Forward,
					Weight: MoveCost,
				}
				forward[r.destinations[Forward].Target] = r.id
			}
			r.destinations[Left] = &Connection{
				Target: RouteID{Cell: pos, Dir: dir.CounterClockwise()},
				Turn:   Left,
				Weight: TurnCost,
			}
			r.destinations[Right] = &Connection{
				Target: RouteID{Cell: pos, Dir: dir.Clockwise()},
				Turn:   Right,
				Weight: TurnCost,
			}

			// The route to our right turns left into us and vice versa.
			fromRight := r.destinations[Right].Target
			fromLeft := r.destinations[Left].Target
			r.sources[Left] = &fromRight
			r.sources[Right] = &fromLeft

			for _, conn := range r.destinations {
				if conn != nil {
					g.edges++
				}
			}
			g.nodes++
			g.queue.Push(r.id, Infinity)
		}
	}

	for target, source := range forward {
		src := source
		g.route(target).sources[Forward] = &src
	}
}

func (g *Graph) cell(pos grid.XY) *cell {
	c, _ := g.cells.AtOK(pos)
	return c
}

func (g *Graph) route(id RouteID) *route {
	c := g.cell(id.Cell)
	if c == nil {
		return nil
	}
	return &c.routes[id.Dir]
}

// NodeCount returns the number of routes, four per floor tile.
func (g *Graph) NodeCount() int { return g.nodes }

// EdgeCount returns the number of connections.
func (g *Graph) EdgeCount() int { return g.edges }

// Popped returns how many routes relaxation took off the queue.
func (g *Graph) Popped() int { return g.popped }

// Has reports whether id names a route of the graph.
func (g *Graph) Has(id RouteID) bool { return g.route(id) != nil }

// Cost returns the best known cost of the route (pos, dir). ok is false for
// walls and positions outside the maze.
func (g *Graph) Cost(pos grid.XY, dir grid.Direction) (cost int64, ok bool) {
	r := g.route(RouteID{Cell: pos, Dir: dir})
	if r == nil {
		return 0, false
	}
	return r.cost, true
}

// CellCost returns the cheapest cost over the four routes of pos.
func (g *Graph) CellCost(pos grid.XY) (int64, bool) {
	c := g.cell(pos)
	if c == nil {
		return 0, false
	}
	best := Infinity
	for _, r := range c.routes {
		best = min(best, r.cost)
	}
	return best, true
}

// Connections returns the outgoing connections of id in slot order.
func (g *Graph) Connections(id RouteID) []Connection {
	r := g.route(id)
	if r == nil {
		return nil
	}
	out := make([]Connection, 0, len(r.destinations))
	for _, conn := range r.destinations {
		if conn != nil {
			out = append(out, *conn)
		}
	}
	return out
}

// Sources returns the routes with a connection into id, in slot order.
func (g *Graph) Sources(id RouteID) []RouteID {
	r := g.route(id)
	if r == nil {
		return nil
	}
	out := make([]RouteID, 0, len(r.sources))
	for _, src := range r.sources {
		if src != nil {
			out = append(out, *src)
		}
	}
	return out
}

// Routes yields every route ID in row-major tile order, directions in
// index order.
func (g *Graph) Routes() iter.Seq[RouteID] {
	return func(yield func(RouteID) bool) {
		for _, c := range g.cells.All() {
			if c == nil {
				continue
			}
			for _, r := range c.routes {
				if !yield(r.id) {
					return
				}
			}
		}
	}
}

// Width returns the width of the underlying maze.
func (g *Graph) Width() int { return g.cells.Width() }

// Height returns the height of the underlying maze.
func (g *Graph) Height() int { return g.cells.Height() }

func notFloor(pos grid.XY) error {
	return mrerrors.Wrap(mrerrors.ErrCodeInvalidInput, ErrNotFloor, "%v", pos)
}
