package routegraph

import (
	"slices"

	mrerrors "github.com/matzehuels/mazeroute/pkg/errors"
	"github.com/matzehuels/mazeroute/pkg/grid"
)

// bestArrival returns the cheapest of the four routes at end. Ties go to
// the first route in direction index order.
func (g *Graph) bestArrival(end grid.XY) (RouteID, int64, error) {
	c := g.cell(end)
	if c == nil {
		return RouteID{}, 0, notFloor(end)
	}
	best, bestCost := RouteID{}, Infinity
	for _, r := range c.routes {
		if r.cost < bestCost {
			best, bestCost = r.id, r.cost
		}
	}
	if bestCost == Infinity {
		return RouteID{}, 0, mrerrors.Wrap(mrerrors.ErrCodeUnreachable, ErrUnreachable, "end %v", end)
	}
	return best, bestCost, nil
}

// MarkPrimaryShortestPath marks one cheapest path from start to end and
// returns its cost.
//
// The walk starts at the cheapest route of the end tile and steps backward
// to the cheapest source whose cost plus connection weight equals the
// current cost, until it reaches the start tile. Ties go to the first
// source in slot order (forward, left, right).
func (g *Graph) MarkPrimaryShortestPath(start, end grid.XY) (int64, error) {
	if g.cell(start) == nil {
		return 0, notFloor(start)
	}
	current, best, err := g.bestArrival(end)
	if err != nil {
		return 0, err
	}

	var path []RouteID
	for {
		c := g.cell(current.Cell)
		c.onPrimary = true
		c.routes[current.Dir].onPath = true
		path = append(path, current)

		if current.Cell == start {
			break
		}
		next, ok := g.cheapestSource(current)
		if !ok {
			return 0, mrerrors.Wrap(mrerrors.ErrCodeInternal, ErrBrokenPath, "at %v facing %v", current.Cell, current.Dir)
		}
		current = next
	}

	slices.Reverse(path)
	g.primary = path
	return best, nil
}

func (g *Graph) cheapestSource(id RouteID) (RouteID, bool) {
	current := g.route(id)
	var (
		best     RouteID
		bestCost = Infinity
		found    bool
	)
	for _, src := range current.sources {
		if src == nil {
			continue
		}
		source := g.route(*src)
		if _, ok := g.feeds(source, id, current.cost); !ok {
			continue
		}
		if source.cost < bestCost {
			best, bestCost, found = *src, source.cost, true
		}
	}
	return best, found
}

// feeds returns the connection from source into target if taking it from
// source's cost lands exactly on want.
func (g *Graph) feeds(source *route, target RouteID, want int64) (*Connection, bool) {
	if source.cost == Infinity {
		return nil, false
	}
	for _, conn := range source.destinations {
		if conn != nil && conn.Target == target && source.cost+conn.Weight == want {
			return conn, true
		}
	}
	return nil, false
}

// MarkShortestPath marks every route and tile lying on any cheapest path
// from start to end and returns the cheapest cost. It first marks the
// primary path, then walks backward from the cheapest end routes with an
// explicit stack.
//
// A source of the current route is followed when its connection into the
// current route is cost-consistent. Forward sources come from a different
// tile and are always followed. Turn sources stay on the same tile and are
// only followed if they were themselves reached by a cost-consistent
// forward step, so the walk never chases turns around a single tile.
func (g *Graph) MarkShortestPath(start, end grid.XY) (int64, error) {
	best, err := g.MarkPrimaryShortestPath(start, end)
	if err != nil {
		return 0, err
	}
	// Every end route at the best cost starts a branch: equally cheap paths
	// may arrive from different headings.
	var stack []RouteID
	for _, r := range g.cell(end).routes {
		if r.cost == best {
			stack = append(stack, r.id)
		}
	}
	seen := make(map[RouteID]bool)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		seen[id] = true

		c := g.cell(id.Cell)
		c.onSecondary = true
		c.routes[id.Dir].onPath = true

		if id.Cell == start {
			continue
		}
		stack = append(stack, g.optimalSources(id)...)
	}
	return best, nil
}

func (g *Graph) optimalSources(id RouteID) []RouteID {
	current := g.route(id)
	var out []RouteID
	for _, src := range current.sources {
		if src == nil {
			continue
		}
		source := g.route(*src)
		conn, ok := g.feeds(source, id, current.cost)
		if !ok {
			continue
		}
		if conn.Turn == Forward || g.reachedByForward(*src) {
			out = append(out, *src)
		}
	}
	return out
}

// reachedByForward reports whether id's forward source steps into it at
// exactly id's cost.
func (g *Graph) reachedByForward(id RouteID) bool {
	r := g.route(id)
	hop := r.sources[Forward]
	if hop == nil {
		return false
	}
	conn, ok := g.feeds(g.route(*hop), id, r.cost)
	return ok && conn.Turn == Forward
}

// PrimaryPath returns the routes of the primary path from start to end. It
// is empty until [Graph.MarkPrimaryShortestPath] has run.
func (g *Graph) PrimaryPath() []RouteID {
	return slices.Clone(g.primary)
}

// CountSeats returns the number of tiles on the primary path or on any
// other cheapest path.
func (g *Graph) CountSeats() int {
	count := 0
	for _, c := range g.cells.All() {
		if c != nil && (c.onPrimary || c.onSecondary) {
			count++
		}
	}
	return count
}

// IsSeat reports whether pos lies on some cheapest path.
func (g *Graph) IsSeat(pos grid.XY) bool {
	c := g.cell(pos)
	return c != nil && (c.onPrimary || c.onSecondary)
}

// OnPrimary reports whether pos lies on the primary path.
func (g *Graph) OnPrimary(pos grid.XY) bool {
	c := g.cell(pos)
	return c != nil && c.onPrimary
}

// OnPath reports whether the route id was marked by path reconstruction.
func (g *Graph) OnPath(id RouteID) bool {
	r := g.route(id)
	return r != nil && r.onPath
}
