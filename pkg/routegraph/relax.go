package routegraph

import "github.com/matzehuels/mazeroute/pkg/grid"

// IdentifyShortestConnections runs Dijkstra's algorithm from the route
// (start, start direction). Afterwards every reachable route holds the
// minimum total weight of any path from the start route; unreachable routes
// keep [Infinity].
//
// The queue is popped in cost order and the sweep stops as soon as the
// cheapest queued route is still at Infinity.
func (g *Graph) IdentifyShortestConnections(start grid.XY) error {
	startID := RouteID{Cell: start, Dir: g.opts.startDir}
	if g.route(startID) == nil {
		return notFloor(start)
	}
	g.reduceCost(startID, 0)

	for {
		id, prio, ok := g.queue.PopMin()
		if !ok || prio == Infinity {
			break
		}
		g.popped++

		node := g.route(id)
		for _, conn := range node.destinations {
			if conn == nil {
				continue
			}
			target := g.route(conn.Target)
			if candidate := prio + conn.Weight; candidate < target.cost {
				g.reduceCost(conn.Target, candidate)
			}
		}
	}
	return nil
}

// reduceCost lowers the cost of id to cost and moves it up the queue. Costs
// never increase; a cost at or above the current one is ignored.
func (g *Graph) reduceCost(id RouteID, cost int64) {
	r := g.route(id)
	if r.cost <= cost {
		return
	}
	if g.opts.onRelax != nil {
		g.opts.onRelax(id, r.cost, cost)
	}
	r.cost = cost
	g.queue.ChangePriority(id, cost)
}
