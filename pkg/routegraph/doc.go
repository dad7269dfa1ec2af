// Package routegraph finds the cheapest routes through a reindeer maze.
//
// # Model
//
// Every floor tile of a [maze.Maze] owns exactly four route nodes, one per
// compass heading. A route (tile, heading) has up to three outgoing
// connections:
//
//   - Forward: one step to the neighbouring tile in the same heading, cost
//     [MoveCost]. Missing when the neighbour is a wall or off the maze.
//   - Left and Right: a 90° turn in place, cost [TurnCost]. Always present.
//
// Each route also records its sources, the inverse of those connections, so
// paths can be rebuilt backward without scanning the graph. Routes are
// stored in a grid-shaped arena and refer to each other by [RouteID].
//
// # Pipeline
//
//	g := routegraph.New(m)
//	if err := g.IdentifyShortestConnections(m.Start()); err != nil {
//	    return err
//	}
//	best, err := g.MarkShortestPath(m.Start(), m.End())
//	seats := g.CountSeats()
//
// [Graph.IdentifyShortestConnections] is Dijkstra's algorithm over the route
// nodes with an indexed binary heap supporting decrease-key. The start route
// faces east.
//
// [Graph.MarkPrimaryShortestPath] marks one cheapest path.
// [Graph.MarkShortestPath] additionally marks every tile on any cheapest
// path; [Graph.CountSeats] counts those tiles.
//
// # Invariants
//
//   - NodeCount is 4 × floor tiles; each route has at most 3 connections.
//   - Costs only decrease during relaxation.
//   - After relaxation each reachable route holds its exact shortest cost.
//   - The start tile is always a seat.
package routegraph
