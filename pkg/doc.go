// Package pkg provides the core libraries for Mazeroute reindeer maze solving.
//
// # Overview
//
// Mazeroute finds the cheapest way for a reindeer to travel from S to E in a
// walled maze, where a step forward costs 1 and a quarter turn costs 1000,
// and counts the tiles that lie on at least one cheapest route. The pkg
// directory is organized into three main areas:
//
//  1. [grid], [maze], [routegraph] - Domain logic (tiles, the route graph,
//     relaxation and path reconstruction)
//  2. [solve], [pipeline] - Orchestration (parse → relax → reconstruct)
//  3. [cache], [config], [render] - Infrastructure (result caching, puzzle
//     configuration, terminal and Graphviz output)
//
// # Architecture
//
// The typical data flow through Mazeroute:
//
//	Maze text
//	    ↓
//	[maze] package (validate tiles, locate S and E)
//	    ↓
//	[routegraph] package (four routes per floor tile, cost relaxation)
//	    ↓
//	[routegraph] package (primary path + every tied cheapest path)
//	    ↓
//	lowest score, seat count, terminal/DOT/SVG/PNG output
//
// # Quick Start
//
//	import "github.com/matzehuels/mazeroute/pkg/solve"
//
//	res, err := solve.Solve(text)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.BestCost, res.Seats)
//
// Step by step, keeping the marked graph:
//
//	m, _ := maze.Parse(text)
//	g := routegraph.New(m)
//	_ = g.IdentifyShortestConnections(m.Start())
//	best, _ := g.MarkPrimaryShortestPath(m.Start(), m.End())
//	fmt.Println(best, g.CountSeats())
//	fmt.Print(render.Plain(g, m))
//
// # Main Packages
//
// [grid] - Positions, the four compass directions and a dense 2D grid.
//
// [maze] - Parsing and validation of maze text.
//
// [routegraph] - The directed route graph, its priority queue, cost
// relaxation and path marking.
//
// [solve] - One-call solver returning both answers with stage timings.
//
// [pipeline] - Cached solver runs and configured puzzle runs used by the CLI.
//
// [cache] - File, Redis and MongoDB result caches behind one interface.
//
// [config] - Puzzle run configuration in TOML and the line-based legacy
// format.
//
// [render] - Terminal views and Graphviz export of solved mazes.
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Hooks for solver stages and cache events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/routegraph/...         # Specific package
//	go test -run Example ./pkg/...       # Examples only
//	go test -tags integration ./pkg/...  # Include Redis and MongoDB tests
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/mazeroute/pkg/grid
// [maze]: https://pkg.go.dev/github.com/matzehuels/mazeroute/pkg/maze
// [routegraph]: https://pkg.go.dev/github.com/matzehuels/mazeroute/pkg/routegraph
// [solve]: https://pkg.go.dev/github.com/matzehuels/mazeroute/pkg/solve
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/mazeroute/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/mazeroute/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/mazeroute/pkg/config
// [render]: https://pkg.go.dev/github.com/matzehuels/mazeroute/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/mazeroute/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/mazeroute/pkg/observability
package pkg
