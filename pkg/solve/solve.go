// Package solve answers both parts of the reindeer maze puzzle.
//
// Part 1 is the lowest score from S to E. Part 2 is the number of tiles that
// lie on at least one path with that score.
//
//	res, err := solve.Solve(text)
//	fmt.Println(res.BestCost, res.Seats)
package solve

import (
	"time"

	mrerrors "github.com/matzehuels/mazeroute/pkg/errors"
	"github.com/matzehuels/mazeroute/pkg/maze"
	"github.com/matzehuels/mazeroute/pkg/routegraph"
)

// Result holds both answers and the size of the graph they were computed on.
type Result struct {
	BestCost int64 `json:"best_cost"`
	Seats    int   `json:"seats"`
	Nodes    int   `json:"nodes"`
	Edges    int   `json:"edges"`

	Stats Stats `json:"-"`
}

// Stats records how long each solver stage took.
type Stats struct {
	Build       time.Duration
	Relax       time.Duration
	Reconstruct time.Duration
}

// Answer returns the answer for part 1 or 2.
func (r Result) Answer(part int) (int64, error) {
	if err := mrerrors.ValidatePart(part); err != nil {
		return 0, err
	}
	if part == 1 {
		return r.BestCost, nil
	}
	return int64(r.Seats), nil
}

// Solve parses text and solves the maze.
func Solve(text string, opts ...routegraph.Option) (Result, error) {
	m, err := maze.Parse(text)
	if err != nil {
		return Result{}, err
	}
	res, _, err := SolveMaze(m, opts...)
	return res, err
}

// Part returns the answer to one part of the puzzle for text.
func Part(text string, part int) (int64, error) {
	if err := mrerrors.ValidatePart(part); err != nil {
		return 0, err
	}
	res, err := Solve(text)
	if err != nil {
		return 0, err
	}
	return res.Answer(part)
}

// SolveMaze solves an already parsed maze and also returns the fully marked
// graph, for callers that render costs or seats.
func SolveMaze(m *maze.Maze, opts ...routegraph.Option) (Result, *routegraph.Graph, error) {
	var res Result

	t := time.Now()
	g := routegraph.New(m, opts...)
	res.Stats.Build = time.Since(t)
	res.Nodes, res.Edges = g.NodeCount(), g.EdgeCount()

	t = time.Now()
	if err := g.IdentifyShortestConnections(m.Start()); err != nil {
		return res, g, err
	}
	res.Stats.Relax = time.Since(t)

	t = time.Now()
	best, err := g.MarkShortestPath(m.Start(), m.End())
	if err != nil {
		return res, g, err
	}
	res.BestCost = best
	res.Seats = g.CountSeats()
	res.Stats.Reconstruct = time.Since(t)
	return res, g, nil
}
