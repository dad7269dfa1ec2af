package routegraph

import (
	_ "embed"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mrerrors "github.com/matzehuels/mazeroute/pkg/errors"
	"github.com/matzehuels/mazeroute/pkg/grid"
	"github.com/matzehuels/mazeroute/pkg/maze"
)

var (
	//go:embed testdata/sample1.txt
	sample1 string

	//go:embed testdata/sample2.txt
	sample2 string
)

// corridor is a 15×15 maze with one straight east-west corridor.
var corridor = strings.Repeat("###############\n", 7) +
	"#S...........E#\n" +
	strings.Repeat("###############\n", 7)

// twoWays offers a northern and a southern loop of equal cost that arrive at
// E from opposite headings.
const twoWays = `#######
#.....#
#.###.#
#S###E#
#.###.#
#.....#
#######
`

// oneTurn needs three steps east, one left turn and two steps north.
const oneTurn = `######
####E#
####.#
#S...#
######
`

func mustParse(t testing.TB, text string) *maze.Maze {
	t.Helper()
	m, err := maze.Parse(text)
	require.NoError(t, err)
	return m
}

// solved builds, relaxes and fully marks the graph for text.
func solved(t testing.TB, text string, opts ...Option) (*maze.Maze, *Graph, int64) {
	t.Helper()
	m := mustParse(t, text)
	g := New(m, opts...)
	require.NoError(t, g.IdentifyShortestConnections(m.Start()))
	best, err := g.MarkShortestPath(m.Start(), m.End())
	require.NoError(t, err)
	return m, g, best
}

func TestNew_Shape(t *testing.T) {
	m := mustParse(t, oneTurn)
	g := New(m)

	assert.Equal(t, 4*m.FloorCount(), g.NodeCount())
	assert.LessOrEqual(t, g.EdgeCount(), 3*g.NodeCount())

	count := 0
	for id := range g.Routes() {
		count++
		cost, ok := g.Cost(id.Cell, id.Dir)
		require.True(t, ok)
		assert.Equal(t, Infinity, cost, "route %v should start unreached", id)
	}
	assert.Equal(t, g.NodeCount(), count)

	_, ok := g.Cost(grid.New(0, 0), grid.North)
	assert.False(t, ok, "walls have no routes")
}

func TestNew_Connections(t *testing.T) {
	m := mustParse(t, oneTurn)
	g := New(m)

	// (4,3) facing east: wall ahead, so only the two turns.
	id := RouteID{Cell: grid.New(4, 3), Dir: grid.East}
	conns := g.Connections(id)
	require.Len(t, conns, 2)
	assert.Equal(t, Connection{Target: RouteID{Cell: grid.New(4, 3), Dir: grid.North}, Turn: Left, Weight: TurnCost}, conns[0])
	assert.Equal(t, Connection{Target: RouteID{Cell: grid.New(4, 3), Dir: grid.South}, Turn: Right, Weight: TurnCost}, conns[1])

	// (4,3) facing north: forward into (4,2).
	id = RouteID{Cell: grid.New(4, 3), Dir: grid.North}
	conns = g.Connections(id)
	require.Len(t, conns, 3)
	assert.Equal(t, Connection{Target: RouteID{Cell: grid.New(4, 2), Dir: grid.North}, Turn: Forward, Weight: MoveCost}, conns[0])
}

func TestNew_SourcesInvertConnections(t *testing.T) {
	m := mustParse(t, sample1)
	g := New(m)

	for id := range g.Routes() {
		for _, conn := range g.Connections(id) {
			assert.Contains(t, g.Sources(conn.Target), id,
				"%v -> %v (%v) missing from target sources", id, conn.Target, conn.Turn)
		}
		for _, src := range g.Sources(id) {
			found := false
			for _, conn := range g.Connections(src) {
				if conn.Target == id {
					found = true
				}
			}
			assert.True(t, found, "source %v of %v has no connection into it", src, id)
		}
	}
}

func TestIdentifyShortestConnections_StartNotFloor(t *testing.T) {
	m := mustParse(t, oneTurn)
	g := New(m)
	err := g.IdentifyShortestConnections(grid.New(0, 0))
	require.ErrorIs(t, err, ErrNotFloor)
	assert.True(t, mrerrors.Is(err, mrerrors.ErrCodeInvalidInput))
}

func TestIdentifyShortestConnections_Monotonic(t *testing.T) {
	m := mustParse(t, sample2)
	calls := 0
	g := New(m, WithRelaxHook(func(id RouteID, oldCost, newCost int64) {
		calls++
		if newCost >= oldCost {
			t.Errorf("cost of %v increased from %d to %d", id, oldCost, newCost)
		}
		if newCost < 0 {
			t.Errorf("negative cost %d for %v", newCost, id)
		}
	}))
	require.NoError(t, g.IdentifyShortestConnections(m.Start()))
	assert.Positive(t, calls)
	assert.LessOrEqual(t, g.Popped(), g.NodeCount())
}

// bruteForce computes shortest costs by repeatedly relaxing every
// connection until nothing changes.
func bruteForce(g *Graph, start RouteID) map[RouteID]int64 {
	dist := make(map[RouteID]int64)
	for id := range g.Routes() {
		dist[id] = Infinity
	}
	dist[start] = 0
	for changed := true; changed; {
		changed = false
		for id := range g.Routes() {
			if dist[id] == Infinity {
				continue
			}
			for _, conn := range g.Connections(id) {
				if c := dist[id] + conn.Weight; c < dist[conn.Target] {
					dist[conn.Target] = c
					changed = true
				}
			}
		}
	}
	return dist
}

func TestIdentifyShortestConnections_MatchesBruteForce(t *testing.T) {
	for name, text := range map[string]string{
		"sample1": sample1,
		"sample2": sample2,
		"twoWays": twoWays,
		"oneTurn": oneTurn,
	} {
		t.Run(name, func(t *testing.T) {
			m := mustParse(t, text)
			g := New(m)
			require.NoError(t, g.IdentifyShortestConnections(m.Start()))

			want := bruteForce(g, RouteID{Cell: m.Start(), Dir: grid.East})
			for id := range g.Routes() {
				got, _ := g.Cost(id.Cell, id.Dir)
				assert.Equal(t, want[id], got, "cost of %v", id)
			}
		})
	}
}

func TestIdentifyShortestConnections_Unreachable(t *testing.T) {
	m := mustParse(t, "#####\n#S#E#\n#####\n")
	g := New(m)
	require.NoError(t, g.IdentifyShortestConnections(m.Start()))

	cost, ok := g.Cost(m.End(), grid.East)
	require.True(t, ok)
	assert.Equal(t, Infinity, cost)

	_, err := g.MarkShortestPath(m.Start(), m.End())
	require.ErrorIs(t, err, ErrUnreachable)
	assert.True(t, mrerrors.Is(err, mrerrors.ErrCodeUnreachable))
}

func TestWithStartDirection(t *testing.T) {
	// Facing west, the reindeer must turn twice to head east.
	_, g, best := solved(t, "#####\n#S.E#\n#####\n", WithStartDirection(grid.West))
	assert.Equal(t, 2*TurnCost+2*MoveCost, best)
	assert.Equal(t, 3, g.CountSeats())
}
