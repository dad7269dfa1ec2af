package solve

import (
	_ "embed"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mrerrors "github.com/matzehuels/mazeroute/pkg/errors"
	"github.com/matzehuels/mazeroute/pkg/maze"
	"github.com/matzehuels/mazeroute/pkg/routegraph"
)

var (
	//go:embed testdata/sample1.txt
	sample1 string

	//go:embed testdata/sample2.txt
	sample2 string
)

func TestSolve_Samples(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantCost  int64
		wantSeats int
	}{
		{"sample1", sample1, 7036, 45},
		{"sample2", sample2, 11048, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Solve(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, res.BestCost)
			assert.Equal(t, tt.wantSeats, res.Seats)
			assert.Positive(t, res.Nodes)
			assert.Positive(t, res.Edges)
		})
	}
}

func TestPart(t *testing.T) {
	got, err := Part(sample1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7036), got)

	got, err = Part(sample2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(64), got)
}

func TestPart_Invalid(t *testing.T) {
	_, err := Part(sample1, 3)
	require.Error(t, err)
	assert.True(t, mrerrors.Is(err, mrerrors.ErrCodeInvalidPart))
}

func TestSolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", maze.ErrEmpty},
		{"no start", "####\n#.E#\n####\n", maze.ErrMissingStart},
		{"no end", "####\n#S.#\n####\n", maze.ErrMissingEnd},
		{"walled off", "#####\n#S#E#\n#####\n", routegraph.ErrUnreachable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestSolveMaze_ReturnsMarkedGraph(t *testing.T) {
	m, err := maze.Parse(sample1)
	require.NoError(t, err)

	res, g, err := SolveMaze(m)
	require.NoError(t, err)
	assert.Equal(t, res.Seats, g.CountSeats())
	assert.True(t, g.OnPrimary(m.Start()))
	assert.True(t, g.OnPrimary(m.End()))
}

func TestResult_Answer(t *testing.T) {
	res := Result{BestCost: 12, Seats: 13}
	got, err := res.Answer(1)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got)

	got, err = res.Answer(2)
	require.NoError(t, err)
	assert.Equal(t, int64(13), got)

	_, err = res.Answer(0)
	assert.Error(t, err)
}

func BenchmarkSolve(b *testing.B) {
	for _, bm := range []struct {
		name string
		text string
	}{
		{"sample1", sample1},
		{"sample2", sample2},
	} {
		b.Run(bm.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := Solve(bm.text); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
