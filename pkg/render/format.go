package render

import (
	"context"
	"slices"

	mrerrors "github.com/matzehuels/mazeroute/pkg/errors"
	"github.com/matzehuels/mazeroute/pkg/maze"
	"github.com/matzehuels/mazeroute/pkg/routegraph"
)

// Format names an output of [Artifact].
type Format string

const (
	FormatTight Format = "tight"
	FormatCosts Format = "costs"
	FormatPlain Format = "plain"
	FormatDOT   Format = "dot"
	FormatSVG   Format = "svg"
	FormatPNG   Format = "png"
)

// Formats lists every supported format.
var Formats = []Format{FormatTight, FormatCosts, FormatPlain, FormatDOT, FormatSVG, FormatPNG}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !slices.Contains(Formats, f) {
		return "", mrerrors.New(mrerrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: tight, costs, plain, dot, svg, png)", s)
	}
	return f, nil
}

// Artifact renders g in format f. Terminal formats use p; the graph formats
// ignore it.
func Artifact(ctx context.Context, f Format, g *routegraph.Graph, m *maze.Maze, p Palette) ([]byte, error) {
	switch f {
	case FormatTight:
		return []byte(Tight(g, m, p)), nil
	case FormatCosts:
		return []byte(Costs(g, m, p)), nil
	case FormatPlain:
		return []byte(Plain(g, m)), nil
	case FormatDOT:
		return []byte(ToDOT(g, m)), nil
	case FormatSVG:
		return RenderSVG(ctx, ToDOT(g, m))
	case FormatPNG:
		return RenderPNG(ctx, ToDOT(g, m))
	}
	_, err := ParseFormat(string(f))
	return nil, err
}
