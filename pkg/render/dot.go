package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mazeroute/pkg/maze"
	"github.com/matzehuels/mazeroute/pkg/routegraph"
)

// ToDOT exports the routes marked by path reconstruction and the
// cost-consistent connections between them. Primary path routes are green,
// other marked routes cyan, routes on the start and end tiles yellow.
func ToDOT(g *routegraph.Graph, m *maze.Maze) string {
	primary := make(map[routegraph.RouteID]bool)
	for _, id := range g.PrimaryPath() {
		primary[id] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph routes {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\", fontsize=12];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	var marked []routegraph.RouteID
	for id := range g.Routes() {
		if !g.OnPath(id) {
			continue
		}
		marked = append(marked, id)
		cost, _ := g.Cost(id.Cell, id.Dir)
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%s];\n",
			nodeName(id), nodeLabel(id, cost), nodeColor(id, m, primary))
	}

	buf.WriteString("\n")
	for _, id := range marked {
		from, _ := g.Cost(id.Cell, id.Dir)
		for _, conn := range g.Connections(id) {
			if !g.OnPath(conn.Target) {
				continue
			}
			to, _ := g.Cost(conn.Target.Cell, conn.Target.Dir)
			if from+conn.Weight != to {
				continue
			}
			attrs := fmt.Sprintf("label=%q", conn.Turn.String())
			if primary[id] && primary[conn.Target] {
				attrs += ", penwidth=2"
			}
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n", nodeName(id), nodeName(conn.Target), attrs)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeName(id routegraph.RouteID) string {
	return fmt.Sprintf("%d_%d_%c", id.Cell.X, id.Cell.Y, id.Dir.Letter())
}

func nodeLabel(id routegraph.RouteID, cost int64) string {
	return fmt.Sprintf("%d,%d %c\n%d", id.Cell.Row(), id.Cell.Col(), id.Dir.Char(), cost)
}

func nodeColor(id routegraph.RouteID, m *maze.Maze, primary map[routegraph.RouteID]bool) string {
	switch {
	case id.Cell == m.Start() || id.Cell == m.End():
		return "gold"
	case primary[id]:
		return "palegreen"
	default:
		return "paleturquoise"
	}
}

// RenderSVG lays out a DOT graph with Graphviz and returns SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := renderGraphviz(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG lays out a DOT graph with Graphviz and returns PNG.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderGraphviz(ctx, dot, graphviz.PNG)
}

func renderGraphviz(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz <svg> tag with one whose viewBox
// starts at the origin and whose width and height match it.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
