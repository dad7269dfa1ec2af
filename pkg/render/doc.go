// Package render draws solved mazes.
//
// # Terminal Views
//
// [Tight] prints one character per tile and colours the primary path,
// the other seats, the start and the end with a [Palette]. [Costs] prints a
// 3×3 block per tile with the cheapest cost of each heading around the tile
// coordinates, which is handy when checking relaxation by hand. [Plain] is
// the uncoloured seat map:
//
//	###############
//	#.......#....O#
//	#.#.###.#.###O#
//	...
//
// # Graph Export
//
// [ToDOT] exports the part of the route graph that lies on cheapest paths
// as Graphviz DOT. [RenderSVG] and [RenderPNG] lay it out with Graphviz.
//
//	dot := render.ToDOT(g, m)
//	svg, err := render.RenderSVG(ctx, dot)
//
// [Artifact] dispatches on a [Format] name and is what the pipeline caches.
package render
