// Package nodelink renders typing graphs as node-link diagrams.
//
// # Overview
//
// The inferred typing graph is easy to get wrong in subtle ways: an array
// attached to the wrong owner, a field marked optional that should not be.
// This package draws the graph with Graphviz so those mistakes are visible.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Detailed: prefix labels with node IDs and draw owner references of
//     arrays and fields as dotted edges.
//
// The generated DOT uses top-to-bottom layout (rankdir=TB) with the root
// object at the top.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. No external Graphviz installation is needed.
package nodelink
