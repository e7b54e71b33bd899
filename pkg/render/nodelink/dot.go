package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/jsontypings/pkg/dag"
	"github.com/matzehuels/jsontypings/pkg/typing"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed prefixes labels with the node ID and draws the owner
	// back-references of arrays and fields as dotted edges.
	Detailed bool
}

// ToDOT converts a typing graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Objects are drawn as filled boxes, fields as plain boxes and arrays as
// boxes with a double border. Scalars and literals are ellipses.
func ToDOT(g *typing.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	var owners []string
	for i := range g.NodeCount() {
		n, _ := g.Node(dag.NodeID(i))
		label := fmtLabel(i, n, opts.Detailed)
		attrs := fmtAttrs(n, label)
		fmt.Fprintf(&buf, "  n%d [%s];\n", i, strings.Join(attrs, ", "))

		if !opts.Detailed {
			continue
		}
		switch n := n.(type) {
		case typing.Array:
			owners = append(owners, fmt.Sprintf("  n%d -> n%d [style=dotted, arrowhead=empty, constraint=false];\n", i, n.Owner))
		case typing.ObjectField:
			owners = append(owners, fmt.Sprintf("  n%d -> n%d [style=dotted, arrowhead=empty, constraint=false];\n", i, n.Owner))
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", e.From, e.To)
	}
	for _, o := range owners {
		buf.WriteString(o)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(id int, n typing.Node, detailed bool) string {
	var label string
	switch n := n.(type) {
	case typing.Object:
		label = n.Name
	case typing.ObjectField:
		label = n.Key
		if n.Optional {
			label += "?"
		}
	case typing.Array:
		label = n.Key + "[]"
	default:
		label = n.Label()
	}
	if detailed {
		return fmt.Sprintf("#%d %s", id, label)
	}
	return label
}

func fmtAttrs(n typing.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch n.(type) {
	case typing.Object:
		attrs = append(attrs, "fillcolor=lightsteelblue")
	case typing.ObjectField:
	case typing.Array:
		attrs = append(attrs, "peripheries=2")
	case typing.LiteralType:
		attrs = append(attrs, "shape=ellipse", "fillcolor=lightyellow")
	default:
		attrs = append(attrs, "shape=ellipse", "fillcolor=whitesmoke")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

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

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
