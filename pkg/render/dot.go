package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/visnet/pkg/network"
)

// ToDOT converts a network to Graphviz DOT format. It covers the
// attributes DOT can express (label, shape, color); the result suits
// static previews with [RenderSVG], not the interactive page.
func ToDOT(net *network.Network) string {
	var buf bytes.Buffer

	keyword, edgeOp := "graph", "--"
	if net.Directed() {
		keyword, edgeOp = "digraph", "->"
	}
	fmt.Fprintf(&buf, "%s G {\n", keyword)
	buf.WriteString("  node [shape=ellipse, style=filled, fillcolor=\"#97c2fc\"];\n\n")

	for _, n := range net.Nodes() {
		fmt.Fprintf(&buf, "  %q [%s];\n", fmt.Sprint(n.ID), strings.Join(dotAttrs(n), ", "))
	}

	buf.WriteString("\n")
	for _, e := range net.Edges() {
		fmt.Fprintf(&buf, "  %q %s %q;\n", fmt.Sprint(e.From), edgeOp, fmt.Sprint(e.To))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dotAttrs(n *network.Node) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmt.Sprint(n.Label))}
	if color, ok := n.Attrs.Get("color"); ok {
		if c, ok := color.(string); ok {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", c))
		}
	}
	if n.Shape == "box" || n.Shape == "ellipse" || n.Shape == "circle" {
		attrs = append(attrs, fmt.Sprintf("shape=%s", n.Shape))
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
	return buf.Bytes(), nil
}
