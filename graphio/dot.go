// SPDX-License-Identifier: MIT

package graphio

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/waypath/waypoint"
)

// ToDOT renders g as an undirected Graphviz graph. Nodes and edges on route
// (a sequence of waypoint IDs, may be nil) are highlighted.
func ToDOT(g *waypoint.Graph, route []int) string {
	onRoute := make(map[int]bool, len(route))
	hops := make(map[[2]int]bool, len(route))
	for i, id := range route {
		onRoute[id] = true
		if i > 0 {
			hops[edgeKey(route[i-1], id)] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, n := range g.Waypoints() {
		if onRoute[n.ID()] {
			fmt.Fprintf(&buf, "  %d [fillcolor=lightblue];\n", n.ID())
			continue
		}
		fmt.Fprintf(&buf, "  %d;\n", n.ID())
	}

	buf.WriteString("\n")
	for _, n := range g.Waypoints() {
		for _, to := range n.Connections() {
			d, _ := n.Distance(to)
			back, mutual := reverse(g, n.ID(), to)
			// A matched pair with equal distances is drawn once, from the lower ID.
			if mutual && back == d && to < n.ID() {
				continue
			}

			attrs := "label=\"" + strconv.FormatFloat(d, 'g', -1, 64) + "\""
			if !mutual || back != d {
				attrs += ", dir=forward"
			}
			if hops[edgeKey(n.ID(), to)] {
				attrs += ", color=red, penwidth=2"
			}
			fmt.Fprintf(&buf, "  %d -- %d [%s];\n", n.ID(), to, attrs)
		}
	}

	buf.WriteString("}\n")

	return buf.String()
}

// reverse returns the distance of to→from and whether that link exists.
func reverse(g *waypoint.Graph, from, to int) (float64, bool) {
	n, ok := g.Waypoint(to)
	if !ok {
		return 0, false
	}

	return n.Distance(from)
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	gr, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer gr.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, gr, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
