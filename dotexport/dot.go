package dotexport

import (
	"bytes"
	"fmt"

	graphviz "github.com/goccy/go-graphviz"

	"github.com/mecenum/dagmec/graph"
)

// ToDOT returns a Graphviz DOT representation of g. Directed edges are
// drawn with an arrowhead; undirected edges (both u→v and v→u present)
// are drawn once, without one. If labels[v] exists it is used as the
// node's display label in place of the bare vertex number.
func ToDOT(g *graph.Graph, labels []string) string {
	var buf bytes.Buffer
	buf.WriteString("digraph DAG {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, style=filled, fillcolor=white, shape=circle];\n\n")

	for v := 1; v <= g.NVertices(); v++ {
		fmt.Fprintf(&buf, "  n%d [label=%q];\n", v, nodeLabel(v, labels))
	}
	buf.WriteString("\n")

	for _, p := range g.AdjacentPairs() {
		u, v := p[0], p[1]
		switch {
		case g.IsUndirected(u, v):
			fmt.Fprintf(&buf, "  n%d -> n%d [arrowhead=none];\n", u, v)
		case g.IsDirected(u, v):
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", u, v)
		default:
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", v, u)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(v int, labels []string) string {
	if v < len(labels) && labels[v] != "" {
		return labels[v]
	}
	return fmt.Sprintf("%d", v)
}

// RenderSVG renders g as an SVG document via ToDOT and Graphviz.
func RenderSVG(g *graph.Graph, labels []string) ([]byte, error) {
	dot := ToDOT(g, labels)

	gv := graphviz.New()
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("dotexport: parse DOT: %w", err)
	}

	var buf bytes.Buffer
	if err := gv.Render(parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("dotexport: render: %w", err)
	}
	return buf.Bytes(), nil
}
