package network

import "strings"

// DOT renders g as a Graphviz strict undirected graph, nodes first in
// insertion order and then edges.
func DOT(g *Graph) string {
	var b strings.Builder
	b.WriteString("strict graph {\n")
	for _, n := range g.nodes {
		b.WriteString("  " + quoteID(n) + ";\n")
	}
	for _, e := range g.Edges() {
		b.WriteString("  " + quoteID(e.A) + " -- " + quoteID(e.B) + ";\n")
	}
	b.WriteString("}\n")
	return b.String()
}

func quoteID(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
