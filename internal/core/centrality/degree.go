package centrality

import "github.com/agenthands/interactome/internal/core/network"

// Degree returns deg(v)/(n-1) per node. Graphs with fewer than two nodes
// score 0 everywhere.
func Degree(g *network.Graph) []float64 {
	n := g.NodeCount()
	scores := make([]float64, n)
	if n < 2 {
		return scores
	}
	s := 1.0 / float64(n-1)
	for i := range scores {
		scores[i] = float64(g.Degree(i)) * s
	}
	return scores
}
