package centrality

import "github.com/agenthands/interactome/internal/core/network"

// Closeness uses the Wasserman and Faust formula: the inverse mean distance
// to reachable nodes, scaled by the reachable fraction of the graph.
func Closeness(g *network.Graph) []float64 {
	n := g.NodeCount()
	scores := make([]float64, n)
	if n < 2 {
		return scores
	}

	dist := make([]int, n)
	queue := make([]int, 0, n)
	for u := 0; u < n; u++ {
		for i := range dist {
			dist[i] = -1
		}
		dist[u] = 0
		queue = append(queue[:0], u)
		total := 0
		for head := 0; head < len(queue); head++ {
			v := queue[head]
			total += dist[v]
			for _, w := range g.Adjacent(v) {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
			}
		}
		if total == 0 {
			continue
		}
		reach := float64(len(queue) - 1)
		scores[u] = reach / float64(total) * reach / float64(n-1)
	}
	return scores
}
