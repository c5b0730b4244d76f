package centrality

import "github.com/agenthands/interactome/internal/core/network"

// Betweenness implements Brandes' algorithm for unweighted graphs. Scores
// are normalized by the number of node pairs excluding the node itself.
func Betweenness(g *network.Graph) []float64 {
	n := g.NodeCount()
	cb := make([]float64, n)

	sigma := make([]float64, n)
	dist := make([]int, n)
	delta := make([]float64, n)
	pred := make([][]int, n)
	stack := make([]int, 0, n)
	queue := make([]int, 0, n)

	for s := 0; s < n; s++ {
		for i := 0; i < n; i++ {
			sigma[i] = 0
			dist[i] = -1
			delta[i] = 0
			pred[i] = pred[i][:0]
		}
		stack = stack[:0]
		queue = append(queue[:0], s)
		sigma[s] = 1
		dist[s] = 0

		for head := 0; head < len(queue); head++ {
			v := queue[head]
			stack = append(stack, v)
			for _, w := range g.Adjacent(v) {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					pred[w] = append(pred[w], v)
				}
			}
		}

		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range pred[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				cb[w] += delta[w]
			}
		}
	}

	// Each unordered pair was counted from both ends.
	if n > 2 {
		scale := 1.0 / (float64(n-1) * float64(n-2))
		for i := range cb {
			cb[i] *= scale
		}
	}
	return cb
}
