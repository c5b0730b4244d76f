package centrality

import (
	"fmt"
	"math"

	"github.com/agenthands/interactome/internal/core/network"
)

// PageRank runs the damped random walk with uniform teleportation. Every
// undirected edge is walkable both ways; nodes without edges spread their
// mass uniformly.
func PageRank(g *network.Graph, alpha float64, maxIter int, tol float64) ([]float64, error) {
	n := g.NodeCount()
	if n == 0 {
		return []float64{}, nil
	}

	uniform := 1.0 / float64(n)
	x := make([]float64, n)
	for i := range x {
		x[i] = uniform
	}
	last := make([]float64, n)

	for iter := 0; iter < maxIter; iter++ {
		copy(last, x)

		var dangling float64
		for v := 0; v < n; v++ {
			x[v] = 0
			if len(g.Adjacent(v)) == 0 {
				dangling += last[v]
			}
		}
		dangling *= alpha

		for v := 0; v < n; v++ {
			nbrs := g.Adjacent(v)
			if len(nbrs) == 0 {
				continue
			}
			share := alpha * last[v] / float64(len(nbrs))
			for _, w := range nbrs {
				x[w] += share
			}
		}

		var diff float64
		for i := range x {
			x[i] += dangling*uniform + (1-alpha)*uniform
			diff += math.Abs(x[i] - last[i])
		}
		if diff < float64(n)*tol {
			return x, nil
		}
	}
	return nil, fmt.Errorf("%w after %d iterations", ErrNotConverged, maxIter)
}
