package centrality

import (
	"fmt"
	"math"

	"github.com/agenthands/interactome/internal/core/network"
)

// Eigenvector estimates the principal eigenvector of the adjacency matrix by
// power iteration on A+I, starting from a uniform vector. The identity shift
// keeps bipartite graphs from oscillating without changing the eigenvector.
func Eigenvector(g *network.Graph, maxIter int, tol float64) ([]float64, error) {
	n := g.NodeCount()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty graph", ErrDegenerateGraph)
	}
	if g.EdgeCount() == 0 {
		return nil, fmt.Errorf("%w: graph has no edges", ErrDegenerateGraph)
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = 1.0 / float64(n)
	}
	last := make([]float64, n)

	for iter := 0; iter < maxIter; iter++ {
		copy(last, x)
		for v := 0; v < n; v++ {
			for _, w := range g.Adjacent(v) {
				x[w] += last[v]
			}
		}

		var norm float64
		for _, xi := range x {
			norm += xi * xi
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			norm = 1
		}

		var diff float64
		for i := range x {
			x[i] /= norm
			diff += math.Abs(x[i] - last[i])
		}
		if diff < float64(n)*tol {
			return x, nil
		}
	}
	return nil, fmt.Errorf("%w after %d iterations", ErrNotConverged, maxIter)
}
