package community

import (
	"sort"

	"github.com/agenthands/interactome/internal/core/network"
)

// LabelPropagationDetector implements community detection using Label Propagation Algorithm (LPA).
type LabelPropagationDetector struct {
	MaxIterations int
}

func NewLabelPropagationDetector() *LabelPropagationDetector {
	return &LabelPropagationDetector{
		MaxIterations: 20,
	}
}

func (d *LabelPropagationDetector) Detect(g *network.Graph) ([][]string, error) {
	n := g.NodeCount()
	if n == 0 {
		return nil, nil
	}

	// Each node starts with its own identifier as label.
	labels := make([]string, n)
	for i := range labels {
		labels[i] = g.Node(i)
	}

	for iter := 0; iter < d.MaxIterations; iter++ {
		changeCount := 0

		for u := 0; u < n; u++ {
			counts := make(map[string]int)
			maxCount := 0
			for _, v := range g.Adjacent(u) {
				if v == u {
					continue
				}
				label := labels[v]
				counts[label]++
				if counts[label] > maxCount {
					maxCount = counts[label]
				}
			}
			if maxCount == 0 {
				continue
			}

			var candidates []string
			for label, count := range counts {
				if count == maxCount {
					candidates = append(candidates, label)
				}
			}

			// Keep the current label when it is among the best, otherwise
			// take the lexicographically largest for determinism.
			best := labels[u]
			if counts[best] != maxCount {
				sort.Strings(candidates)
				best = candidates[len(candidates)-1]
			}

			if labels[u] != best {
				labels[u] = best
				changeCount++
			}
		}

		if changeCount == 0 {
			break
		}
	}

	// Group by label in node order.
	order := []string{}
	clusters := make(map[string][]int)
	for u, label := range labels {
		if _, ok := clusters[label]; !ok {
			order = append(order, label)
		}
		clusters[label] = append(clusters[label], u)
	}

	var communities [][]string
	for _, label := range order {
		if members := clusters[label]; len(members) >= 2 {
			communities = append(communities, names(g, members))
		}
	}
	return communities, nil
}
