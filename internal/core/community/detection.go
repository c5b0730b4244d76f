package community

import (
	"log"

	"github.com/agenthands/interactome/internal/core/network"
)

// Detector groups the nodes of a graph into communities. Communities are
// returned in order of their first node in the graph; singletons are dropped.
type Detector interface {
	Detect(g *network.Graph) ([][]string, error)
}

// ComponentDetector reports connected components.
type ComponentDetector struct{}

func NewComponentDetector() *ComponentDetector {
	return &ComponentDetector{}
}

func (d *ComponentDetector) Detect(g *network.Graph) ([][]string, error) {
	n := g.NodeCount()
	visited := make([]bool, n)
	var communities [][]string

	for u := 0; u < n; u++ {
		if visited[u] {
			continue
		}
		var component []int
		d.dfs(g, u, visited, &component)
		// A single protein is not a cluster.
		if len(component) >= 2 {
			communities = append(communities, names(g, component))
		}
	}
	return communities, nil
}

func (d *ComponentDetector) dfs(g *network.Graph, u int, visited []bool, component *[]int) {
	visited[u] = true
	*component = append(*component, u)
	for _, v := range g.Adjacent(u) {
		if !visited[v] {
			d.dfs(g, v, visited, component)
		}
	}
}

func names(g *network.Graph, idx []int) []string {
	out := make([]string, len(idx))
	for i, v := range idx {
		out[i] = g.Node(v)
	}
	return out
}

// New returns the detector for a configured method: "lpa", "components",
// or "none" (nil detector). Unknown methods fall back to label propagation
// with a warning; config.Load rejects them before they get here.
func New(method string) Detector {
	switch method {
	case "components":
		return NewComponentDetector()
	case "none":
		return nil
	case "lpa", "":
		return NewLabelPropagationDetector()
	default:
		log.Printf("Warning: unknown community method %q, using label propagation", method)
		return NewLabelPropagationDetector()
	}
}
