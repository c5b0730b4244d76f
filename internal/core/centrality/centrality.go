package centrality

import (
	"errors"
	"fmt"

	"github.com/agenthands/interactome/internal/core/model"
	"github.com/agenthands/interactome/internal/core/network"
)

var (
	// ErrDegenerateGraph means the graph is too small or has no edges for the
	// measure to be defined.
	ErrDegenerateGraph = errors.New("graph is degenerate for this measure")

	// ErrNotConverged means a power iteration hit its iteration bound. Raising
	// the bound or loosening the tolerance may help.
	ErrNotConverged = errors.New("power iteration did not converge")
)

// Options tunes the iterative measures.
type Options struct {
	EigenvectorMaxIter   int
	EigenvectorTolerance float64
	PageRankAlpha        float64
	PageRankMaxIter      int
	PageRankTolerance    float64
}

func DefaultOptions() Options {
	return Options{
		EigenvectorMaxIter:   500,
		EigenvectorTolerance: 1e-6,
		PageRankAlpha:        0.85,
		PageRankMaxIter:      100,
		PageRankTolerance:    1e-6,
	}
}

// withDefaults replaces zero fields with their defaults.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.EigenvectorMaxIter <= 0 {
		o.EigenvectorMaxIter = d.EigenvectorMaxIter
	}
	if o.EigenvectorTolerance <= 0 {
		o.EigenvectorTolerance = d.EigenvectorTolerance
	}
	if o.PageRankAlpha <= 0 || o.PageRankAlpha >= 1 {
		o.PageRankAlpha = d.PageRankAlpha
	}
	if o.PageRankMaxIter <= 0 {
		o.PageRankMaxIter = d.PageRankMaxIter
	}
	if o.PageRankTolerance <= 0 {
		o.PageRankTolerance = d.PageRankTolerance
	}
	return o
}

// Engine computes every measure in model.Measures over one graph.
type Engine struct {
	Options Options
}

func NewEngine(opts Options) *Engine {
	return &Engine{Options: opts.withDefaults()}
}

// Compute runs all five measures over the whole graph. The first failing
// measure aborts the run; its error names the measure.
func (e *Engine) Compute(g *network.Graph) (map[model.Measure]model.CentralityMap, error) {
	opts := e.Options.withDefaults()
	out := make(map[model.Measure]model.CentralityMap, len(model.Measures))

	for _, m := range model.Measures {
		var (
			scores []float64
			err    error
		)
		switch m {
		case model.MeasureDegree:
			scores = Degree(g)
		case model.MeasureBetweenness:
			scores = Betweenness(g)
		case model.MeasureCloseness:
			scores = Closeness(g)
		case model.MeasureEigenvector:
			scores, err = Eigenvector(g, opts.EigenvectorMaxIter, opts.EigenvectorTolerance)
		case model.MeasurePageRank:
			scores, err = PageRank(g, opts.PageRankAlpha, opts.PageRankMaxIter, opts.PageRankTolerance)
		}
		if err != nil {
			return nil, fmt.Errorf("%s centrality: %w", m, err)
		}
		out[m] = toMap(g, scores)
	}
	return out, nil
}

func toMap(g *network.Graph, scores []float64) model.CentralityMap {
	m := make(model.CentralityMap, len(scores))
	for i, s := range scores {
		m[i] = model.NodeScore{Node: g.Node(i), Score: s}
	}
	return m
}
