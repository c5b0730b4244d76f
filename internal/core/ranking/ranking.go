package ranking

import (
	"sort"

	"github.com/agenthands/interactome/internal/core/model"
)

// DefaultTopN is the size of the top view when no other size is configured.
const DefaultTopN = 5

// Rank sorts a centrality map by descending score, keeping input order among
// equal scores, and keeps the first topN entries as the top view. The full
// map is returned as given.
func Rank(measure model.Measure, m model.CentralityMap, topN int) model.RankedReport {
	if topN <= 0 {
		topN = DefaultTopN
	}

	sorted := make([]model.NodeScore, len(m))
	copy(sorted, m)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if len(sorted) > topN {
		sorted = sorted[:topN]
	}

	full := m
	if full == nil {
		full = model.CentralityMap{}
	}

	chart := model.Chart{
		Labels: make([]string, len(sorted)),
		Scores: make([]float64, len(sorted)),
	}
	for i, ns := range sorted {
		chart.Labels[i] = ns.Node
		chart.Scores[i] = ns.Score
	}

	return model.RankedReport{
		Measure: measure,
		Top:     sorted,
		Full:    full,
		Chart:   chart,
	}
}

// RankAll ranks every measure present in results, in model.Measures order.
func RankAll(results map[model.Measure]model.CentralityMap, topN int) []model.RankedReport {
	reports := make([]model.RankedReport, 0, len(results))
	for _, m := range model.Measures {
		cm, ok := results[m]
		if !ok {
			continue
		}
		reports = append(reports, Rank(m, cm, topN))
	}
	return reports
}
