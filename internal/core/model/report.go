package model

import "time"

type GraphSummary struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

// Report is everything the presentation layer needs to draw one run.
type Report struct {
	RunID       string              `json:"run_id"`
	ProteinID   string              `json:"protein_id,omitempty"`
	Database    Database            `json:"database,omitempty"`
	Summary     GraphSummary        `json:"summary"`
	Records     []InteractionRecord `json:"records"`
	DOT         string              `json:"dot"`
	Rankings    []RankedReport      `json:"rankings"`
	Communities [][]string          `json:"communities,omitempty"`
	Insight     string              `json:"insight,omitempty"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// Ranking returns the ranked report for measure, if present.
func (r *Report) Ranking(m Measure) (RankedReport, bool) {
	for _, rr := range r.Rankings {
		if rr.Measure == m {
			return rr, true
		}
	}
	return RankedReport{}, false
}
