package model

import "strings"

// Measure names one centrality definition.
type Measure string

const (
	MeasureDegree      Measure = "degree"
	MeasureBetweenness Measure = "betweenness"
	MeasureCloseness   Measure = "closeness"
	MeasureEigenvector Measure = "eigenvector"
	MeasurePageRank    Measure = "pagerank"
)

// Measures is the order measures are computed and displayed in.
var Measures = []Measure{
	MeasureDegree,
	MeasureBetweenness,
	MeasureCloseness,
	MeasureEigenvector,
	MeasurePageRank,
}

// Title is the display label, e.g. "Pagerank Centrality".
func (m Measure) Title() string {
	s := string(m)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:] + " Centrality"
}

type NodeScore struct {
	Node  string  `json:"node"`
	Score float64 `json:"score"`
}

// CentralityMap holds one score per graph node, in graph node order.
type CentralityMap []NodeScore

// Value returns the score recorded for node.
func (m CentralityMap) Value(node string) (float64, bool) {
	for _, ns := range m {
		if ns.Node == node {
			return ns.Score, true
		}
	}
	return 0, false
}

// Nodes returns the node identifiers in map order.
func (m CentralityMap) Nodes() []string {
	nodes := make([]string, len(m))
	for i, ns := range m {
		nodes[i] = ns.Node
	}
	return nodes
}

// Sum adds every score in the map.
func (m CentralityMap) Sum() float64 {
	var total float64
	for _, ns := range m {
		total += ns.Score
	}
	return total
}

// Chart is a bar-chart-ready view: parallel labels and values.
type Chart struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// RankedReport is the ranked view of one measure.
type RankedReport struct {
	Measure Measure       `json:"measure"`
	Top     []NodeScore   `json:"top"`
	Full    CentralityMap `json:"full"`
	Chart   Chart         `json:"chart"`
}
