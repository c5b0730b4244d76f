package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agenthands/interactome/internal/config"
	"github.com/agenthands/interactome/internal/core/centrality"
	"github.com/agenthands/interactome/internal/core/community"
	"github.com/agenthands/interactome/internal/core/model"
	"github.com/agenthands/interactome/internal/core/network"
	"github.com/agenthands/interactome/internal/core/ranking"
	"github.com/agenthands/interactome/internal/core/summary"
	"github.com/agenthands/interactome/internal/llm"
	"github.com/agenthands/interactome/internal/source"
)

var ErrInvalidProtein = errors.New("protein identifier is required")

// Analyzer runs the whole pipeline for one request: fetch, build, compute,
// rank, report. Each call builds its own graph; nothing is kept between calls.
type Analyzer struct {
	Source     source.RecordSource
	Engine     *centrality.Engine
	Detector   community.Detector
	Summarizer *summary.Summarizer
	TopN       int

	UUIDGenerator func() string
	Now           func() time.Time
}

func NewAnalyzer(src source.RecordSource, cfg *config.Config, llmClient llm.LLMClient) *Analyzer {
	a := &Analyzer{
		Source: src,
		Engine: centrality.NewEngine(centrality.Options{
			EigenvectorMaxIter:   cfg.Analysis.EigenvectorMaxIter,
			EigenvectorTolerance: cfg.Analysis.EigenvectorTolerance,
			PageRankAlpha:        cfg.Analysis.PageRankAlpha,
			PageRankMaxIter:      cfg.Analysis.PageRankMaxIter,
			PageRankTolerance:    cfg.Analysis.PageRankTolerance,
		}),
		Detector:      community.New(cfg.Analysis.Communities),
		TopN:          cfg.Analysis.TopN,
		UUIDGenerator: func() string { return uuid.New().String() },
		Now:           func() time.Time { return time.Now().UTC() },
	}
	if llmClient != nil {
		a.Summarizer = summary.NewSummarizer(llmClient, cfg.Prompts.Insight)
	}
	return a
}

// Analyze fetches the protein's interactions from db and reports on them.
func (a *Analyzer) Analyze(ctx context.Context, proteinID string, db model.Database) (*model.Report, error) {
	proteinID = strings.TrimSpace(proteinID)
	if proteinID == "" {
		return nil, ErrInvalidProtein
	}

	records, err := a.Source.Fetch(ctx, proteinID, db)
	if err != nil {
		return nil, fmt.Errorf("fetch %s interactions for %s: %w", db, proteinID, err)
	}

	report, err := a.AnalyzeRecords(ctx, records)
	if err != nil {
		return nil, err
	}
	report.ProteinID = proteinID
	report.Database = db
	return report, nil
}

// AnalyzeRecords reports on an explicit record list. Either every stage
// succeeds and a complete report is returned, or nothing is.
func (a *Analyzer) AnalyzeRecords(ctx context.Context, records []model.InteractionRecord) (*model.Report, error) {
	runID := a.UUIDGenerator()

	g, err := network.Build(records)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	scores, err := a.Engine.Compute(g)
	if err != nil {
		return nil, fmt.Errorf("compute centralities: %w", err)
	}

	rows := make([]model.InteractionRecord, len(records))
	copy(rows, records)

	report := &model.Report{
		RunID:       runID,
		Summary:     model.GraphSummary{Nodes: g.NodeCount(), Edges: g.EdgeCount()},
		Records:     rows,
		DOT:         network.DOT(g),
		Rankings:    ranking.RankAll(scores, a.TopN),
		GeneratedAt: a.Now(),
	}

	if a.Detector != nil {
		communities, err := a.Detector.Detect(g)
		if err != nil {
			return nil, fmt.Errorf("detect communities: %w", err)
		}
		report.Communities = communities
	}

	if a.Summarizer != nil {
		insight, err := a.Summarizer.SummarizeReport(ctx, report.Summary, report.Rankings)
		if err != nil {
			log.Printf("Run %s: insight skipped: %v", runID, err)
		} else {
			report.Insight = insight
		}
	}

	log.Printf("Run %s: %d records, %d nodes, %d edges", runID, len(records), g.NodeCount(), g.EdgeCount())
	return report, nil
}
