package source

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/agenthands/interactome/internal/core/model"
	"github.com/agenthands/interactome/internal/driver"
)

// MemgraphSource reads ego networks from a Memgraph (Bolt) interaction graph.
type MemgraphSource struct {
	Driver driver.GraphDriver
}

func NewMemgraphSource(d driver.GraphDriver) *MemgraphSource {
	return &MemgraphSource{Driver: d}
}

func (s *MemgraphSource) Fetch(ctx context.Context, proteinID string, db model.Database) ([]model.InteractionRecord, error) {
	res, err := s.Driver.ExecuteQuery(ctx, driver.FetchEgoNetworkQuery, map[string]interface{}{
		"protein_id": proteinID,
		"database":   string(db),
	})
	if err != nil {
		return nil, unavailable(db, err)
	}

	records := make([]model.InteractionRecord, 0, len(res.Records))
	for _, rec := range res.Records {
		records = append(records, model.InteractionRecord{
			ProteinA:        stringField(rec, "protein_a"),
			ProteinB:        stringField(rec, "protein_b"),
			InteractionType: stringField(rec, "interaction_type"),
		})
	}
	return records, nil
}

// stringField returns "" for missing or non-string values so that the graph
// builder reports them as schema violations.
func stringField(rec *neo4j.Record, key string) string {
	v, ok := rec.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func (s *MemgraphSource) Import(ctx context.Context, db model.Database, records []model.InteractionRecord) error {
	res, err := s.Driver.ExecuteQuery(ctx, driver.NextSeqQuery, nil)
	if err != nil {
		return fmt.Errorf("read next sequence: %w", err)
	}
	var seq int64
	if len(res.Records) > 0 {
		if v, ok := res.Records[0].Get("next"); ok {
			seq, _ = v.(int64)
		}
	}

	for i, r := range records {
		params := map[string]interface{}{
			"protein_a":        r.ProteinA,
			"protein_b":        r.ProteinB,
			"interaction_type": r.InteractionType,
			"database":         string(db),
			"seq":              seq + int64(i),
		}
		if _, err := s.Driver.ExecuteQuery(ctx, driver.SaveInteractionQuery, params); err != nil {
			return fmt.Errorf("import record %d: %w", i, err)
		}
	}
	return nil
}
