package source

import (
	"context"
	"fmt"

	"github.com/agenthands/interactome/internal/core/model"
)

// ProteinPlaceholder in a mock row is replaced by the requested protein.
const ProteinPlaceholder = "{protein}"

// MockSource answers every query with a fixed table per database.
type MockSource struct {
	Tables map[model.Database][]model.InteractionRecord
}

// NewMockSource returns the built-in BioGRID and STRING tables.
func NewMockSource() *MockSource {
	return &MockSource{
		Tables: map[model.Database][]model.InteractionRecord{
			model.DatabaseBioGRID: {
				{ProteinA: ProteinPlaceholder, ProteinB: "Protein_1", InteractionType: "interaction"},
				{ProteinA: ProteinPlaceholder, ProteinB: "Protein_2", InteractionType: "binding"},
				{ProteinA: "Protein_X", ProteinB: "Protein_Y", InteractionType: "association"},
			},
			model.DatabaseSTRING: {
				{ProteinA: ProteinPlaceholder, ProteinB: "Protein_3", InteractionType: "interaction"},
				{ProteinA: ProteinPlaceholder, ProteinB: "Protein_4", InteractionType: "binding"},
				{ProteinA: "Protein_Z", ProteinB: "Protein_W", InteractionType: "association"},
			},
		},
	}
}

func (m *MockSource) Fetch(ctx context.Context, proteinID string, db model.Database) ([]model.InteractionRecord, error) {
	table, ok := m.Tables[db]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDatabase, db)
	}

	out := make([]model.InteractionRecord, len(table))
	for i, r := range table {
		if r.ProteinA == ProteinPlaceholder {
			r.ProteinA = proteinID
		}
		if r.ProteinB == ProteinPlaceholder {
			r.ProteinB = proteinID
		}
		out[i] = r
	}
	return out, nil
}
