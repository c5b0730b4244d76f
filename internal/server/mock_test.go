package server

import (
	"context"

	"github.com/agenthands/interactome/internal/core/model"
)

type MockSource struct {
	Records []model.InteractionRecord
	Err     error
}

func (m *MockSource) Fetch(ctx context.Context, proteinID string, db model.Database) ([]model.InteractionRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Records, nil
}
