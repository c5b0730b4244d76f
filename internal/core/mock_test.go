package core

import (
	"context"

	"github.com/agenthands/interactome/internal/core/model"
)

type MockSource struct {
	Records  []model.InteractionRecord
	Err      error
	Requests []string
}

func (m *MockSource) Fetch(ctx context.Context, proteinID string, db model.Database) ([]model.InteractionRecord, error) {
	m.Requests = append(m.Requests, string(db)+"/"+proteinID)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Records, nil
}

type MockLLM struct {
	Response string
	Err      error
	Calls    int
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
