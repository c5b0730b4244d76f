package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/agenthands/interactome/internal/core/model"
)

var (
	// ErrSourceUnavailable wraps backend failures. It is never returned for a
	// protein that simply has no interactions.
	ErrSourceUnavailable = errors.New("interaction source unavailable")

	ErrUnknownDatabase = errors.New("unknown database")
)

// RecordSource returns the interaction rows for a protein from one database.
// Every implementation yields the same three-field record schema.
type RecordSource interface {
	Fetch(ctx context.Context, proteinID string, db model.Database) ([]model.InteractionRecord, error)
}

// Importer is implemented by sources that can persist records.
type Importer interface {
	Import(ctx context.Context, db model.Database, records []model.InteractionRecord) error
}

// Router dispatches each database to the backend configured for it.
type Router struct {
	backends map[model.Database]RecordSource
	order    []model.Database
}

func NewRouter() *Router {
	return &Router{backends: make(map[model.Database]RecordSource)}
}

// Register binds db to src, replacing any earlier binding.
func (r *Router) Register(db model.Database, src RecordSource) {
	if _, ok := r.backends[db]; !ok {
		r.order = append(r.order, db)
	}
	r.backends[db] = src
}

// Databases lists registered databases in registration order.
func (r *Router) Databases() []model.Database {
	out := make([]model.Database, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Router) Fetch(ctx context.Context, proteinID string, db model.Database) ([]model.InteractionRecord, error) {
	src, ok := r.backends[db]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDatabase, db)
	}
	return src.Fetch(ctx, proteinID, db)
}

func unavailable(db model.Database, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, db, err)
}

// egoNetwork keeps the records whose endpoints both lie in the protein's
// closed neighbourhood, preserving input order.
func egoNetwork(records []model.InteractionRecord, proteinID string) []model.InteractionRecord {
	members := map[string]bool{proteinID: true}
	for _, r := range records {
		switch proteinID {
		case r.ProteinA:
			members[r.ProteinB] = true
		case r.ProteinB:
			members[r.ProteinA] = true
		}
	}

	out := []model.InteractionRecord{}
	for _, r := range records {
		if members[r.ProteinA] && members[r.ProteinB] {
			out = append(out, r)
		}
	}
	return out
}
