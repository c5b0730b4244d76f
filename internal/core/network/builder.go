package network

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agenthands/interactome/internal/core/model"
)

// ErrSchemaViolation is matched by every error Build returns for a malformed record.
var ErrSchemaViolation = errors.New("interaction record schema violation")

// SchemaError reports the first malformed record seen by Build.
type SchemaError struct {
	Row   int
	Field string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("record %d: missing required field %q", e.Row, e.Field)
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchemaViolation }

// Build converts interaction records into an undirected simple graph.
// The first record with a blank field aborts the build.
func Build(records []model.InteractionRecord) (*Graph, error) {
	g := NewGraph()
	for i, r := range records {
		if err := validate(i, r); err != nil {
			return nil, err
		}
		g.AddEdge(strings.TrimSpace(r.ProteinA), strings.TrimSpace(r.ProteinB))
	}
	return g, nil
}

func validate(row int, r model.InteractionRecord) error {
	switch {
	case strings.TrimSpace(r.ProteinA) == "":
		return &SchemaError{Row: row, Field: "protein_a"}
	case strings.TrimSpace(r.ProteinB) == "":
		return &SchemaError{Row: row, Field: "protein_b"}
	case strings.TrimSpace(r.InteractionType) == "":
		return &SchemaError{Row: row, Field: "interaction_type"}
	}
	return nil
}
