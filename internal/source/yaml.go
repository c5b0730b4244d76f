package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/agenthands/interactome/internal/core/model"
)

// Dataset is the YAML interaction file format:
//
//	databases:
//	  BioGRID:
//	    - {protein_a: TP53, protein_b: MDM2, interaction_type: binding}
type Dataset struct {
	Databases map[string][]model.InteractionRecord `yaml:"databases"`
}

// ParseDataset decodes a dataset and checks its database names. Names are
// case-insensitive and each database may appear once.
func ParseDataset(r io.Reader) (map[model.Database][]model.InteractionRecord, error) {
	var ds Dataset
	if err := yaml.NewDecoder(r).Decode(&ds); err != nil {
		if err == io.EOF {
			return map[model.Database][]model.InteractionRecord{}, nil
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	names := make([]string, 0, len(ds.Databases))
	for name := range ds.Databases {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[model.Database][]model.InteractionRecord, len(ds.Databases))
	seen := make(map[model.Database]string, len(ds.Databases))
	for _, name := range names {
		db, ok := model.ParseDatabase(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDatabase, name)
		}
		// Record order feeds ranking ties, so one database gets one list.
		if prev, dup := seen[db]; dup {
			return nil, fmt.Errorf("database %s listed twice (%q and %q)", db, prev, name)
		}
		seen[db] = name
		out[db] = ds.Databases[name]
	}
	return out, nil
}

// LoadDataset reads a dataset file from disk.
func LoadDataset(path string) (map[model.Database][]model.InteractionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return ParseDataset(f)
}

// YAMLSource serves ego networks out of a dataset loaded once at startup.
type YAMLSource struct {
	records map[model.Database][]model.InteractionRecord
}

func NewYAMLSource(path string) (*YAMLSource, error) {
	records, err := LoadDataset(path)
	if err != nil {
		return nil, err
	}
	return &YAMLSource{records: records}, nil
}

func (s *YAMLSource) Fetch(ctx context.Context, proteinID string, db model.Database) ([]model.InteractionRecord, error) {
	records, ok := s.records[db]
	if !ok {
		return []model.InteractionRecord{}, nil
	}
	return egoNetwork(records, proteinID), nil
}
