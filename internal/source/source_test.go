package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/interactome/internal/config"
	"github.com/agenthands/interactome/internal/core/model"
	"github.com/agenthands/interactome/internal/driver"
)

func rec(a, b, kind string) model.InteractionRecord {
	return model.InteractionRecord{ProteinA: a, ProteinB: b, InteractionType: kind}
}

// TP53 partners MDM2 and EP300; MDM2-EP300 closes a triangle; CDK2-CCNE1 is
// outside TP53's neighbourhood; MDM2-MDM4 reaches one hop too far.
var dataset = []model.InteractionRecord{
	rec("TP53", "MDM2", "binding"),
	rec("CDK2", "CCNE1", "binding"),
	rec("EP300", "TP53", "acetylation"),
	rec("MDM2", "EP300", "interaction"),
	rec("MDM2", "MDM4", "binding"),
}

var wantEgo = []model.InteractionRecord{
	rec("TP53", "MDM2", "binding"),
	rec("EP300", "TP53", "acetylation"),
	rec("MDM2", "EP300", "interaction"),
}

func TestMockSource(t *testing.T) {
	ctx := context.Background()
	m := NewMockSource()

	records, err := m.Fetch(ctx, "TP53", model.DatabaseBioGRID)
	require.NoError(t, err)
	assert.Equal(t, []model.InteractionRecord{
		rec("TP53", "Protein_1", "interaction"),
		rec("TP53", "Protein_2", "binding"),
		rec("Protein_X", "Protein_Y", "association"),
	}, records)

	records, err = m.Fetch(ctx, "TP53", model.DatabaseSTRING)
	require.NoError(t, err)
	assert.Equal(t, "Protein_3", records[0].ProteinB)
	assert.Equal(t, "Protein_W", records[2].ProteinB)

	// Fetching must not rewrite the template.
	assert.Equal(t, ProteinPlaceholder, m.Tables[model.DatabaseBioGRID][0].ProteinA)

	_, err = m.Fetch(ctx, "TP53", model.Database("UniProt"))
	assert.ErrorIs(t, err, ErrUnknownDatabase)
}

func TestRouter(t *testing.T) {
	ctx := context.Background()
	r := NewRouter()
	r.Register(model.DatabaseSTRING, NewMockSource())
	r.Register(model.DatabaseBioGRID, NewMockSource())
	r.Register(model.DatabaseSTRING, NewMockSource())

	assert.Equal(t, []model.Database{model.DatabaseSTRING, model.DatabaseBioGRID}, r.Databases())

	records, err := r.Fetch(ctx, "P", model.DatabaseBioGRID)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	r2 := NewRouter()
	_, err = r2.Fetch(ctx, "P", model.DatabaseBioGRID)
	assert.ErrorIs(t, err, ErrUnknownDatabase)
}

func TestEgoNetwork(t *testing.T) {
	assert.Equal(t, wantEgo, egoNetwork(dataset, "TP53"))
	assert.Empty(t, egoNetwork(dataset, "BRCA1"))
}

const datasetYAML = `
databases:
  BioGRID:
    - {protein_a: TP53, protein_b: MDM2, interaction_type: binding}
    - {protein_a: CDK2, protein_b: CCNE1, interaction_type: binding}
    - {protein_a: EP300, protein_b: TP53, interaction_type: acetylation}
    - {protein_a: MDM2, protein_b: EP300, interaction_type: interaction}
    - {protein_a: MDM2, protein_b: MDM4, interaction_type: binding}
  string:
    - {protein_a: TP53, protein_b: BRCA1, interaction_type: coexpression}
`

func TestYAMLSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ppi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(datasetYAML), 0o644))

	s, err := NewYAMLSource(path)
	require.NoError(t, err)

	ctx := context.Background()
	records, err := s.Fetch(ctx, "TP53", model.DatabaseBioGRID)
	require.NoError(t, err)
	assert.Equal(t, wantEgo, records)

	records, err = s.Fetch(ctx, "TP53", model.DatabaseSTRING)
	require.NoError(t, err)
	assert.Equal(t, []model.InteractionRecord{rec("TP53", "BRCA1", "coexpression")}, records)

	records, err = s.Fetch(ctx, "BRCA2", model.DatabaseBioGRID)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestParseDataset_Errors(t *testing.T) {
	_, err := ParseDataset(strings.NewReader("databases:\n  UniProt: []\n"))
	assert.ErrorIs(t, err, ErrUnknownDatabase)

	_, err = ParseDataset(strings.NewReader("databases: [oops"))
	assert.Error(t, err)

	_, err = NewYAMLSource(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseDataset_DuplicateDatabase(t *testing.T) {
	doc := `
databases:
  BioGRID:
    - {protein_a: TP53, protein_b: MDM2, interaction_type: binding}
  biogrid:
    - {protein_a: TP53, protein_b: EP300, interaction_type: binding}
`
	for i := 0; i < 5; i++ {
		tables, err := ParseDataset(strings.NewReader(doc))
		assert.Nil(t, tables)
		require.Error(t, err)
		assert.Equal(t, `database BioGRID listed twice ("BioGRID" and "biogrid")`, err.Error())
	}
}

func TestSQLiteSource(t *testing.T) {
	s, err := NewSQLiteSource(filepath.Join(t.TempDir(), "ppi.db"))
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Import(ctx, model.DatabaseBioGRID, dataset))
	require.NoError(t, s.Import(ctx, model.DatabaseSTRING, []model.InteractionRecord{rec("TP53", "BRCA1", "coexpression")}))

	records, err := s.Fetch(ctx, "TP53", model.DatabaseBioGRID)
	require.NoError(t, err)
	assert.Equal(t, wantEgo, records)

	records, err = s.Fetch(ctx, "TP53", model.DatabaseSTRING)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = s.Fetch(ctx, "BRCA2", model.DatabaseBioGRID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSQLiteSource_KeepsDuplicateRows(t *testing.T) {
	s, err := NewSQLiteSource(filepath.Join(t.TempDir(), "ppi.db"))
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	row := rec("TP53", "MDM2", "binding")
	require.NoError(t, s.Import(ctx, model.DatabaseBioGRID, []model.InteractionRecord{row, row}))

	records, err := s.Fetch(ctx, "TP53", model.DatabaseBioGRID)
	require.NoError(t, err)
	assert.Equal(t, []model.InteractionRecord{row, row}, records)
}

func TestSQLiteSource_ClosedIsUnavailable(t *testing.T) {
	s, err := NewSQLiteSource(filepath.Join(t.TempDir(), "ppi.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.Fetch(context.Background(), "TP53", model.DatabaseBioGRID)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestMemgraphSource_Fetch(t *testing.T) {
	d := &MockDriver{
		MockResult: neo4j.EagerResult{
			Records: []*neo4j.Record{
				{
					Keys:   []string{"protein_a", "protein_b", "interaction_type"},
					Values: []interface{}{"TP53", "MDM2", "binding"},
				},
				{
					Keys:   []string{"protein_a", "protein_b", "interaction_type"},
					Values: []interface{}{"MDM2", "EP300", nil},
				},
			},
		},
	}

	s := NewMemgraphSource(d)
	records, err := s.Fetch(context.Background(), "TP53", model.DatabaseSTRING)
	require.NoError(t, err)

	assert.Equal(t, []model.InteractionRecord{
		rec("TP53", "MDM2", "binding"),
		rec("MDM2", "EP300", ""),
	}, records)
	assert.Equal(t, driver.FetchEgoNetworkQuery, d.Queries[0])
	assert.Equal(t, "TP53", d.QueryParams[0]["protein_id"])
	assert.Equal(t, "STRING", d.QueryParams[0]["database"])
}

func TestMemgraphSource_Unavailable(t *testing.T) {
	s := NewMemgraphSource(&MockDriver{Err: errors.New("connection refused")})

	_, err := s.Fetch(context.Background(), "TP53", model.DatabaseBioGRID)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestMemgraphSource_Import(t *testing.T) {
	d := &MockDriver{
		MockResult: neo4j.EagerResult{
			Records: []*neo4j.Record{
				{Keys: []string{"next"}, Values: []interface{}{int64(7)}},
			},
		},
	}

	s := NewMemgraphSource(d)
	err := s.Import(context.Background(), model.DatabaseBioGRID, dataset[:2])
	require.NoError(t, err)

	require.Len(t, d.Queries, 3)
	assert.Equal(t, driver.NextSeqQuery, d.Queries[0])
	assert.Equal(t, driver.SaveInteractionQuery, d.Queries[1])
	assert.Equal(t, int64(7), d.QueryParams[1]["seq"])
	assert.Equal(t, int64(8), d.QueryParams[2]["seq"])
	assert.Equal(t, "CDK2", d.QueryParams[2]["protein_a"])
	assert.Equal(t, "BioGRID", d.QueryParams[2]["database"])
}

func TestMemgraphSource_ImportKeepsDuplicateRows(t *testing.T) {
	d := &MockDriver{}

	row := rec("TP53", "MDM2", "binding")
	err := NewMemgraphSource(d).Import(context.Background(), model.DatabaseSTRING, []model.InteractionRecord{row, row})
	require.NoError(t, err)

	require.Len(t, d.Queries, 3)
	assert.Equal(t, int64(0), d.QueryParams[1]["seq"])
	assert.Equal(t, int64(1), d.QueryParams[2]["seq"])
	assert.Contains(t, driver.SaveInteractionQuery, "CREATE (a)-[r:INTERACTS_WITH")
	assert.NotContains(t, driver.SaveInteractionQuery, "MERGE (a)-[")
}

func TestFromConfig(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "ppi.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(datasetYAML), 0o644))

	cfg := config.Default()
	cfg.Databases = []config.DatabaseConfig{
		{Name: "biogrid", Backend: "yaml", Path: yamlPath},
		{Name: "STRING", Backend: "sqlite", Path: filepath.Join(dir, "ppi.db")},
	}

	router, closeFn, err := FromConfig(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()

	assert.Equal(t, []model.Database{model.DatabaseBioGRID, model.DatabaseSTRING}, router.Databases())

	records, err := router.Fetch(context.Background(), "TP53", model.DatabaseBioGRID)
	require.NoError(t, err)
	assert.Equal(t, wantEgo, records)
}

func TestFromConfig_Errors(t *testing.T) {
	cfg := config.Default()
	cfg.Databases = []config.DatabaseConfig{{Name: "UniProt", Backend: "mock"}}
	_, _, err := FromConfig(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrUnknownDatabase)

	cfg.Databases = []config.DatabaseConfig{{Name: "BioGRID", Backend: "csv"}}
	_, _, err = FromConfig(context.Background(), cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}
