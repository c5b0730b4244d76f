package community

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/agenthands/interactome/internal/core/model"
	"github.com/agenthands/interactome/internal/core/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func graphOf(t *testing.T, nodes []string, pairs ...[2]string) *network.Graph {
	t.Helper()
	records := make([]model.InteractionRecord, len(pairs))
	for i, p := range pairs {
		records[i] = model.InteractionRecord{ProteinA: p[0], ProteinB: p[1], InteractionType: "binding"}
	}
	g, err := network.Build(records)
	require.NoError(t, err)
	for _, n := range nodes {
		g.AddNode(n)
	}
	return g
}

func TestDetect(t *testing.T) {
	g := graphOf(t, []string{"D"},
		[2]string{"A", "B"},
		[2]string{"B", "C"},
	)

	communities, err := NewComponentDetector().Detect(g)

	assert.NoError(t, err)
	// D is size 1, so filtered out.
	require.Len(t, communities, 1)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, communities[0])
}

func TestDetect_MultipleCommunities(t *testing.T) {
	g := graphOf(t, nil,
		[2]string{"P", "Protein_1"},
		[2]string{"P", "Protein_2"},
		[2]string{"Protein_X", "Protein_Y"},
	)

	communities, err := NewComponentDetector().Detect(g)

	assert.NoError(t, err)
	require.Len(t, communities, 2)
	assert.Equal(t, []string{"P", "Protein_1", "Protein_2"}, communities[0])
	assert.Equal(t, []string{"Protein_X", "Protein_Y"}, communities[1])
}

func TestNew(t *testing.T) {
	assert.IsType(t, &ComponentDetector{}, New("components"))
	assert.IsType(t, &LabelPropagationDetector{}, New("lpa"))
	assert.IsType(t, &LabelPropagationDetector{}, New(""))
	assert.Nil(t, New("none"))
}

func TestNew_UnknownMethodWarns(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	assert.IsType(t, &LabelPropagationDetector{}, New("louvain"))
	assert.Contains(t, buf.String(), `unknown community method "louvain"`)

	buf.Reset()
	New("lpa")
	New("components")
	assert.Empty(t, buf.String())
}
