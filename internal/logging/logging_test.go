package logging

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/agenthands/interactome/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interactome.log")
	w := Setup(config.LogConfig{File: path, MaxSize: 1, MaxAge: 1})
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	log.Printf("run %s finished", "abc")
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "run abc finished")
}

func TestSetup_Stdout(t *testing.T) {
	w := Setup(config.LogConfig{})
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	assert.NoError(t, w.Close())
}
