package core

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gbb-community/showcase/internal/contract"
	"github.com/gbb-community/showcase/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExecuteStateCatalogFile checks that a YAML input path is evaluated
// as a single catalog file.
func TestExecuteStateCatalogFile(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, ".gbbcatalog.yml")
	doc := `schema_version: 1
catalog:
  enabled: true
  owner: platform-team
  display_name: Agents Demo
  description: Multi-agent orchestration demo
  maturity: production
  last_reviewed: "2020-01-01"
`
	require.NoError(t, os.WriteFile(catalogPath, []byte(doc), 0o644))

	outPath := filepath.Join(dir, "states.json")
	cfg := &contract.Config{
		InputPath:   catalogPath,
		ResultLimit: 10,
		Output:      schema.JSONOut,
		OutputFile:  outPath,
		Now:         time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, ExecuteState(context.Background(), cfg))

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var states []schema.RepoState
	require.NoError(t, json.Unmarshal(raw, &states))
	require.Len(t, states, 1)
	assert.Equal(t, "Agents Demo", states[0].Repo)
	assert.Equal(t, schema.StateNeedsReview, states[0].State)
	assert.True(t, states[0].NeedsReview)
}

// TestExecuteValidateRequiresInput checks the guard when neither a path nor
// an inline document is supplied.
func TestExecuteValidateRequiresInput(t *testing.T) {
	cfg := &contract.Config{}
	err := ExecuteValidate(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog file path")
}
