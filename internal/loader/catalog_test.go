package loader

import (
	"testing"

	"github.com/gbb-community/showcase/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalogYAML = `schema_version: 1
catalog:
  enabled: true
  owner: team-a
  display_name: Demo Showcase
  description: A demo repository
  maturity: production
  last_reviewed: "2024-05-01"
  review_cycle_days: 90
`

// TestLoadCatalogFile tests typed parsing of catalog metadata.
func TestLoadCatalogFile(t *testing.T) {
	t.Run("yaml file", func(t *testing.T) {
		path := writeTemp(t, ".gbbcatalog.yml", validCatalogYAML)
		f, err := LoadCatalogFile(path)
		require.NoError(t, err)
		assert.Equal(t, 1, f.SchemaVersion)
		assert.True(t, f.Catalog.Enabled)
		assert.Equal(t, "team-a", f.Catalog.Owner)
		assert.Equal(t, schema.MaturityProduction, f.Catalog.Maturity)
		assert.Equal(t, 90, f.Catalog.ReviewCycleDays)
	})

	t.Run("json file", func(t *testing.T) {
		path := writeTemp(t, "catalog.json", `{
			"schema_version": 1,
			"catalog": {"enabled": false, "owner": "team-b", "maturity": "incubating"}
		}`)
		f, err := LoadCatalogFile(path)
		require.NoError(t, err)
		assert.False(t, f.Catalog.Enabled)
		assert.Equal(t, schema.MaturityIncubating, f.Catalog.Maturity)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeTemp(t, "bad.yml", "catalog: [unclosed")
		_, err := LoadCatalogFile(path)
		assert.Error(t, err)
	})
}

// TestLoadCatalogDocument tests the raw map form used by validation.
func TestLoadCatalogDocument(t *testing.T) {
	t.Run("type errors survive parsing", func(t *testing.T) {
		path := writeTemp(t, ".gbbcatalog.yml", `schema_version: 1
catalog:
  enabled: "yes"
`)
		doc, err := LoadCatalogDocument(path)
		require.NoError(t, err)

		catalog, ok := doc["catalog"].(map[string]any)
		require.True(t, ok)
		// The string stays a string instead of being coerced into a bool.
		assert.Equal(t, "yes", catalog["enabled"])
	})
}

// TestParseCatalogDocument tests inline document parsing.
func TestParseCatalogDocument(t *testing.T) {
	t.Run("json mode", func(t *testing.T) {
		doc, err := ParseCatalogDocument([]byte(`{"schema_version": 1}`), true)
		require.NoError(t, err)
		assert.Equal(t, float64(1), doc["schema_version"])
	})

	t.Run("yaml mode accepts json too", func(t *testing.T) {
		doc, err := ParseCatalogDocument([]byte(`{"schema_version": 1}`), false)
		require.NoError(t, err)
		assert.Equal(t, 1, doc["schema_version"])
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := ParseCatalogDocument([]byte(`{broken`), true)
		assert.Error(t, err)
	})
}
