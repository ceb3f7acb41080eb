package contract

import (
	"testing"

	"github.com/gbb-community/showcase/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawInput() *ConfigRawInput {
	return &ConfigRawInput{
		Limit:           DefaultResultLimit,
		Output:          "text",
		Color:           "yes",
		SnapshotBackend: "none",
	}
}

// TestProcessAndValidate tests config parsing and validation.
func TestProcessAndValidate(t *testing.T) {
	t.Run("defaults pass", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, rawInput()))
		assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
		assert.Equal(t, schema.TextOut, cfg.Output)
		assert.True(t, cfg.Color)
		assert.Equal(t, schema.NoneBackend, cfg.SnapshotBackend)
		assert.False(t, cfg.Now.IsZero())
	})

	t.Run("limit bounds", func(t *testing.T) {
		for _, limit := range []int{0, -1, MaxResultLimit + 1} {
			input := rawInput()
			input.Limit = limit
			assert.Error(t, ProcessAndValidate(&Config{}, input), "limit %d", limit)
		}
	})

	t.Run("output mode normalized", func(t *testing.T) {
		input := rawInput()
		input.Output = "JSON"
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, schema.JSONOut, cfg.Output)
	})

	t.Run("invalid output mode", func(t *testing.T) {
		input := rawInput()
		input.Output = "xml"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("group-by values", func(t *testing.T) {
		for _, groupBy := range []string{"", "category", "type", "Category"} {
			input := rawInput()
			input.GroupBy = groupBy
			assert.NoError(t, ProcessAndValidate(&Config{}, input), "group-by %q", groupBy)
		}

		input := rawInput()
		input.GroupBy = "stars"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("negative width rejected", func(t *testing.T) {
		input := rawInput()
		input.Width = -1
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("color settings", func(t *testing.T) {
		for setting, want := range map[string]bool{"yes": true, "1": true, "": true, "no": false, "false": false} {
			input := rawInput()
			input.Color = setting
			cfg := &Config{}
			require.NoError(t, ProcessAndValidate(cfg, input))
			assert.Equal(t, want, cfg.Color, "color %q", setting)
		}

		input := rawInput()
		input.Color = "maybe"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("invalid backend", func(t *testing.T) {
		input := rawInput()
		input.SnapshotBackend = "redis"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})
}

// TestValidateDatabaseConnectionString tests per-backend connection rules.
func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.DatabaseBackend
		connStr string
		wantErr bool
	}{
		{"sqlite empty ok", schema.SQLiteBackend, "", false},
		{"none empty ok", schema.NoneBackend, "", false},
		{"mysql requires conn", schema.MySQLBackend, "", true},
		{"mysql malformed", schema.MySQLBackend, "just-a-host", true},
		{"mysql ok", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/showcase", false},
		{"postgres requires conn", schema.PostgreSQLBackend, "", true},
		{"postgres ok", schema.PostgreSQLBackend, "host=localhost user=showcase dbname=showcase", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tc.backend, tc.connStr)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestConfigClone verifies clones are independent.
func TestConfigClone(t *testing.T) {
	cfg := &Config{InputPath: "data.json", ResultLimit: 10}
	clone := cfg.Clone()
	clone.InputPath = "other.json"
	clone.ResultLimit = 99

	assert.Equal(t, "data.json", cfg.InputPath)
	assert.Equal(t, 10, cfg.ResultLimit)
}
