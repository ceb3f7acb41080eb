package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/gbb-community/showcase/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 50
	MaxResultLimit     = 1000
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration shared by all commands.
// This struct remains the "final, validated" config.
type Config struct {
	InputPath   string // Positional argument: data file or content directory
	RawData     string // Inline JSON document for validate --data
	ResultLimit int
	Output      schema.OutputMode
	OutputFile  string
	Legacy      bool   // Use the legacy keyword classifier
	GroupBy     string // "", "category" or "type"
	Width       int    // Terminal width override (0 = auto-detect)
	Color       bool

	SnapshotBackend   schema.DatabaseBackend
	SnapshotDBConnect string

	// Now anchors all date-delta arithmetic for a single invocation so one
	// run computes one consistent answer.
	Now time.Time
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Data              string `mapstructure:"data"`
	Limit             int    `mapstructure:"limit"`
	Output            string `mapstructure:"output"`
	OutputFile        string `mapstructure:"output-file"`
	Legacy            bool   `mapstructure:"legacy"`
	GroupBy           string `mapstructure:"group-by"`
	Width             int    `mapstructure:"width"`
	Color             string `mapstructure:"color"`
	SnapshotBackend   string `mapstructure:"snapshot-backend"`
	SnapshotDBConnect string `mapstructure:"snapshot-db-connect"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format %q. must be text, csv, json", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	cfg.GroupBy = strings.ToLower(input.GroupBy)
	switch cfg.GroupBy {
	case "", "category", "type":
	default:
		return fmt.Errorf("invalid group-by %q. must be category or type", input.GroupBy)
	}

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width
	cfg.Legacy = input.Legacy
	cfg.RawData = input.Data

	switch strings.ToLower(input.Color) {
	case "", "yes", "true", "1":
		cfg.Color = true
	case "no", "false", "0":
		cfg.Color = false
	default:
		return fmt.Errorf("invalid color setting %q. must be yes/no/true/false/1/0", input.Color)
	}

	cfg.SnapshotBackend = schema.DatabaseBackend(strings.ToLower(input.SnapshotBackend))
	if _, ok := schema.ValidSnapshotBackends[cfg.SnapshotBackend]; !ok {
		return fmt.Errorf("invalid snapshot backend %q. must be sqlite, mysql, postgresql, or none", input.SnapshotBackend)
	}
	if err := ValidateDatabaseConnectionString(cfg.SnapshotBackend, input.SnapshotDBConnect); err != nil {
		return err
	}
	cfg.SnapshotDBConnect = input.SnapshotDBConnect

	cfg.Now = time.Now()
	return nil
}

// ValidateDatabaseConnectionString checks that server-based backends have a
// connection string with the expected shape. SQLite accepts an empty string
// (the default file path is used).
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("mysql backend requires snapshot-db-connect (format: user:pass@tcp(host:port)/dbname)")
		}
		if !strings.Contains(connStr, "@") {
			return fmt.Errorf("mysql connection string must look like user:pass@tcp(host:port)/dbname (received %q)", connStr)
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("postgresql backend requires snapshot-db-connect (format: host=... port=... user=... dbname=...)")
		}
	case schema.SQLiteBackend, schema.NoneBackend:
		// No connection string required.
	default:
		return fmt.Errorf("unsupported snapshot backend: %s", backend)
	}
	return nil
}

// Clone returns a copy of the config safe to mutate per request (used by
// the MCP handlers).
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
