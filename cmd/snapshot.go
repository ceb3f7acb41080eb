package cmd

import (
	"fmt"

	"github.com/gbb-community/showcase/internal/catstore"
	"github.com/gbb-community/showcase/internal/contract"
	"github.com/gbb-community/showcase/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// snapshotSetup loads minimal configuration needed for snapshot operations.
// This is used by commands that need store access without full shared setup.
func snapshotSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get snapshot-related config values
	backendStr := viper.GetString("snapshot-backend")
	connStr := viper.GetString("snapshot-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize the store with the loaded config
	if err := catstore.InitStore(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize snapshot store: %w", err)
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// snapshotSetupWrapper wraps snapshotSetup to provide PreRunE for snapshot commands.
func snapshotSetupWrapper(_ *cobra.Command, _ []string) error {
	return snapshotSetup()
}

// snapshotMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create tables,
// allowing migrations to run on a fresh database.
func snapshotMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get snapshot-related config values
	backendStr := viper.GetString("snapshot-backend")
	connStr := viper.GetString("snapshot-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetSnapshotDBFilePath()
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr

	return nil
}

// snapshotMigrateSetupWrapper wraps snapshotMigrateSetup to provide PreRunE for migrate command.
func snapshotMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return snapshotMigrateSetup()
}

// snapshotCmd focused on snapshot data management.
//
// Note: Snapshot subcommands use minimal initialization (snapshotSetup) instead of
// the full sharedSetup used by the reporting commands. This avoids positional
// input handling and complex config processing for simple store operations.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage historical aggregation snapshots and exports",
	Long: `Manage the aggregation history used for trend tracking and reporting.

When enabled, Showcase records every contributors/repos run, storing:
- Run metadata (timestamp, configuration, totals)
- The merged roster rows produced by each run
- The classified repository rows produced by each run

This enables longitudinal reporting on community growth and catalog drift.

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show snapshot store statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all snapshot data
  migrate - Run database schema migrations

Examples:
  # Check snapshot status
  showcase snapshot status --snapshot-backend sqlite

  # Export for analysis in pandas/DuckDB
  showcase snapshot export --snapshot-backend sqlite --output-file showcase-data.parquet`,
}

// snapshotStatusCmd shows snapshot store status.
var snapshotStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display snapshot store statistics and connection details",
	Long: `Show detailed information about the snapshot store.

Displays:
- Backend type and location
- Total number of aggregation runs stored
- Database table sizes

Examples:
  # Check snapshot store status
  showcase snapshot status --snapshot-backend sqlite`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := catstore.Manager.GetSnapshotStore()
		if store == nil {
			fmt.Println("Snapshot persistence is disabled.")
			return
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get snapshot status", err)
		}
		catstore.PrintSnapshotStatus(status)
	},
}

// snapshotClearCmd clears the snapshot data.
var snapshotClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all historical snapshot data",
	Long: `Delete all stored aggregation runs and their roster and repository rows.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  showcase snapshot export --snapshot-backend sqlite --output-file backup.parquet
  showcase snapshot clear --snapshot-backend sqlite`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := catstore.Manager.GetSnapshotStore()
		if store == nil {
			fmt.Println("Snapshot persistence is disabled.")
			return
		}
		if err := store.Clear(); err != nil {
			contract.LogFatal("Failed to clear snapshot data", err)
		}
		fmt.Println("Snapshot data cleared successfully.")
	},
}

// snapshotExportCmd exports snapshot data to Parquet files.
var snapshotExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export historical data to Parquet for BI tools and analytics",
	Long: `Export all stored snapshot data to Parquet format for use with analytics tools.

Exports three datasets:
- Aggregation runs - metadata about each run
- Roster rows - merged contributor records per run
- Repository rows - classified repository records per run

Parquet format enables fast querying with DuckDB, Apache Spark and pandas,
and direct import into BI tools.

Requires: --output-file parameter

Examples:
  # Export all data
  showcase snapshot export --snapshot-backend sqlite --output-file showcase-data.parquet

  # Use with DuckDB for analysis
  duckdb -c "SELECT * FROM read_parquet('showcase-data.contributors.parquet') LIMIT 10"`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := catstore.ExecuteSnapshotExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export snapshot data", err)
		}
	},
}

// snapshotMigrateCmd runs database migrations for the snapshot store.
var snapshotMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the snapshot store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  showcase snapshot migrate --snapshot-backend sqlite

  # Rollback to initial state
  showcase snapshot migrate --snapshot-backend sqlite --target-version 0`,
	PreRunE: snapshotMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := catstore.MigrateSnapshots(cfg.SnapshotBackend, cfg.SnapshotDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
