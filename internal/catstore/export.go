package catstore

import (
	"errors"
	"fmt"

	"github.com/gbb-community/showcase/internal/parquet"
)

// ExecuteSnapshotExport exports all persisted snapshot data to Parquet
// files sharing the given path prefix.
func ExecuteSnapshotExport(outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export")
	}

	store := Manager.GetSnapshotStore()
	if store == nil {
		return errors.New("snapshot store is not configured")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get snapshot status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no snapshot data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}
	contributors, err := store.GetAllContributorRows()
	if err != nil {
		return fmt.Errorf("failed to retrieve contributor rows: %w", err)
	}
	repositories, err := store.GetAllRepoRows()
	if err != nil {
		return fmt.Errorf("failed to retrieve repository rows: %w", err)
	}

	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunRowsParquet(parquet.ConvertRunRows(runs), runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(runs), runsFile)

	contributorsFile := outputFile + ".contributors.parquet"
	if err := parquet.WriteContributorRowsParquet(parquet.ConvertContributorRows(contributors), contributorsFile); err != nil {
		return fmt.Errorf("failed to write contributor rows: %w", err)
	}
	fmt.Printf("Exported %d contributor rows to: %s\n", len(contributors), contributorsFile)

	repositoriesFile := outputFile + ".repositories.parquet"
	if err := parquet.WriteRepositoryRowsParquet(parquet.ConvertRepositoryRows(repositories), repositoriesFile); err != nil {
		return fmt.Errorf("failed to write repository rows: %w", err)
	}
	fmt.Printf("Exported %d repository rows to: %s\n", len(repositories), repositoriesFile)

	return nil
}
