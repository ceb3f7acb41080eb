// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/gbb-community/showcase/schema"
)

// SnapshotManager exposes the snapshot persistence layer to commands and
// core orchestration. It exists so the store can be mocked in tests.
type SnapshotManager interface {
	GetSnapshotStore() SnapshotStore
}

// SnapshotStore persists aggregation runs and their outputs. A run is
// opened before aggregation, rows are recorded as outputs are produced,
// and the run is closed with totals when the command finishes.
type SnapshotStore interface {
	// BeginRun creates a new aggregation run and returns its unique ID.
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data.
	EndRun(runID int64, endTime time.Time, totalRepos, totalLogins int) error

	// RecordContributor stores one merged roster row for a run.
	RecordContributor(runID int64, row schema.MergedContributor) error

	// RecordRepository stores one classified repository row for a run.
	RecordRepository(runID int64, repo schema.CategorizedRepository, state schema.CatalogState) error

	// GetStatus returns status information about the store.
	GetStatus() (schema.SnapshotStatus, error)

	// GetAllRuns returns every recorded run, oldest first.
	GetAllRuns() ([]schema.SnapshotRun, error)

	// GetAllContributorRows returns every persisted roster row.
	GetAllContributorRows() ([]schema.SnapshotContributorRow, error)

	// GetAllRepoRows returns every persisted repository row.
	GetAllRepoRows() ([]schema.SnapshotRepoRow, error)

	// Clear removes all persisted data.
	Clear() error

	// Close releases the underlying connection.
	Close() error
}
