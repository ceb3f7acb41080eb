package schema

import "time"

// SnapshotRun records one aggregation run persisted by the snapshot store.
type SnapshotRun struct {
	RunID        int64
	StartTime    time.Time
	EndTime      *time.Time
	TotalRepos   int
	TotalLogins  int
	ConfigParams map[string]any
}

// SnapshotContributorRow is the persisted shape of one roster row.
type SnapshotContributorRow struct {
	RunID              int64
	Login              string
	Region             Region
	TotalContributions int
	RepoCount          int
	Repositories       []string
	LatestCommitRepo   string
	LatestCommitDate   string
	RecordedAt         time.Time
}

// SnapshotRepoRow is the persisted shape of one classified repository.
type SnapshotRepoRow struct {
	RunID      int64
	Repo       string
	Category   Category
	AssetType  AssetType
	State      CatalogState
	Stars      int
	RecordedAt time.Time
}

// SnapshotStatus summarizes snapshot store state for the status command.
type SnapshotStatus struct {
	Backend    DatabaseBackend
	Location   string
	TotalRuns  int
	TableSizes map[string]int
}
