// Package parquet provides data structures and functions for exporting
// showcase snapshot data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gbb-community/showcase/schema"
	"github.com/parquet-go/parquet-go"
)

// ContributorRow is the Parquet shape of one persisted roster row. It maps
// to the showcase_contributors table.
type ContributorRow struct {
	RunID              int64     `parquet:"run_id,snappy"`
	Login              string    `parquet:"login,snappy"`
	Region             string    `parquet:"region,snappy"`
	TotalContributions int32     `parquet:"total_contributions,snappy"`
	RepoCount          int32     `parquet:"repo_count,snappy"`
	Repositories       *string   `parquet:"repositories,optional,snappy"`
	LatestCommitRepo   *string   `parquet:"latest_commit_repo,optional,snappy"`
	LatestCommitDate   *string   `parquet:"latest_commit_date,optional,snappy"`
	RecordedAt         time.Time `parquet:"recorded_at,snappy"`
}

// RepositoryRow is the Parquet shape of one persisted repository row. It
// maps to the showcase_repositories table.
type RepositoryRow struct {
	RunID      int64     `parquet:"run_id,snappy"`
	Repo       string    `parquet:"repo,snappy"`
	Category   string    `parquet:"category,snappy"`
	AssetType  string    `parquet:"asset_type,snappy"`
	State      string    `parquet:"state,snappy"`
	Stars      int32     `parquet:"stars,snappy"`
	RecordedAt time.Time `parquet:"recorded_at,snappy"`
}

// RunRow is the Parquet shape of one aggregation run. It maps to the
// showcase_runs table.
type RunRow struct {
	RunID       int64      `parquet:"run_id,snappy"`
	StartTime   time.Time  `parquet:"start_time,snappy"`
	EndTime     *time.Time `parquet:"end_time,optional,snappy"`
	TotalRepos  int32      `parquet:"total_repos,snappy"`
	TotalLogins int32      `parquet:"total_logins,snappy"`
}

// ConvertContributorRows converts store rows to their Parquet shape.
func ConvertContributorRows(rows []schema.SnapshotContributorRow) []ContributorRow {
	out := make([]ContributorRow, 0, len(rows))
	for _, r := range rows {
		row := ContributorRow{
			RunID:              r.RunID,
			Login:              r.Login,
			Region:             string(r.Region),
			TotalContributions: int32(r.TotalContributions),
			RepoCount:          int32(r.RepoCount),
			RecordedAt:         r.RecordedAt,
		}
		if len(r.Repositories) > 0 {
			joined := strings.Join(r.Repositories, ",")
			row.Repositories = &joined
		}
		if r.LatestCommitRepo != "" {
			v := r.LatestCommitRepo
			row.LatestCommitRepo = &v
		}
		if r.LatestCommitDate != "" {
			v := r.LatestCommitDate
			row.LatestCommitDate = &v
		}
		out = append(out, row)
	}
	return out
}

// ConvertRepositoryRows converts store rows to their Parquet shape.
func ConvertRepositoryRows(rows []schema.SnapshotRepoRow) []RepositoryRow {
	out := make([]RepositoryRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, RepositoryRow{
			RunID:      r.RunID,
			Repo:       r.Repo,
			Category:   string(r.Category),
			AssetType:  string(r.AssetType),
			State:      string(r.State),
			Stars:      int32(r.Stars),
			RecordedAt: r.RecordedAt,
		})
	}
	return out
}

// ConvertRunRows converts store runs to their Parquet shape.
func ConvertRunRows(runs []schema.SnapshotRun) []RunRow {
	out := make([]RunRow, 0, len(runs))
	for _, r := range runs {
		out = append(out, RunRow{
			RunID:       r.RunID,
			StartTime:   r.StartTime,
			EndTime:     r.EndTime,
			TotalRepos:  int32(r.TotalRepos),
			TotalLogins: int32(r.TotalLogins),
		})
	}
	return out
}

// WriteContributorRowsParquet writes roster rows to a Parquet file.
func WriteContributorRowsParquet(rows []ContributorRow, path string) error {
	return writeParquet(rows, path)
}

// WriteRepositoryRowsParquet writes repository rows to a Parquet file.
func WriteRepositoryRowsParquet(rows []RepositoryRow, path string) error {
	return writeParquet(rows, path)
}

// WriteRunRowsParquet writes run rows to a Parquet file.
func WriteRunRowsParquet(rows []RunRow, path string) error {
	return writeParquet(rows, path)
}

// writeParquet writes any row slice to a Parquet file.
func writeParquet[T any](rows []T, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
