package catstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gbb-community/showcase/internal/contract"
	"github.com/gbb-community/showcase/schema"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// Table names for snapshot tracking.
const (
	runsTable         = "showcase_runs"
	contributorsTable = "showcase_contributors"
	repositoriesTable = "showcase_repositories"
)

// SnapshotStoreImpl implements the SnapshotStore interface over various
// database backends.
type SnapshotStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
	location   string
}

var _ contract.SnapshotStore = &SnapshotStoreImpl{} // Compile-time check

// NewSnapshotStore creates a new SnapshotStore with the specified backend.
func NewSnapshotStore(backend schema.DatabaseBackend, connStr string) (contract.SnapshotStore, error) {
	var db *sql.DB
	var err error
	var driverName, location string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetSnapshotDBFilePath()
		}
		location = dbPath
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		driverName = "mysql"
		location = connStr
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		driverName = "pgx"
		location = connStr
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled persistence
		return &SnapshotStoreImpl{db: nil, backend: backend}, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w. Check that the server is running and connection parameters are valid", backend, err)
	}

	// Create the table schemas
	if err := createSnapshotTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create snapshot tables: %w", err)
	}

	return &SnapshotStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
		location:   location,
	}, nil
}

// createSnapshotTables creates the snapshot tracking tables.
func createSnapshotTables(db *sql.DB, backend schema.DatabaseBackend) error {
	tables := []struct {
		name  string
		query string
	}{
		{runsTable, getCreateRunsQuery(backend)},
		{contributorsTable, getCreateContributorsQuery(backend)},
		{repositoriesTable, getCreateRepositoriesQuery(backend)},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
	}
	return nil
}

// getCreateRunsQuery returns the CREATE TABLE query for showcase_runs.
func getCreateRunsQuery(backend schema.DatabaseBackend) string {
	quoted := quoteTableName(runsTable, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				start_time DATETIME(6) NOT NULL,
				end_time DATETIME(6),
				total_repos INT,
				total_logins INT,
				config_params TEXT
			);
		`, quoted)
	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id BIGSERIAL PRIMARY KEY,
				start_time TIMESTAMP NOT NULL,
				end_time TIMESTAMP,
				total_repos INT,
				total_logins INT,
				config_params TEXT
			);
		`, quoted)
	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id INTEGER PRIMARY KEY AUTOINCREMENT,
				start_time TIMESTAMP NOT NULL,
				end_time TIMESTAMP,
				total_repos INTEGER,
				total_logins INTEGER,
				config_params TEXT
			);
		`, quoted)
	}
}

// getCreateContributorsQuery returns the CREATE TABLE query for showcase_contributors.
func getCreateContributorsQuery(backend schema.DatabaseBackend) string {
	quoted := quoteTableName(contributorsTable, backend)
	intType := "INTEGER"
	if backend == schema.MySQLBackend || backend == schema.PostgreSQLBackend {
		intType = "INT"
	}
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			run_id BIGINT NOT NULL,
			login VARCHAR(255) NOT NULL,
			region VARCHAR(32) NOT NULL,
			total_contributions %s NOT NULL,
			repo_count %s NOT NULL,
			repositories TEXT,
			latest_commit_repo VARCHAR(255),
			latest_commit_date VARCHAR(64),
			recorded_at TIMESTAMP NOT NULL,
			PRIMARY KEY (run_id, login)
		);
	`, quoted, intType, intType)
}

// getCreateRepositoriesQuery returns the CREATE TABLE query for showcase_repositories.
func getCreateRepositoriesQuery(backend schema.DatabaseBackend) string {
	quoted := quoteTableName(repositoriesTable, backend)
	intType := "INTEGER"
	if backend == schema.MySQLBackend || backend == schema.PostgreSQLBackend {
		intType = "INT"
	}
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			run_id BIGINT NOT NULL,
			repo VARCHAR(255) NOT NULL,
			category VARCHAR(64) NOT NULL,
			asset_type VARCHAR(64) NOT NULL,
			state VARCHAR(32) NOT NULL,
			stars %s NOT NULL,
			recorded_at TIMESTAMP NOT NULL,
			PRIMARY KEY (run_id, repo)
		);
	`, quoted, intType)
}

// quoteTableName quotes a table identifier for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	if backend == schema.MySQLBackend {
		return "`" + name + "`"
	}
	return `"` + name + `"`
}

// placeholders returns a parameter list in the backend's placeholder style.
func (s *SnapshotStoreImpl) placeholders(n int) []string {
	out := make([]string, n)
	for i := range out {
		if s.backend == schema.PostgreSQLBackend {
			out[i] = fmt.Sprintf("$%d", i+1)
		} else {
			out[i] = "?"
		}
	}
	return out
}

// BeginRun creates a new aggregation run and returns its unique ID.
func (s *SnapshotStoreImpl) BeginRun(startTime time.Time, configParams map[string]any) (int64, error) {
	if s.db == nil {
		return 0, nil
	}

	paramsJSON, err := json.Marshal(configParams)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal config params: %w", err)
	}

	quoted := quoteTableName(runsTable, s.backend)
	ph := s.placeholders(2)

	if s.backend == schema.PostgreSQLBackend {
		query := fmt.Sprintf("INSERT INTO %s (start_time, config_params) VALUES (%s, %s) RETURNING run_id", quoted, ph[0], ph[1])
		var runID int64
		if err := s.db.QueryRow(query, startTime, string(paramsJSON)).Scan(&runID); err != nil {
			return 0, fmt.Errorf("failed to begin run: %w", err)
		}
		return runID, nil
	}

	query := fmt.Sprintf("INSERT INTO %s (start_time, config_params) VALUES (%s, %s)", quoted, ph[0], ph[1])
	res, err := s.db.Exec(query, startTime, string(paramsJSON))
	if err != nil {
		return 0, fmt.Errorf("failed to begin run: %w", err)
	}
	return res.LastInsertId()
}

// EndRun updates the run with completion data.
func (s *SnapshotStoreImpl) EndRun(runID int64, endTime time.Time, totalRepos, totalLogins int) error {
	if s.db == nil {
		return nil
	}
	quoted := quoteTableName(runsTable, s.backend)
	ph := s.placeholders(4)
	query := fmt.Sprintf("UPDATE %s SET end_time = %s, total_repos = %s, total_logins = %s WHERE run_id = %s",
		quoted, ph[0], ph[1], ph[2], ph[3])
	if _, err := s.db.Exec(query, endTime, totalRepos, totalLogins, runID); err != nil {
		return fmt.Errorf("failed to end run %d: %w", runID, err)
	}
	return nil
}

// RecordContributor stores one merged roster row for a run.
func (s *SnapshotStoreImpl) RecordContributor(runID int64, row schema.MergedContributor) error {
	if s.db == nil {
		return nil
	}

	var commitRepo, commitDate string
	if row.LatestCommit != nil {
		commitRepo = row.LatestCommit.Repo
		commitDate = row.LatestCommit.Date
	}

	quoted := quoteTableName(contributorsTable, s.backend)
	ph := s.placeholders(9)
	query := fmt.Sprintf(`INSERT INTO %s
		(run_id, login, region, total_contributions, repo_count, repositories, latest_commit_repo, latest_commit_date, recorded_at)
		VALUES (%s)`, quoted, strings.Join(ph, ", "))
	_, err := s.db.Exec(query,
		runID, row.Login, string(row.Region), row.TotalContributions, row.RepoCount,
		strings.Join(row.Repositories, ","), commitRepo, commitDate, time.Now())
	if err != nil {
		return fmt.Errorf("failed to record contributor %q: %w", row.Login, err)
	}
	return nil
}

// RecordRepository stores one classified repository row for a run.
func (s *SnapshotStoreImpl) RecordRepository(runID int64, repo schema.CategorizedRepository, state schema.CatalogState) error {
	if s.db == nil {
		return nil
	}
	quoted := quoteTableName(repositoriesTable, s.backend)
	ph := s.placeholders(7)
	query := fmt.Sprintf(`INSERT INTO %s
		(run_id, repo, category, asset_type, state, stars, recorded_at)
		VALUES (%s)`, quoted, strings.Join(ph, ", "))
	_, err := s.db.Exec(query,
		runID, repo.Name, string(repo.Category), string(repo.AssetType), string(state), repo.Stars, time.Now())
	if err != nil {
		return fmt.Errorf("failed to record repository %q: %w", repo.Name, err)
	}
	return nil
}

// GetStatus returns status information about the store.
func (s *SnapshotStoreImpl) GetStatus() (schema.SnapshotStatus, error) {
	status := schema.SnapshotStatus{
		Backend:    s.backend,
		Location:   s.location,
		TableSizes: make(map[string]int),
	}
	if s.db == nil {
		return status, nil
	}

	for _, table := range []string{runsTable, contributorsTable, repositoriesTable} {
		var count int
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(table, s.backend))
		if err := s.db.QueryRow(query).Scan(&count); err != nil {
			return status, fmt.Errorf("failed to count rows in %s: %w", table, err)
		}
		status.TableSizes[table] = count
	}
	status.TotalRuns = status.TableSizes[runsTable]
	return status, nil
}

// GetAllRuns returns every recorded run, oldest first.
func (s *SnapshotStoreImpl) GetAllRuns() ([]schema.SnapshotRun, error) {
	if s.db == nil {
		return nil, nil
	}
	quoted := quoteTableName(runsTable, s.backend)
	rows, err := s.db.Query(fmt.Sprintf(
		"SELECT run_id, start_time, end_time, total_repos, total_logins, config_params FROM %s ORDER BY run_id", quoted))
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []schema.SnapshotRun
	for rows.Next() {
		var run schema.SnapshotRun
		var endTime sql.NullTime
		var totalRepos, totalLogins sql.NullInt64
		var params sql.NullString
		if err := rows.Scan(&run.RunID, &run.StartTime, &endTime, &totalRepos, &totalLogins, &params); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if endTime.Valid {
			t := endTime.Time
			run.EndTime = &t
		}
		run.TotalRepos = int(totalRepos.Int64)
		run.TotalLogins = int(totalLogins.Int64)
		if params.Valid && params.String != "" {
			_ = json.Unmarshal([]byte(params.String), &run.ConfigParams)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetAllContributorRows returns every persisted roster row.
func (s *SnapshotStoreImpl) GetAllContributorRows() ([]schema.SnapshotContributorRow, error) {
	if s.db == nil {
		return nil, nil
	}
	quoted := quoteTableName(contributorsTable, s.backend)
	rows, err := s.db.Query(fmt.Sprintf(
		`SELECT run_id, login, region, total_contributions, repo_count, repositories,
			latest_commit_repo, latest_commit_date, recorded_at
		FROM %s ORDER BY run_id, total_contributions DESC`, quoted))
	if err != nil {
		return nil, fmt.Errorf("failed to query contributors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []schema.SnapshotContributorRow
	for rows.Next() {
		var r schema.SnapshotContributorRow
		var region, repositories string
		var commitRepo, commitDate sql.NullString
		if err := rows.Scan(&r.RunID, &r.Login, &region, &r.TotalContributions, &r.RepoCount,
			&repositories, &commitRepo, &commitDate, &r.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contributor: %w", err)
		}
		r.Region = schema.Region(region)
		if repositories != "" {
			r.Repositories = strings.Split(repositories, ",")
		}
		r.LatestCommitRepo = commitRepo.String
		r.LatestCommitDate = commitDate.String
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetAllRepoRows returns every persisted repository row.
func (s *SnapshotStoreImpl) GetAllRepoRows() ([]schema.SnapshotRepoRow, error) {
	if s.db == nil {
		return nil, nil
	}
	quoted := quoteTableName(repositoriesTable, s.backend)
	rows, err := s.db.Query(fmt.Sprintf(
		"SELECT run_id, repo, category, asset_type, state, stars, recorded_at FROM %s ORDER BY run_id, repo", quoted))
	if err != nil {
		return nil, fmt.Errorf("failed to query repositories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []schema.SnapshotRepoRow
	for rows.Next() {
		var r schema.SnapshotRepoRow
		var category, assetType, state string
		if err := rows.Scan(&r.RunID, &r.Repo, &category, &assetType, &state, &r.Stars, &r.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan repository: %w", err)
		}
		r.Category = schema.Category(category)
		r.AssetType = schema.AssetType(assetType)
		r.State = schema.CatalogState(state)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Clear removes all persisted data.
func (s *SnapshotStoreImpl) Clear() error {
	if s.db == nil {
		return nil
	}
	for _, table := range []string{contributorsTable, repositoriesTable, runsTable} {
		query := fmt.Sprintf("DELETE FROM %s", quoteTableName(table, s.backend))
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}

// Close releases the underlying connection.
func (s *SnapshotStoreImpl) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
