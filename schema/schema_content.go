package schema

// ContentEntry is the metadata record for one published content page. It is
// a distinct, simpler shape than CatalogMetadata and feeds the parallel
// staleness sweep, not the catalog state machine.
type ContentEntry struct {
	Path        string        `json:"path,omitempty" yaml:"-"`
	Title       string        `json:"title" yaml:"title"`
	Owner       string        `json:"owner" yaml:"owner"`
	Status      ContentStatus `json:"status" yaml:"status"`
	LastUpdated string        `json:"last_updated,omitempty" yaml:"last_updated"` // YYYY-MM-DD, optional
}

// StaleFinding is one overdue content page surfaced by the sweep.
type StaleFinding struct {
	Path        string        `json:"path,omitempty"`
	Title       string        `json:"title"`
	Owner       string        `json:"owner"`
	Status      ContentStatus `json:"status"`
	LastUpdated string        `json:"last_updated,omitempty"`
	DaysStale   int           `json:"days_stale"` // -1 when last_updated is absent or unparseable
	Severity    StaleSeverity `json:"severity"`
}
