package schema

// CatalogMetadata is the opt-in per-repository catalog block, parsed from a
// .gbbcatalog.yml file by the external repository-scanning collaborator.
// The derived lifecycle state is never stored here; it is recomputed on
// every read.
type CatalogMetadata struct {
	Enabled         bool     `json:"enabled" yaml:"enabled"`
	Owner           string   `json:"owner" yaml:"owner"`
	DisplayName     string   `json:"display_name" yaml:"display_name"`
	Description     string   `json:"description" yaml:"description"`
	Maturity        Maturity `json:"maturity" yaml:"maturity"`
	LastReviewed    string   `json:"last_reviewed,omitempty" yaml:"last_reviewed"`         // YYYY-MM-DD, optional
	ReviewCycleDays int      `json:"review_cycle_days,omitempty" yaml:"review_cycle_days"` // default 180
}

// CatalogFile is the on-disk shape of a .gbbcatalog.yml file.
type CatalogFile struct {
	SchemaVersion int             `json:"schema_version" yaml:"schema_version"`
	Catalog       CatalogMetadata `json:"catalog" yaml:"catalog"`
}

// RepoState pairs a repository with its derived lifecycle state.
type RepoState struct {
	Repo        string       `json:"repo"`
	State       CatalogState `json:"state"`
	NeedsReview bool         `json:"needs_review"`
	Maturity    Maturity     `json:"maturity,omitempty"`
	DaysSince   int          `json:"days_since_review"` // -1 when no review date is known
	CycleDays   int          `json:"review_cycle_days"`
}

// CategorizedRepository is a repository plus its derived classification and
// display descriptors.
type CategorizedRepository struct {
	Repository
	Category            Category   `json:"category"`
	CategoryDescriptor  Descriptor `json:"category_descriptor"`
	AssetType           AssetType  `json:"asset_type"`
	AssetTypeDescriptor Descriptor `json:"asset_type_descriptor"`
}
