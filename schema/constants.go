package schema

// Custom string types for type safety.
type (
	// Region represents a coarse geographic bucket for a contributor.
	Region string

	// Category represents the technology/product area of a repository.
	Category string

	// AssetType represents the kind of artifact a repository ships.
	AssetType string

	// Maturity represents the declared stability tier of a cataloged project.
	Maturity string

	// CatalogState represents the derived lifecycle state of a catalog entry.
	CatalogState string

	// ContentStatus represents the declared status of a content page.
	ContentStatus string

	// StaleSeverity represents how overdue a content page is.
	StaleSeverity string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for snapshots.
	DatabaseBackend string
)

// All regions supported.
const (
	RegionAmericas    Region = "americas"
	RegionEurope      Region = "europe"
	RegionAsiaPacific Region = "asia-pacific"
	RegionOther       Region = "other"
)

// All categories supported.
const (
	CategoryAI       Category = "ai"
	CategoryData     Category = "data"
	CategoryInfra    Category = "infrastructure"
	CategorySecurity Category = "security"
	CategoryAppDev   Category = "app-development"
	CategoryOther    Category = "other" // default
)

// All asset types supported.
const (
	AssetTypeDemo     AssetType = "demo"
	AssetTypeWorkshop AssetType = "workshop"
	AssetTypeTool     AssetType = "tool"
	AssetTypeTemplate AssetType = "template"
	AssetTypeLibrary  AssetType = "library"
	AssetTypeCode     AssetType = "code" // default
)

// All maturity tiers supported.
const (
	MaturityIncubating Maturity = "incubating"
	MaturityProduction Maturity = "production"
	MaturityDeprecated Maturity = "deprecated"
)

// All catalog lifecycle states.
const (
	StateNotInCatalog CatalogState = "not-in-catalog"
	StatePublished    CatalogState = "published"
	StateNeedsReview  CatalogState = "needs-review"
	StateDeprecated   CatalogState = "deprecated"
)

// All content page statuses.
const (
	ContentWIP        ContentStatus = "wip"
	ContentReady      ContentStatus = "ready"
	ContentDeprecated ContentStatus = "deprecated"
)

// All stale severities, ordered from least to most overdue.
const (
	SeverityMedium   StaleSeverity = "medium"   // >90 days
	SeverityHigh     StaleSeverity = "high"     // >120 days
	SeverityCritical StaleSeverity = "critical" // >180 days
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All snapshot backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// Catalog metadata constants.
const (
	// SupportedSchemaVersion is the single catalog schema version understood
	// by this build. Validation rejects every other value.
	SupportedSchemaVersion = 1

	// DefaultReviewCycleDays is the review cadence applied when a catalog
	// entry does not declare review_cycle_days.
	DefaultReviewCycleDays = 180

	// DateOnlyFormat is the format required for last_reviewed and
	// last_updated fields.
	DateOnlyFormat = "2006-01-02"
)

// Content staleness thresholds in days. The content sweep is a fixed-cycle
// check, distinct from the catalog state machine's configurable cycle.
const (
	ContentStaleDays    = 90
	ContentHighDays     = 120
	ContentCriticalDays = 180
)

// CategoryOrder fixes the enumeration order for classification and for
// grouped output. First intersecting category wins.
var CategoryOrder = []Category{
	CategoryAI,
	CategoryData,
	CategoryInfra,
	CategorySecurity,
	CategoryAppDev,
	CategoryOther,
}

// AssetTypeOrder fixes the enumeration order for asset type classification.
var AssetTypeOrder = []AssetType{
	AssetTypeDemo,
	AssetTypeWorkshop,
	AssetTypeTool,
	AssetTypeTemplate,
	AssetTypeLibrary,
	AssetTypeCode,
}

// ValidMaturities lists all valid maturity tiers.
var ValidMaturities = map[Maturity]struct{}{
	MaturityIncubating: {},
	MaturityProduction: {},
	MaturityDeprecated: {},
}

// ValidContentStatuses lists all valid content statuses.
var ValidContentStatuses = map[ContentStatus]struct{}{
	ContentWIP:        {},
	ContentReady:      {},
	ContentDeprecated: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidSnapshotBackends lists all valid snapshot backends.
var ValidSnapshotBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
