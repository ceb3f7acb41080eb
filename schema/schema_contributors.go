package schema

// AnnotatedCommit is a commit record annotated with the repository it was
// observed in. Used for the cross-repository latest-commit tracking.
type AnnotatedCommit struct {
	Repo    string `json:"repo"`
	SHA     string `json:"sha"`
	Message string `json:"message,omitempty"`
	Date    string `json:"date"`
	URL     string `json:"url,omitempty"`
}

// MergedContributor is one row of the cross-repository roster. There is
// exactly one MergedContributor per login across the whole input set.
// Instances are built incrementally by the aggregation fold and are not
// mutated after aggregation completes.
type MergedContributor struct {
	Login              string              `json:"login"`
	ID                 int64               `json:"id"`
	AvatarURL          string              `json:"avatar_url,omitempty"`
	ProfileURL         string              `json:"profile_url,omitempty"`
	Profile            *ContributorProfile `json:"profile,omitempty"` // first-seen profile wins
	Region             Region              `json:"region"`
	TotalContributions int                 `json:"total_contributions"`
	Repositories       []string            `json:"repositories"` // first-seen order, no duplicates
	RepoCount          int                 `json:"repo_count"`
	LatestCommit       *AnnotatedCommit    `json:"latest_commit,omitempty"`
}
