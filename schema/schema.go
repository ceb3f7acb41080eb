// Package schema has configs, models and constants for all parts of showcase.
package schema

import (
	"strings"
	"time"
)

// Repository represents one repository as materialized by the external
// data-collection step. The core never fetches this itself; it only
// transforms what the collector wrote to disk.
type Repository struct {
	Name            string             `json:"name"`
	FullName        string             `json:"full_name,omitempty"`
	Description     string             `json:"description"`
	Owner           string             `json:"owner"`
	Archived        bool               `json:"archived"`
	Fork            bool               `json:"fork"`
	Topics          []string           `json:"topics,omitempty"`
	TopicNames      []string           `json:"topic_names,omitempty"` // fallback shape from the alternate API surface
	Languages       map[string]int64   `json:"languages,omitempty"`   // language -> contributed bytes
	PrimaryLanguage string             `json:"primary_language,omitempty"`
	Stars           int                `json:"stars"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	PushedAt        time.Time          `json:"pushed_at"`
	TopContributor  *ContributorRecord `json:"top_contributor,omitempty"`
	Catalog         *CatalogMetadata   `json:"catalog,omitempty"`
}

// ContributorRecord is one contributor entry scoped to a single repository,
// as produced by the collector. Read-only to the core.
type ContributorRecord struct {
	Login         string               `json:"login"`
	ID            int64                `json:"id"`
	Contributions int                  `json:"contributions"`
	AvatarURL     string               `json:"avatar_url,omitempty"`
	ProfileURL    string               `json:"profile_url,omitempty"`
	Profile       *ContributorProfile  `json:"profile,omitempty"`
	Activity      *ContributorActivity `json:"activity,omitempty"`
}

// ContributorProfile holds the optional public profile block.
type ContributorProfile struct {
	Name     string `json:"name,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Company  string `json:"company,omitempty"`
	Location string `json:"location,omitempty"`
	Email    string `json:"email,omitempty"`
	Social   string `json:"social,omitempty"`
	Website  string `json:"website,omitempty"`
}

// ContributorActivity holds the optional last-commit block for a contributor
// within one repository.
type ContributorActivity struct {
	LastCommit *CommitRef `json:"last_commit,omitempty"`
}

// CommitRef identifies a single commit.
type CommitRef struct {
	SHA     string `json:"sha"`
	Message string `json:"message,omitempty"`
	Date    string `json:"date"` // RFC3339 or YYYY-MM-DD; unparseable dates sort first
	URL     string `json:"url,omitempty"`
}

// RepoContributorData is the per-repository slice of contributor records.
type RepoContributorData struct {
	Contributors []ContributorRecord `json:"contributors"`
}

// ContributorData is the aggregator input: contributor lists keyed by
// repository name.
type ContributorData struct {
	Repositories map[string]RepoContributorData `json:"repositories"`
}

// NormalizedTopics returns the canonical lowercase topic list for a
// repository. The authoritative Topics field wins; the flat TopicNames
// fallback is only consulted when Topics is absent. Classification logic
// never branches on input shape beyond this one normalization step.
func (r *Repository) NormalizedTopics() []string {
	src := r.Topics
	if len(src) == 0 {
		src = r.TopicNames
	}
	out := make([]string, 0, len(src))
	for _, t := range src {
		out = append(out, strings.ToLower(strings.TrimSpace(t)))
	}
	return out
}
