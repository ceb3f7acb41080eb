package core

import (
	"slices"
	"sort"
	"time"

	"github.com/gbb-community/showcase/schema"
)

// MergeContributors folds the per-repository contributor lists into the
// cross-repository roster. Repositories are visited in sorted name order so
// the fold is deterministic regardless of map iteration order; within a
// repository, contributors are visited in input order. The result is sorted
// descending by total contributions with a stable tie-break on first
// appearance. The input is never mutated.
func MergeContributors(data *schema.ContributorData) []schema.MergedContributor {
	if data == nil || len(data.Repositories) == 0 {
		return []schema.MergedContributor{}
	}

	repoNames := make([]string, 0, len(data.Repositories))
	for name := range data.Repositories {
		repoNames = append(repoNames, name)
	}
	sort.Strings(repoNames)

	byLogin := make(map[string]*schema.MergedContributor)
	order := make([]string, 0) // logins in first-seen order

	for _, repoName := range repoNames {
		for _, c := range data.Repositories[repoName].Contributors {
			merged, seen := byLogin[c.Login]
			if !seen {
				m := &schema.MergedContributor{
					Login:              c.Login,
					ID:                 c.ID,
					AvatarURL:          c.AvatarURL,
					ProfileURL:         c.ProfileURL,
					Profile:            c.Profile,
					Region:             regionOf(c.Profile),
					TotalContributions: c.Contributions,
					Repositories:       []string{repoName},
					RepoCount:          1,
					LatestCommit:       annotateCommit(repoName, c.Activity),
				}
				byLogin[c.Login] = m
				order = append(order, c.Login)
				continue
			}

			merged.TotalContributions += c.Contributions
			merged.Repositories = append(merged.Repositories, repoName)
			merged.RepoCount++
			if candidate := annotateCommit(repoName, c.Activity); candidate != nil {
				// An absent stored commit compares as the zero time, so any
				// parseable candidate wins; ties keep the earlier sighting.
				stored := time.Time{}
				if merged.LatestCommit != nil {
					stored = parseCommitDate(merged.LatestCommit.Date)
				}
				if parseCommitDate(candidate.Date).After(stored) {
					merged.LatestCommit = candidate
				}
			}
		}
	}

	roster := make([]schema.MergedContributor, 0, len(order))
	for _, login := range order {
		roster = append(roster, *byLogin[login])
	}
	slices.SortStableFunc(roster, func(a, b schema.MergedContributor) int {
		return b.TotalContributions - a.TotalContributions
	})
	return roster
}

// regionOf derives the region from a contributor's profile location. Absent
// profiles resolve to RegionOther.
func regionOf(p *schema.ContributorProfile) schema.Region {
	if p == nil {
		return schema.RegionOther
	}
	return DetectRegion(p.Location)
}

// annotateCommit lifts a per-repository last-commit record into an
// AnnotatedCommit tagged with the repository it came from.
func annotateCommit(repoName string, a *schema.ContributorActivity) *schema.AnnotatedCommit {
	if a == nil || a.LastCommit == nil {
		return nil
	}
	c := a.LastCommit
	return &schema.AnnotatedCommit{
		Repo:    repoName,
		SHA:     c.SHA,
		Message: c.Message,
		Date:    c.Date,
		URL:     c.URL,
	}
}

// parseCommitDate parses a commit timestamp leniently. Unparseable dates
// degrade to the zero time so comparisons stay total and the merge never
// crashes on malformed input.
func parseCommitDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, schema.DateOnlyFormat} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
