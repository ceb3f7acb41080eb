package core

import (
	"testing"

	"github.com/gbb-community/showcase/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rosterInput(repos map[string][]schema.ContributorRecord) *schema.ContributorData {
	data := &schema.ContributorData{Repositories: make(map[string]schema.RepoContributorData)}
	for name, contributors := range repos {
		data.Repositories[name] = schema.RepoContributorData{Contributors: contributors}
	}
	return data
}

func withCommit(c schema.ContributorRecord, date string) schema.ContributorRecord {
	c.Activity = &schema.ContributorActivity{
		LastCommit: &schema.CommitRef{SHA: "abc", Date: date},
	}
	return c
}

// TestMergeContributors tests the cross-repository roster fold.
func TestMergeContributors(t *testing.T) {
	t.Run("contributor in multiple repos", func(t *testing.T) {
		data := rosterInput(map[string][]schema.ContributorRecord{
			"repo-a": {withCommit(schema.ContributorRecord{Login: "alice", Contributions: 5}, "2024-01-15T10:00:00Z")},
			"repo-b": {withCommit(schema.ContributorRecord{Login: "alice", Contributions: 3}, "2024-03-20T10:00:00Z")},
		})

		roster := MergeContributors(data)
		require.Len(t, roster, 1)

		alice := roster[0]
		assert.Equal(t, "alice", alice.Login)
		assert.Equal(t, 8, alice.TotalContributions)
		assert.Equal(t, 2, alice.RepoCount)
		assert.Equal(t, []string{"repo-a", "repo-b"}, alice.Repositories)
		require.NotNil(t, alice.LatestCommit)
		assert.Equal(t, "repo-b", alice.LatestCommit.Repo)
	})

	t.Run("total contributions conserved", func(t *testing.T) {
		data := rosterInput(map[string][]schema.ContributorRecord{
			"repo-a": {
				{Login: "alice", Contributions: 5},
				{Login: "bob", Contributions: 2},
			},
			"repo-b": {
				{Login: "alice", Contributions: 3},
				{Login: "carol", Contributions: 7},
			},
		})

		roster := MergeContributors(data)
		total := 0
		for _, m := range roster {
			total += m.TotalContributions
		}
		assert.Equal(t, 17, total)
	})

	t.Run("sorted descending by contributions", func(t *testing.T) {
		data := rosterInput(map[string][]schema.ContributorRecord{
			"repo-a": {
				{Login: "low", Contributions: 1},
				{Login: "high", Contributions: 50},
				{Login: "mid", Contributions: 10},
			},
		})

		roster := MergeContributors(data)
		require.Len(t, roster, 3)
		assert.Equal(t, "high", roster[0].Login)
		assert.Equal(t, "mid", roster[1].Login)
		assert.Equal(t, "low", roster[2].Login)
	})

	t.Run("stable tie-break on first appearance", func(t *testing.T) {
		data := rosterInput(map[string][]schema.ContributorRecord{
			"repo-a": {
				{Login: "first", Contributions: 5},
				{Login: "second", Contributions: 5},
			},
		})

		roster := MergeContributors(data)
		require.Len(t, roster, 2)
		assert.Equal(t, "first", roster[0].Login)
		assert.Equal(t, "second", roster[1].Login)
	})

	t.Run("region enrichment from profile", func(t *testing.T) {
		data := rosterInput(map[string][]schema.ContributorRecord{
			"repo-a": {
				{Login: "alice", Contributions: 1, Profile: &schema.ContributorProfile{Location: "Madrid"}},
				{Login: "bob", Contributions: 1},
			},
		})

		roster := MergeContributors(data)
		require.Len(t, roster, 2)
		byLogin := make(map[string]schema.MergedContributor)
		for _, m := range roster {
			byLogin[m.Login] = m
		}
		assert.Equal(t, schema.RegionEurope, byLogin["alice"].Region)
		assert.Equal(t, schema.RegionOther, byLogin["bob"].Region)
	})

	t.Run("empty and nil input", func(t *testing.T) {
		assert.Empty(t, MergeContributors(nil))
		assert.Empty(t, MergeContributors(&schema.ContributorData{}))
	})
}

// TestMergeContributorsLatestCommit tests latest-commit resolution across
// repositories, including malformed dates.
func TestMergeContributorsLatestCommit(t *testing.T) {
	t.Run("newer commit replaces older", func(t *testing.T) {
		data := rosterInput(map[string][]schema.ContributorRecord{
			"old": {withCommit(schema.ContributorRecord{Login: "alice", Contributions: 1}, "2023-06-01T00:00:00Z")},
			"new": {withCommit(schema.ContributorRecord{Login: "alice", Contributions: 1}, "2024-06-01T00:00:00Z")},
		})

		roster := MergeContributors(data)
		require.Len(t, roster, 1)
		require.NotNil(t, roster[0].LatestCommit)
		assert.Equal(t, "new", roster[0].LatestCommit.Repo)
	})

	t.Run("date-only layout accepted", func(t *testing.T) {
		data := rosterInput(map[string][]schema.ContributorRecord{
			"a": {withCommit(schema.ContributorRecord{Login: "alice", Contributions: 1}, "2024-01-01")},
			"b": {withCommit(schema.ContributorRecord{Login: "alice", Contributions: 1}, "2024-02-01")},
		})

		roster := MergeContributors(data)
		require.NotNil(t, roster[0].LatestCommit)
		assert.Equal(t, "b", roster[0].LatestCommit.Repo)
	})

	t.Run("malformed date never replaces a parseable one", func(t *testing.T) {
		data := rosterInput(map[string][]schema.ContributorRecord{
			"a": {withCommit(schema.ContributorRecord{Login: "alice", Contributions: 1}, "2024-01-01T00:00:00Z")},
			"b": {withCommit(schema.ContributorRecord{Login: "alice", Contributions: 1}, "not-a-date")},
		})

		roster := MergeContributors(data)
		require.NotNil(t, roster[0].LatestCommit)
		assert.Equal(t, "a", roster[0].LatestCommit.Repo)
	})

	t.Run("no activity anywhere", func(t *testing.T) {
		data := rosterInput(map[string][]schema.ContributorRecord{
			"a": {{Login: "alice", Contributions: 1}},
			"b": {{Login: "alice", Contributions: 2}},
		})

		roster := MergeContributors(data)
		require.Len(t, roster, 1)
		assert.Nil(t, roster[0].LatestCommit)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		data := rosterInput(map[string][]schema.ContributorRecord{
			"zeta":  {{Login: "alice", Contributions: 3}},
			"alpha": {{Login: "alice", Contributions: 3}},
			"mid":   {{Login: "alice", Contributions: 3}},
		})

		first := MergeContributors(data)
		for range 10 {
			again := MergeContributors(data)
			assert.Equal(t, first, again)
		}
		// Repositories are listed in sorted name order.
		assert.Equal(t, []string{"alpha", "mid", "zeta"}, first[0].Repositories)
	})
}
