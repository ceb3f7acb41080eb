package core

import (
	"testing"
	"time"

	"github.com/gbb-community/showcase/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sweepNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func entryUpdatedDaysAgo(title string, days int) schema.ContentEntry {
	return schema.ContentEntry{
		Path:        title + ".md",
		Title:       title,
		Owner:       "docs-team",
		Status:      schema.ContentReady,
		LastUpdated: sweepNow.AddDate(0, 0, -days).Format(schema.DateOnlyFormat),
	}
}

// TestSweepContent tests the staleness thresholds.
func TestSweepContent(t *testing.T) {
	t.Run("severity buckets", func(t *testing.T) {
		entries := []schema.ContentEntry{
			entryUpdatedDaysAgo("fresh", 30),
			entryUpdatedDaysAgo("medium", 100),
			entryUpdatedDaysAgo("high", 150),
			entryUpdatedDaysAgo("critical", 200),
		}

		findings := SweepContent(entries, sweepNow)
		require.Len(t, findings, 3)

		bySeverity := make(map[string]schema.StaleSeverity)
		for _, f := range findings {
			bySeverity[f.Title] = f.Severity
		}
		assert.Equal(t, schema.SeverityMedium, bySeverity["medium"])
		assert.Equal(t, schema.SeverityHigh, bySeverity["high"])
		assert.Equal(t, schema.SeverityCritical, bySeverity["critical"])
	})

	t.Run("thresholds are strict", func(t *testing.T) {
		entries := []schema.ContentEntry{
			entryUpdatedDaysAgo("at-90", 90),
			entryUpdatedDaysAgo("at-91", 91),
		}

		findings := SweepContent(entries, sweepNow)
		require.Len(t, findings, 1)
		assert.Equal(t, "at-91", findings[0].Title)
		assert.Equal(t, 91, findings[0].DaysStale)
	})

	t.Run("deprecated pages skipped", func(t *testing.T) {
		stale := entryUpdatedDaysAgo("ancient", 400)
		stale.Status = schema.ContentDeprecated
		findings := SweepContent([]schema.ContentEntry{stale}, sweepNow)
		assert.Empty(t, findings)
	})

	t.Run("missing date is critical", func(t *testing.T) {
		entries := []schema.ContentEntry{
			{Path: "a.md", Title: "no-date", Status: schema.ContentReady},
		}
		findings := SweepContent(entries, sweepNow)
		require.Len(t, findings, 1)
		assert.Equal(t, schema.SeverityCritical, findings[0].Severity)
		assert.Equal(t, -1, findings[0].DaysStale)
	})

	t.Run("unparseable date is critical", func(t *testing.T) {
		entries := []schema.ContentEntry{
			{Path: "a.md", Title: "bad-date", Status: schema.ContentWIP, LastUpdated: "last tuesday"},
		}
		findings := SweepContent(entries, sweepNow)
		require.Len(t, findings, 1)
		assert.Equal(t, schema.SeverityCritical, findings[0].Severity)
		assert.Equal(t, -1, findings[0].DaysStale)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, SweepContent(nil, sweepNow))
	})
}
