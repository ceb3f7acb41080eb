package core

import (
	"time"

	"github.com/gbb-community/showcase/schema"
)

// SweepContent runs the staleness sweep over published content pages. It is
// a fixed-threshold time-delta check over ContentEntry records and is kept
// separate from the catalog lifecycle engine, which serves a different
// metadata shape with a configurable cycle.
//
// Deprecated pages are skipped; they are already flagged by their status.
// A page with a missing or unparseable last_updated date has no recency
// anchor and is reported at critical severity with DaysStale = -1.
func SweepContent(entries []schema.ContentEntry, now time.Time) []schema.StaleFinding {
	findings := make([]schema.StaleFinding, 0)
	for _, e := range entries {
		if e.Status == schema.ContentDeprecated {
			continue
		}

		days := -1
		if e.LastUpdated != "" {
			if t, err := time.Parse(schema.DateOnlyFormat, e.LastUpdated); err == nil {
				days = DaysSince(t, now)
			}
		}

		severity, stale := staleSeverity(days)
		if !stale {
			continue
		}

		findings = append(findings, schema.StaleFinding{
			Path:        e.Path,
			Title:       e.Title,
			Owner:       e.Owner,
			Status:      e.Status,
			LastUpdated: e.LastUpdated,
			DaysStale:   days,
			Severity:    severity,
		})
	}
	return findings
}

// staleSeverity maps an age in days to a severity bucket. days < 0 means
// the update date is unknown, which is the worst case.
func staleSeverity(days int) (schema.StaleSeverity, bool) {
	switch {
	case days < 0:
		return schema.SeverityCritical, true
	case days > schema.ContentCriticalDays:
		return schema.SeverityCritical, true
	case days > schema.ContentHighDays:
		return schema.SeverityHigh, true
	case days > schema.ContentStaleDays:
		return schema.SeverityMedium, true
	default:
		return "", false
	}
}
