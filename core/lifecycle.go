package core

import (
	"fmt"
	"time"

	"github.com/gbb-community/showcase/schema"
)

// CatalogState derives the lifecycle state for one catalog entry. It is a
// pure function of the metadata, the repository's last-push timestamp (the
// fallback review date) and the evaluation time; the result is recomputed
// on every read and never stored as ground truth.
//
// Precedence: absent or disabled metadata is not-in-catalog; a deprecated
// maturity wins over staleness regardless of review recency; otherwise the
// entry is needs-review when strictly past its review cycle and published
// on or before the boundary day.
func CatalogState(meta *schema.CatalogMetadata, pushedAt time.Time, now time.Time) schema.CatalogState {
	if meta == nil || !meta.Enabled {
		return schema.StateNotInCatalog
	}
	if meta.Maturity == schema.MaturityDeprecated {
		return schema.StateDeprecated
	}
	if isStale(meta, pushedAt, now) {
		return schema.StateNeedsReview
	}
	return schema.StatePublished
}

// NeedsReview reports whether the staleness reminder should fire for an
// entry. Only published-track entries can need review; not-in-catalog and
// deprecated entries never do.
func NeedsReview(meta *schema.CatalogMetadata, pushedAt time.Time, now time.Time) bool {
	return CatalogState(meta, pushedAt, now) == schema.StateNeedsReview
}

// ReviewCycleDays returns the entry's review cycle, applying the default
// when none is declared.
func ReviewCycleDays(meta *schema.CatalogMetadata) int {
	if meta == nil || meta.ReviewCycleDays <= 0 {
		return schema.DefaultReviewCycleDays
	}
	return meta.ReviewCycleDays
}

// LastReviewedAt resolves the effective review date: the declared
// last_reviewed when parseable, otherwise the repository's last-push
// timestamp. The second return reports whether any usable date was found.
func LastReviewedAt(meta *schema.CatalogMetadata, pushedAt time.Time) (time.Time, bool) {
	if meta != nil && meta.LastReviewed != "" {
		if t, err := time.Parse(schema.DateOnlyFormat, meta.LastReviewed); err == nil {
			return t, true
		}
	}
	if !pushedAt.IsZero() {
		return pushedAt, true
	}
	return time.Time{}, false
}

// DaysSince computes floor((now - then) / 1 day).
func DaysSince(then, now time.Time) int {
	return int(now.Sub(then).Hours() / 24)
}

// isStale reports whether the entry is strictly past its review cycle. The
// boundary day itself is not stale. An entry with no resolvable review date
// at all is treated as stale; there is nothing to anchor recency on.
func isStale(meta *schema.CatalogMetadata, pushedAt time.Time, now time.Time) bool {
	reviewed, ok := LastReviewedAt(meta, pushedAt)
	if !ok {
		return true
	}
	return DaysSince(reviewed, now) > ReviewCycleDays(meta)
}

// EvaluateStates derives the lifecycle state and reminder flag for each
// repository in input order.
func EvaluateStates(repos []schema.Repository, now time.Time) []schema.RepoState {
	out := make([]schema.RepoState, 0, len(repos))
	for i := range repos {
		repo := &repos[i]
		state := CatalogState(repo.Catalog, repo.PushedAt, now)

		days := -1
		cycle := ReviewCycleDays(repo.Catalog)
		var maturity schema.Maturity
		if repo.Catalog != nil {
			maturity = repo.Catalog.Maturity
			if reviewed, ok := LastReviewedAt(repo.Catalog, repo.PushedAt); ok {
				days = DaysSince(reviewed, now)
			}
		}

		out = append(out, schema.RepoState{
			Repo:        repo.Name,
			State:       state,
			NeedsReview: state == schema.StateNeedsReview,
			Maturity:    maturity,
			DaysSince:   days,
			CycleDays:   cycle,
		})
	}
	return out
}

// ValidateCatalogDocument validates a raw parsed .gbbcatalog.yml document
// and returns every violated rule, not just the first. Callers need the
// full list to fix metadata in one pass. An empty result means the document
// is valid. The raw map form is validated (rather than a typed struct) so
// type errors like a non-boolean enabled field are reportable instead of
// being swallowed by decoding.
func ValidateCatalogDocument(doc map[string]any) []string {
	var errs []string

	if v, ok := doc["schema_version"]; !ok {
		errs = append(errs, fmt.Sprintf("schema_version is required and must equal %d", schema.SupportedSchemaVersion))
	} else if n, ok := asInt(v); !ok || n != schema.SupportedSchemaVersion {
		errs = append(errs, fmt.Sprintf("schema_version must equal %d (got %v)", schema.SupportedSchemaVersion, v))
	}

	catalog, ok := asMap(doc["catalog"])
	if !ok {
		errs = append(errs, "catalog block is required")
		return errs
	}

	if v, ok := catalog["enabled"]; !ok {
		errs = append(errs, "catalog.enabled is required and must be a boolean")
	} else if _, ok := v.(bool); !ok {
		errs = append(errs, fmt.Sprintf("catalog.enabled must be a boolean (got %v)", v))
	}

	for _, field := range []string{"owner", "display_name", "description"} {
		if s, ok := catalog[field].(string); !ok || s == "" {
			errs = append(errs, fmt.Sprintf("catalog.%s must be a non-empty string", field))
		}
	}

	if s, ok := catalog["maturity"].(string); !ok {
		errs = append(errs, "catalog.maturity must be one of incubating, production, deprecated")
	} else if _, valid := schema.ValidMaturities[schema.Maturity(s)]; !valid {
		errs = append(errs, fmt.Sprintf("catalog.maturity must be one of incubating, production, deprecated (got %q)", s))
	}

	if v, ok := catalog["last_reviewed"]; ok && v != nil {
		s, isStr := v.(string)
		if !isStr {
			errs = append(errs, fmt.Sprintf("catalog.last_reviewed must be a YYYY-MM-DD date string (got %v)", v))
		} else if _, err := time.Parse(schema.DateOnlyFormat, s); err != nil {
			errs = append(errs, fmt.Sprintf("catalog.last_reviewed must be a valid YYYY-MM-DD date (got %q)", s))
		}
	}

	if v, ok := catalog["review_cycle_days"]; ok && v != nil {
		if n, isNum := asInt(v); !isNum || n <= 0 {
			errs = append(errs, fmt.Sprintf("catalog.review_cycle_days must be a positive number (got %v)", v))
		}
	}

	return errs
}

// asInt coerces the numeric types JSON and YAML decoders produce.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// asMap coerces the map types JSON and YAML decoders produce.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}
