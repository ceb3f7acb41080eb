package core

import (
	"testing"
	"time"

	"github.com/gbb-community/showcase/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lifecycleNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func enabledMeta(lastReviewed string, cycleDays int) *schema.CatalogMetadata {
	return &schema.CatalogMetadata{
		Enabled:         true,
		Owner:           "team",
		DisplayName:     "Demo",
		Description:     "A demo",
		Maturity:        schema.MaturityProduction,
		LastReviewed:    lastReviewed,
		ReviewCycleDays: cycleDays,
	}
}

// TestCatalogState tests the lifecycle state machine.
func TestCatalogState(t *testing.T) {
	tests := []struct {
		name     string
		meta     *schema.CatalogMetadata
		pushedAt time.Time
		want     schema.CatalogState
	}{
		{"nil metadata", nil, lifecycleNow, schema.StateNotInCatalog},
		{"disabled", &schema.CatalogMetadata{Enabled: false}, lifecycleNow, schema.StateNotInCatalog},
		{
			"deprecated wins over recency",
			&schema.CatalogMetadata{Enabled: true, Maturity: schema.MaturityDeprecated, LastReviewed: "2024-05-30"},
			lifecycleNow,
			schema.StateDeprecated,
		},
		{"recently reviewed", enabledMeta("2024-05-01", 180), lifecycleNow, schema.StatePublished},
		{"past review cycle", enabledMeta("2023-01-01", 180), lifecycleNow, schema.StateNeedsReview},
		{"short custom cycle", enabledMeta("2024-04-01", 30), lifecycleNow, schema.StateNeedsReview},
		{
			"no dates at all",
			enabledMeta("", 180),
			time.Time{},
			schema.StateNeedsReview,
		},
		{
			"pushed-at fallback keeps fresh entry published",
			enabledMeta("", 180),
			lifecycleNow.AddDate(0, -1, 0),
			schema.StatePublished,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CatalogState(tc.meta, tc.pushedAt, lifecycleNow))
		})
	}
}

// TestCatalogStateBoundary tests the exact review-cycle boundary: the
// boundary day itself is published, one day past is needs-review.
func TestCatalogStateBoundary(t *testing.T) {
	cycle := 180

	t.Run("exactly at boundary", func(t *testing.T) {
		reviewed := lifecycleNow.AddDate(0, 0, -cycle).Format(schema.DateOnlyFormat)
		meta := enabledMeta(reviewed, cycle)
		assert.Equal(t, schema.StatePublished, CatalogState(meta, time.Time{}, lifecycleNow))
		assert.False(t, NeedsReview(meta, time.Time{}, lifecycleNow))
	})

	t.Run("one day past boundary", func(t *testing.T) {
		reviewed := lifecycleNow.AddDate(0, 0, -(cycle + 1)).Format(schema.DateOnlyFormat)
		meta := enabledMeta(reviewed, cycle)
		assert.Equal(t, schema.StateNeedsReview, CatalogState(meta, time.Time{}, lifecycleNow))
		assert.True(t, NeedsReview(meta, time.Time{}, lifecycleNow))
	})
}

// TestReviewCycleDays tests default application.
func TestReviewCycleDays(t *testing.T) {
	assert.Equal(t, schema.DefaultReviewCycleDays, ReviewCycleDays(nil))
	assert.Equal(t, schema.DefaultReviewCycleDays, ReviewCycleDays(&schema.CatalogMetadata{}))
	assert.Equal(t, schema.DefaultReviewCycleDays, ReviewCycleDays(&schema.CatalogMetadata{ReviewCycleDays: -5}))
	assert.Equal(t, 90, ReviewCycleDays(&schema.CatalogMetadata{ReviewCycleDays: 90}))
}

// TestLastReviewedAt tests review-date resolution and fallback.
func TestLastReviewedAt(t *testing.T) {
	pushed := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("declared date wins", func(t *testing.T) {
		got, ok := LastReviewedAt(&schema.CatalogMetadata{LastReviewed: "2024-05-01"}, pushed)
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("unparseable date falls back to pushed-at", func(t *testing.T) {
		got, ok := LastReviewedAt(&schema.CatalogMetadata{LastReviewed: "soon"}, pushed)
		require.True(t, ok)
		assert.Equal(t, pushed, got)
	})

	t.Run("no usable date", func(t *testing.T) {
		_, ok := LastReviewedAt(nil, time.Time{})
		assert.False(t, ok)
	})
}

// TestDaysSince tests the floor semantics of day arithmetic.
func TestDaysSince(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysSince(base, base.Add(23*time.Hour)))
	assert.Equal(t, 1, DaysSince(base, base.Add(24*time.Hour)))
	assert.Equal(t, 1, DaysSince(base, base.Add(47*time.Hour)))
	assert.Equal(t, 30, DaysSince(base, base.AddDate(0, 0, 30)))
}

// TestEvaluateStates tests the batch derivation used by the state command.
func TestEvaluateStates(t *testing.T) {
	repos := []schema.Repository{
		{Name: "published", Catalog: enabledMeta("2024-05-01", 180)},
		{Name: "stale", Catalog: enabledMeta("2023-01-01", 180)},
		{Name: "absent"},
	}

	states := EvaluateStates(repos, lifecycleNow)
	require.Len(t, states, 3)

	assert.Equal(t, "published", states[0].Repo)
	assert.Equal(t, schema.StatePublished, states[0].State)
	assert.False(t, states[0].NeedsReview)

	assert.Equal(t, schema.StateNeedsReview, states[1].State)
	assert.True(t, states[1].NeedsReview)
	assert.Greater(t, states[1].DaysSince, 180)

	assert.Equal(t, schema.StateNotInCatalog, states[2].State)
	assert.Equal(t, -1, states[2].DaysSince)
	assert.Equal(t, schema.DefaultReviewCycleDays, states[2].CycleDays)
}

// TestValidateCatalogDocument tests the exhaustive validator.
func TestValidateCatalogDocument(t *testing.T) {
	valid := func() map[string]any {
		return map[string]any{
			"schema_version": 1,
			"catalog": map[string]any{
				"enabled":           true,
				"owner":             "team-a",
				"display_name":      "Demo",
				"description":       "A demo repo",
				"maturity":          "production",
				"last_reviewed":     "2024-05-01",
				"review_cycle_days": 90,
			},
		}
	}

	t.Run("valid document", func(t *testing.T) {
		assert.Empty(t, ValidateCatalogDocument(valid()))
	})

	t.Run("optional fields may be absent", func(t *testing.T) {
		doc := valid()
		catalog := doc["catalog"].(map[string]any)
		delete(catalog, "last_reviewed")
		delete(catalog, "review_cycle_days")
		assert.Empty(t, ValidateCatalogDocument(doc))
	})

	t.Run("all violations reported at once", func(t *testing.T) {
		doc := valid()
		catalog := doc["catalog"].(map[string]any)
		catalog["enabled"] = "yes"        // not a boolean
		catalog["maturity"] = "finished"  // not an enum value
		catalog["last_reviewed"] = "soon" // not a date
		errs := ValidateCatalogDocument(doc)
		assert.Len(t, errs, 3)
	})

	t.Run("missing identity fields and wrong version", func(t *testing.T) {
		doc := valid()
		doc["schema_version"] = 2
		catalog := doc["catalog"].(map[string]any)
		delete(catalog, "owner")
		delete(catalog, "display_name")
		errs := ValidateCatalogDocument(doc)
		require.Len(t, errs, 3)
		assert.Contains(t, errs[0], "schema_version")
		assert.Contains(t, errs[1], "catalog.owner")
		assert.Contains(t, errs[2], "catalog.display_name")
	})

	t.Run("missing schema_version", func(t *testing.T) {
		doc := valid()
		delete(doc, "schema_version")
		errs := ValidateCatalogDocument(doc)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "schema_version")
	})

	t.Run("wrong schema_version", func(t *testing.T) {
		doc := valid()
		doc["schema_version"] = 2
		assert.Len(t, ValidateCatalogDocument(doc), 1)
	})

	t.Run("json decoder float version accepted", func(t *testing.T) {
		doc := valid()
		doc["schema_version"] = float64(1)
		assert.Empty(t, ValidateCatalogDocument(doc))
	})

	t.Run("missing catalog block short-circuits", func(t *testing.T) {
		errs := ValidateCatalogDocument(map[string]any{"schema_version": 1})
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "catalog block")
	})

	t.Run("empty required strings", func(t *testing.T) {
		doc := valid()
		catalog := doc["catalog"].(map[string]any)
		catalog["owner"] = ""
		delete(catalog, "display_name")
		errs := ValidateCatalogDocument(doc)
		assert.Len(t, errs, 2)
	})

	t.Run("non-positive review cycle", func(t *testing.T) {
		doc := valid()
		doc["catalog"].(map[string]any)["review_cycle_days"] = 0
		assert.Len(t, ValidateCatalogDocument(doc), 1)
	})

	t.Run("yaml map form accepted", func(t *testing.T) {
		doc := valid()
		inner := doc["catalog"].(map[string]any)
		anyKeyed := make(map[any]any, len(inner))
		for k, v := range inner {
			anyKeyed[k] = v
		}
		doc["catalog"] = anyKeyed
		assert.Empty(t, ValidateCatalogDocument(doc))
	})
}
