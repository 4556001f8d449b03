package ratings

import (
	"strings"
	"testing"

	"nivaas/models"
)

func TestRecomputeBreakdownAndOverall(t *testing.T) {
	reviews := []models.Review{
		{User: "a", Rating: 5},
		{User: "b", Rating: 5},
		{User: "c", Rating: 4},
		{User: "d", Rating: 3},
	}
	agg := Recompute(reviews)

	if agg.TotalRatings != 4 {
		t.Fatalf("totalRatings = %d, want 4", agg.TotalRatings)
	}
	want := map[string]int{"3": 1, "4": 1, "5": 2}
	for star, n := range want {
		if agg.Breakdown[star] != n {
			t.Fatalf("breakdown[%s] = %d, want %d", star, agg.Breakdown[star], n)
		}
	}
	if agg.Overall != 4.3 {
		t.Fatalf("overall = %v, want 4.3", agg.Overall)
	}
}

func TestRecomputeEmpty(t *testing.T) {
	agg := Recompute(nil)
	if agg.Overall != 0 || agg.TotalRatings != 0 || len(agg.Breakdown) != 0 {
		t.Fatalf("zero state violated: %+v", agg)
	}
	if agg.WhatsGood == nil || agg.WhatsBad == nil {
		t.Fatal("highlight lists must be empty, not nil")
	}
}

// totalRatings grows by exactly one per submission.
func TestRecomputeMonotonic(t *testing.T) {
	var reviews []models.Review
	for i := 1; i <= 10; i++ {
		reviews = append([]models.Review{{User: "u", Rating: 1 + i%5}}, reviews...)
		if agg := Recompute(reviews); agg.TotalRatings != i {
			t.Fatalf("after %d submissions totalRatings = %d", i, agg.TotalRatings)
		}
	}
}

func TestHighlightsPositive(t *testing.T) {
	agg := models.ZeroRatings()
	applyHighlights(&agg, models.Review{User: "Alice", Rating: 5, Comment: "great spacious place"})
	if len(agg.WhatsGood) != 1 || agg.WhatsGood[0] != "great spacious place" {
		t.Fatalf("whatsGood = %v", agg.WhatsGood)
	}
	if len(agg.WhatsBad) != 0 {
		t.Fatalf("whatsBad = %v", agg.WhatsBad)
	}
}

func TestHighlightsNegative(t *testing.T) {
	agg := models.ZeroRatings()
	applyHighlights(&agg, models.Review{User: "Bob", Rating: 1, Comment: "noisy and dirty"})
	if len(agg.WhatsBad) != 1 {
		t.Fatalf("whatsBad = %v", agg.WhatsBad)
	}
}

// A positive comment on a low rating (or vice versa) adds nothing.
func TestHighlightsRatingGate(t *testing.T) {
	agg := models.ZeroRatings()
	applyHighlights(&agg, models.Review{User: "c", Rating: 2, Comment: "great location though"})
	if len(agg.WhatsGood) != 0 {
		t.Fatalf("whatsGood = %v", agg.WhatsGood)
	}
}

func TestHighlightsTruncationAndDedup(t *testing.T) {
	long := strings.Repeat("great ", 20)
	agg := models.ZeroRatings()
	applyHighlights(&agg, models.Review{User: "a", Rating: 5, Comment: long})
	applyHighlights(&agg, models.Review{User: "b", Rating: 4, Comment: long})

	if len(agg.WhatsGood) != 1 {
		t.Fatalf("duplicate excerpt not collapsed: %v", agg.WhatsGood)
	}
	if len(agg.WhatsGood[0]) != 50 {
		t.Fatalf("excerpt length = %d, want 50", len(agg.WhatsGood[0]))
	}
}

func TestPropertyLockReuse(t *testing.T) {
	l := newPropertyLocks()
	if l.get("abc") != l.get("abc") {
		t.Fatal("same id must map to the same lock")
	}
	if l.get("abc") == l.get("def") {
		t.Fatal("different ids must not share a lock")
	}
}

func TestCarryHighlightsLegacyNil(t *testing.T) {
	agg := models.ZeroRatings()
	carryHighlights(&agg, &models.Ratings{Overall: 4.2})

	if agg.WhatsGood == nil || len(agg.WhatsGood) != 0 {
		t.Fatalf("whatsGood = %#v, want empty non-nil", agg.WhatsGood)
	}
	if agg.WhatsBad == nil || len(agg.WhatsBad) != 0 {
		t.Fatalf("whatsBad = %#v, want empty non-nil", agg.WhatsBad)
	}
}

func TestCarryHighlightsPreservesStored(t *testing.T) {
	agg := models.ZeroRatings()
	carryHighlights(&agg, &models.Ratings{
		WhatsGood: []string{"spacious cabins"},
		WhatsBad:  []string{"noisy street"},
	})

	if len(agg.WhatsGood) != 1 || agg.WhatsGood[0] != "spacious cabins" {
		t.Fatalf("whatsGood = %v", agg.WhatsGood)
	}
	if len(agg.WhatsBad) != 1 || agg.WhatsBad[0] != "noisy street" {
		t.Fatalf("whatsBad = %v", agg.WhatsBad)
	}

	carryHighlights(&agg, nil)
	if len(agg.WhatsGood) != 1 {
		t.Fatalf("nil prev must not clear highlights: %v", agg.WhatsGood)
	}
}
