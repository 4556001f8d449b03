package search

import "testing"

func TestMatchesRangeBounds(t *testing.T) {
	cases := []struct {
		stored string
		filter string
		want   bool
	}{
		{"8000", "5000-8000", true}, // inclusive upper bound
		{"8001", "5000-8000", false},
		{"5000", "5000-8000", true}, // inclusive lower bound
		{"4999", "5000-8000", false},
		{"6000-8000", "5000-8000", true}, // first integer of stored range
		{"4999", "< 5000", true},
		{"5000", "< 5000", false}, // strict
		{"100", "100+", true},
		{"99", "100+", false},
		{"150+", "100+", true},
	}
	for _, tc := range cases {
		if got := MatchesRange(tc.stored, tc.filter); got != tc.want {
			t.Errorf("MatchesRange(%q, %q) = %v, want %v", tc.stored, tc.filter, got, tc.want)
		}
	}
}

// Unparseable values never exclude a listing.
func TestMatchesRangeVacuous(t *testing.T) {
	cases := []struct {
		stored string
		filter string
	}{
		{"n/a", "5000-8000"},
		{"", "100+"},
		{"5000", "contact us"},
		{"5000", ""},
		{"5000", "low-high"},
	}
	for _, tc := range cases {
		if !MatchesRange(tc.stored, tc.filter) {
			t.Errorf("MatchesRange(%q, %q) should pass vacuously", tc.stored, tc.filter)
		}
	}
}
