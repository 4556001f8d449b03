package search

import (
	"regexp"
	"strconv"
	"strings"
)

var firstIntRe = regexp.MustCompile(`\d+`)

// firstInt extracts the leading integer from a range-encoded string like
// "6000-8000", "< 5000" or "100+".
func firstInt(s string) (int, bool) {
	m := firstIntRe.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MatchesRange compares a stored range-encoded value against a filter
// expression: "a-b" is inclusive on both ends, "< n" is strictly less,
// "n+" is greater-or-equal. Anything that fails to parse passes vacuously;
// availability beats strictness for this data.
func MatchesRange(stored, filter string) bool {
	value, ok := firstInt(stored)
	if !ok {
		return true
	}

	filter = strings.TrimSpace(filter)
	if strings.Contains(filter, "-") {
		parts := strings.SplitN(filter, "-", 2)
		min, okMin := firstInt(parts[0])
		max, okMax := firstInt(parts[1])
		if !okMin || !okMax {
			return true
		}
		return value >= min && value <= max
	}
	if strings.HasPrefix(filter, "<") {
		bound, ok := firstInt(filter)
		if !ok {
			return true
		}
		return value < bound
	}
	if strings.Contains(filter, "+") {
		bound, ok := firstInt(filter)
		if !ok {
			return true
		}
		return value >= bound
	}
	return true
}
