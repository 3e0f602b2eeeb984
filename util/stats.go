// Package util provides catalog parsing, aggregation and report rendering.
package util

import (
	"strconv"
)

// NotApplicable is the score sentinel for catalogs without countable units.
// It is distinct from 0%: a catalog that only holds obsolete entries has no
// completion percentage at all.
const NotApplicable = -1

// TsStats holds translation unit counts for a single catalog.
type TsStats struct {
	Translated int // Units with a finished translation
	Total      int // All countable units (finished + unfinished)
}

// Percentage returns the completion percentage for the stats.
func (v TsStats) Percentage() int {
	return Percentage(v.Translated, v.Total)
}

// Percentage returns floor(100*translated/total) as an integer in [0,100],
// or NotApplicable when total is zero. The value is truncated, not rounded,
// to match the numbers of the legacy lrelease-based status pages.
func Percentage(translated, total int) int {
	if total == 0 {
		return NotApplicable
	}
	return translated * 100 / total
}

// FormatScore renders a score as "NN%", or "n/a" for NotApplicable.
func FormatScore(score int) string {
	if score == NotApplicable {
		return "n/a"
	}
	return strconv.Itoa(score) + "%"
}
