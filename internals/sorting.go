package internals

import (
	"math"
	"sort"
)

// Ranked views are stable sorts on one derived metric. NaN metrics (a user or
// group with nothing to measure) always sort last, for both directions.

func sortDescending[T any](items []T, metric func(T) float64) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := metric(items[i]), metric(items[j])
		if math.IsNaN(a) {
			return false
		}
		if math.IsNaN(b) {
			return true
		}
		return a > b
	})
}

func sortAscending[T any](items []T, metric func(T) float64) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := metric(items[i]), metric(items[j])
		if math.IsNaN(a) {
			return false
		}
		if math.IsNaN(b) {
			return true
		}
		return a < b
	})
}
