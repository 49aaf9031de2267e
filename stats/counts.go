// Package stats provides small data summarization utilities.
package stats

import (
	"cmp"
	"slices"
)

// UniqueWithCounts returns the distinct values of values in ascending order,
// paired index-for-index with how many times each occurs. Both slices are
// empty for empty input.
func UniqueWithCounts[T cmp.Ordered](values []T) ([]T, []int) {
	unique := make([]T, 0)
	counts := make([]int, 0)
	if len(values) == 0 {
		return unique, counts
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	for _, v := range sorted {
		if n := len(unique); n > 0 && unique[n-1] == v {
			counts[n-1]++
			continue
		}
		unique = append(unique, v)
		counts = append(counts, 1)
	}
	return unique, counts
}
