package intervals

import (
	"cmp"
	"slices"
)

// EraseOverlapIntervals returns the minimum number of intervals to remove so
// that no two of the remaining ones overlap.
//
// Algorithm:
//  1. Sort a copy by End ascending.
//  2. prev = 0, kept = 1.
//  3. For i = 1..n-1: if sorted[prev].End <= sorted[i].Start, keep i
//     (prev = i, kept++).
//  4. Return n - kept.
//
// An empty input returns 0.
func EraseOverlapIntervals(in []Interval) int {
	if len(in) == 0 {
		return 0
	}

	return len(in) - len(keep(sortedByEnd(in)))
}

// Keep returns the intervals retained by EraseOverlapIntervals, ordered by
// End. They are pairwise non-overlapping and there is no larger such subset.
func Keep(in []Interval) []Interval {
	if len(in) == 0 {
		return nil
	}

	return keep(sortedByEnd(in))
}

// sortedByEnd returns a copy of in sorted by End.
func sortedByEnd(in []Interval) []Interval {
	sorted := slices.Clone(in)
	slices.SortFunc(sorted, func(a, b Interval) int {
		return cmp.Compare(a.End, b.End)
	})

	return sorted
}

// keep runs the greedy pass over a non-empty, End-sorted slice.
func keep(sorted []Interval) []Interval {
	kept := []Interval{sorted[0]}
	prev := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[prev].End <= sorted[i].Start {
			prev = i
			kept = append(kept, sorted[i])
		}
	}

	return kept
}
