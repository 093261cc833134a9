// Package intervals answers how many closed-open intervals [Start, End) must
// be removed so that the rest do not overlap.
//
// What
//
//   - EraseOverlapIntervals sorts a copy of the input by End and greedily
//     keeps every interval that starts at or after the End of the last kept
//     one. The answer is the number of intervals not kept.
//   - Keep returns the kept intervals themselves.
//   - Intervals that only touch (a.End == b.Start) do not overlap.
//
// The caller's slice is never reordered.
//
// Complexity (n = number of intervals)
//
//   - Time:   O(n log n) for the sort, O(n) for the scan.
//   - Memory: O(n) for the sorted copy.
//
// Usage
//
//	in, err := intervals.FromPairs([][]int{{1, 2}, {2, 3}, {3, 4}, {1, 3}})
//	if err != nil {
//	    // ErrMalformedPair
//	}
//	n := intervals.EraseOverlapIntervals(in) // 1
//
// Errors
//
//   - ErrMalformedPair   if a pair passed to FromPairs does not hold exactly two bounds.
//   - ErrInvalidInterval if Validate finds Start > End.
package intervals
