package substring

import (
	"slices"

	"golang.org/x/text/cases"
)

// LengthOfLongestSubstring returns the length, in runes, of the longest
// contiguous run of s that contains no repeated character.
//
// Algorithm:
//  1. Keep the current run and a running maximum (initially 0).
//  2. For each rune c of s, search the run for c.
//     - absent: append c to the run.
//     - present at p: raise the maximum to len(run) if larger, then
//     restart the run from p+1 and append c.
//  3. Return max(maximum, len(run)).
//
// The run is never longer than any duplicate-free stretch ending at the
// current rune, so checking the maximum only on restarts and at the end is
// enough.
//
// Complexity: O(n·k) time, k = longest run.
func LengthOfLongestSubstring(s string) int {
	_, n := scan([]rune(s))

	return n
}

// LengthOfLongestSubstringLinear returns the same value as
// LengthOfLongestSubstring using the last seen position of every rune,
// so each rune is inspected once.
//
// Complexity: O(n) time, O(min(n, alphabet)) memory.
func LengthOfLongestSubstringLinear(s string) int {
	last := make(map[rune]int)
	lo, best, i := 0, 0, 0
	for _, c := range s {
		if p, ok := last[c]; ok && p >= lo {
			lo = p + 1
		}
		last[c] = i
		best = max(best, i-lo+1)
		i++
	}

	return best
}

// Longest returns the first longest duplicate-free run of s after applying
// opts. Result offsets refer to the preprocessed input.
//
// Errors:
//   - ErrOptionViolation if any Option is invalid.
func Longest(s string, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	rs := []rune(o.prepare(s))
	start, n := scan(rs)

	return Result{Run: string(rs[start : start+n]), Start: start, Length: n}, nil
}

// prepare applies case folding, then normalization.
func (o *Options) prepare(s string) string {
	if o.FoldCase {
		s = cases.Fold().String(s)
	}
	if o.Normalize {
		s = o.Form.String(s)
	}

	return s
}

// scan runs the restart-on-duplicate pass over rs and reports the offset and
// length of the first longest run. The current run is the window rs[lo:i].
func scan(rs []rune) (start, length int) {
	lo := 0
	for i, c := range rs {
		p := slices.Index(rs[lo:i], c)
		if p < 0 {
			continue
		}
		if i-lo > length {
			start, length = lo, i-lo
		}
		lo += p + 1
	}
	if n := len(rs) - lo; n > length {
		start, length = lo, n
	}

	return start, length
}
