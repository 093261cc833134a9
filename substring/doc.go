// Package substring finds the longest contiguous run of characters that
// contains no repeated character.
//
// What
//
//   - LengthOfLongestSubstring scans the input keeping the current run and a
//     running maximum. When an incoming character already appears in the run
//     at position p, the run restarts just after p, followed by the new
//     character. The maximum is recorded only at that moment and once more at
//     the end of input.
//   - LengthOfLongestSubstringLinear returns the same value using a map of
//     last positions instead of searching the run.
//   - Longest returns the run itself (first one of maximal length) together
//     with its rune offset, and accepts options for Unicode normalization and
//     case folding.
//
// Characters are Unicode code points: "héllo" has length 5 whatever its byte
// length is.
//
// Complexity (n = number of runes)
//
//   - LengthOfLongestSubstring: O(n·k) time where k ≤ n is the longest run,
//     O(k) memory.
//   - LengthOfLongestSubstringLinear: O(n) time, O(min(n, alphabet)) memory.
//
// Usage
//
//	n := substring.LengthOfLongestSubstring("pwwkew") // 3
//
//	res, err := substring.Longest("Straße STRASSE",
//	    substring.WithNormalization(norm.NFC),
//	    substring.WithFoldCase(),
//	)
//	if err != nil {
//	    // ErrOptionViolation
//	}
//	fmt.Println(res.Run, res.Start, res.Length)
//
// Errors
//
//   - ErrOptionViolation if an invalid Option is supplied (e.g. unknown norm.Form).
package substring
