// Package lvlkata is a small collection of self-contained puzzle solutions
// over strings and intervals. Every function is pure: it reads its arguments,
// returns a value and shares nothing, so calls may run concurrently.
//
// Packages:
//
//	substring/   — longest run of characters without a repeat
//	intervals/   — fewest closed-open intervals to drop so the rest are disjoint
//	wordpattern/ — does a sentence follow a symbol pattern one-to-one
//
// Quick example:
//
//	substring.LengthOfLongestSubstring("pwwkew")                          // 3
//	intervals.EraseOverlapIntervals([]intervals.Interval{{1, 2}, {1, 3}}) // 1
//	wordpattern.WordPattern("abba", "dog cat cat dog")                    // true
//
//	go get github.com/katalvlaran/lvlkata
package lvlkata
