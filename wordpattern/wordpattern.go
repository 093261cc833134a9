package wordpattern

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// WordPattern reports whether s follows pattern: the runes of pattern and the
// white-space separated words of s pair up one-to-one, position by position.
//
//	WordPattern("abba", "dog cat cat dog")  == true
//	WordPattern("abba", "dog dog dog dog")  == false
func WordPattern(pattern, s string) bool {
	_, err := Match(pattern, s)

	return err == nil
}

// Match checks that s follows pattern and returns the established word →
// symbol pairing.
//
// Algorithm:
//  1. words = fields of s; fail if rune count of pattern != len(words).
//  2. For each position i with symbol p and word w:
//     - w unmapped and p not held by any word: map w → p.
//     - w unmapped (p is held elsewhere): ErrSymbolTaken.
//     - w mapped to a symbol other than p: ErrWordConflict.
//  3. Return the map.
//
// Errors wrap the sentinel with the failing position.
func Match(pattern, s string, opts ...Option) (Bijection, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.FoldCase {
		s = cases.Fold().String(s)
	}

	words := strings.FieldsFunc(s, isSeparator)
	if n := utf8.RuneCountInString(pattern); n != len(words) {
		return nil, fmt.Errorf("%w: %d symbols, %d words", ErrLengthMismatch, n, len(words))
	}

	bij := make(Bijection)
	i := 0
	for _, p := range pattern {
		w := words[i]
		got, mapped := bij[w]
		switch {
		case !mapped && !bij.holds(p):
			bij[w] = p
		case !mapped:
			return nil, fmt.Errorf("%w: position %d, word %q, symbol %q", ErrSymbolTaken, i, w, p)
		case got != p:
			return nil, fmt.Errorf("%w: position %d, word %q has %q, got %q", ErrWordConflict, i, w, got, p)
		}
		i++
	}

	return bij, nil
}

// isSeparator reports white space as well as the ASCII information
// separators U+001C..U+001F, which also delimit words.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}
