// Package wordpattern checks whether a sentence follows a pattern of symbols,
// e.g. "abba" against "dog cat cat dog".
//
// What
//
//   - The sentence is split into words on Unicode white space and the
//     information separators U+001C..U+001F; the pattern is read rune by rune.
//   - The sentence follows the pattern when symbols and distinct words pair
//     up one-to-one and substituting every symbol with its word reproduces
//     the sentence.
//   - A single word → symbol map is kept. A new word may only claim a symbol
//     not yet held by another word, which rules out two words sharing a
//     symbol; a known word must see the same symbol again.
//
// Complexity (n = number of words, k = distinct symbols)
//
//   - Time:   O(n·k) (symbol ownership is looked up among the map values).
//   - Memory: O(k).
//
// Usage
//
//	ok := wordpattern.WordPattern("abba", "dog cat cat dog") // true
//
//	bij, err := wordpattern.Match("abba", "Dog cat CAT dog", wordpattern.WithFoldCase())
//	if err != nil {
//	    // ErrLengthMismatch, ErrSymbolTaken or ErrWordConflict
//	}
//	w, _ := bij.Word('a') // "dog"
//
// Errors
//
//   - ErrLengthMismatch   if the pattern and the sentence differ in length.
//   - ErrSymbolTaken      if a new word meets a symbol owned by another word.
//   - ErrWordConflict     if a known word meets a different symbol.
package wordpattern
