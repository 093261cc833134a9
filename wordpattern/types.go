package wordpattern

import "errors"

// Sentinel errors returned by Match.
var (
	// ErrLengthMismatch indicates the pattern and the sentence differ in length.
	ErrLengthMismatch = errors.New("wordpattern: pattern and word count differ")

	// ErrSymbolTaken indicates a new word met a symbol already owned by another word.
	ErrSymbolTaken = errors.New("wordpattern: symbol already mapped to another word")

	// ErrWordConflict indicates a known word met a different symbol.
	ErrWordConflict = errors.New("wordpattern: word already mapped to another symbol")
)

// Option configures Match via functional arguments.
type Option func(*Options)

// Options holds word comparison settings.
type Options struct {
	// FoldCase compares words case-insensitively.
	FoldCase bool
}

// DefaultOptions returns case-sensitive matching.
func DefaultOptions() Options {
	return Options{}
}

// WithFoldCase treats "Dog" and "dog" as the same word.
// Bijection keys are then the case-folded words.
func WithFoldCase() Option {
	return func(o *Options) {
		o.FoldCase = true
	}
}

// Bijection maps each word to its pattern symbol.
type Bijection map[string]rune

// Symbol returns the symbol paired with word.
func (b Bijection) Symbol(word string) (rune, bool) {
	r, ok := b[word]

	return r, ok
}

// Word returns the word paired with symbol.
func (b Bijection) Word(symbol rune) (string, bool) {
	for w, r := range b {
		if r == symbol {
			return w, true
		}
	}

	return "", false
}

// holds reports whether symbol is already a value of b.
func (b Bijection) holds(symbol rune) bool {
	_, ok := b.Word(symbol)

	return ok
}
