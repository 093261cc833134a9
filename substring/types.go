package substring

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("substring: invalid option supplied")

// Option configures Longest via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Longest is invoked.
type Option func(*Options)

// Options holds the preprocessing applied to the input before scanning.
type Options struct {
	// Normalize enables Unicode normalization with Form.
	Normalize bool

	// Form is the normalization form used when Normalize is set.
	Form norm.Form

	// FoldCase compares characters case-insensitively.
	FoldCase bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options that scan the input as is:
// no normalization, case-sensitive.
func DefaultOptions() Options {
	return Options{Form: norm.NFC}
}

// WithNormalization normalizes the input to form before scanning, so that
// canonically equivalent spellings count as the same character.
// Valid forms are norm.NFC, norm.NFD, norm.NFKC and norm.NFKD.
func WithNormalization(form norm.Form) Option {
	return func(o *Options) {
		if form < norm.NFC || form > norm.NFKD {
			o.err = fmt.Errorf("%w: unknown normalization form %d", ErrOptionViolation, form)

			return
		}
		o.Normalize = true
		o.Form = form
	}
}

// WithFoldCase makes the scan case-insensitive ("aA" contains a repeat).
func WithFoldCase() Option {
	return func(o *Options) {
		o.FoldCase = true
	}
}

// Result describes the longest run found by Longest.
//   - Run:    the run itself, taken from the preprocessed input.
//   - Start:  rune offset of Run within the preprocessed input.
//   - Length: number of runes in Run.
type Result struct {
	Run    string
	Start  int
	Length int
}
