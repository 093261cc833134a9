package intervals

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPair indicates a pair without exactly two bounds.
	ErrMalformedPair = errors.New("intervals: pair must hold exactly two bounds")

	// ErrInvalidInterval indicates an interval whose Start is after its End.
	ErrInvalidInterval = errors.New("intervals: start must not exceed end")
)

// Interval is the closed-open range [Start, End).
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether iv and o share at least one point.
// Touching intervals ([1,2) and [2,3)) do not overlap.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Start < o.End && o.Start < iv.End
}

// String renders iv as "[Start,End)".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.End)
}

// FromPairs converts [start, end] pairs into intervals.
// Returns ErrMalformedPair, wrapped with the offending index,
// if a pair does not hold exactly two values.
func FromPairs(pairs [][]int) ([]Interval, error) {
	out := make([]Interval, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: pair %d has %d values", ErrMalformedPair, i, len(p))
		}
		out[i] = Interval{Start: p[0], End: p[1]}
	}

	return out, nil
}

// Validate returns ErrInvalidInterval for the first interval with Start > End.
func Validate(in []Interval) error {
	for i, iv := range in {
		if iv.Start > iv.End {
			return fmt.Errorf("%w: interval %d is %v", ErrInvalidInterval, i, iv)
		}
	}

	return nil
}
