package cursor

import "fmt"

// Range is a half-open span of text: Front is included, Back is not.
// A well-formed Range has Front <= Back.
type Range struct {
	Front Position
	Back  Position
}

// NewRange builds a well-formed range from two positions in either order.
func NewRange(a, b Position) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Front: a, Back: b}
}

// IsEmpty reports whether the range spans no text.
func (r Range) IsEmpty() bool { return r.Front == r.Back }

// Contains reports whether p falls inside the half-open span.
func (r Range) Contains(p Position) bool {
	return !p.Before(r.Front) && p.Before(r.Back)
}

// Overlaps reports whether two ranges share at least one position.
// Empty ranges overlap nothing.
func (r Range) Overlaps(other Range) bool {
	return r.Front.Before(other.Back) && other.Front.Before(r.Back)
}

// Touches reports whether the ranges overlap or abut end to start.
func (r Range) Touches(other Range) bool {
	return !r.Back.Before(other.Front) && !other.Back.Before(r.Front)
}

// Union returns the smallest range covering both.
func (r Range) Union(other Range) Range {
	return Range{Front: Min(r.Front, other.Front), Back: Max(r.Back, other.Back)}
}

func (r Range) String() string {
	return fmt.Sprintf("[%v..%v)", r.Front, r.Back)
}
