// Package cursor defines text positions, ranges and the multi-cursor
// model. Positions address text as (line, char): Y is a 0-indexed line
// and X counts Unicode scalars from the line start, never bytes and
// never screen columns.
package cursor

import "fmt"

// Position is a line/char address in a buffer.
type Position struct {
	Y int // line, 0-indexed
	X int // char offset within the line
}

// Cmp returns -1, 0 or 1 comparing document order.
func (p Position) Cmp(other Position) int {
	switch {
	case p.Y < other.Y:
		return -1
	case p.Y > other.Y:
		return 1
	case p.X < other.X:
		return -1
	case p.X > other.X:
		return 1
	default:
		return 0
	}
}

// Before reports whether p precedes other in document order.
func (p Position) Before(other Position) bool { return p.Cmp(other) < 0 }

// After reports whether p follows other in document order.
func (p Position) After(other Position) bool { return p.Cmp(other) > 0 }

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Y, p.X)
}

// Min returns the earlier of two positions.
func Min(a, b Position) Position {
	if b.Before(a) {
		return b
	}
	return a
}

// Max returns the later of two positions.
func Max(a, b Position) Position {
	if a.Before(b) {
		return b
	}
	return a
}
