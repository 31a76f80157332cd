package cursor

import "sort"

// Set holds one or more cursors and maintains the multi-cursor
// invariants: cursors are ordered by the start of their range, ranges
// never overlap, and cursors that overlap or touch are merged into one.
// Exactly one cursor is the main cursor; merging preserves which.
type Set struct {
	cursors []Cursor
	main    int
}

// NewSet returns a set containing a single main cursor.
func NewSet(c Cursor) Set {
	return Set{cursors: []Cursor{c}}
}

// NewSetAt returns a set with a single caret at p.
func NewSetAt(p Position) Set {
	return NewSet(New(p))
}

// Len returns the number of cursors.
func (s *Set) Len() int { return len(s.cursors) }

// Cursors returns the cursors in document order. The slice is shared;
// callers must not mutate it.
func (s *Set) Cursors() []Cursor { return s.cursors }

// At returns the cursor at index i.
func (s *Set) At(i int) Cursor { return s.cursors[i] }

// Main returns the main cursor.
func (s *Set) Main() Cursor { return s.cursors[s.main] }

// MainIndex returns the index of the main cursor.
func (s *Set) MainIndex() int { return s.main }

// Set replaces the cursor at index i and re-normalizes.
func (s *Set) Set(i int, c Cursor) {
	s.cursors[i] = c
	s.normalize()
}

// Add inserts a cursor. The new cursor becomes main if makeMain is set.
func (s *Set) Add(c Cursor, makeMain bool) {
	s.cursors = append(s.cursors, c)
	if makeMain {
		s.main = len(s.cursors) - 1
	}
	s.normalize()
}

// Replace swaps in a whole new cursor list. main indexes the new list
// and is clamped. An empty list is rejected by keeping the old state.
func (s *Set) Replace(cursors []Cursor, main int) {
	if len(cursors) == 0 {
		return
	}
	if main < 0 {
		main = 0
	}
	if main >= len(cursors) {
		main = len(cursors) - 1
	}
	s.cursors = cursors
	s.main = main
	s.normalize()
}

// RemoveSecondary drops every cursor except the main one.
func (s *Set) RemoveSecondary() {
	s.cursors = []Cursor{s.cursors[s.main]}
	s.main = 0
}

// CollapseAll drops all selections, leaving carets at the moving ends.
func (s *Set) CollapseAll() {
	for i, c := range s.cursors {
		s.cursors[i] = c.Collapse()
	}
	s.normalize()
}

// Map applies fn to every cursor, then re-normalizes.
func (s *Set) Map(fn func(Cursor) Cursor) {
	for i, c := range s.cursors {
		s.cursors[i] = fn(c)
	}
	s.normalize()
}

// normalize sorts by range start and merges overlapping or touching
// cursors. A merged cursor covers the union of the merged ranges and
// keeps the orientation of the main cursor when it took part, otherwise
// of the earliest one. The main cursor's identity survives merging.
func (s *Set) normalize() {
	if len(s.cursors) <= 1 {
		s.main = 0
		return
	}
	idx := make([]int, len(s.cursors))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ra, rb := s.cursors[idx[a]].Range(), s.cursors[idx[b]].Range()
		if ra.Front != rb.Front {
			return ra.Front.Before(rb.Front)
		}
		return ra.Back.Before(rb.Back)
	})

	sorted := make([]Cursor, len(idx))
	mainPos := 0
	for i, j := range idx {
		sorted[i] = s.cursors[j]
		if j == s.main {
			mainPos = i
		}
	}

	merged := sorted[:1]
	newMain := 0
	for i := 1; i < len(sorted); i++ {
		last := &merged[len(merged)-1]
		if last.Range().Touches(sorted[i].Range()) {
			*last = mergeCursors(*last, sorted[i], i == mainPos)
			if i == mainPos {
				newMain = len(merged) - 1
			}
			continue
		}
		merged = append(merged, sorted[i])
		if i == mainPos {
			newMain = len(merged) - 1
		}
	}
	s.cursors = merged
	s.main = newMain
}

// mergeCursors unions two touching cursors. preferB keeps b's
// orientation, used when b is the main cursor.
func mergeCursors(a, b Cursor, preferB bool) Cursor {
	u := a.Range().Union(b.Range())
	reversed := a.IsReversed()
	if preferB {
		reversed = b.IsReversed()
	}
	if reversed {
		return Cursor{Moving: u.Front, Anchor: u.Back, VirtualX: -1}
	}
	return Cursor{Moving: u.Back, Anchor: u.Front, VirtualX: -1}
}
