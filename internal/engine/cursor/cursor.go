package cursor

// Cursor is a caret with an optional selection. Moving is the end the
// user drives; Anchor is the fixed end. When the two are equal the
// cursor is a bare caret. VirtualX remembers the display column a
// vertical move started from so runs of short lines do not erode it;
// -1 means unset.
type Cursor struct {
	Moving   Position
	Anchor   Position
	VirtualX int
}

// New returns a caret cursor at p.
func New(p Position) Cursor {
	return Cursor{Moving: p, Anchor: p, VirtualX: -1}
}

// NewSelection returns a cursor selecting from anchor to moving.
func NewSelection(anchor, moving Position) Cursor {
	return Cursor{Moving: moving, Anchor: anchor, VirtualX: -1}
}

// Range returns the selected span as a well-formed half-open range.
// For a caret the range is empty.
func (c Cursor) Range() Range {
	return NewRange(c.Moving, c.Anchor)
}

// HasSelection reports whether the cursor selects any text.
func (c Cursor) HasSelection() bool { return c.Moving != c.Anchor }

// IsReversed reports whether the moving end precedes the anchor.
func (c Cursor) IsReversed() bool { return c.Moving.Before(c.Anchor) }

// Collapse drops the selection, leaving a caret at the moving end.
func (c Cursor) Collapse() Cursor {
	return Cursor{Moving: c.Moving, Anchor: c.Moving, VirtualX: -1}
}

// CollapseTo drops the selection, leaving a caret at p.
func (c Cursor) CollapseTo(p Position) Cursor {
	return Cursor{Moving: p, Anchor: p, VirtualX: -1}
}

// WithMoving moves the driven end, keeping the anchor. The virtual
// column resets because a horizontal move establishes a new column.
func (c Cursor) WithMoving(p Position) Cursor {
	return Cursor{Moving: p, Anchor: c.Anchor, VirtualX: -1}
}

// Select replaces both ends.
func (c Cursor) Select(anchor, moving Position) Cursor {
	return Cursor{Moving: moving, Anchor: anchor, VirtualX: -1}
}
