package cursor

import (
	"strings"
	"unicode/utf8"
)

// PositionAfterEdit returns where the caret lands after the range
// starting at front is replaced by text: the position just past the
// inserted text.
func PositionAfterEdit(front Position, text string) Position {
	lines := strings.Count(text, "\n")
	if lines == 0 {
		return Position{Y: front.Y, X: front.X + utf8.RuneCountInString(text)}
	}
	tail := text[strings.LastIndexByte(text, '\n')+1:]
	return Position{Y: front.Y + lines, X: utf8.RuneCountInString(tail)}
}

// RemapAfterEdit maps a position through an edit that replaced the
// range r, with the replacement ending at newEnd.
//
// Positions before the edit are untouched, positions inside the
// replaced range collapse to the end of the inserted text, and
// positions after the edit shift by its line and column delta. Only
// positions on the same line as r.Back see a column shift.
func RemapAfterEdit(p Position, r Range, newEnd Position) Position {
	if p.Before(r.Front) {
		return p
	}
	if p.Before(r.Back) {
		return newEnd
	}
	if p.Y == r.Back.Y {
		return Position{Y: newEnd.Y, X: newEnd.X + (p.X - r.Back.X)}
	}
	return Position{Y: p.Y + (newEnd.Y - r.Back.Y), X: p.X}
}

// RemapCursorAfterEdit maps both ends of a cursor through an edit.
// The virtual column is dropped since the text under the cursor moved.
func RemapCursorAfterEdit(c Cursor, r Range, newEnd Position) Cursor {
	return Cursor{
		Moving:   RemapAfterEdit(c.Moving, r, newEnd),
		Anchor:   RemapAfterEdit(c.Anchor, r, newEnd),
		VirtualX: -1,
	}
}
