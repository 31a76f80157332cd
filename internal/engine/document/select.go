package document

import "github.com/tcayer/quire/internal/engine/cursor"

// SelectWholeLine selects each cursor's line including its newline, so
// deleting the selection removes the line entirely. The last line of a
// buffer without a trailing newline selects to the buffer end.
func (d *Document) SelectWholeLine() {
	b := d.buf.Snapshot()
	d.cursors.Map(func(c cursor.Cursor) cursor.Cursor {
		y := c.Moving.Y
		front := cursor.Position{Y: y, X: 0}
		back := cursor.Position{Y: y + 1, X: 0}
		if !b.IsValidPosition(back) {
			back = b.EndPosition()
		}
		return c.Select(front, back)
	})
}

// SelectWholeBuffer collapses to a single cursor selecting everything.
func (d *Document) SelectWholeBuffer() {
	b := d.buf.Snapshot()
	d.cursors = cursor.NewSet(cursor.NewSelection(cursor.Position{}, b.EndPosition()))
}
