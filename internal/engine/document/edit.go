package document

import (
	"github.com/tcayer/quire/internal/engine/buffer"
	"github.com/tcayer/quire/internal/engine/cursor"
)

// InsertString replaces every cursor's selection with text and leaves a
// caret after the insertion.
func (d *Document) InsertString(text string) error {
	return d.UpdateCursorsWith(func(b *buffer.MutableBuffer, c *cursor.Cursor) error {
		nr, err := b.Edit(c.Range(), text)
		if err != nil {
			return err
		}
		*c = c.CollapseTo(nr.Back)
		return nil
	})
}

// InsertChar inserts a single char at every cursor.
func (d *Document) InsertChar(r rune) error {
	return d.InsertString(string(r))
}

// Backspace deletes each cursor's selection, or the grapheme cluster
// before the caret. A caret at the buffer start does nothing.
func (d *Document) Backspace() error {
	return d.UpdateCursorsWith(func(b *buffer.MutableBuffer, c *cursor.Cursor) error {
		r := c.Range()
		if r.IsEmpty() {
			start, ok := prevGraphemePos(b.Snapshot(), r.Front)
			if !ok {
				return nil
			}
			r = cursor.Range{Front: start, Back: r.Front}
		}
		nr, err := b.Edit(r, "")
		if err != nil {
			return err
		}
		*c = c.CollapseTo(nr.Back)
		return nil
	})
}

// Delete deletes each cursor's selection, or the grapheme cluster after
// the caret. A caret at the buffer end does nothing.
func (d *Document) Delete() error {
	return d.UpdateCursorsWith(func(b *buffer.MutableBuffer, c *cursor.Cursor) error {
		r := c.Range()
		if r.IsEmpty() {
			end, ok := nextGraphemePos(b.Snapshot(), r.Back)
			if !ok {
				return nil
			}
			r = cursor.Range{Front: r.Front, Back: end}
		}
		nr, err := b.Edit(r, "")
		if err != nil {
			return err
		}
		*c = c.CollapseTo(nr.Back)
		return nil
	})
}

// EditSelectionWith replaces each selection's text with fn(text) and
// selects the replacement. Carets without a selection are skipped.
func (d *Document) EditSelectionWith(fn func(string) string) error {
	return d.UpdateCursorsWith(func(b *buffer.MutableBuffer, c *cursor.Cursor) error {
		if !c.HasSelection() {
			return nil
		}
		r := c.Range()
		nr, err := b.Edit(r, fn(b.Substr(r)))
		if err != nil {
			return err
		}
		*c = c.Select(nr.Front, nr.Back)
		return nil
	})
}

// Truncate deletes from each caret to the end of its line. A caret
// already at the end of line removes the newline instead, joining the
// next line. Selections are deleted as they are.
func (d *Document) Truncate() error {
	return d.UpdateCursorsWith(func(b *buffer.MutableBuffer, c *cursor.Cursor) error {
		r := c.Range()
		if r.IsEmpty() {
			p := c.Moving
			if eol := b.LineLen(p.Y); p.X == eol {
				r = cursor.Range{Front: p, Back: cursor.Position{Y: p.Y + 1}}
				if !b.IsValidRange(r) {
					// caret at buffer end, nothing follows
					return nil
				}
			} else {
				r = cursor.Range{Front: p, Back: cursor.Position{Y: p.Y, X: eol}}
			}
		}
		nr, err := b.Edit(r, "")
		if err != nil {
			return err
		}
		*c = c.CollapseTo(nr.Back)
		return nil
	})
}

// prevGraphemePos returns the start of the grapheme cluster before p.
func prevGraphemePos(b buffer.RawBuffer, p cursor.Position) (cursor.Position, bool) {
	it := buffer.NewGraphemeIter(b, p)
	if _, ok := it.Prev(); !ok {
		return p, false
	}
	return it.Position(), true
}

// nextGraphemePos returns the position just past the grapheme cluster
// at p.
func nextGraphemePos(b buffer.RawBuffer, p cursor.Position) (cursor.Position, bool) {
	it := buffer.NewGraphemeIter(b, p)
	if _, ok := it.Next(); !ok {
		return p, false
	}
	return it.Position(), true
}
