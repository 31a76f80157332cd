package document

import (
	"github.com/tcayer/quire/internal/engine/buffer"
	"github.com/tcayer/quire/internal/engine/cursor"
)

// wordAt returns the word containing p, including a p sitting just past
// the word's last char.
func wordAt(b buffer.RawBuffer, p cursor.Position) (buffer.Word, bool) {
	it := buffer.NewWordIterFromBeginningOfWord(b, p)
	w, ok := it.Next()
	if !ok {
		return buffer.Word{}, false
	}
	if p.Before(w.Range.Front) || w.Range.Back.Before(p) {
		return buffer.Word{}, false
	}
	return w, true
}

// nextWordFrom returns the first word starting strictly after the word
// position p belongs to, or the first word after p.
func nextWordFrom(b buffer.RawBuffer, p cursor.Position) (buffer.Word, bool) {
	it := buffer.NewWordIter(b, p)
	w, ok := it.Next()
	if !ok {
		return buffer.Word{}, false
	}
	if w.Range.Front == p {
		return it.Next()
	}
	return w, true
}

// prevWordFrom returns the word ending at or before p; a p inside a
// word yields that word.
func prevWordFrom(b buffer.RawBuffer, p cursor.Position) (buffer.Word, bool) {
	it := buffer.NewWordIter(b, p)
	return it.Prev()
}

// SelectCurrentWord selects the word under each caret. Carets not on a
// word are left alone.
func (d *Document) SelectCurrentWord() {
	b := d.buf.Snapshot()
	d.cursors.Map(func(c cursor.Cursor) cursor.Cursor {
		w, ok := wordAt(b, c.Moving)
		if !ok {
			return c
		}
		return c.Select(w.Range.Front, w.Range.Back)
	})
}

// DeleteCurrentWord deletes the word under each caret.
func (d *Document) DeleteCurrentWord() error {
	return d.UpdateCursorsWith(func(b *buffer.MutableBuffer, c *cursor.Cursor) error {
		w, ok := wordAt(b.Snapshot(), c.Moving)
		if !ok {
			return nil
		}
		nr, err := b.Edit(w.Range, "")
		if err != nil {
			return err
		}
		*c = c.CollapseTo(nr.Back)
		return nil
	})
}

// SelectNextWord moves each cursor's selection to the next word after
// its current range.
func (d *Document) SelectNextWord() {
	b := d.buf.Snapshot()
	d.cursors.Map(func(c cursor.Cursor) cursor.Cursor {
		it := buffer.NewWordIter(b, c.Range().Back)
		w, ok := it.Next()
		if !ok {
			return c
		}
		return c.Select(w.Range.Front, w.Range.Back)
	})
}

// SelectPrevWord moves each cursor's selection to the previous word
// before its current range.
func (d *Document) SelectPrevWord() {
	b := d.buf.Snapshot()
	d.cursors.Map(func(c cursor.Cursor) cursor.Cursor {
		it := buffer.NewWordIter(b, c.Range().Front)
		w, ok := it.Prev()
		if !ok {
			return c
		}
		return c.Select(w.Range.Front, w.Range.Back)
	})
}
