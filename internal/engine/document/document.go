// Package document ties a mutable buffer to a cursor set and implements
// the editing commands on top of them. All multi-cursor edits go
// through UpdateCursorsWith, which applies a closure per cursor in
// reverse document order and keeps every other cursor's position
// correct across the edits.
package document

import (
	"github.com/tcayer/quire/internal/engine/buffer"
	"github.com/tcayer/quire/internal/engine/cursor"
	"github.com/tcayer/quire/internal/notify"
)

// Document is a text buffer under edit.
type Document struct {
	buf     *buffer.MutableBuffer
	cursors cursor.Set
	pending []buffer.Change
	history *history
	sink    notify.Sink
}

// New returns a document holding text, with a single caret at (0,0).
// sink receives reports about rejected edits; pass notify.Nop() to
// discard them.
func New(text string, sink notify.Sink) *Document {
	if sink == nil {
		sink = notify.Nop()
	}
	return &Document{
		buf:     buffer.NewMutableBuffer(text),
		cursors: cursor.NewSetAt(cursor.Position{}),
		history: newHistory(0),
		sink:    sink,
	}
}

// Buffer returns the current text as an immutable snapshot.
func (d *Document) Buffer() buffer.RawBuffer { return d.buf.Snapshot() }

// Text materializes the whole text.
func (d *Document) Text() string { return d.buf.String() }

// Version returns the buffer's edit counter.
func (d *Document) Version() int { return d.buf.Version() }

// Cursors returns the cursors in document order.
func (d *Document) Cursors() []cursor.Cursor { return d.cursors.Cursors() }

// MainCursor returns the main cursor.
func (d *Document) MainCursor() cursor.Cursor { return d.cursors.Main() }

// SetCursor resets to a single caret at p. Invalid positions are
// clamped to the buffer end.
func (d *Document) SetCursor(p cursor.Position) {
	if !d.buf.IsValidPosition(p) {
		p = d.buf.EndPosition()
	}
	d.cursors = cursor.NewSetAt(p)
}

// AddCursor adds a secondary caret at p. Invalid positions are ignored.
func (d *Document) AddCursor(p cursor.Position) {
	if !d.buf.IsValidPosition(p) {
		return
	}
	d.cursors.Add(cursor.New(p), false)
}

// RemoveSecondaryCursors keeps only the main cursor.
func (d *Document) RemoveSecondaryCursors() { d.cursors.RemoveSecondary() }

// TakeChanges returns the buffer changes applied since the last call.
// Consumers such as the line status map use these to stay in sync.
func (d *Document) TakeChanges() []buffer.Change {
	c := d.pending
	d.pending = nil
	return c
}

// CursorEditFunc edits the buffer on behalf of one cursor. It may apply
// any number of edits through b and must leave c where the cursor
// should end up. Returning an error aborts the whole batch.
type CursorEditFunc func(b *buffer.MutableBuffer, c *cursor.Cursor) error

// UpdateCursorsWith applies fn once per cursor, last cursor first, so
// edits cannot shift the cursors still waiting their turn. After each
// edit the cursors already processed are remapped through it. If fn
// fails for any cursor the buffer and all cursors roll back to the
// state before the batch and the error is returned.
func (d *Document) UpdateCursorsWith(fn CursorEditFunc) error {
	snap := d.buf.Snapshot()
	prev := append([]cursor.Cursor(nil), d.cursors.Cursors()...)
	main := d.cursors.MainIndex()
	pendingMark := len(d.pending)
	startVersion := d.buf.Version()

	cs := append([]cursor.Cursor(nil), d.cursors.Cursors()...)
	d.collectChanges()
	for i := len(cs) - 1; i >= 0; i-- {
		c := cs[i]
		before := len(d.buf.Changes())
		if err := fn(d.buf, &c); err != nil {
			d.buf.Restore(snap)
			d.buf.TakeChanges()
			d.pending = d.pending[:pendingMark]
			d.cursors.Replace(prev, main)
			d.sink.Warn("edit rejected", "err", err)
			return err
		}
		cs[i] = c
		changes := d.buf.Changes()[before:]
		for _, ch := range changes {
			for j := i + 1; j < len(cs); j++ {
				cs[j] = cursor.RemapCursorAfterEdit(cs[j], ch.Range, ch.NewPos)
			}
		}
	}
	d.collectChanges()
	for i := range cs {
		cs[i] = d.clampCursor(cs[i])
	}
	d.cursors.Replace(cs, main)
	if d.buf.Version() != startVersion {
		d.history.record(revision{snap: snap, cursors: prev, main: main})
	}
	return nil
}

// clampCursor pulls both endpoints back inside the buffer: lines past
// the end collapse to the buffer end, columns past end-of-line to the
// line length.
func (d *Document) clampCursor(c cursor.Cursor) cursor.Cursor {
	c.Moving = d.clampPosition(c.Moving)
	c.Anchor = d.clampPosition(c.Anchor)
	return c
}

func (d *Document) clampPosition(p cursor.Position) cursor.Position {
	if d.buf.IsValidPosition(p) {
		return p
	}
	end := d.buf.EndPosition()
	if p.Y > end.Y || (p.Y == end.Y && p.X > end.X) {
		return end
	}
	if p.Y < 0 {
		return cursor.Position{}
	}
	if p.X < 0 {
		return cursor.Position{Y: p.Y}
	}
	return cursor.Position{Y: p.Y, X: d.buf.LineLen(p.Y)}
}

// collectChanges drains the buffer's change records into the pending
// list handed out by TakeChanges.
func (d *Document) collectChanges() {
	d.pending = append(d.pending, d.buf.TakeChanges()...)
}
