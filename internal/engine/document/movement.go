package document

import (
	"github.com/tcayer/quire/internal/engine/buffer"
	"github.com/tcayer/quire/internal/engine/cursor"
	"github.com/tcayer/quire/internal/textwidth"
)

// Direction of a cursor movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Move moves every cursor one step, dropping selections. Horizontal
// steps are grapheme clusters. Vertical steps keep the column the move
// started from, so crossing a short line does not erode it. Cursors
// that land on each other merge.
func (d *Document) Move(dir Direction) {
	d.cursors.Map(func(c cursor.Cursor) cursor.Cursor {
		return d.step(c, dir, false)
	})
}

// Select extends every cursor's selection one step, keeping anchors.
func (d *Document) Select(dir Direction) {
	d.cursors.Map(func(c cursor.Cursor) cursor.Cursor {
		return d.step(c, dir, true)
	})
}

func (d *Document) step(c cursor.Cursor, dir Direction, extend bool) cursor.Cursor {
	b := d.buf.Snapshot()
	switch dir {
	case Left:
		if !extend && c.HasSelection() {
			return c.CollapseTo(c.Range().Front)
		}
		p, ok := prevGraphemePos(b, c.Moving)
		if !ok {
			p = c.Moving
		}
		if extend {
			return c.WithMoving(p)
		}
		return c.CollapseTo(p)

	case Right:
		if !extend && c.HasSelection() {
			return c.CollapseTo(c.Range().Back)
		}
		p, ok := nextGraphemePos(b, c.Moving)
		if !ok {
			p = c.Moving
		}
		if extend {
			return c.WithMoving(p)
		}
		return c.CollapseTo(p)

	case Up:
		if c.Moving.Y == 0 {
			p := cursor.Position{}
			if extend {
				return c.WithMoving(p)
			}
			return c.CollapseTo(p)
		}
		wantCol := displayCol(b, c.Moving)
		if c.VirtualX > wantCol {
			wantCol = c.VirtualX
		}
		p := d.landOnLine(c.Moving.Y-1, wantCol)
		return vertical(c, p, wantCol, extend)

	case Down:
		end := b.EndPosition()
		if c.Moving.Y >= end.Y {
			if extend {
				return c.WithMoving(end)
			}
			return c.CollapseTo(end)
		}
		wantCol := displayCol(b, c.Moving)
		if c.VirtualX > wantCol {
			wantCol = c.VirtualX
		}
		p := d.landOnLine(c.Moving.Y+1, wantCol)
		return vertical(c, p, wantCol, extend)
	}
	return c
}

// vertical keeps the sticky display column that horizontal moves reset.
func vertical(c cursor.Cursor, p cursor.Position, wantCol int, extend bool) cursor.Cursor {
	out := cursor.Cursor{Moving: p, Anchor: p, VirtualX: wantCol}
	if extend {
		out.Anchor = c.Anchor
	}
	return out
}

// displayCol returns the display column of p: the summed cell widths
// of the chars on its line before p.X.
func displayCol(b buffer.RawBuffer, p cursor.Position) int {
	col, n := 0, 0
	for _, r := range b.LineText(p.Y) {
		if n >= p.X {
			break
		}
		col += textwidth.Rune(r)
		n++
	}
	return col
}

// landOnLine places the cursor on line y at display column col, clamped
// to the line end. A column inside a wide char lands past it.
func (d *Document) landOnLine(y, col int) cursor.Position {
	b := d.buf.Snapshot()
	end := b.EndPosition()
	if y >= end.Y && end.X == 0 && y >= b.NumLines() {
		return end
	}
	c, n := 0, 0
	for _, r := range b.LineText(y) {
		if c >= col {
			break
		}
		c += textwidth.Rune(r)
		n++
	}
	return cursor.Position{Y: y, X: n}
}

// MoveToNextWord moves each caret to the start of the next word. A
// caret already on a word start skips to the following word.
func (d *Document) MoveToNextWord() {
	d.cursors.Map(func(c cursor.Cursor) cursor.Cursor {
		w, ok := nextWordFrom(d.buf.Snapshot(), c.Moving)
		if !ok {
			return c.Collapse()
		}
		return c.CollapseTo(w.Range.Front)
	})
}

// MoveToPrevWord moves each caret to the start of the previous word. A
// caret inside a word moves to that word's start.
func (d *Document) MoveToPrevWord() {
	d.cursors.Map(func(c cursor.Cursor) cursor.Cursor {
		w, ok := prevWordFrom(d.buf.Snapshot(), c.Moving)
		if !ok {
			return c.Collapse()
		}
		return c.CollapseTo(w.Range.Front)
	})
}
