package buffer

import (
	"unicode/utf8"

	"github.com/tcayer/quire/internal/engine/cursor"
)

// CharIter walks the buffer one Unicode scalar at a time in either
// direction. Crossing a '\n' moves the position to the next line. A
// '\r' counts like any other char, keeping iterator positions aligned
// with CharAt and PosToByte on CRLF text.
type CharIter struct {
	buf     RawBuffer
	byteOff int
	pos     cursor.Position
	lastPos cursor.Position
}

// NewCharIter starts iteration so the first Next returns the char at
// from.
func NewCharIter(b RawBuffer, from cursor.Position) *CharIter {
	return &CharIter{
		buf:     b,
		byteOff: b.PosToByte(from),
		pos:     from,
		lastPos: from,
	}
}

// Position returns the position of the char the next Next will return.
func (it *CharIter) Position() cursor.Position { return it.pos }

// LastPosition returns the position of the most recently returned char.
func (it *CharIter) LastPosition() cursor.Position { return it.lastPos }

// Next returns the char at the current position and advances. It
// returns false at the buffer end.
func (it *CharIter) Next() (rune, bool) {
	if it.byteOff >= it.buf.Len() {
		return 0, false
	}
	r := it.decodeAt(it.byteOff)
	it.byteOff += utf8.RuneLen(r)
	it.lastPos = it.pos
	if r == '\n' {
		it.pos = cursor.Position{Y: it.pos.Y + 1, X: 0}
	} else {
		it.pos.X++
	}
	return r, true
}

// Prev steps back and returns the char preceding the current position.
// It returns false at the buffer start.
func (it *CharIter) Prev() (rune, bool) {
	if it.byteOff <= 0 {
		return 0, false
	}
	r := it.decodeBefore(it.byteOff)
	it.byteOff -= utf8.RuneLen(r)
	if r == '\n' {
		y := it.pos.Y - 1
		it.pos = cursor.Position{Y: y, X: it.buf.LineLen(y)}
	} else {
		it.pos.X--
	}
	it.lastPos = it.pos
	return r, true
}

func (it *CharIter) decodeAt(off int) rune {
	end := off + utf8.UTFMax
	if end > it.buf.Len() {
		end = it.buf.Len()
	}
	r, _ := utf8.DecodeRuneInString(it.buf.text.Slice(off, end))
	return r
}

func (it *CharIter) decodeBefore(off int) rune {
	start := off - utf8.UTFMax
	if start < 0 {
		start = 0
	}
	r, _ := utf8.DecodeLastRuneInString(it.buf.text.Slice(start, off))
	return r
}
