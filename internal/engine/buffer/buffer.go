// Package buffer provides the raw text buffer and the Unicode-aware
// iterators that walk it. A RawBuffer is an immutable value backed by a
// rope; all addressing is by cursor.Position, whose X counts Unicode
// scalars within a line.
package buffer

import (
	"unicode/utf8"

	"github.com/tcayer/quire/internal/engine/cursor"
	"github.com/tcayer/quire/internal/engine/rope"
)

// RawBuffer is immutable text with position-based addressing. The zero
// value is an empty buffer.
//
// Line accounting follows the final-newline convention: a trailing '\n'
// does not open a new line for counting purposes, so "hello\n" has one
// line, and the position just past it, (1,0), is addressable only as
// the buffer end.
type RawBuffer struct {
	text rope.Rope
}

// NewRawBuffer returns an empty buffer.
func NewRawBuffer() RawBuffer { return RawBuffer{} }

// RawBufferFromString builds a buffer holding s.
func RawBufferFromString(s string) RawBuffer {
	return RawBuffer{text: rope.FromString(s)}
}

// RawBufferFromRope wraps an existing rope.
func RawBufferFromRope(r rope.Rope) RawBuffer {
	return RawBuffer{text: r}
}

// Rope returns the underlying rope.
func (b RawBuffer) Rope() rope.Rope { return b.text }

// String materializes the whole text.
func (b RawBuffer) String() string { return b.text.String() }

// Len returns the text length in bytes.
func (b RawBuffer) Len() int { return b.text.Len() }

// CharLen returns the text length in Unicode scalars.
func (b RawBuffer) CharLen() int { return b.text.CharLen() }

// IsEmpty reports whether the buffer holds no text.
func (b RawBuffer) IsEmpty() bool { return b.text.Len() == 0 }

// endsWithNewline reports whether the last byte is '\n'.
func (b RawBuffer) endsWithNewline() bool {
	n := b.text.Len()
	return n > 0 && b.text.Slice(n-1, n) == "\n"
}

// NumLines returns the number of lines. A trailing newline does not
// count an extra line: NumLines("hello\n") == 1. The empty buffer has
// one line.
func (b RawBuffer) NumLines() int {
	if b.text.Len() == 0 {
		return 1
	}
	if b.endsWithNewline() {
		return b.text.NewlineCount()
	}
	return b.text.NewlineCount() + 1
}

// LineByteRange returns the byte span of line y excluding its '\n'.
func (b RawBuffer) LineByteRange(y int) (start, end int) {
	start = b.text.LineStartByte(y)
	end = b.text.LineStartByte(y + 1)
	if end > start && b.text.Slice(end-1, end) == "\n" {
		end--
	}
	return start, end
}

// LineText returns line y without its trailing '\n'. Out-of-range lines
// yield "".
func (b RawBuffer) LineText(y int) string {
	start, end := b.LineByteRange(y)
	return b.text.Slice(start, end)
}

// LineLen returns the char count of line y excluding its '\n'.
func (b RawBuffer) LineLen(y int) int {
	start, end := b.LineByteRange(y)
	if start >= end {
		return 0
	}
	return b.text.ByteToChar(end) - b.text.ByteToChar(start)
}

// LineIndentLen returns the number of leading space and tab chars on
// line y.
func (b RawBuffer) LineIndentLen(y int) int {
	n := 0
	for _, r := range b.LineText(y) {
		if r != ' ' && r != '\t' {
			break
		}
		n++
	}
	return n
}

// EndPosition returns the position just past the last char. For text
// with a trailing newline this is (NumLines, 0), a position addressable
// only here.
func (b RawBuffer) EndPosition() cursor.Position {
	if b.text.Len() == 0 {
		return cursor.Position{}
	}
	if b.endsWithNewline() {
		return cursor.Position{Y: b.NumLines(), X: 0}
	}
	last := b.NumLines() - 1
	return cursor.Position{Y: last, X: b.LineLen(last)}
}

// IsValidPosition reports whether p addresses a char boundary in the
// buffer. Valid positions are (y, x) with y a counted line and
// x <= LineLen(y), plus the buffer end.
func (b RawBuffer) IsValidPosition(p cursor.Position) bool {
	if p.Y < 0 || p.X < 0 {
		return false
	}
	if p == b.EndPosition() {
		return true
	}
	return p.Y < b.NumLines() && p.X <= b.LineLen(p.Y)
}

// IsValidRange reports whether both ends are valid and ordered.
func (b RawBuffer) IsValidRange(r cursor.Range) bool {
	return b.IsValidPosition(r.Front) && b.IsValidPosition(r.Back) &&
		!r.Back.Before(r.Front)
}

// PosToByte converts a position to a byte offset. The position must be
// valid.
func (b RawBuffer) PosToByte(p cursor.Position) int {
	start := b.text.LineStartByte(p.Y)
	if p.X == 0 {
		return start
	}
	line := b.LineText(p.Y)
	return start + charIndexToByte(line, p.X)
}

// PosToChar converts a position to a char offset.
func (b RawBuffer) PosToChar(p cursor.Position) int {
	return b.text.ByteToChar(b.PosToByte(p))
}

// ByteToPos converts a byte offset to a position. The offset must fall
// on a char boundary.
func (b RawBuffer) ByteToPos(off int) cursor.Position {
	if off <= 0 {
		return cursor.Position{}
	}
	if off > b.text.Len() {
		off = b.text.Len()
	}
	y := b.text.LineOfByte(off)
	lineStart := b.text.LineStartByte(y)
	x := b.text.ByteToChar(off) - b.text.ByteToChar(lineStart)
	return cursor.Position{Y: y, X: x}
}

// CharToPos converts a char offset to a position.
func (b RawBuffer) CharToPos(off int) cursor.Position {
	return b.ByteToPos(b.text.CharToByte(off))
}

// CharAt returns the char at p, or false when p is the buffer end or
// invalid. The char at the end of a counted line is '\n'.
func (b RawBuffer) CharAt(p cursor.Position) (rune, bool) {
	if !b.IsValidPosition(p) || p == b.EndPosition() {
		return 0, false
	}
	off := b.PosToByte(p)
	if off >= b.text.Len() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(b.text.Slice(off, off+utf8.UTFMax))
	return r, true
}

// Substr returns the text spanned by r.
func (b RawBuffer) Substr(r cursor.Range) string {
	return b.text.Slice(b.PosToByte(r.Front), b.PosToByte(r.Back))
}

// Chunks streams the raw text from the given position. Chunk starts
// carry byte, char and line coordinates.
func (b RawBuffer) Chunks(from cursor.Position) *rope.ChunkIter {
	return b.text.ChunksAt(b.PosToByte(from))
}

// charIndexToByte converts a char index within s to a byte index.
func charIndexToByte(s string, x int) int {
	n := 0
	for i := range s {
		if n == x {
			return i
		}
		n++
	}
	return len(s)
}
