// Package lsp converts between buffer positions and Language Server
// Protocol positions. LSP addresses text as 0-indexed line plus UTF-16
// code unit offset, so chars outside the Basic Multilingual Plane
// count twice.
package lsp

import (
	"github.com/tcayer/quire/internal/engine/buffer"
	"github.com/tcayer/quire/internal/engine/cursor"
)

// Position is an LSP text position.
type Position struct {
	Line      int
	Character int
}

// Range is an LSP text range.
type Range struct {
	Start Position
	End   Position
}

// FromBuffer converts a buffer position to LSP coordinates.
func FromBuffer(b buffer.RawBuffer, p cursor.Position) Position {
	r := b.Rope()
	lineStart := r.LineStartByte(p.Y)
	off := b.PosToByte(p)
	return Position{
		Line:      p.Y,
		Character: r.ByteToUTF16(off) - r.ByteToUTF16(lineStart),
	}
}

// ToBuffer converts an LSP position to a buffer position. Offsets past
// the line end clamp to it, and an offset inside a surrogate pair
// resolves to the pair's start.
func ToBuffer(b buffer.RawBuffer, p Position) cursor.Position {
	r := b.Rope()
	lineStart := r.LineStartByte(p.Line)
	off := r.UTF16ToByte(r.ByteToUTF16(lineStart) + p.Character)
	if _, lineEnd := b.LineByteRange(p.Line); off > lineEnd {
		off = lineEnd
	}
	return b.ByteToPos(off)
}

// RangeFromBuffer converts a buffer range.
func RangeFromBuffer(b buffer.RawBuffer, r cursor.Range) Range {
	return Range{Start: FromBuffer(b, r.Front), End: FromBuffer(b, r.Back)}
}

// RangeToBuffer converts an LSP range.
func RangeToBuffer(b buffer.RawBuffer, r Range) cursor.Range {
	return cursor.NewRange(ToBuffer(b, r.Start), ToBuffer(b, r.End))
}
