package reflow

import (
	"github.com/tcayer/quire/internal/engine/buffer"
	"github.com/tcayer/quire/internal/engine/cursor"
)

// Paragraph is one logical line of the buffer, the unit of reflow.
type Paragraph struct {
	// Y is the logical line index.
	Y int

	// Range spans the line including its newline when present.
	Range cursor.Range
}

// Reflow returns an item iterator over just this paragraph's text.
func (p Paragraph) Reflow(b buffer.RawBuffer, screenWidth, tabWidth int) *Iter {
	it := NewIter(b, p.Range.Front, screenWidth, tabWidth)
	it.until = p.Range.Back
	it.bounded = true
	return it
}

// ParagraphIter walks logical lines in either direction.
type ParagraphIter struct {
	buf buffer.RawBuffer
	y   int
}

// NewParagraphIter starts at the paragraph containing from.
func NewParagraphIter(b buffer.RawBuffer, from cursor.Position) *ParagraphIter {
	return &ParagraphIter{buf: b, y: from.Y}
}

// Next returns the paragraph at the current line and advances.
func (it *ParagraphIter) Next() (Paragraph, bool) {
	if it.y >= it.buf.NumLines() {
		return Paragraph{}, false
	}
	p := it.paragraphAt(it.y)
	it.y++
	return p, true
}

// Prev steps back and returns the preceding paragraph.
func (it *ParagraphIter) Prev() (Paragraph, bool) {
	if it.y <= 0 {
		return Paragraph{}, false
	}
	it.y--
	return it.paragraphAt(it.y), true
}

func (it *ParagraphIter) paragraphAt(y int) Paragraph {
	front := cursor.Position{Y: y, X: 0}
	back := cursor.Position{Y: y + 1, X: 0}
	if !it.buf.IsValidPosition(back) {
		back = it.buf.EndPosition()
	}
	return Paragraph{Y: y, Range: cursor.Range{Front: front, Back: back}}
}
