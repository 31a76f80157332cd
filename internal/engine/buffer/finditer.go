package buffer

import (
	"strings"

	"github.com/tcayer/quire/internal/engine/cursor"
)

// FindIter yields non-overlapping matches of a literal query. Forward
// iteration resumes after the previous match, backward iteration before
// it, so "AA" in "AAAA" matches exactly twice in either direction.
type FindIter struct {
	buf   RawBuffer
	query string
	text  string
	off   int
}

// NewFindIter searches for query starting at from. An empty query never
// matches.
func NewFindIter(b RawBuffer, query string, from cursor.Position) *FindIter {
	return &FindIter{
		buf:   b,
		query: query,
		text:  b.String(),
		off:   b.PosToByte(from),
	}
}

// Next returns the next match at or after the current offset.
func (it *FindIter) Next() (cursor.Range, bool) {
	if it.query == "" || it.off > len(it.text) {
		return cursor.Range{}, false
	}
	i := strings.Index(it.text[it.off:], it.query)
	if i < 0 {
		return cursor.Range{}, false
	}
	start := it.off + i
	end := start + len(it.query)
	it.off = end
	return cursor.NewRange(it.buf.ByteToPos(start), it.buf.ByteToPos(end)), true
}

// Prev returns the previous match ending at or before the current
// offset.
func (it *FindIter) Prev() (cursor.Range, bool) {
	if it.query == "" || it.off < len(it.query) {
		return cursor.Range{}, false
	}
	i := strings.LastIndex(it.text[:it.off], it.query)
	if i < 0 {
		return cursor.Range{}, false
	}
	it.off = i
	return cursor.NewRange(it.buf.ByteToPos(i), it.buf.ByteToPos(i+len(it.query))), true
}
