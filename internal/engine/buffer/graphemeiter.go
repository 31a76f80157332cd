package buffer

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/tcayer/quire/internal/engine/cursor"
)

// GraphemeIter walks the buffer one grapheme cluster at a time, in
// either direction, per UAX #29 extended grapheme clusters. A cluster
// never spans a line break except for CRLF, which is a single cluster.
//
// Next and Prev are exact inverses: after any Next, a Prev returns the
// same cluster and restores the iterator state.
type GraphemeIter struct {
	buf     RawBuffer
	lineY   int
	segment string // line text including its '\n' when present
	off     int    // byte offset of the next cluster within segment
	pos     cursor.Position
	lastPos cursor.Position
}

// NewGraphemeIter starts iteration so the first Next returns the
// cluster at from. from must be a cluster boundary.
func NewGraphemeIter(b RawBuffer, from cursor.Position) *GraphemeIter {
	it := &GraphemeIter{buf: b, pos: from, lastPos: from}
	it.loadLine(from.Y)
	it.off = it.buf.PosToByte(from) - it.buf.Rope().LineStartByte(from.Y)
	return it
}

func (it *GraphemeIter) loadLine(y int) {
	it.lineY = y
	r := it.buf.Rope()
	it.segment = r.Slice(r.LineStartByte(y), r.LineStartByte(y+1))
}

// Position returns the start position of the cluster the next Next
// will return.
func (it *GraphemeIter) Position() cursor.Position { return it.pos }

// LastPosition returns the start position of the most recently returned
// cluster.
func (it *GraphemeIter) LastPosition() cursor.Position { return it.lastPos }

// Next returns the cluster at the current position and advances past
// it. It returns false at the buffer end.
func (it *GraphemeIter) Next() (string, bool) {
	for it.off >= len(it.segment) {
		next := it.lineY + 1
		if it.buf.Rope().LineStartByte(next) >= it.buf.Len() {
			return "", false
		}
		it.loadLine(next)
		it.off = 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(it.segment[it.off:], -1)
	it.lastPos = it.pos
	it.off += len(cluster)
	if strings.HasSuffix(cluster, "\n") {
		it.pos = cursor.Position{Y: it.lineY + 1, X: 0}
	} else {
		it.pos.X += utf8.RuneCountInString(cluster)
	}
	return cluster, true
}

// Prev steps back and returns the cluster preceding the current
// position. It returns false at the buffer start.
func (it *GraphemeIter) Prev() (string, bool) {
	if it.off == 0 {
		if it.lineY == 0 {
			return "", false
		}
		it.loadLine(it.lineY - 1)
		it.off = len(it.segment)
		if it.off == 0 {
			// empty segment only occurs past the buffer end
			return "", false
		}
	}
	start := lastClusterStart(it.segment[:it.off])
	cluster := it.segment[start:it.off]
	it.off = start
	it.pos = cursor.Position{
		Y: it.lineY,
		X: utf8.RuneCountInString(it.segment[:start]),
	}
	it.lastPos = it.pos
	return cluster, true
}

// lastClusterStart returns the byte offset where the final grapheme
// cluster of s begins.
func lastClusterStart(s string) int {
	start := 0
	rest := s
	for len(rest) > 0 {
		cluster, tail, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		if len(tail) == 0 {
			return start
		}
		start += len(cluster)
		rest = tail
	}
	return start
}
