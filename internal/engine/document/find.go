package document

import (
	"github.com/tcayer/quire/internal/engine/buffer"
	"github.com/tcayer/quire/internal/engine/cursor"
)

// FindNext selects the next occurrence of query after the main
// cursor's range with the main cursor, dropping secondary cursors.
// Returns false and leaves cursors alone when there is no match.
func (d *Document) FindNext(query string) bool {
	b := d.buf.Snapshot()
	it := buffer.NewFindIter(b, query, d.cursors.Main().Range().Back)
	r, ok := it.Next()
	if !ok {
		return false
	}
	d.cursors.RemoveSecondary()
	d.cursors.Set(0, d.cursors.Main().Select(r.Front, r.Back))
	return true
}

// FindPrev selects the previous occurrence of query before the main
// cursor's range.
func (d *Document) FindPrev(query string) bool {
	b := d.buf.Snapshot()
	it := buffer.NewFindIter(b, query, d.cursors.Main().Range().Front)
	r, ok := it.Prev()
	if !ok {
		return false
	}
	d.cursors.RemoveSecondary()
	d.cursors.Set(0, d.cursors.Main().Select(r.Front, r.Back))
	return true
}

// SelectAllMatches adds a selection over every occurrence of query.
// The first match becomes the main cursor. Returns the match count.
func (d *Document) SelectAllMatches(query string) int {
	b := d.buf.Snapshot()
	it := buffer.NewFindIter(b, query, cursor.Position{})
	n := 0
	for {
		r, ok := it.Next()
		if !ok {
			break
		}
		c := d.cursors.Main().Select(r.Front, r.Back)
		if n == 0 {
			d.cursors.RemoveSecondary()
			d.cursors.Set(0, c)
		} else {
			d.cursors.Add(c, false)
		}
		n++
	}
	return n
}
