// Package linemap tracks per-line status flags for the gutter: diff
// state from version control and lines holding extra cursors. Lookups
// happen on every frame, so reads take an RLock and the map itself
// stays sparse.
package linemap

import (
	"fmt"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/tcayer/quire/internal/engine/buffer"
)

// Status is a bit set of per-line flags.
type Status uint8

const (
	// StatusAdded marks a line introduced since the diff base.
	StatusAdded Status = 1 << iota

	// StatusRemoved marks a line below which lines were deleted.
	StatusRemoved

	// StatusMultiCursor marks a line holding a secondary cursor.
	StatusMultiCursor
)

// StatusModified marks a changed line: both added and removed.
const StatusModified = StatusAdded | StatusRemoved

// StatusDiff selects the diff-derived bits.
const StatusDiff = StatusAdded | StatusRemoved

// Has reports whether all bits in mask are set.
func (s Status) Has(mask Status) bool { return s&mask == mask }

// Map holds line statuses. The zero value is not usable; call New.
type Map struct {
	mu    sync.RWMutex
	lines map[int]Status
}

// New returns an empty map.
func New() *Map {
	return &Map{lines: make(map[int]Status)}
}

// Get returns the status of line y.
func (m *Map) Get(y int) Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lines[y]
}

// InsertWithMask sets bits on line y after clearing the bits in clear:
// the new value is bits | (old &^ clear). Clearing everything a flag
// family owns before setting keeps unrelated flags intact.
func (m *Map) InsertWithMask(y int, bits, clear Status) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setLocked(y, bits|(m.lines[y]&^clear))
}

func (m *Map) setLocked(y int, s Status) {
	if s == 0 {
		delete(m.lines, y)
		return
	}
	m.lines[y] = s
}

// ClearMask removes the bits in mask from every line.
func (m *Map) ClearMask(mask Status) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for y, s := range m.lines {
		m.setLocked(y, s&^mask)
	}
}

// Len returns the number of flagged lines.
func (m *Map) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.lines)
}

func (m *Map) isDiffLocked(y int) bool {
	return m.lines[y]&StatusDiff != 0
}

// NextDiffLine returns the first line of the next diff hunk after y.
// Adjacent flagged lines count as one hunk, so a position inside a
// hunk jumps past it, not to its next line.
func (m *Map) NextDiffLine(y int) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.isDiffLocked(y) {
		for m.isDiffLocked(y + 1) {
			y++
		}
	}
	best, found := 0, false
	for line, s := range m.lines {
		if s&StatusDiff != 0 && line > y && (!found || line < best) {
			best, found = line, true
		}
	}
	return best, found
}

// PrevDiffLine returns the first line of the nearest diff hunk before
// y.
func (m *Map) PrevDiffLine(y int) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.isDiffLocked(y) {
		for y > 0 && m.isDiffLocked(y-1) {
			y--
		}
	}
	best, found := 0, false
	for line, s := range m.lines {
		if s&StatusDiff != 0 && line < y && (!found || line > best) {
			best, found = line, true
		}
	}
	if !found {
		return 0, false
	}
	for best > 0 && m.isDiffLocked(best-1) {
		best--
	}
	return best, true
}

// SetMultiCursorLines replaces the multi-cursor flags: every line in ys
// gets the flag, every other line loses it.
func (m *Map) SetMultiCursorLines(ys []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for y, s := range m.lines {
		m.setLocked(y, s&^StatusMultiCursor)
	}
	for _, y := range ys {
		m.setLocked(y, m.lines[y]|StatusMultiCursor)
	}
}

// LoadDiffJSON replaces the diff flags from a JSON hunk list:
//
//	[{"kind":"added","line":3,"count":2}, {"kind":"modified","line":9}]
//
// kind is added, removed or modified; count defaults to 1. Lines are
// 0-indexed. Unknown kinds fail the whole load.
func (m *Map) LoadDiffJSON(data string) error {
	parsed := gjson.Parse(data)
	if !parsed.IsArray() {
		return fmt.Errorf("diff json: expected array, got %s", parsed.Type)
	}
	type hunk struct {
		status Status
		line   int
		count  int
	}
	var hunks []hunk
	var parseErr error
	parsed.ForEach(func(_, v gjson.Result) bool {
		var st Status
		switch kind := v.Get("kind").String(); kind {
		case "added":
			st = StatusAdded
		case "removed":
			st = StatusRemoved
		case "modified":
			st = StatusModified
		default:
			parseErr = fmt.Errorf("diff json: unknown kind %q", kind)
			return false
		}
		count := 1
		if c := v.Get("count"); c.Exists() {
			count = int(c.Int())
		}
		hunks = append(hunks, hunk{status: st, line: int(v.Get("line").Int()), count: count})
		return true
	})
	if parseErr != nil {
		return parseErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for y, s := range m.lines {
		m.setLocked(y, s&^StatusDiff)
	}
	for _, h := range hunks {
		for i := 0; i < h.count; i++ {
			y := h.line + i
			m.setLocked(y, m.lines[y]|h.status)
		}
	}
	return nil
}

// ApplyChanges shifts flagged lines through buffer edits so existing
// flags track their text until the next diff refresh.
func (m *Map) ApplyChanges(changes []buffer.Change) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range changes {
		removed := ch.Range.Back.Y - ch.Range.Front.Y
		added := ch.NewPos.Y - ch.Range.Front.Y
		delta := added - removed
		if delta == 0 {
			continue
		}
		shifted := make(map[int]Status, len(m.lines))
		for y, s := range m.lines {
			switch {
			case y <= ch.Range.Front.Y:
				shifted[y] |= s
			case y <= ch.Range.Back.Y && delta < 0:
				// line consumed by the deletion, fold into the edit line
				shifted[ch.Range.Front.Y] |= s
			default:
				shifted[y+delta] |= s
			}
		}
		m.lines = shifted
	}
	for y, s := range m.lines {
		if s == 0 {
			delete(m.lines, y)
		}
	}
}
