package buffer

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/tcayer/quire/internal/engine/cursor"
)

// ErrEditRejected is returned when an edit cannot be applied: the range
// does not address valid positions or the text is not valid UTF-8. A
// rejected edit leaves the buffer untouched.
var ErrEditRejected = errors.New("edit rejected")

// ErrInvalidPosition marks a position or range that does not address
// the current buffer. It always arrives wrapped in ErrEditRejected.
var ErrInvalidPosition = errors.New("invalid position")

// ByteSpan is a half-open byte range.
type ByteSpan struct {
	Start int
	End   int
}

// Change records one applied edit. Range and ByteSpan use pre-edit
// coordinates; NewPos is where the inserted text ends afterwards.
type Change struct {
	Range      cursor.Range
	ByteSpan   ByteSpan
	NewPos     cursor.Position
	InsertText string
}

// MutableBuffer is a RawBuffer with edits. Reads go through the
// embedded RawBuffer. Every applied edit bumps the version counter and
// appends a Change record for downstream consumers.
type MutableBuffer struct {
	RawBuffer
	version int
	changes []Change
}

// NewMutableBuffer returns a mutable buffer holding s.
func NewMutableBuffer(s string) *MutableBuffer {
	return &MutableBuffer{RawBuffer: RawBufferFromString(s)}
}

// Version returns the edit counter. It only ever grows.
func (m *MutableBuffer) Version() int { return m.version }

// Snapshot returns the current text as an immutable RawBuffer. The
// snapshot is O(1) and stays valid across later edits.
func (m *MutableBuffer) Snapshot() RawBuffer { return m.RawBuffer }

// Restore replaces the text with a snapshot taken earlier. The version
// still advances; a restore is itself an edit.
func (m *MutableBuffer) Restore(snap RawBuffer) {
	m.RawBuffer = snap
	m.version++
}

// Edit replaces the text in r with text and returns the range the
// replacement occupies in the new coordinates. It fails with
// ErrEditRejected when r is not a valid range or text is not valid
// UTF-8, leaving the buffer unchanged.
func (m *MutableBuffer) Edit(r cursor.Range, text string) (cursor.Range, error) {
	if !utf8.ValidString(text) {
		return cursor.Range{}, fmt.Errorf("%w: text is not valid UTF-8", ErrEditRejected)
	}
	if !m.IsValidRange(r) {
		return cursor.Range{}, fmt.Errorf("%w: %w: range %v", ErrEditRejected, ErrInvalidPosition, r)
	}
	span := ByteSpan{Start: m.PosToByte(r.Front), End: m.PosToByte(r.Back)}
	m.RawBuffer = RawBufferFromRope(m.Rope().Replace(span.Start, span.End, text))
	m.version++
	newPos := cursor.PositionAfterEdit(r.Front, text)
	m.changes = append(m.changes, Change{
		Range:      r,
		ByteSpan:   span,
		NewPos:     newPos,
		InsertText: text,
	})
	return cursor.Range{Front: r.Front, Back: newPos}, nil
}

// Insert places text at p without replacing anything.
func (m *MutableBuffer) Insert(p cursor.Position, text string) (cursor.Range, error) {
	return m.Edit(cursor.Range{Front: p, Back: p}, text)
}

// Clear discards all text.
func (m *MutableBuffer) Clear() {
	end := m.EndPosition()
	if end == (cursor.Position{}) {
		return
	}
	// full range of a non-empty buffer is always valid
	_, _ = m.Edit(cursor.Range{Back: end}, "")
}

// SetString replaces the whole text, bypassing change recording. Used
// when loading a file.
func (m *MutableBuffer) SetString(s string) {
	m.RawBuffer = RawBufferFromString(s)
	m.version++
	m.changes = nil
}

// Changes returns the edits applied since the last TakeChanges.
func (m *MutableBuffer) Changes() []Change { return m.changes }

// TakeChanges returns accumulated changes and resets the list.
func (m *MutableBuffer) TakeChanges() []Change {
	c := m.changes
	m.changes = nil
	return c
}
