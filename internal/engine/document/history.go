package document

import (
	"errors"
	"sync"

	"github.com/tcayer/quire/internal/engine/buffer"
	"github.com/tcayer/quire/internal/engine/cursor"
)

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// revision is one undo step: the text and cursors before an edit batch.
type revision struct {
	snap    buffer.RawBuffer
	cursors []cursor.Cursor
	main    int
}

// history keeps bounded undo and redo stacks of revisions. Revisions
// hold rope snapshots, so a deep stack stays cheap.
type history struct {
	mu       sync.Mutex
	undo     []revision
	redo     []revision
	maxDepth int
}

func newHistory(maxDepth int) *history {
	if maxDepth <= 0 {
		maxDepth = 1000
	}
	return &history{maxDepth: maxDepth}
}

// record pushes rev as a new undo step. A fresh edit invalidates the
// redo stack.
func (h *history) record(rev revision) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undo = append(h.undo, rev)
	if len(h.undo) > h.maxDepth {
		h.undo = h.undo[1:]
	}
	h.redo = nil
}

// swapUndo pops the latest undo step and stores cur in its place on
// the redo stack.
func (h *history) swapUndo(cur revision) (revision, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := len(h.undo)
	if n == 0 {
		return revision{}, false
	}
	rev := h.undo[n-1]
	h.undo = h.undo[:n-1]
	h.redo = append(h.redo, cur)
	return rev, true
}

// swapRedo pops the latest redo step and stores cur back on the undo
// stack.
func (h *history) swapRedo(cur revision) (revision, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := len(h.redo)
	if n == 0 {
		return revision{}, false
	}
	rev := h.redo[n-1]
	h.redo = h.redo[:n-1]
	h.undo = append(h.undo, cur)
	return rev, true
}

// Undo reverts the last edit batch, cursors included.
func (d *Document) Undo() error {
	rev, ok := d.history.swapUndo(d.capture())
	if !ok {
		return ErrNothingToUndo
	}
	d.restore(rev)
	return nil
}

// Redo reapplies the last undone batch.
func (d *Document) Redo() error {
	rev, ok := d.history.swapRedo(d.capture())
	if !ok {
		return ErrNothingToRedo
	}
	d.restore(rev)
	return nil
}

func (d *Document) capture() revision {
	return revision{
		snap:    d.buf.Snapshot(),
		cursors: append([]cursor.Cursor(nil), d.cursors.Cursors()...),
		main:    d.cursors.MainIndex(),
	}
}

// restore swaps in a revision wholesale. The per-edit change records do
// not describe a restore, so pending changes are dropped rather than
// handed to consumers that would misapply them.
func (d *Document) restore(rev revision) {
	d.buf.Restore(rev.snap)
	d.buf.TakeChanges()
	d.pending = nil
	d.cursors.Replace(rev.cursors, rev.main)
}
