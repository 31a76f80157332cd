package buffer

import (
	"strings"

	"github.com/tcayer/quire/internal/engine/cursor"
)

// Word is a run of word chars with its location.
type Word struct {
	Range cursor.Range
	Text  string
}

// WordIter yields words in either direction. Next returns words whose
// start is at or after the iterator position; Prev returns words that
// end at or before it.
type WordIter struct {
	chars *CharIter
}

// NewWordIter starts at from.
func NewWordIter(b RawBuffer, from cursor.Position) *WordIter {
	return &WordIter{chars: NewCharIter(b, from)}
}

// NewWordIterFromBeginningOfWord starts at the beginning of the word
// containing from, so the first Next returns that whole word even when
// from is in its middle.
func NewWordIterFromBeginningOfWord(b RawBuffer, from cursor.Position) *WordIter {
	it := &WordIter{chars: NewCharIter(b, from)}
	for {
		r, ok := it.chars.Prev()
		if !ok {
			break
		}
		if !isWordTail(r) {
			it.chars.Next()
			break
		}
	}
	return it
}

// NewWordIterFromEndOfWord starts at the end of the word containing
// from, so the first Prev returns that whole word.
func NewWordIterFromEndOfWord(b RawBuffer, from cursor.Position) *WordIter {
	it := &WordIter{chars: NewCharIter(b, from)}
	for {
		r, ok := it.chars.Next()
		if !ok {
			break
		}
		if !isWordTail(r) {
			it.chars.Prev()
			break
		}
	}
	return it
}

// Position returns the current iterator position.
func (it *WordIter) Position() cursor.Position { return it.chars.Position() }

// Next returns the next word at or after the current position and
// leaves the iterator just past it.
func (it *WordIter) Next() (Word, bool) {
	for {
		r, ok := it.chars.Next()
		if !ok {
			return Word{}, false
		}
		if !isWordHead(r) {
			continue
		}
		start := it.chars.LastPosition()
		var text strings.Builder
		text.WriteRune(r)
		for {
			r, ok := it.chars.Next()
			if !ok {
				break
			}
			if !isWordTail(r) {
				it.chars.Prev()
				break
			}
			text.WriteRune(r)
		}
		return Word{
			Range: cursor.NewRange(start, it.chars.Position()),
			Text:  text.String(),
		}, true
	}
}

// Prev returns the previous word ending at or before the current
// position and leaves the iterator at its start.
func (it *WordIter) Prev() (Word, bool) {
	for {
		r, ok := it.chars.Prev()
		if !ok {
			return Word{}, false
		}
		if !isWordTail(r) {
			continue
		}
		end := cursor.Position{Y: it.chars.Position().Y, X: it.chars.Position().X + 1}
		var rev []rune
		rev = append(rev, r)
		for {
			r, ok := it.chars.Prev()
			if !ok {
				break
			}
			if !isWordTail(r) {
				it.chars.Next()
				break
			}
			rev = append(rev, r)
		}
		// rev holds the run backwards; the word is the suffix of the
		// run starting at its first head char in document order
		headAt := -1
		run := reverseRunes(rev)
		for i, rr := range run {
			if isWordHead(rr) {
				headAt = i
				break
			}
		}
		if headAt < 0 {
			// run of digits or hyphens only, keep scanning back
			continue
		}
		runStart := it.chars.Position()
		front := cursor.Position{Y: runStart.Y, X: runStart.X + headAt}
		// park the iterator at the word start
		for i := 0; i < headAt; i++ {
			it.chars.Next()
		}
		return Word{
			Range: cursor.NewRange(front, end),
			Text:  string(run[headAt:]),
		}, true
	}
}

func reverseRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[len(rs)-1-i] = r
	}
	return out
}
