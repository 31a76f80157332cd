package document

import (
	"github.com/tcayer/quire/internal/engine/buffer"
	"github.com/tcayer/quire/internal/engine/cursor"
)

var bracketPairs = map[rune]rune{
	'(': ')',
	'{': '}',
	'[': ']',
	'<': '>',
}

var bracketPairsRev = map[rune]rune{
	')': '(',
	'}': '{',
	']': '[',
	'>': '<',
}

// MatchingBracket returns the position of the bracket matching the one
// nearest p: the bracket at p, or failing that the one just before it.
// Nesting of the same pair is respected: in "{{{}}}" the first brace
// matches the last. Returns false when neither neighbor is a bracket
// or the match is missing.
func (d *Document) MatchingBracket(p cursor.Position) (cursor.Position, bool) {
	b := d.buf.Snapshot()
	q, ch, ok := findBracketNearby(b, p)
	if !ok {
		return cursor.Position{}, false
	}
	if closing, isOpen := bracketPairs[ch]; isOpen {
		return scanForward(b, q, ch, closing)
	}
	return scanBackward(b, q, bracketPairsRev[ch], ch)
}

// findBracketNearby locates the bracket char at p, falling back to the
// char preceding p.
func findBracketNearby(b buffer.RawBuffer, p cursor.Position) (cursor.Position, rune, bool) {
	if ch, ok := b.CharAt(p); ok && isBracket(ch) {
		return p, ch, true
	}
	it := buffer.NewCharIter(b, p)
	if ch, ok := it.Prev(); ok && isBracket(ch) {
		return it.Position(), ch, true
	}
	return cursor.Position{}, 0, false
}

func isBracket(r rune) bool {
	if _, ok := bracketPairs[r]; ok {
		return true
	}
	_, ok := bracketPairsRev[r]
	return ok
}

func scanForward(b buffer.RawBuffer, p cursor.Position, opening, closing rune) (cursor.Position, bool) {
	it := buffer.NewCharIter(b, p)
	depth := 0
	for {
		r, ok := it.Next()
		if !ok {
			return cursor.Position{}, false
		}
		switch r {
		case opening:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return it.LastPosition(), true
			}
		}
	}
}

func scanBackward(b buffer.RawBuffer, p cursor.Position, opening, closing rune) (cursor.Position, bool) {
	// start just past the closing bracket so it is the first char seen
	it := buffer.NewCharIter(b, p)
	it.Next()
	depth := 0
	for {
		r, ok := it.Prev()
		if !ok {
			return cursor.Position{}, false
		}
		switch r {
		case closing:
			depth++
		case opening:
			depth--
			if depth == 0 {
				return it.Position(), true
			}
		}
	}
}

// MatchingBracketAtCursor runs MatchingBracket at the main caret.
func (d *Document) MatchingBracketAtCursor() (cursor.Position, bool) {
	return d.MatchingBracket(d.cursors.Main().Moving)
}
