// Package reflow turns buffer text into screen-positioned items: it
// expands tabs to the next tab stop, gives wide chars two columns,
// makes zero-width clusters visible in one column, and soft-wraps at
// the screen width. Line breaks themselves produce no item; they only
// advance the screen row.
package reflow

import (
	"strings"

	"github.com/tcayer/quire/internal/engine/buffer"
	"github.com/tcayer/quire/internal/engine/cursor"
	"github.com/tcayer/quire/internal/textwidth"
)

// ItemKind classifies a reflow item.
type ItemKind int

const (
	// ItemGrapheme is a visible grapheme cluster.
	ItemGrapheme ItemKind = iota

	// ItemWhitespaces is a run of blank columns from an expanded tab.
	ItemWhitespaces

	// ItemZeroWidth is a cluster with no display width, shown in a
	// single placeholder column so the cursor can sit on it.
	ItemZeroWidth
)

// ScreenPos is a display coordinate: a wrapped row and a column.
type ScreenPos struct {
	Row int
	Col int
}

// Item is one positioned unit of display.
type Item struct {
	Kind        ItemKind
	Grapheme    string
	Width       int
	PosInBuffer cursor.Position
	PosInScreen ScreenPos
}

// Iter walks the buffer emitting items in screen order.
type Iter struct {
	g           *buffer.GraphemeIter
	screenWidth int
	tabWidth    int
	screen      ScreenPos
	bounded     bool
	until       cursor.Position
}

// NewIter reflows from the given buffer position at column zero of row
// zero. screenWidth of zero or less disables soft wrapping. tabWidth
// must be positive.
func NewIter(b buffer.RawBuffer, from cursor.Position, screenWidth, tabWidth int) *Iter {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	return &Iter{
		g:           buffer.NewGraphemeIter(b, from),
		screenWidth: screenWidth,
		tabWidth:    tabWidth,
	}
}

// Next returns the next item. Line breaks are consumed silently; false
// means the text is exhausted.
func (it *Iter) Next() (Item, bool) {
	for {
		p := it.g.Position()
		if it.bounded && !p.Before(it.until) {
			return Item{}, false
		}
		cluster, ok := it.g.Next()
		if !ok {
			return Item{}, false
		}
		if strings.HasSuffix(cluster, "\n") {
			it.screen = ScreenPos{Row: it.screen.Row + 1}
			continue
		}

		kind, width := it.classify(cluster)
		if it.wouldWrap(width) {
			it.screen = ScreenPos{Row: it.screen.Row + 1}
			if kind == ItemWhitespaces {
				// tab width depends on the column it lands in
				_, width = it.classify(cluster)
			}
		}
		item := Item{
			Kind:        kind,
			Grapheme:    cluster,
			Width:       width,
			PosInBuffer: p,
			PosInScreen: it.screen,
		}
		it.screen.Col += width
		return item, true
	}
}

func (it *Iter) classify(cluster string) (ItemKind, int) {
	if cluster == "\t" {
		return ItemWhitespaces, it.tabWidth*(it.screen.Col/it.tabWidth+1) - it.screen.Col
	}
	w := textwidth.String(cluster)
	if w == 0 {
		return ItemZeroWidth, 1
	}
	return ItemGrapheme, w
}

func (it *Iter) wouldWrap(width int) bool {
	return it.screenWidth > 0 &&
		it.screen.Col > 0 &&
		it.screen.Col+width > it.screenWidth
}
