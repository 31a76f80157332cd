// Package renderer draws a document onto a backend: reflowed text,
// a line-number gutter with diff markers, selections and the cursor.
package renderer

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/tcayer/quire/internal/engine/cursor"
	"github.com/tcayer/quire/internal/engine/document"
	"github.com/tcayer/quire/internal/renderer/backend"
	"github.com/tcayer/quire/internal/renderer/linemap"
	"github.com/tcayer/quire/internal/renderer/reflow"
	"github.com/tcayer/quire/internal/textwidth"
)

// Options controls how the view draws.
type Options struct {
	TabWidth   int
	SoftWrap   bool
	ShowGutter bool
}

// View renders a document. It owns the scroll position.
type View struct {
	be      backend.Backend
	lines   *linemap.Map
	opts    Options
	topLine int
}

// New returns a view drawing on be, with per-line flags from lines.
func New(be backend.Backend, lines *linemap.Map, opts Options) *View {
	if opts.TabWidth <= 0 {
		opts.TabWidth = 4
	}
	return &View{be: be, lines: lines, opts: opts}
}

// TopLine returns the first visible logical line.
func (v *View) TopLine() int { return v.topLine }

var (
	styleText      = tcell.StyleDefault
	styleSelection = tcell.StyleDefault.Reverse(true)
	styleGutter    = tcell.StyleDefault.Dim(true)
	styleAdded     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleRemoved   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleModified  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleZeroWidth = tcell.StyleDefault.Dim(true)
	styleCursors   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
)

// Render draws the document and flushes the backend.
func (v *View) Render(d *document.Document) {
	w, h := v.be.Size()
	if w <= 0 || h <= 0 {
		return
	}
	b := d.Buffer()
	v.lines.SetMultiCursorLines(secondaryCursorLines(d))

	gutterW := 0
	numW := 0
	if v.opts.ShowGutter {
		numW = textwidth.Int(b.NumLines())
		gutterW = numW + 2
	}
	textW := w - gutterW
	wrapW := 0
	if v.opts.SoftWrap {
		wrapW = textW
	}

	main := d.MainCursor().Moving
	v.scrollTo(main.Y, h)

	sels := selectionRanges(d)
	v.be.Clear()
	v.be.HideCursor()

	row := 0
	pi := reflow.NewParagraphIter(b, cursor.Position{Y: v.topLine})
	for row < h {
		para, ok := pi.Next()
		if !ok {
			break
		}
		if v.opts.ShowGutter {
			v.drawGutter(row, para.Y, numW)
		}
		paraRows := 1
		endCol := 0
		it := para.Reflow(b, wrapW, v.opts.TabWidth)
		for {
			item, ok := it.Next()
			if !ok {
				break
			}
			y := row + item.PosInScreen.Row
			if item.PosInScreen.Row+1 > paraRows {
				paraRows = item.PosInScreen.Row + 1
				endCol = 0
			}
			x := gutterW + item.PosInScreen.Col
			if y < h {
				v.drawItem(x, y, item, sels)
				if item.PosInBuffer == main {
					v.be.ShowCursor(x, y)
				}
			}
			endCol = item.PosInScreen.Col + item.Width
		}
		// a caret past the last char has no item of its own
		if main.Y == para.Y && main.X >= b.LineLen(para.Y) {
			y := row + paraRows - 1
			if y < h {
				v.be.ShowCursor(gutterW+endCol, y)
			}
		}
		row += paraRows
	}
	// the end position after a trailing newline sits on its own line
	if end := b.EndPosition(); main == end && end.X == 0 && end.Y >= b.NumLines() {
		if y := row; y < h {
			v.be.ShowCursor(gutterW, y)
		}
	}
	v.be.Show()
}

func (v *View) drawItem(x, y int, item reflow.Item, sels []cursor.Range) {
	style := styleText
	for _, r := range sels {
		if r.Contains(item.PosInBuffer) {
			style = styleSelection
			break
		}
	}
	switch item.Kind {
	case reflow.ItemWhitespaces:
		for i := 0; i < item.Width; i++ {
			v.be.SetCell(x+i, y, ' ', style)
		}
	case reflow.ItemZeroWidth:
		if style == styleText {
			style = styleZeroWidth
		}
		v.be.SetCell(x, y, '·', style)
	default:
		r := firstRune(item.Grapheme)
		v.be.SetCell(x, y, r, style)
		for i := 1; i < item.Width; i++ {
			v.be.SetCell(x+i, y, ' ', style)
		}
	}
}

func (v *View) drawGutter(row, line, numW int) {
	status := v.lines.Get(line)
	numStyle := styleGutter
	if status.Has(linemap.StatusMultiCursor) {
		numStyle = styleCursors
	}
	digits := []rune(formatLineNo(line + 1))
	for i := 0; i < numW; i++ {
		r := ' '
		if pad := numW - len(digits); i >= pad {
			r = digits[i-pad]
		}
		v.be.SetCell(i, row, r, numStyle)
	}
	marker, style := ' ', styleGutter
	switch {
	case status.Has(linemap.StatusModified):
		marker, style = '~', styleModified
	case status.Has(linemap.StatusAdded):
		marker, style = '+', styleAdded
	case status.Has(linemap.StatusRemoved):
		marker, style = '-', styleRemoved
	}
	v.be.SetCell(numW, row, marker, style)
	v.be.SetCell(numW+1, row, ' ', styleGutter)
}

// scrollTo keeps line y on screen.
func (v *View) scrollTo(y, h int) {
	if y < v.topLine {
		v.topLine = y
	}
	if y >= v.topLine+h {
		v.topLine = y - h + 1
	}
}

func selectionRanges(d *document.Document) []cursor.Range {
	var out []cursor.Range
	for _, c := range d.Cursors() {
		if c.HasSelection() {
			out = append(out, c.Range())
		}
	}
	return out
}

// secondaryCursorLines lists lines holding a cursor other than main.
func secondaryCursorLines(d *document.Document) []int {
	cs := d.Cursors()
	if len(cs) <= 1 {
		return nil
	}
	mainMoving := d.MainCursor().Moving
	var out []int
	for _, c := range cs {
		if c.Moving != mainMoving {
			out = append(out, c.Moving.Y)
		}
	}
	return out
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

func formatLineNo(n int) string {
	return strconv.Itoa(n)
}
