package reflow

import (
	"testing"

	"github.com/tcayer/quire/internal/engine/buffer"
	"github.com/tcayer/quire/internal/engine/cursor"
)

func pos(y, x int) cursor.Position { return cursor.Position{Y: y, X: x} }

func collect(t *testing.T, it *Iter) []Item {
	t.Helper()
	var out []Item
	for {
		item, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, item)
	}
}

func TestReflowLineBreakEmitsNothing(t *testing.T) {
	b := buffer.RawBufferFromString("abc\nd")
	items := collect(t, NewIter(b, pos(0, 0), 0, 4))
	want := []struct {
		g      string
		buf    cursor.Position
		screen ScreenPos
	}{
		{"a", pos(0, 0), ScreenPos{0, 0}},
		{"b", pos(0, 1), ScreenPos{0, 1}},
		{"c", pos(0, 2), ScreenPos{0, 2}},
		{"d", pos(1, 0), ScreenPos{1, 0}},
	}
	if len(items) != len(want) {
		t.Fatalf("items = %d, want %d", len(items), len(want))
	}
	for i, w := range want {
		it := items[i]
		if it.Grapheme != w.g || it.PosInBuffer != w.buf || it.PosInScreen != w.screen {
			t.Errorf("item %d = (%q, %v, %v), want (%q, %v, %v)",
				i, it.Grapheme, it.PosInBuffer, it.PosInScreen, w.g, w.buf, w.screen)
		}
		if it.Kind != ItemGrapheme || it.Width != 1 {
			t.Errorf("item %d kind/width = %v/%d", i, it.Kind, it.Width)
		}
	}
}

func TestReflowSpaceIsGrapheme(t *testing.T) {
	// only expanded tabs carry the whitespace kind
	b := buffer.RawBufferFromString("a b")
	items := collect(t, NewIter(b, pos(0, 0), 0, 4))
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	sp := items[1]
	if sp.Grapheme != " " || sp.Kind != ItemGrapheme || sp.Width != 1 {
		t.Errorf("space item = %+v, want grapheme of width 1", sp)
	}
}

func TestReflowTabStops(t *testing.T) {
	b := buffer.RawBufferFromString("a\tb\tc")
	items := collect(t, NewIter(b, pos(0, 0), 0, 4))
	want := []struct {
		g     string
		kind  ItemKind
		width int
		col   int
	}{
		{"a", ItemGrapheme, 1, 0},
		{"\t", ItemWhitespaces, 3, 1},
		{"b", ItemGrapheme, 1, 4},
		{"\t", ItemWhitespaces, 3, 5},
		{"c", ItemGrapheme, 1, 8},
	}
	for i, w := range want {
		it := items[i]
		if it.Grapheme != w.g || it.Kind != w.kind || it.Width != w.width || it.PosInScreen.Col != w.col {
			t.Errorf("item %d = %+v, want %+v", i, it, w)
		}
	}
}

func TestReflowTabAtStop(t *testing.T) {
	b := buffer.RawBufferFromString("\tx")
	items := collect(t, NewIter(b, pos(0, 0), 0, 4))
	if items[0].Width != 4 {
		t.Errorf("tab at column 0 width = %d, want 4", items[0].Width)
	}
	if items[1].PosInScreen.Col != 4 {
		t.Errorf("char after tab at col %d, want 4", items[1].PosInScreen.Col)
	}
}

func TestReflowWideChars(t *testing.T) {
	b := buffer.RawBufferFromString("日本x")
	items := collect(t, NewIter(b, pos(0, 0), 0, 4))
	wantCols := []int{0, 2, 4}
	wantWidths := []int{2, 2, 1}
	for i := range wantCols {
		if items[i].PosInScreen.Col != wantCols[i] || items[i].Width != wantWidths[i] {
			t.Errorf("item %d col/width = %d/%d, want %d/%d",
				i, items[i].PosInScreen.Col, items[i].Width, wantCols[i], wantWidths[i])
		}
	}
}

func TestReflowZeroWidthCluster(t *testing.T) {
	b := buffer.RawBufferFromString("a​b")
	items := collect(t, NewIter(b, pos(0, 0), 0, 4))
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	zw := items[1]
	if zw.Kind != ItemZeroWidth || zw.Width != 1 {
		t.Errorf("zero-width item = %+v", zw)
	}
	if items[2].PosInScreen.Col != 2 {
		t.Errorf("char after zero-width at col %d, want 2", items[2].PosInScreen.Col)
	}
}

func TestReflowSoftWrap(t *testing.T) {
	b := buffer.RawBufferFromString("abcdef")
	items := collect(t, NewIter(b, pos(0, 0), 4, 4))
	want := []ScreenPos{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}}
	for i, w := range want {
		if items[i].PosInScreen != w {
			t.Errorf("item %d screen = %v, want %v", i, items[i].PosInScreen, w)
		}
	}
}

func TestReflowWideCharWraps(t *testing.T) {
	// the wide char does not fit in the last column and wraps whole
	b := buffer.RawBufferFromString("abc日")
	items := collect(t, NewIter(b, pos(0, 0), 4, 4))
	last := items[3]
	if last.PosInScreen != (ScreenPos{1, 0}) {
		t.Errorf("wide char screen = %v, want row 1 col 0", last.PosInScreen)
	}
}

func TestReflowWrapResetsTabWidth(t *testing.T) {
	b := buffer.RawBufferFromString("abc\tz")
	items := collect(t, NewIter(b, pos(0, 0), 4, 4))
	tab := items[3]
	if tab.Grapheme != "\t" {
		t.Fatalf("item 3 = %+v", tab)
	}
	if tab.PosInScreen != (ScreenPos{0, 3}) || tab.Width != 1 {
		t.Errorf("tab fits before the wrap: %+v", tab)
	}
	if items[4].PosInScreen != (ScreenPos{1, 0}) {
		t.Errorf("char after tab = %v", items[4].PosInScreen)
	}
}

func TestReflowEmptyBuffer(t *testing.T) {
	b := buffer.RawBufferFromString("")
	if _, ok := NewIter(b, pos(0, 0), 80, 4).Next(); ok {
		t.Error("empty buffer should yield nothing")
	}
}

func TestParagraphReflowStopsAtLineEnd(t *testing.T) {
	b := buffer.RawBufferFromString("ab\ncd")
	pi := NewParagraphIter(b, pos(0, 0))
	p, ok := pi.Next()
	if !ok || p.Y != 0 {
		t.Fatalf("first paragraph = %+v, %v", p, ok)
	}
	items := collect(t, p.Reflow(b, 80, 4))
	if len(items) != 2 || items[0].Grapheme != "a" || items[1].Grapheme != "b" {
		t.Errorf("paragraph items = %+v", items)
	}
}

func TestParagraphIterForwardBackward(t *testing.T) {
	b := buffer.RawBufferFromString("a\nb\nc")
	it := NewParagraphIter(b, pos(0, 0))
	var ys []int
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		ys = append(ys, p.Y)
	}
	if len(ys) != 3 || ys[0] != 0 || ys[2] != 2 {
		t.Fatalf("forward ys = %v", ys)
	}
	p, ok := it.Prev()
	if !ok || p.Y != 2 {
		t.Errorf("Prev = %+v, %v", p, ok)
	}
	p, ok = it.Prev()
	if !ok || p.Y != 1 {
		t.Errorf("second Prev = %+v, %v", p, ok)
	}
}

func TestParagraphRangeIncludesNewline(t *testing.T) {
	b := buffer.RawBufferFromString("ab\ncd\n")
	it := NewParagraphIter(b, pos(0, 0))
	p, _ := it.Next()
	if p.Range.Back != pos(1, 0) {
		t.Errorf("paragraph 0 back = %v", p.Range.Back)
	}
	p, _ = it.Next()
	if p.Range.Back != pos(2, 0) {
		t.Errorf("paragraph 1 back = %v, trailing newline end", p.Range.Back)
	}
	if _, ok := it.Next(); ok {
		t.Error("trailing newline opens no extra paragraph")
	}
}

func TestReflowReproducesText(t *testing.T) {
	// concatenating item graphemes, with whitespace runs as spaces,
	// rebuilds the line with tabs expanded
	tests := []struct {
		text string
		want string
	}{
		{"a\tbc", "a   bc"},
		{"hello world", "hello world"},
		{"日本 語x", "日本 語x"},
		{"ab\tc\td", "ab  c   d"},
	}
	for _, tt := range tests {
		b := buffer.RawBufferFromString(tt.text)
		var got string
		for _, item := range collect(t, NewIter(b, pos(0, 0), 8, 4)) {
			switch item.Kind {
			case ItemWhitespaces:
				for i := 0; i < item.Width; i++ {
					got += " "
				}
			default:
				got += item.Grapheme
			}
		}
		if got != tt.want {
			t.Errorf("reflow of %q rebuilt %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestReflowColumnBound(t *testing.T) {
	b := buffer.RawBufferFromString("mixed 日本 text\twith\ttabs and 語 wide chars")
	for _, width := range []int{4, 8, 20} {
		for _, item := range collect(t, NewIter(b, pos(0, 0), width, 4)) {
			if item.PosInScreen.Col+item.Width > width && item.PosInScreen.Col > 0 {
				t.Errorf("width %d: item %q at col %d width %d overflows",
					width, item.Grapheme, item.PosInScreen.Col, item.Width)
			}
		}
	}
}
