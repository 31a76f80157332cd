package backend

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Memory implements Backend on an in-memory grid. Tests assert against
// its contents.
type Memory struct {
	width   int
	height  int
	runes   [][]rune
	styles  [][]tcell.Style
	CursorX int
	CursorY int
	cursor  bool
}

// NewMemory returns a grid of the given size filled with spaces.
func NewMemory(width, height int) *Memory {
	m := &Memory{width: width, height: height}
	m.Clear()
	return m
}

func (m *Memory) Init() error { return nil }
func (m *Memory) Shutdown()   {}

func (m *Memory) Size() (int, int) { return m.width, m.height }

func (m *Memory) SetCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.runes[y][x] = r
	m.styles[y][x] = style
}

func (m *Memory) ShowCursor(x, y int) {
	m.CursorX, m.CursorY = x, y
	m.cursor = true
}

func (m *Memory) HideCursor() { m.cursor = false }

// CursorVisible reports whether the cursor is shown.
func (m *Memory) CursorVisible() bool { return m.cursor }

func (m *Memory) Clear() {
	m.runes = make([][]rune, m.height)
	m.styles = make([][]tcell.Style, m.height)
	for y := range m.runes {
		m.runes[y] = make([]rune, m.width)
		m.styles[y] = make([]tcell.Style, m.width)
		for x := range m.runes[y] {
			m.runes[y][x] = ' '
		}
	}
}

func (m *Memory) Show() {}

// Row returns row y as a string, trailing blanks trimmed.
func (m *Memory) Row(y int) string {
	if y < 0 || y >= m.height {
		return ""
	}
	return strings.TrimRight(string(m.runes[y]), " ")
}

// StyleAt returns the style of a cell.
func (m *Memory) StyleAt(x, y int) tcell.Style {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return tcell.StyleDefault
	}
	return m.styles[y][x]
}
