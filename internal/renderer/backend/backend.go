// Package backend abstracts the output surface the renderer draws on:
// a real terminal via tcell, or an in-memory grid for tests.
package backend

import "github.com/gdamore/tcell/v2"

// Backend is a drawable cell grid.
type Backend interface {
	Init() error
	Shutdown()
	Size() (width, height int)
	SetCell(x, y int, r rune, style tcell.Style)
	ShowCursor(x, y int)
	HideCursor()
	Clear()
	Show()
}

// EventSource is implemented by backends that produce input events.
type EventSource interface {
	PollEvent() tcell.Event
}
