package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/tcayer/quire/internal/renderer/backend"
)

// scripted replays a fixed sequence of events, then reports exhaustion.
type scripted struct {
	events []tcell.Event
}

func (s *scripted) PollEvent() tcell.Event {
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func key(k tcell.Key, r rune, mod tcell.ModMask) tcell.Event {
	return tcell.NewEventKey(k, r, mod)
}

func ch(r rune) tcell.Event { return key(tcell.KeyRune, r, tcell.ModNone) }

func newTestApp(t *testing.T, text string, events ...tcell.Event) (*App, *backend.Memory) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	a, err := New(Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
		Path:       path,
	})
	if err != nil {
		t.Fatal(err)
	}
	be := backend.NewMemory(40, 10)
	a.SetBackend(be, &scripted{events: events})
	return a, be
}

func TestRunTypesText(t *testing.T) {
	a, _ := newTestApp(t, "",
		ch('h'), ch('i'),
		key(tcell.KeyEnter, 0, tcell.ModNone),
	)
	if err := a.Run(); err != nil {
		t.Fatal(err)
	}
	if got := a.Document().Text(); got != "hi\n" {
		t.Errorf("text = %q", got)
	}
}

func TestRunQuit(t *testing.T) {
	a, _ := newTestApp(t, "abc",
		ch('x'),
		key(tcell.KeyCtrlQ, 0, tcell.ModNone),
		ch('y'), // never reached
	)
	err := a.Run()
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("err = %v, want ErrQuit", err)
	}
	if got := a.Document().Text(); got != "xabc" {
		t.Errorf("text = %q", got)
	}
}

func TestRunRendersDocument(t *testing.T) {
	a, be := newTestApp(t, "one\ntwo\n")
	if err := a.Run(); err != nil {
		t.Fatal(err)
	}
	if got := be.Row(0); got != "1  one" {
		t.Errorf("row 0 = %q", got)
	}
	if got := be.Row(1); got != "2  two" {
		t.Errorf("row 1 = %q", got)
	}
}

func TestEditFlagsDiffGutter(t *testing.T) {
	a, be := newTestApp(t, "one\ntwo\n",
		ch('X'),
	)
	if err := a.Run(); err != nil {
		t.Fatal(err)
	}
	if got := be.Row(0); got != "1~ Xone" {
		t.Errorf("row 0 = %q", got)
	}
	if got := be.Row(1); got != "2  two" {
		t.Errorf("row 1 = %q", got)
	}
}

func TestUndoRestoresText(t *testing.T) {
	a, _ := newTestApp(t, "abc",
		ch('x'),
		key(tcell.KeyCtrlZ, 0, tcell.ModNone),
	)
	if err := a.Run(); err != nil {
		t.Fatal(err)
	}
	if got := a.Document().Text(); got != "abc" {
		t.Errorf("text = %q", got)
	}
}

func TestSaveWritesFile(t *testing.T) {
	a, _ := newTestApp(t, "old",
		key(tcell.KeyCtrlA, 0, tcell.ModNone),
		key(tcell.KeyDelete, 0, tcell.ModNone),
		ch('n'), ch('e'), ch('w'),
		key(tcell.KeyCtrlS, 0, tcell.ModNone),
	)
	if err := a.Run(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(a.path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("file = %q", data)
	}
}

func TestBackspaceAndMovement(t *testing.T) {
	a, _ := newTestApp(t, "abc",
		key(tcell.KeyRight, 0, tcell.ModNone),
		key(tcell.KeyRight, 0, tcell.ModNone),
		key(tcell.KeyBackspace2, 0, tcell.ModNone),
	)
	if err := a.Run(); err != nil {
		t.Fatal(err)
	}
	if got := a.Document().Text(); got != "ac" {
		t.Errorf("text = %q", got)
	}
}

func TestWordMotionWithCtrl(t *testing.T) {
	a, _ := newTestApp(t, "foo bar baz",
		key(tcell.KeyRight, 0, tcell.ModCtrl),
		key(tcell.KeyRight, 0, tcell.ModCtrl),
	)
	if err := a.Run(); err != nil {
		t.Fatal(err)
	}
	// cursor parked at the start of "baz"
	if got := a.Document().MainCursor().Moving.X; got != 8 {
		t.Errorf("cursor X = %d, want 8", got)
	}
}

func TestNewWithMissingFileOpensEmpty(t *testing.T) {
	a, err := New(Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
		Path:       filepath.Join(t.TempDir(), "does-not-exist.txt"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := a.Document().Text(); got != "" {
		t.Errorf("text = %q", got)
	}
}
