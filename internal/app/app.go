// Package app wires the editor together: config, logging, the
// document, the view, and the terminal event loop.
package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/tcayer/quire/internal/config"
	"github.com/tcayer/quire/internal/engine/document"
	"github.com/tcayer/quire/internal/notify"
	"github.com/tcayer/quire/internal/renderer"
	"github.com/tcayer/quire/internal/renderer/backend"
	"github.com/tcayer/quire/internal/renderer/linemap"
)

// ErrQuit signals a normal, user-requested shutdown.
var ErrQuit = errors.New("quit requested")

// Options come from the command line.
type Options struct {
	// ConfigPath overrides the default config location.
	ConfigPath string

	// Path is the file to edit. Empty opens a scratch buffer.
	Path string

	// LogLevel overrides the configured level when non-empty.
	LogLevel string
}

// App owns the editor state for one session.
type App struct {
	cfg    config.Config
	logger *zap.Logger
	sink   notify.Sink
	doc    *document.Document
	lines  *linemap.Map
	view   *renderer.View
	be     backend.Backend
	events backend.EventSource
	path   string

	// baseline is the on-disk text the diff gutter compares against.
	baseline    string
	lastVersion int
}

// New loads configuration, sets up logging and opens the file.
func New(opts Options) (*App, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	logger, err := buildLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	sink := notify.NewZap(logger)

	text := ""
	if opts.Path != "" {
		data, err := os.ReadFile(opts.Path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("open %s: %w", opts.Path, err)
		}
		text = string(data)
	}

	return &App{
		cfg:      cfg,
		logger:   logger,
		sink:     sink,
		doc:      document.New(text, sink),
		lines:    linemap.New(),
		path:     opts.Path,
		baseline: text,
	}, nil
}

// SetBackend attaches the screen the app draws on and the source of
// its input events.
func (a *App) SetBackend(be backend.Backend, events backend.EventSource) {
	a.be = be
	a.events = events
	a.view = renderer.New(be, a.lines, renderer.Options{
		TabWidth:   a.cfg.Editor.TabWidth,
		SoftWrap:   a.cfg.Editor.SoftWrap,
		ShowGutter: a.cfg.Editor.ShowDiffGutter,
	})
}

// Document exposes the edited document.
func (a *App) Document() *document.Document { return a.doc }

// Lines exposes the per-line status map.
func (a *App) Lines() *linemap.Map { return a.lines }

// Shutdown releases the terminal. Safe to call more than once.
func (a *App) Shutdown() {
	if a.be != nil {
		a.be.Shutdown()
	}
	_ = a.logger.Sync()
}

// Run drives the event loop until quit or backend exhaustion.
func (a *App) Run() error {
	if a.be == nil {
		return errors.New("no backend attached")
	}
	if err := a.be.Init(); err != nil {
		return fmt.Errorf("backend init: %w", err)
	}
	a.sink.Info("session started", "path", a.path)

	for {
		if v := a.doc.Version(); v != a.lastVersion {
			a.lastVersion = v
			a.lines.ApplyChanges(a.doc.TakeChanges())
			if err := a.lines.LoadDiff(a.baseline, a.doc.Text()); err != nil {
				a.sink.Warn("diff refresh failed", "err", err)
			}
		}
		a.view.Render(a.doc)

		ev := a.events.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			// next Render picks up the new size
		case *tcell.EventKey:
			if err := a.handleKey(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return err
				}
				a.sink.Warn("command failed", "err", err)
			}
		}
	}
}

func (a *App) handleKey(ev *tcell.EventKey) error {
	shift := ev.Modifiers()&tcell.ModShift != 0
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0

	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return ErrQuit
	case tcell.KeyCtrlS:
		return a.save()
	case tcell.KeyCtrlZ:
		return a.doc.Undo()
	case tcell.KeyCtrlY:
		return a.doc.Redo()
	case tcell.KeyCtrlA:
		a.doc.SelectWholeBuffer()
	case tcell.KeyCtrlL:
		a.doc.SelectWholeLine()
	case tcell.KeyCtrlW:
		a.doc.SelectCurrentWord()
	case tcell.KeyCtrlK:
		return a.doc.Truncate()
	case tcell.KeyCtrlU:
		return a.doc.DeleteCurrentWord()
	case tcell.KeyEscape:
		a.doc.RemoveSecondaryCursors()
	case tcell.KeyUp:
		a.move(document.Up, shift)
	case tcell.KeyDown:
		a.move(document.Down, shift)
	case tcell.KeyLeft:
		if ctrl {
			a.doc.MoveToPrevWord()
		} else {
			a.move(document.Left, shift)
		}
	case tcell.KeyRight:
		if ctrl {
			a.doc.MoveToNextWord()
		} else {
			a.move(document.Right, shift)
		}
	case tcell.KeyEnter:
		return a.doc.InsertString("\n")
	case tcell.KeyTab:
		return a.doc.InsertString("\t")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return a.doc.Backspace()
	case tcell.KeyDelete:
		return a.doc.Delete()
	case tcell.KeyRune:
		return a.doc.InsertChar(ev.Rune())
	}
	return nil
}

func (a *App) move(dir document.Direction, extend bool) {
	if extend {
		a.doc.Select(dir)
	} else {
		a.doc.Move(dir)
	}
}

func (a *App) save() error {
	if a.path == "" {
		return nil
	}
	text := a.doc.Text()
	if err := os.WriteFile(a.path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", a.path, err)
	}
	a.baseline = text
	a.lines.ClearMask(linemap.StatusDiff)
	a.sink.Info("saved", "path", a.path, "bytes", len(text))
	return nil
}
