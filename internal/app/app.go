// Package app wires the editor, renderer and terminal backend into a
// running session and owns the main loop: wait for one event, apply it,
// render one frame.
package app

import (
	"github.com/dshills/vigor/internal/config"
	"github.com/dshills/vigor/internal/editor"
	"github.com/dshills/vigor/internal/renderer"
	"github.com/dshills/vigor/internal/renderer/backend"
	"github.com/dshills/vigor/internal/renderer/frame"
	"github.com/dshills/vigor/internal/renderer/highlight"
)

// Options configures a session.
type Options struct {
	// ConfigDir overrides the user configuration directory. Empty uses
	// the platform default.
	ConfigDir string

	// Files are files to open on startup. Only the first is opened;
	// further files are reachable with :e.
	Files []string
}

// App is one editor session: the editor state machine, the grid pair
// for diffed rendering and the terminal it draws on.
type App struct {
	ed   *editor.Editor
	term *backend.Terminal

	// current is built each frame and diffed against previous, then the
	// two swap. No cells are copied between frames.
	current  *renderer.Grid
	previous *renderer.Grid
}

// New creates a session on the process's real terminal.
func New(opts Options) (*App, error) {
	term, err := backend.NewTerminal()
	if err != nil {
		return nil, err
	}
	return NewWithTerminal(opts, term), nil
}

// NewWithTerminal creates a session on a supplied terminal backend,
// used in tests with a simulation screen.
func NewWithTerminal(opts Options, term *backend.Terminal) *App {
	cfgDir := opts.ConfigDir
	if cfgDir == "" {
		cfgDir = config.Dir()
	}

	// Configuration problems never stop the editor from starting; they
	// surface on the status line instead.
	var warning string
	cfg, err := config.Load(cfgDir)
	if err != nil {
		warning = err.Error()
	}

	theme := highlight.DefaultTheme()
	if cfg.Theme != "" {
		loaded, err := highlight.LoadTheme(cfg.Theme)
		if err != nil {
			warning = err.Error()
		} else {
			theme = loaded
		}
	}

	ed := editor.New(
		editor.WithTheme(theme),
		editor.WithTabWidth(cfg.TabWidth),
		editor.WithLineNumbers(cfg.LineNumbers),
	)
	if len(opts.Files) > 0 {
		ed.Open(opts.Files[0])
	}
	if warning != "" {
		ed.SetStatusMessage(warning)
	}

	return &App{
		ed:       ed,
		term:     term,
		current:  renderer.NewGrid(0, 0),
		previous: renderer.NewGrid(0, 0),
	}
}

// Close releases the terminal. Run does this itself on return; Close is
// for abnormal teardown paths such as signal handlers.
func (a *App) Close() {
	a.term.Fini()
}

// Editor exposes the session's editor, mainly for tests.
func (a *App) Editor() *editor.Editor {
	return a.ed
}

// Run acquires the terminal and drives the session until the editor
// quits. The terminal is restored on every return path.
func (a *App) Run() error {
	if err := a.term.Init(); err != nil {
		return err
	}
	defer a.term.Fini()

	w, h := a.term.Size()
	a.ed.Resize(w, h)

	for {
		a.ed.EnsureCursorVisible()
		a.renderFrame()

		switch ev := a.term.PollEvent(); ev.Type {
		case backend.EventKey:
			if a.ed.HandleKey(ev.Key) {
				return nil
			}
		case backend.EventResize:
			a.ed.Resize(ev.Width, ev.Height)
			a.term.Sync()
		}
	}
}

// renderFrame builds the next frame, pushes only the changed cells to
// the terminal and swaps the grid pair.
func (a *App) renderFrame() {
	cx, cy := frame.Build(a.ed, a.current)

	a.term.Apply(renderer.Diff(a.current, a.previous))
	a.term.SetCursorStyle(cursorShape(a.ed.Mode()))
	a.term.ShowCursor(cx, cy)
	a.term.Show()

	a.current, a.previous = a.previous, a.current
}

// cursorShape maps editor modes to hardware cursor shapes.
func cursorShape(m editor.Mode) backend.CursorStyle {
	switch m {
	case editor.ModeInsert:
		return backend.CursorBar
	case editor.ModeCommand:
		return backend.CursorUnderline
	default:
		return backend.CursorBlock
	}
}
