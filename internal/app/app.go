// Package app wires the terminal application together: profile
// loading, the vi input handler, the scratch terminal grid, the frame
// builder, and the display backend.
package app

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/dshills/viterm/internal/config"
	"github.com/dshills/viterm/internal/input/key"
	"github.com/dshills/viterm/internal/input/vi"
	"github.com/dshills/viterm/internal/renderer"
	"github.com/dshills/viterm/internal/renderer/backend"
	"github.com/dshills/viterm/internal/term"
)

// ErrQuit signals a normal user-requested exit.
var ErrQuit = errors.New("quit")

// Options configures the application.
type Options struct {
	// ConfigPath is the profile file; empty uses the built-in
	// defaults.
	ConfigPath string

	// Debug enables verbose logging.
	Debug bool
}

// App is the running application.
type App struct {
	mu sync.Mutex

	opts    Options
	profile *config.Profile
	grid    *term.ScratchGrid
	handler *vi.Handler
	backend backend.Backend
	watcher *config.Watcher

	buffer renderer.RenderBuffer

	// selectionAnchor pins the fixed end of the visual selection.
	selectionAnchor *term.CellLocation

	searchActive bool
	searchTerm   string

	quit bool
}

// New creates an application from options. The backend is attached
// separately with SetBackend.
func New(opts Options) (*App, error) {
	profile := config.DefaultProfile()
	if opts.ConfigPath != "" {
		var err error
		if profile, err = config.Load(opts.ConfigPath); err != nil {
			return nil, err
		}
	}

	a := &App{
		opts:    opts,
		profile: profile,
	}
	if err := a.applyProfile(profile); err != nil {
		return nil, err
	}
	a.handler = vi.NewHandler(a)
	a.fillSampleContent()

	if opts.ConfigPath != "" {
		watcher, err := config.NewWatcher(opts.ConfigPath, a.reloadProfile)
		if err != nil {
			log.Printf("app: profile watcher disabled: %v", err)
		} else {
			a.watcher = watcher
		}
	}

	return a, nil
}

// SetBackend attaches the display backend.
func (a *App) SetBackend(b backend.Backend) error {
	if err := b.Init(); err != nil {
		return fmt.Errorf("initializing backend: %w", err)
	}
	a.mu.Lock()
	a.backend = b
	a.mu.Unlock()
	return nil
}

// Shutdown releases all resources. Safe to call more than once.
func (a *App) Shutdown() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.watcher != nil {
		_ = a.watcher.Close()
		a.watcher = nil
	}
	if a.backend != nil {
		a.backend.Shutdown()
		a.backend = nil
	}
}

// Run drives the event loop until quit. Returns ErrQuit on a normal
// exit.
func (a *App) Run() error {
	if a.backend == nil {
		return errors.New("app: no backend attached")
	}

	a.render()
	for {
		event := a.backend.PollEvent()

		a.mu.Lock()
		switch event.Type {
		case backend.EventKey:
			a.handleKey(event.Key)
		case backend.EventFocus:
			a.grid.SetFocused(event.Focused)
		case backend.EventResize:
			// The scratch grid keeps its configured size; a real
			// terminal would resize the page here.
		}
		quit := a.quit
		a.mu.Unlock()

		if quit {
			return ErrQuit
		}
		a.render()
	}
}

// handleKey routes one key event through the vi handler, falling back
// to insert-mode editing when the handler declines it.
func (a *App) handleKey(ev key.Event) {
	if ev.IsRune() {
		if ev.Rune == 'Q' && ev.Mod == key.ModCtrl {
			a.quit = true
			return
		}
		if a.handler.SendCharPressEvent(ev.Rune, ev.Mod) {
			return
		}
		a.insertChar(ev.Rune)
		return
	}
	if a.handler.SendKeyPressEvent(ev.Key, ev.Mod) {
		return
	}
	a.insertKey(ev.Key)
}

// insertChar applies a character in insert mode.
func (a *App) insertChar(ch rune) {
	cursor := a.grid.CursorPosition()
	size := a.grid.PageSize()

	switch ch {
	case 0x1B: // Escape leaves insert mode
		a.handler.SetMode(vi.ModeNormal)
	case 0x0D:
		if cursor.Line < size.Lines-1 {
			a.grid.SetCursor(term.CellLocation{Line: cursor.Line + 1})
		}
	case 0x7F, 0x08:
		if cursor.Column > 0 {
			cursor.Column--
			a.grid.SetCell(cursor, term.NewCell())
			a.grid.SetCursor(cursor)
		}
	default:
		if ch < 0x20 {
			return
		}
		cell := term.NewCell()
		cell.Codepoints = []rune{ch}
		a.grid.SetCell(cursor, cell)
		if cursor.Column < size.Columns-1 {
			cursor.Column++
		}
		a.grid.SetCursor(cursor)
	}
}

// insertKey applies a navigation key in insert mode.
func (a *App) insertKey(k key.Key) {
	switch k {
	case key.KeyUp:
		a.MoveCursor(vi.MotionLineUp, 1)
	case key.KeyDown:
		a.MoveCursor(vi.MotionLineDown, 1)
	case key.KeyLeft:
		a.MoveCursor(vi.MotionCharLeft, 1)
	case key.KeyRight:
		a.MoveCursor(vi.MotionCharRight, 1)
	case key.KeyHome:
		a.MoveCursor(vi.MotionLineBegin, 1)
	case key.KeyEnd:
		a.MoveCursor(vi.MotionLineEnd, 1)
	}
}

// render builds and paints one frame.
func (a *App) render() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.backend == nil {
		return
	}

	a.grid.AdvanceFrame()
	renderer.Build(a.grid, &a.buffer, renderer.BuildOptions{
		HighlightSearchMatches: a.profile.HighlightSearchMatches && len(a.grid.SearchPattern()) > 0,
	})
	a.backend.Paint(&a.buffer)
	a.backend.Show()
}

// applyProfile materializes a profile into the grid.
func (a *App) applyProfile(profile *config.Profile) error {
	palette, err := profile.Palette()
	if err != nil {
		return err
	}
	if a.grid == nil {
		a.grid = term.NewScratchGrid(profile.Lines, profile.Columns)
	}
	a.grid.SetPalette(palette)
	a.grid.SetCursorShape(profile.CursorShape())
	a.profile = profile
	return nil
}

// reloadProfile is the watcher callback for live profile reload.
func (a *App) reloadProfile(profile *config.Profile) {
	a.mu.Lock()
	if err := a.applyProfile(profile); err != nil {
		log.Printf("app: profile rejected: %v", err)
		a.mu.Unlock()
		return
	}
	a.mu.Unlock()

	log.Printf("app: profile reloaded")
	a.render()
}

// fillSampleContent seeds the grid with text to navigate.
func (a *App) fillSampleContent() {
	attrs := term.DefaultGraphicsAttributes()
	lines := []string{
		"viterm - vi-style terminal navigation",
		"",
		"Movement: h j k l w b e { } 0 ^ $ G g H L",
		"Visual:   v (char), V (line), Ctrl+V (block)",
		"Yank:     yy, yiw, yaw, ya(, Y",
		"Search:   / to edit, n/N to jump, * and # for word",
		"",
		"The quick brown fox jumps over the lazy dog.",
		"(nested (parentheses) and [brackets] to match)",
	}
	size := a.grid.PageSize()
	for i, text := range lines {
		if i >= size.Lines {
			break
		}
		a.grid.SetText(i, text, attrs)
	}
	if size.Lines > len(lines)+1 {
		a.grid.SetTrivialLine(len(lines)+1, "trivial line: single-style fast path", attrs, attrs)
	}
}
