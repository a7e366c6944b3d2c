package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/viterm/internal/input/key"
	"github.com/dshills/viterm/internal/renderer"
	"github.com/dshills/viterm/internal/term"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}

	t.screen.EnableMouse()
	t.screen.EnableFocus()

	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// Paint draws one frame: the compact lines first, then the cell runs,
// then the cursor.
func (t *Terminal) Paint(frame *renderer.RenderBuffer) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()

	for i := range frame.Lines {
		t.paintLine(&frame.Lines[i])
	}
	for i := range frame.Cells {
		t.paintCell(&frame.Cells[i])
	}
	t.paintCursor(frame.Cursor)
}

func (t *Terminal) paintLine(line *renderer.RenderLine) {
	textStyle := convertAttributes(line.TextAttributes)
	column := 0
	for _, cluster := range term.GraphemeClusters(line.Text) {
		runes := []rune(cluster)
		var comb []rune
		if len(runes) > 1 {
			comb = runes[1:]
		}
		t.screen.SetContent(column, line.LineOffset, runes[0], comb, textStyle)
		column += term.GraphemeClusterWidth(runes)
	}

	fillStyle := convertAttributes(line.FillAttributes)
	for ; column < line.DisplayWidth; column++ {
		t.screen.SetContent(column, line.LineOffset, ' ', nil, fillStyle)
	}
}

func (t *Terminal) paintCell(cell *renderer.RenderCell) {
	mainc := ' '
	var comb []rune
	if len(cell.Codepoints) > 0 {
		mainc = cell.Codepoints[0]
		if len(cell.Codepoints) > 1 {
			comb = cell.Codepoints[1:]
		}
	}
	t.screen.SetContent(cell.Position.Column, cell.Position.Line, mainc, comb, convertAttributes(cell.Attributes))
}

func (t *Terminal) paintCursor(cursor *renderer.RenderCursor) {
	if cursor == nil {
		t.screen.HideCursor()
		return
	}
	t.screen.SetCursorStyle(convertCursorShape(cursor.Shape))
	t.screen.ShowCursor(cursor.Position.Column, cursor.Position.Line)
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) PollEvent() Event {
	return convertEvent(t.screen.PollEvent())
}

func (t *Terminal) PostEvent(event Event) {
	if event.Type != EventKey {
		return
	}
	tcellEv := tcell.NewEventKey(convertToTcellKey(event.Key), event.Key.Rune, convertToTcellMod(event.Key.Mod))
	_ = t.screen.PostEvent(tcellEv) // best-effort; event queue may be full
}

func (t *Terminal) HasTrueColor() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Colors() > 256
}

func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.screen.Beep() // best-effort; terminal may not support beep
}

func (t *Terminal) EnableMouse() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.EnableMouse()
}

func (t *Terminal) DisableMouse() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.DisableMouse()
}

func (t *Terminal) Suspend() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Suspend()
}

func (t *Terminal) Resume() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Resume()
}

// convertAttributes converts resolved render attributes to a
// tcell.Style. Colors arrive fully resolved, so color-bearing flags
// (inverse, hidden, faint) are not re-applied here; only decorations
// and font styling are.
func convertAttributes(a renderer.RenderAttributes) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(convertColor(a.Foreground)).
		Background(convertColor(a.Background))

	if a.Flags.Has(term.FlagBold) {
		style = style.Bold(true)
	}
	if a.Flags.Has(term.FlagItalic) {
		style = style.Italic(true)
	}
	if a.Flags.HasAny(term.FlagBlinking | term.FlagRapidBlinking) {
		style = style.Blink(true)
	}
	if a.Flags.Has(term.FlagCrossedOut) {
		style = style.StrikeThrough(true)
	}

	const underlineFlags = term.FlagUnderline | term.FlagDoublyUnderlined |
		term.FlagCurlyUnderlined | term.FlagDottedUnderline | term.FlagDashedUnderline
	if a.Flags.HasAny(underlineFlags) {
		style = style.Underline(true, convertColor(a.Decoration))
	}

	return style
}

func convertColor(c term.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func convertCursorShape(s term.CursorShape) tcell.CursorStyle {
	switch s {
	case term.CursorShapeUnderscore:
		return tcell.CursorStyleSteadyUnderline
	case term.CursorShapeBar:
		return tcell.CursorStyleSteadyBar
	default:
		// tcell has no hollow rectangle; a steady block is the closest
		// unfocused shape.
		return tcell.CursorStyleSteadyBlock
	}
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			Key:  convertKeyEvent(e),
		}

	case *tcell.EventMouse:
		x, y := e.Position()
		return Event{
			Type:        EventMouse,
			MouseX:      x,
			MouseY:      y,
			MouseButton: convertMouseButton(e.Buttons()),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{
			Type:   EventResize,
			Width:  w,
			Height: h,
		}

	case *tcell.EventPaste:
		return Event{
			Type:    EventPaste,
			Focused: e.Start(),
		}

	case *tcell.EventFocus:
		return Event{
			Type:    EventFocus,
			Focused: e.Focused,
		}

	default:
		return Event{Type: EventNone}
	}
}

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyInsert: key.KeyInsert,
	tcell.KeyHome:   key.KeyHome,
	tcell.KeyEnd:    key.KeyEnd,
	tcell.KeyPgUp:   key.KeyPageUp,
	tcell.KeyPgDn:   key.KeyPageDown,
	tcell.KeyUp:     key.KeyUp,
	tcell.KeyDown:   key.KeyDown,
	tcell.KeyLeft:   key.KeyLeft,
	tcell.KeyRight:  key.KeyRight,
}

// convertKeyEvent converts one tcell key event into the input model:
// navigation keys stay key events, everything else becomes a rune
// event. Escape, Enter and Backspace arrive as their control runes;
// Ctrl+letter arrives as the uppercase letter with the Ctrl modifier.
func convertKeyEvent(e *tcell.EventKey) key.Event {
	mod := convertMod(e.Modifiers())

	if k, ok := specialKeys[e.Key()]; ok {
		return key.NewKeyEvent(k, mod)
	}

	switch {
	case e.Key() == tcell.KeyEscape:
		return key.NewRuneEvent(0x1B, mod)
	case e.Key() == tcell.KeyEnter:
		return key.NewRuneEvent(0x0D, mod)
	case e.Key() == tcell.KeyBackspace || e.Key() == tcell.KeyBackspace2:
		return key.NewRuneEvent(0x7F, mod)
	case e.Key() == tcell.KeyTab:
		return key.NewRuneEvent(0x09, mod)
	case e.Key() >= tcell.KeyCtrlA && e.Key() <= tcell.KeyCtrlZ:
		ch := rune('A' + e.Key() - tcell.KeyCtrlA)
		return key.NewRuneEvent(ch, mod.With(key.ModCtrl))
	default:
		return key.NewRuneEvent(e.Rune(), mod)
	}
}

// convertToTcellKey converts our Key to tcell.Key.
func convertToTcellKey(e key.Event) tcell.Key {
	if e.IsRune() {
		switch e.Rune {
		case 0x1B:
			return tcell.KeyEscape
		case 0x0D:
			return tcell.KeyEnter
		case 0x7F:
			return tcell.KeyBackspace2
		default:
			return tcell.KeyRune
		}
	}
	for tk, k := range specialKeys {
		if k == e.Key {
			return tk
		}
	}
	return tcell.KeyRune
}

// convertMod converts tcell modifier mask to our Modifier.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result = result.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		result = result.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		result = result.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		result = result.With(key.ModMeta)
	}
	return result
}

// convertToTcellMod converts our Modifier to tcell.ModMask.
func convertToTcellMod(m key.Modifier) tcell.ModMask {
	var result tcell.ModMask
	if m.Has(key.ModShift) {
		result |= tcell.ModShift
	}
	if m.Has(key.ModCtrl) {
		result |= tcell.ModCtrl
	}
	if m.Has(key.ModAlt) {
		result |= tcell.ModAlt
	}
	if m.Has(key.ModMeta) {
		result |= tcell.ModMeta
	}
	return result
}

// convertMouseButton converts tcell button mask to our MouseButton.
func convertMouseButton(b tcell.ButtonMask) MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return MouseLeft
	case b&tcell.Button2 != 0:
		return MouseMiddle
	case b&tcell.Button3 != 0:
		return MouseRight
	case b&tcell.WheelUp != 0:
		return MouseWheelUp
	case b&tcell.WheelDown != 0:
		return MouseWheelDown
	default:
		return MouseNone
	}
}
