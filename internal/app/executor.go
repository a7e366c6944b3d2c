package app

import (
	"log"
	"strings"

	"github.com/dshills/viterm/internal/input/vi"
	"github.com/dshills/viterm/internal/term"
)

// App implements vi.Executor against the scratch grid. The handler
// invokes these callbacks synchronously from handleKey, which already
// holds the app lock.
var _ vi.Executor = (*App)(nil)

// ModeChanged adjusts the cursor shape and the selection anchor.
func (a *App) ModeChanged(mode vi.Mode) {
	if mode == vi.ModeInsert {
		a.grid.SetCursorShape(term.CursorShapeBar)
	} else {
		a.grid.SetCursorShape(a.profile.CursorShape())
	}

	if mode.IsVisual() {
		anchor := a.grid.CursorPosition()
		a.selectionAnchor = &anchor
		a.grid.SetSelection(anchor, anchor)
	} else {
		a.selectionAnchor = nil
		a.grid.ClearSelection()
	}

	if a.opts.Debug {
		log.Printf("app: mode changed to %v", mode)
	}
}

// MoveCursor applies a motion count times and drags the selection when
// one is active.
func (a *App) MoveCursor(motion vi.Motion, count int) {
	pos := a.grid.CursorPosition()

	switch motion {
	case vi.MotionScreenColumn:
		// The count is the target column, not a repeat.
		pos.Column = a.clampColumn(count - 1)
	case vi.MotionSearchResultForward:
		a.JumpToNextMatch(count)
		return
	case vi.MotionSearchResultBackward:
		a.JumpToPreviousMatch(count)
		return
	default:
		for i := 0; i < count; i++ {
			pos = a.applyMotion(pos, motion)
		}
	}

	a.setCursor(pos)
}

// Execute performs an operator over the span of a motion. Yank marks
// the span with the transient highlight; the scratch terminal has no
// clipboard to fill.
func (a *App) Execute(op vi.Operator, motion vi.Motion, count int) {
	if op != vi.OpYank {
		log.Printf("app: operator %v over %v not supported", op, motion)
		return
	}

	cursor := a.grid.CursorPosition()
	switch motion {
	case vi.MotionSelection:
		if a.selectionAnchor != nil {
			a.grid.SetHighlight(*a.selectionAnchor, cursor)
		}
		a.handler.SetMode(vi.ModeNormal)
	case vi.MotionFullLine:
		last := a.clampLine(cursor.Line + count - 1)
		a.grid.SetHighlight(
			term.CellLocation{Line: cursor.Line},
			term.CellLocation{Line: last, Column: a.grid.PageSize().Columns - 1},
		)
	default:
		target := cursor
		for i := 0; i < count; i++ {
			target = a.applyMotion(target, motion)
		}
		a.grid.SetHighlight(cursor, target)
	}
}

// Yank highlights the text object at the cursor.
func (a *App) Yank(scope vi.TextObjectScope, textObject vi.TextObject) {
	first, second, ok := a.textObjectSpan(scope, textObject)
	if !ok {
		return
	}
	a.grid.SetHighlight(first, second)
}

// Select extends the visual selection over the text object at the
// cursor.
func (a *App) Select(scope vi.TextObjectScope, textObject vi.TextObject) {
	first, second, ok := a.textObjectSpan(scope, textObject)
	if !ok {
		return
	}
	a.selectionAnchor = &first
	a.grid.SetSelection(first, second)
	a.grid.SetCursor(second)
}

// Paste is a no-op: the scratch terminal has no clipboard.
func (a *App) Paste(count int) {
	log.Printf("app: paste x%d ignored, no clipboard attached", count)
}

// SearchStart opens an interactive search.
func (a *App) SearchStart() {
	a.searchActive = true
	a.searchTerm = ""
	a.grid.SetSearchPattern("")
}

// SearchCancel abandons the interactive search.
func (a *App) SearchCancel() {
	a.searchActive = false
	a.searchTerm = ""
	a.grid.SetSearchPattern("")
}

// SearchDone commits the interactive search and jumps to the first
// match.
func (a *App) SearchDone() {
	a.searchActive = false
	if a.searchTerm != "" {
		a.JumpToNextMatch(1)
	}
}

// UpdateSearchTerm tracks the in-progress search term.
func (a *App) UpdateSearchTerm(termText string) {
	a.searchTerm = termText
	a.grid.SetSearchPattern(termText)
}

// SearchCurrentWord searches forward for the word under the cursor.
func (a *App) SearchCurrentWord() {
	if word := a.wordAtCursor(); word != "" {
		a.searchTerm = word
		a.grid.SetSearchPattern(word)
		a.JumpToNextMatch(1)
	}
}

// ReverseSearchCurrentWord searches backward for the word under the
// cursor.
func (a *App) ReverseSearchCurrentWord() {
	if word := a.wordAtCursor(); word != "" {
		a.searchTerm = word
		a.grid.SetSearchPattern(word)
		a.JumpToPreviousMatch(1)
	}
}

// JumpToNextMatch advances the cursor across count search matches,
// wrapping at the bottom.
func (a *App) JumpToNextMatch(count int) {
	for i := 0; i < count; i++ {
		if !a.jumpMatch(true) {
			return
		}
	}
}

// JumpToPreviousMatch moves the cursor back across count search
// matches, wrapping at the top.
func (a *App) JumpToPreviousMatch(count int) {
	for i := 0; i < count; i++ {
		if !a.jumpMatch(false) {
			return
		}
	}
}

// ScrollViewport is a no-op: the scratch grid has no scrollback.
func (a *App) ScrollViewport(delta int) {
	if a.opts.Debug {
		log.Printf("app: scroll %+d ignored, no scrollback", delta)
	}
}

// setCursor clamps and moves the cursor, dragging an active selection.
func (a *App) setCursor(pos term.CellLocation) {
	pos.Line = a.clampLine(pos.Line)
	pos.Column = a.clampColumn(pos.Column)
	a.grid.SetCursor(pos)
	if a.selectionAnchor != nil {
		a.grid.SetSelection(*a.selectionAnchor, pos)
	}
}

func (a *App) clampLine(line int) int {
	if line < 0 {
		return 0
	}
	if max := a.grid.PageSize().Lines - 1; line > max {
		return max
	}
	return line
}

func (a *App) clampColumn(column int) int {
	if column < 0 {
		return 0
	}
	if max := a.grid.PageSize().Columns - 1; column > max {
		return max
	}
	return column
}

// jumpMatch moves the cursor to the adjacent match of the search
// pattern. Matches are located per line in reading order.
func (a *App) jumpMatch(forward bool) bool {
	pattern := string(a.grid.SearchPattern())
	if pattern == "" {
		return false
	}

	var matches []term.CellLocation
	lines := a.grid.PageSize().Lines
	for line := 0; line < lines; line++ {
		text := a.grid.LineText(line)
		offset := 0
		for {
			idx := strings.Index(text[offset:], pattern)
			if idx < 0 {
				break
			}
			column := len([]rune(text[:offset+idx]))
			matches = append(matches, term.CellLocation{Line: line, Column: column})
			offset += idx + len(pattern)
		}
	}
	if len(matches) == 0 {
		return false
	}

	cursor := a.grid.CursorPosition()
	if forward {
		for _, m := range matches {
			if cursor.Less(m) {
				a.setCursor(m)
				return true
			}
		}
		a.setCursor(matches[0])
	} else {
		for i := len(matches) - 1; i >= 0; i-- {
			if matches[i].Less(cursor) {
				a.setCursor(matches[i])
				return true
			}
		}
		a.setCursor(matches[len(matches)-1])
	}
	return true
}
