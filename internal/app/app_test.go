package app

import (
	"testing"

	"github.com/dshills/viterm/internal/input/key"
	"github.com/dshills/viterm/internal/input/vi"
	"github.com/dshills/viterm/internal/term"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	clearGrid(a)
	return a
}

// clearGrid blanks the sample content so tests control every line.
func clearGrid(a *App) {
	attrs := term.DefaultGraphicsAttributes()
	for i := 0; i < a.grid.PageSize().Lines; i++ {
		a.grid.SetText(i, "", attrs)
	}
	a.grid.SetCursor(term.CellLocation{})
}

func setLine(a *App, line int, text string) {
	a.grid.SetText(line, text, term.DefaultGraphicsAttributes())
}

func TestApplyMotionTable(t *testing.T) {
	a := newTestApp(t)
	setLine(a, 5, "  hello world")
	start := term.CellLocation{Line: 5, Column: 7}

	lines := a.grid.PageSize().Lines
	tests := []struct {
		motion vi.Motion
		want   term.CellLocation
	}{
		{vi.MotionCharLeft, term.CellLocation{Line: 5, Column: 6}},
		{vi.MotionCharRight, term.CellLocation{Line: 5, Column: 8}},
		{vi.MotionLineUp, term.CellLocation{Line: 4, Column: 7}},
		{vi.MotionLineDown, term.CellLocation{Line: 6, Column: 7}},
		{vi.MotionLineBegin, term.CellLocation{Line: 5, Column: 0}},
		{vi.MotionLineTextBegin, term.CellLocation{Line: 5, Column: 2}},
		{vi.MotionLineEnd, term.CellLocation{Line: 5, Column: 12}},
		{vi.MotionFileBegin, term.CellLocation{}},
		{vi.MotionFileEnd, term.CellLocation{Line: lines - 1}},
		{vi.MotionPageTop, term.CellLocation{Line: 0, Column: 7}},
		{vi.MotionPageBottom, term.CellLocation{Line: lines - 1, Column: 7}},
		{vi.MotionPageUp, term.CellLocation{Line: 0, Column: 7}},
		{vi.MotionPageDown, term.CellLocation{Line: 5 + lines/2, Column: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.motion.String(), func(t *testing.T) {
			if got := a.applyMotion(start, tt.motion); got != tt.want {
				t.Errorf("applyMotion(%v, %v) = %v, want %v", start, tt.motion, got, tt.want)
			}
		})
	}
}

func TestApplyMotionClampsAtEdges(t *testing.T) {
	a := newTestApp(t)
	columns := a.grid.PageSize().Columns

	if got := a.applyMotion(term.CellLocation{}, vi.MotionCharLeft); got != (term.CellLocation{}) {
		t.Errorf("charLeft at origin = %v", got)
	}
	if got := a.applyMotion(term.CellLocation{}, vi.MotionLineUp); got != (term.CellLocation{}) {
		t.Errorf("lineUp at origin = %v", got)
	}
	edge := term.CellLocation{Column: columns - 1}
	if got := a.applyMotion(edge, vi.MotionCharRight); got != edge {
		t.Errorf("charRight at right edge = %v", got)
	}
}

func TestWordMotions(t *testing.T) {
	a := newTestApp(t)
	setLine(a, 0, "foo bar_baz !! qux")

	tests := []struct {
		name   string
		motion vi.Motion
		from   int
		want   int
	}{
		{"w to next word", vi.MotionWordForward, 0, 4},
		{"w skips underscores", vi.MotionWordForward, 4, 12},
		{"w from punctuation run", vi.MotionWordForward, 12, 15},
		{"b to punctuation start", vi.MotionWordBackward, 15, 12},
		{"b to line start", vi.MotionWordBackward, 4, 0},
		{"e inside word", vi.MotionWordEndForward, 0, 2},
		{"e to next word end", vi.MotionWordEndForward, 2, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.applyMotion(term.CellLocation{Column: tt.from}, tt.motion)
			if got != (term.CellLocation{Column: tt.want}) {
				t.Errorf("from column %d = %v, want column %d", tt.from, got, tt.want)
			}
		})
	}
}

func TestWordMotionWrapsLines(t *testing.T) {
	a := newTestApp(t)
	setLine(a, 0, "ab")
	setLine(a, 1, "  cd")

	if got := a.applyMotion(term.CellLocation{}, vi.MotionWordForward); got != (term.CellLocation{Line: 1, Column: 2}) {
		t.Errorf("w across lines = %v, want (1, 2)", got)
	}
	if got := a.applyMotion(term.CellLocation{Line: 1, Column: 2}, vi.MotionWordBackward); got != (term.CellLocation{Line: 0, Column: 1}) {
		t.Errorf("b across lines = %v, want (0, 1)", got)
	}
}

func TestParagraphMotions(t *testing.T) {
	a := newTestApp(t)
	setLine(a, 0, "one")
	setLine(a, 2, "two")

	if got := a.applyMotion(term.CellLocation{}, vi.MotionParagraphForward); got != (term.CellLocation{Line: 1}) {
		t.Errorf("paragraph forward = %v, want (1, 0)", got)
	}
	if got := a.applyMotion(term.CellLocation{Line: 2}, vi.MotionParagraphBackward); got != (term.CellLocation{Line: 1}) {
		t.Errorf("paragraph backward = %v, want (1, 0)", got)
	}
}

func TestMatchingBracket(t *testing.T) {
	a := newTestApp(t)
	setLine(a, 0, "a (b [c] d)")

	tests := []struct {
		name string
		from int
		want int
	}{
		{"seeks next bracket on line", 0, 10},
		{"inner pair backward", 7, 5},
		{"inner pair forward", 3, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.applyMotion(term.CellLocation{Column: tt.from}, vi.MotionParenthesisMatching)
			if got != (term.CellLocation{Column: tt.want}) {
				t.Errorf("%% from column %d = %v, want column %d", tt.from, got, tt.want)
			}
		})
	}

	t.Run("no bracket stays put", func(t *testing.T) {
		setLine(a, 1, "plain text")
		from := term.CellLocation{Line: 1, Column: 0}
		if got := a.applyMotion(from, vi.MotionParenthesisMatching); got != from {
			t.Errorf("%% without brackets = %v, want %v", got, from)
		}
	})
}

func TestMatchingBracketAcrossLines(t *testing.T) {
	a := newTestApp(t)
	setLine(a, 0, "func {")
	setLine(a, 1, "  body")
	setLine(a, 2, "}")

	got := a.applyMotion(term.CellLocation{Column: 5}, vi.MotionParenthesisMatching)
	if got != (term.CellLocation{Line: 2, Column: 0}) {
		t.Errorf("multi-line match = %v, want (2, 0)", got)
	}
}

func TestTextObjectSpans(t *testing.T) {
	a := newTestApp(t)
	setLine(a, 0, "foo bar baz")
	setLine(a, 1, `say "hi there" ok`)
	setLine(a, 2, "x (a (b) c)")

	tests := []struct {
		name       string
		cursor     term.CellLocation
		scope      vi.TextObjectScope
		object     vi.TextObject
		wantFirst  term.CellLocation
		wantSecond term.CellLocation
	}{
		{
			"inner word", term.CellLocation{Column: 5},
			vi.ScopeInner, vi.TextObjectWord,
			term.CellLocation{Column: 4}, term.CellLocation{Column: 6},
		},
		{
			"a word swallows trailing blank", term.CellLocation{Column: 5},
			vi.ScopeA, vi.TextObjectWord,
			term.CellLocation{Column: 4}, term.CellLocation{Column: 7},
		},
		{
			"inner quotes", term.CellLocation{Line: 1, Column: 6},
			vi.ScopeInner, vi.TextObjectDoubleQuotes,
			term.CellLocation{Line: 1, Column: 5}, term.CellLocation{Line: 1, Column: 12},
		},
		{
			"around quotes", term.CellLocation{Line: 1, Column: 6},
			vi.ScopeA, vi.TextObjectDoubleQuotes,
			term.CellLocation{Line: 1, Column: 4}, term.CellLocation{Line: 1, Column: 13},
		},
		{
			"innermost brackets", term.CellLocation{Line: 2, Column: 6},
			vi.ScopeInner, vi.TextObjectRoundBrackets,
			term.CellLocation{Line: 2, Column: 6}, term.CellLocation{Line: 2, Column: 6},
		},
		{
			"outer brackets from between pairs", term.CellLocation{Line: 2, Column: 8},
			vi.ScopeA, vi.TextObjectRoundBrackets,
			term.CellLocation{Line: 2, Column: 2}, term.CellLocation{Line: 2, Column: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a.grid.SetCursor(tt.cursor)
			first, second, ok := a.textObjectSpan(tt.scope, tt.object)
			if !ok {
				t.Fatal("no span found")
			}
			if first != tt.wantFirst || second != tt.wantSecond {
				t.Errorf("span = %v..%v, want %v..%v", first, second, tt.wantFirst, tt.wantSecond)
			}
		})
	}
}

func TestTextObjectSpanFailures(t *testing.T) {
	a := newTestApp(t)
	setLine(a, 0, "()")
	setLine(a, 1, "no pair here")

	a.grid.SetCursor(term.CellLocation{})
	if _, _, ok := a.textObjectSpan(vi.ScopeInner, vi.TextObjectRoundBrackets); ok {
		t.Error("empty pair yielded an inner span")
	}

	a.grid.SetCursor(term.CellLocation{Line: 1})
	if _, _, ok := a.textObjectSpan(vi.ScopeA, vi.TextObjectDoubleQuotes); ok {
		t.Error("quote span found without quotes")
	}
}

func TestParagraphSpan(t *testing.T) {
	a := newTestApp(t)
	setLine(a, 1, "first")
	setLine(a, 2, "second")
	columns := a.grid.PageSize().Columns

	a.grid.SetCursor(term.CellLocation{Line: 2})
	first, second, ok := a.textObjectSpan(vi.ScopeInner, vi.TextObjectParagraph)
	if !ok {
		t.Fatal("no paragraph span")
	}
	if first != (term.CellLocation{Line: 1}) {
		t.Errorf("first = %v, want (1, 0)", first)
	}
	if second != (term.CellLocation{Line: 2, Column: columns - 1}) {
		t.Errorf("second = %v", second)
	}
}

func TestJumpToMatches(t *testing.T) {
	a := newTestApp(t)
	setLine(a, 0, "alpha beta")
	setLine(a, 2, "beta alpha")
	a.grid.SetSearchPattern("beta")

	a.JumpToNextMatch(1)
	if got := a.grid.CursorPosition(); got != (term.CellLocation{Line: 0, Column: 6}) {
		t.Fatalf("first jump = %v, want (0, 6)", got)
	}

	a.JumpToNextMatch(1)
	if got := a.grid.CursorPosition(); got != (term.CellLocation{Line: 2, Column: 0}) {
		t.Fatalf("second jump = %v, want (2, 0)", got)
	}

	// Past the last match the jump wraps to the top.
	a.JumpToNextMatch(1)
	if got := a.grid.CursorPosition(); got != (term.CellLocation{Line: 0, Column: 6}) {
		t.Fatalf("wrapped jump = %v, want (0, 6)", got)
	}

	// Backward from the first match wraps to the bottom.
	a.JumpToPreviousMatch(1)
	if got := a.grid.CursorPosition(); got != (term.CellLocation{Line: 2, Column: 0}) {
		t.Fatalf("backward wrap = %v, want (2, 0)", got)
	}
}

func TestSearchCurrentWord(t *testing.T) {
	a := newTestApp(t)
	setLine(a, 0, "alpha beta")
	setLine(a, 2, "beta alpha")

	a.SearchCurrentWord()
	if got := a.grid.CursorPosition(); got != (term.CellLocation{Line: 2, Column: 5}) {
		t.Errorf("cursor = %v, want (2, 5)", got)
	}
	if got := string(a.grid.SearchPattern()); got != "alpha" {
		t.Errorf("pattern = %q, want \"alpha\"", got)
	}
}

func TestSearchLifecycle(t *testing.T) {
	a := newTestApp(t)
	setLine(a, 3, "needle")

	a.SearchStart()
	a.UpdateSearchTerm("needle")
	if got := string(a.grid.SearchPattern()); got != "needle" {
		t.Fatalf("pattern = %q during edit", got)
	}

	a.SearchDone()
	if got := a.grid.CursorPosition(); got != (term.CellLocation{Line: 3}) {
		t.Errorf("cursor = %v after done, want (3, 0)", got)
	}

	a.SearchStart()
	a.SearchCancel()
	if got := string(a.grid.SearchPattern()); got != "" {
		t.Errorf("pattern = %q after cancel, want empty", got)
	}
}

func TestModeChanged(t *testing.T) {
	a := newTestApp(t)
	a.grid.SetCursor(term.CellLocation{Line: 1, Column: 2})

	a.ModeChanged(vi.ModeInsert)
	if got := a.grid.CursorShape(); got != term.CursorShapeBar {
		t.Errorf("insert cursor shape = %v, want bar", got)
	}

	a.ModeChanged(vi.ModeVisual)
	if got := a.grid.CursorShape(); got != term.CursorShapeBlock {
		t.Errorf("visual cursor shape = %v, want block", got)
	}
	if !a.grid.IsSelected(term.CellLocation{Line: 1, Column: 2}) {
		t.Error("visual mode did not anchor a selection at the cursor")
	}

	a.ModeChanged(vi.ModeNormal)
	if a.grid.IsSelected(term.CellLocation{Line: 1, Column: 2}) {
		t.Error("selection survived leaving visual mode")
	}
}

func TestMoveCursorDragsSelection(t *testing.T) {
	a := newTestApp(t)
	setLine(a, 0, "abcdef")

	a.ModeChanged(vi.ModeVisual)
	a.MoveCursor(vi.MotionCharRight, 3)

	if got := a.grid.CursorPosition(); got != (term.CellLocation{Column: 3}) {
		t.Fatalf("cursor = %v, want (0, 3)", got)
	}
	for col := 0; col <= 3; col++ {
		if !a.grid.IsSelected(term.CellLocation{Column: col}) {
			t.Errorf("column %d not selected", col)
		}
	}
	if a.grid.IsSelected(term.CellLocation{Column: 4}) {
		t.Error("selection extends past the cursor")
	}
}

func TestMoveCursorScreenColumn(t *testing.T) {
	a := newTestApp(t)
	a.MoveCursor(vi.MotionScreenColumn, 5)
	if got := a.grid.CursorPosition(); got != (term.CellLocation{Column: 4}) {
		t.Errorf("cursor = %v, want column 4", got)
	}
}

func TestExecuteYankFullLine(t *testing.T) {
	a := newTestApp(t)
	columns := a.grid.PageSize().Columns
	a.grid.SetCursor(term.CellLocation{Line: 2})

	a.Execute(vi.OpYank, vi.MotionFullLine, 2)

	if !a.grid.IsHighlighted(term.CellLocation{Line: 2}) {
		t.Error("first yanked line not highlighted")
	}
	if !a.grid.IsHighlighted(term.CellLocation{Line: 3, Column: columns - 1}) {
		t.Error("second yanked line not highlighted")
	}
	if a.grid.IsHighlighted(term.CellLocation{Line: 4}) {
		t.Error("highlight extends past the yanked lines")
	}
}

func TestYankSelectionReturnsToNormal(t *testing.T) {
	a := newTestApp(t)
	setLine(a, 0, "abcdef")

	a.handler.SetMode(vi.ModeVisual)
	a.MoveCursor(vi.MotionCharRight, 2)
	a.Execute(vi.OpYank, vi.MotionSelection, 1)

	if a.handler.Mode() != vi.ModeNormal {
		t.Errorf("mode = %v after yanking the selection, want normal", a.handler.Mode())
	}
	if !a.grid.IsHighlighted(term.CellLocation{Column: 1}) {
		t.Error("yanked span not highlighted")
	}
}

func TestYankTextObjectHighlights(t *testing.T) {
	a := newTestApp(t)
	setLine(a, 0, "say (hello) now")
	a.grid.SetCursor(term.CellLocation{Column: 7})

	a.Yank(vi.ScopeInner, vi.TextObjectRoundBrackets)

	if !a.grid.IsHighlighted(term.CellLocation{Column: 5}) ||
		!a.grid.IsHighlighted(term.CellLocation{Column: 9}) {
		t.Error("inner bracket span not highlighted")
	}
	if a.grid.IsHighlighted(term.CellLocation{Column: 4}) {
		t.Error("opening bracket highlighted by an inner yank")
	}
}

func TestSelectTextObjectMovesCursor(t *testing.T) {
	a := newTestApp(t)
	setLine(a, 0, "foo bar baz")
	a.grid.SetCursor(term.CellLocation{Column: 5})

	a.Select(vi.ScopeInner, vi.TextObjectWord)

	if !a.grid.IsSelected(term.CellLocation{Column: 4}) || !a.grid.IsSelected(term.CellLocation{Column: 6}) {
		t.Error("word span not selected")
	}
	if got := a.grid.CursorPosition(); got != (term.CellLocation{Column: 6}) {
		t.Errorf("cursor = %v, want end of span", got)
	}
}

func TestHandleKeyQuitChord(t *testing.T) {
	a := newTestApp(t)
	a.handleKey(key.NewRuneEvent('Q', key.ModCtrl))
	if !a.quit {
		t.Error("Ctrl+Q did not request quit")
	}
}

func TestInsertModeEditing(t *testing.T) {
	a := newTestApp(t)
	a.handler.SetMode(vi.ModeInsert)

	a.handleKey(key.NewRuneEvent('h', key.ModNone))
	a.handleKey(key.NewRuneEvent('i', key.ModNone))

	if got := a.grid.LineText(0)[:2]; got != "hi" {
		t.Errorf("line = %q, want it to start with \"hi\"", got)
	}
	if got := a.grid.CursorPosition(); got != (term.CellLocation{Column: 2}) {
		t.Errorf("cursor = %v, want column 2", got)
	}

	// Backspace erases the previous cell.
	a.handleKey(key.NewRuneEvent(0x7F, key.ModNone))
	if got := a.grid.LineText(0)[:2]; got != "h " {
		t.Errorf("line after backspace = %q", got)
	}

	// Escape drops back to normal mode.
	a.handleKey(key.NewRuneEvent(0x1B, key.ModNone))
	if a.handler.Mode() != vi.ModeNormal {
		t.Errorf("mode = %v after escape, want normal", a.handler.Mode())
	}
}
