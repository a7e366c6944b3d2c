package app

import (
	"strings"
	"unicode"

	"github.com/dshills/viterm/internal/input/vi"
	"github.com/dshills/viterm/internal/term"
)

// applyMotion computes the cursor position after one step of a motion.
func (a *App) applyMotion(pos term.CellLocation, motion vi.Motion) term.CellLocation {
	size := a.grid.PageSize()

	switch motion {
	case vi.MotionCharLeft:
		pos.Column--
	case vi.MotionCharRight:
		pos.Column++
	case vi.MotionLineUp:
		pos.Line--
	case vi.MotionLineDown:
		pos.Line++
	case vi.MotionLineBegin:
		pos.Column = 0
	case vi.MotionLineTextBegin:
		pos.Column = firstNonBlank(a.grid.LineText(a.clampLine(pos.Line)))
	case vi.MotionLineEnd:
		pos.Column = lastNonBlank(a.grid.LineText(a.clampLine(pos.Line)))
	case vi.MotionFileBegin:
		pos = term.CellLocation{}
	case vi.MotionFileEnd:
		pos = term.CellLocation{Line: size.Lines - 1}
	case vi.MotionPageTop:
		pos.Line = 0
	case vi.MotionPageBottom:
		pos.Line = size.Lines - 1
	case vi.MotionPageUp:
		pos.Line -= size.Lines / 2
	case vi.MotionPageDown:
		pos.Line += size.Lines / 2
	case vi.MotionParagraphBackward:
		pos = a.paragraphStep(pos, -1)
	case vi.MotionParagraphForward:
		pos = a.paragraphStep(pos, +1)
	case vi.MotionParenthesisMatching:
		if match, ok := a.matchingBracket(pos); ok {
			pos = match
		}
	case vi.MotionWordForward:
		pos = a.wordStep(pos, wordStepForward)
	case vi.MotionWordBackward:
		pos = a.wordStep(pos, wordStepBackward)
	case vi.MotionWordEndForward:
		pos = a.wordStep(pos, wordStepEndForward)
	}

	pos.Line = a.clampLine(pos.Line)
	pos.Column = a.clampColumn(pos.Column)
	return pos
}

// charClass groups runes for word motions: blanks, word characters,
// and everything else.
type charClass int

const (
	classBlank charClass = iota
	classWord
	classOther
)

func classify(r rune) charClass {
	switch {
	case unicode.IsSpace(r):
		return classBlank
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	default:
		return classOther
	}
}

type wordStepKind int

const (
	wordStepForward wordStepKind = iota
	wordStepBackward
	wordStepEndForward
)

// wordStep performs one vi word motion over the flattened line text,
// wrapping across line boundaries.
func (a *App) wordStep(pos term.CellLocation, kind wordStepKind) term.CellLocation {
	size := a.grid.PageSize()
	line := []rune(a.grid.LineText(a.clampLine(pos.Line)))
	col := pos.Column

	at := func(c int) charClass {
		if c < 0 || c >= len(line) {
			return classBlank
		}
		return classify(line[c])
	}

	switch kind {
	case wordStepForward:
		cls := at(col)
		for col < len(line) && at(col) == cls && cls != classBlank {
			col++
		}
		for col < len(line) && at(col) == classBlank {
			col++
		}
		if col >= len(line) && pos.Line < size.Lines-1 {
			next := a.grid.LineText(pos.Line + 1)
			return term.CellLocation{Line: pos.Line + 1, Column: firstNonBlank(next)}
		}

	case wordStepBackward:
		col--
		for col >= 0 && at(col) == classBlank {
			col--
		}
		if col < 0 {
			if pos.Line == 0 {
				return term.CellLocation{Line: 0}
			}
			prev := a.grid.LineText(pos.Line - 1)
			return term.CellLocation{Line: pos.Line - 1, Column: lastNonBlank(prev)}
		}
		cls := at(col)
		for col > 0 && at(col-1) == cls {
			col--
		}

	case wordStepEndForward:
		col++
		for col < len(line) && at(col) == classBlank {
			col++
		}
		if col >= len(line) {
			if pos.Line == size.Lines-1 {
				return pos
			}
			next := a.grid.LineText(pos.Line + 1)
			start := firstNonBlank(next)
			return a.wordEndAt(term.CellLocation{Line: pos.Line + 1, Column: start})
		}
		return a.wordEndAt(term.CellLocation{Line: pos.Line, Column: col})
	}

	return term.CellLocation{Line: pos.Line, Column: col}
}

// wordEndAt returns the last column of the class run containing pos.
func (a *App) wordEndAt(pos term.CellLocation) term.CellLocation {
	line := []rune(a.grid.LineText(pos.Line))
	if pos.Column >= len(line) {
		return pos
	}
	cls := classify(line[pos.Column])
	col := pos.Column
	for col+1 < len(line) && classify(line[col+1]) == cls {
		col++
	}
	return term.CellLocation{Line: pos.Line, Column: col}
}

// paragraphStep moves to the next blank line in the given direction.
func (a *App) paragraphStep(pos term.CellLocation, dir int) term.CellLocation {
	size := a.grid.PageSize()
	for line := pos.Line + dir; line >= 0 && line < size.Lines; line += dir {
		if strings.TrimSpace(a.grid.LineText(line)) == "" {
			return term.CellLocation{Line: line}
		}
	}
	if dir < 0 {
		return term.CellLocation{}
	}
	return term.CellLocation{Line: size.Lines - 1}
}

var bracketPairs = map[rune]struct {
	other   rune
	forward bool
}{
	'(': {')', true},
	'[': {']', true},
	'{': {'}', true},
	')': {'(', false},
	']': {'[', false},
	'}': {'{', false},
}

// matchingBracket finds the partner of the bracket at or after the
// cursor on the current line, scanning the whole page for the match.
func (a *App) matchingBracket(pos term.CellLocation) (term.CellLocation, bool) {
	line := []rune(a.grid.LineText(a.clampLine(pos.Line)))

	// Like vi, % first seeks the next bracket on the line.
	col := pos.Column
	for col < len(line) {
		if _, ok := bracketPairs[line[col]]; ok {
			break
		}
		col++
	}
	if col >= len(line) {
		return term.CellLocation{}, false
	}

	open := line[col]
	pair := bracketPairs[open]
	depth := 0
	size := a.grid.PageSize()

	step := func(p term.CellLocation) (term.CellLocation, bool) {
		if pair.forward {
			p.Column++
			for p.Line < size.Lines {
				if p.Column >= len([]rune(a.grid.LineText(p.Line))) {
					p.Line++
					p.Column = 0
					continue
				}
				return p, true
			}
			return p, false
		}
		p.Column--
		for p.Line >= 0 {
			if p.Column < 0 {
				p.Line--
				if p.Line < 0 {
					return p, false
				}
				p.Column = len([]rune(a.grid.LineText(p.Line))) - 1
				continue
			}
			return p, true
		}
		return p, false
	}

	p := term.CellLocation{Line: pos.Line, Column: col}
	for {
		text := []rune(a.grid.LineText(p.Line))
		if p.Column < len(text) {
			switch text[p.Column] {
			case open:
				depth++
			case pair.other:
				depth--
				if depth == 0 {
					return p, true
				}
			}
		}
		var ok bool
		if p, ok = step(p); !ok {
			return term.CellLocation{}, false
		}
	}
}

// wordAtCursor extracts the word under or after the cursor.
func (a *App) wordAtCursor() string {
	pos := a.grid.CursorPosition()
	line := []rune(a.grid.LineText(a.clampLine(pos.Line)))
	col := pos.Column
	for col < len(line) && classify(line[col]) != classWord {
		col++
	}
	if col >= len(line) {
		return ""
	}
	start := col
	for start > 0 && classify(line[start-1]) == classWord {
		start--
	}
	end := col
	for end+1 < len(line) && classify(line[end+1]) == classWord {
		end++
	}
	return string(line[start : end+1])
}

// textObjectSpan computes the grid span of a text object at the
// cursor.
func (a *App) textObjectSpan(scope vi.TextObjectScope, textObject vi.TextObject) (term.CellLocation, term.CellLocation, bool) {
	pos := a.grid.CursorPosition()
	pos.Line = a.clampLine(pos.Line)

	switch textObject {
	case vi.TextObjectWord:
		return a.wordSpan(pos, scope)
	case vi.TextObjectParagraph:
		return a.paragraphSpan(pos)
	case vi.TextObjectRoundBrackets:
		return a.delimitedSpan(pos, scope, '(', ')')
	case vi.TextObjectSquareBrackets:
		return a.delimitedSpan(pos, scope, '[', ']')
	case vi.TextObjectCurlyBrackets:
		return a.delimitedSpan(pos, scope, '{', '}')
	case vi.TextObjectAngleBrackets:
		return a.delimitedSpan(pos, scope, '<', '>')
	case vi.TextObjectDoubleQuotes:
		return a.delimitedSpan(pos, scope, '"', '"')
	case vi.TextObjectSingleQuotes:
		return a.delimitedSpan(pos, scope, '\'', '\'')
	case vi.TextObjectBackQuotes:
		return a.delimitedSpan(pos, scope, '`', '`')
	default:
		return term.CellLocation{}, term.CellLocation{}, false
	}
}

func (a *App) wordSpan(pos term.CellLocation, scope vi.TextObjectScope) (term.CellLocation, term.CellLocation, bool) {
	line := []rune(a.grid.LineText(pos.Line))
	if pos.Column >= len(line) || classify(line[pos.Column]) == classBlank {
		return term.CellLocation{}, term.CellLocation{}, false
	}

	cls := classify(line[pos.Column])
	start, end := pos.Column, pos.Column
	for start > 0 && classify(line[start-1]) == cls {
		start--
	}
	for end+1 < len(line) && classify(line[end+1]) == cls {
		end++
	}

	// "a word" swallows the trailing blanks.
	if scope == vi.ScopeA {
		for end+1 < len(line) && classify(line[end+1]) == classBlank {
			end++
		}
	}

	return term.CellLocation{Line: pos.Line, Column: start},
		term.CellLocation{Line: pos.Line, Column: end}, true
}

func (a *App) paragraphSpan(pos term.CellLocation) (term.CellLocation, term.CellLocation, bool) {
	size := a.grid.PageSize()
	if strings.TrimSpace(a.grid.LineText(pos.Line)) == "" {
		return term.CellLocation{}, term.CellLocation{}, false
	}

	first := pos.Line
	for first > 0 && strings.TrimSpace(a.grid.LineText(first-1)) != "" {
		first--
	}
	last := pos.Line
	for last+1 < size.Lines && strings.TrimSpace(a.grid.LineText(last+1)) != "" {
		last++
	}

	return term.CellLocation{Line: first},
		term.CellLocation{Line: last, Column: size.Columns - 1}, true
}

// delimitedSpan finds the innermost pair of delimiters around the
// cursor on the current line.
func (a *App) delimitedSpan(pos term.CellLocation, scope vi.TextObjectScope, open, closer rune) (term.CellLocation, term.CellLocation, bool) {
	line := []rune(a.grid.LineText(pos.Line))
	if pos.Column >= len(line) {
		return term.CellLocation{}, term.CellLocation{}, false
	}

	var start, end int
	if open == closer {
		// Quotes pair up left to right from the start of the line.
		start, end = -1, -1
		var marks []int
		for col, r := range line {
			if r == open {
				marks = append(marks, col)
			}
		}
		for i := 0; i+1 < len(marks); i += 2 {
			if marks[i] <= pos.Column && pos.Column <= marks[i+1] {
				start, end = marks[i], marks[i+1]
				break
			}
		}
		if start < 0 {
			return term.CellLocation{}, term.CellLocation{}, false
		}
	} else {
		start = -1
		depth := 0
		for col := pos.Column; col >= 0; col-- {
			switch line[col] {
			case closer:
				if col != pos.Column {
					depth++
				}
			case open:
				if depth == 0 {
					start = col
				} else {
					depth--
				}
			}
			if start >= 0 {
				break
			}
		}
		if start < 0 {
			return term.CellLocation{}, term.CellLocation{}, false
		}

		end = -1
		depth = 0
		for col := start + 1; col < len(line); col++ {
			switch line[col] {
			case open:
				depth++
			case closer:
				if depth == 0 {
					end = col
				} else {
					depth--
				}
			}
			if end >= 0 {
				break
			}
		}
		if end < 0 {
			return term.CellLocation{}, term.CellLocation{}, false
		}
	}

	if scope == vi.ScopeInner {
		if start+1 > end-1 {
			return term.CellLocation{}, term.CellLocation{}, false
		}
		start, end = start+1, end-1
	}

	return term.CellLocation{Line: pos.Line, Column: start},
		term.CellLocation{Line: pos.Line, Column: end}, true
}

// firstNonBlank returns the column of the first non-space rune, or 0.
func firstNonBlank(text string) int {
	for i, r := range []rune(text) {
		if !unicode.IsSpace(r) {
			return i
		}
	}
	return 0
}

// lastNonBlank returns the column of the last non-space rune, or 0.
func lastNonBlank(text string) int {
	runes := []rune(text)
	for i := len(runes) - 1; i >= 0; i-- {
		if !unicode.IsSpace(runes[i]) {
			return i
		}
	}
	return 0
}
