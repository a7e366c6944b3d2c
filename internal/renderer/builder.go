package renderer

import (
	"strings"

	"github.com/dshills/viterm/internal/term"
)

// BuildOptions parameterizes one frame build.
type BuildOptions struct {
	// BaseLine offsets all emitted cell positions, e.g. for rendering
	// a status line below the main page.
	BaseLine int

	// HighlightSearchMatches enables recoloring of search-pattern
	// matches.
	HighlightSearchMatches bool

	// Preedit is the in-progress IME composition, overlaid at the
	// cursor position.
	Preedit string
}

// runState tracks whether the builder is inside a run of visible
// cells or a gap of blanks.
type runState uint8

const (
	stateGap runState = iota
	stateSequence
)

// builder holds the transient state of one frame build.
type builder struct {
	output  *RenderBuffer
	source  term.Source
	palette *term.Palette
	opts    BuildOptions

	pageSize       term.PageSize
	scrollOffset   int
	reverseVideo   bool
	cursorPosition term.CellLocation

	state     runState
	isNewLine bool
	lineNr    int

	// prevWidth and prevHasCursor extend a block cursor over the
	// second column of a wide cell.
	prevWidth     int
	prevHasCursor bool

	searchPatternOffset int
	// searchMatchFront is the index into output.Cells of the first
	// emitted cell of the current match candidate. Blank cells swallowed
	// by the run tracker extend the candidate without emitting a cell,
	// so this can point past the cells emitted so far.
	searchMatchFront   int
	preeditSkipColumns int
}

// Build assembles one frame from source into output. The buffer is
// cleared first; its slices are reused across frames.
func Build(source term.Source, output *RenderBuffer, opts BuildOptions) {
	output.Clear()
	output.FrameID = source.FrameID()

	b := builder{
		output:         output,
		source:         source,
		palette:        source.Palette(),
		opts:           opts,
		pageSize:       source.PageSize(),
		scrollOffset:   source.ScrollOffset(),
		reverseVideo:   source.ReverseVideo(),
		cursorPosition: source.CursorPosition(),
	}
	output.Cursor = b.renderCursor()

	for line := 0; line < b.pageSize.Lines; line++ {
		if trivial, ok := source.TrivialLine(line); ok {
			b.renderTrivialLine(trivial, line)
			continue
		}
		b.startLine(line)
		for column := 0; column < b.pageSize.Columns; column++ {
			b.renderCell(source.CellAt(term.CellLocation{Line: line, Column: column}), line, column)
		}
		b.endLine()
	}
}

func (b *builder) screenToGrid(loc term.CellLocation) term.CellLocation {
	return term.CellLocation{Line: loc.Line - b.scrollOffset, Column: loc.Column}
}

func (b *builder) gridToScreen(loc term.CellLocation) term.CellLocation {
	return term.CellLocation{Line: loc.Line + b.scrollOffset, Column: loc.Column}
}

func (b *builder) renderCursor() *RenderCursor {
	if !b.source.CursorVisible() {
		return nil
	}
	screenPosition := b.gridToScreen(b.cursorPosition)
	if screenPosition.Line < 0 || screenPosition.Line >= b.pageSize.Lines {
		return nil
	}

	// An unfocused window always shows a hollow rectangle.
	shape := term.CursorShapeRectangle
	if b.source.Focused() {
		shape = b.source.CursorShape()
	}

	return &RenderCursor{
		Position: screenPosition,
		Shape:    shape,
		Width:    b.source.CellWidthAt(b.cursorPosition),
	}
}

// makeColorsForCell resolves the final colors at one grid position,
// including selection, highlight and cursor overlays.
func (b *builder) makeColorsForCell(gridPosition term.CellLocation, flags term.CellFlags, fg, bg term.Color) term.RGBPair {
	hasCursor := gridPosition == b.cursorPosition

	paintCursor := (hasCursor || (b.prevHasCursor && b.prevWidth == 2)) &&
		b.output.Cursor != nil &&
		b.output.Cursor.Shape == term.CursorShapeBlock

	selected := b.source.IsSelected(gridPosition)
	highlighted := b.source.IsHighlighted(gridPosition)
	blink, rapidBlink := b.source.BlinkState()

	return makeColors(b.palette, flags, b.reverseVideo, fg, bg, selected, paintCursor, highlighted, blink, rapidBlink)
}

func (b *builder) createRenderAttributes(gridPosition term.CellLocation, attrs term.GraphicsAttributes) RenderAttributes {
	colors := b.makeColorsForCell(gridPosition, attrs.Flags, attrs.Foreground, attrs.Background)
	return RenderAttributes{
		Foreground: colors.Foreground,
		Background: colors.Background,
		Decoration: term.ResolveUnderlineColor(b.palette, attrs.Flags, colors.Foreground, attrs.Underline),
		Flags:      attrs.Flags,
	}
}

func (b *builder) createRenderLine(trivial term.TrivialLine, lineOffset int) RenderLine {
	gridPosition := b.screenToGrid(term.CellLocation{Line: lineOffset})
	return RenderLine{
		Text:           trivial.Text,
		LineOffset:     b.opts.BaseLine + lineOffset,
		UsedColumns:    trivial.UsedColumns,
		DisplayWidth:   trivial.DisplayWidth,
		TextAttributes: b.createRenderAttributes(gridPosition, trivial.TextAttributes),
		FillAttributes: b.createRenderAttributes(gridPosition, trivial.FillAttributes),
	}
}

// lineHasOverrides reports whether any per-cell overlay touches the
// given screen line: a block cursor, selection or highlight coverage,
// or potential search-match recoloring. A line without overrides can
// be emitted as a single RenderLine.
func (b *builder) lineHasOverrides(lineOffset int) bool {
	if b.output.Cursor != nil &&
		b.output.Cursor.Shape == term.CursorShapeBlock &&
		b.output.Cursor.Position.Line == lineOffset {
		return true
	}
	if b.opts.HighlightSearchMatches && len(b.source.SearchPattern()) > 0 {
		return true
	}
	if b.opts.Preedit != "" && b.gridToScreen(b.cursorPosition).Line == lineOffset {
		return true
	}
	for column := 0; column < b.pageSize.Columns; column++ {
		gridPosition := b.screenToGrid(term.CellLocation{Line: lineOffset, Column: column})
		if b.source.IsSelected(gridPosition) || b.source.IsHighlighted(gridPosition) {
			return true
		}
	}
	return false
}

func (b *builder) renderTrivialLine(trivial term.TrivialLine, lineOffset int) {
	frontIndex := len(b.output.Cells)

	if !b.lineHasOverrides(lineOffset) {
		b.output.Lines = append(b.output.Lines, b.createRenderLine(trivial, lineOffset))
		b.lineNr = lineOffset
		b.prevWidth = 0
		b.prevHasCursor = false
		return
	}

	textMargin := trivial.UsedColumns
	if textMargin > b.pageSize.Columns {
		textMargin = b.pageSize.Columns
	}

	b.searchPatternOffset = 0
	b.renderUtf8Text(term.CellLocation{Line: lineOffset}, trivial.TextAttributes, trivial.Text, true)

	// Fill the remaining columns with styled blanks.
	for column := textMargin; column < b.pageSize.Columns; column++ {
		position := term.CellLocation{Line: lineOffset, Column: column}
		attrs := b.createRenderAttributes(b.screenToGrid(position), trivial.FillAttributes)
		b.output.Cells = append(b.output.Cells, RenderCell{
			Position:   term.CellLocation{Line: b.opts.BaseLine + lineOffset, Column: column},
			Width:      1,
			Attributes: attrs,
		})
	}

	if len(b.output.Cells) > frontIndex {
		b.output.Cells[frontIndex].GroupStart = true
		b.output.Cells[len(b.output.Cells)-1].GroupEnd = true
	}
}

// matchSearchPattern advances the incremental search-pattern matcher
// by one rendered cell and recolors the matched run on completion. A
// mismatch resets the matcher to the start of the pattern, so overlaps
// with the failed prefix are not re-tried within this frame. emitted
// reports whether the cell produced a RenderCell; blanks swallowed by
// the run tracker still feed the matcher but cannot be recolored.
func (b *builder) matchSearchPattern(text string, codepoints int, emitted bool) {
	if !b.opts.HighlightSearchMatches {
		return
	}
	pattern := b.source.SearchPattern()
	if len(pattern) == 0 {
		return
	}

	if text == "" || !strings.HasPrefix(string(pattern[b.searchPatternOffset:]), text) {
		b.searchPatternOffset = 0
		return
	}

	if b.searchPatternOffset == 0 {
		b.searchMatchFront = len(b.output.Cells)
		if emitted {
			b.searchMatchFront--
		}
	}

	b.searchPatternOffset += codepoints
	if b.searchPatternOffset < len(pattern) {
		return
	}
	b.searchPatternOffset = 0

	cells := b.output.Cells
	frontIndex := b.searchMatchFront
	if frontIndex >= len(cells) {
		// The whole match fell on swallowed blanks.
		return
	}

	matchRange := term.CellLocationRange{
		First:  cells[frontIndex].Position,
		Second: cells[len(cells)-1].Position,
	}
	isFocusedMatch := matchRange.Contains(b.gridToScreen(b.cursorPosition))

	overlay := b.palette.SearchHighlight
	if isFocusedMatch {
		overlay = b.palette.SearchHighlightFocused
	}
	for i := frontIndex; i < len(cells); i++ {
		attrs := &cells[i].Attributes
		colors := overlay.Apply(term.RGBPair{
			Foreground: attrs.Foreground,
			Background: attrs.Background,
		})
		attrs.Foreground = colors.Foreground
		attrs.Background = colors.Background
	}
}

func (b *builder) startLine(line int) {
	b.isNewLine = true
	b.lineNr = line
	b.prevWidth = 0
	b.prevHasCursor = false
}

func (b *builder) endLine() {
	if len(b.output.Cells) > 0 {
		b.output.Cells[len(b.output.Cells)-1].GroupEnd = true
	}
}

// renderUtf8Text emits text grapheme cluster by grapheme cluster
// starting at a screen position, and returns the number of columns
// rendered.
func (b *builder) renderUtf8Text(screenPosition term.CellLocation, attrs term.GraphicsAttributes, text string, allowMatchSearchPattern bool) int {
	columnsRendered := 0

	for _, cluster := range term.GraphemeClusters(text) {
		runes := []rune(cluster)
		gridPosition := b.screenToGrid(term.CellLocation{
			Line:   screenPosition.Line,
			Column: screenPosition.Column + columnsRendered,
		})
		colors := b.makeColorsForCell(gridPosition, attrs.Flags, attrs.Foreground, attrs.Background)
		width := term.GraphemeClusterWidth(runes)

		b.output.Cells = append(b.output.Cells, RenderCell{
			Codepoints: runes,
			Position: term.CellLocation{
				Line:   b.opts.BaseLine + screenPosition.Line,
				Column: screenPosition.Column + columnsRendered,
			},
			Width: width,
			Attributes: RenderAttributes{
				Foreground: colors.Foreground,
				Background: colors.Background,
				Decoration: term.ResolveUnderlineColor(b.palette, attrs.Flags, colors.Foreground, attrs.Underline),
				Flags:      attrs.Flags,
			},
		})

		columnsRendered += width
		b.lineNr = screenPosition.Line
		b.prevWidth = 0
		b.prevHasCursor = false

		if allowMatchSearchPattern {
			b.matchSearchPattern(cluster, len(runes), true)
		}
	}
	return columnsRendered
}

// makeRenderCell turns one grid cell into its output form, resolving
// the underline decoration and hyperlink styling.
func (b *builder) makeRenderCell(cell *term.Cell, colors term.RGBPair, line, column int) RenderCell {
	flags := cell.Flags
	decoration := cell.UnderlineColor(b.palette, colors.Foreground)

	if cell.Hyperlink != "" {
		if b.source.HyperlinkHovered(cell.Hyperlink) {
			flags = flags.With(term.FlagUnderline)
			decoration = b.palette.HyperlinkDecoration.Hover
		} else {
			flags = flags.With(term.FlagDottedUnderline)
			decoration = b.palette.HyperlinkDecoration.Normal
		}
	}

	return RenderCell{
		Codepoints: append([]rune(nil), cell.Codepoints...),
		Position:   term.CellLocation{Line: b.opts.BaseLine + line, Column: column},
		Width:      cell.Width,
		Attributes: RenderAttributes{
			Foreground: colors.Foreground,
			Background: colors.Background,
			Decoration: decoration,
			Flags:      flags,
		},
		Image: cell.Image,
	}
}

func (b *builder) renderCell(cell *term.Cell, line, column int) {
	screenPosition := term.CellLocation{Line: line, Column: column}
	gridPosition := b.screenToGrid(screenPosition)

	// Overlay the IME preedit at the cursor position.
	if gridPosition == b.cursorPosition && b.opts.Preedit != "" {
		attrs := term.DefaultGraphicsAttributes()
		attrs.Foreground = term.RGBColor(term.RGB{R: 0xFF, G: 0xFF, B: 0xFF})
		attrs.Background = term.RGBColor(term.RGB{R: 0xFF})
		attrs.Flags = term.FlagBold | term.FlagUnderline

		if len(b.output.Cells) > 0 {
			b.output.Cells[len(b.output.Cells)-1].GroupEnd = true
		}

		b.preeditSkipColumns = b.renderUtf8Text(screenPosition, attrs, b.opts.Preedit, false)
		if b.preeditSkipColumns > 0 {
			if b.output.Cursor != nil {
				b.output.Cursor.Position.Column += b.preeditSkipColumns
			}
			b.output.Cells[len(b.output.Cells)-b.preeditSkipColumns].GroupStart = true
			b.output.Cells[len(b.output.Cells)-1].GroupEnd = true
		}

		b.state = stateGap
	}

	if b.preeditSkipColumns > 0 {
		// Grid cells hidden under the preedit overlay.
		b.preeditSkipColumns--
		return
	}

	colors := b.makeColorsForCell(gridPosition, cell.Flags, cell.Foreground, cell.Background)

	b.prevWidth = cell.Width
	b.prevHasCursor = gridPosition == b.cursorPosition

	cellEmpty := cell.Empty()
	customBackground := colors.Background != b.palette.DefaultBackground || cell.Flags != term.FlagsNone

	emitted := false
	switch b.state {
	case stateGap:
		if !cellEmpty || customBackground {
			b.state = stateSequence
			b.output.Cells = append(b.output.Cells, b.makeRenderCell(cell, colors, line, column))
			b.output.Cells[len(b.output.Cells)-1].GroupStart = true
			emitted = true
		}
	case stateSequence:
		if cellEmpty && !customBackground {
			b.output.Cells[len(b.output.Cells)-1].GroupEnd = true
			b.state = stateGap
		} else {
			b.output.Cells = append(b.output.Cells, b.makeRenderCell(cell, colors, line, column))
			if b.isNewLine {
				b.output.Cells[len(b.output.Cells)-1].GroupStart = true
			}
			emitted = true
		}
	}
	b.isNewLine = false

	b.matchSearchPattern(cell.Text(), len(cell.Codepoints), emitted)
}
