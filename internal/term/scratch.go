package term

import "strings"

// ScratchGrid is an in-memory Source for demos and tests. It holds a
// page of cells with no scrollback, so grid and screen coordinates
// coincide when the scroll offset is zero.
type ScratchGrid struct {
	size    PageSize
	rows    [][]Cell
	trivial map[int]TrivialLine

	palette *Palette

	cursor        CellLocation
	cursorShape   CursorShape
	cursorVisible bool
	focused       bool
	reverseVideo  bool
	scrollOffset  int

	selection *CellLocationRange
	highlight *CellLocationRange

	searchPattern    []rune
	hoveredHyperlink string
	frameID          uint64
}

// NewScratchGrid returns a blank focused grid with a visible block
// cursor at the origin.
func NewScratchGrid(lines, columns int) *ScratchGrid {
	rows := make([][]Cell, lines)
	for i := range rows {
		rows[i] = make([]Cell, columns)
		for j := range rows[i] {
			rows[i][j] = NewCell()
		}
	}
	return &ScratchGrid{
		size:          PageSize{Lines: lines, Columns: columns},
		rows:          rows,
		trivial:       make(map[int]TrivialLine),
		palette:       NewPalette(),
		cursorShape:   CursorShapeBlock,
		cursorVisible: true,
		focused:       true,
	}
}

// SetText writes text onto a line cell by cell, starting at column 0,
// replacing any trivial representation of that line.
func (g *ScratchGrid) SetText(line int, text string, attrs GraphicsAttributes) {
	delete(g.trivial, line)
	column := 0
	for _, cluster := range GraphemeClusters(text) {
		if column >= g.size.Columns {
			break
		}
		runes := []rune(cluster)
		width := GraphemeClusterWidth(runes)
		if width < 1 {
			width = 1
		}
		g.rows[line][column] = TextCell(cluster, width, attrs)
		for i := 1; i < width && column+i < g.size.Columns; i++ {
			g.rows[line][column+i] = NewCell()
		}
		column += width
	}
	for ; column < g.size.Columns; column++ {
		g.rows[line][column] = NewCell()
	}
}

// SetCell places a single cell.
func (g *ScratchGrid) SetCell(loc CellLocation, cell Cell) {
	delete(g.trivial, loc.Line)
	g.rows[loc.Line][loc.Column] = cell
}

// SetTrivialLine stores a line in its compact single-attribute form.
func (g *ScratchGrid) SetTrivialLine(line int, text string, textAttrs, fillAttrs GraphicsAttributes) {
	used := 0
	for _, cluster := range GraphemeClusters(text) {
		used += GraphemeClusterWidth([]rune(cluster))
	}
	g.trivial[line] = TrivialLine{
		Text:           text,
		UsedColumns:    used,
		DisplayWidth:   g.size.Columns,
		TextAttributes: textAttrs,
		FillAttributes: fillAttrs,
	}
}

// SetCursor moves the cursor to a grid position.
func (g *ScratchGrid) SetCursor(loc CellLocation) { g.cursor = loc }

// SetCursorVisible toggles cursor visibility.
func (g *ScratchGrid) SetCursorVisible(v bool) { g.cursorVisible = v }

// SetCursorShape sets the focused cursor shape.
func (g *ScratchGrid) SetCursorShape(s CursorShape) { g.cursorShape = s }

// SetFocused toggles window focus.
func (g *ScratchGrid) SetFocused(v bool) { g.focused = v }

// SetReverseVideo toggles screen-wide reverse video.
func (g *ScratchGrid) SetReverseVideo(v bool) { g.reverseVideo = v }

// SetScrollOffset sets the scrollback scroll offset.
func (g *ScratchGrid) SetScrollOffset(n int) { g.scrollOffset = n }

// SetSelection covers the inclusive range between two grid positions;
// ClearSelection removes it.
func (g *ScratchGrid) SetSelection(first, second CellLocation) {
	g.selection = &CellLocationRange{First: first, Second: second}
}

// ClearSelection removes the selection.
func (g *ScratchGrid) ClearSelection() { g.selection = nil }

// SetHighlight covers the inclusive range between two grid positions
// with the transient highlight.
func (g *ScratchGrid) SetHighlight(first, second CellLocation) {
	g.highlight = &CellLocationRange{First: first, Second: second}
}

// ClearHighlight removes the highlight.
func (g *ScratchGrid) ClearHighlight() { g.highlight = nil }

// SetSearchPattern sets the active search pattern.
func (g *ScratchGrid) SetSearchPattern(pattern string) { g.searchPattern = []rune(pattern) }

// SetHoveredHyperlink marks one hyperlink id as hovered.
func (g *ScratchGrid) SetHoveredHyperlink(id string) { g.hoveredHyperlink = id }

// SetPalette replaces the palette.
func (g *ScratchGrid) SetPalette(p *Palette) { g.palette = p }

// SetFrameID stamps the current frame identifier.
func (g *ScratchGrid) SetFrameID(id uint64) { g.frameID = id }

// AdvanceFrame increments the frame identifier; the driving loop calls
// it once per frame tick.
func (g *ScratchGrid) AdvanceFrame() { g.frameID++ }

// PageSize implements Source.
func (g *ScratchGrid) PageSize() PageSize { return g.size }

// Palette implements Source.
func (g *ScratchGrid) Palette() *Palette { return g.palette }

// ScrollOffset implements Source.
func (g *ScratchGrid) ScrollOffset() int { return g.scrollOffset }

// ReverseVideo implements Source.
func (g *ScratchGrid) ReverseVideo() bool { return g.reverseVideo }

// BlinkState implements Source; the scratch grid is always on-phase.
func (g *ScratchGrid) BlinkState() (bool, bool) { return true, true }

// Focused implements Source.
func (g *ScratchGrid) Focused() bool { return g.focused }

// CursorVisible implements Source.
func (g *ScratchGrid) CursorVisible() bool { return g.cursorVisible }

// CursorPosition implements Source.
func (g *ScratchGrid) CursorPosition() CellLocation { return g.cursor }

// CursorShape implements Source.
func (g *ScratchGrid) CursorShape() CursorShape { return g.cursorShape }

// CellWidthAt implements Source.
func (g *ScratchGrid) CellWidthAt(loc CellLocation) int {
	line := loc.Line + g.scrollOffset
	if line < 0 || line >= g.size.Lines || loc.Column < 0 || loc.Column >= g.size.Columns {
		return 1
	}
	if w := g.rows[line][loc.Column].Width; w > 0 {
		return w
	}
	return 1
}

// IsSelected implements Source.
func (g *ScratchGrid) IsSelected(loc CellLocation) bool {
	return g.selection != nil && g.selection.Contains(loc)
}

// IsHighlighted implements Source.
func (g *ScratchGrid) IsHighlighted(loc CellLocation) bool {
	return g.highlight != nil && g.highlight.Contains(loc)
}

// SearchPattern implements Source.
func (g *ScratchGrid) SearchPattern() []rune { return g.searchPattern }

// FrameID implements Source.
func (g *ScratchGrid) FrameID() uint64 { return g.frameID }

// HyperlinkHovered implements Source.
func (g *ScratchGrid) HyperlinkHovered(id string) bool {
	return id != "" && id == g.hoveredHyperlink
}

// TrivialLine implements Source.
func (g *ScratchGrid) TrivialLine(screenLine int) (TrivialLine, bool) {
	tl, ok := g.trivial[screenLine]
	return tl, ok
}

// CellAt implements Source.
func (g *ScratchGrid) CellAt(loc CellLocation) *Cell {
	return &g.rows[loc.Line][loc.Column]
}

// LineText flattens one line to a string, one space per blank column.
func (g *ScratchGrid) LineText(line int) string {
	if tl, ok := g.trivial[line]; ok {
		return tl.Text
	}
	var sb strings.Builder
	for column := 0; column < g.size.Columns; {
		cell := &g.rows[line][column]
		if len(cell.Codepoints) == 0 {
			sb.WriteByte(' ')
			column++
			continue
		}
		sb.WriteString(cell.Text())
		if cell.Width > 1 {
			column += cell.Width
		} else {
			column++
		}
	}
	return sb.String()
}
