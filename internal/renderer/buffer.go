package renderer

import "github.com/dshills/viterm/internal/term"

// RenderAttributes is the fully resolved style of a render cell or
// line: concrete colors only, no palette references left.
type RenderAttributes struct {
	Foreground term.RGB
	Background term.RGB
	// Decoration colors underlines and similar decorations.
	Decoration term.RGB
	Flags      term.CellFlags
}

// RenderCell is one output cell.
type RenderCell struct {
	// Codepoints is the grapheme cluster to draw; empty for a styled
	// blank.
	Codepoints []rune

	// Position is the cell's screen position.
	Position term.CellLocation

	// Width is the cluster width in columns.
	Width int

	Attributes RenderAttributes

	// GroupStart and GroupEnd delimit runs of consecutive cells that a
	// backend may draw as one unit.
	GroupStart bool
	GroupEnd   bool

	Image *term.ImageFragment
}

// RenderLine is the compact output form of a line whose cells all
// share one style: text plus attributes, no per-cell data.
type RenderLine struct {
	Text         string
	LineOffset   int
	UsedColumns  int
	DisplayWidth int

	TextAttributes RenderAttributes
	FillAttributes RenderAttributes
}

// RenderCursor describes the cursor to draw.
type RenderCursor struct {
	// Position is the cursor's screen position.
	Position term.CellLocation
	Shape    term.CursorShape
	// Width is the column width of the cell under the cursor.
	Width int
}

// RenderBuffer is one complete frame.
type RenderBuffer struct {
	Cells []RenderCell
	Lines []RenderLine

	// Cursor is nil when the cursor is hidden or scrolled out of view.
	Cursor *RenderCursor

	// FrameID identifies the frame the buffer was built from; content
	// of two buffers with equal state differs only by this.
	FrameID uint64
}

// Clear empties the buffer for reuse, keeping allocated capacity.
func (b *RenderBuffer) Clear() {
	b.Cells = b.Cells[:0]
	b.Lines = b.Lines[:0]
	b.Cursor = nil
	b.FrameID = 0
}
