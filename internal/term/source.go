package term

// CursorShape is the visual form of the text cursor.
type CursorShape uint8

const (
	// CursorShapeBlock paints the full cell; cell colors under a block
	// cursor are overridden.
	CursorShapeBlock CursorShape = iota
	// CursorShapeRectangle outlines the cell without recoloring it.
	CursorShapeRectangle
	// CursorShapeUnderscore underlines the cell.
	CursorShapeUnderscore
	// CursorShapeBar draws a vertical bar at the cell's left edge.
	CursorShapeBar
)

// String returns a string representation of the shape.
func (s CursorShape) String() string {
	switch s {
	case CursorShapeBlock:
		return "block"
	case CursorShapeRectangle:
		return "rectangle"
	case CursorShapeUnderscore:
		return "underscore"
	case CursorShapeBar:
		return "bar"
	default:
		return "unknown"
	}
}

// CursorShapeFromString parses a shape name; unknown names yield
// CursorShapeBlock.
func CursorShapeFromString(s string) CursorShape {
	switch s {
	case "rectangle":
		return CursorShapeRectangle
	case "underscore":
		return CursorShapeUnderscore
	case "bar":
		return CursorShapeBar
	default:
		return CursorShapeBlock
	}
}

// Source exposes one consistent snapshot of terminal state to a frame
// builder.
//
// Two coordinate systems are in play. Content accessors (TrivialLine,
// CellAt) address the visible page in screen coordinates, line 0 at
// the top of the viewport. Stateful predicates (IsSelected,
// IsHighlighted) and CursorPosition use grid coordinates, where line 0
// is the top of the active page and negative lines reach into the
// scrollback; screen line = grid line + ScrollOffset().
type Source interface {
	// PageSize returns the viewport geometry.
	PageSize() PageSize

	// Palette returns the active color palette.
	Palette() *Palette

	// ScrollOffset is the number of scrollback lines scrolled into
	// view.
	ScrollOffset() int

	// ReverseVideo reports whether DECSCNM screen-wide reverse video
	// is active.
	ReverseVideo() bool

	// BlinkState returns the on-phase of the slow and rapid blink
	// cycles.
	BlinkState() (blink, rapidBlink bool)

	// Focused reports whether the terminal window has input focus.
	Focused() bool

	// CursorVisible reports whether the cursor should be shown at all
	// (DECTCEM and blinking phase).
	CursorVisible() bool

	// CursorPosition is the active cursor position in grid
	// coordinates. In insert mode this is the program cursor, in any
	// other mode the vi navigation cursor.
	CursorPosition() CellLocation

	// CursorShape is the configured shape of the focused cursor.
	CursorShape() CursorShape

	// CellWidthAt returns the display width of the cell at the given
	// grid position.
	CellWidthAt(loc CellLocation) int

	// IsSelected reports whether the grid position is covered by the
	// visual selection.
	IsSelected(loc CellLocation) bool

	// IsHighlighted reports whether the grid position is covered by a
	// transient highlight, e.g. after a yank.
	IsHighlighted(loc CellLocation) bool

	// SearchPattern is the active search pattern, empty when none.
	SearchPattern() []rune

	// FrameID identifies the frame the current state belongs to. It
	// increases monotonically with every frame tick and is copied into
	// the built buffer.
	FrameID() uint64

	// HyperlinkHovered reports whether the hyperlink with the given id
	// is under the mouse pointer.
	HyperlinkHovered(id string) bool

	// TrivialLine returns the compact form of a screen line, if the
	// line is stored trivially.
	TrivialLine(screenLine int) (TrivialLine, bool)

	// CellAt returns the cell at a screen position. The returned cell
	// is valid until the next mutation of the source.
	CellAt(loc CellLocation) *Cell
}
