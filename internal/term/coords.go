package term

import "fmt"

// CellLocation addresses one cell on the grid. Line 0 is the top of
// the visible page; negative lines address the scrollback.
type CellLocation struct {
	Line   int
	Column int
}

// String returns "(line, column)".
func (l CellLocation) String() string {
	return fmt.Sprintf("(%d, %d)", l.Line, l.Column)
}

// Less orders locations top-to-bottom, then left-to-right.
func (l CellLocation) Less(other CellLocation) bool {
	if l.Line != other.Line {
		return l.Line < other.Line
	}
	return l.Column < other.Column
}

// CellLocationRange is the inclusive span between two locations in
// reading order.
type CellLocationRange struct {
	First  CellLocation
	Second CellLocation
}

// Contains reports whether loc falls inside the range. The range is
// interpreted in reading order: full lines between the endpoints, and
// partial first and last lines bounded by the endpoint columns.
func (r CellLocationRange) Contains(loc CellLocation) bool {
	first, second := r.First, r.Second
	if second.Less(first) {
		first, second = second, first
	}

	switch {
	case loc.Line < first.Line || loc.Line > second.Line:
		return false
	case first.Line == second.Line:
		return loc.Column >= first.Column && loc.Column <= second.Column
	case loc.Line == first.Line:
		return loc.Column >= first.Column
	case loc.Line == second.Line:
		return loc.Column <= second.Column
	default:
		return true
	}
}

// PageSize is the visible page geometry.
type PageSize struct {
	Lines   int
	Columns int
}
