package term

import "strings"

// CellFlags is a bitmask of SGR rendition attributes on a cell.
type CellFlags uint32

const (
	// FlagBold renders with increased intensity.
	FlagBold CellFlags = 1 << iota
	// FlagFaint renders with decreased intensity.
	FlagFaint
	// FlagItalic renders italicized.
	FlagItalic
	// FlagBlinking hides the cell on the off-phase of the slow blink
	// cycle.
	FlagBlinking
	// FlagRapidBlinking hides the cell on the off-phase of the rapid
	// blink cycle.
	FlagRapidBlinking
	// FlagInverse swaps foreground and background.
	FlagInverse
	// FlagHidden renders the cell invisibly.
	FlagHidden
	// FlagCrossedOut strikes the cell through.
	FlagCrossedOut
	// FlagUnderline draws a single underline.
	FlagUnderline
	// FlagDoublyUnderlined draws a double underline.
	FlagDoublyUnderlined
	// FlagCurlyUnderlined draws a curly underline.
	FlagCurlyUnderlined
	// FlagDottedUnderline draws a dotted underline.
	FlagDottedUnderline
	// FlagDashedUnderline draws a dashed underline.
	FlagDashedUnderline
	// FlagFramed draws a frame around the cell.
	FlagFramed
	// FlagOverline draws a line above the cell.
	FlagOverline
)

// FlagsNone is the empty attribute set.
const FlagsNone CellFlags = 0

// Has reports whether all bits of f are set.
func (c CellFlags) Has(f CellFlags) bool {
	return c&f == f
}

// HasAny reports whether any bit of f is set.
func (c CellFlags) HasAny(f CellFlags) bool {
	return c&f != 0
}

// With returns c with the bits of f set.
func (c CellFlags) With(f CellFlags) CellFlags {
	return c | f
}

// Without returns c with the bits of f cleared.
func (c CellFlags) Without(f CellFlags) CellFlags {
	return c &^ f
}

var flagNames = []struct {
	flag CellFlags
	name string
}{
	{FlagBold, "bold"},
	{FlagFaint, "faint"},
	{FlagItalic, "italic"},
	{FlagBlinking, "blinking"},
	{FlagRapidBlinking, "rapidBlinking"},
	{FlagInverse, "inverse"},
	{FlagHidden, "hidden"},
	{FlagCrossedOut, "crossedOut"},
	{FlagUnderline, "underline"},
	{FlagDoublyUnderlined, "doublyUnderlined"},
	{FlagCurlyUnderlined, "curlyUnderlined"},
	{FlagDottedUnderline, "dottedUnderline"},
	{FlagDashedUnderline, "dashedUnderline"},
	{FlagFramed, "framed"},
	{FlagOverline, "overline"},
}

// String returns a comma-separated list of the set attributes.
func (c CellFlags) String() string {
	if c == FlagsNone {
		return "none"
	}
	var names []string
	for _, fn := range flagNames {
		if c.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, ",")
}
