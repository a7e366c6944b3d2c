package term

// GraphicsAttributes is the SGR state shared by a run of cells.
type GraphicsAttributes struct {
	Foreground Color
	Background Color
	Underline  Color
	Flags      CellFlags
	Hyperlink  string
}

// DefaultGraphicsAttributes returns attributes with default colors and
// no flags.
func DefaultGraphicsAttributes() GraphicsAttributes {
	return GraphicsAttributes{
		Foreground: DefaultColor(),
		Background: DefaultColor(),
		Underline:  DefaultColor(),
	}
}

// TrivialLine is the compact representation of a line whose cells all
// share one attribute set: the text as UTF-8 plus the shared
// attributes, and fill attributes for the columns past the text.
type TrivialLine struct {
	// Text is the line content in UTF-8, in grid order.
	Text string

	// UsedColumns is the number of columns the text occupies.
	UsedColumns int

	// DisplayWidth is the full line width in columns.
	DisplayWidth int

	// TextAttributes style the text columns.
	TextAttributes GraphicsAttributes

	// FillAttributes style the trailing blank columns.
	FillAttributes GraphicsAttributes
}
