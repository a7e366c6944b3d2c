package term

import "strings"

// ImageFragment is the slice of a rasterized image covering one cell.
// A cell holding an image fragment is never considered empty, even
// without text.
type ImageFragment struct {
	ImageID uint64
	Line    int
	Column  int
}

// Cell is one grid cell: a grapheme cluster with its display width,
// SGR attributes, colors, and optional hyperlink or image fragment.
type Cell struct {
	// Codepoints is the grapheme cluster occupying the cell. Empty for
	// a blank cell.
	Codepoints []rune

	// Width is the number of columns the cluster occupies (1 or 2).
	Width int

	Flags      CellFlags
	Foreground Color
	Background Color
	// Underline colors the underline decoration; the default color
	// falls back to the resolved foreground.
	Underline Color

	Hyperlink string
	Image     *ImageFragment
}

// NewCell returns a blank cell of width 1 with default colors.
func NewCell() Cell {
	return Cell{
		Width:      1,
		Foreground: DefaultColor(),
		Background: DefaultColor(),
		Underline:  DefaultColor(),
	}
}

// TextCell returns a cell holding the given cluster and attributes.
func TextCell(cluster string, width int, attrs GraphicsAttributes) Cell {
	return Cell{
		Codepoints: []rune(cluster),
		Width:      width,
		Flags:      attrs.Flags,
		Foreground: attrs.Foreground,
		Background: attrs.Background,
		Underline:  attrs.Underline,
		Hyperlink:  attrs.Hyperlink,
	}
}

// Empty reports whether the cell renders as blank: no codepoints or a
// sole space, and no image fragment.
func (c *Cell) Empty() bool {
	return (len(c.Codepoints) == 0 || c.Codepoints[0] == ' ') && c.Image == nil
}

// Text returns the cluster as a string.
func (c *Cell) Text() string {
	return string(c.Codepoints)
}

// HasCustomBackground reports whether the cell's background deviates
// from the default, either by color or by a rendition attribute.
func (c *Cell) HasCustomBackground() bool {
	return !c.Background.IsDefault() || c.Flags != FlagsNone
}

// intensityMode derives the color intensity from the rendition flags.
func intensityMode(flags CellFlags, useBrightColors bool) ColorMode {
	switch {
	case flags.Has(FlagFaint):
		return ColorModeDimmed
	case flags.Has(FlagBold) && useBrightColors:
		return ColorModeBright
	default:
		return ColorModeNormal
	}
}

// MakeColors resolves the cell's SGR attributes to a concrete color
// pair: intensity from bold/faint, reverse video and inverse swap the
// slots, hidden and off-phase blinking erase the text into the
// background.
func (c *Cell) MakeColors(p *Palette, reverseVideo, blink, rapidBlink bool) RGBPair {
	return MakeColors(p, c.Flags, reverseVideo, c.Foreground, c.Background, blink, rapidBlink)
}

// MakeColors resolves an attribute set to a concrete color pair, see
// Cell.MakeColors.
func MakeColors(p *Palette, flags CellFlags, reverseVideo bool, fg, bg Color, blink, rapidBlink bool) RGBPair {
	fgMode := intensityMode(flags, p.UseBrightColors)
	bgMode := ColorModeNormal

	fgTarget, bgTarget := TargetForeground, TargetBackground
	if reverseVideo {
		fgTarget, bgTarget = TargetBackground, TargetForeground
	}

	colors := RGBPair{
		Foreground: p.Apply(fg, fgTarget, fgMode),
		Background: p.Apply(bg, bgTarget, bgMode),
	}

	if flags.Has(FlagInverse) {
		colors = colors.Swapped()
	}
	if flags.Has(FlagHidden) {
		colors = colors.AllBackground()
	}
	if flags.Has(FlagBlinking) && !blink {
		return colors.AllBackground()
	}
	if flags.Has(FlagRapidBlinking) && !rapidBlink {
		return colors.AllBackground()
	}
	return colors
}

// UnderlineColor resolves the underline decoration color, falling back
// to defaultColor when the cell has no explicit underline color.
func (c *Cell) UnderlineColor(p *Palette, defaultColor RGB) RGB {
	return ResolveUnderlineColor(p, c.Flags, defaultColor, c.Underline)
}

// ResolveUnderlineColor resolves an underline color under the given
// rendition flags, falling back to defaultColor for the default color.
func ResolveUnderlineColor(p *Palette, flags CellFlags, defaultColor RGB, underline Color) RGB {
	if underline.IsDefault() {
		return defaultColor
	}
	return p.Apply(underline, TargetForeground, intensityMode(flags, p.UseBrightColors))
}

// BeginsWith reports whether text starts with the cell's cluster. An
// empty cluster never matches.
func BeginsWith(text string, c *Cell) bool {
	if len(c.Codepoints) == 0 {
		return false
	}
	return strings.HasPrefix(text, c.Text())
}
