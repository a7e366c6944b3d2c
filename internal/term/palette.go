package term

// ColorMode selects the intensity variant used when resolving a cell
// color.
type ColorMode uint8

const (
	// ColorModeNormal resolves to the regular color.
	ColorModeNormal ColorMode = iota
	// ColorModeBright resolves base colors to their bright variant.
	ColorModeBright
	// ColorModeDimmed resolves to a half-intensity color.
	ColorModeDimmed
)

// ColorTarget names which slot of a pair a default color resolves to.
type ColorTarget uint8

const (
	// TargetForeground resolves defaults to the default foreground.
	TargetForeground ColorTarget = iota
	// TargetBackground resolves defaults to the default background.
	TargetBackground
)

// CursorColors configures how the cursor recolors the cell it covers.
type CursorColors struct {
	// Color paints the cursor body, i.e. the cell background.
	Color CellColorSpec
	// TextOverrideColor paints the text under the cursor.
	TextOverrideColor CellColorSpec
}

// Palette holds the resolved color configuration of a terminal
// profile: the 256-color table, default colors, the highlight
// overlays, and the cursor colors.
type Palette struct {
	// Indexed is the 256-color table. Entries 0..7 are the base ANSI
	// colors, 8..15 their bright variants.
	Indexed [256]RGB

	DefaultForeground RGB
	DefaultBackground RGB

	Selection              OverlayColors
	YankHighlight          OverlayColors
	SearchHighlight        OverlayColors
	SearchHighlightFocused OverlayColors

	Cursor CursorColors

	// HyperlinkDecoration colors the underline drawn beneath
	// hyperlinked cells.
	HyperlinkDecoration struct {
		Normal RGB
		Hover  RGB
	}

	// UseBrightColors promotes bold text on a base color to the bright
	// variant of that color.
	UseBrightColors bool
}

var ansiBase = [16]RGB{
	{0x00, 0x00, 0x00}, {0xcd, 0x00, 0x00}, {0x00, 0xcd, 0x00}, {0xcd, 0xcd, 0x00},
	{0x00, 0x00, 0xee}, {0xcd, 0x00, 0xcd}, {0x00, 0xcd, 0xcd}, {0xe5, 0xe5, 0xe5},
	{0x7f, 0x7f, 0x7f}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
	{0x5c, 0x5c, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

// NewPalette returns a palette with the xterm 256-color table and
// conventional defaults: an inverting selection, an orange yank
// highlight, yellow search highlights, and a light gray block cursor.
func NewPalette() *Palette {
	p := &Palette{
		DefaultForeground: RGB{0xd0, 0xd0, 0xd0},
		DefaultBackground: RGB{0x00, 0x00, 0x00},
		Selection: OverlayColors{
			Foreground:      CellBackground(),
			ForegroundAlpha: 1,
			Background:      CellForeground(),
			BackgroundAlpha: 1,
		},
		YankHighlight: OverlayColors{
			Foreground:      CellRGB(RGB{0x00, 0x00, 0x00}),
			ForegroundAlpha: 1,
			Background:      CellRGB(RGB{0xff, 0xa5, 0x00}),
			BackgroundAlpha: 1,
		},
		SearchHighlight: OverlayColors{
			Foreground:      CellRGB(RGB{0x00, 0x00, 0x00}),
			ForegroundAlpha: 1,
			Background:      CellRGB(RGB{0x90, 0x90, 0x40}),
			BackgroundAlpha: 1,
		},
		SearchHighlightFocused: OverlayColors{
			Foreground:      CellRGB(RGB{0x00, 0x00, 0x00}),
			ForegroundAlpha: 1,
			Background:      CellRGB(RGB{0xff, 0xff, 0x00}),
			BackgroundAlpha: 1,
		},
		Cursor: CursorColors{
			Color:             CellRGB(RGB{0xc0, 0xc0, 0xc0}),
			TextOverrideColor: CellBackground(),
		},
		UseBrightColors: true,
	}
	p.HyperlinkDecoration.Normal = RGB{0x00, 0x80, 0x80}
	p.HyperlinkDecoration.Hover = RGB{0xff, 0x00, 0x00}

	copy(p.Indexed[:16], ansiBase[:])

	// 6x6x6 color cube.
	level := func(n int) uint8 {
		if n == 0 {
			return 0
		}
		return uint8(55 + 40*n)
	}
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p.Indexed[16+36*r+6*g+b] = RGB{level(r), level(g), level(b)}
			}
		}
	}

	// Grayscale ramp.
	for i := 0; i < 24; i++ {
		v := uint8(8 + 10*i)
		p.Indexed[232+i] = RGB{v, v, v}
	}

	return p
}

// Apply resolves a cell color against the palette under the given
// target slot and intensity mode.
func (p *Palette) Apply(c Color, target ColorTarget, mode ColorMode) RGB {
	switch c.kind {
	case colorKindIndexed:
		rgb := p.Indexed[c.index]
		switch {
		case mode == ColorModeBright && c.index < 8:
			rgb = p.Indexed[c.index+8]
		case mode == ColorModeDimmed:
			rgb = rgb.Dimmed()
		}
		return rgb
	case colorKindBright:
		rgb := p.Indexed[c.index+8]
		if mode == ColorModeDimmed {
			rgb = rgb.Dimmed()
		}
		return rgb
	case colorKindRGB:
		if mode == ColorModeDimmed {
			return c.rgb.Dimmed()
		}
		return c.rgb
	default:
		rgb := p.DefaultForeground
		if target == TargetBackground {
			rgb = p.DefaultBackground
		}
		if mode == ColorModeDimmed {
			rgb = rgb.Dimmed()
		}
		return rgb
	}
}

// DefaultPair returns the default foreground/background pair.
func (p *Palette) DefaultPair() RGBPair {
	return RGBPair{Foreground: p.DefaultForeground, Background: p.DefaultBackground}
}
