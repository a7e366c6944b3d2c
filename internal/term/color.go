package term

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// NewRGB creates an RGB color from its channels.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// ParseRGB parses a "#rrggbb" hex string.
func ParseRGB(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Hex returns the "#rrggbb" form of the color.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Inverted returns the channel-wise complement.
func (c RGB) Inverted() RGB {
	return RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Mix blends a over b; t is the weight of a, so t=1 yields a and t=0
// yields b.
func Mix(a, b RGB, t float64) RGB {
	return fromColorful(b.colorful().BlendRgb(a.colorful(), t))
}

// Dimmed returns the color at half intensity.
func (c RGB) Dimmed() RGB {
	return Mix(RGB{}, c, 0.5)
}

// RGBPair is a resolved foreground/background color pair.
type RGBPair struct {
	Foreground RGB
	Background RGB
}

// NewRGBPair creates a pair from foreground and background.
func NewRGBPair(fg, bg RGB) RGBPair {
	return RGBPair{Foreground: fg, Background: bg}
}

// Swapped returns the pair with foreground and background exchanged.
func (p RGBPair) Swapped() RGBPair {
	return RGBPair{Foreground: p.Background, Background: p.Foreground}
}

// AllBackground returns the pair with the foreground erased into the
// background, rendering text invisible.
func (p RGBPair) AllBackground() RGBPair {
	return RGBPair{Foreground: p.Background, Background: p.Background}
}

// Distinct guarantees the foreground remains legible: if both colors
// collapsed to the same value the foreground is inverted.
func (p RGBPair) Distinct() RGBPair {
	if p.Foreground != p.Background {
		return p
	}
	return RGBPair{Foreground: p.Foreground.Inverted(), Background: p.Background}
}

// MixPair blends pair a over pair b component-wise; t is the weight
// of a.
func MixPair(a, b RGBPair, t float64) RGBPair {
	return RGBPair{
		Foreground: Mix(a.Foreground, b.Foreground, t),
		Background: Mix(a.Background, b.Background, t),
	}
}

type colorKind uint8

const (
	colorKindDefault colorKind = iota
	colorKindIndexed
	colorKindBright
	colorKindRGB
)

// Color is a cell color as written by the application: the default
// color, one of the 256 indexed colors, one of the 8 bright colors, or
// an explicit 24-bit color. Resolution against a palette happens in
// Palette.Apply.
type Color struct {
	kind  colorKind
	index uint8
	rgb   RGB
}

// DefaultColor returns the default (palette-resolved) color.
func DefaultColor() Color {
	return Color{kind: colorKindDefault}
}

// IndexedColor returns the indexed color i of the 256-color table.
func IndexedColor(i uint8) Color {
	return Color{kind: colorKindIndexed, index: i}
}

// BrightColor returns the bright variant of base color i (0..7).
func BrightColor(i uint8) Color {
	return Color{kind: colorKindBright, index: i & 7}
}

// RGBColor returns an explicit 24-bit color.
func RGBColor(c RGB) Color {
	return Color{kind: colorKindRGB, rgb: c}
}

// IsDefault reports whether the color is the default color.
func (c Color) IsDefault() bool {
	return c.kind == colorKindDefault
}

// String returns a human-readable form of the color.
func (c Color) String() string {
	switch c.kind {
	case colorKindIndexed:
		return fmt.Sprintf("indexed(%d)", c.index)
	case colorKindBright:
		return fmt.Sprintf("bright(%d)", c.index)
	case colorKindRGB:
		return c.rgb.Hex()
	default:
		return "default"
	}
}

type cellColorKind uint8

const (
	cellColorCellForeground cellColorKind = iota
	cellColorCellBackground
	cellColorRGB
)

// CellColorSpec is a configurable overlay color: either a reference to
// the cell's already-resolved foreground or background, or an explicit
// color.
type CellColorSpec struct {
	kind cellColorKind
	rgb  RGB
}

// CellForeground references the cell's resolved foreground color.
func CellForeground() CellColorSpec {
	return CellColorSpec{kind: cellColorCellForeground}
}

// CellBackground references the cell's resolved background color.
func CellBackground() CellColorSpec {
	return CellColorSpec{kind: cellColorCellBackground}
}

// CellRGB is an explicit overlay color.
func CellRGB(c RGB) CellColorSpec {
	return CellColorSpec{kind: cellColorRGB, rgb: c}
}

// Resolve materializes the spec against the cell's resolved colors.
func (s CellColorSpec) Resolve(actual RGBPair) RGB {
	switch s.kind {
	case cellColorCellForeground:
		return actual.Foreground
	case cellColorCellBackground:
		return actual.Background
	default:
		return s.rgb
	}
}

// OverlayColors describes a highlight overlay (selection, yank
// highlight, search match) as a color pair with per-channel opacity.
// An alpha of 1 replaces the cell color entirely, 0 keeps it.
type OverlayColors struct {
	Foreground      CellColorSpec
	ForegroundAlpha float64
	Background      CellColorSpec
	BackgroundAlpha float64
}

// Apply blends the overlay over the cell's resolved colors. The result
// is forced distinct so overlaid text stays legible.
func (o OverlayColors) Apply(actual RGBPair) RGBPair {
	return RGBPair{
		Foreground: Mix(o.Foreground.Resolve(actual), actual.Foreground, o.ForegroundAlpha),
		Background: Mix(o.Background.Resolve(actual), actual.Background, o.BackgroundAlpha),
	}.Distinct()
}
