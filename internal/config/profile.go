package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/viterm/internal/term"
)

// OverlayConfig configures one highlight overlay. Foreground and
// Background are hex colors or the special references "CellForeground"
// and "CellBackground"; the alphas blend the overlay over the cell
// colors (1 replaces, 0 keeps).
type OverlayConfig struct {
	Foreground      string  `toml:"foreground"`
	Background      string  `toml:"background"`
	ForegroundAlpha float64 `toml:"foreground_alpha"`
	BackgroundAlpha float64 `toml:"background_alpha"`
}

// ColorsConfig configures the palette.
type ColorsConfig struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`

	// Ansi overrides the first 16 palette entries.
	Ansi []string `toml:"ansi"`

	// UseBrightColors promotes bold text on base colors to bright.
	UseBrightColors bool `toml:"use_bright_colors"`

	Selection              OverlayConfig `toml:"selection"`
	YankHighlight          OverlayConfig `toml:"yank_highlight"`
	SearchHighlight        OverlayConfig `toml:"search_highlight"`
	SearchHighlightFocused OverlayConfig `toml:"search_highlight_focused"`
}

// CursorConfig configures the cursor.
type CursorConfig struct {
	// Shape is one of "block", "rectangle", "underscore", "bar".
	Shape string `toml:"shape"`

	// Color paints the cursor body; TextOverrideColor the text under
	// it. Both accept hex colors or cell-color references.
	Color             string `toml:"color"`
	TextOverrideColor string `toml:"text_override_color"`
}

// Profile is the terminal profile.
type Profile struct {
	// Lines and Columns set the initial page size for backends that
	// support it.
	Lines   int `toml:"lines"`
	Columns int `toml:"columns"`

	// HighlightSearchMatches recolors search matches while a search is
	// active.
	HighlightSearchMatches bool `toml:"highlight_search_matches"`

	Cursor CursorConfig `toml:"cursor"`
	Colors ColorsConfig `toml:"colors"`
}

// DefaultProfile returns the built-in profile.
func DefaultProfile() *Profile {
	return &Profile{
		Lines:                  25,
		Columns:                80,
		HighlightSearchMatches: true,
		Cursor: CursorConfig{
			Shape:             "block",
			Color:             "#c0c0c0",
			TextOverrideColor: "CellBackground",
		},
		Colors: ColorsConfig{
			Foreground:      "#d0d0d0",
			Background:      "#000000",
			UseBrightColors: true,
			Selection: OverlayConfig{
				Foreground:      "CellBackground",
				Background:      "CellForeground",
				ForegroundAlpha: 1,
				BackgroundAlpha: 1,
			},
			YankHighlight: OverlayConfig{
				Foreground:      "#000000",
				Background:      "#ffa500",
				ForegroundAlpha: 1,
				BackgroundAlpha: 1,
			},
			SearchHighlight: OverlayConfig{
				Foreground:      "#000000",
				Background:      "#909040",
				ForegroundAlpha: 1,
				BackgroundAlpha: 1,
			},
			SearchHighlightFocused: OverlayConfig{
				Foreground:      "#000000",
				Background:      "#ffff00",
				ForegroundAlpha: 1,
				BackgroundAlpha: 1,
			},
		},
	}
}

// Load reads a profile from path, overlaying it on the defaults. A
// missing file is not an error and yields the default profile.
func Load(path string) (*Profile, error) {
	profile := DefaultProfile()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return profile, nil
		}
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, profile); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return profile, nil
}

// Validate checks the profile for out-of-range values.
func (p *Profile) Validate() error {
	if p.Lines < 1 || p.Columns < 1 {
		return fmt.Errorf("page size %dx%d must be positive", p.Columns, p.Lines)
	}
	for _, o := range []OverlayConfig{
		p.Colors.Selection,
		p.Colors.YankHighlight,
		p.Colors.SearchHighlight,
		p.Colors.SearchHighlightFocused,
	} {
		if o.ForegroundAlpha < 0 || o.ForegroundAlpha > 1 || o.BackgroundAlpha < 0 || o.BackgroundAlpha > 1 {
			return fmt.Errorf("overlay alpha must be within [0, 1]")
		}
	}
	return nil
}

// Palette converts the profile's color configuration into a palette.
func (p *Profile) Palette() (*term.Palette, error) {
	palette := term.NewPalette()
	palette.UseBrightColors = p.Colors.UseBrightColors

	var err error
	if palette.DefaultForeground, err = term.ParseRGB(p.Colors.Foreground); err != nil {
		return nil, err
	}
	if palette.DefaultBackground, err = term.ParseRGB(p.Colors.Background); err != nil {
		return nil, err
	}

	if len(p.Colors.Ansi) > 16 {
		return nil, fmt.Errorf("ansi color list has %d entries, at most 16 allowed", len(p.Colors.Ansi))
	}
	for i, hex := range p.Colors.Ansi {
		if palette.Indexed[i], err = term.ParseRGB(hex); err != nil {
			return nil, err
		}
	}

	if palette.Selection, err = p.Colors.Selection.overlay(); err != nil {
		return nil, err
	}
	if palette.YankHighlight, err = p.Colors.YankHighlight.overlay(); err != nil {
		return nil, err
	}
	if palette.SearchHighlight, err = p.Colors.SearchHighlight.overlay(); err != nil {
		return nil, err
	}
	if palette.SearchHighlightFocused, err = p.Colors.SearchHighlightFocused.overlay(); err != nil {
		return nil, err
	}

	if palette.Cursor.Color, err = parseCellColor(p.Cursor.Color); err != nil {
		return nil, err
	}
	if palette.Cursor.TextOverrideColor, err = parseCellColor(p.Cursor.TextOverrideColor); err != nil {
		return nil, err
	}

	return palette, nil
}

// CursorShape returns the configured cursor shape.
func (p *Profile) CursorShape() term.CursorShape {
	return term.CursorShapeFromString(p.Cursor.Shape)
}

func (o OverlayConfig) overlay() (term.OverlayColors, error) {
	fg, err := parseCellColor(o.Foreground)
	if err != nil {
		return term.OverlayColors{}, err
	}
	bg, err := parseCellColor(o.Background)
	if err != nil {
		return term.OverlayColors{}, err
	}
	return term.OverlayColors{
		Foreground:      fg,
		ForegroundAlpha: o.ForegroundAlpha,
		Background:      bg,
		BackgroundAlpha: o.BackgroundAlpha,
	}, nil
}

func parseCellColor(s string) (term.CellColorSpec, error) {
	switch s {
	case "CellForeground":
		return term.CellForeground(), nil
	case "CellBackground":
		return term.CellBackground(), nil
	default:
		rgb, err := term.ParseRGB(s)
		if err != nil {
			return term.CellColorSpec{}, err
		}
		return term.CellRGB(rgb), nil
	}
}

// ParseError represents an error while parsing a profile file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
