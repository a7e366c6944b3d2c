package renderer

import "github.com/dshills/viterm/internal/term"

// makeColors resolves a cell's final color pair: SGR attributes first,
// then the overlays in priority order. A yank highlight beats both the
// selection and the cursor; the cursor beats the selection, blending
// with the selection colors where they coincide.
func makeColors(
	p *term.Palette,
	flags term.CellFlags,
	reverseVideo bool,
	fg, bg term.Color,
	selected, isCursor, isHighlighted, blink, rapidBlink bool,
) term.RGBPair {
	sgrColors := term.MakeColors(p, flags, reverseVideo, fg, bg, blink, rapidBlink)

	if !selected && !isCursor && !isHighlighted {
		return sgrColors
	}

	if isHighlighted {
		return p.YankHighlight.Apply(sgrColors)
	}

	selectionColors := sgrColors
	if selected {
		selectionColors = p.Selection.Apply(sgrColors)
	}
	if !isCursor {
		return selectionColors
	}

	if !selected {
		return term.RGBPair{
			Foreground: p.Cursor.TextOverrideColor.Resolve(sgrColors),
			Background: p.Cursor.Color.Resolve(sgrColors),
		}.Distinct()
	}

	cursorColors := term.RGBPair{
		Foreground: p.Cursor.TextOverrideColor.Resolve(selectionColors),
		Background: p.Cursor.Color.Resolve(selectionColors),
	}
	return term.MixPair(cursorColors, selectionColors, 0.25).Distinct()
}
