package vi

import (
	"log"

	"github.com/dshills/viterm/internal/input/key"
)

// startSearch opens the search editor from normal or visual mode.
func (h *Handler) startSearch() {
	h.searchEdit = SearchEnabled
	h.searchTerm = h.searchTerm[:0]
	h.executor.SearchStart()
}

// StartSearchExternally opens the search editor on behalf of the
// application (e.g. a menu action) rather than a '/' key press. If the
// terminal was in insert mode it is returned there when the search
// editor closes.
func (h *Handler) StartSearchExternally() {
	h.searchTerm = h.searchTerm[:0]
	h.executor.SearchStart()

	if h.mode != ModeInsert {
		h.searchEdit = SearchEnabled
	} else {
		h.searchEdit = SearchExternallyEnabled
		h.SetMode(ModeNormal)
	}
}

// handleSearchEditor edits the in-progress search term. It always
// swallows the input.
func (h *Handler) handleSearchEditor(ch rune, mod key.Modifier) bool {
	switch (match{mod, ch}) {
	case match{key.ModNone, 0x1B}: // Escape
		h.searchTerm = h.searchTerm[:0]
		if h.searchEdit == SearchExternallyEnabled {
			h.SetMode(ModeInsert)
		}
		h.searchEdit = SearchDisabled
		h.executor.SearchCancel()
	case match{key.ModNone, 0x0D}: // Enter
		if h.searchEdit == SearchExternallyEnabled {
			h.SetMode(ModeInsert)
		}
		h.searchEdit = SearchDisabled
		h.executor.SearchDone()
	case match{key.ModNone, 0x08}, match{key.ModNone, 0x7F}: // Backspace
		if len(h.searchTerm) > 0 {
			h.searchTerm = h.searchTerm[:len(h.searchTerm)-1]
		}
		h.executor.UpdateSearchTerm(string(h.searchTerm))
	case match{key.ModCtrl, 'L'}, match{key.ModCtrl, 'U'}:
		h.searchTerm = h.searchTerm[:0]
		h.executor.UpdateSearchTerm(string(h.searchTerm))
	case match{key.ModCtrl, 'A'}, match{key.ModCtrl, 'E'}:
		// TODO: move the term cursor to begin/end once the search
		// editor tracks a cursor position.
	default:
		if ch >= 0x20 && mod.Without(key.ModShift).IsEmpty() {
			h.searchTerm = append(h.searchTerm, ch)
			h.executor.UpdateSearchTerm(string(h.searchTerm))
		} else {
			log.Printf("vi: ignoring search editor input %v+%q", mod, ch)
		}
	}
	return true
}
