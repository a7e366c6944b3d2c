package vi

// Mode is the active modal-editing state gating how input is
// interpreted. Exactly one mode is active at a time.
type Mode uint8

const (
	// ModeInsert passes input through to the terminal unmodified.
	ModeInsert Mode = iota

	// ModeNormal interprets input as motions and operators.
	ModeNormal

	// ModeVisual extends a character-wise selection with motions.
	ModeVisual

	// ModeVisualLine extends a line-wise selection.
	ModeVisualLine

	// ModeVisualBlock extends a rectangular selection.
	ModeVisualBlock
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "insert"
	case ModeNormal:
		return "normal"
	case ModeVisual:
		return "visual"
	case ModeVisualLine:
		return "visualLine"
	case ModeVisualBlock:
		return "visualBlock"
	default:
		return "unknown"
	}
}

// IsVisual returns true for the three visual submodes.
func (m Mode) IsVisual() bool {
	return m == ModeVisual || m == ModeVisualLine || m == ModeVisualBlock
}

// SearchEditMode governs whether character input is diverted into
// building a search term instead of being interpreted as a command.
type SearchEditMode uint8

const (
	// SearchDisabled means no search edit is in progress.
	SearchDisabled SearchEditMode = iota

	// SearchEnabled means a search edit started from within the modal
	// discipline ("/" in normal or visual mode).
	SearchEnabled

	// SearchExternallyEnabled means a search edit was started by a
	// non-modal context while the terminal was in insert mode; insert
	// mode is restored when the search completes or is cancelled.
	SearchExternallyEnabled
)

// String returns a string representation of the search edit mode.
func (s SearchEditMode) String() string {
	switch s {
	case SearchDisabled:
		return "disabled"
	case SearchEnabled:
		return "enabled"
	case SearchExternallyEnabled:
		return "externallyEnabled"
	default:
		return "unknown"
	}
}
