package vi

// Operator is an operator awaiting a motion or text object.
type Operator uint8

const (
	// OpNone represents no pending operator; a bare motion moves the
	// cursor.
	OpNone Operator = iota

	// OpMoveCursor moves the cursor by the given motion.
	OpMoveCursor

	// OpYank copies the span covered by the motion or text object.
	OpYank

	// OpPaste inserts the clipboard contents.
	OpPaste

	// OpReverseSearchCurrentWord searches backward for the word under
	// the cursor.
	OpReverseSearchCurrentWord
)

// String returns a string representation of the operator.
func (o Operator) String() string {
	switch o {
	case OpMoveCursor:
		return "moveCursor"
	case OpYank:
		return "yank"
	case OpPaste:
		return "paste"
	case OpReverseSearchCurrentWord:
		return "reverseSearchCurrentWord"
	default:
		return "none"
	}
}
