package vi

// Executor performs the semantic commands the input handler emits.
// It is implemented by the terminal: cursor motion, selection, search,
// yank and paste all mutate terminal state behind this interface.
//
// Executor callbacks must not feed new input events back into the
// Handler synchronously; the handler resets its count and pending
// state after the callback returns.
type Executor interface {
	// ModeChanged is called after every effective mode switch, e.g.
	// for cursor-shape or statusline updates.
	ModeChanged(mode Mode)

	// MoveCursor moves the cursor by motion, repeated count times.
	MoveCursor(motion Motion, count int)

	// Execute performs operator over the span covered by motion,
	// repeated count times.
	Execute(op Operator, motion Motion, count int)

	// Yank copies the given text object.
	Yank(scope TextObjectScope, textObject TextObject)

	// Select extends the selection over the given text object.
	Select(scope TextObjectScope, textObject TextObject)

	// Paste inserts the clipboard contents count times.
	Paste(count int)

	// Search lifecycle. UpdateSearchTerm is called on every edit of
	// the in-progress term; SearchDone commits it, SearchCancel
	// abandons it.
	SearchStart()
	SearchCancel()
	SearchDone()
	UpdateSearchTerm(term string)

	// SearchCurrentWord searches for the word under the cursor;
	// ReverseSearchCurrentWord searches backward.
	SearchCurrentWord()
	ReverseSearchCurrentWord()

	// JumpToNextMatch and JumpToPreviousMatch move the cursor across
	// count search results.
	JumpToNextMatch(count int)
	JumpToPreviousMatch(count int)

	// ScrollViewport scrolls the viewport by delta lines (positive is
	// toward scrollback).
	ScrollViewport(delta int)
}
