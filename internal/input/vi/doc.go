// Package vi implements the modal key-interpretation state machine for
// the terminal's vi-style input discipline.
//
// The Handler owns the active mode (insert, normal, visual,
// visual-line, visual-block), a numeric repeat count, a pending
// operator, a pending text-object scope, and the incremental
// search-edit state. It consumes key and character events and emits
// semantic commands (motions, yanks, selections, search updates) to an
// Executor collaborator, which performs them against the terminal.
//
// # Grammar
//
// Normal and visual mode input follows the vi shape:
//
//	[count][motion]            e.g. "12j"
//	[count]<command>           e.g. "3p", "2n"
//	[operator][scope][object]  e.g. "yi(" (yank inner parentheses)
//	yy / Y                     full-line yank
//
// A mode switch is a hard reset point: count, pending operator, and
// pending text-object scope are all cleared.
//
// While a search edit is active (after "/" or an external request),
// character input is diverted into the search term instead of being
// interpreted as commands.
package vi
