// Package key defines the keyboard value model shared by the input
// subsystem: modifier bitmasks, non-printable key identifiers, and the
// event type that pairs them with a character.
//
// The types here are plain comparable values so that handlers can
// match on (modifier, rune) pairs directly in switch statements.
package key
