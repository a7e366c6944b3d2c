// Package backend provides display backend abstraction for the
// renderer: painting render buffers to a terminal and converting
// terminal input into key events.
package backend

import (
	"github.com/dshills/viterm/internal/input/key"
	"github.com/dshills/viterm/internal/renderer"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventPaste
	EventFocus
)

// MouseButton represents mouse button state.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields.
	Key key.Event

	// Mouse event fields.
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize event fields.
	Width, Height int

	// Focus event fields; also marks start vs end of a bracketed
	// paste.
	Focused bool
}

// Backend defines the interface for display backends. Implementations
// paint complete frames and deliver input events.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// Paint draws one complete frame. The frame is not retained.
	Paint(frame *renderer.RenderBuffer)

	// Show synchronizes the internal buffer with the actual display.
	Show()

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue.
	PostEvent(event Event)

	// HasTrueColor returns true if the backend supports 24-bit color.
	HasTrueColor() bool

	// Beep produces an audible or visual bell.
	Beep()

	// EnableMouse enables mouse event reporting.
	EnableMouse()

	// DisableMouse disables mouse event reporting.
	DisableMouse()

	// Suspend suspends the terminal (for shell escape).
	Suspend() error

	// Resume resumes from suspension.
	Resume() error
}

// NullBackend is a no-op backend for testing. It records the last
// painted frame and the flattened text per screen line.
type NullBackend struct {
	width, height int
	lastFrame     *renderer.RenderBuffer
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) Paint(frame *renderer.RenderBuffer) {
	b.lastFrame = frame
}

func (b *NullBackend) Show() {}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

func (b *NullBackend) HasTrueColor() bool { return true }
func (b *NullBackend) Beep()              {}
func (b *NullBackend) EnableMouse()       {}
func (b *NullBackend) DisableMouse()      {}
func (b *NullBackend) Suspend() error     { return nil }
func (b *NullBackend) Resume() error      { return nil }

// LastFrame returns the most recently painted frame for testing.
func (b *NullBackend) LastFrame() *renderer.RenderBuffer {
	return b.lastFrame
}
