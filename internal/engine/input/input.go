// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventKeyDown
	EventResize
)

// Event represents a processed input event.
type Event struct {
	Type EventType
	Key  sdl.Scancode

	// Width and Height carry the new drawable size for EventResize.
	Width  int32
	Height int32
}

// Input polls and translates SDL events.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events. Returns true if the application should quit
// (window closed or escape pressed).
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
				if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					return true
				}
			}

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{Type: EventResize, Width: e.Data1, Height: e.Data2})
			}
		}
	}

	return false
}

// Events returns the events gathered by the last Update call.
func (i *Input) Events() []Event {
	return i.events
}
