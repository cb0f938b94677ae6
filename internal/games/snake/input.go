package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// EventKind distinguishes input events.
type EventKind int

const (
	EventKey  EventKind = iota // A directional key press
	EventQuit                  // Window closed or quit key pressed
)

// Event is one platform input event, already mapped to game terms.
type Event struct {
	Kind EventKind
	Dir  core.Direction // Set for EventKey
}

// KeyEvent returns a key press event for d.
func KeyEvent(d core.Direction) Event {
	return Event{Kind: EventKey, Dir: d}
}

// QuitEvent returns a quit request.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// ApplyInput turns events into direction requests, in order. A batch that
// holds a quit event applies nothing and reports the quit.
func ApplyInput(s *Snake, events []Event) (quit bool) {
	for _, ev := range events {
		if ev.Kind == EventQuit {
			return true
		}
	}
	for _, ev := range events {
		if ev.Kind == EventKey {
			s.RequestDirection(ev.Dir)
		}
	}
	return false
}
