package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestApplyInputRequestsDirections(t *testing.T) {
	s := newTestSnake(20)
	setBody(s, core.DirRight, testGrid.Center())

	quit := ApplyInput(s, []Event{KeyEvent(core.DirLeft), KeyEvent(core.DirDown)})

	if quit {
		t.Error("ApplyInput() reported quit without a quit event")
	}
	if s.NextDirection() != core.DirDown {
		t.Errorf("NextDirection() = %v, expected down", s.NextDirection())
	}
}

func TestApplyInputQuitDiscardsBatch(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
	}{
		{"quit first", []Event{QuitEvent(), KeyEvent(core.DirUp)}},
		{"quit last", []Event{KeyEvent(core.DirUp), QuitEvent()}},
		{"quit between", []Event{KeyEvent(core.DirDown), QuitEvent(), KeyEvent(core.DirUp)}},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSnake(int64(21 + i))
			setBody(s, core.DirRight, testGrid.Center())

			if !ApplyInput(s, tc.events) {
				t.Fatal("ApplyInput() did not report quit")
			}
			if s.NextDirection() != core.DirRight {
				t.Errorf("NextDirection() = %v, expected right", s.NextDirection())
			}
		})
	}
}

func TestApplyInputEmpty(t *testing.T) {
	s := newTestSnake(22)
	if ApplyInput(s, nil) {
		t.Error("ApplyInput(nil) reported quit")
	}
}
