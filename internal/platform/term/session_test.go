package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var smallGrid = core.Grid{Width: 100, Height: 60, CellSize: 20} // 5x3 cells

func newSimSession(t *testing.T) (*Session, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(40, 10)
	s := newSession(sim, smallGrid)
	t.Cleanup(s.Close)
	return s, sim
}

func TestMapEvent(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		expected snake.Event
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), snake.KeyEvent(core.DirUp)},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), snake.KeyEvent(core.DirDown)},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), snake.KeyEvent(core.DirLeft)},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), snake.KeyEvent(core.DirRight)},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), snake.KeyEvent(core.DirUp)},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), snake.KeyEvent(core.DirRight)},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), snake.QuitEvent()},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), snake.QuitEvent()},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), snake.QuitEvent()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev, ok := mapEvent(tc.ev)
			if !ok {
				t.Fatal("mapEvent() ignored the key")
			}
			if ev != tc.expected {
				t.Errorf("mapEvent() = %+v, expected %+v", ev, tc.expected)
			}
		})
	}

	if _, ok := mapEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); ok {
		t.Error("mapEvent() should ignore unbound runes")
	}
}

func TestPollDrainsQueue(t *testing.T) {
	s, _ := newSimSession(t)
	s.events <- tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	s.events <- tcell.NewEventResize(40, 10)
	s.events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)

	events, err := s.Poll()
	if err != nil {
		t.Fatalf("Poll() error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("Poll() returned %d events, expected 2", len(events))
	}
	if events[0] != snake.KeyEvent(core.DirUp) || events[1] != snake.QuitEvent() {
		t.Errorf("Poll() = %+v", events)
	}

	events, _ = s.Poll()
	if len(events) != 0 {
		t.Errorf("second Poll() returned %d events, expected none", len(events))
	}
}

func TestSessionDrawsBoard(t *testing.T) {
	s, sim := newSimSession(t)

	s.Clear(core.ColorBlack)
	s.DrawCell(core.Cell{X: 40, Y: 20}, core.ColorSnake, core.ColorBorder)
	if err := s.Present(); err != nil {
		t.Fatalf("Present() error: %v", err)
	}

	if r, _, _, _ := sim.GetContent(0, 0); r != '┌' {
		t.Errorf("corner = %q, expected ┌", r)
	}
	// Column 2, row 1 -> x = 1 + 2*2, y = 2
	left, _, style, _ := sim.GetContent(5, 2)
	right, _, _, _ := sim.GetContent(6, 2)
	if left != '▐' || right != '▌' {
		t.Errorf("cell = %q%q, expected ▐▌", left, right)
	}
	fg, bg, _ := style.Decompose()
	if fg != toTcell(core.ColorSnake) || bg != toTcell(core.ColorBorder) {
		t.Errorf("cell colors fg=%v bg=%v", fg, bg)
	}
}

func TestCloseTwice(t *testing.T) {
	s, _ := newSimSession(t)
	s.Close()
	s.Close()
}

func TestReadEventsStopsOnClose(t *testing.T) {
	s, sim := newSimSession(t)
	for len(s.events) < cap(s.events) {
		s.events <- tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	}
	if err := sim.PostEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent() error: %v", err)
	}

	// Nobody polls the full queue, so the reader can only leave through Close
	exited := make(chan struct{})
	go func() {
		s.readEvents()
		close(exited)
	}()

	s.Close()
	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("event reader still running after Close")
	}
}

func TestLoopOnSimulationScreen(t *testing.T) {
	s, _ := newSimSession(t)
	cfg := core.DefaultConfig()
	cfg.Grid = smallGrid
	cfg.Seed = 3

	loop := snake.NewLoop(cfg, s, nil)
	s.events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)

	events, err := s.Poll()
	if err != nil {
		t.Fatalf("Poll() error: %v", err)
	}
	quit, err := loop.Step(events)
	if err != nil || !quit {
		t.Errorf("Step() = %v, %v; expected quit", quit, err)
	}
}
