// Package term runs the game directly on a tcell screen with a blocking,
// fixed-rate loop.
package term

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// cellWidth is the number of terminal columns per grid cell.
const cellWidth = 2

// ErrScreenTooSmall is returned when the terminal cannot fit the board.
var ErrScreenTooSmall = errors.New("terminal too small for board")

// Session owns the terminal for the lifetime of one game. It is the game's
// Renderer, InputSource and Clock. Close must be called on every exit path.
type Session struct {
	screen tcell.Screen
	grid   core.Grid
	events chan tcell.Event
	done   chan struct{} // Closed by Close
	clock  *Ticker

	closeOnce sync.Once
}

// Open initializes the terminal screen and starts reading input.
func Open(grid core.Grid) (*Session, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	w, h := screen.Size()
	needW, needH := boardSize(grid)
	if w < needW || h < needH {
		screen.Fini()
		return nil, fmt.Errorf("need %dx%d, have %dx%d: %w", needW, needH, w, h, ErrScreenTooSmall)
	}

	s := newSession(screen, grid)
	go s.readEvents()
	return s, nil
}

func newSession(screen tcell.Screen, grid core.Grid) *Session {
	screen.HideCursor()
	return &Session{
		screen: screen,
		grid:   grid,
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
		clock:  NewTicker(),
	}
}

// readEvents forwards screen events until the session is closed.
func (s *Session) readEvents() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// boardSize returns the framed board size plus one help line.
func boardSize(g core.Grid) (w, h int) {
	return g.Cols()*cellWidth + 2, g.Rows() + 3
}

// Clear draws the frame and paints the board background.
func (s *Session) Clear(bg core.Color) {
	s.screen.Clear()
	w, h := boardSize(s.grid)
	h-- // help line

	frame := tcell.StyleDefault
	for x := 1; x < w-1; x++ {
		s.screen.SetContent(x, 0, '─', nil, frame)
		s.screen.SetContent(x, h-1, '─', nil, frame)
	}
	for y := 1; y < h-1; y++ {
		s.screen.SetContent(0, y, '│', nil, frame)
		s.screen.SetContent(w-1, y, '│', nil, frame)
	}
	s.screen.SetContent(0, 0, '┌', nil, frame)
	s.screen.SetContent(w-1, 0, '┐', nil, frame)
	s.screen.SetContent(0, h-1, '└', nil, frame)
	s.screen.SetContent(w-1, h-1, '┘', nil, frame)

	board := tcell.StyleDefault.Background(toTcell(bg))
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			s.screen.SetContent(x, y, ' ', nil, board)
		}
	}

	x := 0
	for _, r := range " arrows/wasd move • q quit" {
		s.screen.SetContent(x, h, r, nil, frame)
		x++
	}
}

// DrawCell draws one grid cell as two half blocks over the border color.
func (s *Session) DrawCell(c core.Cell, fill, border core.Color) {
	col, row := s.grid.ToGrid(s.grid.Wrap(c))
	x := 1 + col*cellWidth
	y := 1 + row
	style := tcell.StyleDefault.Foreground(toTcell(fill)).Background(toTcell(border))
	s.screen.SetContent(x, y, '▐', nil, style)
	s.screen.SetContent(x+1, y, '▌', nil, style)
}

// Present flushes the frame to the terminal.
func (s *Session) Present() error {
	s.screen.Show()
	return nil
}

// Poll drains the events queued since the last call without blocking.
func (s *Session) Poll() ([]snake.Event, error) {
	var out []snake.Event
	for {
		select {
		case ev := <-s.events:
			if _, ok := ev.(*tcell.EventResize); ok {
				s.screen.Sync()
				continue
			}
			if gev, ok := mapEvent(ev); ok {
				out = append(out, gev)
			}
		default:
			return out, nil
		}
	}
}

// Tick implements snake.Clock.
func (s *Session) Tick(fps int) {
	s.clock.Tick(fps)
}

// Close restores the terminal. Safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.screen.Fini()
	})
}

// mapEvent translates a tcell event into a game event.
func mapEvent(ev tcell.Event) (snake.Event, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return snake.Event{}, false
	}

	switch key.Key() {
	case tcell.KeyUp:
		return snake.KeyEvent(core.DirUp), true
	case tcell.KeyDown:
		return snake.KeyEvent(core.DirDown), true
	case tcell.KeyLeft:
		return snake.KeyEvent(core.DirLeft), true
	case tcell.KeyRight:
		return snake.KeyEvent(core.DirRight), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return snake.QuitEvent(), true
	case tcell.KeyRune:
		switch key.Rune() {
		case 'w', 'k':
			return snake.KeyEvent(core.DirUp), true
		case 's', 'j':
			return snake.KeyEvent(core.DirDown), true
		case 'a', 'h':
			return snake.KeyEvent(core.DirLeft), true
		case 'd', 'l':
			return snake.KeyEvent(core.DirRight), true
		case 'q':
			return snake.QuitEvent(), true
		}
	}
	return snake.Event{}, false
}

func toTcell(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Run plays one game on the terminal until the player quits or ctx is
// cancelled. The terminal is restored on every exit path.
func Run(ctx context.Context, cfg core.RuntimeConfig, logger *log.Logger) error {
	s, err := Open(cfg.Grid)
	if err != nil {
		return err
	}
	defer s.Close()

	loop := snake.NewLoop(cfg, s, logger)
	return loop.Run(ctx, s, s)
}
