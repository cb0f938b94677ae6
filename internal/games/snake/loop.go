package snake

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Loop owns one game and drives it one tick at a time:
// input, move, eat, render.
type Loop struct {
	cfg      core.RuntimeConfig
	snake    *Snake
	food     *Food
	renderer Renderer
	logger   *log.Logger

	tick   uint64
	eaten  int
	resets int
}

// NewLoop creates a game with a fresh snake and food. A zero seed in cfg is
// replaced with the current time. A nil logger discards output.
func NewLoop(cfg core.RuntimeConfig, renderer Renderer, logger *log.Logger) *Loop {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	return &Loop{
		cfg:      cfg,
		snake:    NewSnake(cfg.Grid, rng, cfg.Palette.Snake),
		food:     NewFood(cfg.Grid, rng, cfg.Palette.Apple),
		renderer: renderer,
		logger:   logger,
	}
}

// Snake returns the game's snake.
func (l *Loop) Snake() *Snake {
	return l.snake
}

// Food returns the game's food.
func (l *Loop) Food() *Food {
	return l.food
}

// Config returns the runtime config the game was built with.
func (l *Loop) Config() core.RuntimeConfig {
	return l.cfg
}

// Step runs one tick without waiting: apply input, move, eat, render.
// A batch holding a quit request leaves the game state untouched.
func (l *Loop) Step(events []Event) (quit bool, err error) {
	if ApplyInput(l.snake, events) {
		return true, nil
	}

	l.tick++
	if l.snake.Move() {
		l.resets++
		l.logger.Debug("self collision, snake reset", "tick", l.tick, "resets", l.resets)
	}

	if l.snake.Head() == l.food.Position() {
		l.snake.Grow()
		l.food.Relocate()
		l.eaten++
		l.logger.Debug("food eaten",
			"tick", l.tick,
			"len", l.snake.Len(),
			"food", l.food.Position(),
		)
	}

	return false, l.Render()
}

// Render draws the current frame.
func (l *Loop) Render() error {
	p := l.cfg.Palette
	l.renderer.Clear(p.Background)
	Draw(l.renderer, l.snake, p.Border)
	Draw(l.renderer, l.food, p.Border)
	if err := l.renderer.Present(); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}

// Run ticks at the configured rate until input asks to quit or ctx is
// cancelled. Collaborator failures end the loop with an error.
func (l *Loop) Run(ctx context.Context, input InputSource, clock Clock) error {
	l.logger.Info("game started",
		"board", fmt.Sprintf("%dx%d", l.cfg.Grid.Cols(), l.cfg.Grid.Rows()),
		"fps", l.cfg.TickRate,
		"seed", l.cfg.Seed,
	)

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("game cancelled", "tick", l.tick)
			return nil
		default:
		}

		clock.Tick(l.cfg.TickRate)

		events, err := input.Poll()
		if err != nil {
			return fmt.Errorf("poll input: %w", err)
		}

		quit, err := l.Step(events)
		if err != nil {
			return err
		}
		if quit {
			l.logger.Info("game quit", "tick", l.tick, "len", l.snake.Len(), "eaten", l.eaten)
			return nil
		}
	}
}
