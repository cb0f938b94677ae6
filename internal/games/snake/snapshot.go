package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the game state for determinism testing and the HUD.
type Snapshot struct {
	Tick     uint64
	SnakeLen int
	Head     core.Cell
	Dir      core.Direction
	NextDir  core.Direction
	Food     core.Cell
	Eaten    int // Food eaten since start
	Resets   int // Self collisions since start
}

// Snapshot returns the current game snapshot.
func (l *Loop) Snapshot() Snapshot {
	return Snapshot{
		Tick:     l.tick,
		SnakeLen: l.snake.Len(),
		Head:     l.snake.Head(),
		Dir:      l.snake.Direction(),
		NextDir:  l.snake.NextDirection(),
		Food:     l.food.Position(),
		Eaten:    l.eaten,
		Resets:   l.resets,
	}
}

// HUD returns a one-line status summary.
func (s Snapshot) HUD() string {
	return fmt.Sprintf(" Snake | Length: %d  Eaten: %d  Resets: %d", s.SnakeLen, s.Eaten, s.Resets)
}
