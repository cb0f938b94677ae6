// Package snake implements the wrap-around snake game: the snake itself,
// the food it chases, input handling and the fixed-rate game loop.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is an ordered run of cells with the head at index 0.
type Snake struct {
	grid  core.Grid
	rng   *rand.Rand
	color core.Color

	body      []core.Cell
	direction core.Direction
	nextDir   core.Direction // Applied on the next Move
}

// NewSnake creates a snake in its starting state: one segment at the board
// center heading in a random direction.
func NewSnake(grid core.Grid, rng *rand.Rand, color core.Color) *Snake {
	s := &Snake{
		grid:  grid,
		rng:   rng,
		color: color,
	}
	s.Reset()
	return s
}

// Reset overwrites the snake with a freshly built starting state.
// The color and board are kept.
func (s *Snake) Reset() {
	dir := core.Directions[s.rng.Intn(len(core.Directions))]
	s.body = []core.Cell{s.grid.Center()}
	s.direction = dir
	s.nextDir = dir
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Cell {
	out := make([]core.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Direction returns the direction used by the last move.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// NextDirection returns the direction the next move will take.
func (s *Snake) NextDirection() core.Direction {
	return s.nextDir
}

// RequestDirection buffers d for the next move unless it would reverse the
// current direction. It reports whether the request was accepted.
func (s *Snake) RequestDirection(d core.Direction) bool {
	if d.IsOpposite(s.direction) {
		return false
	}
	s.nextDir = d
	return true
}

// Move advances the snake one cell. If the new head lands on any current
// segment the snake is reset instead and Move returns true.
func (s *Snake) Move() (collided bool) {
	s.direction = s.nextDir
	newHead := s.grid.Step(s.Head(), s.direction)

	// The tail has not been dropped yet, so stepping into it counts.
	if s.occupies(newHead) {
		s.Reset()
		return true
	}

	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead
	return false
}

// Grow appends a copy of the tail; the next Move keeps the extra segment.
func (s *Snake) Grow() {
	s.body = append(s.body, s.body[len(s.body)-1])
}

func (s *Snake) occupies(c core.Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// Cells implements Drawable.
func (s *Snake) Cells() []core.Cell {
	return s.body
}

// Fill implements Drawable.
func (s *Snake) Fill() core.Color {
	return s.color
}
