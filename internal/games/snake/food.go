package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food is the single apple on the board.
//
// Relocation does not avoid the snake: an apple may appear under the body
// and becomes reachable once the snake moves off it.
type Food struct {
	grid     core.Grid
	rng      *rand.Rand
	color    core.Color
	position core.Cell
}

// NewFood creates food at a random cell.
func NewFood(grid core.Grid, rng *rand.Rand, color core.Color) *Food {
	f := &Food{
		grid:  grid,
		rng:   rng,
		color: color,
	}
	f.Relocate()
	return f
}

// Relocate moves the food to a cell drawn uniformly over the board.
func (f *Food) Relocate() {
	f.position = f.grid.RandomCell(f.rng)
}

// Position returns the current cell.
func (f *Food) Position() core.Cell {
	return f.position
}

// Cells implements Drawable.
func (f *Food) Cells() []core.Cell {
	return []core.Cell{f.position}
}

// Fill implements Drawable.
func (f *Food) Fill() core.Color {
	return f.color
}
