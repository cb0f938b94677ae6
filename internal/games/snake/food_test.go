package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestFoodRelocateStaysOnGrid(t *testing.T) {
	f := NewFood(testGrid, rand.New(rand.NewSource(99)), core.ColorApple)

	for i := 0; i < 5000; i++ {
		f.Relocate()
		p := f.Position()
		if p.X%testGrid.CellSize != 0 || p.Y%testGrid.CellSize != 0 {
			t.Fatalf("Position() = %v is not a cell multiple", p)
		}
		if p.X < 0 || p.X >= testGrid.Width || p.Y < 0 || p.Y >= testGrid.Height {
			t.Fatalf("Position() = %v is off the board", p)
		}
	}
}

func TestFoodRelocateReachesEveryCell(t *testing.T) {
	small := core.Grid{Width: 60, Height: 40, CellSize: 20}
	f := NewFood(small, rand.New(rand.NewSource(5)), core.ColorApple)

	seen := make(map[core.Cell]bool)
	for i := 0; i < 1000; i++ {
		f.Relocate()
		seen[f.Position()] = true
	}
	if len(seen) != small.Cols()*small.Rows() {
		t.Errorf("visited %d cells, expected %d", len(seen), small.Cols()*small.Rows())
	}
}

func TestFoodDrawable(t *testing.T) {
	f := NewFood(testGrid, rand.New(rand.NewSource(1)), core.ColorApple)

	var d Drawable = f
	cells := d.Cells()
	if len(cells) != 1 || cells[0] != f.Position() {
		t.Errorf("Cells() = %v, expected [%v]", cells, f.Position())
	}
	if d.Fill() != core.ColorApple {
		t.Errorf("Fill() = %+v, expected apple color", d.Fill())
	}
}
