package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var smallGrid = core.Grid{Width: 100, Height: 60, CellSize: 20} // 5x3 cells

func TestBoardSize(t *testing.T) {
	w, h := BoardSize(core.DefaultConfig().Grid)
	if w != 66 || h != 26 {
		t.Errorf("BoardSize() = %dx%d, expected 66x26", w, h)
	}
}

func TestScreenRendererClear(t *testing.T) {
	r := NewScreenRenderer(smallGrid)
	r.Clear(core.ColorBlack)
	s := r.Screen()

	if s.Width() != 12 || s.Height() != 6 {
		t.Fatalf("screen is %dx%d, expected 12x6", s.Width(), s.Height())
	}
	if s.Get(0, 1) != '┌' || s.Get(11, 5) != '┘' {
		t.Error("Clear() should draw the frame below the status line")
	}
	if s.GetCell(0, 0).Colored {
		t.Error("status line should keep the terminal background")
	}
	inner := s.GetCell(1, 2)
	if !inner.Colored || inner.Bg != core.ColorBlack {
		t.Errorf("board cell = %+v, expected black background", inner)
	}
}

func TestScreenRendererDrawCell(t *testing.T) {
	r := NewScreenRenderer(smallGrid)
	r.Clear(core.ColorBlack)

	// Column 2, row 1 -> screen x = 1 + 2*2, y = status + 1 + 1
	r.DrawCell(core.Cell{X: 40, Y: 20}, core.ColorSnake, core.ColorBorder)
	s := r.Screen()

	left := s.GetCell(5, 3)
	right := s.GetCell(6, 3)
	if left.Rune != '▐' || right.Rune != '▌' {
		t.Errorf("cell runes = %q%q, expected ▐▌", left.Rune, right.Rune)
	}
	if left.Fg != core.ColorSnake || left.Bg != core.ColorBorder {
		t.Errorf("cell colors = %+v, expected snake on border", left)
	}

	if err := r.Present(); err != nil {
		t.Errorf("Present() error: %v", err)
	}
	if r.Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", r.Frames())
	}
}

func TestScreenRendererResizeCentersBoard(t *testing.T) {
	tests := []struct {
		name  string
		width int
		left  int
		w     int
	}{
		{"wider terminal", 20, 4, 20},
		{"odd spare column", 15, 1, 15},
		{"exact fit", 12, 0, 12},
		{"narrower terminal", 8, 0, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewScreenRenderer(smallGrid)
			r.Resize(tc.width)
			r.Clear(core.ColorBlack)
			r.DrawCell(core.Cell{X: 0, Y: 0}, core.ColorApple, core.ColorBorder)
			s := r.Screen()

			if s.Width() != tc.w || s.Height() != 6 {
				t.Fatalf("screen is %dx%d, expected %dx6", s.Width(), s.Height(), tc.w)
			}
			if s.Get(tc.left, 1) != '┌' || s.Get(tc.left+11, 5) != '┘' {
				t.Errorf("frame not at column %d", tc.left)
			}
			if s.Get(tc.left+1, 2) != '▐' {
				t.Errorf("origin cell not drawn at column %d", tc.left+1)
			}
			if tc.left > 0 && s.GetCell(tc.left-1, 2).Colored {
				t.Error("margin beside the board should not be painted")
			}
		})
	}
}

func TestScreenRendererDrawStatus(t *testing.T) {
	r := NewScreenRenderer(smallGrid)
	r.Resize(20)
	r.Clear(core.ColorBlack)
	r.DrawStatus("len 3")

	// (20 - 5) / 2
	for i, ch := range "len 3" {
		if got := r.Screen().Get(7+i, 0); got != ch {
			t.Errorf("status column %d = %q, expected %q", 7+i, got, ch)
		}
	}

	r.Clear(core.ColorBlack)
	if r.Screen().Get(7, 0) != ' ' {
		t.Error("Clear() should erase the status line")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "snake")
	s.SetCell(0, 1, core.ScreenCell{Rune: 'x', Fg: core.ColorApple, Bg: core.ColorBlack, Colored: true})

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "snake") {
		t.Errorf("line 0 = %q, expected to contain text", lines[0])
	}
	if !strings.Contains(lines[1], "x") {
		t.Errorf("line 1 = %q, expected to contain x", lines[1])
	}
}
