package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// cellWidth is the number of terminal columns per grid cell, which keeps
// cells roughly square in most terminal fonts.
const cellWidth = 2

// BoardSize returns the terminal size needed to draw a framed grid.
func BoardSize(g core.Grid) (w, h int) {
	return g.Cols()*cellWidth + 2, g.Rows() + 2
}

// statusRows is the number of text rows drawn above the board.
const statusRows = 1

// ScreenRenderer draws the board into a core.Screen inside a box frame,
// with a status line above it. Bubble Tea pulls the frame from View, so
// Present only marks it ready.
type ScreenRenderer struct {
	screen *core.Screen
	grid   core.Grid
	left   int // Column of the board frame
	frames int
}

// NewScreenRenderer creates a renderer with a screen sized for the grid.
func NewScreenRenderer(g core.Grid) *ScreenRenderer {
	w, h := BoardSize(g)
	return &ScreenRenderer{
		screen: core.NewScreen(w, h+statusRows),
		grid:   g,
	}
}

// Screen returns the backing buffer.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// Frames returns the number of presented frames.
func (r *ScreenRenderer) Frames() int {
	return r.frames
}

// Resize sets the screen width and centers the board in it.
// The screen never gets narrower than the board.
func (r *ScreenRenderer) Resize(width int) {
	w, h := BoardSize(r.grid)
	width = max(width, w)
	r.screen.Resize(width, h+statusRows)
	r.left = (width - w) / 2
}

// board returns the framed board area on the screen.
func (r *ScreenRenderer) board() core.Rect {
	w, h := BoardSize(r.grid)
	return core.NewRect(r.left, statusRows, w, h)
}

// Clear blanks the screen, paints the board background and draws the frame.
func (r *ScreenRenderer) Clear(bg core.Color) {
	b := r.board()
	r.screen.Clear()
	r.screen.Fill(b, bg)
	r.screen.DrawBox(b)
}

// DrawCell draws one grid cell as two half blocks: the fill in the middle
// and the border color showing at both sides.
func (r *ScreenRenderer) DrawCell(c core.Cell, fill, border core.Color) {
	col, row := r.grid.ToGrid(r.grid.Wrap(c))
	x := r.left + 1 + col*cellWidth
	y := statusRows + 1 + row
	r.screen.SetCell(x, y, core.ScreenCell{Rune: '▐', Fg: fill, Bg: border, Colored: true})
	r.screen.SetCell(x+1, y, core.ScreenCell{Rune: '▌', Fg: fill, Bg: border, Colored: true})
}

// DrawStatus writes text centered on the status line.
func (r *ScreenRenderer) DrawStatus(text string) {
	r.screen.DrawTextCentered(0, text)
}

// Present implements snake.Renderer.
func (r *ScreenRenderer) Present() error {
	r.frames++
	return nil
}

type styleKey struct {
	colored bool
	fg, bg  core.Color
}

func styleFor(k styleKey) lipgloss.Style {
	if !k.colored {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(k.fg.Hex())).
		Background(lipgloss.Color(k.bg.Hex()))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[styleKey]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			k := styleKey{colored: cell.Colored, fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (styleKey{colored: cell.Colored, fg: cell.Fg, bg: cell.Bg}) != k {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[k]
			if !ok {
				style = styleFor(k)
				styles[k] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
