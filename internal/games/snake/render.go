package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Drawable is anything made of board cells sharing one fill color.
type Drawable interface {
	Cells() []core.Cell
	Fill() core.Color
}

// Renderer draws board cells onto a display surface.
type Renderer interface {
	// Clear paints the whole board with the background color.
	Clear(bg core.Color)
	// DrawCell draws one grid cell at a pixel position with a filled
	// interior and a one-unit border.
	DrawCell(c core.Cell, fill, border core.Color)
	// Present flushes the frame to the display.
	Present() error
}

// InputSource yields the events queued since the previous poll.
type InputSource interface {
	Poll() ([]Event, error)
}

// Clock paces the loop.
type Clock interface {
	// Tick blocks until enough time has passed since the previous call to
	// hold the target rate.
	Tick(fps int)
}

// Draw renders every cell of d.
func Draw(r Renderer, d Drawable, border core.Color) {
	fill := d.Fill()
	for _, c := range d.Cells() {
		r.DrawCell(c, fill, border)
	}
}
