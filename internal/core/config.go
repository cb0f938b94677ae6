package core

// Palette holds the colors used to draw one frame.
type Palette struct {
	Background Color
	Border     Color
	Apple      Color
	Snake      Color
}

// DefaultPalette returns the classic black board with a cyan cell border.
func DefaultPalette() Palette {
	return Palette{
		Background: ColorBlack,
		Border:     ColorBorder,
		Apple:      ColorApple,
		Snake:      ColorSnake,
	}
}

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	Grid     Grid    // Board geometry
	TickRate int     // Simulation ticks per second
	Seed     int64   // RNG seed for deterministic gameplay
	Palette  Palette // Cell colors
}

// DefaultConfig returns a RuntimeConfig with the standard 640x480 board,
// 20px cells and 20 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Grid:     Grid{Width: 640, Height: 480, CellSize: 20},
		TickRate: 20,
		Seed:     0, // 0 means use current time in platform layer
		Palette:  DefaultPalette(),
	}
}
