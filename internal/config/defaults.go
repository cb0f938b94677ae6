package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration:
// a 640x480 board of 20px cells at 20 ticks per second.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:    640,
			Height:   480,
			CellSize: 20,
		},
		Speed: SpeedConfig{
			TicksPerSecond: 20,
		},
		Colors: ColorsConfig{
			Background: "#000000",
			Border:     "#5dd8e4",
			Apple:      "#ff0000",
			Snake:      "#00ff00",
		},
	}
}
