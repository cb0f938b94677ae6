// Package config provides YAML-based configuration loading for the snake
// game: board geometry, tick rate and colors.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Speed  SpeedConfig  `yaml:"speed"`
	Colors ColorsConfig `yaml:"colors"`
}

// BoardConfig defines the board size in pixels.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// SpeedConfig defines the simulation rate.
type SpeedConfig struct {
	TicksPerSecond int `yaml:"ticks_per_second"`
}

// ColorsConfig holds "#rrggbb" colors.
type ColorsConfig struct {
	Background string `yaml:"background"`
	Border     string `yaml:"border"`
	Apple      string `yaml:"apple"`
	Snake      string `yaml:"snake"`
}

// Validate checks that the board tiles into at least 2x2 whole cells, the
// rate is positive and every color parses.
func (c SnakeConfig) Validate() error {
	b := c.Board
	if b.Width <= 0 || b.Height <= 0 || b.CellSize <= 0 {
		return fmt.Errorf("board %dx%d with cell %d: sizes must be positive: %w",
			b.Width, b.Height, b.CellSize, ErrInvalidConfig)
	}
	if b.Width%b.CellSize != 0 || b.Height%b.CellSize != 0 {
		return fmt.Errorf("board %dx%d is not a multiple of cell %d: %w",
			b.Width, b.Height, b.CellSize, ErrInvalidConfig)
	}
	if b.Width/b.CellSize < 2 || b.Height/b.CellSize < 2 {
		return fmt.Errorf("board must be at least 2x2 cells: %w", ErrInvalidConfig)
	}
	if c.Speed.TicksPerSecond <= 0 {
		return fmt.Errorf("ticks_per_second %d must be positive: %w",
			c.Speed.TicksPerSecond, ErrInvalidConfig)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette parses the configured colors.
func (c SnakeConfig) Palette() (core.Palette, error) {
	var p core.Palette
	fields := []struct {
		name string
		src  string
		dst  *core.Color
	}{
		{"background", c.Colors.Background, &p.Background},
		{"border", c.Colors.Border, &p.Border},
		{"apple", c.Colors.Apple, &p.Apple},
		{"snake", c.Colors.Snake, &p.Snake},
	}
	for _, f := range fields {
		col, err := core.ParseColor(f.src)
		if err != nil {
			return p, fmt.Errorf("colors.%s: %v: %w", f.name, err, ErrInvalidConfig)
		}
		*f.dst = col
	}
	return p, nil
}

// Runtime converts a validated config into the game's runtime config.
func (c SnakeConfig) Runtime(seed int64) (core.RuntimeConfig, error) {
	if err := c.Validate(); err != nil {
		return core.RuntimeConfig{}, err
	}
	palette, err := c.Palette()
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	return core.RuntimeConfig{
		Grid: core.Grid{
			Width:    c.Board.Width,
			Height:   c.Board.Height,
			CellSize: c.Board.CellSize,
		},
		TickRate: c.Speed.TicksPerSecond,
		Seed:     seed,
		Palette:  palette,
	}, nil
}
