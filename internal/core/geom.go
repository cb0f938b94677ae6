// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea or tcell) to
// keep game logic pure and testable.
package core

import (
	"fmt"
	"math/rand"
)

// Cell is a board position in pixel units. Both coordinates are exact
// multiples of the grid cell size once normalized by Grid.Wrap.
type Cell struct {
	X, Y int
}

// Add returns the component-wise sum of two cells.
func (c Cell) Add(other Cell) Cell {
	return Cell{X: c.X + other.X, Y: c.Y + other.Y}
}

// String returns the cell as "(x, y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Direction is one of the four unit movement vectors.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all directions in declaration order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Vector returns the unit vector for the direction. Y grows downward.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the direction that negates d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// IsOpposite reports whether d and other point in opposite directions.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Grid describes the board: its pixel dimensions and the size of one cell.
// Width and Height must be positive multiples of CellSize.
type Grid struct {
	Width    int // Board width in pixels
	Height   int // Board height in pixels
	CellSize int // Side of one square cell in pixels
}

// Cols returns the number of cell columns.
func (g Grid) Cols() int {
	return g.Width / g.CellSize
}

// Rows returns the number of cell rows.
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Center returns the cell in the middle of the board.
func (g Grid) Center() Cell {
	return Cell{
		X: g.Cols() / 2 * g.CellSize,
		Y: g.Rows() / 2 * g.CellSize,
	}
}

// Wrap folds a cell back onto the board so that leaving one edge re-enters
// at the opposite edge along the same axis.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: mod(c.X, g.Width), Y: mod(c.Y, g.Height)}
}

// Step returns the wrapped cell one cell away from c in direction d.
func (g Grid) Step(c Cell, d Direction) Cell {
	dx, dy := d.Vector()
	return g.Wrap(c.Add(Cell{X: dx * g.CellSize, Y: dy * g.CellSize}))
}

// Contains reports whether c lies on the board and on the cell lattice.
func (g Grid) Contains(c Cell) bool {
	if c.X < 0 || c.X >= g.Width || c.Y < 0 || c.Y >= g.Height {
		return false
	}
	return c.X%g.CellSize == 0 && c.Y%g.CellSize == 0
}

// RandomCell picks a cell uniformly over the whole board.
func (g Grid) RandomCell(rng *rand.Rand) Cell {
	return Cell{
		X: rng.Intn(g.Cols()) * g.CellSize,
		Y: rng.Intn(g.Rows()) * g.CellSize,
	}
}

// ToGrid converts a pixel cell into its column and row.
func (g Grid) ToGrid(c Cell) (col, row int) {
	return c.X / g.CellSize, c.Y / g.CellSize
}

// mod is the Euclidean remainder, always in [0, n).
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// Rect represents an axis-aligned rectangle in screen characters.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}
