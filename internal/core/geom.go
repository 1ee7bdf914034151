// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Position is a cell on the game grid.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Pos is shorthand for constructing a Position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the position moved by one step of d.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// String formats the position as (x, y).
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Direction is a unit movement vector. Exactly one component is nonzero,
// except for the zero value which means "not moving yet".
type Direction struct {
	DX int
	DY int
}

// Unit directions.
var (
	DirNone  = Direction{}
	DirLeft  = Direction{DX: -1}
	DirUp    = Direction{DY: -1}
	DirRight = Direction{DX: 1}
	DirDown  = Direction{DY: 1}
)

// IsZero reports whether d is the stationary vector.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Opposite returns the reversed vector.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// String formats the vector as (dx, dy).
func (d Direction) String() string {
	return fmt.Sprintf("(%d, %d)", d.DX, d.DY)
}
