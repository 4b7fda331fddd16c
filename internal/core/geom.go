// Package core provides the fundamental value types of the snake device:
// playfield geometry, directions, input commands and the monochrome pixel
// frame. It has no external dependencies so game logic stays pure and testable.
package core

import "fmt"

// Position is a playfield cell coordinate.
// X increases to the right, Y increases downward (screen coordinates).
type Position struct {
	X, Y int
}

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Equal returns true if two positions are the same cell.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Add returns p translated by the vector v.
func (p Position) Add(v Position) Position {
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

// Step returns the neighbouring cell in direction d.
func (p Position) Step(d Direction) Position {
	return p.Add(d.Vector())
}

// Rect represents an axis-aligned cell area.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the position is inside this rectangle.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
// The result never has a negative size.
func (r Rect) Inset(n int) Rect {
	in := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	in.W = max(in.W, 0)
	in.H = max(in.H, 0)
	return in
}

// Area returns the number of cells covered by the rectangle.
func (r Rect) Area() int {
	return r.W * r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
