package core

import (
	"fmt"
	"strings"
)

// Direction is one of the four compass headings, stored as an ordinal 0..3
// so that rotation is modular arithmetic and the value fits in two bits.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// NumDirections is the size of the direction alphabet.
const NumDirections = 4

// vectors maps each direction ordinal to a unit cell delta.
var vectors = [NumDirections]Position{
	DirUp:    {X: 0, Y: -1},
	DirRight: {X: 1, Y: 0},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
}

// Vector returns the unit delta for the direction.
// Only the low two bits are significant.
func (d Direction) Vector() Position {
	return vectors[d&3]
}

// Left returns the direction after a counter-clockwise quarter turn.
func (d Direction) Left() Direction {
	return (d + 3) % NumDirections
}

// Right returns the direction after a clockwise quarter turn.
func (d Direction) Right() Direction {
	return (d + 1) % NumDirections
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d < NumDirections
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name such as "right" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "right":
		return DirRight, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	}
	return DirUp, fmt.Errorf("core: unknown direction %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("core: invalid direction %d", d)
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so headings can be
// written by name in YAML config.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
