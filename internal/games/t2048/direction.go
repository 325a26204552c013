package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists every direction in a fixed order.
var Directions = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

// Vector returns the unit step of the direction. Y grows downwards.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection converts a name produced by Direction.String back to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	default:
		return 0, fmt.Errorf("t2048: unknown direction %q", s)
	}
}

// Coord is a logical grid coordinate.
type Coord struct {
	X, Y int
}

// InBounds reports whether the coordinate lies on the board.
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

// Step returns the neighbouring coordinate in direction d.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Vector()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// index returns the arena slot of an in-bounds coordinate.
func (c Coord) index() int {
	return c.Y*Size + c.X
}
