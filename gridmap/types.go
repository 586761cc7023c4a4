// SPDX-License-Identifier: MIT

package gridmap

import "fmt"

// Terrain is the content of a single map cell.
type Terrain uint8

const (
	// OffNet is the zero value, reported for coordinates outside the net.
	OffNet Terrain = iota
	// Open cells can be walked on.
	Open
	// Wall cells block movement.
	Wall
)

// String implements fmt.Stringer.
func (t Terrain) String() string {
	switch t {
	case OffNet:
		return "off-net"
	case Open:
		return "open"
	case Wall:
		return "wall"
	}
	return fmt.Sprintf("Terrain(%d)", uint8(t))
}

// Cell is an integer grid coordinate: X grows east (column), Y grows south (row).
type Cell struct {
	X, Y int
}

// Add returns the cell one step away from c along d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Sub returns the component-wise difference c - o.
func (c Cell) Sub(o Cell) Cell {
	return Cell{X: c.X - o.X, Y: c.Y - o.Y}
}

// Less orders cells row-major: by Y first, then by X.
func (c Cell) Less(o Cell) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit step along one grid axis.
type Direction struct {
	X, Y int
}

// The four headings, in facing-code order.
var (
	East  = Direction{X: 1}
	South = Direction{Y: 1}
	West  = Direction{X: -1}
	North = Direction{Y: -1}
)

// Directions lists the headings in facing-code order.
var Directions = [4]Direction{East, South, West, North}

// Left turns d a quarter counter-clockwise: (dx,dy) -> (dy,-dx).
func (d Direction) Left() Direction {
	return Direction{X: d.Y, Y: -d.X}
}

// Right turns d a quarter clockwise: (dx,dy) -> (-dy,dx).
func (d Direction) Right() Direction {
	return Direction{X: -d.Y, Y: d.X}
}

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// Valid reports whether d is one of the four unit headings.
func (d Direction) Valid() bool {
	return d.FacingCode() >= 0
}

// FacingCode returns 0 for east, 1 south, 2 west, 3 north and -1 otherwise.
func (d Direction) FacingCode() int {
	for i, h := range Directions {
		if d == h {
			return i
		}
	}
	return -1
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	case North:
		return "north"
	}
	return fmt.Sprintf("Direction(%d,%d)", d.X, d.Y)
}
