// SPDX-License-Identifier: MIT

package gridmap

import (
	"fmt"
	"sort"
)

// GridMap is a sparse Cell → Terrain lookup. It is immutable once built.
// Width and Height are the extents of the bounding box anchored at the
// origin (largest coordinate + 1), not the number of occupied columns/rows.
type GridMap struct {
	cells  map[Cell]Terrain
	width  int
	height int
	open   int
}

// New constructs a GridMap from a set of cells.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells is empty, ErrNegativeCoordinate for a cell
// left of or above the origin, ErrInvalidTerrain for OffNet or unknown values.
// Complexity: O(N) time and memory.
func New(cells map[Cell]Terrain) (*GridMap, error) {
	if len(cells) == 0 {
		return nil, ErrEmptyGrid
	}
	gm := &GridMap{cells: make(map[Cell]Terrain, len(cells))}
	for c, t := range cells {
		if c.X < 0 || c.Y < 0 {
			return nil, fmt.Errorf("%w: %v", ErrNegativeCoordinate, c)
		}
		switch t {
		case Open:
			gm.open++
		case Wall:
		default:
			return nil, fmt.Errorf("%w: %v at %v", ErrInvalidTerrain, t, c)
		}
		gm.cells[c] = t
		if c.X >= gm.width {
			gm.width = c.X + 1
		}
		if c.Y >= gm.height {
			gm.height = c.Y + 1
		}
	}

	return gm, nil
}

// At returns the terrain at c, or OffNet and false if c is not on the net.
// Complexity: O(1).
func (gm *GridMap) At(c Cell) (Terrain, bool) {
	t, ok := gm.cells[c]
	return t, ok
}

// Has reports whether c is on the net.
func (gm *GridMap) Has(c Cell) bool {
	_, ok := gm.cells[c]
	return ok
}

// Len returns the number of occupied cells (open and wall).
func (gm *GridMap) Len() int { return len(gm.cells) }

// OpenCount returns the number of open cells.
func (gm *GridMap) OpenCount() int { return gm.open }

// Width returns the horizontal extent: largest X + 1.
func (gm *GridMap) Width() int { return gm.width }

// Height returns the vertical extent: largest Y + 1.
func (gm *GridMap) Height() int { return gm.height }

// Cells returns every occupied cell in row-major order.
// Complexity: O(N log N).
func (gm *GridMap) Cells() []Cell {
	out := make([]Cell, 0, len(gm.cells))
	for c := range gm.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Start returns the first open cell in row-major order (smallest row,
// then smallest column). Returns ErrNoOpenCell if every cell is a wall.
// Complexity: O(N).
func (gm *GridMap) Start() (Cell, error) {
	var (
		best  Cell
		found bool
	)
	for c, t := range gm.cells {
		if t != Open {
			continue
		}
		if !found || c.Less(best) {
			best, found = c, true
		}
	}
	if !found {
		return Cell{}, ErrNoOpenCell
	}

	return best, nil
}
