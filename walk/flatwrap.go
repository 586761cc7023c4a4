// SPDX-License-Identifier: MIT

package walk

import "github.com/katalvlaran/cubewalk/gridmap"

// FlatWrap is the toroidal Resolver: leaving the net, the walker reappears
// on the opposite end of the same row or column, facing the same way.
type FlatWrap struct {
	grid *gridmap.GridMap
}

// NewFlatWrap returns a FlatWrap resolver over g.
func NewFlatWrap(g *gridmap.GridMap) *FlatWrap {
	return &FlatWrap{grid: g}
}

// Resolve scans backwards from pos along -dir and returns the last cell
// still on the net. Returns ErrGridNil if f was built without a grid.
// Complexity: O(extent of the row or column).
func (f *FlatWrap) Resolve(pos gridmap.Cell, dir gridmap.Direction) (gridmap.Cell, gridmap.Direction, error) {
	if f == nil || f.grid == nil {
		return gridmap.Cell{}, gridmap.Direction{}, ErrGridNil
	}
	back := dir.Reverse()
	for f.grid.Has(pos.Add(back)) {
		pos = pos.Add(back)
	}
	return pos, dir, nil
}
