// SPDX-License-Identifier: MIT

package cubefold

import (
	"fmt"

	"github.com/katalvlaran/cubewalk/gridmap"
)

// inwardNormal is the local vector pointing from a face into the cube.
var inwardNormal = Vec3{0, 0, 1}

// Resolve returns where a walker on pos, heading dir, lands when it steps
// over the edge of its face, together with its new heading.
//
// The heading lifted to 3D and rotated into the world frame is the outward
// normal of the destination face. The arrival heading is the source face's
// inward normal seen from the destination frame. The lateral offset along
// the shared edge is preserved.
//
// A Net not built by Discover yields ErrGridNil; any lookup failure wraps
// ErrInvariantViolation. Resolve does not check
// that pos is actually on the edge; for interior cells the result is the
// cell on the adjacent face at the same offset.
func (n *Net) Resolve(pos gridmap.Cell, dir gridmap.Direction) (gridmap.Cell, gridmap.Direction, error) {
	if n == nil || n.grid == nil {
		return gridmap.Cell{}, gridmap.Direction{}, ErrGridNil
	}
	if !dir.Valid() {
		return gridmap.Cell{}, gridmap.Direction{}, fmt.Errorf("%w: heading %v is not a unit step", ErrInvariantViolation, dir)
	}
	src, ok := n.FaceOf(pos)
	if !ok {
		return gridmap.Cell{}, gridmap.Direction{}, fmt.Errorf("%w: %v is not on a discovered face", ErrInvariantViolation, pos)
	}
	rSrc := n.orientation[src]

	target := rSrc.Apply(Vec3{dir.X, dir.Y, 0})
	dst, ok := n.byNormal[target]
	if !ok {
		return gridmap.Cell{}, gridmap.Direction{}, fmt.Errorf("%w: no face with normal %v (from %v heading %v)",
			ErrInvariantViolation, target, src, dir)
	}
	rDst := n.orientation[dst]

	arrival3 := rDst.Transpose().Apply(rSrc.Apply(inwardNormal))
	if arrival3[2] != 0 {
		return gridmap.Cell{}, gridmap.Direction{}, fmt.Errorf("%w: arrival heading %v on %v leaves the face plane",
			ErrInvariantViolation, arrival3, dst)
	}
	arrival := gridmap.Direction{X: arrival3[0], Y: arrival3[1]}

	k := LateralOffset(pos.Sub(src), dir, n.width)
	local := EntryCell(k, arrival, n.width)

	return gridmap.Cell{X: dst.X + local.X, Y: dst.Y + local.Y}, arrival, nil
}

// LateralOffset returns the distance of local (a position relative to its
// face anchor) from the corner on the left of a walker heading dir, measured
// along the edge that dir exits through.
func LateralOffset(local gridmap.Cell, dir gridmap.Direction, w int) int {
	switch dir {
	case gridmap.East:
		return local.Y
	case gridmap.South:
		return w - 1 - local.X
	case gridmap.West:
		return w - 1 - local.Y
	default: // north
		return local.X
	}
}

// EntryCell is the inverse of LateralOffset: the face-local cell on the edge
// a walker heading dir enters through, k cells from the corner on its left.
func EntryCell(k int, dir gridmap.Direction, w int) gridmap.Cell {
	switch dir {
	case gridmap.East:
		return gridmap.Cell{X: 0, Y: k}
	case gridmap.South:
		return gridmap.Cell{X: w - 1 - k, Y: 0}
	case gridmap.West:
		return gridmap.Cell{X: w - 1, Y: w - 1 - k}
	default: // north
		return gridmap.Cell{X: k, Y: w - 1}
	}
}
