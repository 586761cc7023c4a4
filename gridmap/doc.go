// SPDX-License-Identifier: MIT

// Package gridmap stores a sparse 2D map of terrain cells, the flat layout
// of an unfolded cube net, and the small amount of vector arithmetic the
// walker and the fold resolver share.
//
// What:
//
//   - GridMap is an immutable Cell → Terrain lookup. Absent cells are "off the net".
//   - Direction is one of four unit vectors with fixed left/right turn formulas.
//   - Face helpers split the map into W×W blocks identified by their anchors.
//
// Why:
//
//   - Keeps coordinate conventions (x grows east, y grows south) in one place.
//   - Lets both the walker and any wrap resolver agree on "in the grid".
//
// Complexity:
//
//   - New:            O(N) time and memory, N = number of cells.
//   - At/Has:         O(1) average.
//   - Start, Cells:   O(N log N) (row-major sort).
//   - Anchors:        O(N/W²·log(N/W²)).
//
// Errors:
//
//   - ErrEmptyGrid:          no cells were supplied.
//   - ErrNegativeCoordinate: a cell lies left of or above the origin.
//   - ErrInvalidTerrain:     a cell carries OffNet or an unknown terrain value.
//   - ErrNoOpenCell:         Start was requested on a map without open cells.
//   - ErrFaceWidth:          the face width is non-positive, cannot be inferred,
//     or does not evenly divide the map extents.
package gridmap
