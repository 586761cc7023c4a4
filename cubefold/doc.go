// SPDX-License-Identifier: MIT

// Package cubefold folds a flat cube net back into a cube and resolves walker
// moves that run off the edge of a face.
//
// What:
//
//   - Discover assigns every W×W face of a gridmap.GridMap a 3×3 rotation
//     taking the face's local (x, y, normal) frame into a fixed world frame.
//     Rotations are propagated from a root face by composing one of four
//     constant 90° fold rotations per net edge; no adjacency table is needed.
//   - Net.Resolve maps (position, heading) leaving a face to the cell and
//     heading on the face that is adjacent once folded.
//
// Why:
//
//   - Any of the 11 cube nets, in any placement, is handled by the same code.
//   - Every folded relationship is checked against the rotation group: an input
//     that does not close into a cube is reported, never guessed.
//
// Conventions:
//
//   - Local frame: x grows east along the net, y grows south, the outward
//     normal is (0,0,-1). The root face gets the identity rotation.
//   - The lateral offset of a cell on an edge is measured from the corner on
//     the walker's left; folding preserves surface orientation, so that
//     corner is also on the left after the crossing.
//
// Complexity:
//
//   - Discover: O(F) face visits with O(1) matrix work each (F = faces),
//     plus O(N/W²) to enumerate anchors.
//   - Resolve:  O(1).
//
// Errors:
//
//   - ErrGridNil:            nil grid passed to Discover.
//   - ErrOptionViolation:    invalid functional option.
//   - ErrInvariantViolation: the net does not fold into a cube under the
//     configured face width (rotation mismatch on a revisited face, wrong
//     number of faces, duplicated normals, lookups for undiscovered faces,
//     or an arrival heading with a non-zero normal component).
//   - gridmap.ErrFaceWidth:  face width cannot be inferred or does not fit;
//     always reported together with ErrInvariantViolation.
package cubefold
