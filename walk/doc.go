// SPDX-License-Identifier: MIT

// Package walk traces a walker over a gridmap.GridMap following a list of
// move and turn instructions.
//
// What:
//
//   - Run starts on the first open cell (row-major) facing east and executes
//     Advance(n), TurnLeft and TurnRight instructions.
//   - A step onto a wall ends the current Advance early. A step off the net
//     is handed to a Resolver, which decides where the walker reappears.
//   - FlatWrap is the toroidal Resolver: it reappears on the far side of the
//     same row or column. cubefold.Net is the cube-folding Resolver.
//   - State.Password encodes the final position and heading.
//
// Why:
//
//   - The walker never knows which wrap rule is in force; any type with a
//     Resolve method plugs in.
//
// Complexity:
//
//   - Run: O(S·C) where S is the total number of requested steps and C the
//     cost of one Resolve call (O(1) for cubefold, O(W) for FlatWrap).
//
// Errors:
//
//   - ErrGridNil, ErrResolverNil: missing collaborators.
//   - ErrOptionViolation:         invalid functional option.
//   - ErrInvalidInstruction:      unknown op or negative step count.
//   - ErrResolverOffNet:          a Resolver returned a cell not on the net.
//   - ErrResolverHeading:         a Resolver returned a non-unit heading.
//   - Any error returned by the Resolver, unchanged (errors.Is still matches).
package walk
