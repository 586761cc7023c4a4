// SPDX-License-Identifier: MIT

package gridmap

import "errors"

var (
	// ErrEmptyGrid indicates the input contains no cells at all.
	ErrEmptyGrid = errors.New("gridmap: grid must contain at least one cell")
	// ErrNegativeCoordinate indicates a cell with x < 0 or y < 0.
	ErrNegativeCoordinate = errors.New("gridmap: coordinates must be non-negative")
	// ErrInvalidTerrain indicates a cell whose terrain is neither Open nor Wall.
	ErrInvalidTerrain = errors.New("gridmap: terrain must be Open or Wall")
	// ErrNoOpenCell indicates there is nowhere to start a walk.
	ErrNoOpenCell = errors.New("gridmap: no open cell")
	// ErrFaceWidth indicates an unusable cube face width.
	ErrFaceWidth = errors.New("gridmap: invalid face width")
)
