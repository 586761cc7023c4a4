// SPDX-License-Identifier: MIT

package gridmap

import "fmt"

// cubeFaces is the number of W×W blocks in a complete cube net.
const cubeFaces = 6

// InferFaceWidth derives the face side length from the number of occupied
// cells: W = sqrt(Len/6). Returns ErrFaceWidth when Len is not six times a
// perfect square, or when the result does not divide the map extents.
func (gm *GridMap) InferFaceWidth() (int, error) {
	n := gm.Len()
	if n%cubeFaces != 0 {
		return 0, fmt.Errorf("%w: %d cells is not a multiple of %d", ErrFaceWidth, n, cubeFaces)
	}
	area := n / cubeFaces
	w := isqrt(area)
	if w*w != area {
		return 0, fmt.Errorf("%w: face area %d is not a perfect square", ErrFaceWidth, area)
	}
	if err := gm.CheckFaceWidth(w); err != nil {
		return 0, err
	}

	return w, nil
}

// CheckFaceWidth verifies that w is positive and evenly divides both extents.
func (gm *GridMap) CheckFaceWidth(w int) error {
	if w <= 0 {
		return fmt.Errorf("%w: %d must be positive", ErrFaceWidth, w)
	}
	if gm.width%w != 0 || gm.height%w != 0 {
		return fmt.Errorf("%w: %d does not divide extents %dx%d", ErrFaceWidth, w, gm.width, gm.height)
	}
	return nil
}

// FaceAnchor returns the top-left cell of the W×W block containing c.
// Both coordinates of the result are multiples of w. Complexity: O(1).
func FaceAnchor(c Cell, w int) Cell {
	return Cell{X: c.X / w * w, Y: c.Y / w * w}
}

// Anchors lists, in row-major order, the anchors of every W×W block whose
// top-left cell is on the net. It does not validate w; call CheckFaceWidth first.
func (gm *GridMap) Anchors(w int) []Cell {
	var out []Cell
	for y := 0; y < gm.height; y += w {
		for x := 0; x < gm.width; x += w {
			a := Cell{X: x, Y: y}
			if gm.Has(a) {
				out = append(out, a)
			}
		}
	}
	return out
}

// isqrt returns floor(sqrt(n)) for n ≥ 0.
func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
