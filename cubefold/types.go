// SPDX-License-Identifier: MIT

package cubefold

import (
	"fmt"

	"github.com/katalvlaran/cubewalk/gridmap"
)

// Option configures Discover via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of a Discover call.
type Options struct {
	// FaceWidth is the side length of a face in cells.
	// A value of 0 infers it from the cell count (see gridmap.InferFaceWidth).
	FaceWidth int

	// Root, when set, is the anchor of the face that receives Identity.
	// By default the first anchor in row-major order is used.
	Root    gridmap.Cell
	hasRoot bool

	// OnFace is called once per face, in discovery order, after its rotation
	// has been fixed.
	OnFace func(anchor gridmap.Cell, r Rotation)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with an inferred face width, the
// row-major root and a no-op OnFace hook.
func DefaultOptions() Options {
	return Options{
		FaceWidth: 0,
		OnFace:    func(gridmap.Cell, Rotation) {},
	}
}

// WithFaceWidth fixes the face side length.
//
//	w > 0:  use w
//	w == 0: infer from the grid
//	w < 0:  invalid → ErrOptionViolation
func WithFaceWidth(w int) Option {
	return func(o *Options) {
		if w < 0 {
			o.err = fmt.Errorf("%w: FaceWidth cannot be negative (%d)", ErrOptionViolation, w)
			return
		}
		o.FaceWidth = w
	}
}

// WithRoot selects the face that gets the identity rotation.
// The anchor is validated against the face width when Discover runs.
func WithRoot(anchor gridmap.Cell) Option {
	return func(o *Options) {
		o.Root = anchor
		o.hasRoot = true
	}
}

// WithOnFace registers a callback invoked for each discovered face.
func WithOnFace(fn func(anchor gridmap.Cell, r Rotation)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFace = fn
		}
	}
}

// Net is a folded cube net: the orientation of every discovered face and
// the inverse lookup from outward normal to face. It is read-only after
// Discover returns and safe for concurrent readers.
type Net struct {
	grid        *gridmap.GridMap
	width       int
	root        gridmap.Cell
	order       []gridmap.Cell
	orientation map[gridmap.Cell]Rotation
	byNormal    map[Vec3]gridmap.Cell
}

// FaceWidth returns the side length of every face.
func (n *Net) FaceWidth() int { return n.width }

// Root returns the anchor of the face that was given Identity.
func (n *Net) Root() gridmap.Cell { return n.root }

// Faces returns the face anchors in discovery order.
func (n *Net) Faces() []gridmap.Cell {
	out := make([]gridmap.Cell, len(n.order))
	copy(out, n.order)
	return out
}

// Orientation returns the rotation of the face anchored at anchor.
func (n *Net) Orientation(anchor gridmap.Cell) (Rotation, bool) {
	r, ok := n.orientation[anchor]
	return r, ok
}

// Normal returns the world-space outward normal of the face anchored at anchor.
func (n *Net) Normal(anchor gridmap.Cell) (Vec3, bool) {
	r, ok := n.orientation[anchor]
	if !ok {
		return Vec3{}, false
	}
	return r.Apply(localNormal), true
}

// FaceAt returns the anchor of the face whose outward normal is normal.
func (n *Net) FaceAt(normal Vec3) (gridmap.Cell, bool) {
	a, ok := n.byNormal[normal]
	return a, ok
}

// FaceOf returns the anchor of the discovered face containing c.
func (n *Net) FaceOf(c gridmap.Cell) (gridmap.Cell, bool) {
	if !n.grid.Has(c) {
		return gridmap.Cell{}, false
	}
	a := gridmap.FaceAnchor(c, n.width)
	_, ok := n.orientation[a]
	return a, ok
}
