// SPDX-License-Identifier: MIT

package cubefold

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/cubewalk/gridmap"
)

// cubeFaces is the number of faces a folded net must produce.
const cubeFaces = 6

// localNormal is the outward normal of every face in its own frame.
var localNormal = Vec3{0, 0, -1}

// netFolds pairs each net direction with the rotation of the neighbor in it.
var netFolds = [4]struct {
	dir gridmap.Direction
	rot Rotation
}{
	{gridmap.East, FoldRight},
	{gridmap.South, FoldDown},
	{gridmap.West, FoldLeft},
	{gridmap.North, FoldUp},
}

// faceItem pairs a face anchor with its rotation.
type faceItem struct {
	anchor gridmap.Cell
	rot    Rotation
}

// discoverer encapsulates mutable face-discovery state.
type discoverer struct {
	grid  *gridmap.GridMap
	width int
	opts  Options
	queue []faceItem
	net   *Net
}

// Discover folds the net in g into a cube.
// Starting from the root face with Identity, it visits each face once,
// deriving every neighbor's rotation as R·Fold*, and asserts that faces
// reached along several paths agree. Afterwards it indexes faces by
// outward normal and checks that exactly six distinct axis normals exist.
//
// Returns ErrGridNil, ErrOptionViolation, or an error wrapping
// ErrInvariantViolation when g is not a cube net. Face width failures wrap
// gridmap.ErrFaceWidth as well.
func Discover(g *gridmap.GridMap, opts ...Option) (*Net, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w, err := faceWidth(g, o.FaceWidth)
	if err != nil {
		return nil, err
	}
	root, err := rootAnchor(g, w, o)
	if err != nil {
		return nil, err
	}

	d := &discoverer{
		grid:  g,
		width: w,
		opts:  o,
		queue: make([]faceItem, 0, cubeFaces),
		net: &Net{
			grid:        g,
			width:       w,
			root:        root,
			order:       make([]gridmap.Cell, 0, cubeFaces),
			orientation: make(map[gridmap.Cell]Rotation, cubeFaces),
			byNormal:    make(map[Vec3]gridmap.Cell, cubeFaces),
		},
	}
	d.enqueue(root, Identity)
	if err = d.loop(); err != nil {
		return nil, err
	}
	if err = d.indexNormals(); err != nil {
		return nil, err
	}
	klog.V(1).Infof("cubefold: folded %d faces of width %d from root %v", len(d.net.order), w, root)

	return d.net, nil
}

// faceWidth validates an explicit width or infers one. A width that does
// not fit the net means the net cannot be a cube unfolding, so failures
// match both ErrInvariantViolation and gridmap.ErrFaceWidth.
func faceWidth(g *gridmap.GridMap, w int) (int, error) {
	var err error
	if w == 0 {
		w, err = g.InferFaceWidth()
	} else {
		err = g.CheckFaceWidth(w)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
	}
	return w, nil
}

// rootAnchor resolves the configured root or picks the first anchor.
func rootAnchor(g *gridmap.GridMap, w int, o Options) (gridmap.Cell, error) {
	if o.hasRoot {
		r := o.Root
		if r.X%w != 0 || r.Y%w != 0 || !g.Has(r) {
			return gridmap.Cell{}, fmt.Errorf("%w: root %v is not a face anchor for width %d", ErrOptionViolation, r, w)
		}
		return r, nil
	}
	anchors := g.Anchors(w)
	if len(anchors) == 0 {
		return gridmap.Cell{}, fmt.Errorf("%w: no face anchors for width %d", ErrInvariantViolation, w)
	}
	return anchors[0], nil
}

// enqueue fixes the rotation of anchor, reports it and schedules the face.
func (d *discoverer) enqueue(anchor gridmap.Cell, r Rotation) {
	d.net.orientation[anchor] = r
	d.net.order = append(d.net.order, anchor)
	d.opts.OnFace(anchor, r)
	klog.V(2).Infof("cubefold: face %v normal %v", anchor, r.Apply(localNormal))
	d.queue = append(d.queue, faceItem{anchor: anchor, rot: r})
}

// loop processes the worklist until it is empty or a mismatch is found.
func (d *discoverer) loop() error {
	for len(d.queue) > 0 {
		item := d.queue[0]
		d.queue = d.queue[1:]
		if err := d.visitNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// visitNeighbors derives the rotation of each of the four neighbor faces,
// enqueueing new ones and checking already-known ones for consistency.
func (d *discoverer) visitNeighbors(item faceItem) error {
	for _, f := range netFolds {
		nb := gridmap.Cell{
			X: item.anchor.X + f.dir.X*d.width,
			Y: item.anchor.Y + f.dir.Y*d.width,
		}
		if !d.grid.Has(nb) {
			continue
		}
		r := item.rot.Mul(f.rot)
		known, seen := d.net.orientation[nb]
		if !seen {
			d.enqueue(nb, r)
			continue
		}
		if known != r {
			return fmt.Errorf("%w: face %v reached from %v with a different orientation",
				ErrInvariantViolation, nb, item.anchor)
		}
	}
	return nil
}

// indexNormals builds the normal → face lookup and checks it is a bijection
// onto the six axis directions.
func (d *discoverer) indexNormals() error {
	for _, a := range d.net.order {
		n := d.net.orientation[a].Apply(localNormal)
		if !n.IsAxis() {
			return fmt.Errorf("%w: face %v has non-axis normal %v", ErrInvariantViolation, a, n)
		}
		if other, dup := d.net.byNormal[n]; dup {
			return fmt.Errorf("%w: faces %v and %v both face %v", ErrInvariantViolation, other, a, n)
		}
		d.net.byNormal[n] = a
	}
	if len(d.net.byNormal) != cubeFaces {
		return fmt.Errorf("%w: discovered %d faces, want %d", ErrInvariantViolation, len(d.net.byNormal), cubeFaces)
	}
	return nil
}
