// SPDX-License-Identifier: MIT

package walk

import (
	"errors"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/cubewalk/gridmap"
)

// errStepLimit stops the instruction loop once MaxSteps is reached.
var errStepLimit = errors.New("walk: step limit reached")

// walker encapsulates mutable walk state.
type walker struct {
	grid     *gridmap.GridMap
	resolver Resolver
	opts     Options
	state    State
	moves    int
}

// Run executes prog on g, starting on the first open cell facing east, and
// returns the final State. Steps that leave the net are delegated to r.
//
// Returns ErrGridNil, ErrResolverNil, ErrOptionViolation, ErrInvalidInstruction
// (checked before the first move), gridmap.ErrNoOpenCell, ErrResolverOffNet,
// ErrResolverHeading, or whatever r returns. On a Resolver failure the returned State is the
// position reached before the failing step.
func Run(g *gridmap.GridMap, prog []Instruction, r Resolver, opts ...Option) (State, error) {
	if g == nil {
		return State{}, ErrGridNil
	}
	if r == nil {
		return State{}, ErrResolverNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return State{}, o.err
	}
	if err := Validate(prog); err != nil {
		return State{}, err
	}
	start, err := g.Start()
	if err != nil {
		return State{}, err
	}

	w := &walker{
		grid:     g,
		resolver: r,
		opts:     o,
		state:    State{Pos: start, Dir: gridmap.East},
	}
	for _, in := range prog {
		if err = w.exec(in); err != nil {
			if errors.Is(err, errStepLimit) {
				break
			}
			return w.state, err
		}
	}
	klog.V(2).Infof("walk: finished at %v after %d moves", w.state, w.moves)

	return w.state, nil
}

// Validate checks every instruction for a known op and a non-negative count.
func Validate(prog []Instruction) error {
	for i, in := range prog {
		switch in.Op {
		case Advance:
			if in.N < 0 {
				return fmt.Errorf("%w: #%d advances %d cells", ErrInvalidInstruction, i, in.N)
			}
		case TurnLeft, TurnRight:
		default:
			return fmt.Errorf("%w: #%d has unknown op %d", ErrInvalidInstruction, i, in.Op)
		}
	}
	return nil
}

// exec applies one instruction.
func (w *walker) exec(in Instruction) error {
	switch in.Op {
	case TurnLeft:
		w.state.Dir = w.state.Dir.Left()
	case TurnRight:
		w.state.Dir = w.state.Dir.Right()
	default:
		return w.advance(in.N)
	}
	return nil
}

// advance repeats single steps until n are done or a wall is hit.
func (w *walker) advance(n int) error {
	for i := 0; i < n; i++ {
		if w.opts.MaxSteps > 0 && w.moves >= w.opts.MaxSteps {
			return errStepLimit
		}
		moved, err := w.step()
		if err != nil {
			return err
		}
		if !moved {
			return nil
		}
	}
	return nil
}

// step moves one cell forward, wrapping through the resolver when the next
// cell is off the net. It reports false if a wall was in the way.
func (w *walker) step() (bool, error) {
	next := State{Pos: w.state.Pos.Add(w.state.Dir), Dir: w.state.Dir}
	terrain, onNet := w.grid.At(next.Pos)
	crossed := false
	if !onNet {
		pos, dir, err := w.resolver.Resolve(w.state.Pos, w.state.Dir)
		if err != nil {
			return false, err
		}
		if terrain, onNet = w.grid.At(pos); !onNet {
			return false, fmt.Errorf("%w: %v heading %v resolved to %v", ErrResolverOffNet, w.state.Pos, w.state.Dir, pos)
		}
		if !dir.Valid() {
			return false, fmt.Errorf("%w: %v heading %v resolved to heading %v", ErrResolverHeading, w.state.Pos, w.state.Dir, dir)
		}
		next = State{Pos: pos, Dir: dir}
		crossed = true
	}
	if terrain == gridmap.Wall {
		w.opts.OnBlocked(w.state, next.Pos)
		return false, nil
	}

	if crossed {
		klog.V(3).Infof("walk: crossed %v -> %v", w.state, next)
		w.opts.OnCross(w.state, next)
	}
	w.state = next
	w.moves++
	w.opts.OnMove(w.state)

	return true, nil
}
