// SPDX-License-Identifier: MIT

package walk

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/cubewalk/gridmap"
)

// Op tags an Instruction.
type Op uint8

const (
	// Advance moves up to N cells forward.
	Advance Op = iota
	// TurnLeft rotates the heading a quarter counter-clockwise.
	TurnLeft
	// TurnRight rotates the heading a quarter clockwise.
	TurnRight
)

// Instruction is one parsed step of the path description.
// N is only meaningful for Advance.
type Instruction struct {
	Op Op
	N  int
}

// Forward returns Advance(n).
func Forward(n int) Instruction { return Instruction{Op: Advance, N: n} }

// Left returns TurnLeft.
func Left() Instruction { return Instruction{Op: TurnLeft} }

// Right returns TurnRight.
func Right() Instruction { return Instruction{Op: TurnRight} }

// String renders the instruction in path notation: "10", "L" or "R".
func (in Instruction) String() string {
	switch in.Op {
	case Advance:
		return strconv.Itoa(in.N)
	case TurnLeft:
		return "L"
	case TurnRight:
		return "R"
	}
	return fmt.Sprintf("Op(%d)", in.Op)
}

// Resolver decides where a walker that steps off the net at pos, heading
// dir, reappears and which way it then faces.
type Resolver interface {
	Resolve(pos gridmap.Cell, dir gridmap.Direction) (gridmap.Cell, gridmap.Direction, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(pos gridmap.Cell, dir gridmap.Direction) (gridmap.Cell, gridmap.Direction, error)

// Resolve calls f(pos, dir).
func (f ResolverFunc) Resolve(pos gridmap.Cell, dir gridmap.Direction) (gridmap.Cell, gridmap.Direction, error) {
	return f(pos, dir)
}

// State is the walker's position and heading.
type State struct {
	Pos gridmap.Cell
	Dir gridmap.Direction
}

// Password encodes s as 1000·(row+1) + 4·(column+1) + facing code.
func (s State) Password() int {
	return 1000*(s.Pos.Y+1) + 4*(s.Pos.X+1) + s.Dir.FacingCode()
}

// String formats s as "(x,y) heading".
func (s State) String() string {
	return s.Pos.String() + " " + s.Dir.String()
}

// Option configures Run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks to observe a walk.
type Options struct {
	// OnMove is called after every single-cell move, including wraps.
	OnMove func(s State)

	// OnBlocked is called when a wall ends an Advance early.
	// at is the walker's state, wall the cell that blocked it.
	OnBlocked func(at State, wall gridmap.Cell)

	// OnCross is called when the Resolver moved the walker over the rim.
	OnCross func(from, to State)

	// MaxSteps, if > 0, stops the walk after that many cell moves.
	// A value of 0 disables the limit.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks and no step limit.
func DefaultOptions() Options {
	return Options{
		OnMove:    func(State) {},
		OnBlocked: func(State, gridmap.Cell) {},
		OnCross:   func(State, State) {},
		MaxSteps:  0,
	}
}

// WithOnMove registers a callback run after each cell move.
func WithOnMove(fn func(s State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMove = fn
		}
	}
}

// WithOnBlocked registers a callback run when a wall stops an Advance.
func WithOnBlocked(fn func(at State, wall gridmap.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBlocked = fn
		}
	}
}

// WithOnCross registers a callback run after each resolved wrap.
func WithOnCross(fn func(from, to State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCross = fn
		}
	}
}

// WithMaxSteps truncates the walk after n cell moves.
//
//	n > 0:  limit to n moves
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}
