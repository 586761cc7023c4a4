// SPDX-License-Identifier: MIT

package cubefold

import "errors"

var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("cubefold: grid is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cubefold: invalid option supplied")
	// ErrInvariantViolation signals that the net cannot be a cube unfolding.
	// Every failure of the folding checks wraps it.
	ErrInvariantViolation = errors.New("cubefold: invariant violation")
)
