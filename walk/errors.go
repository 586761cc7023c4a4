// SPDX-License-Identifier: MIT

package walk

import "errors"

var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("walk: grid is nil")
	// ErrResolverNil is returned if no Resolver is supplied.
	ErrResolverNil = errors.New("walk: resolver is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")
	// ErrInvalidInstruction indicates an unknown op or a negative step count.
	ErrInvalidInstruction = errors.New("walk: invalid instruction")
	// ErrResolverOffNet indicates a Resolver sent the walker off the net.
	ErrResolverOffNet = errors.New("walk: resolver returned a cell off the net")
	// ErrResolverHeading indicates a Resolver returned a non-unit heading.
	ErrResolverHeading = errors.New("walk: resolver returned an invalid heading")
)
