// SPDX-License-Identifier: MIT
// Package: lvmorse/morse
//
// errors.go — sentinel errors and the typed invariant error.

package morse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmorse/mesh"
)

var (
	// ErrNilInput indicates a nil mesh, field or complex.
	ErrNilInput = errors.New("morse: nil input")

	// ErrInvariant is the generic internal-consistency failure.
	ErrInvariant = errors.New("morse: invariant violated")

	// ErrPathNotTerminating indicates a V-path longer than the mesh has cells.
	// The gradient field is cyclic, which the lower-star construction rules out.
	ErrPathNotTerminating = errors.New("morse: gradient path does not terminate")

	// ErrLoopCancellation indicates an attempt to cancel a connection of
	// multiplicity greater than one.
	ErrLoopCancellation = errors.New("morse: cannot cancel a multiplicity-2 connection")

	// ErrEulerDrift indicates that the critical counts no longer match the
	// Euler characteristic of the mesh.
	ErrEulerDrift = errors.New("morse: Euler characteristic drifted")

	// ErrMultiplicityOverflow indicates a connection that would carry more
	// than two paths.
	ErrMultiplicityOverflow = errors.New("morse: connection multiplicity exceeds 2")

	// ErrNotConnected indicates a cancellation request for a pair that shares
	// no connection.
	ErrNotConnected = errors.New("morse: cells are not connected")

	// ErrUnknownCell indicates a cell index that is not critical in the complex.
	ErrUnknownCell = errors.New("morse: unknown critical cell")
)

// InvariantError reports a violated complex invariant at a specific cell.
type InvariantError struct {
	Cell   mesh.CellID
	Reason string
	Err    error
}

// Error implements error.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v at %s: %s", e.Err, e.Cell, e.Reason)
}

// Unwrap returns the sentinel.
func (e *InvariantError) Unwrap() error { return e.Err }

func invariantf(cell mesh.CellID, err error, format string, args ...any) error {
	return &InvariantError{Cell: cell, Reason: fmt.Sprintf(format, args...), Err: err}
}
