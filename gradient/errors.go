// SPDX-License-Identifier: MIT
// Package: lvmorse/gradient
//
// errors.go — sentinel errors and the typed invariant error.

package gradient

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmorse/mesh"
)

var (
	// ErrNilMesh indicates that Build or Validate received a nil mesh.
	ErrNilMesh = errors.New("gradient: mesh is nil")

	// ErrDoubleMatch indicates a cell that is matched twice, or matched and
	// critical at the same time.
	ErrDoubleMatch = errors.New("gradient: cell matched more than once")

	// ErrUnassignedCell indicates a cell that is neither matched nor critical.
	ErrUnassignedCell = errors.New("gradient: cell is neither matched nor critical")

	// ErrAsymmetricMatch indicates a pairing whose reverse entry disagrees, or
	// a pairing between cells that are not facet and cofacet.
	ErrAsymmetricMatch = errors.New("gradient: inconsistent pairing")

	// ErrShapeMismatch indicates a Field sized for a different mesh.
	ErrShapeMismatch = errors.New("gradient: field does not match mesh")
)

// InvariantError reports a violated field invariant at a specific cell.
// It unwraps to one of the sentinels above.
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
