// SPDX-License-Identifier: MIT
// Package: lvmorse/reduce
//
// errors.go — sentinel errors.

package reduce

import "errors"

var (
	// ErrNilComplex indicates a nil complex or a complex without a mesh.
	ErrNilComplex = errors.New("reduce: complex is nil")

	// ErrBadThreshold indicates a negative or NaN persistence threshold.
	ErrBadThreshold = errors.New("reduce: threshold must be a non-negative number")
)
