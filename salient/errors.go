// SPDX-License-Identifier: MIT
// Package: lvmorse/salient
//
// errors.go — sentinel errors.

package salient

import "errors"

var (
	// ErrNilComplex indicates a nil complex or a complex without a mesh.
	ErrNilComplex = errors.New("salient: complex is nil")

	// ErrBadThresholds indicates low > high or a NaN threshold.
	ErrBadThresholds = errors.New("salient: thresholds must satisfy low <= high")
)
