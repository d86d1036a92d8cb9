// SPDX-License-Identifier: MIT
// Package: lvmorse/homology
//
// errors.go — sentinel errors.

package homology

import "errors"

// ErrNilComplex indicates a nil complex or a complex without a mesh.
var ErrNilComplex = errors.New("homology: complex is nil")
