// SPDX-License-Identifier: MIT
// Package: lvmorse
//
// errors.go — sentinel errors of the facade.

package lvmorse

import "errors"

// ErrNilMesh indicates New was called without a mesh.
var ErrNilMesh = errors.New("lvmorse: mesh is nil")
