// SPDX-License-Identifier: MIT
// Package: lvmorse/mesh
//
// errors.go — sentinel errors raised while validating loader input.
//
// Every error here belongs to the configuration class: the downstream
// algorithms assume a valid mesh and never re-check these conditions.

package mesh

import "errors"

var (
	// ErrEmptyMesh indicates that no vertices or no triangles were supplied.
	ErrEmptyMesh = errors.New("mesh: empty mesh")

	// ErrInvalidValue indicates a NaN or infinite scalar value.
	ErrInvalidValue = errors.New("mesh: scalar value is not finite")

	// ErrVertexOutOfRange indicates a triangle referencing a missing vertex.
	ErrVertexOutOfRange = errors.New("mesh: vertex index out of range")

	// ErrDegenerateFace indicates a triangle that repeats a vertex.
	ErrDegenerateFace = errors.New("mesh: degenerate face")

	// ErrDuplicateFace indicates two triangles over the same vertex set.
	ErrDuplicateFace = errors.New("mesh: duplicate face")

	// ErrNonManifoldEdge indicates an edge shared by more than two faces.
	ErrNonManifoldEdge = errors.New("mesh: edge shared by more than two faces")

	// ErrNonManifoldVertex indicates an isolated vertex or a vertex whose star
	// falls apart into several fans.
	ErrNonManifoldVertex = errors.New("mesh: non-manifold vertex")

	// ErrDuplicateValue indicates two vertices with the same scalar value.
	// The algorithms require a strict total order on vertices.
	ErrDuplicateValue = errors.New("mesh: scalar values are not unique")
)
