// SPDX-License-Identifier: MIT

// Package mesh defines the cell model every other lvmorse package reads:
// vertices, edges and faces of a closed (or bordered) triangulated 2-manifold,
// each carrying a scalar key and star adjacency.
//
// Overview:
//
//   - A Vertex carries one scalar value. An Edge or Face carries a Key: the
//     descending-sorted values of its vertices. Keys of different arity are
//     ordered by Compare, where a strict prefix is the smaller key.
//   - CellID is a tagged cell reference (dimension + index). Algorithms never
//     guess a cell's dimension from the shape of a value.
//   - Meshes are built once by New and are immutable afterwards.
//
// Input contract:
//
//   - Scalar values must be unique and finite. WithPerturbation applies the
//     fixed ε = 1e-7 shift to duplicates before the uniqueness check.
//   - Every edge is shared by at most two faces and every vertex star is
//     connected (no pinched vertices, no isolated vertices).
//
// Errors (sentinel, branch with errors.Is):
//
//   - ErrEmptyMesh, ErrInvalidValue, ErrVertexOutOfRange, ErrDegenerateFace,
//     ErrDuplicateFace, ErrNonManifoldEdge, ErrNonManifoldVertex, ErrDuplicateValue.
//
// Complexity:
//
//   - New: O(V log V + F) time, O(V + E + F) space.
package mesh
