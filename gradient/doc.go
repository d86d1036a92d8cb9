// SPDX-License-Identifier: MIT

// Package gradient builds a discrete gradient field on a mesh.Mesh by the
// lower-star construction.
//
// Every vertex v owns its lower star: the cells whose highest vertex is v.
// Lower stars partition the mesh, so each one is processed independently:
//
//  1. If v has no lower-star edge, v is a critical vertex.
//  2. Otherwise v is paired with its smallest lower-star edge δ. The other
//     lower-star edges enter the zero-queue; faces that contain δ (and
//     hence have exactly one unclassified lower-star edge) enter the one-queue.
//  3. While the one-queue is non-empty, pop its smallest face α. With no
//     unclassified edge left it moves to the zero-queue; otherwise it is
//     paired with its unclassified edge and faces reaching one unclassified
//     edge enter the one-queue.
//  4. Pop the smallest cell of the zero-queue; it is critical. Faces reaching
//     one unclassified edge enter the one-queue. Repeat from 3.
//
// Queues are ordered by mesh.Compare on cell keys.
//
// Output:
//
//   - Field: the matching as four index slices (Unpaired marks "no partner")
//     and the critical sets C0, C1, C2 as roaring bitmaps.
//   - Every cell is either critical or matched, never both. Validate checks it.
//
// Concurrency:
//
//   - Build splits the vertices into chunks processed by an errgroup bounded
//     by WithWorkers. Chunks write disjoint slice entries; critical cells are
//     merged in chunk order, so the result does not depend on scheduling.
//   - ctx is checked between vertices.
//
// Complexity:
//
//   - Time: O(Σ_v |L(v)| log |L(v)|) ⊆ O((V+E+F) log d), d = max vertex degree.
//   - Space: O(V + E + F).
package gradient
