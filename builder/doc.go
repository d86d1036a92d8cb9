// SPDX-License-Identifier: MIT

// Package builder produces deterministic triangulated surfaces with a scalar
// field attached, ready for mesh.New. It is the fixture factory used by the
// tests, examples and benchmarks of every other lvmorse package.
//
// The package offers the following key components:
//
//   - Topology constructors (Constructor implementations):
//     – Grid(rows, cols):      planar disc, each quad split along its "\" diagonal.
//     – Torus(rows, cols):     the same lattice with both directions wrapped.
//     – PlatonicSolid(name):   Tetrahedron, Octahedron, Icosahedron (spheres).
//     – Geodesic(level):       icosahedron refined level times (spheres).
//   - Scalar fields (ScalarFn implementations):
//     – DistanceFn(origin):    Euclidean distance to a point.
//     – HeightFn(axis):        one coordinate of the embedding.
//     – WaveFn(freq):          sum of sines over the coordinates.
//     – RandomFn():            uniform noise, requires WithSeed or WithRand.
//   - Configuration primitives:
//     – BuilderOption mutates builderConfig before use.
//     – WithTieBreak adds eps*index to every value, which makes the values
//       of symmetric embeddings unique.
//
// Guarantees:
//
//   - Determinism: same constructor, options and seed ⇒ identical meshes,
//     identical vertex, edge and face numbering.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name.
package builder
