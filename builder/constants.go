// SPDX-License-Identifier: MIT
// Package: lvmorse/builder
//
// constants.go — method names and size minima shared by constructors.

package builder

// Method name constants, used to prefix errors with the constructor name.
const (
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodTorus is the canonical name for the Torus constructor.
	MethodTorus = "Torus"
	// MethodPlatonicSolid is the canonical name for the PlatonicSolid constructor.
	MethodPlatonicSolid = "PlatonicSolid"
	// MethodGeodesic is the canonical name for the Geodesic constructor.
	MethodGeodesic = "Geodesic"
	// MethodBuildMesh is the canonical name for the BuildMesh orchestrator.
	MethodBuildMesh = "BuildMesh"
)

// MinGridDim is the smallest allowed number of vertex rows or columns of a
// Grid. A 2×2 grid is a single quad, i.e. two triangles.
const MinGridDim = 2

// MinTorusDim is the smallest allowed number of rows or columns of a Torus.
// Fewer than three would identify distinct edges of the lattice.
const MinTorusDim = 3

// MinGeodesicLevel is the smallest refinement level (0 = plain icosahedron).
const MinGeodesicLevel = 0

// DefaultTieBreak is the per-index shift added by default to every value.
const DefaultTieBreak = 1e-7

// Default torus radii (major, minor).
const (
	DefaultTorusMajor = 2.0
	DefaultTorusMinor = 1.0
)
