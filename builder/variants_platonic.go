// SPDX-License-Identifier: MIT
// Package: lvmorse/builder
//
// variants_platonic.go — canonical data for the triangulated Platonic solids.
//
// Design:
//   • Single source of truth for vertex positions and face lists.
//   • Only solids with triangular faces are listed; each is a sphere.
//   • Datasets are immutable package-level values.
//
// Determinism:
//   • Faces are listed in a fixed order; mesh.New numbers edges by first
//     appearance, so the edge numbering is fixed as well.

package builder

import "math"

// PlatonicName enumerates the triangulated Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs/errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Octahedron:
		return "Octahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron PlatonicName = iota // V=4,  E=6,  F=4
	Octahedron                      // V=6,  E=12, F=8
	Icosahedron                     // V=12, E=30, F=20
)

// platonicSolid is one canonical embedding.
type platonicSolid struct {
	points []Point
	faces  [][3]uint32
}

var platonicSolids = map[PlatonicName]platonicSolid{
	// Alternate corners of the cube [-1,1]³.
	Tetrahedron: {
		points: []Point{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}},
		faces:  [][3]uint32{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}},
	},

	// Poles 0 (top) and 1 (bottom); equator ring 2-4-3-5.
	Octahedron: {
		points: []Point{{0, 0, 1}, {0, 0, -1}, {1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}},
		faces: [][3]uint32{
			{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
			{1, 4, 2}, {1, 3, 4}, {1, 5, 3}, {1, 2, 5},
		},
	},

	// Top pole 0, top ring 1..5, bottom ring 6..10, bottom pole 11.
	// Top vertex Ti touches bottom vertices B(5+i) and B(5+i+1).
	Icosahedron: {
		points: icosahedronPoints(),
		faces: [][3]uint32{
			{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5}, {0, 5, 1},
			{1, 7, 2}, {2, 8, 3}, {3, 9, 4}, {4, 10, 5}, {5, 6, 1},
			{1, 6, 7}, {2, 7, 8}, {3, 8, 9}, {4, 9, 10}, {5, 10, 6},
			{11, 7, 6}, {11, 8, 7}, {11, 9, 8}, {11, 10, 9}, {11, 6, 10},
		},
	},
}

// icosahedronPoints places the unit icosahedron with poles on the z axis.
func icosahedronPoints() []Point {
	z := 1 / math.Sqrt(5)
	rad := 2 / math.Sqrt(5)
	pts := make([]Point, 0, 12)
	pts = append(pts, Point{0, 0, 1})
	for i := 0; i < 5; i++ {
		a := 2 * math.Pi * float64(i) / 5
		pts = append(pts, Point{rad * math.Cos(a), rad * math.Sin(a), z})
	}
	for i := 0; i < 5; i++ {
		a := 2*math.Pi*float64(i)/5 - math.Pi/5
		pts = append(pts, Point{rad * math.Cos(a), rad * math.Sin(a), -z})
	}
	pts = append(pts, Point{0, 0, -1})

	return pts
}
