// SPDX-License-Identifier: MIT
// Package: lvmorse/builder
//
// impl_platonic.go — PlatonicSolid(name) and Geodesic(level) constructors.
//
// Contract:
//   • name ∈ {Tetrahedron, Octahedron, Icosahedron}; unknown → ErrOptionViolation.
//   • Geodesic(level) refines the icosahedron level times: every triangle is
//     split into four through its edge midpoints, projected onto the unit sphere.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • PlatonicSolid: O(1).
//   • Geodesic: O(20·4^level) time and space.
//
// Determinism:
//   • Midpoints are numbered in the order they are first needed while
//     scanning faces in order; child faces are emitted corner-first.

package builder

import (
	"fmt"
	"math"
)

// PlatonicSolid returns a Constructor that copies the chosen canonical solid.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(cfg builderConfig) (*Surface, error) {
		solid, ok := platonicSolids[name]
		if !ok {
			return nil, fmt.Errorf("%s: unknown solid %q: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}

		s := &Surface{
			Points:    append([]Point(nil), solid.points...),
			Triangles: append([][3]uint32(nil), solid.faces...),
		}

		return s, nil
	}
}

// Geodesic returns a Constructor for the icosahedron refined level times.
// Requires level ≥ MinGeodesicLevel.
func Geodesic(level int) Constructor {
	return func(cfg builderConfig) (*Surface, error) {
		if err := validateMin(MethodGeodesic, MinGeodesicLevel, level); err != nil {
			return nil, err
		}
		s, err := PlatonicSolid(Icosahedron)(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodGeodesic, err)
		}
		for l := 0; l < level; l++ {
			s = subdivide(s)
		}

		return s, nil
	}
}

// subdivide splits each triangle into four and projects new points on the
// unit sphere.
func subdivide(s *Surface) *Surface {
	out := &Surface{
		Points:    append(make([]Point, 0, len(s.Points)*4), s.Points...),
		Triangles: make([][3]uint32, 0, len(s.Triangles)*4),
	}
	mid := make(map[[2]uint32]uint32, len(s.Triangles)*3/2)
	midpoint := func(a, b uint32) uint32 {
		if a > b {
			a, b = b, a
		}
		if m, ok := mid[[2]uint32{a, b}]; ok {
			return m
		}
		pa, pb := out.Points[a], out.Points[b]
		p := Point{(pa[0] + pb[0]) / 2, (pa[1] + pb[1]) / 2, (pa[2] + pb[2]) / 2}
		n := math.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
		p = Point{p[0] / n, p[1] / n, p[2] / n}
		m := uint32(len(out.Points))
		out.Points = append(out.Points, p)
		mid[[2]uint32{a, b}] = m

		return m
	}
	for _, t := range s.Triangles {
		ab := midpoint(t[0], t[1])
		bc := midpoint(t[1], t[2])
		ca := midpoint(t[2], t[0])
		out.Triangles = append(out.Triangles,
			[3]uint32{t[0], ab, ca},
			[3]uint32{t[1], bc, ab},
			[3]uint32{t[2], ca, bc},
			[3]uint32{ab, bc, ca},
		)
	}

	return out
}
