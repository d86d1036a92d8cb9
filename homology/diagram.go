// SPDX-License-Identifier: MIT
// Package: lvmorse/homology
//
// diagram.go — persistence diagram points.

package homology

import "math"

// Point is one persistence-diagram entry. Essential classes (generators)
// have Death = +Inf.
type Point struct {
	Dim   int
	Birth float64
	Death float64
}

// Persistence returns Death − Birth.
func (p Point) Persistence() float64 { return p.Death - p.Birth }

// Diagram returns one point per pair followed by one point per generator.
// A cell contributes its highest vertex value.
func (r *Result) Diagram() []Point {
	out := make([]Point, 0, len(r.Pairs)+len(r.Generators))
	for _, p := range r.Pairs {
		out = append(out, Point{Dim: p.Dim, Birth: r.m.Value(p.Birth), Death: r.m.Value(p.Death)})
	}
	for _, g := range r.Generators {
		out = append(out, Point{Dim: int(g.Dim), Birth: r.m.Value(g), Death: math.Inf(1)})
	}
	return out
}
