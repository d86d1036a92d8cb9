// SPDX-License-Identifier: MIT
// Package: lvmorse/reduce
//
// closest.go — the closest eligible extremum of a saddle.

package reduce

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvmorse/mesh"
	"github.com/katalvlaran/lvmorse/morse"
)

// Candidate is a cancellable saddle/extremum pair.
type Candidate struct {
	Saddle   uint32
	Extremum uint32
	// Dim is mesh.DimVertex for a minimum, mesh.DimFace for a maximum.
	Dim  mesh.Dim
	Dist float64
}

// Kind returns "minimum" or "maximum".
func (c Candidate) Kind() string {
	if c.Dim == mesh.DimFace {
		return "maximum"
	}
	return "minimum"
}

// ClosestExtremum returns the eligible extremum nearest to saddle. Maxima
// are scanned before minima, each in ascending index order, and only a
// strictly smaller distance replaces the current best. ok is false when
// the saddle has no eligible connection or is not critical.
//
// Complexity: O(connections + Σ checked path lengths).
func ClosestExtremum(c *morse.Complex, saddle uint32, salient *roaring.Bitmap) (best Candidate, ok bool) {
	e, found := c.Edges[saddle]
	if !found {
		return Candidate{}, false
	}
	best.Dist = math.Inf(1)
	top := e.Key[0]

	for _, fi := range sortedKeys(e.Maxima) {
		if e.Maxima[fi] != 1 {
			continue
		}
		f := c.Faces[fi]
		d := math.Abs(f.Key[0] - top)
		if d >= best.Dist {
			continue
		}
		if salient != nil && touchesSalient(c.Mesh, mesh.DimFace, f.Saddles[saddle][0], salient) {
			continue
		}
		best, ok = Candidate{Saddle: saddle, Extremum: fi, Dim: mesh.DimFace, Dist: d}, true
	}
	for _, vi := range sortedKeys(e.Minima) {
		ps := e.Minima[vi]
		if len(ps) != 1 {
			continue
		}
		d := math.Abs(top - c.Vertices[vi].Value)
		if d >= best.Dist {
			continue
		}
		if salient != nil && touchesSalient(c.Mesh, mesh.DimEdge, ps[0], salient) {
			continue
		}
		best, ok = Candidate{Saddle: saddle, Extremum: vi, Dim: mesh.DimVertex, Dist: d}, true
	}
	return best, ok
}

// touchesSalient reports whether the higher-dimensional cells of p (faces of
// a maximum path, edges of a minimum path) span SalientLimit or more salient
// vertices.
func touchesSalient(m *mesh.Mesh, hi mesh.Dim, p morse.Path, salient *roaring.Bitmap) bool {
	hit := roaring.New()
	var buf []uint32
	for i := 0; i < len(p); i += 2 {
		buf = m.CellVertices(buf[:0], mesh.CellID{Dim: hi, Index: p[i]})
		for _, v := range buf {
			if salient.Contains(v) {
				hit.Add(v)
			}
		}
		if hit.GetCardinality() >= SalientLimit {
			return true
		}
	}
	return false
}
