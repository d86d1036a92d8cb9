// SPDX-License-Identifier: MIT
// Package: lvmorse/homology
//
// homology.go — Compute: pair critical cells and count generators.

package homology

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvmorse/mesh"
	"github.com/katalvlaran/lvmorse/morse"
)

// Pair is a persistence pair: Birth (dimension Dim) is killed by Death
// (dimension Dim+1).
type Pair struct {
	Dim   int
	Birth mesh.CellID
	Death mesh.CellID
}

// Result holds the Betti numbers and the pairing that produced them.
type Result struct {
	Betti [3]int
	// Pairs in the order they were found (dimension 0 first).
	Pairs []Pair
	// Generators are the unpaired cells, vertices then edges then faces,
	// each group in ascending key order.
	Generators []mesh.CellID

	m *mesh.Mesh
}

// ranked holds one dimension's critical cells in ascending key order.
type ranked struct {
	cells []uint32          // rank → mesh index
	rank  map[uint32]uint32 // mesh index → rank
}

func rankBy(cells []uint32, key func(uint32) mesh.Key) ranked {
	slices.SortFunc(cells, func(a, b uint32) int { return mesh.Compare(key(a), key(b)) })
	r := ranked{cells: cells, rank: make(map[uint32]uint32, len(cells))}
	for i, c := range cells {
		r.rank[c] = uint32(i)
	}
	return r
}

// Compute pairs the critical cells of c and returns its Betti numbers.
//
// Complexity: see package doc.
func Compute(c *morse.Complex) (*Result, error) {
	if c == nil || c.Mesh == nil {
		return nil, ErrNilComplex
	}
	m := c.Mesh

	// 1) Rank every dimension by key.
	r0 := rankBy(c.SortedVertices(), func(i uint32) mesh.Key { return mesh.Key{m.Vertices[i].Value} })
	r1 := rankBy(c.SortedEdges(), func(i uint32) mesh.Key { return m.Edges[i].Key })
	r2 := rankBy(c.SortedFaces(), func(i uint32) mesh.Key { return m.Faces[i].Key })

	// 2) Mod-2 boundaries over ranks.
	bd1 := make([]*roaring.Bitmap, len(r1.cells))
	for i, ei := range r1.cells {
		b := roaring.New()
		for vi, ps := range c.Edges[ei].Minima {
			if len(ps)%2 == 1 {
				b.Add(r0.rank[vi])
			}
		}
		bd1[i] = b
	}
	bd2 := make([]*roaring.Bitmap, len(r2.cells))
	for i, fi := range r2.cells {
		b := roaring.New()
		for ei, ps := range c.Faces[fi].Saddles {
			if len(ps)%2 == 1 {
				b.Add(r1.rank[ei])
			}
		}
		bd2[i] = b
	}

	// 3) Pair.
	res := &Result{m: m}
	partner0 := pairCells(bd1, len(r0.cells))
	partner1 := pairCells(bd2, len(r1.cells))

	paired1 := make([]bool, len(r1.cells))
	paired2 := make([]bool, len(r2.cells))
	for lo, hi := range partner0 {
		if hi >= 0 {
			res.Pairs = append(res.Pairs, Pair{Dim: 0, Birth: mesh.VertexID(r0.cells[lo]), Death: mesh.EdgeID(r1.cells[hi])})
			paired1[hi] = true
		}
	}
	for lo, hi := range partner1 {
		if hi >= 0 {
			res.Pairs = append(res.Pairs, Pair{Dim: 1, Birth: mesh.EdgeID(r1.cells[lo]), Death: mesh.FaceID(r2.cells[hi])})
			paired1[lo] = true
			paired2[hi] = true
		}
	}

	// 4) Generators.
	for lo, hi := range partner0 {
		if hi < 0 {
			res.Generators = append(res.Generators, mesh.VertexID(r0.cells[lo]))
			res.Betti[0]++
		}
	}
	for i, ok := range paired1 {
		if !ok {
			res.Generators = append(res.Generators, mesh.EdgeID(r1.cells[i]))
			res.Betti[1]++
		}
	}
	for i, ok := range paired2 {
		if !ok {
			res.Generators = append(res.Generators, mesh.FaceID(r2.cells[i]))
			res.Betti[2]++
		}
	}

	return res, nil
}

// pairCells runs the elimination for one dimension. bd holds the boundaries
// of the higher cells by rank; the result maps each lower rank to the rank
// of its partner, or -1.
func pairCells(bd []*roaring.Bitmap, nLower int) []int {
	partner := make([]int, nLower)
	for i := range partner {
		partner[i] = -1
	}
	for sigma, b := range bd {
		for !b.IsEmpty() {
			tau := b.Maximum()
			p := partner[tau]
			if p < 0 {
				partner[tau] = sigma
				break
			}
			b.Xor(bd[p])
		}
	}
	return partner
}
