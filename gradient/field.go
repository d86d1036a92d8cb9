// SPDX-License-Identifier: MIT
// Package: lvmorse/gradient
//
// field.go — the Field type, accessors and Validate.

package gradient

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvmorse/mesh"
)

// Unpaired marks a cell without a partner in a matching slice.
const Unpaired uint32 = math.MaxUint32

// Field is a discrete gradient: a partial matching between vertices and
// edges, and between edges and faces, plus the unmatched (critical) cells.
// A Field is immutable once Build returns.
type Field struct {
	// VertexEdge[v] is the edge paired with vertex v (V12).
	VertexEdge []uint32
	// EdgeVertex[e] is the vertex paired with edge e.
	EdgeVertex []uint32
	// EdgeFace[e] is the face paired with edge e (V23).
	EdgeFace []uint32
	// FaceEdge[f] is the edge paired with face f.
	FaceEdge []uint32

	// C0, C1, C2 hold the indices of critical vertices, edges and faces.
	C0, C1, C2 *roaring.Bitmap
}

// newField allocates a Field sized for m with every cell unpaired.
func newField(m *mesh.Mesh) *Field {
	fill := func(n int) []uint32 {
		s := make([]uint32, n)
		for i := range s {
			s[i] = Unpaired
		}
		return s
	}
	return &Field{
		VertexEdge: fill(len(m.Vertices)),
		EdgeVertex: fill(len(m.Edges)),
		EdgeFace:   fill(len(m.Edges)),
		FaceEdge:   fill(len(m.Faces)),
		C0:         roaring.New(),
		C1:         roaring.New(),
		C2:         roaring.New(),
	}
}

// IsCritical reports whether the cell is unmatched.
func (f *Field) IsCritical(id mesh.CellID) bool {
	switch id.Dim {
	case mesh.DimVertex:
		return f.C0.Contains(id.Index)
	case mesh.DimEdge:
		return f.C1.Contains(id.Index)
	case mesh.DimFace:
		return f.C2.Contains(id.Index)
	}
	return false
}

// Partner returns the cell matched with id, if any.
func (f *Field) Partner(id mesh.CellID) (mesh.CellID, bool) {
	switch id.Dim {
	case mesh.DimVertex:
		if e := f.VertexEdge[id.Index]; e != Unpaired {
			return mesh.EdgeID(e), true
		}
	case mesh.DimEdge:
		if v := f.EdgeVertex[id.Index]; v != Unpaired {
			return mesh.VertexID(v), true
		}
		if fc := f.EdgeFace[id.Index]; fc != Unpaired {
			return mesh.FaceID(fc), true
		}
	case mesh.DimFace:
		if e := f.FaceEdge[id.Index]; e != Unpaired {
			return mesh.EdgeID(e), true
		}
	}
	return mesh.CellID{}, false
}

// Counts returns |C0|, |C1|, |C2|.
func (f *Field) Counts() (minima, saddles, maxima int) {
	return int(f.C0.GetCardinality()), int(f.C1.GetCardinality()), int(f.C2.GetCardinality())
}

// EulerCharacteristic returns |C0| - |C1| + |C2|.
func (f *Field) EulerCharacteristic() int {
	c0, c1, c2 := f.Counts()
	return c0 - c1 + c2
}

// Validate checks that every cell of m is either critical or matched exactly
// once, that matchings are symmetric and join a cell with one of its facets.
// It returns an *InvariantError naming the first offending cell.
//
// Complexity: O(V + E + F).
func (f *Field) Validate(m *mesh.Mesh) error {
	if m == nil {
		return ErrNilMesh
	}
	if len(f.VertexEdge) != len(m.Vertices) || len(f.EdgeVertex) != len(m.Edges) ||
		len(f.EdgeFace) != len(m.Edges) || len(f.FaceEdge) != len(m.Faces) {
		return ErrShapeMismatch
	}

	// 1) Vertices.
	for v := range m.Vertices {
		id := mesh.VertexID(uint32(v))
		e := f.VertexEdge[v]
		crit := f.C0.Contains(uint32(v))
		switch {
		case e != Unpaired && crit:
			return invariantf(id, ErrDoubleMatch, "paired with e%d and critical", e)
		case e == Unpaired && !crit:
			return invariantf(id, ErrUnassignedCell, "no partner")
		case e != Unpaired:
			if f.EdgeVertex[e] != uint32(v) {
				return invariantf(id, ErrAsymmetricMatch, "e%d points to v%d", e, f.EdgeVertex[e])
			}
			ed := &m.Edges[e]
			if ed.Vertices[0] != uint32(v) && ed.Vertices[1] != uint32(v) {
				return invariantf(id, ErrAsymmetricMatch, "e%d is not incident", e)
			}
		}
	}

	// 2) Edges: exactly one of {down pair, up pair, critical}.
	for e := range m.Edges {
		id := mesh.EdgeID(uint32(e))
		n := 0
		if f.EdgeVertex[e] != Unpaired {
			n++
		}
		if f.EdgeFace[e] != Unpaired {
			n++
			fc := f.EdgeFace[e]
			if f.FaceEdge[fc] != uint32(e) {
				return invariantf(id, ErrAsymmetricMatch, "f%d points to e%d", fc, f.FaceEdge[fc])
			}
		}
		if f.C1.Contains(uint32(e)) {
			n++
		}
		switch {
		case n == 0:
			return invariantf(id, ErrUnassignedCell, "no partner")
		case n > 1:
			return invariantf(id, ErrDoubleMatch, "assigned %d times", n)
		}
		if v := f.EdgeVertex[e]; v != Unpaired && f.VertexEdge[v] != uint32(e) {
			return invariantf(id, ErrAsymmetricMatch, "v%d points to e%d", v, f.VertexEdge[v])
		}
	}

	// 3) Faces.
	for fi := range m.Faces {
		id := mesh.FaceID(uint32(fi))
		e := f.FaceEdge[fi]
		crit := f.C2.Contains(uint32(fi))
		switch {
		case e != Unpaired && crit:
			return invariantf(id, ErrDoubleMatch, "paired with e%d and critical", e)
		case e == Unpaired && !crit:
			return invariantf(id, ErrUnassignedCell, "no partner")
		case e != Unpaired:
			if f.EdgeFace[e] != uint32(fi) {
				return invariantf(id, ErrAsymmetricMatch, "e%d points to f%d", e, f.EdgeFace[e])
			}
			fc := &m.Faces[fi]
			if fc.Edges[0] != e && fc.Edges[1] != e && fc.Edges[2] != e {
				return invariantf(id, ErrAsymmetricMatch, "e%d is not a facet", e)
			}
		}
	}

	return nil
}
