// SPDX-License-Identifier: MIT
// Package: lvmorse/mesh
//
// types.go — cell records, keys and the tagged CellID reference.
//
// Determinism:
//   - Compare defines a strict total order on keys of mixed arity; the
//     lower-star pairing depends on this exact tie-break.

package mesh

import (
	"fmt"
	"strconv"
)

// Dim is the dimension of a cell: 0 for vertices, 1 for edges, 2 for faces.
type Dim uint8

const (
	// DimVertex tags a 0-cell.
	DimVertex Dim = iota
	// DimEdge tags a 1-cell.
	DimEdge
	// DimFace tags a 2-cell.
	DimFace
)

// String returns "vertex", "edge" or "face".
func (d Dim) String() string {
	switch d {
	case DimVertex:
		return "vertex"
	case DimEdge:
		return "edge"
	case DimFace:
		return "face"
	default:
		return "dim(" + strconv.Itoa(int(d)) + ")"
	}
}

// CellID references a cell of a Mesh by dimension and index.
type CellID struct {
	Dim   Dim
	Index uint32
}

// VertexID, EdgeID and FaceID build tagged references.
func VertexID(i uint32) CellID { return CellID{Dim: DimVertex, Index: i} }

// EdgeID returns the CellID of edge i.
func EdgeID(i uint32) CellID { return CellID{Dim: DimEdge, Index: i} }

// FaceID returns the CellID of face i.
func FaceID(i uint32) CellID { return CellID{Dim: DimFace, Index: i} }

// String renders the id as "v12", "e3" or "f7".
func (c CellID) String() string {
	switch c.Dim {
	case DimVertex:
		return "v" + strconv.FormatUint(uint64(c.Index), 10)
	case DimEdge:
		return "e" + strconv.FormatUint(uint64(c.Index), 10)
	case DimFace:
		return "f" + strconv.FormatUint(uint64(c.Index), 10)
	default:
		return fmt.Sprintf("%s#%d", c.Dim, c.Index)
	}
}

// Key is the comparison key of a cell: its vertex values sorted descending.
// A vertex key has length 1, an edge key 2 and a face key 3.
type Key []float64

// Max returns the highest vertex value of the cell.
func (k Key) Max() float64 { return k[0] }

// Less reports whether k orders strictly before o.
func (k Key) Less(o Key) bool { return Compare(k, o) < 0 }

// Compare orders two keys element-wise. If one key is a strict prefix of the
// other, the shorter key is the smaller one. Returns -1, 0 or +1.
//
// Complexity: O(min(len(a), len(b))).
func Compare(a, b Key) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Star lists the edges and faces incident to a vertex, in ascending index order.
type Star struct {
	Edges []uint32
	Faces []uint32
}

// Vertex is a 0-cell.
type Vertex struct {
	// Index is the stable vertex index (position in Mesh.Vertices).
	Index uint32

	// Value is the (unique) scalar value of the Morse function.
	Value float64

	// Star holds the incident edges and faces.
	Star Star

	// Neighbors holds the adjacent vertex indices, ascending.
	Neighbors []uint32
}

// Edge is a 1-cell.
type Edge struct {
	Index    uint32
	Vertices [2]uint32 // ascending vertex indices
	Key      Key       // descending vertex values
	Cofaces  []uint32  // incident faces (one on a border, two inside)
}

// Face is a 2-cell.
type Face struct {
	Index    uint32
	Vertices [3]uint32 // as supplied by the loader
	Edges    [3]uint32 // bounding edges
	Key      Key       // descending vertex values
}

// HasVertex reports whether v is a corner of the face.
func (f *Face) HasVertex(v uint32) bool {
	return f.Vertices[0] == v || f.Vertices[1] == v || f.Vertices[2] == v
}

// Other returns the endpoint of e that is not v.
func (e *Edge) Other(v uint32) uint32 {
	if e.Vertices[0] == v {
		return e.Vertices[1]
	}
	return e.Vertices[0]
}
