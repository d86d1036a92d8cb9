// SPDX-License-Identifier: MIT
// Package: lvmorse/mesh
//
// query.go — read-only accessors over a built Mesh.

package mesh

// NumVertices returns |V|.
func (m *Mesh) NumVertices() int { return len(m.Vertices) }

// NumEdges returns |E|.
func (m *Mesh) NumEdges() int { return len(m.Edges) }

// NumFaces returns |F|.
func (m *Mesh) NumFaces() int { return len(m.Faces) }

// NumCells returns |V| + |E| + |F|.
func (m *Mesh) NumCells() int { return len(m.Vertices) + len(m.Edges) + len(m.Faces) }

// EulerCharacteristic returns V - E + F.
func (m *Mesh) EulerCharacteristic() int {
	return len(m.Vertices) - len(m.Edges) + len(m.Faces)
}

// Min returns the lowest vertex value.
func (m *Mesh) Min() float64 { return m.min }

// Max returns the highest vertex value.
func (m *Mesh) Max() float64 { return m.max }

// Range returns Max - Min.
func (m *Mesh) Range() float64 { return m.max - m.min }

// Key returns the comparison key of a cell. The returned slice must not be
// modified. Returns nil if id is out of range.
func (m *Mesh) Key(id CellID) Key {
	switch id.Dim {
	case DimVertex:
		if int(id.Index) < len(m.Vertices) {
			return Key{m.Vertices[id.Index].Value}
		}
	case DimEdge:
		if int(id.Index) < len(m.Edges) {
			return m.Edges[id.Index].Key
		}
	case DimFace:
		if int(id.Index) < len(m.Faces) {
			return m.Faces[id.Index].Key
		}
	}
	return nil
}

// Value returns the highest vertex value of a cell (its own value for a
// vertex).
func (m *Mesh) Value(id CellID) float64 {
	if k := m.Key(id); k != nil {
		return k[0]
	}
	return 0
}

// CellVertices appends the vertices of cell id to dst and returns it.
func (m *Mesh) CellVertices(dst []uint32, id CellID) []uint32 {
	switch id.Dim {
	case DimVertex:
		return append(dst, id.Index)
	case DimEdge:
		e := &m.Edges[id.Index]
		return append(dst, e.Vertices[0], e.Vertices[1])
	case DimFace:
		f := &m.Faces[id.Index]
		return append(dst, f.Vertices[0], f.Vertices[1], f.Vertices[2])
	}
	return dst
}

// EdgeBetween returns the edge joining a and b, if any.
func (m *Mesh) EdgeBetween(a, b uint32) (uint32, bool) {
	for _, ei := range m.Vertices[a].Star.Edges {
		if m.Edges[ei].Other(a) == b {
			return ei, true
		}
	}
	return 0, false
}

// IsBoundaryEdge reports whether edge e has a single coface.
func (m *Mesh) IsBoundaryEdge(e uint32) bool { return len(m.Edges[e].Cofaces) == 1 }
