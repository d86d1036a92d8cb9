// SPDX-License-Identifier: MIT
// Package: lvmorse/mesh
//
// mesh.go — Mesh construction from per-vertex values and triangles.
//
// Determinism:
//   - Edge indices are assigned in order of first appearance while scanning
//     triangles in input order, corners (0,1), (1,2), (0,2).
//   - Star lists and neighbour lists are ascending.

package mesh

import (
	"fmt"
	"math"
	"sort"
)

// Mesh is an immutable triangulated surface with a scalar value per vertex.
type Mesh struct {
	Vertices []Vertex
	Edges    []Edge
	Faces    []Face

	min, max float64
}

// New validates the loader input and builds a Mesh.
//
// Steps:
//  1. Reject empty input and non-finite values.
//  2. Optionally perturb duplicate values (WithPerturbation).
//  3. Reject duplicate values (strict total order is a precondition).
//  4. Build faces, deduplicate edges, collect stars and cofaces.
//  5. Reject non-manifold edges and vertices.
//
// Complexity: O(V log V + F) time, O(V + E + F) space.
func New(values []float64, triangles [][3]uint32, opts ...Option) (*Mesh, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Basic shape checks.
	if len(values) == 0 || len(triangles) == 0 {
		return nil, ErrEmptyMesh
	}
	if uint64(len(values)) > math.MaxUint32 || uint64(len(triangles)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: too many cells", ErrEmptyMesh)
	}
	vals := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: vertex %d value=%v", ErrInvalidValue, i, v)
		}
		vals[i] = v
	}

	// 2) Loader-side perturbation.
	if cfg.Perturb {
		Perturb(vals, cfg.Epsilon)
	}

	// 3) Uniqueness.
	if err := checkUnique(vals); err != nil {
		return nil, err
	}

	m := &Mesh{
		Vertices: make([]Vertex, len(vals)),
		Faces:    make([]Face, 0, len(triangles)),
		Edges:    make([]Edge, 0, len(triangles)*3/2+1),
	}
	m.min, m.max = vals[0], vals[0]
	for i, v := range vals {
		m.Vertices[i] = Vertex{Index: uint32(i), Value: v}
		m.min = math.Min(m.min, v)
		m.max = math.Max(m.max, v)
	}

	// 4) Faces and edges.
	edgeIndex := make(map[[2]uint32]uint32, cap(m.Edges))
	faceSeen := make(map[[3]uint32]struct{}, len(triangles))
	corners := [3][2]int{{0, 1}, {1, 2}, {0, 2}}
	for fi, tri := range triangles {
		for _, v := range tri {
			if int(v) >= len(vals) {
				return nil, fmt.Errorf("%w: face %d references vertex %d", ErrVertexOutOfRange, fi, v)
			}
		}
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[0] == tri[2] {
			return nil, fmt.Errorf("%w: face %d = %v", ErrDegenerateFace, fi, tri)
		}
		sorted := tri
		sort.Slice(sorted[:], func(i, j int) bool { return sorted[i] < sorted[j] })
		if _, dup := faceSeen[sorted]; dup {
			return nil, fmt.Errorf("%w: face %d = %v", ErrDuplicateFace, fi, tri)
		}
		faceSeen[sorted] = struct{}{}

		f := Face{Index: uint32(fi), Vertices: tri, Key: m.keyOf(tri[:])}
		for k, c := range corners {
			a, b := tri[c[0]], tri[c[1]]
			if a > b {
				a, b = b, a
			}
			ei, ok := edgeIndex[[2]uint32{a, b}]
			if !ok {
				ei = uint32(len(m.Edges))
				edgeIndex[[2]uint32{a, b}] = ei
				m.Edges = append(m.Edges, Edge{
					Index:    ei,
					Vertices: [2]uint32{a, b},
					Key:      m.keyOf([]uint32{a, b}),
				})
			}
			e := &m.Edges[ei]
			e.Cofaces = append(e.Cofaces, f.Index)
			if len(e.Cofaces) > 2 {
				return nil, fmt.Errorf("%w: edge (%d,%d)", ErrNonManifoldEdge, a, b)
			}
			f.Edges[k] = ei
		}
		m.Faces = append(m.Faces, f)
	}

	// Stars and neighbours, ascending by construction of the index loops.
	for i := range m.Edges {
		e := &m.Edges[i]
		for _, v := range e.Vertices {
			vx := &m.Vertices[v]
			vx.Star.Edges = append(vx.Star.Edges, e.Index)
			vx.Neighbors = append(vx.Neighbors, e.Other(v))
		}
	}
	for i := range m.Faces {
		for _, v := range m.Faces[i].Vertices {
			m.Vertices[v].Star.Faces = append(m.Vertices[v].Star.Faces, uint32(i))
		}
	}
	for i := range m.Vertices {
		sort.Slice(m.Vertices[i].Neighbors, func(a, b int) bool {
			return m.Vertices[i].Neighbors[a] < m.Vertices[i].Neighbors[b]
		})
	}

	// 5) Vertex manifoldness.
	for i := range m.Vertices {
		if !m.starConnected(uint32(i)) {
			return nil, fmt.Errorf("%w: vertex %d", ErrNonManifoldVertex, i)
		}
	}

	return m, nil
}

// keyOf returns the descending-sorted values of the given vertices.
func (m *Mesh) keyOf(vs []uint32) Key {
	k := make(Key, len(vs))
	for i, v := range vs {
		k[i] = m.Vertices[v].Value
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(k)))
	return k
}

// starConnected reports whether the faces around v form one fan.
func (m *Mesh) starConnected(v uint32) bool {
	faces := m.Vertices[v].Star.Faces
	if len(faces) == 0 {
		return false
	}
	seen := map[uint32]bool{faces[0]: true}
	queue := []uint32{faces[0]}
	for qi := 0; qi < len(queue); qi++ {
		f := &m.Faces[queue[qi]]
		for _, ei := range f.Edges {
			e := &m.Edges[ei]
			if e.Vertices[0] != v && e.Vertices[1] != v {
				continue
			}
			for _, g := range e.Cofaces {
				if !seen[g] {
					seen[g] = true
					queue = append(queue, g)
				}
			}
		}
	}
	return len(seen) == len(faces)
}

func checkUnique(vals []float64) error {
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return vals[idx[a]] < vals[idx[b]] })
	for i := 1; i < len(idx); i++ {
		if vals[idx[i]] == vals[idx[i-1]] {
			return fmt.Errorf("%w: vertices %d and %d share value %v",
				ErrDuplicateValue, idx[i-1], idx[i], vals[idx[i]])
		}
	}
	return nil
}
