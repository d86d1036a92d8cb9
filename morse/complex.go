// SPDX-License-Identifier: MIT
// Package: lvmorse/morse
//
// complex.go — the Complex arena, deep copy, counts and Validate.

package morse

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/lvmorse/mesh"
)

// Complex is a Morse complex over an immutable mesh.
type Complex struct {
	// Mesh is the underlying surface. It is shared, never modified.
	Mesh *mesh.Mesh

	Vertices map[uint32]*CritVertex
	Edges    map[uint32]*CritEdge
	Faces    map[uint32]*CritFace

	// Separatrices lists destroyed connections in cancellation order.
	Separatrices []Separatrix

	// Persistence is the threshold this complex was reduced to (0 if never).
	Persistence float64
	// MaximallyReduced is set when Persistence covers the full scalar range.
	MaximallyReduced bool
}

// newComplex returns an empty complex over m.
func newComplex(m *mesh.Mesh) *Complex {
	return &Complex{
		Mesh:     m,
		Vertices: make(map[uint32]*CritVertex),
		Edges:    make(map[uint32]*CritEdge),
		Faces:    make(map[uint32]*CritFace),
	}
}

// Clone returns a deep copy. Cell records and maps are copied; Path values
// are shared because they are never modified in place.
//
// Complexity: O(|C| + Σ connections).
func (c *Complex) Clone() *Complex {
	out := &Complex{
		Mesh:             c.Mesh,
		Vertices:         make(map[uint32]*CritVertex, len(c.Vertices)),
		Edges:            make(map[uint32]*CritEdge, len(c.Edges)),
		Faces:            make(map[uint32]*CritFace, len(c.Faces)),
		Separatrices:     slices.Clone(c.Separatrices),
		Persistence:      c.Persistence,
		MaximallyReduced: c.MaximallyReduced,
	}
	for i, v := range c.Vertices {
		out.Vertices[i] = &CritVertex{Index: v.Index, Value: v.Value, Saddles: maps.Clone(v.Saddles)}
	}
	for i, e := range c.Edges {
		ne := &CritEdge{
			Index:  e.Index,
			Key:    e.Key,
			Minima: make(map[uint32][]Path, len(e.Minima)),
			Maxima: maps.Clone(e.Maxima),
		}
		for k, ps := range e.Minima {
			ne.Minima[k] = slices.Clone(ps)
		}
		out.Edges[i] = ne
	}
	for i, f := range c.Faces {
		nf := &CritFace{Index: f.Index, Key: f.Key, Saddles: make(map[uint32][]Path, len(f.Saddles))}
		for k, ps := range f.Saddles {
			nf.Saddles[k] = slices.Clone(ps)
		}
		out.Faces[i] = nf
	}

	return out
}

// Counts returns the number of critical vertices, edges and faces.
func (c *Complex) Counts() (minima, saddles, maxima int) {
	return len(c.Vertices), len(c.Edges), len(c.Faces)
}

// NumCritical returns the total number of critical cells.
func (c *Complex) NumCritical() int { return len(c.Vertices) + len(c.Edges) + len(c.Faces) }

// EulerCharacteristic returns |C0| - |C1| + |C2|.
func (c *Complex) EulerCharacteristic() int {
	return len(c.Vertices) - len(c.Edges) + len(c.Faces)
}

// IsCritical reports whether the cell is still critical.
func (c *Complex) IsCritical(id mesh.CellID) bool {
	switch id.Dim {
	case mesh.DimVertex:
		_, ok := c.Vertices[id.Index]
		return ok
	case mesh.DimEdge:
		_, ok := c.Edges[id.Index]
		return ok
	case mesh.DimFace:
		_, ok := c.Faces[id.Index]
		return ok
	}
	return false
}

// CriticalCells returns every critical cell, vertices then edges then faces,
// each group in ascending index order.
func (c *Complex) CriticalCells() []mesh.CellID {
	out := make([]mesh.CellID, 0, c.NumCritical())
	for _, i := range sortedKeys(c.Vertices) {
		out = append(out, mesh.VertexID(i))
	}
	for _, i := range sortedKeys(c.Edges) {
		out = append(out, mesh.EdgeID(i))
	}
	for _, i := range sortedKeys(c.Faces) {
		out = append(out, mesh.FaceID(i))
	}
	return out
}

// SortedVertices, SortedEdges and SortedFaces return critical indices in
// ascending order.
func (c *Complex) SortedVertices() []uint32 { return sortedKeys(c.Vertices) }

// SortedEdges returns critical edge indices in ascending order.
func (c *Complex) SortedEdges() []uint32 { return sortedKeys(c.Edges) }

// SortedFaces returns critical face indices in ascending order.
func (c *Complex) SortedFaces() []uint32 { return sortedKeys(c.Faces) }

// Validate checks that every connection is recorded symmetrically with the
// same multiplicity, that multiplicities are 1 or 2, that every path starts
// and ends at the cells it connects, and that the Euler characteristic of
// the critical counts equals the mesh's.
//
// Complexity: O(|C| + Σ connections).
func (c *Complex) Validate() error {
	if c.Mesh == nil {
		return ErrNilInput
	}

	// 1) Saddle → minimum.
	for _, ei := range sortedKeys(c.Edges) {
		e := c.Edges[ei]
		id := mesh.EdgeID(ei)
		for _, vi := range sortedKeys(e.Minima) {
			ps := e.Minima[vi]
			v, ok := c.Vertices[vi]
			if !ok {
				return invariantf(id, ErrInvariant, "connected to non-critical v%d", vi)
			}
			if err := checkMultiplicity(id, len(ps), v.Saddles[ei]); err != nil {
				return err
			}
			for _, p := range ps {
				if len(p) < 2 || len(p)%2 != 0 || p.First() != ei || p.Last() != vi {
					return invariantf(id, ErrInvariant, "malformed path to v%d: %v", vi, p)
				}
			}
		}
		for fi, n := range e.Maxima {
			f, ok := c.Faces[fi]
			if !ok {
				return invariantf(id, ErrInvariant, "connected to non-critical f%d", fi)
			}
			if err := checkMultiplicity(id, n, len(f.Saddles[ei])); err != nil {
				return err
			}
		}
	}

	// 2) Minimum → saddle back references.
	for _, vi := range sortedKeys(c.Vertices) {
		for ei, n := range c.Vertices[vi].Saddles {
			e, ok := c.Edges[ei]
			if !ok || len(e.Minima[vi]) != n {
				return invariantf(mesh.VertexID(vi), ErrInvariant, "dangling saddle e%d", ei)
			}
		}
	}

	// 3) Maximum → saddle.
	for _, fi := range sortedKeys(c.Faces) {
		id := mesh.FaceID(fi)
		for ei, ps := range c.Faces[fi].Saddles {
			e, ok := c.Edges[ei]
			if !ok || e.Maxima[fi] != len(ps) {
				return invariantf(id, ErrInvariant, "dangling saddle e%d", ei)
			}
			for _, p := range ps {
				if len(p) < 2 || len(p)%2 != 0 || p.First() != fi || p.Last() != ei {
					return invariantf(id, ErrInvariant, "malformed path to e%d: %v", ei, p)
				}
			}
		}
	}

	// 4) Euler.
	if got, want := c.EulerCharacteristic(), c.Mesh.EulerCharacteristic(); got != want {
		return fmt.Errorf("%w: critical χ=%d, mesh χ=%d", ErrEulerDrift, got, want)
	}

	return nil
}

func checkMultiplicity(id mesh.CellID, forward, backward int) error {
	if forward != backward {
		return invariantf(id, ErrInvariant, "asymmetric multiplicity %d vs %d", forward, backward)
	}
	if forward < 1 || forward > 2 {
		return invariantf(id, ErrMultiplicityOverflow, "multiplicity %d", forward)
	}
	return nil
}

func sortedKeys[V any](m map[uint32]V) []uint32 {
	return slices.Sorted(maps.Keys(m))
}
