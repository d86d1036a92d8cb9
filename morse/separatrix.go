// SPDX-License-Identifier: MIT
// Package: lvmorse/morse
//
// separatrix.go — separatrix persistence and filtering.

package morse

import (
	"sort"

	"github.com/katalvlaran/lvmorse/mesh"
)

// PathPersistence returns the mean scalar value along a path of the given
// dimension. Cells contribute their highest vertex value.
//
// Dimension 1: even positions are edges, odd positions are vertices.
// Dimension 2: even positions are faces, odd positions are edges.
//
// Complexity: O(len(p)).
func PathPersistence(m *mesh.Mesh, dim int, p Path) float64 {
	if len(p) == 0 {
		return 0
	}
	var sum float64
	for i, idx := range p {
		switch {
		case dim == 1 && i%2 == 0:
			sum += m.Edges[idx].Key[0]
		case dim == 1:
			sum += m.Vertices[idx].Value
		case i%2 == 0:
			sum += m.Faces[idx].Key[0]
		default:
			sum += m.Edges[idx].Key[0]
		}
	}
	return sum / float64(len(p))
}

// PathCells expands a path of the given dimension into tagged cell ids.
func PathCells(dim int, p Path) []mesh.CellID {
	hi, lo := mesh.DimEdge, mesh.DimVertex
	if dim == 2 {
		hi, lo = mesh.DimFace, mesh.DimEdge
	}
	out := make([]mesh.CellID, len(p))
	for i, idx := range p {
		d := hi
		if i%2 == 1 {
			d = lo
		}
		out[i] = mesh.CellID{Dim: d, Index: idx}
	}
	return out
}

// newSeparatrix builds a Separatrix with its persistence.
func newSeparatrix(m *mesh.Mesh, dim int, origin, dest mesh.CellID, p Path) Separatrix {
	return Separatrix{
		Origin:      origin,
		Destination: dest,
		Dimension:   dim,
		Path:        p,
		Persistence: PathPersistence(m, dim, p),
	}
}

// SeparatricesAbove returns the separatrices of the given kind whose
// persistence is strictly greater than threshold, sorted by decreasing
// persistence.
func (c *Complex) SeparatricesAbove(kind Kind, threshold float64) []Separatrix {
	var out []Separatrix
	for i := range c.Separatrices {
		s := &c.Separatrices[i]
		if kind.Matches(s) && s.Persistence > threshold {
			out = append(out, *s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Persistence > out[j].Persistence })
	return out
}

// SeparatrixRange returns the smallest and largest separatrix persistence.
// ok is false when no separatrix has been recorded.
func (c *Complex) SeparatrixRange() (lo, hi float64, ok bool) {
	for i, s := range c.Separatrices {
		if i == 0 || s.Persistence < lo {
			lo = s.Persistence
		}
		if i == 0 || s.Persistence > hi {
			hi = s.Persistence
		}
	}
	return lo, hi, len(c.Separatrices) > 0
}
