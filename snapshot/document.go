// SPDX-License-Identifier: MIT
// Package: lvmorse/snapshot
//
// document.go — the flat, codec-friendly form of a complex.
//
// Only forward links are stored (saddle→minimum paths, maximum→saddle
// paths). Back references and multiplicities are rebuilt on load.

package snapshot

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/lvmorse/mesh"
	"github.com/katalvlaran/lvmorse/morse"
)

type document struct {
	NumVertices int `json:"num_vertices"`
	NumEdges    int `json:"num_edges"`
	NumFaces    int `json:"num_faces"`

	Persistence      float64 `json:"persistence"`
	MaximallyReduced bool    `json:"maximally_reduced"`

	Minima       []uint32        `json:"minima"`
	Saddles      []cellDoc       `json:"saddles"`
	Maxima       []cellDoc       `json:"maxima"`
	Separatrices []separatrixDoc `json:"separatrices,omitempty"`
}

// cellDoc is a critical edge or face with its outgoing paths.
type cellDoc struct {
	Index uint32    `json:"index"`
	Links []linkDoc `json:"links,omitempty"`
}

type linkDoc struct {
	Target uint32     `json:"target"`
	Paths  [][]uint32 `json:"paths"`
}

type separatrixDoc struct {
	Origin      cellRef  `json:"origin"`
	Destination cellRef  `json:"destination"`
	Dimension   int      `json:"dimension"`
	Path        []uint32 `json:"path"`
	Persistence float64  `json:"persistence"`
}

type cellRef struct {
	Dim   uint8  `json:"dim"`
	Index uint32 `json:"index"`
}

func sortedKeys[V any](m map[uint32]V) []uint32 {
	return slices.Sorted(maps.Keys(m))
}

func links(m map[uint32][]morse.Path) []linkDoc {
	out := make([]linkDoc, 0, len(m))
	for _, t := range sortedKeys(m) {
		l := linkDoc{Target: t, Paths: make([][]uint32, len(m[t]))}
		for i, p := range m[t] {
			l.Paths[i] = p
		}
		out = append(out, l)
	}
	return out
}

// toDocument flattens c in ascending index order.
func toDocument(c *morse.Complex) *document {
	d := &document{
		NumVertices:      c.Mesh.NumVertices(),
		NumEdges:         c.Mesh.NumEdges(),
		NumFaces:         c.Mesh.NumFaces(),
		Persistence:      c.Persistence,
		MaximallyReduced: c.MaximallyReduced,
		Minima:           c.SortedVertices(),
	}
	for _, ei := range c.SortedEdges() {
		d.Saddles = append(d.Saddles, cellDoc{Index: ei, Links: links(c.Edges[ei].Minima)})
	}
	for _, fi := range c.SortedFaces() {
		d.Maxima = append(d.Maxima, cellDoc{Index: fi, Links: links(c.Faces[fi].Saddles)})
	}
	for _, s := range c.Separatrices {
		d.Separatrices = append(d.Separatrices, separatrixDoc{
			Origin:      cellRef{Dim: uint8(s.Origin.Dim), Index: s.Origin.Index},
			Destination: cellRef{Dim: uint8(s.Destination.Dim), Index: s.Destination.Index},
			Dimension:   s.Dimension,
			Path:        s.Path,
			Persistence: s.Persistence,
		})
	}
	return d
}

// fromDocument rebuilds a complex over m. Every index is range-checked
// against m; connection invariants are left to Complex.Validate.
func fromDocument(d *document, m *mesh.Mesh) (*morse.Complex, error) {
	if d.NumVertices != m.NumVertices() || d.NumEdges != m.NumEdges() || d.NumFaces != m.NumFaces() {
		return nil, fmt.Errorf("%w: snapshot %d/%d/%d cells, mesh %d/%d/%d", ErrMeshMismatch,
			d.NumVertices, d.NumEdges, d.NumFaces, m.NumVertices(), m.NumEdges(), m.NumFaces())
	}
	inRange := func(id mesh.CellID) error {
		if m.Key(id) == nil {
			return fmt.Errorf("%w: cell %s out of range", ErrCorrupt, id)
		}
		return nil
	}

	c := &morse.Complex{
		Mesh:             m,
		Vertices:         make(map[uint32]*morse.CritVertex, len(d.Minima)),
		Edges:            make(map[uint32]*morse.CritEdge, len(d.Saddles)),
		Faces:            make(map[uint32]*morse.CritFace, len(d.Maxima)),
		Persistence:      d.Persistence,
		MaximallyReduced: d.MaximallyReduced,
	}

	// 1) Cells.
	for _, vi := range d.Minima {
		if err := inRange(mesh.VertexID(vi)); err != nil {
			return nil, err
		}
		c.Vertices[vi] = &morse.CritVertex{Index: vi, Value: m.Vertices[vi].Value, Saddles: map[uint32]int{}}
	}
	for _, s := range d.Saddles {
		if err := inRange(mesh.EdgeID(s.Index)); err != nil {
			return nil, err
		}
		c.Edges[s.Index] = &morse.CritEdge{
			Index: s.Index, Key: m.Edges[s.Index].Key,
			Minima: map[uint32][]morse.Path{}, Maxima: map[uint32]int{},
		}
	}
	for _, f := range d.Maxima {
		if err := inRange(mesh.FaceID(f.Index)); err != nil {
			return nil, err
		}
		c.Faces[f.Index] = &morse.CritFace{Index: f.Index, Key: m.Faces[f.Index].Key, Saddles: map[uint32][]morse.Path{}}
	}

	// 2) Links and back references.
	for _, s := range d.Saddles {
		e := c.Edges[s.Index]
		for _, l := range s.Links {
			v, ok := c.Vertices[l.Target]
			if !ok {
				return nil, fmt.Errorf("%w: e%d links to non-critical v%d", ErrCorrupt, s.Index, l.Target)
			}
			e.Minima[l.Target] = toPaths(l.Paths)
			v.Saddles[s.Index] = len(l.Paths)
		}
	}
	for _, f := range d.Maxima {
		fc := c.Faces[f.Index]
		for _, l := range f.Links {
			e, ok := c.Edges[l.Target]
			if !ok {
				return nil, fmt.Errorf("%w: f%d links to non-critical e%d", ErrCorrupt, f.Index, l.Target)
			}
			fc.Saddles[l.Target] = toPaths(l.Paths)
			e.Maxima[f.Index] = len(l.Paths)
		}
	}

	// 3) Separatrices.
	for _, s := range d.Separatrices {
		o := mesh.CellID{Dim: mesh.Dim(s.Origin.Dim), Index: s.Origin.Index}
		t := mesh.CellID{Dim: mesh.Dim(s.Destination.Dim), Index: s.Destination.Index}
		if err := inRange(o); err != nil {
			return nil, err
		}
		if err := inRange(t); err != nil {
			return nil, err
		}
		c.Separatrices = append(c.Separatrices, morse.Separatrix{
			Origin: o, Destination: t, Dimension: s.Dimension,
			Path: s.Path, Persistence: s.Persistence,
		})
	}
	return c, nil
}

func toPaths(ps [][]uint32) []morse.Path {
	out := make([]morse.Path, len(ps))
	for i, p := range ps {
		out[i] = p
	}
	return out
}
