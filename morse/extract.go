// SPDX-License-Identifier: MIT
// Package: lvmorse/morse
//
// extract.go — Extract: trace V-paths from every critical edge and face.
//
// Contract:
//   • For a critical edge the search starts at its two vertices, for a
//     critical face at its three edges (in mesh order).
//   • A frontier cell that is critical ends a path; a matched cell is
//     followed to its partner, whose facets (minus the cell just left)
//     become the next frontier. Unmatched, non-critical frontier cells
//     (an edge paired downwards, met from a face) end the branch silently.
//   • Searches are independent and run concurrently; results are merged in
//     ascending cell order, so paths and back references are deterministic.
//
// Complexity:
//   • Saddle searches are linear in path length (no branching).
//   • Maximum searches branch at most twice per face, bounded by the number
//     of distinct V-paths.

package morse

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvmorse/gradient"
	"github.com/katalvlaran/lvmorse/mesh"
)

// searchNode is one visited cell of a search tree.
type searchNode struct {
	cell   uint32
	parent int32 // -1 for children of the root
	depth  int
}

// searchResult collects the terminated paths of one critical cell, in
// discovery order.
type searchResult struct {
	root  uint32
	paths []Path
}

// Extract builds the Morse complex of m under the gradient field f.
//
// Steps:
//  1. Record every critical vertex, edge and face.
//  2. Trace saddle→minimum paths from each critical edge (concurrently).
//  3. Trace maximum→saddle paths from each critical face (concurrently).
//  4. Merge in ascending order, filling multiplicities on both sides.
//  5. Validate the result.
func Extract(ctx context.Context, m *mesh.Mesh, f *gradient.Field, opts ...Option) (*Complex, error) {
	if m == nil || f == nil {
		return nil, ErrNilInput
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	start := time.Now()

	// 1) Critical cells.
	c := newComplex(m)
	for it := f.C0.Iterator(); it.HasNext(); {
		v := it.Next()
		c.Vertices[v] = &CritVertex{Index: v, Value: m.Vertices[v].Value, Saddles: map[uint32]int{}}
	}
	for it := f.C1.Iterator(); it.HasNext(); {
		e := it.Next()
		c.Edges[e] = &CritEdge{Index: e, Key: m.Edges[e].Key, Minima: map[uint32][]Path{}, Maxima: map[uint32]int{}}
	}
	for it := f.C2.Iterator(); it.HasNext(); {
		fc := it.Next()
		c.Faces[fc] = &CritFace{Index: fc, Key: m.Faces[fc].Key, Saddles: map[uint32][]Path{}}
	}

	// 2-3) Searches.
	limit := m.NumCells()
	edges, err := searchAll(ctx, cfg.Workers, f.C1.ToArray(), func(e uint32) (searchResult, error) {
		return searchSaddle(m, f, e, limit)
	})
	if err != nil {
		cfg.Logger.LogStage(ctx, "extract", start, err)
		return nil, err
	}
	faces, err := searchAll(ctx, cfg.Workers, f.C2.ToArray(), func(fc uint32) (searchResult, error) {
		return searchMaximum(m, f, fc, limit)
	})
	if err != nil {
		cfg.Logger.LogStage(ctx, "extract", start, err)
		return nil, err
	}

	// 4) Merge; ToArray is ascending.
	for _, r := range edges {
		e := c.Edges[r.root]
		for _, p := range r.paths {
			v := p.Last()
			e.Minima[v] = append(e.Minima[v], p)
			c.Vertices[v].Saddles[r.root]++
		}
	}
	for _, r := range faces {
		fc := c.Faces[r.root]
		for _, p := range r.paths {
			e := p.Last()
			fc.Saddles[e] = append(fc.Saddles[e], p)
			c.Edges[e].Maxima[r.root]++
		}
	}

	// 5) Boundary check.
	if err := c.Validate(); err != nil {
		cfg.Logger.LogStage(ctx, "extract", start, err)
		return nil, err
	}
	c0, c1, c2 := c.Counts()
	cfg.Logger.LogStage(ctx, "extract", start, nil, "minima", c0, "saddles", c1, "maxima", c2)

	return c, nil
}

// searchAll runs fn for every root, bounded by workers, and returns results
// in the order of roots.
func searchAll(ctx context.Context, workers int, roots []uint32, fn func(uint32) (searchResult, error)) ([]searchResult, error) {
	out := make([]searchResult, len(roots))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, r := range roots {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := fn(r)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("morse: Extract: %w", err)
	}
	return out, nil
}

// searchSaddle traces paths from critical edge e down to minima.
func searchSaddle(m *mesh.Mesh, f *gradient.Field, e uint32, limit int) (searchResult, error) {
	s := &search{root: mesh.EdgeID(e), limit: limit}
	for _, v := range m.Edges[e].Vertices {
		s.visit(v, -1, 1, f.C0.Contains(v), f.VertexEdge[v] != gradient.Unpaired)
	}
	for len(s.stack) > 0 {
		n := s.pop()
		alpha := s.nodes[n].cell
		beta := f.VertexEdge[alpha]
		bn, err := s.child(beta, n)
		if err != nil {
			return searchResult{}, err
		}
		for _, delta := range m.Edges[beta].Vertices {
			if delta == alpha {
				continue
			}
			s.visit(delta, bn, s.nodes[bn].depth+1, f.C0.Contains(delta), f.VertexEdge[delta] != gradient.Unpaired)
		}
	}
	return searchResult{root: e, paths: s.paths}, nil
}

// searchMaximum traces paths from critical face fc down to saddles.
func searchMaximum(m *mesh.Mesh, f *gradient.Field, fc uint32, limit int) (searchResult, error) {
	s := &search{root: mesh.FaceID(fc), limit: limit}
	for _, e := range m.Faces[fc].Edges {
		s.visit(e, -1, 1, f.C1.Contains(e), f.EdgeFace[e] != gradient.Unpaired)
	}
	for len(s.stack) > 0 {
		n := s.pop()
		alpha := s.nodes[n].cell
		beta := f.EdgeFace[alpha]
		bn, err := s.child(beta, n)
		if err != nil {
			return searchResult{}, err
		}
		for _, delta := range m.Faces[beta].Edges {
			if delta == alpha {
				continue
			}
			s.visit(delta, bn, s.nodes[bn].depth+1, f.C1.Contains(delta), f.EdgeFace[delta] != gradient.Unpaired)
		}
	}
	return searchResult{root: fc, paths: s.paths}, nil
}

// search is the explicit-stack depth-first search state of one root.
type search struct {
	root  mesh.CellID
	limit int
	nodes []searchNode
	stack []int32
	paths []Path
}

func (s *search) pop() int32 {
	n := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return n
}

// visit handles one frontier cell: a critical cell closes a path, a matched
// cell is pushed for expansion, anything else is dropped.
func (s *search) visit(cell uint32, parent int32, depth int, critical, matched bool) {
	switch {
	case critical:
		s.nodes = append(s.nodes, searchNode{cell: cell, parent: parent, depth: depth})
		s.paths = append(s.paths, s.trace(int32(len(s.nodes)-1)))
	case matched:
		s.nodes = append(s.nodes, searchNode{cell: cell, parent: parent, depth: depth})
		s.stack = append(s.stack, int32(len(s.nodes)-1))
	}
}

// child records the partner of node n and enforces the path length limit.
func (s *search) child(cell uint32, n int32) (int32, error) {
	d := s.nodes[n].depth + 1
	if d > s.limit {
		return 0, invariantf(s.root, ErrPathNotTerminating, "path exceeds %d cells", s.limit)
	}
	s.nodes = append(s.nodes, searchNode{cell: cell, parent: n, depth: d})
	return int32(len(s.nodes) - 1), nil
}

// trace rebuilds [root, ..., cell(n)].
func (s *search) trace(n int32) Path {
	p := make(Path, s.nodes[n].depth+1)
	for i := n; i >= 0; i = s.nodes[i].parent {
		p[s.nodes[i].depth] = s.nodes[i].cell
	}
	p[0] = s.root.Index
	return p
}
