// SPDX-License-Identifier: MIT
// Package: lvmorse/salient
//
// points.go — double-threshold salient point extraction.

package salient

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvmorse/mesh"
	"github.com/katalvlaran/lvmorse/morse"
)

// Points returns the salient vertices of c's separatrices.
//
// Steps:
//  1. Split separatrix vertices into strong (> high) and weak (low, high].
//  2. Seed a queue with weak neighbours of strong vertices.
//  3. Promote transitively (BFS over mesh neighbours).
//
// Complexity: O(Σ path lengths + V + E).
func Points(c *morse.Complex, high, low float64, opts ...Option) (*roaring.Bitmap, error) {
	if c == nil || c.Mesh == nil {
		return nil, ErrNilComplex
	}
	if math.IsNaN(high) || math.IsNaN(low) || low > high {
		return nil, fmt.Errorf("%w: low=%v high=%v", ErrBadThresholds, low, high)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	m := c.Mesh

	// 1) Strong and weak sets.
	strong, weak := roaring.New(), roaring.New()
	var buf []uint32
	for i := range c.Separatrices {
		s := &c.Separatrices[i]
		if !cfg.Kind.Matches(s) {
			continue
		}
		var dst *roaring.Bitmap
		switch {
		case s.Persistence > high:
			dst = strong
		case s.Persistence > low:
			dst = weak
		default:
			continue
		}
		for _, id := range morse.PathCells(s.Dimension, s.Path) {
			buf = m.CellVertices(buf[:0], id)
			dst.AddMany(buf)
		}
	}
	weak.AndNot(strong)
	if weak.IsEmpty() {
		return strong, nil
	}

	// 2) Seed.
	var queue []uint32
	// promote mutates strong, so walk a snapshot of it.
	for _, v := range strong.ToArray() {
		queue = promote(m, v, weak, strong, queue)
	}

	// 3) Promote.
	for qi := 0; qi < len(queue); qi++ {
		queue = promote(m, queue[qi], weak, strong, queue)
	}
	return strong, nil
}

// promote moves the weak neighbours of v into strong and queues them.
func promote(m *mesh.Mesh, v uint32, weak, strong *roaring.Bitmap, queue []uint32) []uint32 {
	for _, n := range m.Vertices[v].Neighbors {
		if weak.Contains(n) {
			weak.Remove(n)
			strong.Add(n)
			queue = append(queue, n)
		}
	}
	return queue
}
