// SPDX-License-Identifier: MIT
// Package: lvmorse/gradient
//
// lowerstar.go — the per-vertex lower-star pairing.
//
// Contract:
//   • process(v) touches only cells whose highest vertex is v, so concurrent
//     calls on different vertices write disjoint Field entries.
//   • Both queues pop the smallest key first (mesh.Compare, then CellID).
//   • Stale zero-queue entries (edges paired after being queued) are skipped
//     on pop instead of being removed eagerly.

package gradient

import (
	"container/heap"

	"github.com/katalvlaran/lvmorse/mesh"
)

// faceState tracks a lower-star face through the two queues.
type faceState uint8

const (
	facePending  faceState = iota // two unclassified edges, in no queue
	faceInOne                     // queued in the one-queue
	faceInZero                    // queued in the zero-queue
	facePaired                    // matched with an edge
	faceCritical                  // emitted as a critical face
)

// cellItem is a queue entry.
type cellItem struct {
	id  mesh.CellID
	key mesh.Key
}

// cellPQ is a min-heap of cellItem ordered by key, then by CellID.
type cellPQ []cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less orders by key; ties (impossible on valid meshes) fall back to the id.
func (pq cellPQ) Less(i, j int) bool {
	if c := mesh.Compare(pq[i].key, pq[j].key); c != 0 {
		return c < 0
	}
	if pq[i].id.Dim != pq[j].id.Dim {
		return pq[i].id.Dim < pq[j].id.Dim
	}
	return pq[i].id.Index < pq[j].id.Index
}

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(cellItem)) }

// Pop removes and returns the last element (heap.Pop moves the min there).
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// lowerStar is per-goroutine scratch state reused across vertices.
type lowerStar struct {
	m *mesh.Mesh
	f *Field

	open      map[uint32]bool      // lower-star edge → still unclassified
	faceState map[uint32]faceState // lower-star face → state
	one, zero cellPQ

	crit []mesh.CellID // critical cells found by this worker, in discovery order
}

func newLowerStar(m *mesh.Mesh, f *Field) *lowerStar {
	return &lowerStar{
		m:         m,
		f:         f,
		open:      make(map[uint32]bool, 8),
		faceState: make(map[uint32]faceState, 8),
	}
}

// process classifies every cell of the lower star of v.
func (ls *lowerStar) process(v uint32) {
	m := ls.m
	vx := &m.Vertices[v]
	clear(ls.open)
	clear(ls.faceState)
	ls.one, ls.zero = ls.one[:0], ls.zero[:0]

	// 1) Collect the lower star.
	var delta uint32 = Unpaired
	for _, e := range vx.Star.Edges {
		if m.Edges[e].Key[0] != vx.Value {
			continue
		}
		ls.open[e] = true
		if delta == Unpaired || mesh.Compare(m.Edges[e].Key, m.Edges[delta].Key) < 0 {
			delta = e
		}
	}
	if delta == Unpaired {
		ls.crit = append(ls.crit, mesh.VertexID(v))
		return
	}
	for _, fc := range vx.Star.Faces {
		if m.Faces[fc].Key[0] == vx.Value {
			ls.faceState[fc] = facePending
		}
	}

	// 2) Pair v with the smallest edge; the rest wait in the zero-queue.
	ls.f.VertexEdge[v] = delta
	ls.f.EdgeVertex[delta] = v
	ls.open[delta] = false
	for _, e := range vx.Star.Edges {
		if ls.open[e] {
			heap.Push(&ls.zero, cellItem{id: mesh.EdgeID(e), key: m.Edges[e].Key})
		}
	}
	ls.enqueueCofaces(delta)

	// 3) Drain.
	for ls.one.Len() > 0 || ls.zero.Len() > 0 {
		for ls.one.Len() > 0 {
			it := heap.Pop(&ls.one).(cellItem)
			fc := it.id.Index
			e, n := ls.openEdge(fc)
			if n == 0 {
				ls.faceState[fc] = faceInZero
				heap.Push(&ls.zero, it)
				continue
			}
			ls.f.EdgeFace[e] = fc
			ls.f.FaceEdge[fc] = e
			ls.open[e] = false
			ls.faceState[fc] = facePaired
			ls.enqueueCofaces(e)
		}

		if ls.zero.Len() == 0 {
			break
		}
		it := heap.Pop(&ls.zero).(cellItem)
		switch it.id.Dim {
		case mesh.DimEdge:
			if !ls.open[it.id.Index] {
				continue
			}
			ls.open[it.id.Index] = false
			ls.crit = append(ls.crit, it.id)
			ls.enqueueCofaces(it.id.Index)
		case mesh.DimFace:
			if ls.faceState[it.id.Index] != faceInZero {
				continue
			}
			ls.faceState[it.id.Index] = faceCritical
			ls.crit = append(ls.crit, it.id)
		}
	}
}

// enqueueCofaces pushes pending lower-star faces of e that now have exactly
// one unclassified edge.
func (ls *lowerStar) enqueueCofaces(e uint32) {
	for _, fc := range ls.m.Edges[e].Cofaces {
		st, ok := ls.faceState[fc]
		if !ok || st != facePending {
			continue
		}
		if _, n := ls.openEdge(fc); n == 1 {
			ls.faceState[fc] = faceInOne
			heap.Push(&ls.one, cellItem{id: mesh.FaceID(fc), key: ls.m.Faces[fc].Key})
		}
	}
}

// openEdge returns the number of unclassified lower-star edges of face fc
// and the last one seen.
func (ls *lowerStar) openEdge(fc uint32) (uint32, int) {
	var (
		last uint32 = Unpaired
		n    int
	)
	for _, e := range ls.m.Faces[fc].Edges {
		if ls.open[e] {
			last = e
			n++
		}
	}
	return last, n
}
