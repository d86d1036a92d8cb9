// SPDX-License-Identifier: MIT
// Package: lvmorse/reduce
//
// queue.go — the cancellation queue.
//
// Contract:
//   • Pop returns the smallest distance first; equal distances pop the
//     lower saddle index first, so runs are reproducible.
//   • The queue owns plain (distance, saddle) values; callers refresh the
//     distance against the current complex after popping.

package reduce

import (
	"container/heap"
	"math"
)

// Item is one queued saddle.
type Item struct {
	Dist   float64
	Saddle uint32
}

// itemPQ is a min-heap of Item ordered by Dist, then Saddle.
type itemPQ []Item

// Len returns the number of items in the heap.
func (pq itemPQ) Len() int { return len(pq) }

// Less orders by distance, breaking ties by saddle index.
func (pq itemPQ) Less(i, j int) bool {
	if pq[i].Dist != pq[j].Dist {
		return pq[i].Dist < pq[j].Dist
	}
	return pq[i].Saddle < pq[j].Saddle
}

// Swap swaps two elements in the heap.
func (pq itemPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(Item)) }

// Pop removes and returns the last element (heap.Pop moves the min there).
func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// Queue is a min-priority queue of saddles keyed by cancellation distance.
type Queue struct {
	pq itemPQ
}

// NewQueue returns an empty queue with room for n items.
func NewQueue(n int) *Queue {
	return &Queue{pq: make(itemPQ, 0, n)}
}

// Insert queues saddle at distance dist.
func (q *Queue) Insert(dist float64, saddle uint32) {
	heap.Push(&q.pq, Item{Dist: dist, Saddle: saddle})
}

// Pop removes and returns the closest item. ok is false on an empty queue.
func (q *Queue) Pop() (it Item, ok bool) {
	if len(q.pq) == 0 {
		return Item{}, false
	}
	return heap.Pop(&q.pq).(Item), true
}

// PeekDist returns the smallest queued distance, or +Inf when empty.
func (q *Queue) PeekDist() float64 {
	if len(q.pq) == 0 {
		return math.Inf(1)
	}
	return q.pq[0].Dist
}

// Len returns the number of queued items.
func (q *Queue) Len() int { return len(q.pq) }
