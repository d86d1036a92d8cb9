// SPDX-License-Identifier: MIT
// Package: lvmorse/reduce
//
// reduce.go — Reduce and ReduceAll.

package reduce

import (
	"context"
	"fmt"
	"maps"
	"math"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvmorse/mesh"
	"github.com/katalvlaran/lvmorse/morse"
)

// Reduce returns a copy of c in which every eligible saddle/extremum pair
// within distance tau has been cancelled. The copy records tau as its Persistence and is marked
// MaximallyReduced when tau covers the whole scalar range of the mesh.
//
// Steps:
//  1. Validate input and clone.
//  2. Seed the queue.
//  3. Pop, refresh, cancel or re-insert until the queue drains.
//  4. Validate the result.
//
// Complexity: O(S log S + Σ spliced path lengths) for S saddles.
func Reduce(ctx context.Context, c *morse.Complex, tau float64, opts ...Option) (*morse.Complex, error) {
	// 1) Validate input.
	if c == nil || c.Mesh == nil {
		return nil, ErrNilComplex
	}
	if tau < 0 || math.IsNaN(tau) {
		return nil, fmt.Errorf("%w: %v", ErrBadThreshold, tau)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger.WithComponent("reduce").WithPersistence(tau)
	start := time.Now()

	out := c.Clone()
	out.Persistence = tau
	out.MaximallyReduced = tau >= c.Mesh.Range()

	// 2) Seed.
	q := NewQueue(len(out.Edges))
	for _, s := range sortedKeys(out.Edges) {
		if cand, ok := ClosestExtremum(out, s, cfg.Salient); ok && cand.Dist <= tau {
			q.Insert(cand.Dist, s)
		}
	}

	// 3) Work the queue down.
	var cancelled int
	for q.Len() > 0 {
		if err := ctx.Err(); err != nil {
			log.LogStage(ctx, "reduce", start, err)
			return nil, err
		}
		it, _ := q.Pop()
		cand, ok := ClosestExtremum(out, it.Saddle, cfg.Salient)
		// A saddle that drifted beyond tau is dropped, not re-inserted:
		// re-inserting it would let the drained queue cancel pairs above tau.
		if !ok || cand.Dist > tau {
			continue
		}
		if cand.Dist > q.PeekDist() {
			q.Insert(cand.Dist, it.Saddle)
			continue
		}
		if err := cancel(out, cand); err != nil {
			log.LogStage(ctx, "reduce", start, err)
			return nil, err
		}
		cancelled++
		log.LogCancellation(ctx, cand.Kind(), cand.Saddle, cand.Extremum, cand.Dist)
	}

	// 4) Check.
	err := out.Validate()
	minima, saddles, maxima := out.Counts()
	log.LogStage(ctx, "reduce", start, err,
		"cancelled", cancelled, "minima", minima, "saddles", saddles, "maxima", maxima)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// cancel dispatches a candidate to the matching splice.
func cancel(c *morse.Complex, cand Candidate) error {
	if cand.Dim == mesh.DimFace {
		return c.CancelMaximum(cand.Saddle, cand.Extremum)
	}
	return c.CancelMinimum(cand.Saddle, cand.Extremum)
}

// ReduceAll reduces c once per threshold, concurrently. Each reduction works
// on its own copy; results are returned in the order of taus. The first
// failure cancels the remaining reductions.
func ReduceAll(ctx context.Context, c *morse.Complex, taus []float64, opts ...Option) ([]*morse.Complex, error) {
	if c == nil || c.Mesh == nil {
		return nil, ErrNilComplex
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make([]*morse.Complex, len(taus))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, tau := range taus {
		g.Go(func() error {
			r, err := Reduce(gctx, c, tau, opts...)
			if err != nil {
				return fmt.Errorf("reduce: τ=%v: %w", tau, err)
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func sortedKeys[V any](m map[uint32]V) []uint32 {
	return slices.Sorted(maps.Keys(m))
}
