// SPDX-License-Identifier: MIT
// Package: lvmorse/gradient
//
// build.go — Build: parallel driver over lower stars.

package gradient

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvmorse/mesh"
)

// Build computes the lower-star gradient field of m.
//
// Steps:
//  1. Allocate a Field with every cell unpaired.
//  2. Split vertices into chunks of Options.ChunkSize; process each chunk in
//     an errgroup bounded by Options.Workers.
//  3. Merge per-chunk critical cells into C0, C1, C2.
//
// The result is identical for every worker count and chunk size.
// Build returns ctx.Err() (wrapped) if ctx is cancelled mid-way.
func Build(ctx context.Context, m *mesh.Mesh, opts ...Option) (*Field, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	start := time.Now()

	// 1) Allocation.
	f := newField(m)
	n := len(m.Vertices)
	chunks := (n + cfg.ChunkSize - 1) / cfg.ChunkSize
	crit := make([][]mesh.CellID, chunks)

	// 2) Lower stars.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for c := 0; c < chunks; c++ {
		g.Go(func() error {
			lo := c * cfg.ChunkSize
			hi := min(lo+cfg.ChunkSize, n)
			ls := newLowerStar(m, f)
			for v := lo; v < hi; v++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				ls.process(uint32(v))
			}
			crit[c] = ls.crit
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		err = fmt.Errorf("gradient: Build: %w", err)
		cfg.Logger.LogStage(ctx, "gradient", start, err)
		return nil, err
	}

	// 3) Merge.
	for _, cs := range crit {
		for _, id := range cs {
			switch id.Dim {
			case mesh.DimVertex:
				f.C0.Add(id.Index)
			case mesh.DimEdge:
				f.C1.Add(id.Index)
			case mesh.DimFace:
				f.C2.Add(id.Index)
			}
		}
	}

	c0, c1, c2 := f.Counts()
	cfg.Logger.LogStage(ctx, "gradient", start, nil,
		"workers", cfg.Workers, "minima", c0, "saddles", c1, "maxima", c2)

	return f, nil
}
