// SPDX-License-Identifier: MIT
// Package: lvmorse
//
// morse.go — Morse: the cached pipeline over one mesh.
//
// Contract:
//   • Each stage runs at most once per Morse value; later calls return the
//     cached result. Returned fields and complexes are shared and must not
//     be modified.
//   • Methods are safe for concurrent use. Stages are serialised by one
//     mutex; ReduceBatch fans out internally.

package lvmorse

import (
	"context"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvmorse/gradient"
	"github.com/katalvlaran/lvmorse/homology"
	"github.com/katalvlaran/lvmorse/logging"
	"github.com/katalvlaran/lvmorse/mesh"
	"github.com/katalvlaran/lvmorse/morse"
	"github.com/katalvlaran/lvmorse/reduce"
	"github.com/katalvlaran/lvmorse/salient"
)

// Morse runs and caches the pipeline stages for one mesh.
type Morse struct {
	mesh *mesh.Mesh
	cfg  Options
	log  *logging.Logger

	mu      sync.Mutex
	field   *gradient.Field
	base    *morse.Complex
	reduced map[float64]*morse.Complex
}

// New returns a pipeline over m. No work is done until a stage is requested.
func New(m *mesh.Mesh, opts ...Option) (*Morse, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Morse{
		mesh:    m,
		cfg:     cfg,
		log:     cfg.Logger.WithComponent("lvmorse"),
		reduced: make(map[float64]*morse.Complex),
	}, nil
}

// Mesh returns the underlying mesh.
func (mc *Morse) Mesh() *mesh.Mesh { return mc.mesh }

// ProcessLowerStars returns the gradient field, computing it on first use.
func (mc *Morse) ProcessLowerStars(ctx context.Context) (*gradient.Field, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.fieldLocked(ctx)
}

func (mc *Morse) fieldLocked(ctx context.Context) (*gradient.Field, error) {
	if mc.field != nil {
		return mc.field, nil
	}
	f, err := gradient.Build(ctx, mc.mesh,
		gradient.WithWorkers(mc.cfg.Workers), gradient.WithLogger(mc.cfg.Logger))
	if err != nil {
		return nil, err
	}
	mc.field = f
	return f, nil
}

// ExtractComplex returns the unreduced Morse complex, computing the field
// and the complex on first use.
func (mc *Morse) ExtractComplex(ctx context.Context) (*morse.Complex, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.baseLocked(ctx)
}

func (mc *Morse) baseLocked(ctx context.Context) (*morse.Complex, error) {
	if mc.base != nil {
		return mc.base, nil
	}
	f, err := mc.fieldLocked(ctx)
	if err != nil {
		return nil, err
	}
	c, err := morse.Extract(ctx, mc.mesh, f,
		morse.WithWorkers(mc.cfg.Workers), morse.WithLogger(mc.cfg.Logger))
	if err != nil {
		return nil, err
	}
	minima, saddles, maxima := c.Counts()
	mc.log.LogCounts(ctx, "complex extracted", minima, saddles, maxima)
	mc.base = c
	return c, nil
}

// Reduce returns the complex reduced at persistence tau, cached per tau.
// A tau at or above the scalar range yields the maximally reduced complex.
func (mc *Morse) Reduce(ctx context.Context, tau float64) (*morse.Complex, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.reduceLocked(ctx, tau)
}

// reduceLocked caches only plain reductions; extra options bypass the cache.
func (mc *Morse) reduceLocked(ctx context.Context, tau float64, extra ...reduce.Option) (*morse.Complex, error) {
	cacheable := len(extra) == 0
	if c, ok := mc.reduced[tau]; ok && cacheable {
		return c, nil
	}
	base, err := mc.baseLocked(ctx)
	if err != nil {
		return nil, err
	}
	opts := append([]reduce.Option{reduce.WithLogger(mc.cfg.Logger)}, extra...)
	c, err := reduce.Reduce(ctx, base, tau, opts...)
	if err != nil {
		return nil, err
	}
	if cacheable {
		mc.reduced[tau] = c
	}
	return c, nil
}

// ReduceMaximally reduces at the full scalar range.
func (mc *Morse) ReduceMaximally(ctx context.Context) (*morse.Complex, error) {
	return mc.Reduce(ctx, mc.mesh.Range())
}

// ReduceBatch reduces at every tau concurrently, reusing cached results.
// Results follow the order of taus.
func (mc *Morse) ReduceBatch(ctx context.Context, taus []float64) ([]*morse.Complex, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	base, err := mc.baseLocked(ctx)
	if err != nil {
		return nil, err
	}
	var missing []float64
	seen := make(map[float64]bool, len(taus))
	for _, tau := range taus {
		if _, ok := mc.reduced[tau]; !ok && !seen[tau] {
			missing = append(missing, tau)
			seen[tau] = true
		}
	}
	if len(missing) > 0 {
		got, err := reduce.ReduceAll(ctx, base, missing,
			reduce.WithWorkers(mc.cfg.Workers), reduce.WithLogger(mc.cfg.Logger))
		if err != nil {
			return nil, err
		}
		for i, tau := range missing {
			mc.reduced[tau] = got[i]
		}
	}

	out := make([]*morse.Complex, len(taus))
	for i, tau := range taus {
		out[i] = mc.reduced[tau]
	}
	return out, nil
}

// Betti returns the Betti numbers of the complex reduced at tau.
func (mc *Morse) Betti(ctx context.Context, tau float64) ([3]int, error) {
	c, err := mc.Reduce(ctx, tau)
	if err != nil {
		return [3]int{}, err
	}
	res, err := homology.Compute(c)
	if err != nil {
		return [3]int{}, err
	}
	return res.Betti, nil
}

// SalientEdges returns the salient vertices of the maximally reduced
// complex under the double threshold (high, low).
func (mc *Morse) SalientEdges(ctx context.Context, high, low float64, opts ...salient.Option) (*roaring.Bitmap, error) {
	c, err := mc.ReduceMaximally(ctx)
	if err != nil {
		return nil, err
	}
	return salient.Points(c, high, low, opts...)
}

// SalientRidges returns the salient vertices of maximum→saddle lines only.
func (mc *Morse) SalientRidges(ctx context.Context, high, low float64) (*roaring.Bitmap, error) {
	return mc.SalientEdges(ctx, high, low, salient.WithKind(morse.KindMaximal))
}

// ReduceSalient reduces at tau while keeping every connection that runs
// along the salient edges (high, low). The result is not cached.
func (mc *Morse) ReduceSalient(ctx context.Context, tau, high, low float64) (*morse.Complex, error) {
	pts, err := mc.SalientEdges(ctx, high, low)
	if err != nil {
		return nil, err
	}
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.reduceLocked(ctx, tau, reduce.WithSalientPoints(pts))
}
