package reduce_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmorse/builder"
	"github.com/katalvlaran/lvmorse/gradient"
	"github.com/katalvlaran/lvmorse/morse"
	"github.com/katalvlaran/lvmorse/reduce"
)

// complexOf runs mesh → field → complex.
func complexOf(t testing.TB, con builder.Constructor, opts ...builder.BuilderOption) *morse.Complex {
	t.Helper()
	m, err := builder.BuildMesh(con, opts...)
	require.NoError(t, err)
	f, err := gradient.Build(context.Background(), m)
	require.NoError(t, err)
	c, err := morse.Extract(context.Background(), m, f)
	require.NoError(t, err)
	return c
}

// TestReduce_SphereToMinimal reduces spheres down to one minimum and one
// maximum.
func TestReduce_SphereToMinimal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		con  builder.Constructor
		opts []builder.BuilderOption
	}{
		{"geodesic_wave", builder.Geodesic(2), []builder.BuilderOption{builder.WithField(builder.WaveFn(5))}},
		{"geodesic_random", builder.Geodesic(2), []builder.BuilderOption{builder.WithField(builder.RandomFn()), builder.WithSeed(11)}},
		{"icosahedron_random", builder.PlatonicSolid(builder.Icosahedron), []builder.BuilderOption{builder.WithField(builder.RandomFn()), builder.WithSeed(2)}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := complexOf(t, tc.con, tc.opts...)
			before := c.Clone()

			out, err := reduce.Reduce(context.Background(), c, c.Mesh.Range())
			require.NoError(t, err)
			c0, c1, c2 := out.Counts()
			assert.Equal(t, []int{1, 0, 1}, []int{c0, c1, c2})
			assert.True(t, out.MaximallyReduced)
			assert.Equal(t, c.Mesh.Range(), out.Persistence)
			assert.Equal(t, c.NumCritical()-out.NumCritical(), 2*countPrimary(out))

			// Input untouched.
			assert.Equal(t, before, c)
		})
	}
}

// countPrimary counts cancellations. Every separatrix names the saddle it
// was cut from, and a saddle is cancelled at most once.
func countPrimary(c *morse.Complex) int {
	saddles := map[uint32]bool{}
	for _, s := range c.Separatrices {
		if s.Dimension == 1 {
			saddles[s.Origin.Index] = true
		} else {
			saddles[s.Destination.Index] = true
		}
	}
	return len(saddles)
}

// TestReduce_TorusLoopsSurvive checks that a full reduction on a torus
// stops at saddles whose every connection is double.
func TestReduce_TorusLoopsSurvive(t *testing.T) {
	t.Parallel()

	for _, seed := range []int64{1, 7, 23} {
		c := complexOf(t, builder.Torus(12, 16), builder.WithField(builder.RandomFn()), builder.WithSeed(seed))
		out, err := reduce.Reduce(context.Background(), c, c.Mesh.Range())
		require.NoError(t, err)

		assert.Equal(t, 0, out.EulerCharacteristic())
		assert.GreaterOrEqual(t, len(out.Edges), 2, "seed %d", seed)
		for _, ei := range out.SortedEdges() {
			_, ok := reduce.ClosestExtremum(out, ei, nil)
			assert.False(t, ok, "seed %d: saddle e%d still cancellable", seed, ei)
			for vi, ps := range out.Edges[ei].Minima {
				assert.Len(t, ps, 2, "seed %d: e%d → v%d", seed, ei, vi)
			}
			for fi, n := range out.Edges[ei].Maxima {
				assert.Equal(t, 2, n, "seed %d: e%d → f%d", seed, ei, fi)
			}
		}
	}
}

// TestReduce_Chain checks that reducing further never adds cells and keeps
// the Euler characteristic.
func TestReduce_Chain(t *testing.T) {
	t.Parallel()

	c := complexOf(t, builder.Grid(14, 14), builder.WithField(builder.RandomFn()), builder.WithSeed(4))
	want := c.EulerCharacteristic()
	prev := c
	for _, tau := range []float64{0.01, 0.05, 0.2, 0.5, 1} {
		out, err := reduce.Reduce(context.Background(), prev, tau)
		require.NoError(t, err)
		assert.LessOrEqual(t, out.NumCritical(), prev.NumCritical(), "τ=%v", tau)
		assert.Equal(t, want, out.EulerCharacteristic(), "τ=%v", tau)
		assert.GreaterOrEqual(t, len(out.Separatrices), len(prev.Separatrices))
		prev = out
	}
	c0, _, _ := prev.Counts()
	assert.GreaterOrEqual(t, c0, 1)
}

func TestReduce_SeparatrixPersistenceInRange(t *testing.T) {
	t.Parallel()

	c := complexOf(t, builder.Geodesic(1), builder.WithField(builder.WaveFn(4)))
	out, err := reduce.Reduce(context.Background(), c, c.Mesh.Range()/2)
	require.NoError(t, err)
	assert.False(t, out.MaximallyReduced)
	require.NotEmpty(t, out.Separatrices)
	for _, s := range out.Separatrices {
		assert.GreaterOrEqual(t, s.Persistence, out.Mesh.Min())
		assert.LessOrEqual(t, s.Persistence, out.Mesh.Max())
		assert.Equal(t, morse.PathPersistence(out.Mesh, s.Dimension, s.Path), s.Persistence)
	}
}

func TestReduce_Errors(t *testing.T) {
	t.Parallel()

	_, err := reduce.Reduce(context.Background(), nil, 1)
	require.ErrorIs(t, err, reduce.ErrNilComplex)
	_, err = reduce.Reduce(context.Background(), &morse.Complex{}, 1)
	require.ErrorIs(t, err, reduce.ErrNilComplex)

	c := complexOf(t, builder.Grid(3, 3))
	_, err = reduce.Reduce(context.Background(), c, -1)
	require.ErrorIs(t, err, reduce.ErrBadThreshold)
	_, err = reduce.Reduce(context.Background(), c, math.NaN())
	require.ErrorIs(t, err, reduce.ErrBadThreshold)

	_, err = reduce.ReduceAll(context.Background(), nil, []float64{1})
	require.ErrorIs(t, err, reduce.ErrNilComplex)
	_, err = reduce.ReduceAll(context.Background(), c, []float64{1, -2})
	require.ErrorIs(t, err, reduce.ErrBadThreshold)

	assert.Panics(t, func() { reduce.WithWorkers(0) })
}

func TestReduce_ContextCancelled(t *testing.T) {
	t.Parallel()

	c := complexOf(t, builder.Torus(10, 10), builder.WithField(builder.RandomFn()), builder.WithSeed(8))
	require.NotEmpty(t, c.Edges)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := reduce.Reduce(ctx, c, c.Mesh.Range())
	require.ErrorIs(t, err, context.Canceled)
}

// TestReduceAll_MatchesSequential checks that concurrent reductions equal
// their sequential counterparts.
func TestReduceAll_MatchesSequential(t *testing.T) {
	t.Parallel()

	c := complexOf(t, builder.Torus(10, 14), builder.WithField(builder.RandomFn()), builder.WithSeed(6))
	taus := []float64{0.02, 0.1, 0.3, 1}
	all, err := reduce.ReduceAll(context.Background(), c, taus, reduce.WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, all, len(taus))
	for i, tau := range taus {
		one, err := reduce.Reduce(context.Background(), c, tau)
		require.NoError(t, err)
		assert.Equal(t, one, all[i], "τ=%v", tau)
	}
}
