package homology_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmorse/builder"
	"github.com/katalvlaran/lvmorse/gradient"
	"github.com/katalvlaran/lvmorse/homology"
	"github.com/katalvlaran/lvmorse/morse"
	"github.com/katalvlaran/lvmorse/reduce"
)

func complexOf(t *testing.T, con builder.Constructor, opts ...builder.BuilderOption) *morse.Complex {
	t.Helper()
	m, err := builder.BuildMesh(con, opts...)
	require.NoError(t, err)
	f, err := gradient.Build(context.Background(), m)
	require.NoError(t, err)
	c, err := morse.Extract(context.Background(), m, f)
	require.NoError(t, err)
	return c
}

// TestCompute_Betti checks the Betti vector before and after reduction on
// the three reference topologies.
func TestCompute_Betti(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		con  builder.Constructor
		opts []builder.BuilderOption
		want [3]int
	}{
		{"grid_flat", builder.Grid(5, 5), nil, [3]int{1, 0, 0}},
		{"grid_random", builder.Grid(12, 12), []builder.BuilderOption{builder.WithField(builder.RandomFn()), builder.WithSeed(3)}, [3]int{1, 0, 0}},
		{"sphere_wave", builder.Geodesic(2), []builder.BuilderOption{builder.WithField(builder.WaveFn(5))}, [3]int{1, 0, 1}},
		{"sphere_random", builder.Geodesic(2), []builder.BuilderOption{builder.WithField(builder.RandomFn()), builder.WithSeed(12)}, [3]int{1, 0, 1}},
		{"torus_distance", builder.Torus(8, 12), nil, [3]int{1, 2, 1}},
		{"torus_random", builder.Torus(12, 16), []builder.BuilderOption{builder.WithField(builder.RandomFn()), builder.WithSeed(5)}, [3]int{1, 2, 1}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := complexOf(t, tc.con, tc.opts...)

			res, err := homology.Compute(c)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Betti)
			assert.Equal(t, c.NumCritical(), 2*len(res.Pairs)+len(res.Generators))

			for _, tau := range []float64{c.Mesh.Range() / 4, c.Mesh.Range()} {
				out, err := reduce.Reduce(context.Background(), c, tau)
				require.NoError(t, err)
				res, err := homology.Compute(out)
				require.NoError(t, err)
				assert.Equal(t, tc.want, res.Betti, "τ=%v", tau)
			}
		})
	}
}

func TestCompute_MinimalSphere(t *testing.T) {
	t.Parallel()

	c := complexOf(t, builder.PlatonicSolid(builder.Tetrahedron), builder.WithField(builder.HeightFn(2)))
	res, err := homology.Compute(c)
	require.NoError(t, err)
	assert.Equal(t, [3]int{1, 0, 1}, res.Betti)
	assert.Empty(t, res.Pairs)
	assert.Len(t, res.Generators, 2)

	d := res.Diagram()
	require.Len(t, d, 2)
	for _, p := range d {
		assert.True(t, math.IsInf(p.Death, 1))
		assert.True(t, math.IsInf(p.Persistence(), 1))
	}
	assert.Equal(t, 0, d[0].Dim)
	assert.Equal(t, 2, d[1].Dim)
	assert.Equal(t, c.Mesh.Min(), d[0].Birth)
	assert.Equal(t, c.Mesh.Max(), d[1].Birth)
}

func TestDiagram_PairsAreOrdered(t *testing.T) {
	t.Parallel()

	c := complexOf(t, builder.Geodesic(2), builder.WithField(builder.WaveFn(7)))
	res, err := homology.Compute(c)
	require.NoError(t, err)
	require.NotEmpty(t, res.Pairs)
	for _, p := range res.Diagram() {
		assert.LessOrEqual(t, p.Birth, p.Death)
		assert.GreaterOrEqual(t, p.Persistence(), 0.0)
	}
}

func TestCompute_Nil(t *testing.T) {
	t.Parallel()

	_, err := homology.Compute(nil)
	require.ErrorIs(t, err, homology.ErrNilComplex)
	_, err = homology.Compute(&morse.Complex{})
	require.ErrorIs(t, err, homology.ErrNilComplex)
}
