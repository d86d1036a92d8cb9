package morse_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmorse/builder"
	"github.com/katalvlaran/lvmorse/gradient"
	"github.com/katalvlaran/lvmorse/mesh"
	"github.com/katalvlaran/lvmorse/morse"
)

// extract runs the mesh → field → complex pipeline.
func extract(t testing.TB, con builder.Constructor, opts ...builder.BuilderOption) (*mesh.Mesh, *gradient.Field, *morse.Complex) {
	t.Helper()
	m, err := builder.BuildMesh(con, opts...)
	require.NoError(t, err)
	f, err := gradient.Build(context.Background(), m)
	require.NoError(t, err)
	c, err := morse.Extract(context.Background(), m, f)
	require.NoError(t, err)
	return m, f, c
}

// TestExtract_Grid5x5 is the planar fixture: one minimum, nothing else.
func TestExtract_Grid5x5(t *testing.T) {
	t.Parallel()

	_, _, c := extract(t, builder.Grid(5, 5))
	c0, c1, c2 := c.Counts()
	assert.Equal(t, []int{1, 0, 0}, []int{c0, c1, c2})
	assert.Contains(t, c.Vertices, uint32(0))
	assert.Empty(t, c.Separatrices)
}

// TestExtract_MatchesField checks that the complex holds exactly the
// critical cells of the field and satisfies its invariants.
func TestExtract_MatchesField(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		con  builder.Constructor
		opts []builder.BuilderOption
	}{
		{"torus_random", builder.Torus(10, 12), []builder.BuilderOption{builder.WithField(builder.RandomFn()), builder.WithSeed(5)}},
		{"geodesic_wave", builder.Geodesic(2), []builder.BuilderOption{builder.WithField(builder.WaveFn(6))}},
		{"grid_random", builder.Grid(9, 9), []builder.BuilderOption{builder.WithField(builder.RandomFn()), builder.WithSeed(9)}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, f, c := extract(t, tc.con, tc.opts...)
			f0, f1, f2 := f.Counts()
			c0, c1, c2 := c.Counts()
			assert.Equal(t, []int{f0, f1, f2}, []int{c0, c1, c2})
			require.NoError(t, c.Validate())
			assert.Equal(t, m.EulerCharacteristic(), c.EulerCharacteristic())
			assertPathsFollowField(t, m, f, c)
		})
	}
}

// assertPathsFollowField walks every stored path and checks incidences and
// matchings step by step.
func assertPathsFollowField(t *testing.T, m *mesh.Mesh, f *gradient.Field, c *morse.Complex) {
	t.Helper()
	for _, e := range c.Edges {
		for v, ps := range e.Minima {
			for _, p := range ps {
				require.Equal(t, e.Index, p.First())
				require.Equal(t, v, p.Last())
				for i := 1; i < len(p); i += 2 {
					ed := m.Edges[p[i-1]]
					assert.Contains(t, ed.Vertices[:], p[i], "vertex %d not on edge %d", p[i], p[i-1])
					if i+1 < len(p) {
						assert.Equal(t, f.VertexEdge[p[i]], p[i+1])
					}
				}
			}
		}
	}
	for _, fc := range c.Faces {
		for s, ps := range fc.Saddles {
			for _, p := range ps {
				require.Equal(t, fc.Index, p.First())
				require.Equal(t, s, p.Last())
				for i := 1; i < len(p); i += 2 {
					face := m.Faces[p[i-1]]
					assert.Contains(t, face.Edges[:], p[i])
					if i+1 < len(p) {
						assert.Equal(t, f.EdgeFace[p[i]], p[i+1])
					}
				}
			}
		}
	}
}

// TestExtract_Deterministic compares sequential and parallel extraction.
func TestExtract_Deterministic(t *testing.T) {
	t.Parallel()

	m, err := builder.BuildMesh(builder.Torus(14, 14), builder.WithField(builder.RandomFn()), builder.WithSeed(21))
	require.NoError(t, err)
	f, err := gradient.Build(context.Background(), m)
	require.NoError(t, err)

	a, err := morse.Extract(context.Background(), m, f, morse.WithWorkers(1))
	require.NoError(t, err)
	b, err := morse.Extract(context.Background(), m, f, morse.WithWorkers(16))
	require.NoError(t, err)
	assert.Equal(t, a.Vertices, b.Vertices)
	assert.Equal(t, a.Edges, b.Edges)
	assert.Equal(t, a.Faces, b.Faces)
}

// TestExtract_Sphere checks the minimal sphere: one minimum, one maximum.
func TestExtract_Sphere(t *testing.T) {
	t.Parallel()

	_, _, c := extract(t, builder.PlatonicSolid(builder.Tetrahedron), builder.WithField(builder.HeightFn(2)))
	c0, c1, c2 := c.Counts()
	assert.Equal(t, []int{1, 0, 1}, []int{c0, c1, c2})
}

func TestExtract_Errors(t *testing.T) {
	t.Parallel()

	_, err := morse.Extract(context.Background(), nil, nil)
	require.ErrorIs(t, err, morse.ErrNilInput)

	m, f, _ := extract(t, builder.Grid(6, 6), builder.WithField(builder.RandomFn()), builder.WithSeed(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = morse.Extract(ctx, m, f)
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}
