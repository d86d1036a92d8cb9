package mesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmorse/mesh"
)

// TestNew_Triangle pins the edge numbering and the keys of the smallest mesh.
func TestNew_Triangle(t *testing.T) {
	t.Parallel()

	m, err := mesh.New([]float64{0, 1, 2}, [][3]uint32{{0, 1, 2}})
	require.NoError(t, err)

	require.Equal(t, 3, m.NumEdges())
	assert.Equal(t, [2]uint32{0, 1}, m.Edges[0].Vertices)
	assert.Equal(t, [2]uint32{1, 2}, m.Edges[1].Vertices)
	assert.Equal(t, [2]uint32{0, 2}, m.Edges[2].Vertices)
	assert.Equal(t, mesh.Key{1, 0}, m.Edges[0].Key)
	assert.Equal(t, mesh.Key{2, 1, 0}, m.Faces[0].Key)
	assert.Equal(t, [3]uint32{0, 1, 2}, m.Faces[0].Edges)

	assert.Equal(t, []uint32{0, 1}, m.Vertices[1].Star.Edges)
	assert.Equal(t, []uint32{0}, m.Vertices[1].Star.Faces)
	assert.Equal(t, []uint32{0, 2}, m.Vertices[1].Neighbors)

	assert.Equal(t, 7, m.NumCells())
	assert.Equal(t, 1, m.EulerCharacteristic())
	assert.Equal(t, 0.0, m.Min())
	assert.Equal(t, 2.0, m.Max())
	assert.Equal(t, 2.0, m.Range())

	ei, ok := m.EdgeBetween(2, 0)
	require.True(t, ok)
	assert.Equal(t, uint32(2), ei)
	assert.True(t, m.IsBoundaryEdge(ei))
	assert.True(t, m.Faces[0].HasVertex(2))
	assert.Equal(t, uint32(0), m.Edges[2].Other(2))
}

func TestNew_SharedEdge(t *testing.T) {
	t.Parallel()

	// Two triangles glued along (1,2).
	m, err := mesh.New([]float64{0, 1, 2, 3}, [][3]uint32{{0, 1, 2}, {1, 3, 2}})
	require.NoError(t, err)
	assert.Equal(t, 5, m.NumEdges())

	ei, ok := m.EdgeBetween(1, 2)
	require.True(t, ok)
	assert.Equal(t, []uint32{0, 1}, m.Edges[ei].Cofaces)
	assert.False(t, m.IsBoundaryEdge(ei))
	_, ok = m.EdgeBetween(0, 3)
	assert.False(t, ok)
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []float64
		tris   [][3]uint32
		want   error
	}{
		{"no_values", nil, [][3]uint32{{0, 1, 2}}, mesh.ErrEmptyMesh},
		{"no_faces", []float64{0, 1, 2}, nil, mesh.ErrEmptyMesh},
		{"nan", []float64{0, math.NaN(), 2}, [][3]uint32{{0, 1, 2}}, mesh.ErrInvalidValue},
		{"inf", []float64{0, 1, math.Inf(1)}, [][3]uint32{{0, 1, 2}}, mesh.ErrInvalidValue},
		{"duplicate_value", []float64{0, 1, 1}, [][3]uint32{{0, 1, 2}}, mesh.ErrDuplicateValue},
		{"out_of_range", []float64{0, 1, 2}, [][3]uint32{{0, 1, 3}}, mesh.ErrVertexOutOfRange},
		{"degenerate", []float64{0, 1, 2}, [][3]uint32{{0, 1, 1}}, mesh.ErrDegenerateFace},
		{"duplicate_face", []float64{0, 1, 2}, [][3]uint32{{0, 1, 2}, {2, 1, 0}}, mesh.ErrDuplicateFace},
		{"nonmanifold_edge", []float64{0, 1, 2, 3, 4},
			[][3]uint32{{0, 1, 2}, {0, 1, 3}, {0, 1, 4}}, mesh.ErrNonManifoldEdge},
		{"bowtie", []float64{0, 1, 2, 3, 4},
			[][3]uint32{{0, 1, 2}, {0, 3, 4}}, mesh.ErrNonManifoldVertex},
		{"isolated_vertex", []float64{0, 1, 2, 3}, [][3]uint32{{0, 1, 2}}, mesh.ErrNonManifoldVertex},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := mesh.New(tc.values, tc.tris)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, m)
		})
	}
}

func TestNew_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	values := []float64{1, 1, 2}
	m, err := mesh.New(values, [][3]uint32{{0, 1, 2}}, mesh.WithPerturbation())
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 2}, values)
	assert.InDelta(t, 1+mesh.DefaultEpsilon, m.Vertices[0].Value, 1e-15)
	assert.Equal(t, 1.0, m.Vertices[1].Value)
}

func TestPerturb(t *testing.T) {
	t.Parallel()

	vals := []float64{1, 1, 1, 5}
	mesh.Perturb(vals, 0.1)
	assert.InDelta(t, 1.2, vals[0], 1e-12)
	assert.InDelta(t, 1.1, vals[1], 1e-12)
	assert.Equal(t, 1.0, vals[2])
	assert.Equal(t, 5.0, vals[3])

	// A shift that lands on another value is caught by New.
	_, err := mesh.New([]float64{1, 1, 1.5}, [][3]uint32{{0, 1, 2}},
		mesh.WithPerturbation(), mesh.WithEpsilon(0.5))
	require.ErrorIs(t, err, mesh.ErrDuplicateValue)
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b mesh.Key
		want int
	}{
		{mesh.Key{2, 1}, mesh.Key{2, 1, 0}, -1},
		{mesh.Key{2, 1, 0}, mesh.Key{2, 1}, 1},
		{mesh.Key{2}, mesh.Key{1, 5}, 1},
		{mesh.Key{3, 1}, mesh.Key{3, 2}, -1},
		{mesh.Key{3, 2, 1}, mesh.Key{3, 2, 1}, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, mesh.Compare(tc.a, tc.b), "%v vs %v", tc.a, tc.b)
	}
	assert.True(t, mesh.Key{1}.Less(mesh.Key{1, 0}))
	assert.Equal(t, 4.0, mesh.Key{4, 3}.Max())
}

func TestCellQueries(t *testing.T) {
	t.Parallel()

	m, err := mesh.New([]float64{0, 1, 2}, [][3]uint32{{0, 1, 2}})
	require.NoError(t, err)

	assert.Equal(t, mesh.Key{1}, m.Key(mesh.VertexID(1)))
	assert.Equal(t, mesh.Key{2, 0}, m.Key(mesh.EdgeID(2)))
	assert.Nil(t, m.Key(mesh.EdgeID(9)))
	assert.Equal(t, 2.0, m.Value(mesh.FaceID(0)))
	assert.Equal(t, 0.0, m.Value(mesh.FaceID(4)))

	assert.Equal(t, []uint32{1, 2}, m.CellVertices(nil, mesh.EdgeID(1)))
	assert.Equal(t, []uint32{7, 0, 1, 2}, m.CellVertices([]uint32{7}, mesh.FaceID(0)))

	assert.Equal(t, "v12", mesh.VertexID(12).String())
	assert.Equal(t, "e3", mesh.EdgeID(3).String())
	assert.Equal(t, "f7", mesh.FaceID(7).String())
	assert.Equal(t, "edge", mesh.DimEdge.String())
}

func TestWithEpsilon_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { mesh.WithEpsilon(0) })
	assert.Panics(t, func() { mesh.WithEpsilon(-1) })
}
