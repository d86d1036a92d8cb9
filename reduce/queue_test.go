package reduce_test

import (
	"math"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmorse/builder"
	"github.com/katalvlaran/lvmorse/mesh"
	"github.com/katalvlaran/lvmorse/morse"
	"github.com/katalvlaran/lvmorse/reduce"
)

func TestQueue_Order(t *testing.T) {
	t.Parallel()

	q := reduce.NewQueue(4)
	assert.True(t, math.IsInf(q.PeekDist(), 1))
	_, ok := q.Pop()
	assert.False(t, ok)

	q.Insert(0.5, 9)
	q.Insert(0.1, 4)
	q.Insert(0.5, 2)
	q.Insert(0.3, 7)
	assert.Equal(t, 4, q.Len())
	assert.Equal(t, 0.1, q.PeekDist())

	var got []uint32
	for q.Len() > 0 {
		it, ok := q.Pop()
		require.True(t, ok)
		got = append(got, it.Saddle)
	}
	assert.Equal(t, []uint32{4, 7, 2, 9}, got)
}

// valley is a hand-made complex on a 4×4 grid: minima 0, 5, 15; saddle 1
// joins 0 and 5, saddle 2 joins 5 and 15.
func valley(t *testing.T) *morse.Complex {
	t.Helper()
	m, err := builder.BuildMesh(builder.Grid(4, 4))
	require.NoError(t, err)
	return &morse.Complex{
		Mesh: m,
		Vertices: map[uint32]*morse.CritVertex{
			0:  {Index: 0, Value: m.Vertices[0].Value, Saddles: map[uint32]int{1: 1}},
			5:  {Index: 5, Value: m.Vertices[5].Value, Saddles: map[uint32]int{1: 1, 2: 1}},
			15: {Index: 15, Value: m.Vertices[15].Value, Saddles: map[uint32]int{2: 1}},
		},
		Edges: map[uint32]*morse.CritEdge{
			1: {Index: 1, Key: m.Edges[1].Key, Maxima: map[uint32]int{}, Minima: map[uint32][]morse.Path{
				0: {{1, 4, 7, 0}},
				5: {{1, 10, 11, 5}},
			}},
			2: {Index: 2, Key: m.Edges[2].Key, Maxima: map[uint32]int{}, Minima: map[uint32][]morse.Path{
				5:  {{2, 6, 9, 5}},
				15: {{2, 15}},
			}},
		},
		Faces: map[uint32]*morse.CritFace{},
	}
}

func TestClosestExtremum(t *testing.T) {
	t.Parallel()

	c := valley(t)
	m := c.Mesh
	top := m.Edges[1].Key[0]
	d0 := math.Abs(top - m.Vertices[0].Value)
	d5 := math.Abs(top - m.Vertices[5].Value)
	want, wantDist := uint32(0), d0
	if d5 < d0 {
		want, wantDist = 5, d5
	}

	cand, ok := reduce.ClosestExtremum(c, 1, nil)
	require.True(t, ok)
	assert.Equal(t, want, cand.Extremum)
	assert.Equal(t, mesh.DimVertex, cand.Dim)
	assert.Equal(t, "minimum", cand.Kind())
	assert.InDelta(t, wantDist, cand.Dist, 1e-12)

	_, ok = reduce.ClosestExtremum(c, 99, nil)
	assert.False(t, ok)
}

func TestClosestExtremum_SkipsDoubleConnections(t *testing.T) {
	t.Parallel()

	c := valley(t)
	c.Edges[1].Minima[0] = []morse.Path{{1, 4, 7, 0}, {1, 3, 8, 0}}
	c.Vertices[0].Saddles[1] = 2

	cand, ok := reduce.ClosestExtremum(c, 1, nil)
	require.True(t, ok)
	assert.Equal(t, uint32(5), cand.Extremum)

	c.Edges[1].Minima[5] = []morse.Path{{1, 10, 11, 5}, {1, 12, 13, 5}}
	_, ok = reduce.ClosestExtremum(c, 1, nil)
	assert.False(t, ok)
}

func TestClosestExtremum_Salient(t *testing.T) {
	t.Parallel()

	c := valley(t)
	all := roaring.New()
	all.AddRange(0, uint64(c.Mesh.NumVertices()))

	// Two distinct edges span at least three vertices.
	_, ok := reduce.ClosestExtremum(c, 1, all)
	assert.False(t, ok)

	// A single edge spans two.
	cand, ok := reduce.ClosestExtremum(c, 2, all)
	require.True(t, ok)
	assert.Equal(t, uint32(15), cand.Extremum)

	// An empty set blocks nothing.
	_, ok = reduce.ClosestExtremum(c, 1, roaring.New())
	assert.True(t, ok)
}
