package morse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmorse/builder"
	"github.com/katalvlaran/lvmorse/mesh"
	"github.com/katalvlaran/lvmorse/morse"
)

func TestComplex_CountsAndCells(t *testing.T) {
	t.Parallel()

	c := ridgeComplex(grid4(t))
	c0, c1, c2 := c.Counts()
	assert.Equal(t, []int{1, 2, 2}, []int{c0, c1, c2})
	assert.Equal(t, 5, c.NumCritical())
	assert.Equal(t, 1, c.EulerCharacteristic())
	assert.Equal(t, []mesh.CellID{
		mesh.VertexID(0), mesh.EdgeID(1), mesh.EdgeID(2), mesh.FaceID(3), mesh.FaceID(4),
	}, c.CriticalCells())

	assert.True(t, c.IsCritical(mesh.FaceID(3)))
	assert.False(t, c.IsCritical(mesh.FaceID(5)))
	assert.False(t, c.IsCritical(mesh.VertexID(1)))
	assert.Equal(t, 1, c.Edges[1].MinimumMultiplicity(0))
	assert.Equal(t, 0, c.Edges[1].MinimumMultiplicity(7))
}

func TestComplex_SeparatricesAbove(t *testing.T) {
	t.Parallel()

	c := ridgeComplex(grid4(t))
	_, _, ok := c.SeparatrixRange()
	assert.False(t, ok)

	require.NoError(t, c.CancelMaximum(1, 3))
	require.Len(t, c.Separatrices, 2)

	lo, hi, ok := c.SeparatrixRange()
	require.True(t, ok)
	assert.LessOrEqual(t, lo, hi)

	all := c.SeparatricesAbove(morse.KindAll, lo-1)
	require.Len(t, all, 2)
	assert.GreaterOrEqual(t, all[0].Persistence, all[1].Persistence)

	ridges := c.SeparatricesAbove(morse.KindMaximal, lo-1)
	require.Len(t, ridges, 1)
	assert.Equal(t, 2, ridges[0].Dimension)

	valleys := c.SeparatricesAbove(morse.KindMinimal, lo-1)
	require.Len(t, valleys, 1)
	assert.Equal(t, 1, valleys[0].Dimension)

	assert.Empty(t, c.SeparatricesAbove(morse.KindAll, hi))
}

func TestPathCells_Vertices(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]mesh.CellID{mesh.EdgeID(4), mesh.VertexID(2), mesh.EdgeID(1), mesh.VertexID(0)},
		morse.PathCells(1, morse.Path{4, 2, 1, 0}))
}

// TestComplex_TorusValidate checks that extraction on a torus keeps the
// Euler characteristic at zero.
func TestComplex_TorusValidate(t *testing.T) {
	t.Parallel()

	_, _, c := extract(t, builder.Torus(6, 8), builder.WithField(builder.WaveFn(3)))
	require.NoError(t, c.Validate())
	assert.Equal(t, 0, c.EulerCharacteristic())
}
