package mask

import "math"
import "testing"

import "github.com/ctessum/geom"
import "github.com/stretchr/testify/require"

func TestContainsTwoSquares(t *testing.T) {
	polygons := []geom.Polygonal{square(0, 0, 1), square(0, 1, 1)}
	strategy := &Contains{}
	out, err := strategy.MaskGrid(polygons, []float64{1, 2}, []float64{0.5, 1.5}, []float64{0.5, 1.5})
	require.NoError(t, err)
	requireArrayEquals(t, [][]float64{{1, nan}, {2, nan}}, out)
}

func TestContainsIrregularTarget(t *testing.T) {
	// no spacing requirements here, any axes work
	polygons := []geom.Polygonal{square(0, 0, 1), square(0, 1, 1)}
	strategy := &Contains{}
	out, err := strategy.MaskGrid(polygons, []float64{1, 2}, []float64{0.5, 0.51, 42}, []float64{1.99, 0.01})
	require.NoError(t, err)
	requireArrayEquals(t, [][]float64{
		{2, 2, nan},
		{1, 1, nan},
	}, out)
}

func TestContainsFirstRegionWins(t *testing.T) {
	// overlapping squares: the first one in catalog order keeps the
	// shared cells, later regions are only consulted on a miss
	polygons := []geom.Polygonal{square(0, 0, 2), square(1, 1, 2)}
	strategy := &Contains{}
	out, err := strategy.MaskGrid(polygons, []float64{7, 8}, []float64{0.5, 1.5, 2.5}, []float64{0.5, 1.5, 2.5})
	require.NoError(t, err)
	requireArrayEquals(t, [][]float64{
		{7, 7, nan},
		{7, 7, 8},
		{nan, 8, 8},
	}, out)
}

func TestContainsHole(t *testing.T) {
	// shell with a hole: points inside the hole are uncovered under the
	// even-odd rule
	donut := geom.Polygon{
		{{X: 0, Y: 0}, {X: 0, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 0}},
		{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}},
	}
	strategy := &Contains{}
	out, err := strategy.MaskGrid([]geom.Polygonal{donut}, []float64{1}, []float64{0.5, 1.5, 2.5}, []float64{0.5, 1.5, 2.5})
	require.NoError(t, err)
	requireArrayEquals(t, [][]float64{
		{1, 1, 1},
		{1, nan, 1},
		{1, 1, 1},
	}, out)
}

func TestContainsPoints(t *testing.T) {
	polygons := []geom.Polygonal{square(0, 0, 1), square(0, 1, 1)}
	strategy := &Contains{}
	out, err := strategy.MaskPoints(polygons, []float64{10, 20}, []float64{0.5, 0.5, -4}, []float64{0.5, 1.5, 0.5})
	require.NoError(t, err)
	require.Equal(t, []int{3}, out.Shape)
	require.Equal(t, 10.0, out.Get(0))
	require.Equal(t, 20.0, out.Get(1))
	require.True(t, math.IsNaN(out.Get(2)))
}

func TestContainsPointsMismatch(t *testing.T) {
	strategy := &Contains{}
	_, err := strategy.MaskPoints(nil, nil, []float64{1, 2}, []float64{1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "differ in length")
}

func TestContainsWrapLon(t *testing.T) {
	polygons := []geom.Polygonal{square(-3, 0, 1)}

	strategy := &Contains{WrapLon: true}
	out, err := strategy.MaskPoints(polygons, []float64{9}, []float64{357.5}, []float64{0.5})
	require.NoError(t, err)
	require.Equal(t, 9.0, out.Get(0))

	strict := &Contains{}
	out, err = strict.MaskPoints(polygons, []float64{9}, []float64{357.5}, []float64{0.5})
	require.NoError(t, err)
	require.True(t, math.IsNaN(out.Get(0)))
}

func TestContainsEmptyCatalog(t *testing.T) {
	strategy := &Contains{}
	out, err := strategy.MaskGrid(nil, nil, []float64{0.5}, []float64{0.5})
	require.NoError(t, err)
	require.True(t, math.IsNaN(out.Get(0, 0)))
}
