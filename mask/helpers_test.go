package mask

import "math"
import "testing"

import "github.com/ctessum/geom"
import "github.com/ctessum/sparse"
import "github.com/stretchr/testify/require"

func square(x0, y0, side float64) geom.Polygon {
	return geom.Polygon{{
		{X: x0, Y: y0},
		{X: x0, Y: y0 + side},
		{X: x0 + side, Y: y0 + side},
		{X: x0 + side, Y: y0},
	}}
}

// NaN-aware comparison of a 2-D dense array against row-major rows.
func requireArrayEquals(t *testing.T, expected [][]float64, array *sparse.DenseArray) {
	t.Helper()
	require.Equal(t, []int{len(expected), len(expected[0])}, array.Shape)
	for j, row := range expected {
		for i, want := range row {
			got := array.Get(j, i)
			if math.IsNaN(want) {
				require.True(t, math.IsNaN(got), "cell (%d, %d): expected NaN, got %v", j, i, got)
			} else {
				require.Equal(t, want, got, "cell (%d, %d)", j, i)
			}
		}
	}
}

var nan = math.NaN()
