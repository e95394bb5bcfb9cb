package geomask

import "math"
import "testing"

import "github.com/ctessum/geom"
import "github.com/stretchr/testify/require"

import "github.com/tinne26/geomask/geotable"
import "github.com/tinne26/geomask/mask"

// Fresh unit square with its lower-left corner at (x0, y0). Tests build
// their own geometries every time so nothing shared can be mutated by
// accident.
func unitSquare(x0, y0 float64) geom.Polygon {
	return geom.Polygon{{
		{X: x0, Y: y0},
		{X: x0, Y: y0 + 1},
		{X: x0 + 1, Y: y0 + 1},
		{X: x0 + 1, Y: y0},
	}}
}

func squarePolygons() []geom.Polygonal {
	return []geom.Polygonal{unitSquare(0, 0), unitSquare(0, 1)}
}

// Two stacked unit squares with clean metadata, the canonical fixture.
func cleanTable() *geotable.Table {
	table := geotable.New(squarePolygons())
	table.SetColumn("numbers", geotable.Column{1, 2})
	table.SetColumn("names", geotable.Column{"Unit Square1", "Unit Square2"})
	table.SetColumn("abbrevs", geotable.Column{"uSq1", "uSq2"})
	return table
}

func missingTable() *geotable.Table {
	table := geotable.New(squarePolygons())
	table.SetColumn("numbers", geotable.Column{1, nil})
	table.SetColumn("names", geotable.Column{"Unit Square1", nil})
	table.SetColumn("abbrevs", geotable.Column{"uSq1", nil})
	return table
}

func duplicatesTable() *geotable.Table {
	table := geotable.New(squarePolygons())
	table.SetColumn("numbers", geotable.Column{1, 1})
	table.SetColumn("names", geotable.Column{"Unit Square", "Unit Square"})
	table.SetColumn("abbrevs", geotable.Column{"uSq1", "uSq1"})
	return table
}

// NaN-aware comparison of a grid field against row-major expectations
// (rows indexed by lat, columns by lon).
func requireGridEquals(t *testing.T, expected [][]float64, field *mask.Field) {
	t.Helper()
	require.True(t, field.IsGrid())
	require.Equal(t, []int{len(expected), len(expected[0])}, field.Data.Shape)
	for j, row := range expected {
		for i, want := range row {
			got := field.At(j, i)
			if math.IsNaN(want) {
				require.True(t, math.IsNaN(got), "cell (%d, %d): expected NaN, got %v", j, i, got)
			} else {
				require.Equal(t, want, got, "cell (%d, %d)", j, i)
			}
		}
	}
}

var nan = math.NaN()
