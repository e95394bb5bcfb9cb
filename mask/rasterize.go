package mask

import "math"
import "sort"

import "github.com/ctessum/geom"
import "github.com/ctessum/sparse"

var _ Strategy = (*Rasterize)(nil)

// Rasterize is the approximate grid-fill strategy: every polygon is burned
// onto the raster with a scanline fill, using its region number as the
// burn value. A cell is considered covered when its center falls within
// the polygon, with right/top edges excluded so adjacent regions never
// fight over a shared border.
//
// Polygons are burned in catalog order, so where regions overlap the last
// one wins. The grid axes must be equally spaced (ascending or descending)
// with at least two points each; anything else is an [*IrregularGridError].
// Cost is proportional to rows × polygon edges plus the burned cells,
// which is what you want for dense regular grids.
type Rasterize struct {
	// WrapLon additionally burns every polygon shifted ±360° so catalogs
	// and grids using different longitude conventions ([-180, 180] vs
	// [0, 360]) still find each other.
	WrapLon bool
}

// Index-space slack when snapping span ends to cell centers. Without it,
// cell centers that fall exactly on a polygon edge would be at the mercy
// of floating point division.
const centerEpsilon = 1e-9

// Satisfies the [Strategy] interface.
func (self *Rasterize) MaskGrid(polygons []geom.Polygonal, numbers []float64, lon, lat []float64) (*sparse.DenseArray, error) {
	if err := checkAxis(lon, "lon"); err != nil { return nil, err }
	if err := checkAxis(lat, "lat"); err != nil { return nil, err }

	lonAsc, lonFlipped := ascending(lon)
	latAsc, latFlipped := ascending(lat)
	dx := (lonAsc[len(lonAsc)-1] - lonAsc[0]) / float64(len(lonAsc)-1)

	out := newFilledNaN(len(lat), len(lon))
	for k, polygonal := range polygons {
		rings, err := polygonRings(polygonal)
		if err != nil { return nil, err }
		for _, offset := range self.lonOffsets() {
			burnRings(out, rings, numbers[k], offset, lonAsc, latAsc, dx, lonFlipped, latFlipped)
		}
	}
	return out, nil
}

// Satisfies the [Strategy] interface. Always fails with
// [ErrScatteredRasterize]: there is no raster to burn onto when the
// coordinates don't form a grid.
func (self *Rasterize) MaskPoints(polygons []geom.Polygonal, numbers []float64, lon, lat []float64) (*sparse.DenseArray, error) {
	return nil, ErrScatteredRasterize
}

func (self *Rasterize) lonOffsets() []float64 {
	if self.WrapLon { return []float64{-360, 0, 360} }
	return []float64{0}
}

func checkAxis(axis []float64, name string) error {
	if len(axis) < 2 {
		return &IrregularGridError{Axis: name, Reason: "have fewer than two points"}
	}
	if !EquallySpaced(axis) {
		return &IrregularGridError{Axis: name, Reason: "are not equally spaced"}
	}
	return nil
}

// Scanline fill of one polygon (as rings, with offset added to every x).
// For each grid row we intersect the polygon edges with the horizontal
// line through the cell centers, sort the crossings and burn the cells
// whose center falls in [even crossing, odd crossing).
func burnRings(out *sparse.DenseArray, rings []geom.Path, value, offset float64, lonAsc, latAsc []float64, dx float64, lonFlipped, latFlipped bool) {
	numLon, numLat := len(lonAsc), len(latAsc)
	crossings := make([]float64, 0, 8)
	for j := 0; j < numLat; j++ {
		y := latAsc[j]
		crossings = crossings[:0]
		for _, ring := range rings {
			n := len(ring)
			if n < 3 { continue }
			for i := 0; i < n; i++ {
				a, b := ring[i], ring[(i+1)%n]
				if (a.Y > y) != (b.Y > y) {
					crossX := a.X + (y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
					crossings = append(crossings, crossX+offset)
				}
			}
		}
		if len(crossings) < 2 { continue }
		sort.Float64s(crossings)

		row := j
		if latFlipped { row = numLat - 1 - j }
		for c := 0; c+1 < len(crossings); c += 2 {
			first := int(math.Ceil((crossings[c]-lonAsc[0])/dx - centerEpsilon))
			limit := int(math.Ceil((crossings[c+1]-lonAsc[0])/dx - centerEpsilon))
			if first < 0 { first = 0 }
			if limit > numLon { limit = numLon }
			for i := first; i < limit; i++ {
				column := i
				if lonFlipped { column = numLon - 1 - i }
				// Not out.Set: that method silently drops zero values,
				// and 0 is a valid region number.
				out.Elements[out.Index1d(row, column)] = value
			}
		}
	}
}
