package mask

import "math"

import "github.com/ctessum/geom"
import "github.com/ctessum/sparse"

// Field is a labeled mask result: the data array plus the coordinate axes
// it was computed for, attached verbatim so downstream consumers can align
// the mask to their own grid without recomputation.
//
// Grid results have Data shape (len(Lat), len(Lon)); scattered-point
// results have shape (len(Lon)) with Lon and Lat holding the paired
// coordinates. Every element is either a region number or NaN.
//
// Fields are produced fresh per call and never cached; treat them as
// immutable once returned.
type Field struct {
	Lon  []float64
	Lat  []float64
	Data *sparse.DenseArray
}

// Reports whether the field labels a 2-D grid (as opposed to scattered
// points).
func (self *Field) IsGrid() bool { return len(self.Data.Shape) == 2 }

// Returns the label of the grid cell at the given axis indices, or NaN if
// no region covers it. Only valid for grid fields.
func (self *Field) At(latIndex, lonIndex int) float64 {
	return self.Data.Get(latIndex, lonIndex)
}

// Returns the label of the i-th scattered point, or NaN if no region
// covers it. Only valid for scattered-point fields.
func (self *Field) AtPoint(index int) float64 {
	return self.Data.Get(index)
}

// Returns the fraction of cells covered by some region, in [0, 1].
// Returns 0 for empty fields.
func (self *Field) Coverage() float64 {
	if len(self.Data.Elements) == 0 { return 0 }
	covered := 0
	for _, value := range self.Data.Elements {
		if !math.IsNaN(value) { covered += 1 }
	}
	return float64(covered) / float64(len(self.Data.Elements))
}

// Field3D is the result of [Layers]: one 0/1 layer per region instead of a
// single layer of region numbers, which is the representation you want when
// regions overlap. Data has shape (len(Numbers), len(Lat), len(Lon)), with
// Numbers[i] identifying the region of layer i.
type Field3D struct {
	Numbers []float64
	Lon     []float64
	Lat     []float64
	Data    *sparse.DenseArray
}

// Reports whether the region of the given layer covers the grid cell at
// the given axis indices.
func (self *Field3D) Covers(layer, latIndex, lonIndex int) bool {
	return self.Data.Get(layer, latIndex, lonIndex) != 0
}

// Layers runs the strategy once per region and stacks the results into a
// [Field3D]: layer i is 1 where region i contains the cell and 0 elsewhere.
// Unlike a flat mask, overlapping regions don't shadow each other here,
// each one gets its own complete layer.
func Layers(strategy Strategy, polygons []geom.Polygonal, numbers []float64, lon, lat []float64) (*Field3D, error) {
	out := sparse.ZerosDense(len(polygons), len(lat), len(lon))
	one := []float64{1}
	for k := range polygons {
		layer, err := strategy.MaskGrid(polygons[k:k+1], one, lon, lat)
		if err != nil { return nil, err }
		for j := range lat {
			for i := range lon {
				if !math.IsNaN(layer.Get(j, i)) {
					out.Set(1, k, j, i)
				}
			}
		}
	}
	return &Field3D{
		Numbers: copyFloats(numbers),
		Lon:     copyFloats(lon),
		Lat:     copyFloats(lat),
		Data:    out,
	}, nil
}
