package mask

import "fmt"
import "sort"

import "github.com/ctessum/geom"
import "github.com/ctessum/geom/index/rtree"
import "github.com/ctessum/sparse"

var _ Strategy = (*Contains)(nil)

// Contains is the exact strategy (the method historically called "shapely"
// after the library that popularized it): every coordinate is tested for
// geometric containment against the candidate regions, so it works on any
// target, regular or not, and never suffers raster approximation.
//
// Candidate regions are pruned with an r-tree over the polygon bounding
// boxes, so the per-point cost is driven by how many regions could
// plausibly contain the point rather than by the whole catalog. Regions
// are tested in catalog order and the first containing region wins, which
// makes overlapping catalogs deterministic.
type Contains struct {
	// WrapLon additionally tests every coordinate shifted ±360° so
	// catalogs and grids using different longitude conventions still
	// find each other.
	WrapLon bool
}

// One catalog entry inside the r-tree. Embedding the geometry provides
// the Bounds method the index needs.
type treeItem struct {
	geom.Polygonal
	index int
	rings []geom.Path
}

// Satisfies the [Strategy] interface.
func (self *Contains) MaskGrid(polygons []geom.Polygonal, numbers []float64, lon, lat []float64) (*sparse.DenseArray, error) {
	tree, err := buildIndex(polygons)
	if err != nil { return nil, err }
	out := newFilledNaN(len(lat), len(lon))
	for j, y := range lat {
		for i, x := range lon {
			if value, found := self.lookup(tree, numbers, x, y); found {
				// Not out.Set: that method silently drops zero values,
				// and 0 is a valid region number.
				out.Elements[out.Index1d(j, i)] = value
			}
		}
	}
	return out, nil
}

// Satisfies the [Strategy] interface.
func (self *Contains) MaskPoints(polygons []geom.Polygonal, numbers []float64, lon, lat []float64) (*sparse.DenseArray, error) {
	if len(lon) != len(lat) {
		return nil, fmt.Errorf("mask: paired coordinates differ in length (%d lon vs %d lat)", len(lon), len(lat))
	}
	tree, err := buildIndex(polygons)
	if err != nil { return nil, err }
	out := newFilledNaN(len(lon))
	for p := range lon {
		if value, found := self.lookup(tree, numbers, lon[p], lat[p]); found {
			out.Elements[out.Index1d(p)] = value
		}
	}
	return out, nil
}

func buildIndex(polygons []geom.Polygonal) (*rtree.Rtree, error) {
	tree := rtree.NewTree(25, 50)
	for i, polygonal := range polygons {
		rings, err := polygonRings(polygonal)
		if err != nil { return nil, err }
		tree.Insert(&treeItem{Polygonal: polygonal, index: i, rings: rings})
	}
	return tree, nil
}

// Finds the first region in catalog order containing (x, y). Candidates
// come from the r-tree; they are sorted back into catalog order before
// testing so the tie-break stays deterministic no matter how the index
// happens to return them.
func (self *Contains) lookup(tree *rtree.Rtree, numbers []float64, x, y float64) (float64, bool) {
	offsets := self.lonOffsets()
	var candidates []*treeItem
	for _, offset := range offsets {
		for _, found := range tree.SearchIntersect(pointBounds(x+offset, y)) {
			candidates = append(candidates, found.(*treeItem))
		}
	}
	if len(candidates) == 0 { return 0, false }
	sort.Slice(candidates, func(a, b int) bool {
		return candidates[a].index < candidates[b].index
	})
	for _, item := range candidates {
		for _, offset := range offsets {
			if pointInRings(item.rings, x+offset, y) {
				return numbers[item.index], true
			}
		}
	}
	return 0, false
}

func (self *Contains) lonOffsets() []float64 {
	if self.WrapLon { return []float64{0, -360, 360} }
	return []float64{0}
}
