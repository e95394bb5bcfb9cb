package geomask

import "errors"
import "strconv"

import "github.com/ctessum/geom"

import "github.com/tinne26/geomask/geotable"

// DefaultName is the catalog label used when none is given, matching the
// long-standing convention of region masking tools.
const DefaultName = "unnamed"

// Regions is a validated, ordered catalog of labeled polygon regions.
// Within a catalog, numbers are unique, and names and abbreviations are
// unique and non-missing; every constructor enforces this before geometry
// is ever touched.
//
// Row order is preserved from whatever the catalog was built from, and it
// matters: the masking strategies use it as the tie-break for overlapping
// regions.
type Regions struct {
	numbers  []int
	names    []string
	abbrevs  []string
	polygons []geom.Polygonal
	name     string
	source   string
}

// RegionsOptions configures [New]. Every field can be left at its zero
// value: numbers default to row positions, names to "Region{i}", abbrevs
// to [ConstructAbbrevs] over the names, and the catalog name to
// [DefaultName].
type RegionsOptions struct {
	Numbers []int
	Names   []string
	Abbrevs []string
	Name    string // catalog label
	Source  string // provenance note, e.g. a dataset name
}

// New creates a catalog directly from a polygon list. The polygons slice
// is copied (shallowly; the geometries themselves are assumed immutable,
// and the catalog never mutates them). Explicitly given metadata goes
// through the same validation as table columns, so duplicate or mismatched
// metadata fails here rather than at masking time.
func New(polygons []geom.Polygonal, opts *RegionsOptions) (*Regions, error) {
	if opts == nil { opts = &RegionsOptions{} }

	numbers := opts.Numbers
	if numbers == nil {
		numbers = make([]int, len(polygons))
		for i := range numbers { numbers[i] = i }
	} else {
		if err := checkMetadata(intsColumn(numbers), "numbers", len(polygons)); err != nil {
			return nil, err
		}
	}

	names := opts.Names
	if names == nil {
		names = make([]string, len(polygons))
		for i := range names { names[i] = "Region" + strconv.Itoa(i) }
	} else {
		if err := checkMetadata(stringsColumn(names), "names", len(polygons)); err != nil {
			return nil, err
		}
	}

	abbrevs := opts.Abbrevs
	if abbrevs == nil {
		abbrevs = ConstructAbbrevs(names)
	} else {
		if err := checkMetadata(stringsColumn(abbrevs), "abbrevs", len(polygons)); err != nil {
			return nil, err
		}
	}

	name := opts.Name
	if name == "" { name = DefaultName }

	ownedPolygons := make([]geom.Polygonal, len(polygons))
	copy(ownedPolygons, polygons)
	return &Regions{
		numbers:  append([]int(nil), numbers...),
		names:    append([]string(nil), names...),
		abbrevs:  append([]string(nil), abbrevs...),
		polygons: ownedPolygons,
		name:     name,
		source:   opts.Source,
	}, nil
}

func checkMetadata(column geotable.Column, label string, numRows int) error {
	if len(column) != numRows {
		return errors.New("geomask: " + label + " has " + strconv.Itoa(len(column)) +
			" values for " + strconv.Itoa(numRows) + " polygons")
	}
	_, err := geotable.Validate(column, label)
	return err
}

func intsColumn(values []int) geotable.Column {
	column := make(geotable.Column, len(values))
	for i, value := range values { column[i] = value }
	return column
}

func stringsColumn(values []string) geotable.Column {
	column := make(geotable.Column, len(values))
	for i, value := range values { column[i] = value }
	return column
}

// Returns the number of regions in the catalog.
func (self *Regions) Len() int { return len(self.polygons) }

// Returns the catalog label ([DefaultName] unless one was given).
func (self *Regions) Name() string { return self.name }

// Returns the provenance string, or "" when the catalog has none.
func (self *Regions) Source() string { return self.source }

// Returns a copy of the region numbers, in catalog order.
func (self *Regions) Numbers() []int { return append([]int(nil), self.numbers...) }

// Returns a copy of the region names, in catalog order.
func (self *Regions) Names() []string { return append([]string(nil), self.names...) }

// Returns a copy of the region abbreviations, in catalog order.
func (self *Regions) Abbrevs() []string { return append([]string(nil), self.abbrevs...) }

// Returns the region geometries in catalog order. The slice is a copy,
// but the geometries are the catalog's own: don't mutate them.
func (self *Regions) Polygons() []geom.Polygonal {
	return append([]geom.Polygonal(nil), self.polygons...)
}

// Region is a read-only view of a single catalog entry.
type Region struct {
	Number  int
	Name    string
	Abbrev  string
	Polygon geom.Polygonal
}

// Returns the catalog entry at the given position. Panics if the index is
// out of range, like a slice access would.
func (self *Regions) Region(index int) Region {
	return Region{
		Number:  self.numbers[index],
		Name:    self.names[index],
		Abbrev:  self.abbrevs[index],
		Polygon: self.polygons[index],
	}
}

// Finds the region with the given number.
func (self *Regions) ByNumber(number int) (Region, bool) {
	for i, candidate := range self.numbers {
		if candidate == number { return self.Region(i), true }
	}
	return Region{}, false
}

// Finds the region with the given name.
func (self *Regions) ByName(name string) (Region, bool) {
	for i, candidate := range self.names {
		if candidate == name { return self.Region(i), true }
	}
	return Region{}, false
}

// Finds the region with the given abbreviation.
func (self *Regions) ByAbbrev(abbrev string) (Region, bool) {
	for i, candidate := range self.abbrevs {
		if candidate == abbrev { return self.Region(i), true }
	}
	return Region{}, false
}
