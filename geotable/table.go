package geotable

import "sort"
import "strconv"

import "github.com/ctessum/geom"

// Source is the capability shared by the two table variants this package
// offers: a [*Table] with metadata columns and a bare geometry [Series].
// Functions in [github.com/tinne26/geomask] accept a Source and type-check
// it at the boundary, so passing anything else (including nil) results in
// an invalid source error rather than a panic.
type Source interface {
	// Returns the geometry column, one polygon per row, in row order.
	// The returned slice must not be mutated.
	Polygons() []geom.Polygonal
}

var _ Source = (*Table)(nil)
var _ Source = (Series)(nil)

// Series is the geometry-only table variant: polygons in row order, no
// metadata columns attached.
type Series []geom.Polygonal

// Satisfies the [Source] interface.
func (self Series) Polygons() []geom.Polygonal { return self }

// Table is the full table variant: a geometry column plus zero or more
// named metadata columns, all with one entry per row.
type Table struct {
	polygons []geom.Polygonal
	columns  map[string]Column
}

// Creates a table from its geometry column. Metadata columns are attached
// afterwards with [Table.SetColumn].
func New(polygons []geom.Polygonal) *Table {
	return &Table{
		polygons: polygons,
		columns:  make(map[string]Column),
	}
}

// Satisfies the [Source] interface.
func (self *Table) Polygons() []geom.Polygonal { return self.polygons }

// Returns the number of rows in the table.
func (self *Table) Len() int { return len(self.polygons) }

// Attaches or replaces a metadata column. The column must have exactly one
// entry per geometry; the method panics otherwise, as mismatched lengths
// are a programming error, not a data error.
func (self *Table) SetColumn(name string, column Column) {
	if len(column) != len(self.polygons) {
		panic("column " + strconv.Quote(name) + " has " + strconv.Itoa(len(column)) +
			" values for " + strconv.Itoa(len(self.polygons)) + " geometries")
	}
	self.columns[name] = column
}

// Returns the named metadata column, or a [*ColumnNotFoundError] if the
// table doesn't have it.
func (self *Table) Column(name string) (Column, error) {
	column, found := self.columns[name]
	if !found { return nil, &ColumnNotFoundError{Name: name} }
	return column, nil
}

// Returns the names of the attached metadata columns in lexical order.
func (self *Table) ColumnNames() []string {
	names := make([]string, 0, len(self.columns))
	for name := range self.columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
