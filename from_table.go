package geomask

import "errors"

import "github.com/tinne26/geomask/geotable"

// Returned when a catalog or mask entry point receives something that
// isn't a recognized geospatial table variant.
var ErrInvalidSource = errors.New("geomask: source must be a *geotable.Table or a geotable.Series")

// Returned by [FromTable] when given a bare geometry series: building a
// catalog needs a table shape, even if every metadata column is left to
// its default.
var ErrNotTable = errors.New("geomask: regions must be built from a *geotable.Table")

// TableOptions configures [FromTable]. The three column fields name
// metadata columns of the table; empty fields fall back to synthesized
// metadata (see [New]).
type TableOptions struct {
	Numbers string // column with unique region numbers
	Names   string // column with unique region names
	Abbrevs string // column with unique region abbreviations
	Name    string // catalog label, defaults to [DefaultName]
	Source  string // provenance note
}

// FromTable converts a geospatial table into a validated region catalog.
// The geometry column is taken as-is, one region per row in row order;
// metadata comes from the named columns, or is synthesized when no column
// is named (row-position numbers, "Region{i}" names, abbreviations
// constructed from the names).
//
// Every named column must exist (else a [*geotable.ColumnNotFoundError])
// and passes through [geotable.Validate], so missing or duplicate entries
// abort construction before any geometry is touched.
func FromTable(source geotable.Source, opts *TableOptions) (*Regions, error) {
	table, isTable := source.(*geotable.Table)
	if !isTable || table == nil { return nil, ErrNotTable }
	if opts == nil { opts = &TableOptions{} }

	regionsOpts := RegionsOptions{Name: opts.Name, Source: opts.Source}
	if opts.Numbers != "" {
		column, err := resolveColumn(table, opts.Numbers, "numbers")
		if err != nil { return nil, err }
		regionsOpts.Numbers, err = column.Ints()
		if err != nil { return nil, err }
	}
	if opts.Names != "" {
		column, err := resolveColumn(table, opts.Names, "names")
		if err != nil { return nil, err }
		regionsOpts.Names, err = column.Strings()
		if err != nil { return nil, err }
	}
	if opts.Abbrevs != "" {
		column, err := resolveColumn(table, opts.Abbrevs, "abbrevs")
		if err != nil { return nil, err }
		regionsOpts.Abbrevs, err = column.Strings()
		if err != nil { return nil, err }
	}
	return New(table.Polygons(), &regionsOpts)
}

// Fetches a column and validates it under the given label. The label is
// the role of the column ("numbers", "names", "abbrevs"), not its name in
// the table; error messages refer to roles so they stay meaningful when a
// column called, say, "ISO" feeds the abbreviations.
func resolveColumn(table *geotable.Table, columnName, label string) (geotable.Column, error) {
	column, err := table.Column(columnName)
	if err != nil { return nil, err }
	return geotable.Validate(column, label)
}
