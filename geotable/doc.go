// The geotable subpackage defines the loosely-structured geospatial table
// that [github.com/tinne26/geomask] builds region catalogs and masks from.
//
// A table is simply a geometry column (one polygon per row) plus any number
// of named metadata columns. Two variants satisfy the [Source] interface:
//   - [Table]: geometries and metadata columns.
//   - [Series]: a bare sequence of geometries, no metadata at all.
//
// Metadata columns are weakly typed on purpose: real-world geospatial tables
// come from formats like GeoJSON where a property can be a number, a string
// or simply absent. The [Validate] function is the gatekeeper that turns a
// loose [Column] into something a region catalog can trust: no missing
// values, no duplicates.
package geotable
