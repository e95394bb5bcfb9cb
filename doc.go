// geomask is a package for masking collections of named polygon regions
// onto latitude/longitude grids: given a region catalog and a target grid,
// it tells you, cell by cell, which region each cell belongs to.
//
// While the API surface can look slightly intimidating at the beginning,
// common usage depends only on a couple types and a few functions...
//
// First, you get hold of a geospatial table (see the geotable subpackage;
// GeoJSON bytes are the quickest way in):
//
//	table, err := geotable.FromGeoJSON(data)
//	if err != nil { ... }
//
// Then, you turn it into a validated catalog of [Regions]:
//
//	regions, err := geomask.FromTable(table, &geomask.TableOptions{
//	    Names: "name", Abbrevs: "ISO",
//	})
//	if err != nil { ... }
//
// Finally, you mask your grid and read region numbers out of the result:
//
//	field, err := regions.Mask(lon, lat, nil)
//	if err != nil { ... }
//	number := field.At(latIndex, lonIndex) // NaN where uncovered
//
// Everything is a single-shot, in-memory transformation: tables, catalogs
// and mask results are plain values, there is no hidden state and nothing
// is cached between calls. If you care about how cells are matched to
// polygons (or want to bring your own algorithm), look at the mask
// subpackage and its two built-in strategies.
package geomask
