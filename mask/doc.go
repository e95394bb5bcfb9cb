// The mask subpackage defines the [Strategy] interface used within geomask
// and provides the two ready-to-use implementations.
//
// In this context, masking means taking a set of polygon regions, each with
// a numeric label, and a target of lat/lon coordinates (a regular grid or
// scattered points), and producing an array where every coordinate carries
// the label of the region containing it, or NaN where no region does.
//
// The two implementations trade accuracy for speed in opposite directions:
//   - [Rasterize] burns each polygon onto the grid with a scanline fill,
//     touching each output cell once. It needs equally spaced axes and,
//     where regions overlap, the last one in catalog order wins.
//   - [Contains] runs an exact point-in-polygon test per coordinate, with
//     an r-tree pruning the candidate regions. It works on any target and,
//     where regions overlap, the first region in catalog order wins.
//
// For non-overlapping regions on the same regular grid both implementations
// produce identical results.
//
// Anyone can plug their own algorithm by targeting the [Strategy] interface;
// the entry points in [github.com/tinne26/geomask] accept custom strategies
// directly.
package mask
