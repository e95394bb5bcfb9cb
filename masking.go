package geomask

import "fmt"

import "github.com/ctessum/geom"
import "github.com/ctessum/sparse"

import "github.com/tinne26/geomask/geotable"
import "github.com/tinne26/geomask/mask"

// MaskOptions configures the package-level masking entry points. The zero
// value (or a nil pointer) is a valid configuration: automatic method
// selection, row-position labels, no longitude wrapping.
type MaskOptions struct {
	// The masking algorithm to use. Leave empty for automatic selection
	// (see [mask.Select]).
	Method mask.Method

	// Name of the table column supplying the output labels. When empty,
	// regions are labeled by row position (0-based). The column goes
	// through [geotable.Validate] before any geometry work happens, and
	// naming a column is only possible with a [*geotable.Table] source:
	// a [geotable.Series] has no columns to resolve.
	Numbers string

	// Also match coordinates shifted by ±360° of longitude, for catalogs
	// and grids using different longitude conventions.
	WrapLon bool

	// When set, Strategy overrides Method entirely and is used as-is
	// (WrapLon is then up to the custom implementation too).
	Strategy mask.Strategy
}

// Mask labels every cell of the lon×lat grid with the number of the region
// containing its center, NaN where no region does. The source polygons are
// taken in row order; see the [mask] subpackage for how each strategy
// breaks ties between overlapping regions.
//
// The result has shape (len(lat), len(lon)) with the input axes attached
// verbatim.
func Mask(source geotable.Source, lon, lat []float64, opts *MaskOptions) (*mask.Field, error) {
	polygons, numbers, strategy, err := resolveMasking(source, lon, lat, opts)
	if err != nil { return nil, err }
	data, err := strategy.MaskGrid(polygons, numbers, lon, lat)
	if err != nil { return nil, err }
	return newField(lon, lat, data), nil
}

// MaskPoints is the scattered variant of [Mask]: lon and lat are paired
// coordinate slices of equal length and the result is 1-D, one label per
// point. The rasterize method can't handle scattered points; automatic
// selection always picks the exact strategy here.
func MaskPoints(source geotable.Source, lon, lat []float64, opts *MaskOptions) (*mask.Field, error) {
	if len(lon) != len(lat) { return nil, errPairedCoords(len(lon), len(lat)) }
	polygons, numbers, strategy, err := resolveMasking(source, nil, nil, opts)
	if err != nil { return nil, err }
	data, err := strategy.MaskPoints(polygons, numbers, lon, lat)
	if err != nil { return nil, err }
	return newField(lon, lat, data), nil
}

// Mask3D computes one boolean layer per region instead of a flat mask, so
// overlapping regions don't shadow each other. See [mask.Layers].
func Mask3D(source geotable.Source, lon, lat []float64, opts *MaskOptions) (*mask.Field3D, error) {
	polygons, numbers, strategy, err := resolveMasking(source, lon, lat, opts)
	if err != nil { return nil, err }
	return mask.Layers(strategy, polygons, numbers, lon, lat)
}

// Shared front door for all masking entry points: type-checks the source,
// resolves and validates the label numbers and picks the strategy. All of
// it happens before any geometry work, so invalid metadata never triggers
// expensive rasterization.
func resolveMasking(source geotable.Source, lon, lat []float64, opts *MaskOptions) ([]geom.Polygonal, []float64, mask.Strategy, error) {
	if opts == nil { opts = &MaskOptions{} }

	var polygons []geom.Polygonal
	var table *geotable.Table
	switch typed := source.(type) {
	case *geotable.Table:
		if typed == nil { return nil, nil, nil, ErrInvalidSource }
		table = typed
		polygons = typed.Polygons()
	case geotable.Series:
		polygons = typed
	default:
		return nil, nil, nil, ErrInvalidSource
	}

	numbers, err := resolveNumbers(table, len(polygons), opts.Numbers)
	if err != nil { return nil, nil, nil, err }

	strategy := opts.Strategy
	if strategy == nil {
		strategy, err = mask.Select(opts.Method, opts.WrapLon, lon, lat)
		if err != nil { return nil, nil, nil, err }
	}
	return polygons, numbers, strategy, nil
}

// Output labels: the named column (resolved and validated exactly like in
// [FromTable]) or row positions when no column is named.
func resolveNumbers(table *geotable.Table, numRows int, columnName string) ([]float64, error) {
	if columnName == "" {
		numbers := make([]float64, numRows)
		for i := range numbers { numbers[i] = float64(i) }
		return numbers, nil
	}
	if table == nil {
		return nil, &geotable.ColumnNotFoundError{Name: columnName}
	}
	column, err := resolveColumn(table, columnName, "numbers")
	if err != nil { return nil, err }
	return column.Floats()
}

func newField(lon, lat []float64, data *sparse.DenseArray) *mask.Field {
	return &mask.Field{
		Lon:  append([]float64(nil), lon...),
		Lat:  append([]float64(nil), lat...),
		Data: data,
	}
}

func errPairedCoords(numLon, numLat int) error {
	return fmt.Errorf("geomask: paired coordinates differ in length (%d lon vs %d lat)", numLon, numLat)
}
