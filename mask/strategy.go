package mask

import "errors"
import "strconv"

import "github.com/ctessum/geom"
import "github.com/ctessum/sparse"

// Strategy is the interface shared by all masking algorithms. Both methods
// label coordinates with the number of the containing region: MaskGrid over
// the cartesian product of the two axes, MaskPoints over paired scattered
// coordinates.
//
// Implementations must not retain or mutate the polygons, must allocate a
// fresh result array per call, and must report NaN for uncovered cells.
// Regions are identified by position: numbers[i] is the label burned for
// polygons[i], and the two slices always have the same length.
type Strategy interface {
	// Labels every cell of the lon×lat grid. The returned array has
	// shape (len(lat), len(lon)): latitude selects the row, longitude
	// the column.
	MaskGrid(polygons []geom.Polygonal, numbers []float64, lon, lat []float64) (*sparse.DenseArray, error)

	// Labels scattered points given as paired coordinate slices of equal
	// length. The returned array has shape (len(lon)).
	MaskPoints(polygons []geom.Polygonal, numbers []float64, lon, lat []float64) (*sparse.DenseArray, error)
}

// Method names one of the built-in masking algorithms. The zero value asks
// [Select] to choose automatically.
type Method string

const (
	MethodAuto      Method = ""
	MethodRasterize Method = "rasterize"
	MethodShapely   Method = "shapely"

	// methodLegacy existed in older versions of this code and was removed.
	// It's still recognized by [Select] only to be rejected with a clear
	// error instead of an "unknown method" one.
	methodLegacy Method = "legacy"
)

// Returned by [Select] when the removed "legacy" method is requested.
var ErrLegacyMethod = errors.New("method 'legacy' not supported")

// Returned by [Rasterize.MaskPoints], as scanline burning only makes sense
// on a regular grid.
var ErrScatteredRasterize = errors.New("mask: can't rasterize scattered points, use the shapely method")

// InvalidMethodError reports a method name that doesn't match any known
// masking algorithm.
type InvalidMethodError struct {
	Method Method
}

func (self *InvalidMethodError) Error() string {
	return "invalid method " + strconv.Quote(string(self.Method)) +
		" (valid methods are \"rasterize\" and \"shapely\")"
}

// IrregularGridError reports a grid axis that the [Rasterize] strategy
// can't handle. Axis is "lon" or "lat".
type IrregularGridError struct {
	Axis   string
	Reason string
}

func (self *IrregularGridError) Error() string {
	return "can't rasterize: " + self.Axis + " coordinates " + self.Reason
}

// Select translates a [Method] into a [Strategy], with wrapLon forwarded
// to the chosen implementation (see [Contains.WrapLon]).
//
// [MethodAuto] picks [Rasterize] when both axes are equally spaced grids of
// at least two points, and [Contains] otherwise; pass nil axes to force the
// exact strategy (that's what the scattered-point entry points do).
func Select(method Method, wrapLon bool, lon, lat []float64) (Strategy, error) {
	switch method {
	case MethodRasterize:
		return &Rasterize{WrapLon: wrapLon}, nil
	case MethodShapely:
		return &Contains{WrapLon: wrapLon}, nil
	case MethodAuto:
		if len(lon) >= 2 && len(lat) >= 2 && EquallySpaced(lon) && EquallySpaced(lat) {
			return &Rasterize{WrapLon: wrapLon}, nil
		}
		return &Contains{WrapLon: wrapLon}, nil
	case methodLegacy:
		return nil, ErrLegacyMethod
	default:
		return nil, &InvalidMethodError{Method: method}
	}
}
