package geomask

import "errors"

import "github.com/tinne26/geomask/mask"

// Returned by the [Regions] masking methods when the options name a
// numbers column: a catalog already carries its own region numbers, so
// column selection only applies to the package-level entry points.
var ErrCatalogNumbers = errors.New("geomask: a region catalog labels masks with its own numbers, Numbers can't be set")

// Mask labels every cell of the lon×lat grid with the number of the
// containing catalog region, NaN where no region contains it. Same
// semantics as the package-level [Mask], with the catalog's own region
// numbers as output labels.
func (self *Regions) Mask(lon, lat []float64, opts *MaskOptions) (*mask.Field, error) {
	numbers, strategy, err := self.resolveMasking(lon, lat, opts)
	if err != nil { return nil, err }
	data, err := strategy.MaskGrid(self.polygons, numbers, lon, lat)
	if err != nil { return nil, err }
	return newField(lon, lat, data), nil
}

// MaskPoints is the scattered variant of [Regions.Mask]; see the
// package-level [MaskPoints].
func (self *Regions) MaskPoints(lon, lat []float64, opts *MaskOptions) (*mask.Field, error) {
	if len(lon) != len(lat) { return nil, errPairedCoords(len(lon), len(lat)) }
	numbers, strategy, err := self.resolveMasking(nil, nil, opts)
	if err != nil { return nil, err }
	data, err := strategy.MaskPoints(self.polygons, numbers, lon, lat)
	if err != nil { return nil, err }
	return newField(lon, lat, data), nil
}

// Mask3D computes one boolean layer per catalog region; see [mask.Layers].
func (self *Regions) Mask3D(lon, lat []float64, opts *MaskOptions) (*mask.Field3D, error) {
	numbers, strategy, err := self.resolveMasking(lon, lat, opts)
	if err != nil { return nil, err }
	return mask.Layers(strategy, self.polygons, numbers, lon, lat)
}

func (self *Regions) resolveMasking(lon, lat []float64, opts *MaskOptions) ([]float64, mask.Strategy, error) {
	if opts == nil { opts = &MaskOptions{} }
	if opts.Numbers != "" { return nil, nil, ErrCatalogNumbers }

	numbers := make([]float64, len(self.numbers))
	for i, number := range self.numbers {
		numbers[i] = float64(number)
	}
	strategy := opts.Strategy
	if strategy == nil {
		var err error
		strategy, err = mask.Select(opts.Method, opts.WrapLon, lon, lat)
		if err != nil { return nil, nil, err }
	}
	return numbers, strategy, nil
}
