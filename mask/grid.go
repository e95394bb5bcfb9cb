package mask

import "gonum.org/v1/gonum/floats"

// Relative tolerance used when deciding whether grid steps are all equal.
// Coordinate axes often come from accumulated floating point additions, so
// exact equality would reject perfectly reasonable grids.
const spacingTolerance = 1e-8

// EquallySpaced reports whether the steps between consecutive coordinates
// are all equal (within a small relative tolerance). Axes of fewer than two
// points are trivially equally spaced. Descending axes are fine; axes that
// change direction are not, as their steps change sign.
func EquallySpaced(axis []float64) bool {
	if len(axis) < 2 { return true }
	steps := make([]float64, len(axis)-1)
	for i := 1; i < len(axis); i++ {
		steps[i-1] = axis[i] - axis[i-1]
	}
	lo, hi := floats.Min(steps), floats.Max(steps)
	scale := max(abs64(lo), abs64(hi))
	if scale == 0 { return false } // repeated coordinates are not a grid
	return (hi-lo)/scale <= spacingTolerance
}

// Axis returns n coordinates linearly spaced from lo to hi, both inclusive.
// It's a convenience for building cell-center axes:
//
//	lon := mask.Axis(-179.5, 179.5, 360)
//	lat := mask.Axis(-89.5, 89.5, 180)
//
// Panics if n < 2, like the underlying [floats.Span].
func Axis(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

func abs64(value float64) float64 {
	if value >= 0 { return value }
	return -value
}
