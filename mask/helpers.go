package mask

import "math"

import "github.com/ctessum/sparse"

// Returns a dense array of the given shape with every element set to NaN,
// the fill sentinel for uncovered cells.
func newFilledNaN(shape ...int) *sparse.DenseArray {
	array := sparse.ZerosDense(shape...)
	fastFillFloat64(array.Elements, math.NaN())
	return array
}

// Around 9 times as fast as using a regular for loop.
func fastFillFloat64(buffer []float64, value float64) {
	if len(buffer) <= 24 { // no-copy case
		for i := range buffer {
			buffer[i] = value
		}
	} else { // copy case
		for i := range buffer[:16] {
			buffer[i] = value
		}
		for i := 16; i < len(buffer); i *= 2 {
			copy(buffer[i:], buffer[:i])
		}
	}
}

func copyFloats(values []float64) []float64 {
	result := make([]float64, len(values))
	copy(result, values)
	return result
}

// Returns the axis in ascending order plus whether it had to be reversed.
// The input is never mutated; the ascending result may alias it.
func ascending(axis []float64) ([]float64, bool) {
	if len(axis) < 2 || axis[0] <= axis[len(axis)-1] { return axis, false }
	reversed := make([]float64, len(axis))
	for i, value := range axis {
		reversed[len(axis)-1-i] = value
	}
	return reversed, true
}
