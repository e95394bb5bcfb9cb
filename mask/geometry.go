package mask

import "fmt"

import "github.com/ctessum/geom"

// Flattens any of the polygonal geometry types we accept into a list of
// rings. Rings may or may not repeat their first point at the end; both
// forms are tolerated everywhere in this package (the closing edge is
// implicit, and a repeated point only adds a degenerate edge).
func polygonRings(polygonal geom.Polygonal) ([]geom.Path, error) {
	switch typed := polygonal.(type) {
	case geom.Polygon:
		return typed, nil
	case *geom.Polygon:
		return *typed, nil
	case geom.MultiPolygon:
		var rings []geom.Path
		for _, polygon := range typed {
			rings = append(rings, polygon...)
		}
		return rings, nil
	case *geom.Bounds:
		return []geom.Path{{
			{X: typed.Min.X, Y: typed.Min.Y},
			{X: typed.Max.X, Y: typed.Min.Y},
			{X: typed.Max.X, Y: typed.Max.Y},
			{X: typed.Min.X, Y: typed.Max.Y},
		}}, nil
	case nil:
		return nil, fmt.Errorf("mask: nil geometry")
	default:
		return nil, fmt.Errorf("mask: unsupported geometry type %T", polygonal)
	}
}

// Even-odd containment test of (x, y) against a set of rings. Holes work
// out naturally: a point inside both the shell and a hole crosses an even
// number of edges and ends up outside.
//
// Points exactly on a boundary are not reliably contained; grid cell
// centers sitting on a region border may fall on either side. That's the
// same compromise the scanline fill makes, which keeps the two strategies
// consistent with each other.
func pointInRings(rings []geom.Path, x, y float64) bool {
	inside := false
	for _, ring := range rings {
		n := len(ring)
		if n < 3 { continue }
		for i := 0; i < n; i++ {
			a, b := ring[i], ring[(i+1)%n]
			if (a.Y > y) != (b.Y > y) {
				crossX := a.X + (y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
				if x < crossX { inside = !inside }
			}
		}
	}
	return inside
}

func pointBounds(x, y float64) *geom.Bounds {
	return &geom.Bounds{
		Min: geom.Point{X: x, Y: y},
		Max: geom.Point{X: x, Y: y},
	}
}
