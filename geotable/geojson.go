package geotable

import "encoding/json"
import "errors"
import "fmt"
import "sort"

import "github.com/ctessum/geom"

// Errors returned by [FromGeoJSON].
var (
	ErrInvalidGeoJSON     = errors.New("geotable: invalid GeoJSON")
	ErrUnsupportedGeoJSON = errors.New("geotable: unsupported GeoJSON geometry type")
)

// The raw GeoJSON shapes we decode into. Only the parts a region table
// needs: features, their properties and their polygonal geometries.
type geoJSONFeatureCollection struct {
	Type     string           `json:"type"`
	Features []geoJSONFeature `json:"features"`
}

type geoJSONFeature struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Geometry   geoJSONGeometry `json:"geometry"`
}

type geoJSONGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// FromGeoJSON builds a [Table] from the bytes of a GeoJSON
// FeatureCollection. Each feature becomes one row: its geometry (Polygon
// or MultiPolygon, anything else is [ErrUnsupportedGeoJSON]) fills the
// geometry column and its properties fill the metadata columns.
//
// Property keys are unioned across all features; a feature that lacks a
// key contributes a missing value to that column, which [Validate] will
// catch later if the column ends up feeding a region catalog. JSON numbers
// decode as float64, as usual.
func FromGeoJSON(data []byte) (*Table, error) {
	var collection geoJSONFeatureCollection
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeoJSON, err)
	}
	if collection.Type != "FeatureCollection" {
		return nil, fmt.Errorf("%w: type %q is not a FeatureCollection", ErrInvalidGeoJSON, collection.Type)
	}

	polygons := make([]geom.Polygonal, len(collection.Features))
	keySet := make(map[string]struct{})
	for i, feature := range collection.Features {
		polygonal, err := feature.Geometry.toPolygonal()
		if err != nil { return nil, err }
		polygons[i] = polygonal
		for key := range feature.Properties {
			keySet[key] = struct{}{}
		}
	}

	table := New(polygons)
	keys := make([]string, 0, len(keySet))
	for key := range keySet {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		column := make(Column, len(collection.Features))
		for i, feature := range collection.Features {
			column[i] = feature.Properties[key] // absent => nil => missing
		}
		table.SetColumn(key, column)
	}
	return table, nil
}

func (self *geoJSONGeometry) toPolygonal() (geom.Polygonal, error) {
	switch self.Type {
	case "Polygon":
		var coords [][][]float64
		if err := json.Unmarshal(self.Coordinates, &coords); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGeoJSON, err)
		}
		return polygonFromCoords(coords)
	case "MultiPolygon":
		var coords [][][][]float64
		if err := json.Unmarshal(self.Coordinates, &coords); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGeoJSON, err)
		}
		multi := make(geom.MultiPolygon, len(coords))
		for i, polyCoords := range coords {
			polygon, err := polygonFromCoords(polyCoords)
			if err != nil { return nil, err }
			multi[i] = polygon
		}
		return multi, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedGeoJSON, self.Type)
	}
}

func polygonFromCoords(coords [][][]float64) (geom.Polygon, error) {
	polygon := make(geom.Polygon, len(coords))
	for r, ring := range coords {
		polygon[r] = make([]geom.Point, len(ring))
		for p, position := range ring {
			if len(position) < 2 {
				return nil, fmt.Errorf("%w: position with %d coordinates", ErrInvalidGeoJSON, len(position))
			}
			polygon[r][p] = geom.Point{X: position[0], Y: position[1]}
		}
	}
	return polygon, nil
}
