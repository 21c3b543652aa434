package geo

import (
	"encoding/json"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ParseLocation reads a [lon, lat] array as decoded from JSON.
func ParseLocation(raw any) (orb.Point, error) {
	arr, ok := raw.([]any)
	if !ok || len(arr) < 2 {
		return orb.Point{}, errors.New("location must be a [lon, lat] array")
	}
	lon, ok := arr[0].(float64)
	if !ok {
		return orb.Point{}, errors.New("location longitude is not a number")
	}
	lat, ok := arr[1].(float64)
	if !ok {
		return orb.Point{}, errors.New("location latitude is not a number")
	}
	pt := orb.Point{lon, lat}
	if !ValidCoordinate(pt) {
		return orb.Point{}, errors.Errorf("location %v is out of range", arr)
	}
	return pt, nil
}

// ParseGeoJSONWaypoint reads a GeoJSON Feature with a Point geometry and an
// optional "name" property.
func ParseGeoJSONWaypoint(record map[string]any) (Waypoint, error) {
	if record == nil {
		return Waypoint{}, errors.New("waypoint feature is missing")
	}
	data, err := json.Marshal(record)
	if err != nil {
		return Waypoint{}, errors.Wrap(err, "can not re-encode waypoint feature")
	}
	feature, err := geojson.UnmarshalFeature(data)
	if err != nil {
		return Waypoint{}, errors.Wrap(err, "can not decode waypoint feature")
	}
	if feature.Geometry == nil || !feature.Geometry.IsPoint() || len(feature.Geometry.Point) < 2 {
		return Waypoint{}, errors.New("waypoint feature has no point geometry")
	}
	pt := orb.Point{feature.Geometry.Point[0], feature.Geometry.Point[1]}
	if !ValidCoordinate(pt) {
		return Waypoint{}, errors.Errorf("waypoint coordinate %v is out of range", feature.Geometry.Point)
	}
	name, _ := feature.PropertyString("name")
	return NewWaypoint(pt, name), nil
}

// GeoJSONFeature renders the waypoint as a GeoJSON Point feature.
func (w Waypoint) GeoJSONFeature() *geojson.Feature {
	f := geojson.NewPointFeature([]float64{w.Coordinate.Lon(), w.Coordinate.Lat()})
	if w.Name != "" {
		f.SetProperty("name", w.Name)
	}
	return f
}
