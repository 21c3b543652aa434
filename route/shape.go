package route

import (
	"encoding/json"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// decodeShape reads a geometry value: a string is an encoded polyline, an
// object is a GeoJSON LineString. A missing geometry is not an error.
func decodeShape(raw any) (orb.LineString, string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, "", nil
	case string:
		return nil, v, nil
	case map[string]any:
		g, err := unmarshalGeometry(v)
		if err != nil {
			return nil, "", err
		}
		if !g.IsLineString() {
			return nil, "", errors.Errorf("unexpected geometry type %q", g.Type)
		}
		line := make(orb.LineString, 0, len(g.LineString))
		for _, c := range g.LineString {
			if len(c) < 2 {
				return nil, "", errors.New("coordinate has fewer than two values")
			}
			line = append(line, orb.Point{c[0], c[1]})
		}
		return line, "", nil
	default:
		return nil, "", errors.Errorf("unexpected geometry value %T", raw)
	}
}

func decodePoint(raw map[string]any) (orb.Point, error) {
	g, err := unmarshalGeometry(raw)
	if err != nil {
		return orb.Point{}, err
	}
	if !g.IsPoint() || len(g.Point) < 2 {
		return orb.Point{}, errors.New("geometry is not a point")
	}
	return orb.Point{g.Point[0], g.Point[1]}, nil
}

func unmarshalGeometry(raw map[string]any) (*geojson.Geometry, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(err, "can not re-encode geometry")
	}
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, errors.Wrap(err, "can not decode geometry")
	}
	return g, nil
}
