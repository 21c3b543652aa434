package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/theoremus-urban-solutions/transit-directions/directions"
	"github.com/theoremus-urban-solutions/transit-directions/geo"
)

// parseCoordinates reads "lon,lat;lon,lat", the same layout the request path
// uses.
func parseCoordinates(s string) ([]orb.Point, error) {
	var points []orb.Point
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.Split(pair, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("coordinate %q is not lon,lat", pair)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %q: %w", pair, err)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %q: %w", pair, err)
		}
		p := orb.Point{lon, lat}
		if !geo.ValidCoordinate(p) {
			return nil, fmt.Errorf("coordinate %q is out of range", pair)
		}
		points = append(points, p)
	}
	if len(points) < directions.MinWaypoints || len(points) > directions.MaxWaypoints {
		return nil, fmt.Errorf("need %d to %d waypoints, got %d", directions.MinWaypoints, directions.MaxWaypoints, len(points))
	}
	return points, nil
}
