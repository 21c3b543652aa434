package archive

import (
	"github.com/paulmach/orb"

	"github.com/theoremus-urban-solutions/transit-directions/directions"
	"github.com/theoremus-urban-solutions/transit-directions/geo"
)

// SchemaVersion is the record layout written by Encode.
const SchemaVersion = 1

// Waypoint is the persisted form of geo.Waypoint. Coordinates are stored as
// given; range checks belong to whoever collected them.
type Waypoint struct {
	Latitude           *float64 `json:"latitude" validate:"required"`
	Longitude          *float64 `json:"longitude" validate:"required"`
	Name               string   `json:"name,omitempty"`
	CoordinateAccuracy float64  `json:"coordinateAccuracy"`
	Heading            float64  `json:"heading"`
	HeadingAccuracy    float64  `json:"headingAccuracy"`
}

// Record is the persisted form of directions.RouteOptions.
//
// Enumerations and option sets are stored as their canonical tokens.
// Booleans missing from a record decode as false.
type Record struct {
	SchemaVersion int `json:"schemaVersion" validate:"gte=0"`

	Waypoints             []Waypoint `json:"waypoints" validate:"required,min=2,max=25,dive"`
	AllowsUTurnAtWaypoint bool       `json:"allowsUTurnAtWaypoint"`
	ProfileIdentifier     *string    `json:"profileIdentifier" validate:"required,min=1"`

	IncludesAlternativeRoutes      bool `json:"includesAlternativeRoutes"`
	IncludesSteps                  bool `json:"includesSteps"`
	IncludesExitRoundaboutManeuver bool `json:"includesExitRoundaboutManeuver"`
	IncludesSpokenInstructions     bool `json:"includesSpokenInstructions"`
	IncludesVisualInstructions     bool `json:"includesVisualInstructions"`

	ShapeFormat               string  `json:"shapeFormat"`
	RouteShapeResolution      string  `json:"routeShapeResolution"`
	AttributeOptions          *string `json:"attributeOptions" validate:"required"`
	Locale                    *string `json:"locale,omitempty"`
	DistanceMeasurementSystem string  `json:"distanceMeasurementSystem"`
	RoadClassesToAvoid        string  `json:"roadClassesToAvoid"`
}

func newWaypoint(w geo.Waypoint) Waypoint {
	lat, lon := w.Coordinate.Lat(), w.Coordinate.Lon()
	return Waypoint{
		Latitude:           &lat,
		Longitude:          &lon,
		Name:               w.Name,
		CoordinateAccuracy: w.CoordinateAccuracy,
		Heading:            w.Heading,
		HeadingAccuracy:    w.HeadingAccuracy,
	}
}

// waypoint assumes the record passed validation.
func (w Waypoint) waypoint() geo.Waypoint {
	return geo.Waypoint{
		Coordinate:         orb.Point{*w.Longitude, *w.Latitude},
		Name:               w.Name,
		CoordinateAccuracy: w.CoordinateAccuracy,
		Heading:            w.Heading,
		HeadingAccuracy:    w.HeadingAccuracy,
	}
}

// Encode captures the persisted fields of o.
func Encode(o *directions.RouteOptions) *Record {
	waypoints := o.Waypoints()
	r := &Record{
		SchemaVersion:                  SchemaVersion,
		Waypoints:                      make([]Waypoint, len(waypoints)),
		AllowsUTurnAtWaypoint:          o.AllowsUTurnAtWaypoint,
		IncludesAlternativeRoutes:      o.IncludesAlternativeRoutes,
		IncludesSteps:                  o.IncludesSteps,
		IncludesExitRoundaboutManeuver: o.IncludesExitRoundaboutManeuver,
		IncludesSpokenInstructions:     o.IncludesSpokenInstructions,
		IncludesVisualInstructions:     o.IncludesVisualInstructions,
		ShapeFormat:                    o.ShapeFormat.String(),
		RouteShapeResolution:           o.RouteShapeResolution.String(),
		DistanceMeasurementSystem:      o.DistanceMeasurementSystem.String(),
		RoadClassesToAvoid:             o.RoadClassesToAvoid.String(),
	}
	for i, w := range waypoints {
		r.Waypoints[i] = newWaypoint(w)
	}
	profile := string(o.ProfileIdentifier())
	r.ProfileIdentifier = &profile
	attributes := o.AttributeOptions.String()
	r.AttributeOptions = &attributes
	if o.HasLocale() {
		locale := o.Locale.String()
		r.Locale = &locale
	}
	return r
}
