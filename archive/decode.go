package archive

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/theoremus-urban-solutions/transit-directions/directions"
	"github.com/theoremus-urban-solutions/transit-directions/geo"
)

var (
	// ErrInvalidRecord is returned when a record cannot be turned back into
	// options.
	ErrInvalidRecord = errors.New("archive: invalid record")
	// ErrUnsupportedSchema is returned, alongside ErrInvalidRecord, for
	// records written by a newer schema.
	ErrUnsupportedSchema = errors.New("archive: unsupported schema version")
)

var validate = validator.New()

// Decode rebuilds options from r.
//
// A record with missing or malformed waypoints, a missing profile, unknown
// shape tokens or unparseable attribute options is rejected with
// ErrInvalidRecord. An unknown measurement system falls back to the default
// for the locale, unparseable road classes decode as none and an
// unparseable locale as unset.
func Decode(r *Record) (*directions.RouteOptions, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: record is missing", ErrInvalidRecord)
	}
	if r.SchemaVersion > SchemaVersion {
		return nil, fmt.Errorf("%w: %w: %d", ErrInvalidRecord, ErrUnsupportedSchema, r.SchemaVersion)
	}
	if err := validate.Struct(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	shapeFormat, ok := directions.ParseShapeFormat(r.ShapeFormat)
	if !ok {
		return nil, fmt.Errorf("%w: unknown shape format %q", ErrInvalidRecord, r.ShapeFormat)
	}
	resolution, ok := directions.ParseShapeResolution(r.RouteShapeResolution)
	if !ok {
		return nil, fmt.Errorf("%w: unknown shape resolution %q", ErrInvalidRecord, r.RouteShapeResolution)
	}
	attributes, ok := directions.ParseAttributeOptions(splitTokens(*r.AttributeOptions))
	if !ok {
		return nil, fmt.Errorf("%w: unknown attribute options %q", ErrInvalidRecord, *r.AttributeOptions)
	}

	waypoints := make([]geo.Waypoint, len(r.Waypoints))
	for i, w := range r.Waypoints {
		waypoints[i] = w.waypoint()
	}

	o := directions.New(waypoints, directions.WithProfile(directions.ProfileIdentifier(*r.ProfileIdentifier)))
	o.AllowsUTurnAtWaypoint = r.AllowsUTurnAtWaypoint
	o.IncludesAlternativeRoutes = r.IncludesAlternativeRoutes
	o.IncludesSteps = r.IncludesSteps
	o.IncludesExitRoundaboutManeuver = r.IncludesExitRoundaboutManeuver
	o.IncludesSpokenInstructions = r.IncludesSpokenInstructions
	o.IncludesVisualInstructions = r.IncludesVisualInstructions
	o.ShapeFormat = shapeFormat
	o.RouteShapeResolution = resolution
	o.AttributeOptions = attributes

	o.Locale = language.Und
	if r.Locale != nil {
		if tag, ok := directions.ParseLocale(*r.Locale); ok {
			o.Locale = tag
		}
	}
	if system, ok := directions.ParseMeasurementSystem(r.DistanceMeasurementSystem); ok {
		o.DistanceMeasurementSystem = system
	} else {
		o.DistanceMeasurementSystem = directions.DefaultMeasurementSystem(o.Locale)
	}
	if classes, ok := directions.ParseRoadClasses(splitTokens(r.RoadClassesToAvoid)); ok {
		o.RoadClassesToAvoid = classes
	}
	return o, nil
}

func splitTokens(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
