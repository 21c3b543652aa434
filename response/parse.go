package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/transit-directions/directions"
	"github.com/theoremus-urban-solutions/transit-directions/geo"
	"github.com/theoremus-urban-solutions/transit-directions/internal"
	"github.com/theoremus-urban-solutions/transit-directions/route"
)

var (
	// ErrInvalidPayload is returned when the reply is not a JSON object.
	ErrInvalidPayload = errors.New("response: payload is not a JSON object")
	// ErrMissingOrigin is returned for v4 replies without a usable origin.
	ErrMissingOrigin = errors.New("response: origin is missing or malformed")
	// ErrMissingDestination is returned for v4 replies without a usable destination.
	ErrMissingDestination = errors.New("response: destination is missing or malformed")
)

// Result is the interpretation of one reply.
type Result struct {
	Waypoints []geo.Waypoint `json:"waypoints"`

	// Routes is nil when the reply carries no "routes" key.
	Routes []route.Route `json:"routes"`

	// Warnings counts dropped records per warning type.
	Warnings map[string]int `json:"warnings,omitempty"`
}

// Parser parses replies and logs what it had to drop.
type Parser struct {
	logger *zap.Logger
}

// NewParser returns a parser logging to logger; nil disables logging.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// Parse interprets a reply to the request described by o.
func Parse(o *directions.RouteOptions, payload map[string]any) (Result, error) {
	return NewParser(nil).Parse(o, payload)
}

// ParseJSON decodes data and interprets it with Parse.
func ParseJSON(o *directions.RouteOptions, data []byte) (Result, error) {
	return NewParser(nil).ParseJSON(o, data)
}

// ParseJSON decodes data and interprets it with Parse.
func (p *Parser) ParseJSON(o *directions.RouteOptions, data []byte) (Result, error) {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if payload == nil {
		return Result{}, ErrInvalidPayload
	}
	return p.Parse(o, payload)
}

// Parse interprets a reply to the request described by o.
func (p *Parser) Parse(o *directions.RouteOptions, payload map[string]any) (Result, error) {
	if payload == nil {
		return Result{}, ErrInvalidPayload
	}
	warnings := NewWarningAggregator()
	defer warnings.LogAll(p.logger, string(o.ProfileIdentifier()))

	var res Result
	var err error
	if o.Version == directions.V4 {
		res, err = parseV4(o, payload, warnings)
	} else {
		res = parseV5(o, payload, warnings)
	}
	if err != nil {
		return Result{}, err
	}
	res.Warnings = warnings.Counts()
	return res, nil
}

func parseV5(o *directions.RouteOptions, payload map[string]any, warnings *WarningAggregator) Result {
	local := o.Waypoints()
	waypoints := local
	// Legs are paired with consecutive entries of legEnds, which keeps the
	// request's waypoint wherever the reply's could not be read.
	legEnds := local

	if apiWaypoints, ok := internal.Array(payload, "waypoints"); ok {
		waypoints = make([]geo.Waypoint, 0, len(apiWaypoints))
		legEnds = slices.Clone(local)
		for i, raw := range apiWaypoints {
			if i >= len(local) {
				break
			}
			wp, err := resolveWaypoint(raw, local[i])
			if err != nil {
				warnings.Add(WarningWaypointDropped, fmt.Sprintf("#%d: %v", i, err))
				continue
			}
			waypoints = append(waypoints, wp)
			legEnds[i] = wp
		}
	}

	return Result{
		Waypoints: waypoints,
		Routes:    parseRoutes(payload, legEnds, o, route.New, warnings),
	}
}

// resolveWaypoint takes the coordinate from the reply. The local name wins
// over the name the API suggests.
func resolveWaypoint(raw any, local geo.Waypoint) (geo.Waypoint, error) {
	rec, ok := raw.(map[string]any)
	if !ok {
		return geo.Waypoint{}, errors.New("not an object")
	}
	coordinate, err := geo.ParseLocation(rec["location"])
	if err != nil {
		return geo.Waypoint{}, err
	}
	name := local.Name
	if name == "" {
		name, _ = internal.String(rec, "name")
	}
	return geo.NewWaypoint(coordinate, name), nil
}

func parseV4(o *directions.RouteOptions, payload map[string]any, warnings *WarningAggregator) (Result, error) {
	originRecord, _ := internal.Object(payload, "origin")
	origin, err := geo.ParseGeoJSONWaypoint(originRecord)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMissingOrigin, err)
	}
	destinationRecord, _ := internal.Object(payload, "destination")
	destination, err := geo.ParseGeoJSONWaypoint(destinationRecord)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMissingDestination, err)
	}

	waypoints := []geo.Waypoint{origin}
	if intermediates, ok := internal.Array(payload, "waypoints"); ok {
		for i, raw := range intermediates {
			rec, _ := raw.(map[string]any)
			wp, err := geo.ParseGeoJSONWaypoint(rec)
			if err != nil {
				warnings.Add(WarningIntermediateDropped, fmt.Sprintf("#%d: %v", i, err))
				continue
			}
			waypoints = append(waypoints, wp)
		}
	}
	waypoints = append(waypoints, destination)

	return Result{
		Waypoints: waypoints,
		Routes:    parseRoutes(payload, waypoints, o, route.NewV4, warnings),
	}, nil
}

type routeConstructor func(map[string]any, []geo.Waypoint, *directions.RouteOptions) (route.Route, error)

func parseRoutes(payload map[string]any, waypoints []geo.Waypoint, o *directions.RouteOptions, newRoute routeConstructor, warnings *WarningAggregator) []route.Route {
	records, ok := internal.Array(payload, "routes")
	if !ok {
		return nil
	}
	routes := make([]route.Route, 0, len(records))
	for i, raw := range records {
		rec, _ := raw.(map[string]any)
		r, err := newRoute(rec, waypoints, o)
		if err != nil {
			warnings.Add(WarningRouteDropped, fmt.Sprintf("#%d: %v", i, err))
			continue
		}
		routes = append(routes, r)
	}
	return routes
}
