package directions

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryItem is one query parameter. Params keeps them ordered.
type QueryItem struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Queries returns each waypoint as a "lon,lat" path component.
func (o *RouteOptions) Queries() []string {
	queries := make([]string, len(o.waypoints))
	for i, wp := range o.waypoints {
		queries[i] = wp.Query()
	}
	return queries
}

// Path returns the request path relative to the API host.
func (o *RouteOptions) Path() string {
	if o.Version == V4 {
		return o.pathV4()
	}
	return "directions/v5/" + string(o.profileIdentifier) + "/" + strings.Join(o.Queries(), ";") + ".json"
}

func (o *RouteOptions) pathV4() string {
	queries := o.Queries()
	if len(queries) == 0 {
		panic("directions: no query")
	}
	profile := strings.ReplaceAll(string(o.profileIdentifier), "/", ".")
	return "v4/directions/" + profile + "/" + strings.Join(queries, ";") + ".json"
}

// Params returns the query parameters of the request in a stable order.
func (o *RouteOptions) Params() []QueryItem {
	if o.Version == V4 {
		return o.paramsV4()
	}

	params := []QueryItem{
		{"geometries", o.ShapeFormat.String()},
		{"overview", o.RouteShapeResolution.String()},
		{"steps", strconv.FormatBool(o.IncludesSteps)},
		{"continue_straight", strconv.FormatBool(!o.AllowsUTurnAtWaypoint)},
		{"alternatives", strconv.FormatBool(o.IncludesAlternativeRoutes)},
	}

	hasHeading, hasAccuracy := false, false
	for _, wp := range o.waypoints {
		hasHeading = hasHeading || wp.HasHeading()
		hasAccuracy = hasAccuracy || wp.HasCoordinateAccuracy()
	}
	if hasHeading {
		headings := make([]string, len(o.waypoints))
		for i, wp := range o.waypoints {
			headings[i] = wp.HeadingDescription()
		}
		params = append(params, QueryItem{"bearings", strings.Join(headings, ";")})
	}
	if hasAccuracy {
		radiuses := make([]string, len(o.waypoints))
		for i, wp := range o.waypoints {
			radiuses[i] = wp.AccuracyDescription()
		}
		params = append(params, QueryItem{"radiuses", strings.Join(radiuses, ";")})
	}

	if !o.AttributeOptions.IsEmpty() {
		params = append(params, QueryItem{"annotations", o.AttributeOptions.String()})
	}
	if o.IncludesExitRoundaboutManeuver {
		params = append(params, QueryItem{"roundabout_exits", "true"})
	}
	if o.HasLocale() {
		params = append(params, QueryItem{"language", o.Locale.String()})
	}
	if o.IncludesSpokenInstructions {
		params = append(params,
			QueryItem{"voice_instructions", "true"},
			QueryItem{"voice_units", o.DistanceMeasurementSystem.String()},
		)
	}
	if o.IncludesVisualInstructions {
		params = append(params, QueryItem{"banner_instructions", "true"})
	}
	if !o.RoadClassesToAvoid.IsEmpty() {
		params = append(params, QueryItem{"exclude", o.RoadClassesToAvoid.String()})
	}
	return params
}

// paramsV4 emits only what the v4 API accepts; the other flags are ignored.
func (o *RouteOptions) paramsV4() []QueryItem {
	v4 := DefaultV4Options()
	if o.V4 != nil {
		v4 = *o.V4
	}
	geometry := "false"
	if v4.IncludesShapes {
		geometry = o.ShapeFormat.String()
	}
	return []QueryItem{
		{"alternatives", strconv.FormatBool(o.IncludesAlternativeRoutes)},
		{"instructions", v4.InstructionFormat.String()},
		{"geometry", geometry},
		{"steps", strconv.FormatBool(o.IncludesSteps)},
	}
}

// Query returns Params as url.Values.
func (o *RouteOptions) Query() url.Values {
	values := url.Values{}
	for _, p := range o.Params() {
		values.Add(p.Name, p.Value)
	}
	return values
}

// Param looks up a parameter by name.
func (o *RouteOptions) Param(name string) (string, bool) {
	for _, p := range o.Params() {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}
