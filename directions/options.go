package directions

import (
	"fmt"
	"slices"

	"github.com/paulmach/orb"
	"golang.org/x/text/language"

	"github.com/theoremus-urban-solutions/transit-directions/geo"
)

// Waypoint count limits of a single request.
const (
	MinWaypoints = 2
	MaxWaypoints = 25
)

// V4Options holds the fields that only the v4 API understands.
type V4Options struct {
	// InstructionFormat is the markup of step instructions.
	InstructionFormat InstructionFormat

	// IncludesShapes controls whether routes and steps carry geometry.
	IncludesShapes bool
}

// DefaultV4Options returns plain text instructions with shapes.
func DefaultV4Options() V4Options {
	return V4Options{InstructionFormat: InstructionFormatText, IncludesShapes: true}
}

// RouteOptions specifies the criteria for routes returned by the directions
// API.
//
// Waypoints and profile identify the request and are fixed at construction.
// The remaining exported fields shape the output and may be changed before
// the options are dispatched.
type RouteOptions struct {
	waypoints         []geo.Waypoint
	profileIdentifier ProfileIdentifier

	// Version selects the API. V4 is non-nil exactly when Version is V4.
	Version APIVersion
	V4      *V4Options

	// AllowsUTurnAtWaypoint lets the route reverse direction at a waypoint.
	// It defaults to false for driving profiles and true otherwise.
	AllowsUTurnAtWaypoint bool

	IncludesAlternativeRoutes      bool
	IncludesSteps                  bool
	IncludesExitRoundaboutManeuver bool
	IncludesSpokenInstructions     bool
	IncludesVisualInstructions     bool

	ShapeFormat          ShapeFormat
	RouteShapeResolution ShapeResolution

	// DistanceMeasurementSystem defaults to the system customary for Locale.
	DistanceMeasurementSystem MeasurementSystem

	AttributeOptions   AttributeOptions
	RoadClassesToAvoid RoadClasses

	// Locale sets the instruction language. language.Und means unset.
	Locale language.Tag
}

// Option configures a RouteOptions at construction.
type Option func(*RouteOptions)

// WithProfile sets the profile identifier.
func WithProfile(profile ProfileIdentifier) Option {
	return func(o *RouteOptions) {
		if profile != "" {
			o.profileIdentifier = profile
		}
	}
}

// WithLocale sets the locale and the measurement system it implies.
func WithLocale(locale language.Tag) Option {
	return func(o *RouteOptions) {
		o.Locale = locale
		o.DistanceMeasurementSystem = DefaultMeasurementSystem(locale)
	}
}

// WithVersion selects the API version; V4 installs the v4 defaults.
func WithVersion(version APIVersion) Option {
	return func(o *RouteOptions) {
		o.Version = version
		if version == V4 {
			v4 := DefaultV4Options()
			o.V4 = &v4
		} else {
			o.V4 = nil
		}
	}
}

// New returns options for a route through waypoints in order.
//
// It panics unless 2 <= len(waypoints) <= 25.
func New(waypoints []geo.Waypoint, opts ...Option) *RouteOptions {
	if len(waypoints) < MinWaypoints {
		panic("directions: a route requires at least a source and destination")
	}
	if len(waypoints) > MaxWaypoints {
		panic(fmt.Sprintf("directions: a route may not have more than %d waypoints", MaxWaypoints))
	}
	o := &RouteOptions{
		waypoints:                 slices.Clone(waypoints),
		profileIdentifier:         ProfileAutomobile,
		Version:                   V5,
		ShapeFormat:               ShapeFormatPolyline,
		RouteShapeResolution:      ShapeResolutionLow,
		DistanceMeasurementSystem: DefaultMeasurementSystem(language.Und),
		Locale:                    language.Und,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.AllowsUTurnAtWaypoint = !o.profileIdentifier.IsAutomobile()
	return o
}

// NewFromCoordinates wraps each coordinate in an unnamed waypoint.
func NewFromCoordinates(coordinates []orb.Point, opts ...Option) *RouteOptions {
	waypoints := make([]geo.Waypoint, len(coordinates))
	for i, c := range coordinates {
		waypoints[i] = geo.NewWaypoint(c, "")
	}
	return New(waypoints, opts...)
}

// NewFromLocations wraps each geolocation sample in a waypoint carrying its
// accuracy radius.
func NewFromLocations(locations []geo.Location, opts ...Option) *RouteOptions {
	waypoints := make([]geo.Waypoint, len(locations))
	for i, loc := range locations {
		waypoints[i] = geo.FromLocation(loc)
	}
	return New(waypoints, opts...)
}

// NewV4 returns options targeting the v4 API.
func NewV4(waypoints []geo.Waypoint, opts ...Option) *RouteOptions {
	return New(waypoints, append([]Option{WithVersion(V4)}, opts...)...)
}

// Waypoints returns a copy of the request waypoints.
func (o *RouteOptions) Waypoints() []geo.Waypoint {
	return slices.Clone(o.waypoints)
}

// ProfileIdentifier returns the mode of transportation.
func (o *RouteOptions) ProfileIdentifier() ProfileIdentifier {
	return o.profileIdentifier
}

// HasLocale reports whether a locale was set.
func (o *RouteOptions) HasLocale() bool {
	return o.Locale != language.Und
}

// Equal reports whether both options describe the same request. The v4
// fields and the API version are not compared.
func (o *RouteOptions) Equal(other *RouteOptions) bool {
	if o == nil || other == nil {
		return o == other
	}
	return slices.Equal(o.waypoints, other.waypoints) &&
		o.profileIdentifier == other.profileIdentifier &&
		o.AllowsUTurnAtWaypoint == other.AllowsUTurnAtWaypoint &&
		o.IncludesAlternativeRoutes == other.IncludesAlternativeRoutes &&
		o.IncludesSteps == other.IncludesSteps &&
		o.IncludesExitRoundaboutManeuver == other.IncludesExitRoundaboutManeuver &&
		o.IncludesSpokenInstructions == other.IncludesSpokenInstructions &&
		o.IncludesVisualInstructions == other.IncludesVisualInstructions &&
		o.ShapeFormat == other.ShapeFormat &&
		o.RouteShapeResolution == other.RouteShapeResolution &&
		o.DistanceMeasurementSystem == other.DistanceMeasurementSystem &&
		o.AttributeOptions == other.AttributeOptions &&
		o.RoadClassesToAvoid == other.RoadClassesToAvoid &&
		o.Locale.String() == other.Locale.String()
}

// Copy returns an independent copy of o.
func (o *RouteOptions) Copy() *RouteOptions {
	c := *o
	c.waypoints = slices.Clone(o.waypoints)
	if o.V4 != nil {
		v4 := *o.V4
		c.V4 = &v4
	}
	return &c
}
