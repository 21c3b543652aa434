package geo

import (
	"fmt"
	"math"
	"strconv"

	"github.com/paulmach/orb"
)

// Unspecified marks an accuracy or heading that was not provided.
const Unspecified = -1.0

// Waypoint is a location that a route visits.
//
// Waypoint values are comparable with ==; two waypoints are the same stop
// when every field matches.
type Waypoint struct {
	// Coordinate is the waypoint position as [lon, lat].
	Coordinate orb.Point `json:"coordinate"`

	// Name is a human-readable label. Empty means no name.
	Name string `json:"name,omitempty"`

	// CoordinateAccuracy is the maximum allowed deviation from Coordinate in
	// meters. Negative means unlimited.
	CoordinateAccuracy float64 `json:"coordinateAccuracy"`

	// Heading is the direction of travel at the waypoint in degrees
	// clockwise from true north. Negative means unspecified.
	Heading float64 `json:"heading"`

	// HeadingAccuracy is the tolerated deviation from Heading in degrees.
	HeadingAccuracy float64 `json:"headingAccuracy"`
}

// Location is a geolocation sample, such as a fix reported by a device.
type Location struct {
	Coordinate orb.Point

	// HorizontalAccuracy is the radius of uncertainty in meters. Negative
	// means the fix carries no accuracy.
	HorizontalAccuracy float64
}

// NewWaypoint returns a waypoint with the given coordinate and name and no
// accuracy or heading constraints.
func NewWaypoint(coordinate orb.Point, name string) Waypoint {
	return Waypoint{
		Coordinate:         coordinate,
		Name:               name,
		CoordinateAccuracy: Unspecified,
		Heading:            Unspecified,
		HeadingAccuracy:    Unspecified,
	}
}

// FromLocation converts a geolocation sample into a waypoint, carrying the
// horizontal accuracy over as the coordinate accuracy.
func FromLocation(loc Location) Waypoint {
	wp := NewWaypoint(loc.Coordinate, "")
	wp.CoordinateAccuracy = loc.HorizontalAccuracy
	return wp
}

// HasHeading reports whether a heading was specified.
func (w Waypoint) HasHeading() bool {
	return w.Heading >= 0
}

// HasCoordinateAccuracy reports whether a coordinate accuracy was specified.
func (w Waypoint) HasCoordinateAccuracy() bool {
	return w.CoordinateAccuracy >= 0
}

// Query returns the coordinate in "lon,lat" form.
func (w Waypoint) Query() string {
	return formatFloat(w.Coordinate.Lon()) + "," + formatFloat(w.Coordinate.Lat())
}

// HeadingDescription returns "heading,accuracy" normalised to [0, 360), or
// an empty string when no heading was specified.
func (w Waypoint) HeadingDescription() string {
	if !w.HasHeading() {
		return ""
	}
	return formatFloat(math.Mod(w.Heading, 360)) + "," + formatFloat(math.Mod(w.HeadingAccuracy, 360))
}

// AccuracyDescription returns the coordinate accuracy as a radius string, or
// "unlimited".
func (w Waypoint) AccuracyDescription() string {
	if !w.HasCoordinateAccuracy() {
		return "unlimited"
	}
	return formatFloat(w.CoordinateAccuracy)
}

func (w Waypoint) String() string {
	if w.Name != "" {
		return fmt.Sprintf("%s (%s)", w.Name, w.Query())
	}
	return w.Query()
}

// ValidCoordinate reports whether p lies within WGS84 bounds.
func ValidCoordinate(p orb.Point) bool {
	return p.Lat() >= -90 && p.Lat() <= 90 && p.Lon() >= -180 && p.Lon() <= 180
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
