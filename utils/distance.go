package utils

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/theoremus-urban-solutions/transit-directions/directions"
)

// Unit conversion constants
const (
	MetersPerKilometer = 1000.0
	MilesPerKilometer  = 0.621371
	FeetPerMile        = 5280.0
	MetersPerMile      = MetersPerKilometer / MilesPerKilometer
)

// PresentableDistance formats a distance in meters for display in the given
// measurement system. Short imperial distances are shown in feet and short
// metric distances in meters.
func PresentableDistance(meters float64, system directions.MeasurementSystem) string {
	if meters < 0 {
		meters = 0
	}
	if system == directions.MeasurementSystemImperial {
		miles := meters / MetersPerMile
		if miles < 0.1 {
			return fmt.Sprintf("%d ft", int(math.Round(miles*FeetPerMile)))
		}
		return fmt.Sprintf("%.1f %s", miles, ternary(math.Round(miles*10) == 10, "mile", "miles"))
	}
	if meters < MetersPerKilometer {
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.1f km", meters/MetersPerKilometer)
}

// StraightLineDistance returns the great-circle distance in meters between
// two [lon, lat] points.
func StraightLineDistance(a, b orb.Point) float64 {
	return geo.Distance(a, b)
}

func ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
