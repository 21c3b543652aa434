package config

import (
	"github.com/theoremus-urban-solutions/transit-directions/directions"
)

// Options returns constructor options carrying the configured defaults.
func (c DirectionsConfig) Options() []directions.Option {
	var opts []directions.Option
	if c.Profile != "" {
		opts = append(opts, directions.WithProfile(directions.ProfileIdentifier(c.Profile)))
	}
	if v, ok := directions.ParseAPIVersion(c.APIVersion); ok {
		opts = append(opts, directions.WithVersion(v))
	}
	if tag, ok := directions.ParseLocale(c.Locale); ok {
		opts = append(opts, directions.WithLocale(tag))
	}
	return append(opts, c.Apply)
}

// Apply copies the configured output settings onto o. The v4 settings only
// apply to v4 options.
func (c DirectionsConfig) Apply(o *directions.RouteOptions) {
	if c.ShapeFormat != nil {
		o.ShapeFormat = *c.ShapeFormat
	}
	if c.RouteShapeResolution != nil {
		o.RouteShapeResolution = *c.RouteShapeResolution
	}
	if c.DistanceMeasurementSystem != nil {
		o.DistanceMeasurementSystem = *c.DistanceMeasurementSystem
	}
	if c.IncludesSteps != nil {
		o.IncludesSteps = *c.IncludesSteps
	}
	if c.IncludesAlternativeRoutes != nil {
		o.IncludesAlternativeRoutes = *c.IncludesAlternativeRoutes
	}
	if o.V4 == nil {
		return
	}
	if c.InstructionFormat != nil {
		o.V4.InstructionFormat = *c.InstructionFormat
	}
	if c.IncludesShapes != nil {
		o.V4.IncludesShapes = *c.IncludesShapes
	}
}
