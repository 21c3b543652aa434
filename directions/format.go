package directions

import "fmt"

// ShapeFormat is the encoding of route shapes in the raw response.
type ShapeFormat int

const (
	// ShapeFormatGeoJSON delivers shapes as GeoJSON LineString geometries.
	ShapeFormatGeoJSON ShapeFormat = iota
	// ShapeFormatPolyline delivers shapes as encoded polylines with 1e-5 precision.
	ShapeFormatPolyline
	// ShapeFormatPolyline6 delivers shapes as encoded polylines with 1e-6 precision.
	ShapeFormatPolyline6
)

var shapeFormatTokens = map[ShapeFormat]string{
	ShapeFormatGeoJSON:   "geojson",
	ShapeFormatPolyline:  "polyline",
	ShapeFormatPolyline6: "polyline6",
}

// ParseShapeFormat returns the shape format for a canonical token.
func ParseShapeFormat(token string) (ShapeFormat, bool) {
	for f, t := range shapeFormatTokens {
		if t == token {
			return f, true
		}
	}
	return 0, false
}

func (f ShapeFormat) String() string {
	if t, ok := shapeFormatTokens[f]; ok {
		return t
	}
	return shapeFormatTokens[ShapeFormatPolyline]
}

func (f ShapeFormat) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *ShapeFormat) UnmarshalText(b []byte) error {
	v, ok := ParseShapeFormat(string(b))
	if !ok {
		return fmt.Errorf("invalid shape format: %q", b)
	}
	*f = v
	return nil
}

// ShapeResolution is the level of detail of a route's overview shape.
type ShapeResolution int

const (
	// ShapeResolutionNone omits the shape.
	ShapeResolutionNone ShapeResolution = iota
	// ShapeResolutionLow returns a simplified shape.
	ShapeResolutionLow
	// ShapeResolutionFull returns the most detailed shape available.
	ShapeResolutionFull
)

// "false" for none is what the API accepts for the overview parameter.
var shapeResolutionTokens = map[ShapeResolution]string{
	ShapeResolutionNone: "false",
	ShapeResolutionLow:  "simplified",
	ShapeResolutionFull: "full",
}

// ParseShapeResolution returns the shape resolution for a canonical token.
func ParseShapeResolution(token string) (ShapeResolution, bool) {
	for r, t := range shapeResolutionTokens {
		if t == token {
			return r, true
		}
	}
	return 0, false
}

func (r ShapeResolution) String() string {
	if t, ok := shapeResolutionTokens[r]; ok {
		return t
	}
	return shapeResolutionTokens[ShapeResolutionLow]
}

func (r ShapeResolution) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *ShapeResolution) UnmarshalText(b []byte) error {
	v, ok := ParseShapeResolution(string(b))
	if !ok {
		return fmt.Errorf("invalid shape resolution: %q", b)
	}
	*r = v
	return nil
}

// MeasurementSystem is the unit system used for distances in instructions.
type MeasurementSystem int

const (
	// MeasurementSystemImperial measures distances in miles and feet.
	MeasurementSystemImperial MeasurementSystem = iota
	// MeasurementSystemMetric measures distances in kilometers and meters.
	MeasurementSystemMetric
)

var measurementSystemTokens = map[MeasurementSystem]string{
	MeasurementSystemImperial: "imperial",
	MeasurementSystemMetric:   "metric",
}

// ParseMeasurementSystem returns the measurement system for a canonical token.
func ParseMeasurementSystem(token string) (MeasurementSystem, bool) {
	for m, t := range measurementSystemTokens {
		if t == token {
			return m, true
		}
	}
	return 0, false
}

func (m MeasurementSystem) String() string {
	if t, ok := measurementSystemTokens[m]; ok {
		return t
	}
	return measurementSystemTokens[MeasurementSystemMetric]
}

func (m MeasurementSystem) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *MeasurementSystem) UnmarshalText(b []byte) error {
	v, ok := ParseMeasurementSystem(string(b))
	if !ok {
		return fmt.Errorf("invalid measurement system: %q", b)
	}
	*m = v
	return nil
}

// InstructionFormat is the markup of step instructions in v4 responses.
type InstructionFormat int

const (
	// InstructionFormatText delivers plain text instructions.
	InstructionFormatText InstructionFormat = iota
	// InstructionFormatHTML delivers HTML instructions with boldfaced key phrases.
	InstructionFormatHTML
)

var instructionFormatTokens = map[InstructionFormat]string{
	InstructionFormatText: "text",
	InstructionFormatHTML: "html",
}

// ParseInstructionFormat returns the instruction format for a canonical token.
func ParseInstructionFormat(token string) (InstructionFormat, bool) {
	for f, t := range instructionFormatTokens {
		if t == token {
			return f, true
		}
	}
	return 0, false
}

func (f InstructionFormat) String() string {
	if t, ok := instructionFormatTokens[f]; ok {
		return t
	}
	return instructionFormatTokens[InstructionFormatText]
}

func (f InstructionFormat) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *InstructionFormat) UnmarshalText(b []byte) error {
	v, ok := ParseInstructionFormat(string(b))
	if !ok {
		return fmt.Errorf("invalid instruction format: %q", b)
	}
	*f = v
	return nil
}
