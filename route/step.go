package route

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/theoremus-urban-solutions/transit-directions/geo"
	"github.com/theoremus-urban-solutions/transit-directions/internal"
)

// RouteStep is a single maneuver along a leg.
type RouteStep struct {
	Distance           float64       `json:"distance"`
	ExpectedTravelTime time.Duration `json:"expectedTravelTime"`

	// Name is the road or path the step travels along.
	Name string `json:"name"`
	Mode string `json:"mode,omitempty"`

	Instructions      string    `json:"instructions"`
	ManeuverType      string    `json:"maneuverType"`
	ManeuverDirection string    `json:"maneuverDirection,omitempty"`
	ManeuverLocation  orb.Point `json:"maneuverLocation"`

	// Headings in degrees; geo.Unspecified when the response omits them.
	InitialHeading float64 `json:"initialHeading"`
	FinalHeading   float64 `json:"finalHeading"`

	// ExitIndex is the roundabout exit to take, 0 when not applicable.
	ExitIndex int `json:"exitIndex,omitempty"`

	Shape        orb.LineString `json:"shape,omitempty"`
	EncodedShape string         `json:"encodedShape,omitempty"`
}

func newStep(record map[string]any) (RouteStep, error) {
	step, err := newStepBase(record)
	if err != nil {
		return RouteStep{}, err
	}
	step.Name, _ = internal.String(record, "name")

	maneuver, ok := internal.Object(record, "maneuver")
	if !ok {
		return RouteStep{}, errors.New("step has no maneuver")
	}
	step.ManeuverType, _ = internal.String(maneuver, "type")
	step.ManeuverDirection, _ = internal.String(maneuver, "modifier")
	step.Instructions, _ = internal.String(maneuver, "instruction")
	if before, ok := internal.Float(maneuver, "bearing_before"); ok {
		step.InitialHeading = before
	}
	if after, ok := internal.Float(maneuver, "bearing_after"); ok {
		step.FinalHeading = after
	}
	if exit, ok := internal.Float(maneuver, "exit"); ok {
		step.ExitIndex = int(exit)
	}
	location, err := geo.ParseLocation(maneuver["location"])
	if err != nil {
		return RouteStep{}, errors.Wrap(err, "maneuver location")
	}
	step.ManeuverLocation = location

	step.Shape, step.EncodedShape, err = decodeShape(record["geometry"])
	if err != nil {
		return RouteStep{}, errors.Wrap(err, "step geometry")
	}
	return step, nil
}

// newStepV4 reads the v4 step shape, where the maneuver location is a
// GeoJSON point and the road name is "way_name".
func newStepV4(record map[string]any) (RouteStep, error) {
	step, err := newStepBase(record)
	if err != nil {
		return RouteStep{}, err
	}
	step.Name, _ = internal.String(record, "way_name")
	step.ManeuverDirection, _ = internal.String(record, "direction")
	if heading, ok := internal.Float(record, "heading"); ok {
		step.InitialHeading = heading
	}

	maneuver, ok := internal.Object(record, "maneuver")
	if !ok {
		return RouteStep{}, errors.New("step has no maneuver")
	}
	step.ManeuverType, _ = internal.String(maneuver, "type")
	step.Instructions, _ = internal.String(maneuver, "instruction")

	point, ok := internal.Object(maneuver, "location")
	if !ok {
		return RouteStep{}, errors.New("maneuver has no location")
	}
	step.ManeuverLocation, err = decodePoint(point)
	if err != nil {
		return RouteStep{}, errors.Wrap(err, "maneuver location")
	}
	return step, nil
}

func newStepBase(record map[string]any) (RouteStep, error) {
	distance, ok := internal.Float(record, "distance")
	if !ok {
		return RouteStep{}, errors.New("step has no distance")
	}
	duration, ok := internal.Float(record, "duration")
	if !ok {
		return RouteStep{}, errors.New("step has no duration")
	}
	step := RouteStep{
		Distance:           distance,
		ExpectedTravelTime: seconds(duration),
		InitialHeading:     geo.Unspecified,
		FinalHeading:       geo.Unspecified,
	}
	step.Mode, _ = internal.String(record, "mode")
	return step, nil
}
