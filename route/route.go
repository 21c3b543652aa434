package route

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/theoremus-urban-solutions/transit-directions/directions"
	"github.com/theoremus-urban-solutions/transit-directions/geo"
	"github.com/theoremus-urban-solutions/transit-directions/internal"
)

// Route is one way of travelling through the requested waypoints.
type Route struct {
	Distance           float64       `json:"distance"`
	ExpectedTravelTime time.Duration `json:"expectedTravelTime"`

	// Weight is the value the router optimised, named by WeightName.
	Weight     float64 `json:"weight,omitempty"`
	WeightName string  `json:"weightName,omitempty"`

	Legs []RouteLeg `json:"legs"`

	// Shape is set for GeoJSON responses; EncodedShape for polyline ones.
	Shape        orb.LineString `json:"shape,omitempty"`
	EncodedShape string         `json:"encodedShape,omitempty"`

	Waypoints    []geo.Waypoint `json:"waypoints"`
	SpeechLocale string         `json:"speechLocale,omitempty"`

	// Options are the options of the request that produced the route.
	Options *directions.RouteOptions `json:"-"`
}

// RouteLeg is the part of a route between two consecutive waypoints.
type RouteLeg struct {
	Source      geo.Waypoint `json:"source"`
	Destination geo.Waypoint `json:"destination"`

	// Name summarises the most significant roads of the leg.
	Name               string        `json:"name"`
	Distance           float64       `json:"distance"`
	ExpectedTravelTime time.Duration `json:"expectedTravelTime"`

	Profile    directions.ProfileIdentifier `json:"profile"`
	Steps      []RouteStep                  `json:"steps,omitempty"`
	Annotation *Annotation                  `json:"annotation,omitempty"`
}

// Annotation holds per-segment attributes of a leg. Only the attributes
// requested through RouteOptions.AttributeOptions are filled.
type Annotation struct {
	Distances           []float64       `json:"distances,omitempty"`
	ExpectedTravelTimes []time.Duration `json:"expectedTravelTimes,omitempty"`
	Speeds              []float64       `json:"speeds,omitempty"`
	Nodes               []int64         `json:"nodes,omitempty"`
	Congestion          []string        `json:"congestion,omitempty"`
}

// New builds a route from a v5 route record. Legs are matched to
// consecutive waypoint pairs.
func New(record map[string]any, waypoints []geo.Waypoint, o *directions.RouteOptions) (Route, error) {
	r, err := newRoute(record, waypoints, o)
	if err != nil {
		return Route{}, err
	}
	r.Weight, _ = internal.Float(record, "weight")
	r.WeightName, _ = internal.String(record, "weight_name")
	r.SpeechLocale, _ = internal.String(record, "voiceLocale")

	legs, ok := internal.Array(record, "legs")
	if !ok {
		return Route{}, errors.New("route has no legs")
	}
	for i, raw := range legs {
		if i+1 >= len(waypoints) {
			break
		}
		legRecord, ok := raw.(map[string]any)
		if !ok {
			return Route{}, errors.Errorf("leg %d is not an object", i)
		}
		leg, err := newLeg(legRecord, waypoints[i], waypoints[i+1], o)
		if err != nil {
			return Route{}, errors.Wrapf(err, "leg %d", i)
		}
		r.Legs = append(r.Legs, leg)
	}
	return r, nil
}

// NewV4 builds a route from a v4 route record. The v4 API returns a single
// leg from the first to the last waypoint.
func NewV4(record map[string]any, waypoints []geo.Waypoint, o *directions.RouteOptions) (Route, error) {
	if len(waypoints) < 2 {
		return Route{}, errors.New("route needs a source and a destination")
	}
	r, err := newRoute(record, waypoints, o)
	if err != nil {
		return Route{}, err
	}

	leg := RouteLeg{
		Source:             waypoints[0],
		Destination:        waypoints[len(waypoints)-1],
		Distance:           r.Distance,
		ExpectedTravelTime: r.ExpectedTravelTime,
		Profile:            o.ProfileIdentifier(),
	}
	leg.Name, _ = internal.String(record, "summary")
	if steps, ok := internal.Array(record, "steps"); ok {
		for i, raw := range steps {
			stepRecord, ok := raw.(map[string]any)
			if !ok {
				return Route{}, errors.Errorf("step %d is not an object", i)
			}
			step, err := newStepV4(stepRecord)
			if err != nil {
				return Route{}, errors.Wrapf(err, "step %d", i)
			}
			leg.Steps = append(leg.Steps, step)
		}
	}
	r.Legs = []RouteLeg{leg}
	return r, nil
}

func newRoute(record map[string]any, waypoints []geo.Waypoint, o *directions.RouteOptions) (Route, error) {
	if record == nil {
		return Route{}, errors.New("route record is missing")
	}
	distance, ok := internal.Float(record, "distance")
	if !ok {
		return Route{}, errors.New("route has no distance")
	}
	duration, ok := internal.Float(record, "duration")
	if !ok {
		return Route{}, errors.New("route has no duration")
	}
	shape, encoded, err := decodeShape(record["geometry"])
	if err != nil {
		return Route{}, errors.Wrap(err, "route geometry")
	}
	return Route{
		Distance:           distance,
		ExpectedTravelTime: seconds(duration),
		Shape:              shape,
		EncodedShape:       encoded,
		Waypoints:          waypoints,
		Options:            o,
	}, nil
}

func newLeg(record map[string]any, source, destination geo.Waypoint, o *directions.RouteOptions) (RouteLeg, error) {
	distance, ok := internal.Float(record, "distance")
	if !ok {
		return RouteLeg{}, errors.New("leg has no distance")
	}
	duration, ok := internal.Float(record, "duration")
	if !ok {
		return RouteLeg{}, errors.New("leg has no duration")
	}
	leg := RouteLeg{
		Source:             source,
		Destination:        destination,
		Distance:           distance,
		ExpectedTravelTime: seconds(duration),
		Profile:            o.ProfileIdentifier(),
	}
	leg.Name, _ = internal.String(record, "summary")

	if steps, ok := internal.Array(record, "steps"); ok {
		for i, raw := range steps {
			stepRecord, ok := raw.(map[string]any)
			if !ok {
				return RouteLeg{}, errors.Errorf("step %d is not an object", i)
			}
			step, err := newStep(stepRecord)
			if err != nil {
				return RouteLeg{}, errors.Wrapf(err, "step %d", i)
			}
			leg.Steps = append(leg.Steps, step)
		}
	}

	if !o.AttributeOptions.IsEmpty() {
		if annotation, ok := internal.Object(record, "annotation"); ok {
			leg.Annotation = newAnnotation(annotation, o.AttributeOptions)
		}
	}
	return leg, nil
}

func newAnnotation(record map[string]any, attrs directions.AttributeOptions) *Annotation {
	a := &Annotation{}
	if attrs.Contains(directions.AttributeDistance) {
		a.Distances, _ = internal.Floats(record, "distance")
	}
	if attrs.Contains(directions.AttributeExpectedTravelTime) {
		if durations, ok := internal.Floats(record, "duration"); ok {
			a.ExpectedTravelTimes = make([]time.Duration, len(durations))
			for i, d := range durations {
				a.ExpectedTravelTimes[i] = seconds(d)
			}
		}
	}
	if attrs.Contains(directions.AttributeSpeed) {
		a.Speeds, _ = internal.Floats(record, "speed")
	}
	if attrs.Contains(directions.AttributeOpenStreetMapNodeIdentifier) {
		if nodes, ok := internal.Floats(record, "nodes"); ok {
			a.Nodes = make([]int64, len(nodes))
			for i, n := range nodes {
				a.Nodes[i] = int64(n)
			}
		}
	}
	if attrs.Contains(directions.AttributeCongestionLevel) {
		a.Congestion, _ = internal.Strings(record, "congestion")
	}
	return a
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
