package handler

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	geojson "github.com/paulmach/go.geojson"

	"github.com/theoremus-urban-solutions/transit-directions/archive"
	"github.com/theoremus-urban-solutions/transit-directions/directions"
	"github.com/theoremus-urban-solutions/transit-directions/recents"
	"github.com/theoremus-urban-solutions/transit-directions/response"
	"github.com/theoremus-urban-solutions/transit-directions/utils"
)

// OptionsRequest is an archived record plus the API selection, which records
// do not carry.
type OptionsRequest struct {
	archive.Record

	APIVersion        string                        `json:"apiVersion"`
	InstructionFormat *directions.InstructionFormat `json:"instructionFormat"`
	IncludesShapes    *bool                         `json:"includesShapes"`
}

// Options decodes the request into route options.
func (r *OptionsRequest) Options() (*directions.RouteOptions, error) {
	o, err := archive.Decode(&r.Record)
	if err != nil {
		return nil, err
	}
	if r.APIVersion == "" {
		return o, nil
	}
	version, ok := directions.ParseAPIVersion(r.APIVersion)
	if !ok {
		return nil, fmt.Errorf("unknown api version %q", r.APIVersion)
	}
	directions.WithVersion(version)(o)
	if o.V4 != nil {
		if r.InstructionFormat != nil {
			o.V4.InstructionFormat = *r.InstructionFormat
		}
		if r.IncludesShapes != nil {
			o.V4.IncludesShapes = *r.IncludesShapes
		}
	}
	return o, nil
}

// RequestDTO describes the HTTP request to send to the directions API.
type RequestDTO struct {
	Path   string                 `json:"path"`
	Params []directions.QueryItem `json:"params"`
	Query  string                 `json:"query"`
}

func toRequestDTO(o *directions.RouteOptions) RequestDTO {
	return RequestDTO{
		Path:   o.Path(),
		Params: o.Params(),
		Query:  o.Query().Encode(),
	}
}

// ParseRequest pairs a reply with the options of the request that produced it.
type ParseRequest struct {
	Options OptionsRequest `json:"options"`
	Payload map[string]any `json:"payload" binding:"required"`
}

// RouteSummary is the display form of a route.
type RouteSummary struct {
	Distance           string `json:"distance"`
	ExpectedTravelTime string `json:"expectedTravelTime"`
	StraightLine       string `json:"straightLine"`
}

// ParseDTO is the parse endpoint response. v4 replies also carry their
// waypoints as a GeoJSON feature collection, the form the v4 API uses.
type ParseDTO struct {
	response.Result
	Summaries        []RouteSummary            `json:"summaries"`
	WaypointFeatures *geojson.FeatureCollection `json:"waypointFeatures,omitempty"`
}

func toParseDTO(o *directions.RouteOptions, res response.Result) ParseDTO {
	summaries := make([]RouteSummary, len(res.Routes))
	for i, r := range res.Routes {
		var straight float64
		if n := len(r.Waypoints); n > 1 {
			straight = utils.StraightLineDistance(r.Waypoints[0].Coordinate, r.Waypoints[n-1].Coordinate)
		}
		summaries[i] = RouteSummary{
			Distance:           utils.PresentableDistance(r.Distance, o.DistanceMeasurementSystem),
			ExpectedTravelTime: utils.MinutesString(r.ExpectedTravelTime),
			StraightLine:       utils.PresentableDistance(straight, o.DistanceMeasurementSystem),
		}
	}
	dto := ParseDTO{Result: res, Summaries: summaries}
	if o.Version == directions.V4 {
		dto.WaypointFeatures = geojson.NewFeatureCollection()
		for _, wp := range res.Waypoints {
			dto.WaypointFeatures.AddFeature(wp.GeoJSONFeature())
		}
	}
	return dto
}

// CreateSearchRequest stores options under a label.
type CreateSearchRequest struct {
	Label   string         `json:"label" binding:"required"`
	Options OptionsRequest `json:"options"`
}

// SearchDTO is the API representation of a recent search.
type SearchDTO struct {
	ID        uuid.UUID       `json:"id"`
	Label     string          `json:"label"`
	Options   *archive.Record `json:"options"`
	Request   RequestDTO      `json:"request"`
	CreatedAt time.Time       `json:"createdAt"`
}

func toSearchDTO(s *recents.Search) SearchDTO {
	return SearchDTO{
		ID:        s.ID,
		Label:     s.Label,
		Options:   archive.Encode(s.Options),
		Request:   toRequestDTO(s.Options),
		CreatedAt: s.CreatedAt,
	}
}
