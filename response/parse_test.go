package response

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/theoremus-urban-solutions/transit-directions/directions"
	"github.com/theoremus-urban-solutions/transit-directions/geo"
	"github.com/theoremus-urban-solutions/transit-directions/internal"
)

func stops(first, second string) []geo.Waypoint {
	return []geo.Waypoint{
		geo.NewWaypoint(orb.Point{13.411939, 52.521918}, first),
		geo.NewWaypoint(orb.Point{13.377704, 52.516275}, second),
	}
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := internal.ReadTestData(name)
	require.NoError(t, err)
	return data
}

func TestParse_WaypointNames(t *testing.T) {
	payload := map[string]any{
		"waypoints": []any{
			map[string]any{"location": []any{13.4, 52.5}, "name": "API-Name"},
		},
		"routes": []any{},
	}

	tests := []struct {
		name      string
		localName string
		want      string
	}{
		{"local name wins", "Local-Name", "Local-Name"},
		{"api name fills in", "", "API-Name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := directions.New(stops(tt.localName, ""))

			res, err := Parse(o, payload)
			require.NoError(t, err)

			require.Len(t, res.Waypoints, 1)
			assert.Equal(t, tt.want, res.Waypoints[0].Name)
			assert.Equal(t, orb.Point{13.4, 52.5}, res.Waypoints[0].Coordinate)
			assert.NotNil(t, res.Routes)
			assert.Empty(t, res.Routes)
		})
	}
}

func TestParse_V5Fixture(t *testing.T) {
	o := directions.New(stops("", "Pariser Platz"))

	res, err := ParseJSON(o, readFixture(t, "directions-v5.json"))
	require.NoError(t, err)

	require.Len(t, res.Waypoints, 2)
	assert.Equal(t, "Karl-Liebknecht-Straße", res.Waypoints[0].Name)
	assert.Equal(t, "Pariser Platz", res.Waypoints[1].Name)

	require.Len(t, res.Routes, 1, "malformed second route is dropped")
	r := res.Routes[0]
	assert.Equal(t, 2714.3, r.Distance)
	require.Len(t, r.Legs, 1)
	assert.Equal(t, res.Waypoints[0], r.Legs[0].Source)
	assert.Equal(t, res.Waypoints[1], r.Legs[0].Destination)
	assert.Equal(t, map[string]int{WarningRouteDropped: 1}, res.Warnings)
}

func TestParse_V5WithoutWaypointsKeepsRequest(t *testing.T) {
	o := directions.New(stops("A", "B"))

	res, err := Parse(o, map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, o.Waypoints(), res.Waypoints)
	assert.Nil(t, res.Routes)
	assert.Nil(t, res.Warnings)
}

func TestParse_V5DropsMalformedWaypoints(t *testing.T) {
	o := directions.New(stops("A", "B"))
	payload := map[string]any{
		"waypoints": []any{
			map[string]any{"location": "nowhere"},
			map[string]any{"location": []any{13.38, 52.52}},
		},
	}

	res, err := Parse(o, payload)
	require.NoError(t, err)

	require.Len(t, res.Waypoints, 1)
	assert.Equal(t, "B", res.Waypoints[0].Name)
	assert.Equal(t, 1, res.Warnings[WarningWaypointDropped])
}

func TestParse_V5LegsKeepRequestEndpointsForDroppedWaypoints(t *testing.T) {
	o := directions.NewFromCoordinates([]orb.Point{{1, 1}, {2, 2}, {3, 3}})
	leg := map[string]any{"distance": 10.0, "duration": 5.0}
	payload := map[string]any{
		"waypoints": []any{
			map[string]any{"location": []any{1.0, 1.0}, "name": "A"},
			map[string]any{"location": nil},
			map[string]any{"location": []any{3.0, 3.0}, "name": "C"},
		},
		"routes": []any{
			map[string]any{"distance": 20.0, "duration": 10.0, "legs": []any{leg, leg}},
		},
	}

	res, err := Parse(o, payload)
	require.NoError(t, err)
	require.Len(t, res.Waypoints, 2)
	require.Len(t, res.Routes, 1)

	legs := res.Routes[0].Legs
	require.Len(t, legs, 2)
	assert.Equal(t, "A", legs[0].Source.Name)
	assert.Equal(t, orb.Point{2, 2}, legs[0].Destination.Coordinate)
	assert.Equal(t, orb.Point{2, 2}, legs[1].Source.Coordinate)
	assert.Equal(t, "C", legs[1].Destination.Name)
}

func TestParse_V4Fixture(t *testing.T) {
	o := directions.NewV4(stops("", ""))

	res, err := ParseJSON(o, readFixture(t, "directions-v4.json"))
	require.NoError(t, err)

	names := make([]string, 0, len(res.Waypoints))
	for _, wp := range res.Waypoints {
		names = append(names, wp.Name)
	}
	assert.Equal(t, []string{"Alexanderplatz", "Museumsinsel", "Pariser Platz"}, names)

	require.Len(t, res.Routes, 1)
	leg := res.Routes[0].Legs[0]
	assert.Equal(t, "Alexanderplatz", leg.Source.Name)
	assert.Equal(t, "Pariser Platz", leg.Destination.Name)
	assert.Equal(t, 1, res.Warnings[WarningIntermediateDropped])
}

func TestParse_V4MissingEndpoints(t *testing.T) {
	point := func(name string) map[string]any {
		return map[string]any{
			"type":       "Feature",
			"geometry":   map[string]any{"type": "Point", "coordinates": []any{13.4, 52.5}},
			"properties": map[string]any{"name": name},
		}
	}

	tests := []struct {
		name    string
		payload map[string]any
		wantErr error
	}{
		{
			name:    "no destination",
			payload: map[string]any{"origin": point("A")},
			wantErr: ErrMissingDestination,
		},
		{
			name:    "no origin",
			payload: map[string]any{"destination": point("B")},
			wantErr: ErrMissingOrigin,
		},
		{
			name: "destination without geometry",
			payload: map[string]any{
				"origin":      point("A"),
				"destination": map[string]any{"type": "Feature", "properties": map[string]any{}},
			},
			wantErr: ErrMissingDestination,
		},
	}

	o := directions.NewV4(stops("", ""))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(o, tt.payload)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseJSON_RejectsNonObjects(t *testing.T) {
	o := directions.New(stops("", ""))

	for _, body := range []string{"[]", "null", "{"} {
		_, err := ParseJSON(o, []byte(body))
		assert.ErrorIs(t, err, ErrInvalidPayload, body)
	}
}

func TestParser_LogsDroppedRecords(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	p := NewParser(zap.New(core))
	o := directions.New(stops("", ""))

	_, err := p.ParseJSON(o, readFixture(t, "directions-v5.json"))
	require.NoError(t, err)

	entries := logs.FilterField(zap.String("warning", WarningRouteDropped)).All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "1 occurrences")
}
