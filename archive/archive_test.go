package archive

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/theoremus-urban-solutions/transit-directions/directions"
	"github.com/theoremus-urban-solutions/transit-directions/geo"
)

func fullOptions() *directions.RouteOptions {
	first := geo.NewWaypoint(orb.Point{13.411939, 52.521918}, "Alexanderplatz")
	first.Heading = 90
	first.HeadingAccuracy = 45
	second := geo.NewWaypoint(orb.Point{13.39, 52.52}, "")
	second.CoordinateAccuracy = 5
	third := geo.NewWaypoint(orb.Point{13.377704, 52.516275}, "Pariser Platz")

	o := directions.New([]geo.Waypoint{first, second, third},
		directions.WithProfile(directions.ProfileCycling),
		directions.WithLocale(language.MustParse("en-GB")),
	)
	o.IncludesAlternativeRoutes = true
	o.IncludesSteps = true
	o.IncludesExitRoundaboutManeuver = true
	o.IncludesSpokenInstructions = true
	o.IncludesVisualInstructions = true
	o.ShapeFormat = directions.ShapeFormatGeoJSON
	o.RouteShapeResolution = directions.ShapeResolutionNone
	o.AttributeOptions = directions.AttributeDistance | directions.AttributeCongestionLevel
	o.RoadClassesToAvoid = directions.RoadClassToll | directions.RoadClassFerry
	return o
}

func minimalOptions() *directions.RouteOptions {
	return directions.NewFromCoordinates([]orb.Point{{13.4, 52.5}, {13.3, 52.4}})
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		options *directions.RouteOptions
	}{
		{"defaults", minimalOptions()},
		{"every field set", fullOptions()},
		{"u-turn overridden", func() *directions.RouteOptions {
			o := minimalOptions()
			o.AllowsUTurnAtWaypoint = true
			return o
		}()},
		{"coordinates outside WGS84", directions.NewFromCoordinates([]orb.Point{{200, 100}, {13.3, 52.4}})},
		{"undetermined language with region", directions.NewFromCoordinates([]orb.Point{{13.4, 52.5}, {13.3, 52.4}},
			directions.WithLocale(language.MustParse("und-US")))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := Decode(Encode(tt.options))
			require.NoError(t, err)
			assert.True(t, decoded.Equal(tt.options))

			data, err := Marshal(tt.options)
			require.NoError(t, err)
			fromJSON, err := Unmarshal(data)
			require.NoError(t, err)
			assert.True(t, fromJSON.Equal(tt.options))

			bin, err := MarshalBinary(tt.options)
			require.NoError(t, err)
			fromBinary, err := UnmarshalBinary(bin)
			require.NoError(t, err)
			assert.True(t, fromBinary.Equal(tt.options))
		})
	}
}

func TestEncode_Tokens(t *testing.T) {
	r := Encode(fullOptions())

	assert.Equal(t, SchemaVersion, r.SchemaVersion)
	assert.Equal(t, "mapbox/cycling", *r.ProfileIdentifier)
	assert.Equal(t, "geojson", r.ShapeFormat)
	assert.Equal(t, "false", r.RouteShapeResolution)
	assert.Equal(t, "distance,congestion", *r.AttributeOptions)
	assert.Equal(t, "imperial", r.DistanceMeasurementSystem)
	assert.Equal(t, "toll,ferry", r.RoadClassesToAvoid)
	require.NotNil(t, r.Locale)
	assert.Equal(t, "en-GB", *r.Locale)
	assert.Nil(t, Encode(minimalOptions()).Locale)
}

// record returns the JSON form of a valid record as a generic map so tests
// can remove or corrupt single keys.
func record(t *testing.T) map[string]any {
	t.Helper()
	data, err := Marshal(fullOptions())
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func unmarshalMap(t *testing.T, m map[string]any) (*directions.RouteOptions, error) {
	t.Helper()
	data, err := json.Marshal(m)
	require.NoError(t, err)
	return Unmarshal(data)
}

func TestUnmarshal_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{"unknown shape format", func(m map[string]any) { m["shapeFormat"] = "wkt" }},
		{"missing shape format", func(m map[string]any) { delete(m, "shapeFormat") }},
		{"unknown shape resolution", func(m map[string]any) { m["routeShapeResolution"] = "none" }},
		{"missing profile", func(m map[string]any) { delete(m, "profileIdentifier") }},
		{"missing attribute options", func(m map[string]any) { delete(m, "attributeOptions") }},
		{"unknown attribute option", func(m map[string]any) { m["attributeOptions"] = "distance,altitude" }},
		{"missing waypoints", func(m map[string]any) { delete(m, "waypoints") }},
		{"single waypoint", func(m map[string]any) { m["waypoints"] = m["waypoints"].([]any)[:1] }},
		{"waypoint without latitude", func(m map[string]any) {
			delete(m["waypoints"].([]any)[0].(map[string]any), "latitude")
		}},
		{"latitude not a number", func(m map[string]any) {
			m["waypoints"].([]any)[0].(map[string]any)["latitude"] = "north"
		}},
		{"newer schema", func(m map[string]any) { m["schemaVersion"] = SchemaVersion + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := record(t)
			tt.mutate(m)
			_, err := unmarshalMap(t, m)
			assert.ErrorIs(t, err, ErrInvalidRecord)
		})
	}
}

func TestUnmarshal_NewerSchema(t *testing.T) {
	m := record(t)
	m["schemaVersion"] = SchemaVersion + 1

	_, err := unmarshalMap(t, m)
	assert.ErrorIs(t, err, ErrUnsupportedSchema)
}

func TestUnmarshal_Tolerates(t *testing.T) {
	t.Run("unknown measurement system uses locale default", func(t *testing.T) {
		m := record(t)
		m["distanceMeasurementSystem"] = "nautical"

		o, err := unmarshalMap(t, m)
		require.NoError(t, err)
		assert.Equal(t, directions.MeasurementSystemImperial, o.DistanceMeasurementSystem)
	})

	t.Run("unknown measurement system without locale", func(t *testing.T) {
		m := record(t)
		delete(m, "locale")
		m["distanceMeasurementSystem"] = "nautical"

		o, err := unmarshalMap(t, m)
		require.NoError(t, err)
		assert.False(t, o.HasLocale())
		assert.Equal(t, directions.MeasurementSystemMetric, o.DistanceMeasurementSystem)
	})

	t.Run("unparseable road classes", func(t *testing.T) {
		m := record(t)
		m["roadClassesToAvoid"] = "toll,potholes"

		o, err := unmarshalMap(t, m)
		require.NoError(t, err)
		assert.True(t, o.RoadClassesToAvoid.IsEmpty())
	})

	t.Run("unparseable locale", func(t *testing.T) {
		m := record(t)
		m["locale"] = "!!"

		o, err := unmarshalMap(t, m)
		require.NoError(t, err)
		assert.False(t, o.HasLocale())
	})

	t.Run("missing schema version and booleans", func(t *testing.T) {
		m := record(t)
		delete(m, "schemaVersion")
		delete(m, "includesSteps")

		o, err := unmarshalMap(t, m)
		require.NoError(t, err)
		assert.False(t, o.IncludesSteps)
	})

	t.Run("unknown keys", func(t *testing.T) {
		m := record(t)
		m["includesTolls"] = true

		_, err := unmarshalMap(t, m)
		assert.NoError(t, err)
	})
}

func TestDecode_DoesNotCarryVersion(t *testing.T) {
	o := directions.NewV4(fullOptions().Waypoints())
	o.V4.IncludesShapes = false

	decoded, err := Decode(Encode(o))
	require.NoError(t, err)
	assert.Equal(t, directions.V5, decoded.Version)
	assert.Nil(t, decoded.V4)
	assert.True(t, decoded.Equal(o))
}

func TestUnmarshal_Garbage(t *testing.T) {
	_, err := Unmarshal([]byte("not json"))
	assert.ErrorIs(t, err, ErrInvalidRecord)

	_, err = UnmarshalBinary([]byte{0xff, 0xff, 0xff})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	_, err = Decode(nil)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}
