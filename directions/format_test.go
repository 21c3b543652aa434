package directions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestShapeFormat_Tokens(t *testing.T) {
	tests := []struct {
		value ShapeFormat
		token string
	}{
		{ShapeFormatGeoJSON, "geojson"},
		{ShapeFormatPolyline, "polyline"},
		{ShapeFormatPolyline6, "polyline6"},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.token, tt.value.String())
			parsed, ok := ParseShapeFormat(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.value, parsed)
		})
	}
}

func TestShapeResolution_NoneEncodesAsFalse(t *testing.T) {
	assert.Equal(t, "false", ShapeResolutionNone.String())
	assert.Equal(t, "simplified", ShapeResolutionLow.String())
	assert.Equal(t, "full", ShapeResolutionFull.String())

	r, ok := ParseShapeResolution("false")
	require.True(t, ok)
	assert.Equal(t, ShapeResolutionNone, r)

	_, ok = ParseShapeResolution("none")
	assert.False(t, ok, "\"none\" is not a canonical token")
}

func TestEnums_RoundTrip(t *testing.T) {
	for _, v := range []MeasurementSystem{MeasurementSystemImperial, MeasurementSystemMetric} {
		parsed, ok := ParseMeasurementSystem(v.String())
		require.True(t, ok)
		assert.Equal(t, v, parsed)
	}
	for _, v := range []InstructionFormat{InstructionFormatText, InstructionFormatHTML} {
		parsed, ok := ParseInstructionFormat(v.String())
		require.True(t, ok)
		assert.Equal(t, v, parsed)
	}
	for _, v := range []ShapeResolution{ShapeResolutionNone, ShapeResolutionLow, ShapeResolutionFull} {
		parsed, ok := ParseShapeResolution(v.String())
		require.True(t, ok)
		assert.Equal(t, v, parsed)
	}
}

func TestEnums_RejectUnknownTokens(t *testing.T) {
	for _, token := range []string{"", "GeoJSON", "POLYLINE", "polyline5", "none", "metrics", "Imperial", "markdown", " text"} {
		t.Run(token, func(t *testing.T) {
			_, ok := ParseShapeFormat(token)
			assert.False(t, ok)
			_, ok = ParseShapeResolution(token)
			assert.False(t, ok)
			_, ok = ParseMeasurementSystem(token)
			assert.False(t, ok)
			_, ok = ParseInstructionFormat(token)
			assert.False(t, ok)
		})
	}
}

func TestEnums_YAML(t *testing.T) {
	var doc struct {
		Shape      ShapeFormat       `yaml:"shape"`
		Resolution ShapeResolution   `yaml:"resolution"`
		Units      MeasurementSystem `yaml:"units"`
	}
	err := yaml.Unmarshal([]byte("shape: geojson\nresolution: \"false\"\nunits: imperial\n"), &doc)
	require.NoError(t, err)
	assert.Equal(t, ShapeFormatGeoJSON, doc.Shape)
	assert.Equal(t, ShapeResolutionNone, doc.Resolution)
	assert.Equal(t, MeasurementSystemImperial, doc.Units)

	err = yaml.Unmarshal([]byte("shape: svg\n"), &doc)
	assert.Error(t, err)
}

func TestAttributeOptions(t *testing.T) {
	set, ok := ParseAttributeOptions([]string{"congestion", "distance", ""})
	require.True(t, ok)
	assert.True(t, set.Contains(AttributeCongestionLevel|AttributeDistance))
	assert.False(t, set.Contains(AttributeSpeed))
	assert.Equal(t, "distance,congestion", set.String())

	empty, ok := ParseAttributeOptions([]string{""})
	require.True(t, ok)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, "", empty.String())

	_, ok = ParseAttributeOptions([]string{"distance", "altitude"})
	assert.False(t, ok)
}

func TestRoadClasses(t *testing.T) {
	set, ok := ParseRoadClasses([]string{"ferry", "toll"})
	require.True(t, ok)
	assert.Equal(t, "toll,ferry", set.String())

	_, ok = ParseRoadClasses([]string{"dirt"})
	assert.False(t, ok)
}
