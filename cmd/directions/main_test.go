package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transit-directions/config"
	"github.com/theoremus-urban-solutions/transit-directions/directions"
	"github.com/theoremus-urban-solutions/transit-directions/internal"
)

func TestParseCoordinates(t *testing.T) {
	points, err := parseCoordinates("13.411939,52.521918; 13.377704,52.516275;")
	require.NoError(t, err)
	assert.Equal(t, []orb.Point{{13.411939, 52.521918}, {13.377704, 52.516275}}, points)

	bad := []string{
		"",
		"13.4,52.5",
		"13.4;52.5",
		"east,52.5;13.3,52.4",
		"13.4,95;13.3,52.4",
		strings.Repeat("13.4,52.5;", directions.MaxWaypoints+1),
	}
	for _, s := range bad {
		_, err := parseCoordinates(s)
		assert.Error(t, err, s)
	}
}

func TestBuildOptions_UsesConfigDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("directions:\n  profile: mapbox/cycling\n  apiVersion: v4\n"))
	require.NoError(t, err)

	o, err := buildOptions("13.4,52.5;13.3,52.4", cfg.Directions)
	require.NoError(t, err)
	assert.Equal(t, directions.ProfileCycling, o.ProfileIdentifier())
	assert.Equal(t, "v4/directions/mapbox.cycling/13.4,52.5;13.3,52.4.json", o.Path())
}

func TestFetcher(t *testing.T) {
	f := &fetcher{stdin: strings.NewReader(`{"routes":[]}`)}

	data, err := f.fetch("-")
	require.NoError(t, err)
	assert.JSONEq(t, `{"routes":[]}`, string(data))

	_, err = f.fetch("")
	assert.Error(t, err)

	dir, err := internal.TestDataPath("")
	require.NoError(t, err)
	data, err = f.fetch(filepath.Join(dir, "directions-v4.json"))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestNewRepository_InMemoryWithoutDSN(t *testing.T) {
	log, err := internal.NewLogger("development")
	require.NoError(t, err)

	repo, err := newRepository(config.DatabaseConfig{}, log)
	require.NoError(t, err)
	assert.NotNil(t, repo)
}
