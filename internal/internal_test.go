package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	prod, err := NewLogger("production")
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zapcore.DebugLevel))

	dev, err := NewLogger("development")
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))
}

func TestRecordAccessors(t *testing.T) {
	rec := map[string]any{
		"distance": 12.5,
		"name":     "B96",
		"leg":      map[string]any{},
		"speeds":   []any{1.0, 2.0},
		"mixed":    []any{1.0, "two"},
		"tags":     []any{"a", "b"},
	}

	f, ok := Float(rec, "distance")
	assert.True(t, ok)
	assert.Equal(t, 12.5, f)

	_, ok = Float(rec, "name")
	assert.False(t, ok)

	s, ok := String(rec, "name")
	assert.True(t, ok)
	assert.Equal(t, "B96", s)

	_, ok = Object(rec, "leg")
	assert.True(t, ok)

	fs, ok := Floats(rec, "speeds")
	assert.True(t, ok)
	assert.Equal(t, []float64{1, 2}, fs)

	_, ok = Floats(rec, "mixed")
	assert.False(t, ok)

	ss, ok := Strings(rec, "tags")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, ss)

	_, ok = Array(rec, "missing")
	assert.False(t, ok)
}

func TestReadTestData(t *testing.T) {
	data, err := ReadTestData("directions-v5.json")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestTestDataPath(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	_, err := TestDataPath(nested)
	assert.ErrorIs(t, err, ErrNoTestData)

	// A plain file named testdata does not count.
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "testdata"), nil, 0o644))
	_, err = TestDataPath(nested)
	assert.ErrorIs(t, err, ErrNoTestData)

	require.NoError(t, os.Mkdir(filepath.Join(root, "testdata"), 0o755))
	got, err := TestDataPath(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "testdata"), got)
}
