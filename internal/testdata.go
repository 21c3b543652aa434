package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNoTestData is returned when no testdata directory exists above the
// working directory.
var ErrNoTestData = errors.New("no testdata directory found")

// TestDataPath returns the nearest testdata directory at or above dir.
// An empty dir means the working directory.
func TestDataPath(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}
	for {
		candidate := filepath.Join(dir, "testdata")
		info, err := os.Stat(candidate)
		switch {
		case err == nil && info.IsDir():
			return candidate, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("failed to inspect %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoTestData
		}
		dir = parent
	}
}

// ReadTestData reads a file from the nearest testdata directory.
func ReadTestData(name string) ([]byte, error) {
	dir, err := TestDataPath("")
	if err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(dir, name))
}
