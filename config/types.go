package config

import (
	"github.com/theoremus-urban-solutions/transit-directions/directions"
)

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// LoggingConfig selects the logger preset
type LoggingConfig struct {
	Env string `yaml:"env" validate:"omitempty,oneof=development production"`
}

// DirectionsConfig holds request defaults. Unset fields keep the library
// defaults.
type DirectionsConfig struct {
	APIVersion                string                        `yaml:"apiVersion" validate:"omitempty,oneof=v5 v4"`
	Profile                   string                        `yaml:"profile"`
	Locale                    string                        `yaml:"locale"`
	ShapeFormat               *directions.ShapeFormat       `yaml:"shapeFormat"`
	RouteShapeResolution      *directions.ShapeResolution   `yaml:"routeShapeResolution"`
	DistanceMeasurementSystem *directions.MeasurementSystem `yaml:"distanceMeasurementSystem"`
	IncludesSteps             *bool                         `yaml:"includesSteps"`
	IncludesAlternativeRoutes *bool                         `yaml:"includesAlternativeRoutes"`

	// v4 only
	InstructionFormat *directions.InstructionFormat `yaml:"instructionFormat"`
	IncludesShapes    *bool                         `yaml:"includesShapes"`
}

// DatabaseConfig points at the recent-search store. An empty DSN keeps
// recent searches in memory.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// RecentsConfig limits the recent-search history
type RecentsConfig struct {
	Limit int `yaml:"limit" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	Directions DirectionsConfig `yaml:"directions"`
	Database   DatabaseConfig   `yaml:"database"`
	Recents    RecentsConfig    `yaml:"recents"`
}
