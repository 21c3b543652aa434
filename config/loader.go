package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/transit-directions/directions"
)

// Environment overrides
const (
	EnvConfigPath  = "DIRECTIONS_CONFIG"
	EnvDatabaseDSN = "DIRECTIONS_DATABASE_DSN"
)

// Defaults applied after loading
const (
	DefaultPort         = 16181
	DefaultRecentsLimit = 20
)

// SearchPaths are tried in order when no explicit path is given.
var SearchPaths = []string{"config.yml", "./config/config.yml"}

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads the configuration into Config.
func LoadAppConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	Config = *cfg
	return nil
}

// Load reads and validates the configuration. An empty path falls back to
// $DIRECTIONS_CONFIG and then to SearchPaths.
func Load(path string) (*AppConfig, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	paths := SearchPaths
	if path != "" {
		paths = []string{path}
	}

	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML configuration data.
func Parse(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if dsn := os.Getenv(EnvDatabaseDSN); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Recents.Limit == 0 {
		cfg.Recents.Limit = DefaultRecentsLimit
	}
	return &cfg, nil
}

// Validate checks struct tags and values the tags can not express.
func (c *AppConfig) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Directions.Locale != "" {
		if _, ok := directions.ParseLocale(c.Directions.Locale); !ok {
			return fmt.Errorf("invalid config: %w", errors.New("directions.locale is not a BCP 47 identifier"))
		}
	}
	return nil
}
