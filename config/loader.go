package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultBaseURL is the public NextBus-style feed endpoint.
	DefaultBaseURL = "https://webservices.nextbus.com/service/publicXMLFeed"
	// DefaultAgency identifies the transit agency queried by default.
	DefaultAgency = "wku"

	defaultTimeoutMS    = 10000
	defaultIntervalMS   = 30000
	defaultMaxBodyBytes = 1 << 20
)

// Default returns a ready-to-use configuration pointing at the public feed.
func Default() AppConfig {
	cfg := AppConfig{}
	applyDefaults(&cfg)
	return cfg
}

// Load reads and validates the application configuration. The first readable
// path wins; with no arguments it tries config.yml in the working directory.
// Missing optional fields are filled with defaults after validation.
func Load(paths ...string) (AppConfig, error) {
	if len(paths) == 0 {
		paths = []string{"config.yml"}
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
		return AppConfig{}, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	applyDefaults(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Feed.BaseURL == "" {
		cfg.Feed.BaseURL = DefaultBaseURL
	}
	if cfg.Feed.Agency == "" {
		cfg.Feed.Agency = DefaultAgency
	}
	if cfg.Feed.TimeoutMS == 0 {
		cfg.Feed.TimeoutMS = defaultTimeoutMS
	}
	if cfg.Feed.MaxBodyBytes == 0 {
		cfg.Feed.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.Polling.IntervalMS == 0 {
		cfg.Polling.IntervalMS = defaultIntervalMS
	}
}
