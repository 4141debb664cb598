package config

// FeedConfig describes the upstream transit feed endpoint
type FeedConfig struct {
	BaseURL      string `yaml:"baseURL" validate:"required,url"`
	Agency       string `yaml:"agency" validate:"required"`
	TimeoutMS    int    `yaml:"timeoutMS" validate:"gte=0"`
	MaxBodyBytes int64  `yaml:"maxBodyBytes" validate:"gte=0"`
}

// PollingConfig controls the live-data refresh loop
type PollingConfig struct {
	IntervalMS int `yaml:"intervalMS" validate:"gte=0"`
}

// AggregationConfig controls multi-route prediction aggregation
type AggregationConfig struct {
	// Concurrent fans the per-route prediction fetches out in parallel
	// while preserving route order.
	Concurrent bool `yaml:"concurrent"`
	// PartialResults returns whatever routes succeeded alongside the
	// error instead of aborting on the first failure.
	PartialResults bool `yaml:"partialResults"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Feed        FeedConfig        `yaml:"feed" validate:"required"`
	Polling     PollingConfig     `yaml:"polling"`
	Aggregation AggregationConfig `yaml:"aggregation"`
}
