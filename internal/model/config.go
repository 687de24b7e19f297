package model

import "time"

// Config is the full runtime configuration.
// Hierarchy: CLI flags > FNOLAGENT_* env vars > config file > defaults.
type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Extraction  ExtractionConfig  `yaml:"extraction"`
	Routing     RoutingConfig     `yaml:"routing"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Output      OutputConfig      `yaml:"output"`
}

// LLMConfig selects and configures the extraction provider
type LLMConfig struct {
	// Provider name: "gemini", "openai", "anthropic", "ollama"
	Provider string `yaml:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model"`

	// APIKey for hosted providers (prefer env vars)
	APIKey string `yaml:"api_key,omitempty"`

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string `yaml:"base_url,omitempty"`

	// Timeout for a single API request, in seconds
	Timeout int `yaml:"timeout"`

	// MaxTokens for the extraction response
	MaxTokens int `yaml:"max_tokens"`

	// Proxy settings
	HTTPProxy  string `yaml:"http_proxy,omitempty"`
	HTTPSProxy string `yaml:"https_proxy,omitempty"`
	NoProxy    string `yaml:"no_proxy,omitempty"`
}

// ExtractionConfig tunes the extraction step around the provider call
type ExtractionConfig struct {
	// MaxDocumentBytes caps how much document text is sent to the provider
	MaxDocumentBytes int `yaml:"max_document_bytes"`
}

// RoutingConfig holds the routing policy vocabularies. These are explicit
// configuration rather than package constants so tests and deployments can
// substitute them.
type RoutingConfig struct {
	// FraudKeywords scanned against the incident description, in the order
	// they should be reported.
	FraudKeywords []string `yaml:"fraud_keywords"`

	// FastTrackThreshold is the strict upper bound (exclusive) on damage
	// amount for fast-track eligibility, in dollars.
	FastTrackThreshold float64 `yaml:"fast_track_threshold"`
}

// CacheConfig controls the extraction cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig controls batch parallelism
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// RateLimitConfig throttles provider API calls
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// OutputConfig controls where results land and how chatty the console is
type OutputConfig struct {
	Dir     string `yaml:"dir"`
	Verbose bool   `yaml:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:  "gemini",
			Model:     "gemini-2.5-flash",
			Timeout:   60,
			MaxTokens: 2048,
		},
		Extraction: ExtractionConfig{
			MaxDocumentBytes: 200_000,
		},
		Routing: RoutingConfig{
			FraudKeywords:      []string{"fraud", "staged", "inconsistent", "suspicious", "fake"},
			FastTrackThreshold: 25_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".fnolagent-cache",
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2,
			Burst:             4,
		},
		Output: OutputConfig{
			Dir: "output",
		},
	}
}
