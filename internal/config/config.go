package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ytget/art-gallery/internal/logging"
)

// Storage drivers understood by storage.Open
const (
	DriverPreferences = "preferences"
	DriverSQLite      = "sqlite"
	DriverMemory      = "memory"
	DriverNone        = "none"
)

// API and feed defaults
const (
	DefaultBaseURL           = "https://api.artic.edu/api/v1"
	DefaultIIIFURL           = "https://www.artic.edu/iiif/2"
	DefaultUserAgent         = "art-gallery (https://github.com/ytget/art-gallery)"
	DefaultTimeout           = "15s"
	DefaultRequestsPerSecond = 1.0
	DefaultBurst             = 5
	DefaultImageConcurrency  = 6
	DefaultPageSize          = 20
	DefaultGridPageSize      = 24
	DefaultCardWidth         = 600
	DefaultLogLevel          = "info"
)

// Limits enforced by Validate and by Settings setters
const (
	MinCardWidth = 200
	MaxCardWidth = 1920
	MinPageSize  = 1
	MaxPageSize  = 100 // the API refuses larger pages
)

// Config holds everything needed to talk to the API and persist local state
type Config struct {
	API     APIConfig     `yaml:"api"`
	Feed    FeedConfig    `yaml:"feed"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// APIConfig configures the museum API client
type APIConfig struct {
	BaseURL           string  `yaml:"base_url"`
	IIIFURL           string  `yaml:"iiif_url"`
	UserAgent         string  `yaml:"user_agent"`
	Timeout           string  `yaml:"timeout"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
	ImageConcurrency  int     `yaml:"image_concurrency"`
}

// FeedConfig sizes the paginated screens
type FeedConfig struct {
	PageSize     int `yaml:"page_size"`
	GridPageSize int `yaml:"grid_page_size"`
	CardWidth    int `yaml:"card_width"`
}

// StorageConfig selects the persistent key-value store
type StorageConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// LogConfig configures zerolog output
type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:           DefaultBaseURL,
			IIIFURL:           DefaultIIIFURL,
			UserAgent:         DefaultUserAgent,
			Timeout:           DefaultTimeout,
			RequestsPerSecond: DefaultRequestsPerSecond,
			Burst:             DefaultBurst,
			ImageConcurrency:  DefaultImageConcurrency,
		},
		Feed: FeedConfig{
			PageSize:     DefaultPageSize,
			GridPageSize: DefaultGridPageSize,
			CardWidth:    DefaultCardWidth,
		},
		Storage: StorageConfig{
			Driver: DriverSQLite,
		},
		Log: LogConfig{
			Level:   DefaultLogLevel,
			Console: true,
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes configuration to a YAML file, creating its directory
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ART_GALLERY_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("ART_GALLERY_IIIF_URL"); v != "" {
		c.API.IIIFURL = v
	}
	if v := os.Getenv("ART_GALLERY_STORE"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("ART_GALLERY_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("ART_GALLERY_RPS"); v != "" {
		if rps, err := strconv.ParseFloat(v, 64); err == nil {
			c.API.RequestsPerSecond = rps
		}
	}
}

// DefaultStorePath fills storage.path for the sqlite driver when it is unset.
// The CLI and the GUI pass the same platform default so both open one library.
func (c *Config) DefaultStorePath(path func() (string, error)) error {
	if c.Storage.Driver != DriverSQLite || c.Storage.Path != "" {
		return nil
	}
	p, err := path()
	if err != nil {
		return err
	}
	c.Storage.Path = p
	return nil
}

// Validate checks that the configuration can drive a client
func (c *Config) Validate() error {
	for name, raw := range map[string]string{"api.base_url": c.API.BaseURL, "api.iiif_url": c.API.IIIFURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid %s: %q", name, raw)
		}
	}

	if _, err := time.ParseDuration(c.API.Timeout); err != nil {
		return fmt.Errorf("invalid api.timeout %q: %w", c.API.Timeout, err)
	}
	if c.API.RequestsPerSecond <= 0 {
		return fmt.Errorf("api.requests_per_second must be positive, got %v", c.API.RequestsPerSecond)
	}
	if c.API.Burst < 1 {
		return fmt.Errorf("api.burst must be at least 1, got %d", c.API.Burst)
	}
	if c.API.ImageConcurrency < 1 {
		return fmt.Errorf("api.image_concurrency must be at least 1, got %d", c.API.ImageConcurrency)
	}

	if c.Feed.PageSize < MinPageSize || c.Feed.PageSize > MaxPageSize {
		return fmt.Errorf("feed.page_size must be within [%d, %d], got %d", MinPageSize, MaxPageSize, c.Feed.PageSize)
	}
	if c.Feed.GridPageSize < MinPageSize || c.Feed.GridPageSize > MaxPageSize {
		return fmt.Errorf("feed.grid_page_size must be within [%d, %d], got %d", MinPageSize, MaxPageSize, c.Feed.GridPageSize)
	}
	if c.Feed.CardWidth < MinCardWidth || c.Feed.CardWidth > MaxCardWidth {
		return fmt.Errorf("feed.card_width must be within [%d, %d], got %d", MinCardWidth, MaxCardWidth, c.Feed.CardWidth)
	}

	switch c.Storage.Driver {
	case DriverPreferences, DriverMemory, DriverNone, "":
	case DriverSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the %s driver", DriverSQLite)
		}
	default:
		return fmt.Errorf("unknown storage.driver: %q", c.Storage.Driver)
	}

	return nil
}

// GetTimeout returns the API timeout, falling back to the default
func (c *Config) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultTimeout)
	}
	return d
}

// Logging returns the logger settings
func (c *Config) Logging() logging.Config {
	return logging.Config{Level: c.Log.Level, Console: c.Log.Console}
}
