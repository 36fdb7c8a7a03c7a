package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/art-gallery/internal/logging"
	"github.com/ytget/art-gallery/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyCardWidth    = "card_width"
	KeyPageSize     = "page_size"
	KeyGridPageSize = "grid_page_size"
	KeyLogLevel     = "log_level"
	KeyAPIBaseURL   = "api_base_url"
	KeyStorage      = "storage_driver"
	KeyStorePath    = "storage_path"
)

// Settings manages the GUI configuration stored in app preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetCardWidth returns the width feed images are sized for
func (s *Settings) GetCardWidth() int {
	value := s.app.Preferences().Int(KeyCardWidth)
	if value <= 0 {
		s.SetCardWidth(DefaultCardWidth)
		return DefaultCardWidth
	}
	return value
}

// SetCardWidth sets the feed image width
func (s *Settings) SetCardWidth(width int) {
	s.app.Preferences().SetInt(KeyCardWidth, model.Clamp(width, MinCardWidth, MaxCardWidth))
}

// GetPageSize returns the number of artworks fetched per feed page
func (s *Settings) GetPageSize() int {
	value := s.app.Preferences().Int(KeyPageSize)
	if value <= 0 {
		s.SetPageSize(DefaultPageSize)
		return DefaultPageSize
	}
	return value
}

// SetPageSize sets the feed page size
func (s *Settings) SetPageSize(size int) {
	s.app.Preferences().SetInt(KeyPageSize, model.Clamp(size, MinPageSize, MaxPageSize))
}

// GetGridPageSize returns the number of thumbnails fetched per grid page
func (s *Settings) GetGridPageSize() int {
	value := s.app.Preferences().Int(KeyGridPageSize)
	if value <= 0 {
		s.SetGridPageSize(DefaultGridPageSize)
		return DefaultGridPageSize
	}
	return value
}

// SetGridPageSize sets the grid page size
func (s *Settings) SetGridPageSize(size int) {
	s.app.Preferences().SetInt(KeyGridPageSize, model.Clamp(size, MinPageSize, MaxPageSize))
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().String(KeyLogLevel)
	if level == "" {
		s.SetLogLevel(DefaultLogLevel)
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel sets the log level
func (s *Settings) SetLogLevel(level string) {
	if level == "" {
		level = DefaultLogLevel
	}
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetLogLevelOptions returns available log levels
func (s *Settings) GetLogLevelOptions() []string {
	return logging.Levels()
}

// GetAPIBaseURL returns the museum API endpoint
func (s *Settings) GetAPIBaseURL() string {
	u := s.app.Preferences().String(KeyAPIBaseURL)
	if u == "" {
		s.SetAPIBaseURL(DefaultBaseURL)
		return DefaultBaseURL
	}
	return u
}

// SetAPIBaseURL sets the museum API endpoint
func (s *Settings) SetAPIBaseURL(u string) {
	if u == "" {
		u = DefaultBaseURL
	}
	s.app.Preferences().SetString(KeyAPIBaseURL, u)
}

// GetStorageDriverOptions returns the library stores the GUI can use.
// sqlite shares the library with gallery-cli.
func (s *Settings) GetStorageDriverOptions() []string {
	return []string{DriverPreferences, DriverSQLite}
}

// GetStorageDriver returns where the GUI keeps the library
func (s *Settings) GetStorageDriver() string {
	driver := s.app.Preferences().String(KeyStorage)
	if driver != DriverPreferences && driver != DriverSQLite {
		s.SetStorageDriver(DriverPreferences)
		return DriverPreferences
	}
	return driver
}

// SetStorageDriver sets the library store; unknown drivers fall back to preferences
func (s *Settings) SetStorageDriver(driver string) {
	if driver != DriverSQLite {
		driver = DriverPreferences
	}
	s.app.Preferences().SetString(KeyStorage, driver)
}

// GetStorePath returns the sqlite library path; empty means the default path
func (s *Settings) GetStorePath() string {
	return s.app.Preferences().String(KeyStorePath)
}

// SetStorePath sets the sqlite library path
func (s *Settings) SetStorePath(path string) {
	s.app.Preferences().SetString(KeyStorePath, path)
}

// Config merges the stored settings onto the defaults. The GUI persists its
// settings through app preferences rather than a file.
func (s *Settings) Config() *Config {
	cfg := Default()
	cfg.API.BaseURL = s.GetAPIBaseURL()
	cfg.Feed.CardWidth = s.GetCardWidth()
	cfg.Feed.PageSize = s.GetPageSize()
	cfg.Feed.GridPageSize = s.GetGridPageSize()
	cfg.Log.Level = s.GetLogLevel()
	cfg.Storage.Driver = s.GetStorageDriver()
	if cfg.Storage.Driver == DriverSQLite {
		cfg.Storage.Path = s.GetStorePath()
	}
	return cfg
}
