package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("ART_GALLERY_API_URL", "")
	t.Setenv("ART_GALLERY_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultIIIFURL, cfg.API.IIIFURL)
	assert.Equal(t, DefaultPageSize, cfg.Feed.PageSize)
	assert.Equal(t, DefaultGridPageSize, cfg.Feed.GridPageSize)
	assert.Equal(t, DefaultCardWidth, cfg.Feed.CardWidth)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("ART_GALLERY_STORE", "")
	t.Setenv("ART_GALLERY_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Feed.CardWidth = 720
	cfg.Storage.Path = "/tmp/gallery.db"
	cfg.Log.Level = "debug"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 720, loaded.Feed.CardWidth)
	assert.Equal(t, "/tmp/gallery.db", loaded.Storage.Path)
	assert.Equal(t, "debug", loaded.Log.Level)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("feed:\n  page_size: 5\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Feed.PageSize)
	assert.Equal(t, DefaultGridPageSize, cfg.Feed.GridPageSize)
	assert.Equal(t, DefaultTimeout, cfg.API.Timeout)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("feed: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ART_GALLERY_API_URL", "http://127.0.0.1:9999/api/v1")
	t.Setenv("ART_GALLERY_LOG_LEVEL", "trace")
	t.Setenv("ART_GALLERY_RPS", "4.5")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999/api/v1", cfg.API.BaseURL)
	assert.Equal(t, "trace", cfg.Log.Level)
	assert.Equal(t, 4.5, cfg.API.RequestsPerSecond)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"sqlite with path", func(c *Config) { c.Storage.Path = "/tmp/x.db" }, false},
		{"sqlite without path", func(c *Config) {}, true},
		{"memory driver", func(c *Config) { c.Storage.Driver = DriverMemory }, false},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "redis" }, true},
		{"relative base url", func(c *Config) { c.Storage.Driver = DriverMemory; c.API.BaseURL = "/api" }, true},
		{"bad timeout", func(c *Config) { c.Storage.Driver = DriverMemory; c.API.Timeout = "soon" }, true},
		{"zero rps", func(c *Config) { c.Storage.Driver = DriverMemory; c.API.RequestsPerSecond = 0 }, true},
		{"page too large", func(c *Config) { c.Storage.Driver = DriverMemory; c.Feed.PageSize = 101 }, true},
		{"card too narrow", func(c *Config) { c.Storage.Driver = DriverMemory; c.Feed.CardWidth = 50 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetTimeout(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 15*time.Second, cfg.GetTimeout())

	cfg.API.Timeout = "bogus"
	assert.Equal(t, 15*time.Second, cfg.GetTimeout())

	cfg.API.Timeout = "2s"
	assert.Equal(t, 2*time.Second, cfg.GetTimeout())
}

func TestLogging(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "error"
	lc := cfg.Logging()
	assert.Equal(t, "error", lc.Level)
	assert.True(t, lc.Console)
}
