package storage

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"
)

// Open initializes the configured store. prefs is only used by the
// "preferences" driver and may be nil otherwise.
func Open(cfg Config, prefs fyne.Preferences, log zerolog.Logger) (Store, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	if driver == "" || driver == "none" {
		return nil, ErrDisabled
	}

	log = log.With().Str("component", "storage").Str("driver", driver).Logger()

	switch driver {
	case "preferences":
		if prefs == nil {
			return nil, errors.New("preferences storage requires an app")
		}
		return newPreferencesStore(prefs, log), nil
	case "sqlite", "sqlite3":
		return openSQLite(cfg, log)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, errors.New("unknown storage driver: " + driver)
	}
}
