package storage

import (
	"context"
	"slices"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"
)

// Preferences keys are namespaced so the store never touches settings keys
const (
	prefsKeyPrefix = "store."
	prefsIndexKey  = "store.__keys"
)

// preferencesStore keeps values in Fyne app preferences. Preferences cannot
// enumerate or clear keys, so the keys written here are tracked in an index.
type preferencesStore struct {
	mu    sync.Mutex
	prefs fyne.Preferences
	log   zerolog.Logger
}

func newPreferencesStore(prefs fyne.Preferences, log zerolog.Logger) *preferencesStore {
	return &preferencesStore{prefs: prefs, log: log}
}

func (p *preferencesStore) Get(_ context.Context, key string) (string, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !slices.Contains(p.prefs.StringList(prefsIndexKey), key) {
		return "", false, nil
	}
	return p.prefs.String(prefsKeyPrefix + key), true, nil
}

func (p *preferencesStore) Set(_ context.Context, key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	index := p.prefs.StringList(prefsIndexKey)
	if !slices.Contains(index, key) {
		p.prefs.SetStringList(prefsIndexKey, append(index, key))
	}
	p.prefs.SetString(prefsKeyPrefix+key, value)
	return nil
}

func (p *preferencesStore) Delete(_ context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	index := p.prefs.StringList(prefsIndexKey)
	if i := slices.Index(index, key); i >= 0 {
		p.prefs.SetStringList(prefsIndexKey, slices.Delete(index, i, i+1))
	}
	p.prefs.RemoveValue(prefsKeyPrefix + key)
	return nil
}

func (p *preferencesStore) Clear(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	index := p.prefs.StringList(prefsIndexKey)
	for _, key := range index {
		p.prefs.RemoveValue(prefsKeyPrefix + key)
	}
	p.prefs.RemoveValue(prefsIndexKey)
	p.log.Debug().Int("keys", len(index)).Msg("preferences cleared")
	return nil
}

// Close is a no-op: Fyne persists preferences itself
func (p *preferencesStore) Close() error {
	return nil
}
