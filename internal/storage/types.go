package storage

import (
	"context"
	"errors"
	"time"
)

// ErrDisabled is returned by Open when no driver is configured
var ErrDisabled = errors.New("storage disabled")

// ErrClosed is returned by operations on a closed store
var ErrClosed = errors.New("storage closed")

// Config configures storage.
//
// Driver values are "preferences", "sqlite" and "memory".
// If Driver is empty or "none", storage is disabled.
type Config struct {
	Driver      string
	Path        string        // sqlite only
	BusyTimeout time.Duration // sqlite only; 0 means default
}

// Store is a string key-value store. Values are opaque to the store; callers
// keep JSON documents in them. Implementations are safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Clear removes every key written through the store
	Clear(ctx context.Context) error
	Close() error
}
