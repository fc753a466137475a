// Package securestore defines the secure local key-value store the session
// and notification settings are persisted to. Operations may block on I/O and
// may fail; callers decide whether a failure is fatal.
//
//go:generate mockgen -package mocksecurestore -source=interface.go -destination=mock/mocksecurestore.go *
package securestore

import (
	"context"
	"errors"
)

// ErrCorrupt is returned by Get when a stored value exists but cannot be
// authenticated or decoded.
var ErrCorrupt = errors.New("stored value is corrupt")

// Store is a string key-value store. Set always overwrites the whole value.
type Store interface {
	// Get returns the value stored under key. found is false when the key is
	// absent, in which case err is nil.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
