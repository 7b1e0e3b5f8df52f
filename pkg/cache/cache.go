// Package cache provides key/value caching for scenes and rendered artifacts.
//
// # Backends
//
//   - [FileCache]: JSON entries on disk, used by the CLI
//   - [RedisCache]: shared cache for the HTTP server
//   - [NullCache]: never stores anything (--no-cache)
//
// # Keys
//
// Keys are produced by a [Keyer] so that identical inputs map to identical
// entries regardless of backend. Scene keys hash the structure, its input and
// the frame size; artifact keys hash the scene key plus output options.
//
//	k := cache.NewDefaultKeyer()
//	sceneKey := k.SceneKey(cache.SceneKeyOpts{Structure: "bst", Values: vals})
//	svgKey := k.ArtifactKey(sceneKey, cache.ArtifactKeyOpts{Format: "svg"})
package cache

import (
	"context"
	"time"
)

// Default TTLs.
const (
	// SceneTTL is how long computed scenes stay cached.
	SceneTTL = 7 * 24 * time.Hour

	// ArtifactTTL is how long rendered outputs stay cached.
	ArtifactTTL = 7 * 24 * time.Hour
)

// Cache is the interface implemented by all cache backends.
type Cache interface {
	// Get returns the data stored under key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
