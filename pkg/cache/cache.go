// Package cache stores solver results and rendered artifacts between runs.
//
// All backends implement [Cache], a byte-oriented key/value store with
// per-entry expiry:
//
//   - [NullCache] stores nothing (caching disabled)
//   - [FileCache] keeps one JSON file per entry under a directory
//   - [RedisCache] talks to a Redis server
//   - [MongoCache] keeps one document per entry in a MongoDB collection
//
// [Open] picks a backend from a short spec string such as "file", "none" or
// a redis:// / mongodb:// URL. Keys are produced by a [Keyer] so every
// backend sees the same key layout.
package cache

import (
	"context"
	"time"
)

// Default time-to-live values. Results depend only on the maze text, so
// they are kept for a long time.
const (
	TTLResult   = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// keyVersion is bumped whenever the cached encoding of results changes.
const keyVersion = 1

// Cache is a key/value store with expiring entries.
//
// Get reports a miss with hit == false and a nil error. Implementations must
// be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer generates cache keys.
type Keyer interface {
	// SolveKey is the key of a solver result for the maze with the given
	// content hash.
	SolveKey(mazeHash string, opts SolveKeyOpts) string

	// ArtifactKey is the key of a rendered artifact of a maze.
	ArtifactKey(mazeHash string, opts ArtifactKeyOpts) string
}

// SolveKeyOpts holds the solver settings that change a result.
type SolveKeyOpts struct {
	StartDir string `json:"start_dir"`
}

// ArtifactKeyOpts holds the render settings that change an artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Color  bool   `json:"color"`
}

// DefaultKeyer produces "solve:<sha256>" and "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SolveKey implements Keyer.
func (DefaultKeyer) SolveKey(mazeHash string, opts SolveKeyOpts) string {
	return hashKey("solve", keyVersion, mazeHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(mazeHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", keyVersion, mazeHash, opts)
}
