// Package cache memoizes rendered figure artifacts within a process.
//
// Rendering is deterministic for a fixed seed, so the bytes produced for a
// given figure, format and set of render options can be reused. The
// [Cache] interface has two implementations: [MemoryCache] for callers
// that render the same figures repeatedly and [NullCache] when caching is
// disabled. Nothing is written to disk.
//
// Keys come from a [Keyer]; [DefaultKeyer] hashes every option that can
// change the output:
//
//	k := cache.NewDefaultKeyer()
//	key := k.ArtifactKey("demo:sine", cache.ArtifactKeyOpts{Format: "png", Seed: 42})
//	data, ok, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// DefaultArtifactTTL is how long rendered artifacts stay valid.
const DefaultArtifactTTL = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactKeyOpts are the render settings that affect artifact bytes.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Scale    float64 `json:"scale"`
	Seed     uint64  `json:"seed"`
	Theme    string  `json:"theme"`    // hash of the encoded theme, empty for default
	Location string  `json:"location"` // time zone of date labels
	Version  string  `json:"version"`  // build version, so upgrades never reuse stale output
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey returns the key for one rendered format of figure.
	ArtifactKey(figure string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the figure identity together with its options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(figure string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, figure, opts)
}
