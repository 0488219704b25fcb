package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/squiggly/pkg/buildinfo"
	"github.com/matzehuels/squiggly/pkg/cache"
	"github.com/matzehuels/squiggly/pkg/figure"
	"github.com/matzehuels/squiggly/pkg/observability"
	"github.com/matzehuels/squiggly/pkg/render/styles"
)

// ComposeFunc draws onto a fresh figure.
type ComposeFunc func(ctx context.Context, f *figure.Figure) error

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for its dependencies (cache, keyer, logger) -
// it doesn't store pipeline results. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. Nil arguments fall back to a null cache,
// the default keyer and log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs the complete compose → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options, compose ComposeFunc) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	keys := r.artifactKeys(opts)
	if artifacts, ok := r.lookup(ctx, keys); ok {
		result.Artifacts = artifacts
		result.Stats.Cached = true
		r.Logger.Info("using cached outputs", "name", opts.Name, "formats", opts.Formats)
		return result, nil
	}

	// Stage 1: Compose
	composeStart := time.Now()
	fig, err := r.Compose(ctx, opts, compose)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	result.Scene = fig.Scene()
	result.Stats.ComposeTime = time.Since(composeStart)
	result.Stats.LineCount = len(result.Scene.Lines)
	result.Stats.TextCount = len(result.Scene.Texts)

	r.Logger.Info("composed figure",
		"name", opts.Name,
		"lines", result.Stats.LineCount,
		"texts", result.Stats.TextCount,
		"duration", result.Stats.ComposeTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, err := Render(ctx, result.Scene, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	r.store(ctx, keys, artifacts)
	return result, nil
}

// Compose creates a figure from opts and runs compose on it.
func (r *Runner) Compose(ctx context.Context, opts Options, compose ComposeFunc) (*figure.Figure, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnComposeStart(ctx, opts.Name)
	start := time.Now()

	fig, err := figure.New(opts.FigureOptions()...)
	if err == nil {
		err = compose(ctx, fig)
	}

	lines := 0
	if fig != nil {
		lines = len(fig.Scene().Lines)
	}
	hooks.OnComposeComplete(ctx, opts.Name, lines, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return fig, nil
}

// =============================================================================
// Caching
// =============================================================================

// artifactKeys returns the cache key per format, or nil when the run has
// no CacheKey.
func (r *Runner) artifactKeys(opts Options) map[string]string {
	if opts.CacheKey == "" {
		return nil
	}
	theme := ""
	if opts.Theme != nil {
		var buf bytes.Buffer
		if err := styles.EncodeTheme(&buf, *opts.Theme); err != nil {
			return nil
		}
		theme = cache.Hash(buf.Bytes())
	}

	keys := make(map[string]string, len(opts.Formats))
	for _, format := range opts.Formats {
		keys[format] = r.Keyer.ArtifactKey(opts.CacheKey, cache.ArtifactKeyOpts{
			Format:   format,
			Width:    opts.Width,
			Height:   opts.Height,
			Scale:    opts.Scale,
			Seed:     opts.Seed,
			Theme:    theme,
			Location: opts.Location.String(),
			Version:  buildinfo.Version,
		})
	}
	return keys
}

// lookup returns the cached artifacts when every format is present.
// Cache failures are logged and treated as misses.
func (r *Runner) lookup(ctx context.Context, keys map[string]string) (map[string][]byte, bool) {
	if len(keys) == 0 {
		return nil, false
	}
	hooks := observability.Pipeline()
	artifacts := make(map[string][]byte, len(keys))
	for format, key := range keys {
		data, ok, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache lookup failed", "format", format, "error", err)
			ok = false
		}
		hooks.OnCacheLookup(ctx, format, ok)
		if !ok {
			return nil, false
		}
		artifacts[format] = data
	}
	return artifacts, true
}

// store writes artifacts to the cache. Failures only cost a future re-render.
func (r *Runner) store(ctx context.Context, keys map[string]string, artifacts map[string][]byte) {
	for format, key := range keys {
		if err := r.Cache.Set(ctx, key, artifacts[format], cache.DefaultArtifactTTL); err != nil {
			r.Logger.Warn("cache store failed", "format", format, "error", err)
		}
	}
}
