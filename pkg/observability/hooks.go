// Package observability lets applications watch the figure pipeline
// without the library packages importing a metrics or tracing stack.
//
// The pipeline reports every compose, render, artifact and cache lookup to
// the registered [PipelineHooks]. The default hooks do nothing. [LogHooks]
// forwards the events to a charmbracelet/log logger; anything else (metrics,
// traces) implements the interface, usually by embedding [NoopPipelineHooks].
//
// Hooks are registered once by main, before any pipeline call:
//
//	observability.SetPipelineHooks(observability.NewLogHooks(logger))
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// PipelineHooks receives events from the figure pipeline.
type PipelineHooks interface {
	OnComposeStart(ctx context.Context, name string)
	OnComposeComplete(ctx context.Context, name string, lineCount int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, formats []string)
	OnArtifact(ctx context.Context, format string, size int, duration time.Duration)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)

	// OnCacheLookup fires once per format consulted in the artifact cache.
	OnCacheLookup(ctx context.Context, format string, hit bool)
}

// NoopPipelineHooks ignores every event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnComposeStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnComposeComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                              {}
func (NoopPipelineHooks) OnArtifact(context.Context, string, int, time.Duration)               {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)     {}
func (NoopPipelineHooks) OnCacheLookup(context.Context, string, bool)                          {}

// LogHooks writes pipeline events to a logger at debug level. Failed
// composes and renders are logged as errors.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks logging to l under the "pipeline" prefix.
func NewLogHooks(l *log.Logger) *LogHooks {
	return &LogHooks{Logger: l.WithPrefix("pipeline")}
}

func (h *LogHooks) OnComposeStart(_ context.Context, name string) {
	h.Logger.Debug("compose", "figure", name)
}

func (h *LogHooks) OnComposeComplete(_ context.Context, name string, lineCount int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Error("compose failed", "figure", name, "err", err)
		return
	}
	h.Logger.Debug("composed", "figure", name, "lines", lineCount, "took", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render", "formats", formats)
}

func (h *LogHooks) OnArtifact(_ context.Context, format string, size int, d time.Duration) {
	h.Logger.Debug("artifact", "format", format, "bytes", size, "took", d)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Error("render failed", "formats", formats, "err", err)
		return
	}
	h.Logger.Debug("rendered", "formats", formats, "took", d)
}

func (h *LogHooks) OnCacheLookup(_ context.Context, format string, hit bool) {
	h.Logger.Debug("cache", "format", format, "hit", hit)
}

var (
	hooksMu       sync.RWMutex
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
)

// SetPipelineHooks registers h. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h == nil {
		return
	}
	hooksMu.Lock()
	pipelineHooks = h
	hooksMu.Unlock()
}

// Pipeline returns the registered hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op hooks.
func Reset() {
	hooksMu.Lock()
	pipelineHooks = NoopPipelineHooks{}
	hooksMu.Unlock()
}
