package pipeline

import (
	"context"
	"time"

	errs "github.com/matzehuels/squiggly/pkg/errors"
	"github.com/matzehuels/squiggly/pkg/observability"
	"github.com/matzehuels/squiggly/pkg/render/sink"
	"github.com/matzehuels/squiggly/pkg/scene"
)

// Render generates output artifacts in the requested formats.
// The context is checked between formats; a single encoder is not interrupted.
func Render(ctx context.Context, sc scene.Scene, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := renderFormats(ctx, sc, opts, hooks)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

func renderFormats(ctx context.Context, sc scene.Scene, opts Options, hooks observability.PipelineHooks) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, done := artifacts[format]; done {
			continue
		}

		start := time.Now()
		data, err := renderFormat(sc, format, opts)
		if err != nil {
			code := errs.GetCode(err)
			if code == "" {
				code = errs.ErrCodeInternal
			}
			return nil, errs.Wrap(code, err, "render %s", format)
		}
		artifacts[format] = data
		hooks.OnArtifact(ctx, format, len(data), time.Since(start))
		opts.Logger.Debug("rendered artifact", "format", format, "bytes", len(data), "duration", time.Since(start))
	}
	return artifacts, nil
}

func renderFormat(sc scene.Scene, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(sc, sink.WithLineIDs()), nil
	case FormatPNG:
		return sink.RenderPNG(sc, sink.WithScale(opts.Scale))
	case FormatPDF, FormatEPS, FormatTIFF, FormatJPEG:
		return sink.RenderPlot(sc, format)
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}
