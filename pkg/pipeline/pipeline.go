// Package pipeline provides the figure pipeline shared by squiggly entry points.
//
// This package implements the compose → render pipeline: a caller-supplied
// function draws onto a fresh [figure.Figure], and the resulting scene is
// rendered into every requested format. Centralizing this keeps defaults,
// validation and instrumentation identical for the CLI and library users.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	opts := pipeline.Options{
//	    Name:    "traffic",
//	    Formats: []string{"svg", "png"},
//	    Seed:    7,
//	}
//	result, err := runner.Execute(ctx, opts, func(ctx context.Context, f *figure.Figure) error {
//	    if err := f.DrawLine(s); err != nil {
//	        return err
//	    }
//	    return f.DrawGrid(s.XBounds(), s.YBounds())
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// # Caching
//
// When a [cache.Cache] is supplied and Options.CacheKey identifies the
// composition, artifacts are looked up before composing and stored after
// rendering. The key covers every option that changes the output bytes.
//
// Render an existing scene:
//
//	artifacts, err := pipeline.Render(ctx, fig.Scene(), opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/squiggly/pkg/errors"
	"github.com/matzehuels/squiggly/pkg/figure"
	"github.com/matzehuels/squiggly/pkg/render/styles"
	"github.com/matzehuels/squiggly/pkg/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = figure.DefaultWidth

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = figure.DefaultHeight

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 1.0

	// DefaultName labels pipeline runs in logs and hooks.
	DefaultName = "figure"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatEPS  = "eps"
	FormatTIFF = "tif"
	FormatJPEG = "jpg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatEPS:  true,
	FormatTIFF: true,
	FormatJPEG: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the figure pipeline.
type Options struct {
	Name     string         // run label for logs and hooks
	Width    float64        // canvas width in pixels
	Height   float64        // canvas height in pixels
	Seed     uint64         // noise seed; zero means DefaultSeed unless SeedSet
	SeedSet  bool           // use Seed as given, even when zero
	Formats  []string       // output formats
	Scale    float64        // PNG scale factor
	Theme    *styles.Theme  // nil means the default theme
	Location *time.Location // time zone for date labels

	// CacheKey identifies what the compose function draws. Empty disables
	// artifact caching for the run.
	CacheKey string

	// Runtime options
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the composed display list.
	Scene scene.Scene

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Cached      bool // artifacts came from the cache; nothing was composed
	LineCount   int
	TextCount   int
	ComposeTime time.Duration
	RenderTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, eps, tif, jpg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Width <= 0 || o.Height <= 0 {
		return errs.New(errs.ErrCodeConfiguration, "canvas size must be positive, got %vx%v", o.Width, o.Height)
	}
	if o.Scale <= 0 {
		return errs.New(errs.ErrCodeConfiguration, "scale must be positive, got %v", o.Scale)
	}
	if o.Theme != nil {
		if err := o.Theme.Validate(); err != nil {
			return err
		}
	}
	o.validated = true
	return nil
}

// SetDefaults fills zero values with defaults.
func (o *Options) SetDefaults() {
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Seed == 0 && !o.SeedSet {
		o.Seed = DefaultSeed
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// FigureOptions returns the figure options implied by o.
func (o *Options) FigureOptions() []figure.Option {
	opts := []figure.Option{
		figure.WithSize(o.Width, o.Height),
		figure.WithSeed(o.Seed),
		figure.WithLocation(o.Location),
		figure.WithLogger(o.Logger),
	}
	if o.Theme != nil {
		opts = append(opts, figure.WithTheme(*o.Theme))
	}
	return opts
}

func (o *Options) String() string {
	return fmt.Sprintf("%s %vx%v seed=%d formats=%v", o.Name, o.Width, o.Height, o.Seed, o.Formats)
}
