package figure

import (
	"fmt"

	"github.com/google/uuid"

	errs "github.com/matzehuels/squiggly/pkg/errors"
	"github.com/matzehuels/squiggly/pkg/render/styles"
	"github.com/matzehuels/squiggly/pkg/scene"
	"github.com/matzehuels/squiggly/pkg/series"
	"github.com/matzehuels/squiggly/pkg/squiggle"
)

// Defaults for data lines.
const (
	DefaultLineWidth = 3.0
	DefaultLineAlpha = 0.5
)

var lineNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("squiggly/line"))

type lineConfig struct {
	opts  squiggle.Options
	style styles.LineStyle
	label string
	save  bool
}

// LineOption configures a single DrawLine call.
type LineOption func(*lineConfig)

// WithDx sets the resample step as a percent of the x range.
func WithDx(perc float64) LineOption { return func(c *lineConfig) { c.opts.DxPerc = perc } }

// WithNoise sets the noise standard deviation.
func WithNoise(strength float64) LineOption {
	return func(c *lineConfig) { c.opts.NoiseStrength = strength }
}

// WithAutocorr sets the smoothing window as a percent of the resampled length.
func WithAutocorr(perc float64) LineOption {
	return func(c *lineConfig) { c.opts.AutocorrPerc = perc }
}

// WithWidth sets the stroke width.
func WithWidth(w float64) LineOption { return func(c *lineConfig) { c.style.Width = w } }

// WithAlpha sets the stroke opacity.
func WithAlpha(a float64) LineOption { return func(c *lineConfig) { c.style.Alpha = a } }

// WithColor sets the stroke color. Saved lines without a color take the
// next palette color.
func WithColor(color string) LineOption { return func(c *lineConfig) { c.style.Color = color } }

// WithDashed draws the line dashed.
func WithDashed() LineOption { return func(c *lineConfig) { c.style.Dashed = true } }

// WithLabel sets the legend label.
func WithLabel(label string) LineOption { return func(c *lineConfig) { c.label = label } }

// Unsaved keeps the line out of the legend.
func Unsaved() LineOption { return func(c *lineConfig) { c.save = false } }

// DrawLine squigglifies s and adds it to the figure.
func (f *Figure) DrawLine(s series.Series, opts ...LineOption) error {
	cfg := lineConfig{
		opts:  squiggle.DefaultOptions(),
		style: styles.LineStyle{Width: DefaultLineWidth, Alpha: DefaultLineAlpha},
		save:  true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := s.Validate(); err != nil {
		return err
	}
	if err := validateLineStyle(cfg.style); err != nil {
		return err
	}

	x, y, err := squiggle.Squigglify(s.X, s.Y, cfg.opts, f.src)
	if err != nil {
		return err
	}

	line := scene.Polyline{
		Label:  cfg.label,
		Points: scene.Zip(x, y),
		Style:  cfg.style,
	}
	if cfg.save {
		idx := len(f.saved)
		line.ID = uuid.NewSHA1(lineNamespace, []byte(fmt.Sprintf("%d:%s", idx, cfg.label))).String()
		if line.Style.Color == "" {
			line.Style.Color = f.theme.PaletteColor(idx)
		}
		f.saved = append(f.saved, len(f.scene.Lines))
	} else if line.Style.Color == "" {
		line.Style.Color = f.theme.PaletteColor(len(f.saved))
	}

	f.scene.Lines = append(f.scene.Lines, line)
	f.logger.Debug("draw line", "id", line.ID, "label", line.Label, "points", len(line.Points), "saved", cfg.save)
	return nil
}

func validateLineStyle(ls styles.LineStyle) error {
	if ls.Color != "" {
		if _, err := styles.ParseColor(ls.Color); err != nil {
			return errs.Wrap(errs.ErrCodeConfiguration, err, "line color")
		}
	}
	if ls.Width <= 0 {
		return errs.New(errs.ErrCodeConfiguration, "line width must be positive, got %v", ls.Width)
	}
	if ls.Alpha < 0 || ls.Alpha > 1 {
		return errs.New(errs.ErrCodeConfiguration, "line alpha must be in [0, 1], got %v", ls.Alpha)
	}
	return nil
}
