package figure

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/squiggly/pkg/errors"
	"github.com/matzehuels/squiggly/pkg/render/styles"
	"github.com/matzehuels/squiggly/pkg/scene"
	"github.com/matzehuels/squiggly/pkg/series"
	"github.com/matzehuels/squiggly/pkg/squiggle"
)

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 2000.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 1000.0

	// AxisDxPerc sizes tick marks, label offsets and legend spacing as a
	// percent of an axis range.
	AxisDxPerc = 1.0

	// DefaultGridNoisePerc is the gridline noise as a percent of the
	// cross-axis range.
	DefaultGridNoisePerc = 0.5
)

// Figure composes a hand-drawn chart into a [scene.Scene].
// A Figure is not safe for concurrent use.
type Figure struct {
	theme         styles.Theme
	src           squiggle.Source
	logger        *log.Logger
	loc           *time.Location
	gridNoisePerc float64

	scene  scene.Scene
	saved  []int // indexes into scene.Lines
	gridXB *series.Bounds
	gridYB *series.Bounds
}

// Option configures a Figure.
type Option func(*Figure)

// WithTheme sets the visual theme.
func WithTheme(t styles.Theme) Option { return func(f *Figure) { f.theme = t } }

// WithSeed makes every squiggle reproducible.
func WithSeed(seed uint64) Option {
	return func(f *Figure) { f.src = squiggle.NewSource(seed) }
}

// WithSource sets the noise source directly.
func WithSource(src squiggle.Source) Option { return func(f *Figure) { f.src = src } }

// WithSize sets the canvas size in pixels.
func WithSize(width, height float64) Option {
	return func(f *Figure) { f.scene.Width, f.scene.Height = width, height }
}

// WithLogger sets the logger for debug output.
func WithLogger(l *log.Logger) Option { return func(f *Figure) { f.logger = l } }

// WithLocation sets the time zone used for date tick labels.
func WithLocation(loc *time.Location) Option { return func(f *Figure) { f.loc = loc } }

// WithGridNoise sets the gridline noise as a percent of the cross-axis range.
func WithGridNoise(perc float64) Option { return func(f *Figure) { f.gridNoisePerc = perc } }

// New creates an empty figure. Without [WithSeed] or [WithSource] the
// noise is seeded randomly.
func New(opts ...Option) (*Figure, error) {
	f := &Figure{
		theme:         styles.DefaultTheme(),
		loc:           time.UTC,
		gridNoisePerc: DefaultGridNoisePerc,
		scene:         scene.Scene{Width: DefaultWidth, Height: DefaultHeight},
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.src == nil {
		f.src = squiggle.NewSource(rand.Uint64())
	}
	if f.logger == nil {
		f.logger = log.New(io.Discard)
	}
	if f.loc == nil {
		f.loc = time.UTC
	}

	if err := f.theme.Validate(); err != nil {
		return nil, err
	}
	if err := errs.ValidatePositive("width", f.scene.Width); err != nil {
		return nil, err
	}
	if err := errs.ValidatePositive("height", f.scene.Height); err != nil {
		return nil, err
	}
	if err := errs.ValidateNonNegative("grid_noise_perc", f.gridNoisePerc); err != nil {
		return nil, err
	}

	f.scene.Background = f.theme.Background
	f.scene.FontFamily = f.theme.FontFamily
	return f, nil
}

// Theme returns the figure's theme.
func (f *Figure) Theme() styles.Theme { return f.theme }

// DrawTitle sets the figure title, replacing any previous one.
func (f *Figure) DrawTitle(title string) {
	f.scene.Title = &scene.Title{
		Content: title,
		Size:    f.theme.TitleSize,
		Color:   f.theme.TextColor,
	}
	f.logger.Debug("draw title", "title", title)
}

// Scene returns a copy of everything drawn so far.
func (f *Figure) Scene() scene.Scene { return f.scene.Clone() }

func (f *Figure) addText(x, y float64, content string, anchor scene.Anchor, highlight string) {
	f.scene.Texts = append(f.scene.Texts, scene.Text{
		X:         x,
		Y:         y,
		Content:   content,
		Size:      f.theme.LabelSize,
		Anchor:    anchor,
		Color:     f.theme.TextColor,
		Highlight: highlight,
	})
}
