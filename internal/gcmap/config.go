package gcmap

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/paulgb/gcmap/internal/geom"
	"github.com/paulgb/gcmap/internal/gradient"
)

// Defaults applied by Configure.
const (
	DefaultWidth      = 800
	DefaultLineWidth  = 1.0
	DefaultResolution = 100
)

// DefaultBackground is opaque black.
var DefaultBackground = color.NRGBA{0, 0, 0, 255}

// Config holds everything a render needs besides the data. It is treated as
// immutable once built; use Configure to get a validated value.
type Config struct {
	Width      int
	Height     int
	Background color.NRGBA
	Projection string
	Gradient   gradient.Gradient
	LineWidth  float64
	// Resolution is the number of points per interpolated arc.
	Resolution int
	// Supersample renders at this multiple of the canvas size and scales
	// the result down.
	Supersample int
	// Workers bounds the goroutines used to plan arcs. Compositing is
	// always sequential.
	Workers int
	// Strict turns a pair that cannot be split at the antimeridian into a
	// render error instead of a skipped pair.
	Strict bool
}

// Option adjusts a Config during Configure.
type Option func(*Config)

// WithHeight overrides the default height of width/2.
func WithHeight(h int) Option { return func(c *Config) { c.Height = h } }

func WithBackground(bg color.NRGBA) Option { return func(c *Config) { c.Background = bg } }

// WithProjection selects a projection by name, see geom.Projections.
func WithProjection(name string) Option { return func(c *Config) { c.Projection = name } }

func WithGradient(g gradient.Gradient) Option { return func(c *Config) { c.Gradient = g } }

func WithLineWidth(w float64) Option { return func(c *Config) { c.LineWidth = w } }

func WithResolution(n int) Option { return func(c *Config) { c.Resolution = n } }

func WithSupersample(k int) Option { return func(c *Config) { c.Supersample = k } }

func WithWorkers(n int) Option { return func(c *Config) { c.Workers = n } }

func WithStrict(strict bool) Option { return func(c *Config) { c.Strict = strict } }

// Configure builds and validates a render configuration for a canvas of
// the given width.
func Configure(width int, opts ...Option) (Config, error) {
	c := Config{
		Width:       width,
		Height:      width / 2,
		Background:  DefaultBackground,
		Projection:  geom.Equirectangular,
		Gradient:    gradient.Default(),
		LineWidth:   DefaultLineWidth,
		Resolution:  DefaultResolution,
		Supersample: 1,
		Workers:     1,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case !(c.LineWidth > 0):
		return fmt.Errorf("%w: line width %v", ErrInvalidConfig, c.LineWidth)
	case c.Resolution < 2:
		return fmt.Errorf("%w: resolution %d, need at least 2", ErrInvalidConfig, c.Resolution)
	case c.Supersample < 1:
		return fmt.Errorf("%w: supersample %d", ErrInvalidConfig, c.Supersample)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	case !c.Gradient.Valid():
		return fmt.Errorf("%w: %w", ErrInvalidConfig, gradient.ErrInvalidGradient)
	case !slices.Contains(geom.Projections(), c.Projection):
		return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, geom.ErrUnknownProjection, c.Projection)
	}
	return nil
}

// scaled returns the configuration used for the supersampled canvas.
func (c Config) scaled() Config {
	k := c.Supersample
	c.Width *= k
	c.Height *= k
	c.LineWidth *= float64(k)
	c.Supersample = 1
	return c
}
