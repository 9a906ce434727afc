package gcmap

import (
	"errors"
	"testing"

	"github.com/paulgb/gcmap/internal/geom"
	"github.com/paulgb/gcmap/internal/gradient"
)

func TestConfigureDefaults(t *testing.T) {
	c, err := Configure(800)
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if c.Width != 800 || c.Height != 400 {
		t.Errorf("size = %dx%d, want 800x400", c.Width, c.Height)
	}
	if c.Projection != geom.Equirectangular || c.Resolution != DefaultResolution || c.LineWidth != DefaultLineWidth {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if c.Background != DefaultBackground || !c.Gradient.Valid() {
		t.Errorf("unexpected colors: bg=%v gradient=%v", c.Background, c.Gradient)
	}
}

func TestConfigureRejects(t *testing.T) {
	tests := []struct {
		name  string
		width int
		opts  []Option
	}{
		{"zero width", 0, nil},
		{"one pixel wide", 1, nil},
		{"negative height", 100, []Option{WithHeight(-1)}},
		{"zero line width", 100, []Option{WithLineWidth(0)}},
		{"resolution 1", 100, []Option{WithResolution(1)}},
		{"supersample 0", 100, []Option{WithSupersample(0)}},
		{"workers 0", 100, []Option{WithWorkers(0)}},
		{"unknown projection", 100, []Option{WithProjection("robin")}},
		{"zero gradient", 100, []Option{WithGradient(gradient.Gradient{})}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Configure(tt.width, tt.opts...); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Configure error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigScaled(t *testing.T) {
	c, err := Configure(100, WithLineWidth(1.5), WithSupersample(3))
	if err != nil {
		t.Fatal(err)
	}
	s := c.scaled()
	if s.Width != 300 || s.Height != 150 || s.LineWidth != 4.5 || s.Supersample != 1 {
		t.Errorf("scaled() = %+v", s)
	}
}
