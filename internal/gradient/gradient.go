// Package gradient implements piecewise-linear color ramps over [0, 1].
package gradient

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidGradient is returned for stop lists that cannot form a gradient.
var ErrInvalidGradient = errors.New("gradient: invalid stops")

// Stop anchors a color at a position on the gradient.
type Stop struct {
	Pos   float64
	Color color.NRGBA
}

// Gradient maps fractions in [0, 1] to colors by blending neighbouring stops.
// The zero value is not usable; build one with New or Parse.
type Gradient struct {
	stops []Stop
}

// New validates stops and returns the gradient they describe. Positions must
// be strictly increasing, start at 0 and end at 1.
func New(stops ...Stop) (Gradient, error) {
	if len(stops) < 2 {
		return Gradient{}, fmt.Errorf("%w: need at least 2 stops, got %d", ErrInvalidGradient, len(stops))
	}
	for i, s := range stops {
		if math.IsNaN(s.Pos) || math.IsInf(s.Pos, 0) {
			return Gradient{}, fmt.Errorf("%w: stop %d has non-finite position", ErrInvalidGradient, i)
		}
		if i > 0 && s.Pos <= stops[i-1].Pos {
			return Gradient{}, fmt.Errorf("%w: stop %d at %g does not follow %g", ErrInvalidGradient, i, s.Pos, stops[i-1].Pos)
		}
	}
	if stops[0].Pos != 0 {
		return Gradient{}, fmt.Errorf("%w: first stop at %g, want 0", ErrInvalidGradient, stops[0].Pos)
	}
	if last := stops[len(stops)-1].Pos; last != 1 {
		return Gradient{}, fmt.Errorf("%w: last stop at %g, want 1", ErrInvalidGradient, last)
	}
	return Gradient{stops: append([]Stop(nil), stops...)}, nil
}

// Default returns the black to blue to white ramp used when no gradient is
// configured.
func Default() Gradient {
	g, _ := New(
		Stop{Pos: 0, Color: color.NRGBA{0, 0, 0, 255}},
		Stop{Pos: 0.5, Color: color.NRGBA{0, 0, 255, 255}},
		Stop{Pos: 1, Color: color.NRGBA{255, 255, 255, 255}},
	)
	return g
}

// Valid reports whether g was built by New or Parse.
func (g Gradient) Valid() bool { return len(g.stops) >= 2 }

// Stops returns a copy of the gradient stops.
func (g Gradient) Stops() []Stop { return append([]Stop(nil), g.stops...) }

// Evaluate returns the color at frac. Fractions at or below the first stop
// give the first color, at or above the last stop the last color.
func (g Gradient) Evaluate(frac float64) color.NRGBA {
	first, last := g.stops[0], g.stops[len(g.stops)-1]
	if !(frac > first.Pos) {
		return first.Color
	}
	if frac >= last.Pos {
		return last.Color
	}
	i := 1
	for g.stops[i].Pos <= frac {
		i++
	}
	a, b := g.stops[i-1], g.stops[i]
	t := (frac - a.Pos) / (b.Pos - a.Pos)
	return color.NRGBA{
		R: blend(a.Color.R, b.Color.R, t),
		G: blend(a.Color.G, b.Color.G, t),
		B: blend(a.Color.B, b.Color.B, t),
		A: blend(a.Color.A, b.Color.A, t),
	}
}

// blend truncates toward zero; the small bias absorbs float error such as
// 255*0.6 landing just under 153.
func blend(a, b uint8, t float64) uint8 {
	v := float64(a)*(1-t) + float64(b)*t
	v = math.Floor(v + 1e-9)
	return uint8(min(max(v, 0), 255))
}

// Parse reads a gradient written as comma separated "pos:#rrggbb[:alpha]"
// stops, e.g. "0:#000000,0.5:#0000ff,1:#ffffff".
func Parse(s string) (Gradient, error) {
	var stops []Stop
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ":")
		if len(fields) < 2 || len(fields) > 3 {
			return Gradient{}, fmt.Errorf("%w: stop %q", ErrInvalidGradient, part)
		}
		pos, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return Gradient{}, fmt.Errorf("%w: stop %q: %v", ErrInvalidGradient, part, err)
		}
		c, err := ParseColor(fields[1])
		if err != nil {
			return Gradient{}, fmt.Errorf("%w: stop %q: %v", ErrInvalidGradient, part, err)
		}
		alpha := uint64(255)
		if len(fields) == 3 {
			alpha, err = strconv.ParseUint(strings.TrimSpace(fields[2]), 10, 8)
			if err != nil {
				return Gradient{}, fmt.Errorf("%w: stop %q: alpha: %v", ErrInvalidGradient, part, err)
			}
		}
		c.A = uint8(alpha)
		stops = append(stops, Stop{Pos: pos, Color: c})
	}
	return New(stops...)
}

// ParseColor reads an opaque "#rrggbb" color.
func ParseColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{r, g, b, 255}, nil
}

// String formats g in the form accepted by Parse.
func (g Gradient) String() string {
	parts := make([]string, len(g.stops))
	for i, s := range g.stops {
		c := s.Color
		parts[i] = fmt.Sprintf("%s:#%02x%02x%02x", strconv.FormatFloat(s.Pos, 'g', -1, 64), c.R, c.G, c.B)
		if c.A != 255 {
			parts[i] += ":" + strconv.Itoa(int(c.A))
		}
	}
	return strings.Join(parts, ",")
}
