package gcmap

import (
	"errors"
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"

	"github.com/paulgb/gcmap/internal/geodesic"
	"github.com/paulgb/gcmap/internal/geom"
)

type drawCall struct {
	pts   []r2.Point
	color color.NRGBA
	width float64
}

// recorder is a Surface that keeps every call.
type recorder struct {
	calls []drawCall
}

func (r *recorder) DrawPolyline(pts []r2.Point, c color.NRGBA, width float64) error {
	r.calls = append(r.calls, drawCall{pts: pts, color: c, width: width})
	return nil
}

func (r *recorder) Image() image.Image { return nil }

// linearArcs interpolates straight through raw degrees, so it never wraps
// at the antimeridian.
type linearArcs struct{}

func (linearArcs) Interpolate(lon1, lat1, lon2, lat2 float64, n int) (geom.Polyline, error) {
	pts := make(geom.Polyline, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		pts[i] = geom.LonLat{Lon: lon1 + t*(lon2-lon1), Lat: lat1 + t*(lat2-lat1)}
	}
	return pts, nil
}

func useArcs(t *testing.T, a interpolator) {
	t.Helper()
	old := arcs
	arcs = a
	t.Cleanup(func() { arcs = old })
}

func mustConfig(t *testing.T, width int, opts ...Option) Config {
	t.Helper()
	cfg, err := Configure(width, opts...)
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	return cfg
}

func mustDataset(t *testing.T, pairs ...geom.Pair) *Dataset {
	t.Helper()
	set := geom.PairSet{Pairs: pairs}
	lon1, lat1, lon2, lat2, _ := set.Columns()
	ds, err := NewDataset(geodesic.Unit, lon1, lat1, lon2, lat2, nil)
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	return ds
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestRenderTwoPairs(t *testing.T) {
	cfg := mustConfig(t, 800)
	ds := mustDataset(t,
		geom.Pair{Lon1: 0, Lat1: 0, Lon2: 10, Lat2: 0},
		geom.Pair{Lon1: 0, Lat1: 0, Lon2: -10, Lat2: 0},
	)
	if d := cmp.Diff([]int{0, 1}, ds.Order()); d != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", d)
	}

	var rec recorder
	stats, err := Render(ds, cfg, &rec)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := (Stats{Pairs: 2, Drawn: 2}); stats != want {
		t.Errorf("stats = %v, want %v", stats, want)
	}
	if len(rec.calls) != 2 {
		t.Fatalf("got %d polylines, want 2", len(rec.calls))
	}
	wantColors := []color.NRGBA{{0, 0, 0, 255}, {0, 0, 255, 255}}
	for i, c := range rec.calls {
		if len(c.pts) != DefaultResolution {
			t.Errorf("polyline %d has %d points, want %d", i, len(c.pts), DefaultResolution)
		}
		if c.color != wantColors[i] {
			t.Errorf("polyline %d color = %v, want %v", i, c.color, wantColors[i])
		}
		if c.width != DefaultLineWidth {
			t.Errorf("polyline %d width = %v", i, c.width)
		}
		start := c.pts[0]
		if !near(start.X, 400) || !near(start.Y, 200) {
			t.Errorf("polyline %d starts at %v, want canvas center", i, start)
		}
	}
	// The first pair heads east, the second west.
	if end := rec.calls[0].pts[DefaultResolution-1]; !near(end.X, 400+800.0/36) {
		t.Errorf("first polyline ends at %v", end)
	}
	if end := rec.calls[1].pts[DefaultResolution-1]; !near(end.X, 400-800.0/36) {
		t.Errorf("second polyline ends at %v", end)
	}
}

func TestRenderSplitsAtSeam(t *testing.T) {
	cfg := mustConfig(t, 800)
	ds := mustDataset(t, geom.Pair{Lon1: 170, Lat1: 0, Lon2: -170, Lat2: 0})

	var rec recorder
	stats, err := Render(ds, cfg, &rec)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if stats.Split != 1 || stats.Drawn != 1 {
		t.Errorf("stats = %v", stats)
	}
	if len(rec.calls) != 2 {
		t.Fatalf("got %d polylines, want 2", len(rec.calls))
	}
	head, tail := rec.calls[0].pts, rec.calls[1].pts
	if got := head[len(head)-1].X; math.Abs(got-800) > 1e-6 {
		t.Errorf("first half ends at x=%v, want the right edge", got)
	}
	if got := tail[0].X; math.Abs(got) > 1e-6 {
		t.Errorf("second half starts at x=%v, want the left edge", got)
	}
	if len(head)+len(tail) != DefaultResolution+2 {
		t.Errorf("halves have %d+%d points", len(head), len(tail))
	}
	for _, c := range rec.calls {
		if c.color != rec.calls[0].color {
			t.Errorf("halves drawn in different colors")
		}
	}
}

func TestRenderSeamInconsistency(t *testing.T) {
	useArcs(t, linearArcs{})
	ds := mustDataset(t,
		geom.Pair{Lon1: 0, Lat1: 0, Lon2: 10, Lat2: 0},
		geom.Pair{Lon1: 170, Lat1: 0, Lon2: -170, Lat2: 0},
	)

	t.Run("strict", func(t *testing.T) {
		var rec recorder
		_, err := Render(ds, mustConfig(t, 400, WithStrict(true)), &rec)
		if !errors.Is(err, geom.ErrSeamInconsistency) {
			t.Fatalf("Render error = %v, want ErrSeamInconsistency", err)
		}
		var pe *PairError
		if !errors.As(err, &pe) || pe.Index != 1 {
			t.Errorf("error = %v, want PairError for index 1", err)
		}
		if len(rec.calls) != 0 {
			t.Errorf("strict failure drew %d polylines", len(rec.calls))
		}
	})

	t.Run("skip", func(t *testing.T) {
		var rec recorder
		stats, err := Render(ds, mustConfig(t, 400), &rec)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if want := (Stats{Pairs: 2, Drawn: 1, Skipped: 1}); stats != want {
			t.Errorf("stats = %v, want %v", stats, want)
		}
		if len(rec.calls) != 1 {
			t.Errorf("got %d polylines, want 1", len(rec.calls))
		}
	})
}

func TestRenderSkipsDegenerate(t *testing.T) {
	ds := mustDataset(t,
		geom.Pair{Lon1: 5, Lat1: 5, Lon2: 5, Lat2: 5},
		geom.Pair{Lon1: 0, Lat1: 0, Lon2: 10, Lat2: 0},
	)
	var rec recorder
	stats, err := Render(ds, mustConfig(t, 400), &rec)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := (Stats{Pairs: 2, Drawn: 1, Degenerate: 1}); stats != want {
		t.Errorf("stats = %v, want %v", stats, want)
	}
	if len(rec.calls) != 1 {
		t.Fatalf("got %d polylines, want 1", len(rec.calls))
	}
	// The degenerate pair still holds rank 0.
	if want := (color.NRGBA{0, 0, 255, 255}); rec.calls[0].color != want {
		t.Errorf("color = %v, want %v", rec.calls[0].color, want)
	}
}

func TestPlanIndependentOfWorkers(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var pairs []geom.Pair
	for range 64 {
		pairs = append(pairs, geom.Pair{
			Lon1: rng.Float64()*360 - 180, Lat1: rng.Float64()*120 - 60,
			Lon2: rng.Float64()*360 - 180, Lat2: rng.Float64()*120 - 60,
		})
	}
	ds := mustDataset(t, pairs...)

	serial, s1, err := Plan(ds, mustConfig(t, 600, WithWorkers(1)))
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	parallel, s4, err := Plan(ds, mustConfig(t, 600, WithWorkers(4)))
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if s1 != s4 {
		t.Errorf("stats differ: %v vs %v", s1, s4)
	}
	if d := cmp.Diff(serial, parallel); d != "" {
		t.Errorf("strokes differ (-serial +parallel):\n%s", d)
	}
	for i := 1; i < len(serial); i++ {
		if serial[i].Rank <= serial[i-1].Rank {
			t.Fatalf("strokes out of draw order at %d", i)
		}
	}
}

func TestPlanRejectsInvalidConfig(t *testing.T) {
	ds := mustDataset(t)
	if _, _, err := Plan(ds, Config{}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Plan error = %v, want ErrInvalidConfig", err)
	}
}
