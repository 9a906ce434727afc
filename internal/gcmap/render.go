package gcmap

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/golang/geo/r2"

	"github.com/paulgb/gcmap/internal/geodesic"
	"github.com/paulgb/gcmap/internal/geom"
)

// interpolator produces the geodetic points of an arc.
type interpolator interface {
	Interpolate(lon1, lat1, lon2, lat2 float64, n int) (geom.Polyline, error)
}

var arcs interpolator = geodesic.Unit

// Stroke is one pair ready for compositing: its place in the draw order,
// its color and its path in pixel space, split in two when the arc crosses
// the antimeridian.
type Stroke struct {
	Rank  int
	Index int
	Frac  float64
	Color color.NRGBA
	Paths [][]r2.Point
}

// Stats summarizes a render.
type Stats struct {
	Pairs      int
	Drawn      int
	Split      int
	Degenerate int
	Skipped    int
}

func (s Stats) String() string {
	return fmt.Sprintf("pairs=%d drawn=%d split=%d degenerate=%d skipped=%d",
		s.Pairs, s.Drawn, s.Split, s.Degenerate, s.Skipped)
}

// Plan computes the strokes for every drawable pair of ds, in draw order.
// The rank r of a pair in that order picks its color at fraction r/N of
// the gradient, so the heaviest pairs come last and hottest. Degenerate
// pairs keep their rank but yield no stroke.
//
// A pair whose arc cannot be split at the antimeridian fails the whole plan
// when cfg.Strict is set and is skipped otherwise. Planning runs on
// cfg.Workers goroutines; the result does not depend on that number.
func Plan(ds *Dataset, cfg Config) ([]Stroke, Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, Stats{}, err
	}
	proj, err := geom.NewProjector(cfg.Projection, cfg.Width, cfg.Height)
	if err != nil {
		return nil, Stats{}, err
	}

	n := ds.Len()
	planned := make([]Stroke, n)
	errs := make([]error, n)
	planRank := func(rank int) {
		planned[rank], errs[rank] = planStroke(ds, cfg, proj, rank)
	}
	if workers := min(cfg.Workers, n); workers > 1 {
		jobs := make(chan int)
		var wg sync.WaitGroup
		for range workers {
			wg.Go(func() {
				for rank := range jobs {
					planRank(rank)
				}
			})
		}
		for rank := range n {
			jobs <- rank
		}
		close(jobs)
		wg.Wait()
	} else {
		for rank := range n {
			planRank(rank)
		}
	}

	stats := Stats{Pairs: n}
	strokes := make([]Stroke, 0, n)
	for rank, s := range planned {
		if err := errs[rank]; err != nil {
			if cfg.Strict {
				return nil, stats, err
			}
			Logger().Warn("skipping pair", "index", s.Index, "rank", rank, "err", err)
			stats.Skipped++
			continue
		}
		if ds.IsDegenerate(s.Index) {
			stats.Degenerate++
			continue
		}
		if len(s.Paths) > 1 {
			stats.Split++
		}
		strokes = append(strokes, s)
	}
	Logger().Debug("planned arcs", "pairs", n, "strokes", len(strokes), "workers", cfg.Workers)
	return strokes, stats, nil
}

func planStroke(ds *Dataset, cfg Config, proj *geom.Projector, rank int) (Stroke, error) {
	idx := ds.order[rank]
	frac := float64(rank) / float64(ds.Len())
	s := Stroke{Rank: rank, Index: idx, Frac: frac, Color: cfg.Gradient.Evaluate(frac)}
	if ds.degenerate[idx] {
		return s, nil
	}
	p := ds.pairs[idx]
	pts, err := arcs.Interpolate(p.Lon1, p.Lat1, p.Lon2, p.Lat2, cfg.Resolution)
	if err != nil {
		return s, &PairError{Index: idx, Err: err}
	}
	parts, err := geom.SplitAtSeam(pts, p.Lon1, p.Lon2)
	if err != nil {
		return s, &PairError{Index: idx, Err: err}
	}
	s.Paths = make([][]r2.Point, len(parts))
	for i, part := range parts {
		s.Paths[i] = proj.ProjectAll(part)
	}
	return s, nil
}

// Render plans ds and composites the strokes onto surf strictly in draw
// order, at the canvas size of cfg. Nothing is drawn when planning fails.
func Render(ds *Dataset, cfg Config, surf Surface) (Stats, error) {
	strokes, stats, err := Plan(ds, cfg)
	if err != nil {
		return stats, err
	}
	for _, s := range strokes {
		for _, path := range s.Paths {
			if err := surf.DrawPolyline(path, s.Color, cfg.LineWidth); err != nil {
				return stats, &PairError{Index: s.Index, Err: err}
			}
		}
		stats.Drawn++
	}
	return stats, nil
}

// Draw renders ds onto a fresh background-filled canvas and returns the
// image. With cfg.Supersample k > 1 the arcs are drawn on a canvas k times
// larger, with k times the line width, and scaled down.
func Draw(ds *Dataset, cfg Config) (image.Image, Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, Stats{}, err
	}
	rc := cfg.scaled()
	surf := NewSurface(rc.Width, rc.Height, rc.Background)
	stats, err := Render(ds, rc, surf)
	if err != nil {
		return nil, stats, err
	}
	img := surf.Image()
	if cfg.Supersample > 1 {
		img = downsample(img, cfg.Width, cfg.Height)
	}
	Logger().Info("rendered", "width", cfg.Width, "height", cfg.Height, "stats", stats.String())
	return img, stats, nil
}
