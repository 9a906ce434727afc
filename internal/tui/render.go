package tui

import (
	"strings"

	"github.com/golang/geo/r2"

	"github.com/paulgb/gcmap/internal/gcmap"
	"github.com/paulgb/gcmap/internal/geodesic"
	"github.com/paulgb/gcmap/internal/geom"
)

// setPairs replaces the previewed data and replans it.
func (m *Model) setPairs(set geom.PairSet) error {
	lon1, lat1, lon2, lat2, count := set.Columns()
	ds, err := gcmap.NewDataset(geodesic.Unit, lon1, lat1, lon2, lat2, count)
	if err != nil {
		return err
	}
	m.set, m.ds = set, ds
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.hoverPair = -1
	return m.replan()
}

// replan plans the current data on the preview canvas, which keeps the
// aspect ratio of the configured output.
func (m *Model) replan() error {
	cfg := m.cfg
	cfg.Width = planWidth
	cfg.Height = max(1, planWidth*m.cfg.Height/m.cfg.Width)
	cfg.Supersample = 1
	cfg.Strict = false
	proj, err := geom.NewProjector(cfg.Projection, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	m.proj, m.planW, m.planH = proj, cfg.Width, cfg.Height
	if m.ds == nil {
		m.strokes, m.stats = nil, gcmap.Stats{}
		return nil
	}
	strokes, stats, err := gcmap.Plan(m.ds, cfg)
	if err != nil {
		return err
	}
	m.strokes, m.stats = strokes, stats
	return nil
}

// toMicro maps a point on the plan canvas to the braille micro grid of a
// w x h cell map, applying zoom around the center and pan.
func (m Model) toMicro(p r2.Point, w, h int) (int, int, bool) {
	if m.planW == 0 || m.planH == 0 {
		return 0, 0, false
	}
	nx := p.X / float64(m.planW)
	ny := p.Y / float64(m.planH)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w*2-1)) + m.offsetX*2
	sy := int(zy*float64(h*4-1)) + m.offsetY*4
	return sx, sy, true
}

// cellToLonLat converts a map cell back to lon/lat through zoom, pan and
// the inverse projection.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	if m.proj == nil || w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := float64(cy-m.offsetY) / float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	if nx < 0 || nx > 1 || ny < 0 || ny > 1 {
		return 0, 0, false
	}
	ll := m.proj.Unproject(r2.Point{X: nx * float64(m.planW), Y: ny * float64(m.planH)})
	return ll.Lon, ll.Lat, true
}

func (m Model) renderMap(w, h int) string {
	br := newBrailleBuf(w, h)
	for _, s := range m.strokes {
		for _, path := range s.Paths {
			var prev [2]int
			for i, p := range path {
				mx, my, ok := m.toMicro(p, w, h)
				if !ok {
					break
				}
				if i > 0 {
					br.drawLineMicro(prev[0], prev[1], mx, my, s.Color)
				}
				prev = [2]int{mx, my}
			}
		}
	}
	lines := br.toLines()

	// Hover highlight: a circle on the nearest arc vertex.
	if m.hovering && m.hoverPair >= 0 {
		cx, cy := m.hoverMicX/2, m.hoverMicY/4
		if cy >= 0 && cy < h && cx >= 0 && cx < w {
			lines[cy] = br.span(cy, 0, cx) + hoverStyle.Render("◯") + br.span(cy, cx+1, w)
		}
	}
	return strings.Join(lines, "\n")
}

// nearestVertex finds the arc vertex closest to a micro grid position and
// returns its micro coordinates and pair index.
func (m Model) nearestVertex(hx, hy, w, h int) (bx, by, pair int) {
	best := 1<<31 - 1
	bx, by, pair = hx, hy, -1
	for _, s := range m.strokes {
		for _, path := range s.Paths {
			for _, p := range path {
				mx, my, ok := m.toMicro(p, w, h)
				if !ok {
					continue
				}
				dx, dy := mx-hx, my-hy
				if d := dx*dx + dy*dy; d < best {
					best = d
					bx, by, pair = mx, my, s.Index
				}
			}
		}
	}
	return bx, by, pair
}

// hottest returns the heaviest drawn pair, the last one composited.
func (m Model) hottest() (gcmap.Stroke, bool) {
	if len(m.strokes) == 0 {
		return gcmap.Stroke{}, false
	}
	return m.strokes[len(m.strokes)-1], true
}
