package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"
)

// ErrUnknownProjection is returned for projection names NewProjector does
// not support.
var ErrUnknownProjection = errors.New("projection: unknown name")

// Supported projection names.
const (
	Equirectangular = "eqc"
	Mercator        = "merc"
)

// maxMercatorLat keeps Mercator y finite; it is the latitude at which the
// projected map becomes square.
const maxMercatorLat = 85.05112877980659

// Projector maps geodetic degrees onto a width x height pixel canvas. The
// projection radius is width/(2π) so a full turn of longitude spans the
// canvas width, (0, 0) lands on the canvas center and north is up.
type Projector struct {
	name   string
	proj   s2.Projection
	width  float64
	height float64
}

// Projections lists the names accepted by NewProjector.
func Projections() []string { return []string{Equirectangular, Mercator} }

func NewProjector(name string, width, height int) (*Projector, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("projection: invalid canvas %dx%d", width, height)
	}
	xScale := float64(width) / 2
	var proj s2.Projection
	switch name {
	case Equirectangular:
		proj = s2.NewPlateCarreeProjection(xScale)
	case Mercator:
		proj = s2.NewMercatorProjection(xScale)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProjection, name)
	}
	return &Projector{name: name, proj: proj, width: float64(width), height: float64(height)}, nil
}

func (p *Projector) Name() string { return p.name }

// Project returns the pixel position of a geodetic point.
func (p *Projector) Project(lon, lat float64) r2.Point {
	if p.name == Mercator {
		lat = max(-maxMercatorLat, min(maxMercatorLat, lat))
	}
	xy := p.proj.FromLatLng(s2.LatLngFromDegrees(lat, lon))
	return r2.Point{
		X: xy.X + p.width/2,
		Y: p.height - (xy.Y + p.height/2),
	}
}

// ProjectAll projects every point of pl.
func (p *Projector) ProjectAll(pl Polyline) []r2.Point {
	out := make([]r2.Point, len(pl))
	for i, ll := range pl {
		out[i] = p.Project(ll.Lon, ll.Lat)
	}
	return out
}

// Unproject inverts Project.
func (p *Projector) Unproject(pt r2.Point) LonLat {
	xy := r2.Point{X: pt.X - p.width/2, Y: p.height - pt.Y - p.height/2}
	ll := p.proj.ToLatLng(xy)
	lat := ll.Lat.Degrees()
	if math.IsNaN(lat) {
		lat = 0
	}
	return LonLat{Lon: ll.Lng.Degrees(), Lat: lat}
}
