// Package geodesic computes great-circle distances and intermediate points
// on a sphere, using the S2 geometry library.
package geodesic

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/paulgb/gcmap/internal/geom"
)

// Geod is a sphere of fixed radius.
type Geod struct {
	radius float64
}

// Unit is the sphere of radius 1, on which distances are central angles in
// radians.
var Unit = New(1)

// New returns a sphere with the given equatorial radius.
func New(radius float64) *Geod {
	return &Geod{radius: radius}
}

func (g *Geod) Radius() float64 { return g.radius }

func point(lon, lat float64) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))
}

// Inverse solves the inverse problem between two points: the forward
// azimuth at the first point, the back azimuth at the second (pointing to
// the first), both in degrees clockwise from north, and the distance.
func (g *Geod) Inverse(lon1, lat1, lon2, lat2 float64) (az1, az2, dist float64) {
	a, b := point(lon1, lat1), point(lon2, lat2)
	dist = float64(a.Distance(b)) * g.radius
	az1 = azimuth(lon1, lat1, lon2, lat2)
	az2 = azimuth(lon2, lat2, lon1, lat1)
	return az1, az2, dist
}

// azimuth is the initial bearing from (lon1, lat1) towards (lon2, lat2).
func azimuth(lon1, lat1, lon2, lat2 float64) float64 {
	phi1 := float64(s1.Angle(lat1) * s1.Degree)
	phi2 := float64(s1.Angle(lat2) * s1.Degree)
	dl := float64(s1.Angle(lon2-lon1) * s1.Degree)
	y := math.Sin(dl) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dl)
	return s1.Angle(math.Atan2(y, x)).Degrees()
}

// Distance returns only the distance part of Inverse.
func (g *Geod) Distance(lon1, lat1, lon2, lat2 float64) float64 {
	return float64(point(lon1, lat1).Distance(point(lon2, lat2))) * g.radius
}

// Interpolate returns n points evenly spaced along the great circle from the
// first point to the second, both endpoints included. Longitudes are in
// [-180, 180].
func (g *Geod) Interpolate(lon1, lat1, lon2, lat2 float64, n int) (geom.Polyline, error) {
	if n < 2 {
		return nil, fmt.Errorf("geodesic: need at least 2 points, got %d", n)
	}
	a, b := point(lon1, lat1), point(lon2, lat2)
	pts := make(geom.Polyline, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		ll := s2.LatLngFromPoint(s2.Interpolate(t, a, b))
		pts[i] = geom.LonLat{Lon: ll.Lng.Degrees(), Lat: ll.Lat.Degrees()}
	}
	return pts, nil
}
