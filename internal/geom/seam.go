package geom

import (
	"errors"
	"fmt"
	"math"
)

// halfTurn is the longitude of the antimeridian.
const halfTurn = 180.0

// ErrSeamInconsistency is returned when a path that should cross the
// antimeridian does not show exactly one longitude jump.
var ErrSeamInconsistency = errors.New("seam: expected exactly one antimeridian crossing")

// WrapLon maps a longitude into [-180, 180].
func WrapLon(lon float64) float64 {
	if lon >= -halfTurn && lon <= halfTurn {
		return lon
	}
	lon = math.Mod(lon+halfTurn, 2*halfTurn)
	if lon < 0 {
		lon += 2 * halfTurn
	}
	return lon - halfTurn
}

// CrossesSeam reports whether the great circle between two longitudes is
// expected to take the antimeridian route: a direct span of 180 degrees or
// more means the shorter way goes around the back of the map.
func CrossesSeam(lon1, lon2 float64) bool {
	return math.Abs(WrapLon(lon1)-WrapLon(lon2)) >= halfTurn
}

// SplitAtSeam cuts an interpolated path where it wraps from one side of the
// map to the other and extends both halves to the map edge. Paths that do
// not cross the seam come back unchanged as the only element.
func SplitAtSeam(pts Polyline, lon1, lon2 float64) ([]Polyline, error) {
	if !CrossesSeam(lon1, lon2) {
		return []Polyline{pts}, nil
	}
	cut, found := -1, 0
	for i := 0; i+1 < len(pts); i++ {
		if math.Abs(pts[i+1].Lon-pts[i].Lon) > halfTurn {
			cut = i
			found++
		}
	}
	if found != 1 {
		return nil, fmt.Errorf("%w: found %d in %d points", ErrSeamInconsistency, found, len(pts))
	}

	brk := pts[cut+1]
	after := brk
	if cut+2 < len(pts) {
		after = pts[cut+2]
	}
	edge := halfTurn
	if after.Lon > 0 {
		edge = -halfTurn
	}

	head := make(Polyline, 0, cut+2)
	head = append(head, pts[:cut+1]...)
	head = append(head, LonLat{Lon: edge, Lat: after.Lat})

	tail := make(Polyline, 0, len(pts)-cut)
	tail = append(tail, LonLat{Lon: -edge, Lat: brk.Lat})
	tail = append(tail, pts[cut+1:]...)

	return []Polyline{head, tail}, nil
}
