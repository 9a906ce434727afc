// Package geom holds the geographic primitives shared by the renderer and
// the preview: coordinate pairs, polylines, the antimeridian splitter, the
// pixel projector and the input file decoders.
package geom

// LonLat is a geodetic position in degrees.
type LonLat struct {
	Lon float64
	Lat float64
}

// Polyline is an ordered sequence of geodetic positions.
type Polyline []LonLat

// Pair is one origin-destination record. Count is the number of times the
// pair occurred in the source data.
type Pair struct {
	Lon1, Lat1 float64
	Lon2, Lat2 float64
	Count      float64
}

// PairSet is a decoded input file. HasCount reports whether the source
// carried a count column or property.
type PairSet struct {
	Pairs    []Pair
	HasCount bool
	BBox     BBox
}

// Columns splits the set into the per-field arrays accepted by the mapper.
// count is nil when the source had no counts.
func (s PairSet) Columns() (lon1, lat1, lon2, lat2, count []float64) {
	n := len(s.Pairs)
	lon1, lat1 = make([]float64, n), make([]float64, n)
	lon2, lat2 = make([]float64, n), make([]float64, n)
	if s.HasCount {
		count = make([]float64, n)
	}
	for i, p := range s.Pairs {
		lon1[i], lat1[i], lon2[i], lat2[i] = p.Lon1, p.Lat1, p.Lon2, p.Lat2
		if count != nil {
			count[i] = p.Count
		}
	}
	return lon1, lat1, lon2, lat2, count
}

func (s *PairSet) add(p Pair) {
	if len(s.Pairs) == 0 {
		s.BBox = BBox{MinX: p.Lon1, MinY: p.Lat1, MaxX: p.Lon1, MaxY: p.Lat1}
	}
	s.BBox.extend(p.Lon1, p.Lat1)
	s.BBox.extend(p.Lon2, p.Lat2)
	s.Pairs = append(s.Pairs, p)
}

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (b *BBox) extend(lon, lat float64) {
	if lon < b.MinX {
		b.MinX = lon
	}
	if lat < b.MinY {
		b.MinY = lat
	}
	if lon > b.MaxX {
		b.MaxX = lon
	}
	if lat > b.MaxY {
		b.MaxY = lat
	}
}
