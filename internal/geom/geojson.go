package geom

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// countProperty is the feature property holding a pair's frequency.
const countProperty = "count"

// LoadGeoJSON reads a GeoJSON file. Every LineString (and every part of a
// MultiLineString) contributes its first and last vertex as one pair.
func LoadGeoJSON(path string) (PairSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return PairSet{}, err
	}
	defer f.Close()
	return ReadGeoJSON(f)
}

func ReadGeoJSON(r io.Reader) (PairSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return PairSet{}, err
	}
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return PairSet{}, err
	}
	var set PairSet
	switch head.Type {
	case "":
		return PairSet{}, errors.New("invalid geojson: missing type")
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return PairSet{}, err
		}
		for _, f := range fc.Features {
			addFeature(&set, f)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return PairSet{}, err
		}
		addFeature(&set, f)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return PairSet{}, err
		}
		addGeometry(&set, g.Geometry(), 1)
	}
	if len(set.Pairs) == 0 {
		return PairSet{}, errors.New("geojson: no line geometries found")
	}
	return set, nil
}

func addFeature(set *PairSet, f *geojson.Feature) {
	count := 1.0
	if _, ok := f.Properties[countProperty]; ok {
		count = f.Properties.MustFloat64(countProperty, 1)
		set.HasCount = true
	}
	addGeometry(set, f.Geometry, count)
}

// addGeometry walks g and records one pair per line part.
func addGeometry(set *PairSet, g orb.Geometry, count float64) {
	switch g := g.(type) {
	case orb.LineString:
		if len(g) < 2 {
			return
		}
		a, b := g[0], g[len(g)-1]
		set.add(Pair{Lon1: a.Lon(), Lat1: a.Lat(), Lon2: b.Lon(), Lat2: b.Lat(), Count: count})
	case orb.MultiLineString:
		for _, ls := range g {
			addGeometry(set, ls, count)
		}
	case orb.MultiPoint:
		if len(g) == 2 {
			addGeometry(set, orb.LineString(g), count)
		}
	case orb.Collection:
		for _, c := range g {
			addGeometry(set, c, count)
		}
	}
}
