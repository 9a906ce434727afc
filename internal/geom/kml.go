package geom

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

type kmlLine struct {
	Coordinates string `xml:"coordinates"`
}

type kmlData struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value"`
}

type kmlPlacemark struct {
	Lines []kmlLine `xml:"LineString"`
	Multi []kmlLine `xml:"MultiGeometry>LineString"`
	Data  []kmlData `xml:"ExtendedData>Data"`
}

// LoadKML extracts pairs from Placemark LineStrings in a KML file, at any
// nesting depth. KML coordinates are "lon,lat[,alt]"; altitude is ignored.
// An ExtendedData entry named "count" sets the pair count.
func LoadKML(path string) (PairSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return PairSet{}, err
	}
	defer f.Close()
	return ReadKML(f)
}

func ReadKML(r io.Reader) (PairSet, error) {
	var set PairSet
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return PairSet{}, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var pm kmlPlacemark
		if err := dec.DecodeElement(&pm, &se); err != nil {
			return PairSet{}, err
		}
		count := 1.0
		for _, d := range pm.Data {
			if d.Name != countProperty {
				continue
			}
			if c, err := strconv.ParseFloat(strings.TrimSpace(d.Value), 64); err == nil {
				count = c
				set.HasCount = true
			}
		}
		for _, ln := range append(pm.Lines, pm.Multi...) {
			pts := parseKMLCoords(ln.Coordinates)
			if len(pts) < 2 {
				continue
			}
			a, b := pts[0], pts[len(pts)-1]
			set.add(Pair{Lon1: a.Lon, Lat1: a.Lat, Lon2: b.Lon, Lat2: b.Lat, Count: count})
		}
	}
	if len(set.Pairs) == 0 {
		return PairSet{}, errors.New("kml: no line strings found")
	}
	return set, nil
}

// parseKMLCoords reads whitespace separated "lon,lat[,alt]" tuples.
func parseKMLCoords(s string) []LonLat {
	var out []LonLat
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, LonLat{Lon: lon, Lat: lat})
	}
	return out
}
