package geom

import (
	"errors"
	"strings"

	"github.com/paulmach/orb/encoding/wkt"
)

// ParseWKT decodes pairs from WKT text. LINESTRING, MULTILINESTRING,
// two-point MULTIPOINT and GEOMETRYCOLLECTION are supported; several
// geometries may be given one per line.
func ParseWKT(text string) (PairSet, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return PairSet{}, errors.New("empty wkt")
	}
	var set PairSet
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		g, err := wkt.Unmarshal(line)
		if err != nil {
			return PairSet{}, err
		}
		addGeometry(&set, g, 1)
	}
	if len(set.Pairs) == 0 {
		return PairSet{}, errors.New("wkt: no line geometries parsed")
	}
	return set, nil
}
