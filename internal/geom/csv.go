package geom

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// csvColumns lists the accepted header names per field, matched
// case-insensitively.
var csvColumns = [5][]string{
	{"lon1", "lng1", "long1", "longitude1", "source_lon", "src_lon", "origin_lon", "longitude_source", "x1"},
	{"lat1", "latitude1", "source_lat", "src_lat", "origin_lat", "latitude_source", "y1"},
	{"lon2", "lng2", "long2", "longitude2", "dest_lon", "dst_lon", "destination_lon", "longitude_dest", "x2"},
	{"lat2", "latitude2", "dest_lat", "dst_lat", "destination_lat", "latitude_dest", "y2"},
	{"count", "cnt", "n", "freq", "frequency", "weight"},
}

// LoadCSV reads coordinate pairs from a CSV file with a header row.
// Column detection: see csvColumns; the count column is optional.
func LoadCSV(path string) (PairSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return PairSet{}, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV is LoadCSV for an already open reader. Rows whose coordinates do
// not parse are skipped.
func ReadCSV(r io.Reader) (PairSet, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return PairSet{}, err
	}
	if len(recs) == 0 {
		return PairSet{}, errors.New("empty csv")
	}
	idx := [5]int{-1, -1, -1, -1, -1}
	for i, h := range recs[0] {
		lh := strings.ToLower(strings.TrimSpace(h))
		for field, names := range csvColumns {
			if idx[field] != -1 {
				continue
			}
			for _, name := range names {
				if lh == name {
					idx[field] = i
				}
			}
		}
	}
	for _, i := range idx[:4] {
		if i == -1 {
			return PairSet{}, errors.New("csv: lon1/lat1/lon2/lat2 columns not found")
		}
	}
	set := PairSet{HasCount: idx[4] != -1}
	for _, row := range recs[1:] {
		var v [5]float64
		ok := true
		for field, i := range idx {
			if i == -1 {
				v[field] = 1
				continue
			}
			if i >= len(row) {
				ok = false
				break
			}
			x, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
			if err != nil {
				ok = false
				break
			}
			v[field] = x
		}
		if !ok {
			continue
		}
		set.add(Pair{Lon1: v[0], Lat1: v[1], Lon2: v[2], Lat2: v[3], Count: v[4]})
	}
	if len(set.Pairs) == 0 {
		return PairSet{}, errors.New("csv: no valid pairs parsed")
	}
	return set, nil
}
