package geom

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned by Load for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Extensions lists the file extensions Load understands.
var Extensions = []string{".csv", ".geojson", ".json", ".kml", ".wkt"}

// Supported reports whether Load can read path.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load decodes a pair file, choosing the decoder by extension.
func Load(path string) (PairSet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	case ".kml":
		return LoadKML(path)
	case ".wkt":
		data, err := os.ReadFile(path)
		if err != nil {
			return PairSet{}, err
		}
		return ParseWKT(string(data))
	default:
		return PairSet{}, ErrUnsupportedFormat
	}
}
