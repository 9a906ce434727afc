package gcmap

import (
	"image"

	"github.com/paulgb/gcmap/internal/geodesic"
)

// Mapper turns coordinate pairs into an image: configure it once, set the
// data, then draw.
type Mapper struct {
	cfg Config
	ds  *Dataset
}

// NewMapper validates cfg and returns a mapper without data.
func NewMapper(cfg Config) (*Mapper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Mapper{cfg: cfg}, nil
}

func (m *Mapper) Config() Config { return m.cfg }

// SetData replaces the pairs to draw. The four coordinate columns must have
// equal length; count is optional and, when given, must match them. On
// error the previous data is kept.
func (m *Mapper) SetData(lon1, lat1, lon2, lat2, count []float64) error {
	ds, err := NewDataset(geodesic.Unit, lon1, lat1, lon2, lat2, count)
	if err != nil {
		return err
	}
	m.ds = ds
	return nil
}

// Dataset returns the current data, or nil before SetData.
func (m *Mapper) Dataset() *Dataset { return m.ds }

// Draw renders the current data. An empty dataset gives a background-only
// image.
func (m *Mapper) Draw() (image.Image, error) {
	if m.ds == nil {
		return nil, ErrNoData
	}
	img, _, err := Draw(m.ds, m.cfg)
	return img, err
}
