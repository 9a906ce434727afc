package gcmap

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/paulgb/gcmap/internal/geodesic"
	"github.com/paulgb/gcmap/internal/geom"
)

// minDistance is the central angle, in radians, below which a pair counts as
// having coinciding endpoints.
const minDistance = 1e-12

// Dataset is an immutable set of pairs with their weights and draw order.
// Build one with NewDataset.
type Dataset struct {
	pairs      []geom.Pair
	weights    []float64
	degenerate []bool
	order      []int
	nDegen     int
}

// NewDataset validates the coordinate columns and computes each pair's
// weight, count divided by the great-circle distance on g, and the draw
// order: ascending by weight, stable on ties. A nil count means every pair
// counts once.
//
// Pairs whose endpoints coincide get no weight; they are flagged degenerate
// and ordered before every other pair.
func NewDataset(g *geodesic.Geod, lon1, lat1, lon2, lat2, count []float64) (*Dataset, error) {
	n := len(lon1)
	if len(lat1) != n || len(lon2) != n || len(lat2) != n {
		return nil, fmt.Errorf("%w: column lengths %d, %d, %d, %d differ",
			ErrInvalidInput, len(lon1), len(lat1), len(lon2), len(lat2))
	}
	if count != nil && len(count) != n {
		return nil, fmt.Errorf("%w: %d counts for %d pairs", ErrInvalidInput, len(count), n)
	}

	ds := &Dataset{
		pairs:      make([]geom.Pair, n),
		weights:    make([]float64, n),
		degenerate: make([]bool, n),
		order:      make([]int, n),
	}
	for i := range n {
		p := geom.Pair{Lon1: lon1[i], Lat1: lat1[i], Lon2: lon2[i], Lat2: lat2[i], Count: 1}
		if count != nil {
			p.Count = count[i]
		}
		if err := checkPair(p); err != nil {
			return nil, &PairError{Index: i, Err: err}
		}
		ds.pairs[i] = p
		ds.order[i] = i

		dist := g.Distance(p.Lon1, p.Lat1, p.Lon2, p.Lat2)
		if !(dist > minDistance*g.Radius()) {
			ds.degenerate[i] = true
			ds.nDegen++
			continue
		}
		ds.weights[i] = p.Count / dist
	}

	slices.SortStableFunc(ds.order, func(a, b int) int {
		if da, db := ds.degenerate[a], ds.degenerate[b]; da != db {
			if da {
				return -1
			}
			return 1
		}
		return cmp.Compare(ds.weights[a], ds.weights[b])
	})
	return ds, nil
}

func checkPair(p geom.Pair) error {
	for _, v := range []float64{p.Lon1, p.Lat1, p.Lon2, p.Lat2, p.Count} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value", ErrInvalidInput)
		}
	}
	if math.Abs(p.Lat1) > 90 || math.Abs(p.Lat2) > 90 {
		return fmt.Errorf("%w: latitude out of range", ErrInvalidInput)
	}
	if math.Abs(p.Lon1) > 360 || math.Abs(p.Lon2) > 360 {
		return fmt.Errorf("%w: longitude out of range", ErrInvalidInput)
	}
	if p.Count < 0 {
		return fmt.Errorf("%w: negative count %v", ErrInvalidInput, p.Count)
	}
	return nil
}

// Len returns the number of pairs.
func (ds *Dataset) Len() int { return len(ds.pairs) }

// Pair returns the i-th pair in input order.
func (ds *Dataset) Pair(i int) geom.Pair { return ds.pairs[i] }

// Weight returns the weight of the i-th pair; degenerate pairs report 0.
func (ds *Dataset) Weight(i int) float64 { return ds.weights[i] }

// IsDegenerate reports whether the i-th pair has coinciding endpoints.
func (ds *Dataset) IsDegenerate(i int) bool { return ds.degenerate[i] }

// Degenerate returns the number of degenerate pairs.
func (ds *Dataset) Degenerate() int { return ds.nDegen }

// Order returns a copy of the draw order: input indices from lowest to
// highest weight.
func (ds *Dataset) Order() []int { return slices.Clone(ds.order) }

// Weights returns a copy of the weights in input order.
func (ds *Dataset) Weights() []float64 { return slices.Clone(ds.weights) }
