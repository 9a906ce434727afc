package gcmap

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput reports malformed coordinate or count arrays.
	ErrInvalidInput = errors.New("gcmap: invalid input")
	// ErrDegenerateGeometry marks pairs whose endpoints coincide, leaving
	// their weight undefined.
	ErrDegenerateGeometry = errors.New("gcmap: zero-length pair")
	// ErrInvalidConfig reports a rejected render configuration.
	ErrInvalidConfig = errors.New("gcmap: invalid config")
	// ErrNoData is returned by Draw before any data was set.
	ErrNoData = errors.New("gcmap: no data set")
)

// PairError ties an error to the input index of the pair that caused it.
type PairError struct {
	Index int
	Err   error
}

func (e *PairError) Error() string {
	return fmt.Sprintf("pair %d: %v", e.Index, e.Err)
}

func (e *PairError) Unwrap() error { return e.Err }
