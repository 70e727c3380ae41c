package sidebands

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the root of every configuration error. It is returned
// before any evaluation takes place.
var ErrInvalidConfig = errors.New("sidebands: invalid configuration")

// Configuration errors. All of them match ErrInvalidConfig under errors.Is.
var (
	ErrInvalidSampleCount = fmt.Errorf("%w: sample count must be at least 2", ErrInvalidConfig)
	ErrInvalidRange       = fmt.Errorf("%w: range must be finite with h_min < h_max", ErrInvalidConfig)
	ErrInvalidOrder       = fmt.Errorf("%w: orders must be distinct values in [0, %d]", ErrInvalidConfig, MaxOrder)
	ErrInvalidStyle       = fmt.Errorf("%w: figure size and line width must be positive", ErrInvalidConfig)
)

// Evaluation errors.
var (
	// ErrUnsupportedOrder is returned for a sideband order outside the
	// supported range.
	ErrUnsupportedOrder = errors.New("sidebands: unsupported order")

	// ErrNonFiniteInput is returned by StdBessel for NaN or infinite arguments.
	ErrNonFiniteInput = errors.New("sidebands: non-finite input")

	// ErrEmptyComparison is returned when a nil or empty comparison is passed to a
	// function that post-processes one.
	ErrEmptyComparison = errors.New("sidebands: nil or empty comparison")
)
