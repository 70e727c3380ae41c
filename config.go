package sidebands

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// minSamples is the smallest grid that contains both endpoints.
const minSamples = 2

// Config describes the sample grid and the orders to compare.
type Config struct {
	// HMin and HMax bound the modulation index grid (inclusive, radians).
	HMin float64
	HMax float64

	// Samples is the number of evenly spaced grid points.
	Samples int

	// Orders lists the sideband orders to evaluate, each in [0, MaxOrder].
	// The order of the slice is preserved in the resulting curves.
	Orders []int
}

// DefaultConfig returns the reference scenario: h in [0, 1.4π], 1001 samples,
// orders 0 through 3.
func DefaultConfig() Config {
	return Config{
		HMin:    DefaultHMin,
		HMax:    DefaultHMax,
		Samples: DefaultSamples,
		Orders:  []int{0, 1, 2, 3},
	}
}

// Validate checks that the configuration describes a usable grid.
func (c *Config) Validate() error {
	if c.Samples < minSamples {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleCount, c.Samples)
	}

	if !isFinite(c.HMin) || !isFinite(c.HMax) {
		return fmt.Errorf("%w: got [%v, %v]", ErrInvalidRange, c.HMin, c.HMax)
	}

	if c.HMin >= c.HMax {
		return fmt.Errorf("%w: got [%v, %v]", ErrInvalidRange, c.HMin, c.HMax)
	}

	if math.IsInf(c.HMax-c.HMin, 0) {
		return fmt.Errorf("%w: width of [%v, %v] overflows", ErrInvalidRange, c.HMin, c.HMax)
	}

	if len(c.Orders) == 0 {
		return fmt.Errorf("%w: no orders requested", ErrInvalidOrder)
	}

	seen := make(map[int]bool, len(c.Orders))
	for _, n := range c.Orders {
		if n < 0 || n > MaxOrder {
			return fmt.Errorf("%w: got %d", ErrInvalidOrder, n)
		}
		if seen[n] {
			return fmt.Errorf("%w: %d listed twice", ErrInvalidOrder, n)
		}
		seen[n] = true
	}

	return nil
}

// Grid returns Samples evenly spaced modulation indices over [HMin, HMax].
// The first element is exactly HMin and the last exactly HMax.
func Grid(cfg Config) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	h := floats.Span(make([]float64, cfg.Samples), cfg.HMin, cfg.HMax)
	// Span accumulates l + step*i, which can miss u by an ulp.
	h[len(h)-1] = cfg.HMax

	return h, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
