package sidebands

import (
	"fmt"
	"math"
)

// BesselEvaluator evaluates the Bessel function of the first kind J_order(x).
//
// The comparison driver only requires orders 0..MaxOrder. Any correctly
// rounded implementation is acceptable; errors are passed through to the
// caller of Compare unchanged.
type BesselEvaluator interface {
	BesselJ(order int, x float64) (float64, error)
}

// BesselFunc adapts an ordinary function to the BesselEvaluator interface.
type BesselFunc func(order int, x float64) (float64, error)

// BesselJ calls f(order, x).
func (f BesselFunc) BesselJ(order int, x float64) (float64, error) {
	return f(order, x)
}

// StdBessel evaluates J_n with the standard library (math.J0, math.J1, math.Jn).
type StdBessel struct{}

// BesselJ implements BesselEvaluator.
func (StdBessel) BesselJ(order int, x float64) (float64, error) {
	if order < 0 || order > MaxOrder {
		return 0, fmt.Errorf("%w: J%d", ErrUnsupportedOrder, order)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%w: J%d(%v)", ErrNonFiniteInput, order, x)
	}

	switch order {
	case 0:
		return math.J0(x), nil
	case 1:
		return math.J1(x), nil
	default:
		return math.Jn(order, x), nil
	}
}
