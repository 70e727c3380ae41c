package sidebands

import (
	"fmt"
	"math"
)

// B0 approximates the carrier amplitude of a phase-modulated tone:
//
//	b0(h) = (1 + cos h) / 2
func B0(h float64) float64 {
	return (1 + math.Cos(h)) / halfDivisor
}

// B1 approximates the first sideband amplitude (twice J1):
//
//	b1(h) = (√2·sin(h/√2) + sin h) / 2
func B1(h float64) float64 {
	return (sqrt2*math.Sin(h/sqrt2) + math.Sin(h)) / halfDivisor
}

// B2 approximates the second sideband amplitude (twice J2):
//
//	b2(h) = (1 - cos h) / 2
func B2(h float64) float64 {
	return (1 - math.Cos(h)) / halfDivisor
}

// B3 approximates the third sideband amplitude (twice J3):
//
//	b3(h) = (√2·sin(h/√2) - sin h) / 2
func B3(h float64) float64 {
	return (sqrt2*math.Sin(h/sqrt2) - math.Sin(h)) / halfDivisor
}

// Coefficients returns b0..b3 at h, indexed by order.
func Coefficients(h float64) [numOrders]float64 {
	c, s := math.Cos(h), math.Sin(h)
	aux := sqrt2 * math.Sin(h/sqrt2)

	return [numOrders]float64{
		(1 + c) / halfDivisor,
		(aux + s) / halfDivisor,
		(1 - c) / halfDivisor,
		(aux - s) / halfDivisor,
	}
}

// Coefficient returns b_order(h).
func Coefficient(order int, h float64) (float64, error) {
	switch order {
	case 0:
		return B0(h), nil
	case 1:
		return B1(h), nil
	case 2:
		return B2(h), nil
	case 3:
		return B3(h), nil
	default:
		return 0, fmt.Errorf("%w: %d (supported 0..%d)", ErrUnsupportedOrder, order, MaxOrder)
	}
}

// NormalizationFactor returns the factor that maps b_order onto J_order:
// 1 for the carrier, 1/2 for every sideband.
func NormalizationFactor(order int) float64 {
	if order == 0 {
		return carrierScale
	}
	return sidebandScale
}
