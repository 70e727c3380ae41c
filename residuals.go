package sidebands

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Residual summarizes how closely the normalized approximation b_n·scale
// tracks J_n over the comparison grid.
type Residual struct {
	Order int

	// MaxAbsError is max |b_n·scale - J_n| and ArgMaxH the h where it occurs.
	MaxAbsError float64
	ArgMaxH     float64

	// RMSError is the root-mean-square of b_n·scale - J_n.
	RMSError float64

	// Correlation is the Pearson correlation between the two curves. It is
	// NaN when either curve is constant over the grid.
	Correlation float64
}

// Residuals computes one Residual per compared order, in comparison order.
func Residuals(cmp *Comparison) ([]Residual, error) {
	if cmp == nil || len(cmp.H) == 0 {
		return nil, ErrEmptyComparison
	}

	out := make([]Residual, 0, len(cmp.Approximations))
	for _, approx := range cmp.Approximations {
		ref, ok := cmp.Reference(approx.Order)
		if !ok {
			return nil, fmt.Errorf("%w: no reference curve for order %d", ErrUnsupportedOrder, approx.Order)
		}
		if ref.Len() != approx.Len() {
			return nil, fmt.Errorf("sidebands: order %d curve lengths differ (%d vs %d)",
				approx.Order, approx.Len(), ref.Len())
		}

		scaled := approx.Scaled()
		diff := make([]float64, len(scaled))
		floats.SubTo(diff, scaled, ref.Values)

		idx := maxAbsIndex(diff)
		out = append(out, Residual{
			Order:       approx.Order,
			MaxAbsError: math.Abs(diff[idx]),
			ArgMaxH:     approx.H[idx],
			RMSError:    math.Sqrt(f64.DotProduct(diff, diff) / float64(len(diff))),
			Correlation: stat.Correlation(scaled, ref.Values, nil),
		})
	}

	return out, nil
}

func maxAbsIndex(s []float64) int {
	best := 0
	for i, v := range s {
		if math.Abs(v) > math.Abs(s[best]) {
			best = i
		}
	}
	return best
}
