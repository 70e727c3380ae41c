// Package window provides the Kaiser analysis window used for sideband
// amplitude measurement.
package window

import (
	"fmt"
	"math"

	"github.com/tphakala/go-pm-sidebands/internal/mathutil"
	"github.com/tphakala/simd/f64"
)

const (
	// centerDivisor locates the window center at length/2.
	centerDivisor = 2.0

	minWindowLength = 2
)

// Kaiser generates a periodic (DFT-even) Kaiser window of the given length.
//
//	w[n] = I₀(β·√(1 - ((n - N/2)/(N/2))²)) / I₀(β),  n = 0..N-1
//
// A periodic window is symmetric about N/2 and lines up with the DFT, so a
// tone centered on a bin is not spread by the window's own asymmetry.
// The peak value w[N/2] is 1.
func Kaiser(length int, beta float64) ([]float64, error) {
	if length < minWindowLength {
		return nil, fmt.Errorf("window too short: %d samples (minimum %d)", length, minWindowLength)
	}
	if beta < 0 || math.IsNaN(beta) || math.IsInf(beta, 0) {
		return nil, fmt.Errorf("invalid Kaiser beta: %v", beta)
	}

	w := make([]float64, length)
	half := float64(length) / centerDivisor
	i0Beta := mathutil.BesselI0(beta)

	for n := range length {
		x := (float64(n) - half) / half
		w[n] = mathutil.BesselI0(beta*math.Sqrt(1.0-x*x)) / i0Beta
	}

	return w, nil
}

// Sum returns Σw. A real cosine of amplitude A centered on bin k yields
// |X[k]| = A·Sum(w)/2.
func Sum(w []float64) float64 {
	return f64.Sum(w)
}

// Apply writes x[i]·w[i] into dst. All three slices must have equal length.
func Apply(dst, x, w []float64) error {
	if len(x) != len(w) || len(dst) != len(x) {
		return fmt.Errorf("window length mismatch: signal %d, window %d, dst %d", len(x), len(w), len(dst))
	}
	f64.Mul(dst, x, w)
	return nil
}
