// Package mathutil provides the special functions behind the analysis window
// used to measure sideband amplitudes.
package mathutil

import (
	"math"
)

// BesselI0 computes the modified Bessel function of the first kind, order zero: I₀(x).
// This function is used in Kaiser window calculation for spectral analysis.
//
// The implementation uses polynomial approximations:
//   - For |x| < 3.75: power series in (x/3.75)²
//   - For |x| ≥ 3.75: asymptotic expansion with exponential scaling
//
// Reference: Abramowitz & Stegun, "Handbook of Mathematical Functions", 9.8.1-9.8.2.
func BesselI0(x float64) float64 {
	// I₀ is even
	ax := math.Abs(x)

	if ax < besselSmallArgThreshold {
		t := x / besselSmallArgThreshold
		t *= t

		return 1.0 + t*(besselI0Coeff1+t*(besselI0Coeff2+t*(besselI0Coeff3+
			t*(besselI0Coeff4+t*(besselI0Coeff5+t*besselI0Coeff6)))))
	}

	// I₀(x) ≈ (eˣ / √x) * P(3.75/x)
	t := besselSmallArgThreshold / ax

	p := besselI0AsympCoeff0 + t*(besselI0AsympCoeff1+t*(besselI0AsympCoeff2+
		t*(besselI0AsympCoeff3+t*(besselI0AsympCoeff4+t*(besselI0AsympCoeff5+
			t*(besselI0AsympCoeff6+t*(besselI0AsympCoeff7+t*besselI0AsympCoeff8)))))))

	return math.Exp(ax) * p / math.Sqrt(ax)
}

// AnalysisBeta returns the Kaiser β giving the requested highest-sidelobe
// level, in dB below the main lobe, for a spectral analysis window.
//
// Formula from Kaiser & Schafer (1980):
//   - For sl ≤ 13.26 dB: β = 0 (rectangular window)
//   - For 13.26 < sl ≤ 60 dB: β = 0.76609·(sl - 13.26)^0.4 + 0.09834·(sl - 13.26)
//   - For sl > 60 dB: β = 0.12438·(sl + 6.3)
func AnalysisBeta(sidelobeDB float64) float64 {
	switch {
	case sidelobeDB > analysisSidelobeHigh:
		return analysisBetaHighCoeff * (sidelobeDB + analysisBetaHighOffset)
	case sidelobeDB > analysisSidelobeRect:
		delta := sidelobeDB - analysisSidelobeRect
		return analysisBetaMediumCoeff1*math.Pow(delta, analysisBetaMediumPower) + analysisBetaMediumCoeff2*delta
	default:
		return 0.0
	}
}

// MainLobeHalfWidth returns the distance, in DFT bins, from the peak of a
// Kaiser window's main lobe to its first null:
//
//	√(1 + (β/π)²)
func MainLobeHalfWidth(beta float64) float64 {
	r := beta / math.Pi
	return math.Sqrt(1 + r*r)
}
