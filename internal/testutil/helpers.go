// Package testutil provides reusable test helpers for the sideband packages.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	// IdentityTolerance bounds rounding error in exact trigonometric identities.
	IdentityTolerance = 1e-12

	// BesselTolerance bounds the difference between two correctly rounded
	// J_n implementations.
	BesselTolerance = 1e-9

	// SpectrumTolerance bounds FFT amplitude measurements of synthetic tones.
	SpectrumTolerance = 1e-4

	// PCMTolerance bounds the quantization error of a 16-bit round trip.
	PCMTolerance = 1e-4
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertStrictlyIncreasing verifies that every element is greater than the previous one.
func AssertStrictlyIncreasing(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, "not strictly increasing",
				"s[%d]=%g <= s[%d]=%g", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertEvenlySpaced verifies that consecutive differences are all equal within tolerance.
func AssertEvenlySpaced(t *testing.T, s []float64, tolerance float64) bool {
	t.Helper()
	if len(s) < 2 {
		return true
	}
	step := s[1] - s[0]
	for i := 2; i < len(s); i++ {
		if !assert.InDelta(t, step, s[i]-s[i-1], tolerance,
			"uneven spacing at i=%d", i) {
			return false
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// SampleH returns a spread of modulation indices, including negatives and
// values far outside the plotted domain.
func SampleH() []float64 {
	return []float64{-100, -7.5, -math.Pi, -1, -0.05, 0, 1e-9, 0.05, 0.5, 1, 2, math.Pi, 1.4 * math.Pi, 10, 1e3}
}
