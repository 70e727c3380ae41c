package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-pm-sidebands/internal/testutil"
)

// TestBesselI0 tests BesselI0 against known values.
func TestBesselI0(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		expected  float64
		tolerance float64
	}{
		{"Zero", 0.0, 1.0, 1e-15},
		{"Small positive", 0.5, 1.063483344, 1e-7},
		{"One", 1.0, 1.266065848, 1e-7},
		{"Two", 2.0, 2.279585307, 1e-7},
		{"Boundary 3.75", 3.75, 9.118945994, 1e-7},
		{"Five", 5.0, 27.23987183, 1e-7},
		{"Ten", 10.0, 2815.716628, 1e-6},
		{"Negative one", -1.0, 1.266065848, 1e-7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertRelativeError(t, tt.expected, BesselI0(tt.x), tt.tolerance)
		})
	}
}

// TestBesselI0_Symmetry tests I₀(x) = I₀(-x) (even function property).
func TestBesselI0_Symmetry(t *testing.T) {
	for _, x := range []float64{0.1, 1.0, 2.5, 5.0, 15.7} {
		assert.InDelta(t, BesselI0(x), BesselI0(-x), 1e-10, "x=%v", x)
	}
}

// TestBesselI0_Monotonic tests I₀(x) is monotonically increasing for x > 0.
func TestBesselI0_Monotonic(t *testing.T) {
	prev := BesselI0(0)
	for x := 0.1; x < 20.0; x += 0.1 {
		curr := BesselI0(x)
		assert.Greater(t, curr, prev, "x=%v", x)
		prev = curr
	}
}

// TestAnalysisBeta tests the sidelobe-to-β mapping.
func TestAnalysisBeta(t *testing.T) {
	tests := []struct {
		name       string
		sidelobeDB float64
		want       float64
	}{
		{"rectangular", 13.0, 0},
		{"at rectangular limit", 13.26, 0},
		{"60dB", 60.0, 0.76609*math.Pow(46.74, 0.4) + 0.09834*46.74},
		{"90dB", 90.0, 0.12438 * 96.3},
		{"120dB", 120.0, 0.12438 * 126.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AnalysisBeta(tt.sidelobeDB), 1e-12)
		})
	}
}

// TestAnalysisBeta_Monotonic tests that more attenuation never lowers β.
func TestAnalysisBeta_Monotonic(t *testing.T) {
	prev := AnalysisBeta(0)
	for sl := 5.0; sl <= 150; sl += 5 {
		beta := AnalysisBeta(sl)
		assert.GreaterOrEqual(t, beta, prev, "sl=%v", sl)
		prev = beta
	}
}

func TestMainLobeHalfWidth(t *testing.T) {
	assert.Equal(t, 1.0, MainLobeHalfWidth(0))
	assert.InDelta(t, math.Sqrt2, MainLobeHalfWidth(math.Pi), 1e-15)
	testutil.AssertInRange(t, MainLobeHalfWidth(AnalysisBeta(120)), 5, 5.2)
}

func BenchmarkBesselI0(b *testing.B) {
	x := 15.7
	for b.Loop() {
		_ = BesselI0(x)
	}
}
