package sidebands

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-pm-sidebands/internal/testutil"
)

// TestStdBessel_KnownValues tests StdBessel against tabulated J_n values.
func TestStdBessel_KnownValues(t *testing.T) {
	tests := []struct {
		name  string
		order int
		x     float64
		want  float64
	}{
		{"J0(0)", 0, 0, 1},
		{"J1(0)", 1, 0, 0},
		{"J2(0)", 2, 0, 0},
		{"J3(0)", 3, 0, 0},
		{"J0(1)", 0, 1, 0.7651976866},
		{"J1(1)", 1, 1, 0.4400505857},
		{"J2(1)", 2, 1, 0.1149034849},
		{"J3(1)", 3, 1, 0.0195633540},
		{"J0(2.4048)", 0, 2.404825557695773, 0},
		{"J1(3)", 1, 3, 0.3390589585},
		{"J2(4)", 2, 4, 0.3641281459},
	}

	ev := StdBessel{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ev.BesselJ(tt.order, tt.x)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

// TestStdBessel_Parity tests J_n(-x) = (-1)^n J_n(x).
func TestStdBessel_Parity(t *testing.T) {
	ev := StdBessel{}
	for order := range MaxOrder + 1 {
		sign := 1.0
		if order%2 == 1 {
			sign = -1
		}
		for _, x := range []float64{0.3, 1, 2.5, 4.4} {
			pos, err := ev.BesselJ(order, x)
			require.NoError(t, err)
			neg, err := ev.BesselJ(order, -x)
			require.NoError(t, err)
			assert.InDelta(t, sign*pos, neg, testutil.BesselTolerance, "J%d at %v", order, x)
		}
	}
}

// TestStdBessel_Errors tests the rejected inputs.
func TestStdBessel_Errors(t *testing.T) {
	ev := StdBessel{}

	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := ev.BesselJ(0, x)
		require.ErrorIs(t, err, ErrNonFiniteInput, "x=%v", x)
	}

	for _, order := range []int{-1, MaxOrder + 1} {
		_, err := ev.BesselJ(order, 1)
		require.ErrorIs(t, err, ErrUnsupportedOrder, "order %d", order)
	}
}

// TestBesselFunc tests the function adapter.
func TestBesselFunc(t *testing.T) {
	sentinel := errors.New("boom")
	var calls int
	ev := BesselFunc(func(order int, x float64) (float64, error) {
		calls++
		if x > 1 {
			return 0, sentinel
		}
		return float64(order) + x, nil
	})

	got, err := ev.BesselJ(2, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)

	_, err = ev.BesselJ(0, 2)
	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, 2, calls)
}
