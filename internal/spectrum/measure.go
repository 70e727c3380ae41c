package spectrum

import (
	"fmt"

	"github.com/tphakala/go-pm-sidebands/internal/window"
	"gonum.org/v1/gonum/dsp/fourier"
)

// cosineGain converts a bin value to the amplitude of a real cosine:
// A·cos splits into two half-amplitude complex lines.
const cosineGain = 2.0

// Measurement holds signed line amplitudes indexed by sideband order.
// Upper[0] and Lower[0] are both the carrier.
type Measurement struct {
	Upper []float64
	Lower []float64
}

// Measure windows x with a Kaiser analysis window, transforms it and reads
// the lines at carrier ± n·mod for n = 0..maxOrder.
//
// Amplitudes are signed: the real part of each bin, scaled by 2/Σw. For
// bin-centered cosines this recovers the synthesis amplitude including its
// sign.
func Measure(x []float64, t Tone, maxOrder int) (*Measurement, error) {
	if maxOrder < 0 {
		return nil, fmt.Errorf("spectrum: negative max order %d", maxOrder)
	}
	if err := t.Validate(maxOrder); err != nil {
		return nil, err
	}
	if len(x) != t.Length {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSignalLength, len(x), t.Length)
	}

	w, err := window.Kaiser(t.Length, t.beta())
	if err != nil {
		return nil, err
	}

	windowed := make([]float64, t.Length)
	if err := window.Apply(windowed, x, w); err != nil {
		return nil, err
	}

	fft := fourier.NewFFT(t.Length)
	coeffs := fft.Coefficients(nil, windowed)
	scale := cosineGain / window.Sum(w)

	m := &Measurement{
		Upper: make([]float64, maxOrder+1),
		Lower: make([]float64, maxOrder+1),
	}
	for n := range maxOrder + 1 {
		m.Upper[n] = real(coeffs[t.CarrierBin+n*t.ModBin]) * scale
		m.Lower[n] = real(coeffs[t.CarrierBin-n*t.ModBin]) * scale
	}

	return m, nil
}
