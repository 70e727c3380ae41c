package spectrum

import (
	"errors"
	"fmt"
	"math"

	sidebands "github.com/tphakala/go-pm-sidebands"
	"github.com/tphakala/go-pm-sidebands/internal/mathutil"
)

// Tone defaults
const (
	DefaultLength     = 4096
	DefaultCarrierBin = 512
	DefaultModBin     = 32

	// DefaultSidelobeDB is the analysis window's highest sidelobe level.
	DefaultSidelobeDB = 120.0

	minToneLength = 64
	tau           = 2 * math.Pi

	// nyquistDivisor gives the number of non-negative frequency bins.
	nyquistDivisor = 2
)

// Errors returned by tone validation and measurement.
var (
	ErrToneLength     = errors.New("spectrum: tone length too short")
	ErrToneBins       = errors.New("spectrum: carrier and modulation bins must be positive")
	ErrToneSeparation = errors.New("spectrum: modulation bin closer than the window main lobe")
	ErrToneRange      = errors.New("spectrum: sideband falls outside (0, Nyquist)")
	ErrSignalLength   = errors.New("spectrum: signal length does not match tone")
)

// Tone describes a bin-centered carrier and modulating frequency.
type Tone struct {
	// Length is the number of samples in the synthesized buffer.
	Length int

	// CarrierBin and ModBin are frequencies in DFT bins (cycles per Length).
	CarrierBin int
	ModBin     int

	// SidelobeDB selects the Kaiser analysis window. Zero means DefaultSidelobeDB.
	SidelobeDB float64
}

// DefaultTone returns a 4096-sample tone with the carrier at bin 512 and
// the modulating frequency at 32 bins.
func DefaultTone() Tone {
	return Tone{
		Length:     DefaultLength,
		CarrierBin: DefaultCarrierBin,
		ModBin:     DefaultModBin,
		SidelobeDB: DefaultSidelobeDB,
	}
}

// ToneAt builds a Tone for a buffer of duration seconds at sampleRate,
// rounding carrierHz and modHz to the nearest bin.
func ToneAt(sampleRate, carrierHz, modHz, duration float64) Tone {
	return Tone{
		Length:     int(math.Round(sampleRate * duration)),
		CarrierBin: int(math.Round(carrierHz * duration)),
		ModBin:     int(math.Round(modHz * duration)),
		SidelobeDB: DefaultSidelobeDB,
	}
}

func (t Tone) sidelobeDB() float64 {
	if t.SidelobeDB == 0 {
		return DefaultSidelobeDB
	}
	return t.SidelobeDB
}

func (t Tone) beta() float64 {
	return mathutil.AnalysisBeta(t.sidelobeDB())
}

// Validate checks that sidebands up to maxOrder can be resolved: every line
// carrier ± n·mod lies strictly inside (0, Nyquist) and neighboring lines are
// at least one main-lobe width apart.
func (t Tone) Validate(maxOrder int) error {
	if t.Length < minToneLength {
		return fmt.Errorf("%w: %d samples (minimum %d)", ErrToneLength, t.Length, minToneLength)
	}
	if t.CarrierBin <= 0 || t.ModBin <= 0 {
		return fmt.Errorf("%w: carrier %d, modulation %d", ErrToneBins, t.CarrierBin, t.ModBin)
	}

	lobe := mathutil.MainLobeHalfWidth(t.beta())
	if float64(t.ModBin) < 2*lobe {
		return fmt.Errorf("%w: %d bins < %.1f", ErrToneSeparation, t.ModBin, 2*lobe)
	}

	lo := t.CarrierBin - maxOrder*t.ModBin
	hi := t.CarrierBin + maxOrder*t.ModBin
	if float64(lo) < lobe || float64(hi) > float64(t.Length/nyquistDivisor)-lobe {
		return fmt.Errorf("%w: bins [%d, %d], Nyquist %d", ErrToneRange, lo, hi, t.Length/nyquistDivisor)
	}

	return nil
}

// PM synthesizes cos(2π·kc·n/N + h·sin(2π·km·n/N)).
func (t Tone) PM(h float64) []float64 {
	x := make([]float64, t.Length)
	n := float64(t.Length)
	for i := range x {
		phase := tau * float64(i) / n
		x[i] = math.Cos(float64(t.CarrierBin)*phase + h*math.Sin(float64(t.ModBin)*phase))
	}
	return x
}

// AM synthesizes (1 + m·cos(2π·km·n/N))·cos(2π·kc·n/N). Its sidebands of
// order 1 have amplitude m/2 and all higher orders vanish.
func (t Tone) AM(m float64) []float64 {
	x := make([]float64, t.Length)
	n := float64(t.Length)
	for i := range x {
		phase := tau * float64(i) / n
		x[i] = (1 + m*math.Cos(float64(t.ModBin)*phase)) * math.Cos(float64(t.CarrierBin)*phase)
	}
	return x
}

// Sidebands synthesizes a carrier with amplitude amps[0] plus, for each
// order n ≥ 1, an upper line of amplitude amps[n] and a lower line of
// amplitude (-1)^n·amps[n]. With amps[n] = J_n(h) this is the phase
// modulated tone truncated to len(amps)-1 orders.
func (t Tone) Sidebands(amps []float64) []float64 {
	x := make([]float64, t.Length)
	n := float64(t.Length)
	for i := range x {
		phase := tau * float64(i) / n
		var v float64
		for order, a := range amps {
			upper := math.Cos(float64(t.CarrierBin+order*t.ModBin) * phase)
			if order == 0 {
				v += a * upper
				continue
			}
			lower := math.Cos(float64(t.CarrierBin-order*t.ModBin) * phase)
			if order%2 == 1 {
				lower = -lower
			}
			v += a * (upper + lower)
		}
		x[i] = v
	}
	return x
}

// Approximation synthesizes the tone predicted by the closed-form
// coefficients: carrier b0(h) and sideband pairs b_n(h)/2 for n = 1..3.
func (t Tone) Approximation(h float64) []float64 {
	return t.Sidebands(ApproximateAmplitudes(h))
}

// ApproximateAmplitudes returns b_n(h)·NormalizationFactor(n) for n = 0..MaxOrder.
func ApproximateAmplitudes(h float64) []float64 {
	c := sidebands.Coefficients(h)
	amps := make([]float64, len(c))
	for n, b := range c {
		amps[n] = b * sidebands.NormalizationFactor(n)
	}
	return amps
}
