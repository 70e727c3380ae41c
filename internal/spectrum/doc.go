// Package spectrum synthesizes modulated test tones and measures their
// sideband amplitudes with a windowed FFT.
//
// All tones are bin-centered: the carrier and the modulating frequency are
// whole numbers of DFT bins over the analysis length, so every spectral
// line falls exactly on a bin. A cosine of amplitude A at bin k then shows up
// as X[k] = A·Σw/2, and the measured value is signed: for a phase-modulated
// carrier the upper sideband of order n reads J_n(h) directly.
//
// # Usage
//
//	tone := spectrum.DefaultTone()
//	x := tone.PM(1.2)
//	m, _ := spectrum.Measure(x, tone, 3)
//	// m.Upper[n] ≈ J_n(1.2), m.Lower[n] ≈ (-1)^n·J_n(1.2)
//
// The measurement is a one-shot analysis of a complete buffer; there is no
// streaming state.
package spectrum
