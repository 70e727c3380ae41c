package main

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sidebands "github.com/tphakala/go-pm-sidebands"
	"github.com/tphakala/go-pm-sidebands/internal/spectrum"
	"github.com/tphakala/go-pm-sidebands/internal/testutil"
	"github.com/tphakala/go-pm-sidebands/internal/wavio"
)

func TestCompareSidebands(t *testing.T) {
	tone := spectrum.DefaultTone()
	const h = 1.2

	rows, err := compareSidebands(tone, h, tone.PM(h), tone.Approximation(h))
	require.NoError(t, err)
	require.Len(t, rows, maxOrder+1)

	for n, r := range rows {
		assert.Equal(t, n, r.Order)
		assert.InDelta(t, math.Jn(n, h), r.Bessel, testutil.BesselTolerance)
		assert.InDelta(t, r.Bessel, r.Measured, testutil.SpectrumTolerance, "order %d", n)
		assert.InDelta(t, r.Predicted, r.MeasuredAp, testutil.SpectrumTolerance, "order %d", n)
	}
	assert.InDelta(t, sidebands.B0(h), rows[0].Predicted, testutil.IdentityTolerance)
	assert.InDelta(t, sidebands.B3(h)/2, rows[3].Predicted, testutil.IdentityTolerance)
}

func TestCompareSidebands_LengthMismatch(t *testing.T) {
	tone := spectrum.DefaultTone()
	_, err := compareSidebands(tone, 1, make([]float64, 10), tone.Approximation(1))
	require.ErrorIs(t, err, spectrum.ErrSignalLength)
}

func TestPrintSidebands(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printSidebands(&buf, 1.5, []sidebandRow{
		{Order: 1, Bessel: 0.5579, Measured: 0.5579, Predicted: 0.5, MeasuredAp: 0.5},
	}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Sideband amplitudes at h = 1.5"))
	assert.Contains(t, out, "+0.55790")
	assert.Contains(t, out, "+0.50000")
}

func TestPeakAbs(t *testing.T) {
	assert.Equal(t, 0.0, peakAbs(nil))
	assert.Equal(t, 2.5, peakAbs([]float64{0.1, -2.5, 1}))
}

func TestDefaultToneFitsWAV(t *testing.T) {
	tone := spectrum.ToneAt(defaultRate, defaultCarrier, defaultMod, defaultDuration)
	require.NoError(t, tone.Validate(maxOrder))
	assert.Equal(t, 64, tone.ModBin)

	path := filepath.Join(t.TempDir(), "tone.wav")
	pm := tone.PM(defaultIndex)
	require.NoError(t, wavio.WriteStereo(path, defaultRate, defaultBits, pm, pm))

	audio, err := wavio.Read(path)
	require.NoError(t, err)
	assert.Equal(t, defaultRate, audio.SampleRate)
}
