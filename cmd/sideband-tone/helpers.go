package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	sidebands "github.com/tphakala/go-pm-sidebands"
	"github.com/tphakala/go-pm-sidebands/internal/spectrum"
)

const maxOrder = sidebands.MaxOrder

// sidebandRow is one order of the measurement report.
type sidebandRow struct {
	Order      int
	Bessel     float64 // J_n(h)
	Measured   float64 // upper line of the exact PM tone
	Predicted  float64 // b_n(h) scaled
	MeasuredAp float64 // upper line of the approximation tone
}

func compareSidebands(tone spectrum.Tone, h float64, exact, approx []float64) ([]sidebandRow, error) {
	mExact, err := spectrum.Measure(exact, tone, maxOrder)
	if err != nil {
		return nil, fmt.Errorf("measuring PM tone: %w", err)
	}
	mApprox, err := spectrum.Measure(approx, tone, maxOrder)
	if err != nil {
		return nil, fmt.Errorf("measuring approximation: %w", err)
	}

	predicted := spectrum.ApproximateAmplitudes(h)
	ev := sidebands.StdBessel{}
	rows := make([]sidebandRow, 0, maxOrder+1)
	for n := range maxOrder + 1 {
		j, err := ev.BesselJ(n, h)
		if err != nil {
			return nil, err
		}
		rows = append(rows, sidebandRow{
			Order:      n,
			Bessel:     j,
			Measured:   mExact.Upper[n],
			Predicted:  predicted[n],
			MeasuredAp: mApprox.Upper[n],
		})
	}
	return rows, nil
}

func printSidebands(w io.Writer, h float64, rows []sidebandRow) error {
	fmt.Fprintf(w, "Sideband amplitudes at h = %g\n", h)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "n\tJ_n(h)\tmeasured PM\tb_n scaled\tmeasured approx")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%+.5f\t%+.5f\t%+.5f\t%+.5f\n",
			r.Order, r.Bessel, r.Measured, r.Predicted, r.MeasuredAp)
	}
	return tw.Flush()
}

func peakAbs(x []float64) float64 {
	var peak float64
	for _, v := range x {
		peak = math.Max(peak, math.Abs(v))
	}
	return peak
}
