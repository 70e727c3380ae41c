// Package sidebands provides closed-form approximations of the sideband
// amplitudes of a phase-modulated tone and compares them with the Bessel
// functions of the first kind.
//
// A carrier phase-modulated by a pure tone with modulation index h expands as
//
//	cos(ωc·t + h·sin ωm·t) = Σ J_n(h)·cos((ωc + n·ωm)·t)
//
// For small h only a few orders matter. This package approximates the first
// four with trigonometric expressions that are exact at the sampled points
// of the underlying derivation:
//
//	b0(h) = (1 + cos h) / 2
//	b1(h) = (√2·sin(h/√2) + sin h) / 2
//	b2(h) = (1 - cos h) / 2
//	b3(h) = (√2·sin(h/√2) - sin h) / 2
//
// and relates them to the Bessel functions by J_0 ≈ b0 and J_m ≈ b_m/2.
//
// # Features
//
//   - Pure, total coefficient functions [B0], [B1], [B2], [B3]
//   - A pluggable [BesselEvaluator] for the reference J_n values, with
//     [StdBessel] backed by the standard library
//   - A comparison driver ([Compare]) that samples an evenly spaced grid of h
//   - Plot-ready figure data ([BuildFigure]) for any plotting backend
//   - Residual statistics ([Residuals]) quantifying the approximation error
//
// # Quick Start
//
//	cmp, err := sidebands.Compare(sidebands.DefaultConfig(), sidebands.StdBessel{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fig, err := sidebands.BuildFigure(cmp, sidebands.DefaultStyle())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// hand fig.Panels to a renderer
//
// # Configuration
//
// [DefaultConfig] is the reference scenario: 1001 points over [0, 1.4π] and
// orders 0 through 3. Invalid grids (fewer than two samples, an empty or
// reversed range, unknown orders) fail with an error wrapping
// [ErrInvalidConfig] before anything is evaluated.
//
// # Figure Layout
//
// [BuildFigure] produces two panels. The first overlays J0, b0, J1 and b1/2
// with y-ticks at -0.5, 0, 0.5 and 1. The second overlays J2, b2/2, J3 and
// b3/2 over the fixed window x in [0, 4.4] and y in [-0.04, 0.55]; only the
// first panel's x-limits follow the grid. Colors, size and dashing
// come from an explicit [Style] value.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use. A [Figure] references
// the curve data of the [Comparison] it was built from; treat both as
// read-only.
package sidebands
