package sidebands

import (
	"fmt"
	"image/color"
)

// Style is the explicit, immutable look of a comparison figure. It is passed
// by value; nothing is read from global state.
type Style struct {
	Title string

	// Width and Height are the figure size in inches.
	Width  float64
	Height float64

	// LineWidth is the stroke width in points.
	LineWidth float64

	// Colors holds one color per order. J_n and b_n share a color.
	Colors [numOrders]color.RGBA

	// DashApproximations draws the b_n curves dashed.
	DashApproximations bool
}

// DefaultStyle returns a 10x4 inch figure with one color per order.
func DefaultStyle() Style {
	return Style{
		Title:     "Sideband approximations vs. Bessel functions",
		Width:     defaultFigureWidth,
		Height:    defaultFigureHeight,
		LineWidth: defaultLineWidth,
		Colors: [numOrders]color.RGBA{
			{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
			{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
			{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
			{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
		},
		DashApproximations: true,
	}
}

// Validate checks that the style can be rendered.
func (s Style) Validate() error {
	if s.Width <= 0 || s.Height <= 0 || s.LineWidth <= 0 {
		return fmt.Errorf("%w: size %vx%v, line width %v", ErrInvalidStyle, s.Width, s.Height, s.LineWidth)
	}
	return nil
}

// Limits is a closed axis interval.
type Limits struct {
	Min, Max float64
}

// Series is one labeled line of a panel.
type Series struct {
	Label  string
	Order  int
	Kind   CurveKind
	X, Y   []float64
	Color  color.RGBA
	Dashed bool
}

// Panel is one subplot. A nil XLim or YLim means the renderer picks the
// range from the data; empty YTicks means default ticks.
type Panel struct {
	Title  string
	XLabel string
	YLabel string
	XLim   *Limits
	YLim   *Limits
	YTicks []float64
	Series []Series
}

// Figure is the data handed to a plotting backend: panels laid out left to
// right, plus the style they were built with.
type Figure struct {
	Title     string
	Width     float64
	Height    float64
	LineWidth float64
	Panels    []Panel
}

// panelLayout fixes which orders share a panel and the per-panel axes.
var panelLayout = []struct {
	orders []int
	title  string
}{
	{orders: []int{0, 1}, title: "Orders 0 and 1"},
	{orders: []int{2, 3}, title: "Orders 2 and 3"},
}

// BuildFigure arranges a comparison into two side-by-side panels:
// {J0, b0, J1, b1/2} and {J2, b2/2, J3, b3/2}. Approximations are scaled
// by NormalizationFactor. A panel none of whose orders were compared is
// left out.
//
// The first panel's x-limits follow the comparison grid. The second panel
// keeps its fixed window of x in [0, 4.4] and y in [-0.04, 0.55] whatever
// the grid, so the two panels share an x domain only for grids close to
// the default [0, 1.4π].
func BuildFigure(cmp *Comparison, style Style) (*Figure, error) {
	if cmp == nil || len(cmp.H) == 0 {
		return nil, ErrEmptyComparison
	}
	if err := style.Validate(); err != nil {
		return nil, err
	}

	fig := &Figure{
		Title:     style.Title,
		Width:     style.Width,
		Height:    style.Height,
		LineWidth: style.LineWidth,
	}

	for i, layout := range panelLayout {
		panel := Panel{
			Title:  layout.title,
			XLabel: "h (rad)",
			YLabel: "amplitude",
		}

		for _, order := range layout.orders {
			ref, okRef := cmp.Reference(order)
			approx, okApprox := cmp.Approximation(order)
			if !okRef || !okApprox {
				continue
			}

			panel.Series = append(panel.Series,
				Series{
					Label: ref.Label,
					Order: order,
					Kind:  Reference,
					X:     ref.H,
					Y:     ref.Values,
					Color: style.Colors[order],
				},
				Series{
					Label:  approx.Label,
					Order:  order,
					Kind:   Approximation,
					X:      approx.H,
					Y:      approx.Scaled(),
					Color:  style.Colors[order],
					Dashed: style.DashApproximations,
				},
			)
		}

		if len(panel.Series) == 0 {
			continue
		}

		switch i {
		case 0:
			panel.XLim = &Limits{Min: cmp.H[0], Max: cmp.H[len(cmp.H)-1]}
			panel.YTicks = append([]float64(nil), panel1YTicks...)
		case 1:
			panel.XLim = &Limits{Min: 0, Max: panel2XMax}
			panel.YLim = &Limits{Min: panel2YMin, Max: panel2YMax}
		}

		fig.Panels = append(fig.Panels, panel)
	}

	return fig, nil
}
