package sidebands

import (
	"fmt"

	"github.com/tphakala/simd/f64"
)

// CurveKind distinguishes the closed-form approximations from the
// reference Bessel values.
type CurveKind int

const (
	// Approximation is a b_n curve from the coefficient model.
	Approximation CurveKind = iota

	// Reference is a J_n curve from the BesselEvaluator.
	Reference
)

// String returns a short name for the kind.
func (k CurveKind) String() string {
	switch k {
	case Approximation:
		return "approximation"
	case Reference:
		return "reference"
	default:
		return fmt.Sprintf("CurveKind(%d)", int(k))
	}
}

// Curve is one sampled function of h. H and Values have equal length.
type Curve struct {
	Order  int
	Kind   CurveKind
	Label  string
	H      []float64
	Values []float64

	// Scale is the normalization applied before plotting against J_Order.
	// It is 1 for reference curves.
	Scale float64
}

// Len returns the number of samples.
func (c Curve) Len() int {
	return len(c.Values)
}

// Scaled returns a new slice holding Values multiplied by Scale.
func (c Curve) Scaled() []float64 {
	out := make([]float64, len(c.Values))
	f64.Scale(out, c.Values, c.Scale)
	return out
}

// Comparison holds the evaluated grid and the curves for every requested
// order, in the order given by Config.Orders.
type Comparison struct {
	H              []float64
	Approximations []Curve
	References     []Curve
}

// Approximation returns the b_order curve.
func (c *Comparison) Approximation(order int) (Curve, bool) {
	return findCurve(c.Approximations, order)
}

// Reference returns the J_order curve.
func (c *Comparison) Reference(order int) (Curve, bool) {
	return findCurve(c.References, order)
}

func findCurve(curves []Curve, order int) (Curve, bool) {
	for _, c := range curves {
		if c.Order == order {
			return c, true
		}
	}
	return Curve{}, false
}

// Compare samples the configured grid and evaluates b_n and J_n for every
// requested order. A nil evaluator selects StdBessel.
//
// The call is atomic: configuration errors are reported before any
// evaluation, and an evaluator error aborts the whole comparison. Evaluator
// errors are returned unchanged.
func Compare(cfg Config, ev BesselEvaluator) (*Comparison, error) {
	h, err := Grid(cfg)
	if err != nil {
		return nil, err
	}

	if ev == nil {
		ev = StdBessel{}
	}

	cmp := &Comparison{
		H:              h,
		Approximations: make([]Curve, 0, len(cfg.Orders)),
		References:     make([]Curve, 0, len(cfg.Orders)),
	}

	for _, order := range cfg.Orders {
		approx := newCurve(order, Approximation, h)
		ref := newCurve(order, Reference, h)

		for i, x := range h {
			b, err := Coefficient(order, x)
			if err != nil {
				return nil, err
			}
			j, err := ev.BesselJ(order, x)
			if err != nil {
				return nil, err
			}
			approx.Values[i] = b
			ref.Values[i] = j
		}

		cmp.Approximations = append(cmp.Approximations, approx)
		cmp.References = append(cmp.References, ref)
	}

	return cmp, nil
}

func newCurve(order int, kind CurveKind, h []float64) Curve {
	c := Curve{
		Order:  order,
		Kind:   kind,
		H:      append([]float64(nil), h...),
		Values: make([]float64, len(h)),
		Scale:  1,
	}

	switch kind {
	case Approximation:
		c.Scale = NormalizationFactor(order)
		c.Label = approximationLabel(order)
	default:
		c.Label = fmt.Sprintf("J_%d(h)", order)
	}

	return c
}

func approximationLabel(order int) string {
	if NormalizationFactor(order) == carrierScale {
		return fmt.Sprintf("b_%d(h)", order)
	}
	return fmt.Sprintf("b_%d(h)/2", order)
}
