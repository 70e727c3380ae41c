package sidebands

import "math"

// Coefficient model constants
const (
	// MaxOrder is the highest sideband order with a closed-form approximation.
	MaxOrder = 3

	// numOrders is the number of approximated orders (0..MaxOrder).
	numOrders = MaxOrder + 1

	halfDivisor = 2.0 // Division by 2 in every closed form

	// sqrt2 is the frequency ratio of the auxiliary sine term in b1 and b3.
	sqrt2 = math.Sqrt2
)

// Default comparison grid (the document's reference scenario)
const (
	DefaultHMin    = 0.0
	DefaultHMax    = 1.4 * math.Pi // ≈ 4.398 rad
	DefaultSamples = 1001
)

// Normalization factors applied to b_n before comparing with J_n.
// From the generating-function relation J_0(h) = b_0(h), J_m(h) = b_m(h)/2.
const (
	carrierScale  = 1.0
	sidebandScale = 0.5
)

// Figure layout defaults
const (
	defaultFigureWidth  = 10.0 // inches
	defaultFigureHeight = 4.0  // inches
	defaultLineWidth    = 1.5  // points

	// Panel 2 fixed axis window
	panel2XMax = 4.4
	panel2YMin = -0.04
	panel2YMax = 0.55
)

// panel1YTicks are the y-axis tick positions of the order 0-1 panel.
var panel1YTicks = []float64{-0.5, 0, 0.5, 1}
