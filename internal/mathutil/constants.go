package mathutil

// Bessel function approximation constants
// These constants are polynomial coefficients from
// Abramowitz & Stegun, "Handbook of Mathematical Functions"

const (
	// Threshold for switching between polynomial and asymptotic approximations
	besselSmallArgThreshold = 3.75
)

// Coefficients for I₀(x) small argument approximation
const (
	besselI0Coeff1 = 3.5156229
	besselI0Coeff2 = 3.0899424
	besselI0Coeff3 = 1.2067492
	besselI0Coeff4 = 0.2659732
	besselI0Coeff5 = 0.360768e-1
	besselI0Coeff6 = 0.45813e-2
)

// Coefficients for I₀(x) large argument approximation
const (
	besselI0AsympCoeff0 = 0.39894228
	besselI0AsympCoeff1 = 0.1328592e-1
	besselI0AsympCoeff2 = 0.225319e-2
	besselI0AsympCoeff3 = -0.157565e-2
	besselI0AsympCoeff4 = 0.916281e-2
	besselI0AsympCoeff5 = -0.2057706e-1
	besselI0AsympCoeff6 = 0.2635537e-1
	besselI0AsympCoeff7 = -0.1647633e-1
	besselI0AsympCoeff8 = 0.392377e-2
)

// Kaiser analysis window constants
// From Kaiser & Schafer's sidelobe-level formulas
const (
	analysisSidelobeRect = 13.26 // Sidelobe level of the rectangular window (dB)
	analysisSidelobeHigh = 60.0  // Switch to the linear formula above this level (dB)

	analysisBetaHighCoeff  = 0.12438
	analysisBetaHighOffset = 6.3

	analysisBetaMediumCoeff1 = 0.76609
	analysisBetaMediumPower  = 0.4
	analysisBetaMediumCoeff2 = 0.09834
)
