package sidebands_test

import (
	"fmt"
	"math"

	sidebands "github.com/tphakala/go-pm-sidebands"
)

func ExampleCoefficients() {
	c := sidebands.Coefficients(math.Pi / 2)

	fmt.Printf("b0=%.4f b1=%.4f b2=%.4f b3=%.4f\n", c[0], c[1], c[2], c[3])
	fmt.Printf("b0+b2=%.4f\n", c[0]+c[2])

	// Output:
	// b0=0.5000 b1=1.1336 b2=0.5000 b3=0.1336
	// b0+b2=1.0000
}

func ExampleCompare() {
	cmp, err := sidebands.Compare(sidebands.DefaultConfig(), sidebands.StdBessel{})
	if err != nil {
		panic(err)
	}

	last := len(cmp.H) - 1
	fmt.Printf("samples: %d, h_max=%.4f\n", len(cmp.H), cmp.H[last])
	for _, ref := range cmp.References {
		approx, _ := cmp.Approximation(ref.Order)
		fmt.Printf("%-9s %7.4f  %-9s %7.4f\n",
			approx.Label, approx.Scaled()[last], ref.Label, ref.Values[last])
	}

	// Output:
	// samples: 1001, h_max=4.3982
	// b_0(h)     0.3455  J_0(h)    -0.3426
	// b_1(h)/2  -0.2266  J_1(h)    -0.2023
	// b_2(h)/2   0.3273  J_2(h)     0.2506
	// b_3(h)/2   0.2489  J_3(h)     0.4302
}

func ExampleConfig_Validate() {
	cfg := sidebands.DefaultConfig()
	cfg.Samples = 0

	fmt.Println(cfg.Validate())

	// Output:
	// sidebands: invalid configuration: sample count must be at least 2: got 0
}
