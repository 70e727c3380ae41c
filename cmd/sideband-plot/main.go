// Command sideband-plot compares the closed-form sideband approximations
// with the Bessel functions and writes the two-panel figure.
//
// Usage:
//
//	sideband-plot -o sidebands.png
//	sideband-plot -hmax 3.14159 -samples 501 -o narrow.svg
//	sideband-plot -orders 2,3 -csv curves.csv -stats -o high.pdf
//
// The output format follows the file extension (png, svg, pdf, jpg, tiff).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	sidebands "github.com/tphakala/go-pm-sidebands"
	"github.com/tphakala/go-pm-sidebands/internal/render"
)

// CLI defaults
const (
	defaultOutput = "sidebands.png"
	defaultOrders = "0,1,2,3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	defaults := sidebands.DefaultConfig()
	style := sidebands.DefaultStyle()

	hMin := flag.Float64("hmin", defaults.HMin, "Lower bound of the modulation index grid (rad)")
	hMax := flag.Float64("hmax", defaults.HMax, "Upper bound of the modulation index grid (rad)")
	samples := flag.Int("samples", defaults.Samples, "Number of grid points, both endpoints included")
	orders := flag.String("orders", defaultOrders, "Comma-separated sideband orders to compare (0-3)")
	output := flag.String("o", defaultOutput, "Figure output path; format from extension")
	csvPath := flag.String("csv", "", "Also write the sampled curves as CSV to this path")
	stats := flag.Bool("stats", false, "Print residual statistics per order")
	title := flag.String("title", style.Title, "Figure title")
	width := flag.Float64("width", style.Width, "Figure width in inches")
	height := flag.Float64("height", style.Height, "Figure height in inches")
	solid := flag.Bool("solid", false, "Draw approximations as solid lines")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	parsedOrders, err := parseOrders(*orders)
	if err != nil {
		return err
	}

	cfg := sidebands.Config{
		HMin:    *hMin,
		HMax:    *hMax,
		Samples: *samples,
		Orders:  parsedOrders,
	}
	style.Title = *title
	style.Width = *width
	style.Height = *height
	style.DashApproximations = !*solid

	if *verbose {
		log.Printf("Grid: [%g, %g], %d samples", cfg.HMin, cfg.HMax, cfg.Samples)
		log.Printf("Orders: %v", cfg.Orders)
		log.Printf("Figure: %gx%g in -> %s", style.Width, style.Height, *output)
	}

	start := time.Now()
	cmp, err := sidebands.Compare(cfg, sidebands.StdBessel{})
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("Evaluated %d curves in %v", len(cmp.Approximations)+len(cmp.References), time.Since(start))
	}

	fig, err := sidebands.BuildFigure(cmp, style)
	if err != nil {
		return err
	}
	if err := render.Save(*output, fig); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d panels, %d samples per curve)\n", *output, len(fig.Panels), len(cmp.H))

	if *csvPath != "" {
		if err := writeCSVFile(*csvPath, cmp); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", *csvPath)
	}

	if *stats {
		res, err := sidebands.Residuals(cmp)
		if err != nil {
			return err
		}
		return printResiduals(os.Stdout, res)
	}

	return nil
}
