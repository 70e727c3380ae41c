// Package render rasterizes sideband comparison figures with gonum/plot.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	sidebands "github.com/tphakala/go-pm-sidebands"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	// Register output formats with draw.NewFormattedCanvas.
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// Layout constants
const (
	panelGap        = 8    // points between panels
	figurePadding   = 4    // points around the figure
	titlePadding    = 6    // points below the figure title
	titleFontSize   = 14   // points
	dashOn, dashOff = 6, 3 // points
)

// ErrNoPanels is returned for a figure without panels.
var ErrNoPanels = errors.New("render: figure has no panels")

// Plots converts each panel of fig into a gonum plot.
func Plots(fig *sidebands.Figure) ([]*plot.Plot, error) {
	if fig == nil || len(fig.Panels) == 0 {
		return nil, ErrNoPanels
	}

	plots := make([]*plot.Plot, 0, len(fig.Panels))
	for i, panel := range fig.Panels {
		p, err := panelPlot(panel, fig.LineWidth)
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", i, err)
		}
		plots = append(plots, p)
	}
	return plots, nil
}

func panelPlot(panel sidebands.Panel, lineWidth float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = panel.Title
	p.X.Label.Text = panel.XLabel
	p.Y.Label.Text = panel.YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for _, s := range panel.Series {
		if len(s.X) != len(s.Y) {
			return nil, fmt.Errorf("series %q: %d x values, %d y values", s.Label, len(s.X), len(s.Y))
		}

		xys := make(plotter.XYs, len(s.X))
		for i := range s.X {
			xys[i] = plotter.XY{X: s.X[i], Y: s.Y[i]}
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		line.LineStyle.Color = s.Color
		line.LineStyle.Width = vg.Points(lineWidth)
		if s.Dashed {
			line.LineStyle.Dashes = []vg.Length{vg.Points(dashOn), vg.Points(dashOff)}
		}

		p.Add(line)
		p.Legend.Add(s.Label, line)
	}

	// Fixed limits override the data ranges computed by Add.
	if panel.XLim != nil {
		p.X.Min, p.X.Max = panel.XLim.Min, panel.XLim.Max
	}
	if panel.YLim != nil {
		p.Y.Min, p.Y.Max = panel.YLim.Min, panel.YLim.Max
	}
	if len(panel.YTicks) > 0 {
		p.Y.Tick.Marker = constantTicks(panel.YTicks)
	}

	return p, nil
}

func constantTicks(values []float64) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(values))
	for i, v := range values {
		ticks[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)}
	}
	return ticks
}

// Render draws the panels of fig side by side and writes them to w in the
// given format ("png", "svg", "pdf", "jpg", "tiff").
func Render(w io.Writer, fig *sidebands.Figure, format string) error {
	plots, err := Plots(fig)
	if err != nil {
		return err
	}

	width := vg.Length(fig.Width) * vg.Inch
	height := vg.Length(fig.Height) * vg.Inch
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return err
	}
	dc := draw.New(c)

	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(plots),
		PadX:      vg.Points(panelGap),
		PadTop:    vg.Points(figurePadding),
		PadBottom: vg.Points(figurePadding),
		PadLeft:   vg.Points(figurePadding),
		PadRight:  vg.Points(figurePadding),
	}

	if fig.Title != "" {
		sty := plot.New().Title.TextStyle
		sty.Font.Size = vg.Points(titleFontSize)
		dc.FillText(sty, vg.Point{X: dc.Center().X, Y: dc.Max.Y - vg.Points(figurePadding)}, fig.Title)
		tiles.PadTop += sty.Height(fig.Title) + vg.Points(titlePadding)
	}

	canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[0][i])
	}

	_, err = c.WriteTo(w)
	return err
}

// Save renders fig to path, choosing the format from the file extension.
func Save(path string, fig *sidebands.Figure) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		return fmt.Errorf("render: no file extension in %q", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Render(f, fig, format); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}
