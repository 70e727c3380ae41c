package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	sidebands "github.com/tphakala/go-pm-sidebands"
)

// parseOrders parses a comma-separated list such as "0,1,3". Range and
// duplicate checks are left to sidebands.Config.Validate.
func parseOrders(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	orders := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid order %q: %w", f, err)
		}
		orders = append(orders, n)
	}
	return orders, nil
}

// writeCSV writes one row per grid point: h, then b_n·scale and J_n for
// every compared order.
func writeCSV(w io.Writer, cmp *sidebands.Comparison) error {
	cw := csv.NewWriter(w)

	header := []string{"h"}
	scaled := make([][]float64, len(cmp.Approximations))
	for i, approx := range cmp.Approximations {
		ref, ok := cmp.Reference(approx.Order)
		if !ok {
			return fmt.Errorf("missing reference curve for order %d", approx.Order)
		}
		header = append(header, approx.Label, ref.Label)
		scaled[i] = approx.Scaled()
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for k, h := range cmp.H {
		row[0] = formatFloat(h)
		for i, approx := range cmp.Approximations {
			ref, _ := cmp.Reference(approx.Order)
			row[1+2*i] = formatFloat(scaled[i][k])
			row[2+2*i] = formatFloat(ref.Values[k])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeCSVFile(path string, cmp *sidebands.Comparison) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	if err := writeCSV(f, cmp); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// printResiduals prints an aligned table of residual statistics.
func printResiduals(w io.Writer, res []sidebands.Residual) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "order\tmax |err|\tat h\trms err\tcorrelation")
	for _, r := range res {
		fmt.Fprintf(tw, "%d\t%.6f\t%.4f\t%.6f\t%.6f\n",
			r.Order, r.MaxAbsError, r.ArgMaxH, r.RMSError, r.Correlation)
	}
	return tw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 17, 64)
}
