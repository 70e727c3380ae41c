package main

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sidebands "github.com/tphakala/go-pm-sidebands"
)

func TestParseOrders(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"0,1,2,3", []int{0, 1, 2, 3}},
		{" 2 , 3 ", []int{2, 3}},
		{"1,", []int{1}},
		{"", []int{}},
	}
	for _, tt := range tests {
		got, err := parseOrders(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseOrders("0,x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order")
}

func TestParseOrders_ValidatedByConfig(t *testing.T) {
	orders, err := parseOrders("1,1")
	require.NoError(t, err)

	cfg := sidebands.DefaultConfig()
	cfg.Orders = orders
	require.ErrorIs(t, cfg.Validate(), sidebands.ErrInvalidOrder)
}

func TestWriteCSV(t *testing.T) {
	cmp, err := sidebands.Compare(sidebands.Config{HMin: 0, HMax: 2, Samples: 5, Orders: []int{0, 2}}, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, cmp))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.Equal(t, []string{"h", "b_0(h)", "J_0(h)", "b_2(h)/2", "J_2(h)"}, records[0])

	// h = 1 row: b2(1)/2 = (1 - cos 1)/4
	row := records[3]
	h, err := strconv.ParseFloat(row[0], 64)
	require.NoError(t, err)
	assert.Equal(t, 1.0, h)

	b2, err := strconv.ParseFloat(row[3], 64)
	require.NoError(t, err)
	assert.InDelta(t, sidebands.B2(1)/2, b2, 1e-15)
}

func TestPrintResiduals(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printResiduals(&buf, []sidebands.Residual{
		{Order: 0, MaxAbsError: 0.5, ArgMaxH: 4.4, RMSError: 0.25, Correlation: 0.9},
	}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "order"))
	assert.Contains(t, lines[1], "0.500000")
	assert.Contains(t, lines[1], "4.4000")
}
