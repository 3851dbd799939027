package spendings

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"
)

// LineStyle selects how the renderer draws a series.
type LineStyle int

const (
	Solid LineStyle = iota
	// LongDashDot marks the derived total series.
	LongDashDot
)

// Series is one chart line: a display label and one value per window period.
type Series struct {
	Label  string
	Values []float64
	Style  LineStyle
}

// ChartRequest is a complete renderer-agnostic chart: what to title it, the
// period labels on the x axis, and the series to draw. Building one draws
// nothing; the renderer package does.
type ChartRequest struct {
	Sheet  string
	Title  string
	XAxis  []string
	Series []Series
}

// TotalLabel names the derived sum series appended to every chart.
const TotalLabel = "Total"

// BuildChart assembles one variant's chart over a worksheet ledger.
// Included categories appear in sorted order, each labeled with its average
// period spending; their positional sum is appended last as the total
// series.
func BuildChart(l *Ledger, window []Key, v Variant) ChartRequest {
	req := ChartRequest{Title: fixLabel(v.Title())}
	for _, k := range window {
		req.XAxis = append(req.XAxis, k.String())
	}
	total := make([]float64, len(window))
	for _, category := range l.Categories() {
		values := l.Values(category, window)
		if !v.Includes(values) {
			continue
		}
		for i, x := range values {
			total[i] += x
		}
		req.Series = append(req.Series, Series{Label: seriesLabel(category, values), Values: values})
	}
	req.Series = append(req.Series, Series{Label: seriesLabel(TotalLabel, total), Values: total, Style: LongDashDot})
	return req
}

// seriesLabel builds the legend label "name (avg: Nk)", the average period
// value truncated to whole thousands.
func seriesLabel(name string, values []float64) string {
	mean, _ := stats.Mean(values)
	return fixLabel(fmt.Sprintf("%s (avg: %dk)", name, int64(mean/1000)))
}

// fixLabel replaces spaces with non-breaking ones so the renderer never
// wraps or collapses label text.
func fixLabel(s string) string { return strings.ReplaceAll(s, " ", " ") }
