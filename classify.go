package spendings

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// IsSpending reports whether a series describes real spending: the median
// period total must be positive. Income dominated categories have negative
// totals, and categories active in less than half the window have a zero
// median; both stay off the charts.
func IsSpending(values []float64) bool {
	median, err := stats.Median(values)
	return err == nil && median > 0
}

// IsRegular reports whether spending recurs at a comparable level period
// after period: the series is spending at all, and its mean and median
// agree within a factor of two. A category dominated by one large outlier
// has a mean far above its median and fails the test.
func IsRegular(values []float64) bool {
	if !IsSpending(values) {
		return false
	}
	// IsSpending already rejected series the statistics are undefined on.
	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	return mean < 2*median && median < 2*mean
}

// Variant is one of the charts drawn per worksheet. Each variant admits a
// category based on its materialized series.
type Variant int

const (
	AllSpendings Variant = iota
	RegularSpendings
)

// Variants lists every chart variant, in rendering order.
func Variants() []Variant { return []Variant{AllSpendings, RegularSpendings} }

// Title returns the chart title of the variant.
func (v Variant) Title() string {
	switch v {
	case AllSpendings:
		return "All spendings"
	case RegularSpendings:
		return "Regular spendings"
	default:
		panic(fmt.Sprintf("unknown variant %d", v))
	}
}

// Includes reports whether a category with the given series belongs on the
// variant's chart.
func (v Variant) Includes(values []float64) bool {
	switch v {
	case AllSpendings:
		return IsSpending(values)
	case RegularSpendings:
		return IsRegular(values)
	default:
		panic(fmt.Sprintf("unknown variant %d", v))
	}
}
