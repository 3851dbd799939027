package spendings

// Values materializes a category's series over the window: one point per
// window period, in window order, zero where the category was not active.
// The window and the returned slice are index aligned, which is what both
// the classifier and the charts rely on.
func (l *Ledger) Values(category string, window []Key) []float64 {
	values := make([]float64, len(window))
	for i, k := range window {
		values[i] = l.totals[category][k].InexactFloat64()
	}
	return values
}
