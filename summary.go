package spendings

import "github.com/shopspring/decimal"

// CategorySummary is one worksheet category totaled over the reporting
// window.
type CategorySummary struct {
	Name     string
	Total    Money // net amount over the whole window
	Average  Money // per period average
	Spending bool
	Regular  bool
}

// SheetSummary is the windowed activity of one worksheet, category by
// category.
type SheetSummary struct {
	Sheet      string
	Window     []Key
	Categories []CategorySummary
	Total      Money // net amount of the spending categories
}

// BuildSummary totals a worksheet ledger over the window. Every category is
// listed, spending or not; the sheet total only counts the spending ones,
// so it matches the total series of the all-spendings chart.
func BuildSummary(l *Ledger, window []Key, sheet, currency string) SheetSummary {
	s := SheetSummary{Sheet: sheet, Window: window}
	var sheetTotal decimal.Decimal
	for _, category := range l.Categories() {
		var total decimal.Decimal
		for _, k := range window {
			total = total.Add(l.Total(category, k))
		}
		average := decimal.Zero
		if len(window) > 0 {
			average = total.Div(decimal.NewFromInt(int64(len(window))))
		}
		values := l.Values(category, window)
		spending := IsSpending(values)
		if spending {
			sheetTotal = sheetTotal.Add(total)
		}
		s.Categories = append(s.Categories, CategorySummary{
			Name:     category,
			Total:    M(total, currency),
			Average:  M(average, currency),
			Spending: spending,
			Regular:  IsRegular(values),
		})
	}
	s.Total = M(sheetTotal, currency)
	return s
}
