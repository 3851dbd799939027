package spendings

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// Ledger is one worksheet folded into signed per-period totals by category.
// An outcome adds to its period total and an income subtracts from it, so a
// positive total means net spending. Totals are sparse: a category has an
// entry only for periods it was active in.
type Ledger struct {
	grouping Grouping
	totals   map[string]map[Key]decimal.Decimal
}

// NewLedger returns an empty ledger accumulating at the given granularity.
func NewLedger(g Grouping) *Ledger {
	return &Ledger{grouping: g, totals: make(map[string]map[Key]decimal.Decimal)}
}

// Build folds transactions into a fresh ledger. The fold is order
// independent: any permutation of txs yields the same ledger.
func Build(g Grouping, txs []Transaction) *Ledger {
	l := NewLedger(g)
	for _, tx := range txs {
		l.Add(tx)
	}
	return l
}

// Add accumulates one transaction into its category and period slot.
func (l *Ledger) Add(tx Transaction) {
	amount := tx.Amount
	if tx.Kind == Income {
		amount = amount.Neg()
	}
	key := tx.Date.Period(l.grouping)
	byPeriod := l.totals[tx.Category]
	if byPeriod == nil {
		byPeriod = make(map[Key]decimal.Decimal)
		l.totals[tx.Category] = byPeriod
	}
	byPeriod[key] = byPeriod[key].Add(amount)
}

// Grouping returns the granularity the ledger accumulates at.
func (l *Ledger) Grouping() Grouping { return l.grouping }

// Categories returns all category names in sorted order.
func (l *Ledger) Categories() []string {
	return slices.Sorted(maps.Keys(l.totals))
}

// Total returns the signed total for a category and period, zero when the
// category was not active in that period.
func (l *Ledger) Total(category string, k Key) decimal.Decimal {
	return l.totals[category][k]
}

// Periods returns the sorted distinct periods the ledger was active in,
// over all categories.
func (l *Ledger) Periods() []Key {
	seen := make(map[Key]bool)
	for _, byPeriod := range l.totals {
		for k := range byPeriod {
			seen[k] = true
		}
	}
	keys := slices.Collect(maps.Keys(seen))
	slices.SortFunc(keys, Key.Compare)
	return keys
}
