package spendings

import "github.com/shopspring/decimal"

// defaultHeader is a header row matching DefaultSchema, date first.
func defaultHeader() []Cell {
	return []Cell{Text("Период"), Text("Категория"), Text("Доход/Расход"), Text("RUB")}
}

// row is a helper for tests to build a transaction row in default column order.
func row(date, category, typ, amount string) []Cell {
	return []Cell{Text(date), Text(category), Text(typ), Number(amount)}
}

// outcome is a helper for tests to build an outcome transaction from consts.
func outcome(date, category string, amount int64) Transaction {
	return Transaction{
		Date:     MustParseDate(date),
		Category: category,
		Kind:     Outcome,
		Amount:   decimal.NewFromInt(amount),
	}
}

// income is a helper for tests to build an income transaction from consts.
func income(date, category string, amount int64) Transaction {
	return Transaction{
		Date:     MustParseDate(date),
		Category: category,
		Kind:     Income,
		Amount:   decimal.NewFromInt(amount),
	}
}

// RUB is a helper for tests to create ruble money from consts.
func RUB(v int64) Money { return M(decimal.NewFromInt(v), "RUB") }
