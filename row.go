package spendings

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Schema names the worksheet columns and the transaction type labels the
// normalizer looks for. The koanf tags bind each field to its SPD_*
// environment override in the CLI.
type Schema struct {
	Period   string `koanf:"header_period"`   // transaction date column
	Category string `koanf:"header_category"` // free form category column
	Type     string `koanf:"header_type"`     // income/outcome column
	Value    string `koanf:"header_value"`    // amount column
	Income   string `koanf:"label_income"`    // Type column text marking an income row
	Outcome  string `koanf:"label_outcome"`   // Type column text marking an outcome row
}

// DefaultSchema returns the reference sheet layout (Russian labels, amounts
// in rubles).
func DefaultSchema() Schema {
	return Schema{
		Period:   "Период",
		Category: "Категория",
		Type:     "Доход/Расход",
		Value:    "RUB",
		Income:   "Доход",
		Outcome:  "Расход",
	}
}

// Kind tells incomes apart from outcomes.
type Kind int

const (
	Income Kind = iota
	Outcome
)

func (k Kind) String() string {
	switch k {
	case Income:
		return "income"
	case Outcome:
		return "outcome"
	default:
		panic(fmt.Sprintf("unknown kind %d", k))
	}
}

// Transaction is one normalized worksheet row.
type Transaction struct {
	Date     Date
	Category string
	Kind     Kind
	Amount   decimal.Decimal
}

// columns holds the resolved position of each schema column.
type columns struct {
	period, category, typ, value int
}

// RowReader normalizes the rows of one worksheet, using the column
// positions resolved from its header row.
type RowReader struct {
	schema Schema
	cols   columns
}

// NewRowReader resolves the schema columns against a sheet header row.
// Header cells are matched by exact text; a missing column is an error
// naming the missing label.
func NewRowReader(schema Schema, header []Cell) (*RowReader, error) {
	cols := columns{period: -1, category: -1, typ: -1, value: -1}
	for i, c := range header {
		switch c.Value {
		case schema.Period:
			cols.period = i
		case schema.Category:
			cols.category = i
		case schema.Type:
			cols.typ = i
		case schema.Value:
			cols.value = i
		}
	}
	switch {
	case cols.period < 0:
		return nil, fmt.Errorf("no %q column in header", schema.Period)
	case cols.category < 0:
		return nil, fmt.Errorf("no %q column in header", schema.Category)
	case cols.typ < 0:
		return nil, fmt.Errorf("no %q column in header", schema.Type)
	case cols.value < 0:
		return nil, fmt.Errorf("no %q column in header", schema.Value)
	}
	return &RowReader{schema: schema, cols: cols}, nil
}

// Read normalizes one row into a Transaction. The error names the first
// field that could not be read. The ledger fold skips such rows; callers
// needing stricter validation can check every row themselves.
func (r *RowReader) Read(row []Cell) (Transaction, error) {
	var tx Transaction

	c, err := at(row, r.cols.period, CellText)
	if err != nil {
		return tx, fmt.Errorf("date: %w", err)
	}
	if tx.Date, err = ParseDate(c.Value); err != nil {
		return tx, fmt.Errorf("date: %w", err)
	}

	if c, err = at(row, r.cols.category, CellText); err != nil {
		return tx, fmt.Errorf("category: %w", err)
	}
	tx.Category = c.Value

	if c, err = at(row, r.cols.typ, CellText); err != nil {
		return tx, fmt.Errorf("type: %w", err)
	}
	switch c.Value {
	case r.schema.Income:
		tx.Kind = Income
	case r.schema.Outcome:
		tx.Kind = Outcome
	default:
		return tx, fmt.Errorf("type: %q is neither %q nor %q", c.Value, r.schema.Income, r.schema.Outcome)
	}

	if c, err = at(row, r.cols.value, CellNumber); err != nil {
		return tx, fmt.Errorf("value: %w", err)
	}
	if tx.Amount, err = decimal.NewFromString(c.Value); err != nil {
		return tx, fmt.Errorf("value: %w", err)
	}
	return tx, nil
}

// at returns the row cell at index i if it has the wanted kind.
func at(row []Cell, i int, want CellKind) (Cell, error) {
	if i >= len(row) {
		return Cell{}, fmt.Errorf("cell %d is missing", i+1)
	}
	if c := row[i]; c.Kind != want {
		return Cell{}, fmt.Errorf("cell %d is %s, want %s", i+1, c.Kind, want)
	}
	return row[i], nil
}
