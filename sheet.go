package spendings

import "fmt"

// CellKind is the coarse type of a worksheet cell, as recorded by the
// workbook itself rather than guessed from the text.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellOther // booleans, error values
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	case CellOther:
		return "other"
	default:
		panic(fmt.Sprintf("unknown cell kind %d", k))
	}
}

// Cell is one worksheet cell: its kind and its raw text.
type Cell struct {
	Kind  CellKind
	Value string
}

// Text returns a text cell.
func Text(v string) Cell { return Cell{Kind: CellText, Value: v} }

// Number returns a numeric cell.
func Number(v string) Cell { return Cell{Kind: CellNumber, Value: v} }

// Sheet is one worksheet worth of rows in source order, header row first.
type Sheet struct {
	Name string
	Rows [][]Cell
}
