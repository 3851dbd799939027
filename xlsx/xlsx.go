// Package xlsx reads .xlsx transaction workbooks into the typed cell rows
// the spendings pipeline consumes.
package xlsx

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/etnz/spendings"
)

// Open reads every worksheet of the workbook at path, in workbook order.
// A workbook that cannot be opened or read fails the whole call; what the
// sheets contain is not interpreted here.
func Open(path string) ([]spendings.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read converts an open workbook into sheets of typed cells.
func Read(f *excelize.File) ([]spendings.Sheet, error) {
	var sheets []spendings.Sheet
	for _, name := range f.GetSheetList() {
		// Raw values keep numbers parseable whatever display format the
		// workbook styles them with.
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", name, err)
		}
		s := spendings.Sheet{Name: name}
		for ri, row := range rows {
			cells := make([]spendings.Cell, len(row))
			for ci, raw := range row {
				cells[ci] = cell(f, name, ci+1, ri+1, raw)
			}
			s.Rows = append(s.Rows, cells)
		}
		sheets = append(sheets, s)
	}
	return sheets, nil
}

// cell types one raw value using the cell type recorded in the workbook.
func cell(f *excelize.File, sheet string, col, row int, raw string) spendings.Cell {
	if raw == "" {
		return spendings.Cell{}
	}
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return spendings.Text(raw)
	}
	t, err := f.GetCellType(sheet, axis)
	if err != nil {
		return spendings.Text(raw)
	}
	switch t {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return spendings.Text(raw)
	case excelize.CellTypeNumber, excelize.CellTypeDate, excelize.CellTypeUnset:
		// Untyped cells default to numeric in the xlsx format.
		return spendings.Number(raw)
	case excelize.CellTypeBool, excelize.CellTypeError:
		return spendings.Cell{Kind: spendings.CellOther, Value: raw}
	case excelize.CellTypeFormula:
		// Only the cached result is visible here; type it by its shape.
		if _, err := strconv.ParseFloat(raw, 64); err == nil {
			return spendings.Number(raw)
		}
		return spendings.Text(raw)
	default:
		return spendings.Text(raw)
	}
}
