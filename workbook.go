package spendings

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Options carries the per-run pipeline settings.
type Options struct {
	Grouping Grouping
	Window   int    // number of closed periods to report on
	Currency string // display currency for summaries
	Schema   Schema
}

// DefaultOptions returns the reference settings: monthly grouping, a year
// worth of closed months, amounts in rubles.
func DefaultOptions() Options {
	return Options{Grouping: Monthly, Window: 12, Currency: "RUB", Schema: DefaultSchema()}
}

// ParseSheet folds one worksheet into its ledger. The first row must be a
// header row resolving every schema column; rows below it that do not
// normalize into a transaction are skipped.
func ParseSheet(s Sheet, opts Options) (*Ledger, error) {
	if len(s.Rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", s.Name)
	}
	r, err := NewRowReader(opts.Schema, s.Rows[0])
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", s.Name, err)
	}
	l := NewLedger(opts.Grouping)
	for _, row := range s.Rows[1:] {
		tx, err := r.Read(row)
		if err != nil {
			continue // not a transaction row
		}
		l.Add(tx)
	}
	return l, nil
}

// SheetErrors aggregates the worksheets that failed during one workbook
// pass. Every sheet is attempted and every failure reported; a failing
// sheet never hides the results of the others.
type SheetErrors []error

func (e SheetErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap makes the aggregate transparent to errors.Is and errors.As.
func (e SheetErrors) Unwrap() []error { return e }

// mapSheets parses every sheet concurrently and builds a value from each
// resulting ledger and its reporting window. Values keep sheet order.
func mapSheets[T any](sheets []Sheet, opts Options, build func(sheet string, l *Ledger, window []Key) T) ([]T, error) {
	type slot struct {
		value T
		err   error
	}
	slots := make([]slot, len(sheets))
	var g errgroup.Group
	for i, s := range sheets {
		g.Go(func() error {
			l, err := ParseSheet(s, opts)
			if err != nil {
				slots[i].err = err
				return err
			}
			slots[i].value = build(s.Name, l, Window(l.Periods(), opts.Window))
			return nil
		})
	}
	// Wait reports only the first failure; the slots carry them all.
	_ = g.Wait()

	var values []T
	var errs SheetErrors
	for _, s := range slots {
		if s.err != nil {
			errs = append(errs, s.err)
			continue
		}
		values = append(values, s.value)
	}
	if len(errs) > 0 {
		return values, errs
	}
	return values, nil
}

// BuildReports runs the whole pipeline on every sheet concurrently and
// returns one chart request per variant per sheet, in sheet order. Charts
// from healthy sheets are returned even when some sheets fail; those
// failures come back as SheetErrors.
func BuildReports(sheets []Sheet, opts Options) ([]ChartRequest, error) {
	perSheet, err := mapSheets(sheets, opts, func(sheet string, l *Ledger, window []Key) []ChartRequest {
		var reqs []ChartRequest
		for _, v := range Variants() {
			req := BuildChart(l, window, v)
			req.Sheet = sheet
			reqs = append(reqs, req)
		}
		return reqs
	})
	var charts []ChartRequest
	for _, reqs := range perSheet {
		charts = append(charts, reqs...)
	}
	return charts, err
}

// BuildSummaries totals every sheet concurrently, in sheet order, under the
// same failure policy as BuildReports.
func BuildSummaries(sheets []Sheet, opts Options) ([]SheetSummary, error) {
	return mapSheets(sheets, opts, func(sheet string, l *Ledger, window []Key) SheetSummary {
		return BuildSummary(l, window, sheet, opts.Currency)
	})
}
