package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/spendings"
	"github.com/etnz/spendings/xlsx"
)

type periodsCmd struct {
	file   string
	group  string
	window int
}

func (*periodsCmd) Name() string     { return "periods" }
func (*periodsCmd) Synopsis() string { return "show the periods a workbook would report on" }
func (*periodsCmd) Usage() string {
	return `spd periods -f <workbook.xlsx> [-g <grouping>] [-n <periods>]

  Lists, per worksheet, the periods observed and the reporting window the
  other commands would select, then the combined span of the workbook.
  Useful to understand why a period is missing from a chart: the most
  recent period is never reported on.
`
}

func (p *periodsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "", "Workbook to read (.xlsx). Required.")
	f.StringVar(&p.group, "g", "month", "Grouping granularity (month, quarter, year).")
	f.IntVar(&p.window, "n", 12, "Number of closed periods to report on.")
}

func (p *periodsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f <workbook.xlsx> is required")
		return subcommands.ExitUsageError
	}
	opts, err := readOptions(p.group, p.window)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	sheets, err := xlsx.Open(p.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read workbook: %v\n", err)
		return subcommands.ExitFailure
	}

	var ledgers []*spendings.Ledger
	for _, s := range sheets {
		l, err := spendings.ParseSheet(s, opts)
		if err != nil {
			log.Printf("warning, skipping %v", err)
			continue
		}
		ledgers = append(ledgers, l)
		universe := l.Periods()
		window := spendings.Window(universe, opts.Window)
		fmt.Printf("%s: observed %s, reporting on %s\n", s.Name, span(universe), span(window))
	}
	if len(ledgers) == 0 {
		fmt.Fprintln(os.Stderr, "No sheet with transactions found.")
		return subcommands.ExitFailure
	}

	fmt.Printf("workbook: observed %s\n", span(spendings.Universe(ledgers...)))
	return subcommands.ExitSuccess
}

// span formats a sorted period list as a human readable range.
func span(keys []spendings.Key) string {
	switch len(keys) {
	case 0:
		return "nothing"
	case 1:
		return keys[0].String()
	default:
		return fmt.Sprintf("%s to %s (%d periods)", keys[0], keys[len(keys)-1], len(keys))
	}
}
