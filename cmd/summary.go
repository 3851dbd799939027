package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/spendings"
	"github.com/etnz/spendings/renderer"
	"github.com/etnz/spendings/xlsx"
)

type summaryCmd struct {
	file     string
	group    string
	window   int
	currency string
}

func (*summaryCmd) Name() string { return "summary" }
func (*summaryCmd) Synopsis() string {
	return "print per-category totals for every worksheet of a workbook"
}
func (*summaryCmd) Usage() string {
	return `spd summary -f <workbook.xlsx> [-g <grouping>] [-n <periods>] [-c <currency>]

  Totals every worksheet over the reporting window and prints one summary
  per worksheet: net spending, then every category with its total, its per
  period average and whether it counts as spending or regular spending.

Usage Examples:
# Monthly summary of the whole workbook.
$ spd summary -f spendings.xlsx

# Yearly summary displayed in euros.
$ spd summary -f spendings.xlsx -g year -c EUR
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "", "Workbook to read (.xlsx). Required.")
	f.StringVar(&p.group, "g", "month", "Grouping granularity (month, quarter, year).")
	f.IntVar(&p.window, "n", 12, "Number of closed periods to total.")
	f.StringVar(&p.currency, "c", "", "Display currency code. Defaults to SPD_CURRENCY, then RUB.")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f <workbook.xlsx> is required")
		return subcommands.ExitUsageError
	}
	opts, err := readOptions(p.group, p.window)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if p.currency != "" {
		opts.Currency = p.currency
	}

	sheets, err := xlsx.Open(p.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read workbook: %v\n", err)
		return subcommands.ExitFailure
	}

	summaries, buildErr := spendings.BuildSummaries(sheets, opts)
	var b strings.Builder
	for _, s := range summaries {
		b.WriteString(renderer.SummaryMarkdown(&s))
		b.WriteString("\n")
	}
	printMarkdown(b.String())

	if buildErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", buildErr)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
