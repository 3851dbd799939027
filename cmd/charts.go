package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/spendings"
	"github.com/etnz/spendings/renderer"
	"github.com/etnz/spendings/xlsx"
)

type chartsCmd struct {
	file   string
	group  string
	window int
	outDir string
}

func (*chartsCmd) Name() string     { return "charts" }
func (*chartsCmd) Synopsis() string { return "draw spending charts from a workbook" }
func (*chartsCmd) Usage() string {
	return `spd charts -f <workbook.xlsx> [-g <grouping>] [-n <periods>] [-o <dir>]

  Reads every worksheet of the workbook and draws two charts per worksheet:
  all spending categories, and only the regular ones. Charts are written as
  randomly named HTML files, one path printed per chart.

Usage Examples:
# Monthly charts for every worksheet, written under the system temp directory.
$ spd charts -f spendings.xlsx

# Quarterly charts over the last 8 closed quarters, written to the current dir.
$ spd charts -f spendings.xlsx -g quarter -n 8 -o .
`
}

func (p *chartsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "", "Workbook to read (.xlsx). Required.")
	f.StringVar(&p.group, "g", "month", "Grouping granularity (month, quarter, year).")
	f.IntVar(&p.window, "n", 12, "Number of closed periods to chart.")
	f.StringVar(&p.outDir, "o", os.TempDir(), "Directory the chart files are written into.")
}

func (p *chartsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	// Draw whatever could be built before reporting the sheets that failed.
	charts, buildErr := spendings.BuildReports(sheets, opts)
	for _, req := range charts {
		path, err := renderer.Save(req, p.outDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s: %s: %s\n", req.Sheet, req.Title, path)
	}
	if buildErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", buildErr)
		return subcommands.ExitFailure
	}
	if len(charts) == 0 {
		fmt.Fprintln(os.Stderr, "No sheet with transactions found.")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
