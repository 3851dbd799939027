package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/spendings"
)

// SummaryMarkdown renders one worksheet summary to a markdown string.
func SummaryMarkdown(s *spendings.SheetSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Spendings on %s", s.Sheet))
	if len(s.Window) == 0 {
		doc.PlainText("No closed period to report on yet.")
		return doc.String()
	}
	first, last := s.Window[0], s.Window[len(s.Window)-1]
	doc.PlainText(fmt.Sprintf("%d periods, %s to %s. Net spending: %s.", len(s.Window), first, last, s.Total))
	if s.Total.IsNegative() {
		doc.PlainText("Refunds exceeded purchases over this window.")
	}

	doc.H2("Categories")

	kind := func(c spendings.CategorySummary) string {
		switch {
		case c.Regular:
			return "regular"
		case c.Spending:
			return "spending"
		default:
			return "-"
		}
	}

	rows := make([][]string, 0, len(s.Categories))
	for _, c := range s.Categories {
		rows = append(rows, []string{c.Name, c.Total.String(), c.Average.String(), kind(c)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Total", "Average", "Kind"},
		Rows:   rows,
	})

	return doc.String()
}
