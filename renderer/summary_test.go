package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/etnz/spendings"
)

func rub(v int64) spendings.Money { return spendings.M(decimal.NewFromInt(v), "RUB") }

func TestSummaryMarkdown(t *testing.T) {
	s := spendings.SheetSummary{
		Sheet: "2023",
		Window: []spendings.Key{
			spendings.NewDate(2023, 1, 1).Period(spendings.Monthly),
			spendings.NewDate(2023, 2, 1).Period(spendings.Monthly),
		},
		Categories: []spendings.CategorySummary{
			{Name: "Еда", Total: rub(2000), Average: rub(1000), Spending: true, Regular: true},
			{Name: "Кино", Total: rub(500), Average: rub(250), Spending: true},
			{Name: "Зарплата", Total: rub(-100000), Average: rub(-50000)},
		},
		Total: rub(2500),
	}

	got := SummaryMarkdown(&s)

	for _, want := range []string{
		"# Spendings on 2023",
		"2 periods, 2023-01 to 2023-02. Net spending: 2,500.00 ₽.",
		"## Categories",
		"Category",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary misses %q:\n%s", want, got)
		}
	}

	// Each category row lines up its amounts and classification.
	rowChecks := []struct {
		name  string
		cells []string
	}{
		{"Еда", []string{"2,000.00 ₽", "1,000.00 ₽", "regular"}},
		{"Кино", []string{"500.00 ₽", "250.00 ₽", "spending"}},
		{"Зарплата", []string{"-100,000.00 ₽", "-50,000.00 ₽", "-"}},
	}
	for _, rc := range rowChecks {
		line := rowWith(got, rc.name)
		if line == "" {
			t.Errorf("summary has no table row for %q:\n%s", rc.name, got)
			continue
		}
		for _, cell := range rc.cells {
			if !strings.Contains(line, cell) {
				t.Errorf("row %q misses %q: %q", rc.name, cell, line)
			}
		}
	}

	if strings.Contains(got, "Refunds exceeded purchases") {
		t.Errorf("summary warns about refunds on a positive window:\n%s", got)
	}
}

func TestSummaryMarkdownNetRefund(t *testing.T) {
	// A spending category can still net negative when one large refund
	// lands inside the window.
	s := spendings.SheetSummary{
		Sheet: "2023",
		Window: []spendings.Key{
			spendings.NewDate(2023, 1, 1).Period(spendings.Monthly),
			spendings.NewDate(2023, 2, 1).Period(spendings.Monthly),
			spendings.NewDate(2023, 3, 1).Period(spendings.Monthly),
		},
		Categories: []spendings.CategorySummary{
			{Name: "Техника", Total: rub(-498), Average: rub(-166), Spending: true},
		},
		Total: rub(-498),
	}

	got := SummaryMarkdown(&s)

	if !strings.Contains(got, "Net spending: -498.00 ₽.") {
		t.Errorf("summary misses the negative net amount:\n%s", got)
	}
	if !strings.Contains(got, "Refunds exceeded purchases over this window.") {
		t.Errorf("summary misses the refund notice:\n%s", got)
	}
}

func TestSummaryMarkdownEmptyWindow(t *testing.T) {
	s := spendings.SheetSummary{Sheet: "2024", Total: rub(0)}

	got := SummaryMarkdown(&s)

	if !strings.Contains(got, "# Spendings on 2024") {
		t.Errorf("summary misses the title:\n%s", got)
	}
	if !strings.Contains(got, "No closed period to report on yet.") {
		t.Errorf("summary misses the empty window notice:\n%s", got)
	}
	if strings.Contains(got, "## Categories") {
		t.Errorf("summary lists categories over an empty window:\n%s", got)
	}
}

// rowWith returns the first line mentioning the given cell text.
func rowWith(doc, cell string) string {
	for _, line := range strings.Split(doc, "\n") {
		if strings.Contains(line, cell) {
			return line
		}
	}
	return ""
}
