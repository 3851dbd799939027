package renderer

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/etnz/spendings"
)

func testRequest() spendings.ChartRequest {
	return spendings.ChartRequest{
		Sheet: "2023",
		Title: "All spendings",
		XAxis: []string{"2023-01", "2023-02"},
		Series: []spendings.Series{
			{Label: "Еда (avg: 1k)", Values: []float64{1000, 1200}},
			{Label: "Total (avg: 1k)", Values: []float64{1000, 1200}, Style: spendings.LongDashDot},
		},
	}
}

func TestLine(t *testing.T) {
	var buf bytes.Buffer
	if err := Line(testRequest()).Render(&buf); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"All spendings",
		"Еда (avg: 1k)",
		"Total (avg: 1k)",
		"2023-01",
		"2023-02",
		chartWidth,
		chartHeight,
		"dashed", // the total series line style
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered chart misses %q", want)
		}
	}
}

func TestLineType(t *testing.T) {
	if got := lineType(spendings.Solid); got != "solid" {
		t.Errorf("lineType(Solid) = %q, want %q", got, "solid")
	}
	if got := lineType(spendings.LongDashDot); got != "dashed" {
		t.Errorf("lineType(LongDashDot) = %q, want %q", got, "dashed")
	}
}

var chartFile = regexp.MustCompile(`^[0-9A-Za-z]{16}\.html$`)

func TestChartName(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		name := chartName()
		if !chartFile.MatchString(name) {
			t.Fatalf("chartName() = %q, want it to match %s", name, chartFile)
		}
		if seen[name] {
			t.Fatalf("chartName() repeated %q", name)
		}
		seen[name] = true
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(testRequest(), dir)
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("Save() wrote to %q, want directory %q", path, dir)
	}
	if base := filepath.Base(path); !chartFile.MatchString(base) {
		t.Errorf("Save() basename = %q, want it to match %s", base, chartFile)
	}
	html, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved chart: %v", err)
	}
	if !strings.Contains(string(html), "All spendings") {
		t.Errorf("saved chart misses the title")
	}
}

func TestSaveIntoMissingDir(t *testing.T) {
	_, err := Save(testRequest(), filepath.Join(t.TempDir(), "нет"))
	if err == nil {
		t.Fatal("Save() = nil error, want one")
	}
	if !strings.Contains(err.Error(), "creating chart file") {
		t.Errorf("Save() error = %q, want it to mention the chart file", err)
	}
}
