package renderer

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/etnz/spendings"
)

// Canvas size of every generated chart.
const (
	chartWidth  = "1400px"
	chartHeight = "740px"
)

// Line converts a chart request into a renderable echarts line chart.
func Line(req spendings.ChartRequest) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: req.Title}),
	)
	line.SetXAxis(req.XAxis)
	for _, s := range req.Series {
		points := make([]opts.LineData, len(s.Values))
		for i, v := range s.Values {
			points[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.Label, points,
			charts.WithLineStyleOpts(opts.LineStyle{Type: lineType(s.Style)}))
	}
	return line
}

// lineType maps a series style on the closest echarts line type.
func lineType(s spendings.LineStyle) string {
	if s == spendings.LongDashDot {
		return "dashed"
	}
	return "solid"
}

const filenameLen = 16

const alphanum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// chartName returns a fresh random basename, long enough that saving into a
// shared directory like /tmp practically never collides.
func chartName() string {
	b := make([]byte, filenameLen)
	for i := range b {
		b[i] = alphanum[rand.IntN(len(alphanum))]
	}
	return string(b) + ".html"
}

// Save renders the chart into a randomly named HTML file under dir and
// returns its path.
func Save(req spendings.ChartRequest, dir string) (string, error) {
	path := filepath.Join(dir, chartName())
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()
	if err := Line(req).Render(f); err != nil {
		return "", fmt.Errorf("rendering chart %q: %w", req.Title, err)
	}
	return path, nil
}
