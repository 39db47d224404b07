package plot

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"
)

// Render draws the fuel series as a static PNG trend chart: one mean-price
// line per fuel with dashed min/max bounds in the same color.
func Render(series []FuelSeries, width, height int) ([]byte, error) {
	if len(series) == 0 {
		return nil, errors.New("no series to render")
	}

	graph := chart.Chart{
		Title:  "Fuel prices",
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Price ($/L)",
			ValueFormatter: func(v any) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.2f", f)
				}
				return ""
			},
		},
	}

	for i, fs := range series {
		days := make([]time.Time, len(fs.Days))
		means := make([]float64, len(fs.Days))
		mins := make([]float64, len(fs.Days))
		maxes := make([]float64, len(fs.Days))
		for j, d := range fs.Days {
			days[j] = d.Day
			means[j] = d.Mean
			mins[j] = d.Min
			maxes[j] = d.Max
		}

		color := chart.GetDefaultColor(i)
		bound := chart.Style{
			StrokeColor:     color.WithAlpha(96),
			StrokeWidth:     1.0,
			StrokeDashArray: []float64{4.0, 3.0},
		}

		graph.Series = append(graph.Series,
			chart.TimeSeries{
				Name:    fs.Fuel,
				XValues: days,
				YValues: means,
				Style: chart.Style{
					StrokeColor: color,
					StrokeWidth: 2.0,
				},
			},
			chart.TimeSeries{XValues: days, YValues: mins, Style: bound},
			chart.TimeSeries{XValues: days, YValues: maxes, Style: bound},
		)
	}

	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile writes the rendered chart, creating parent directories.
func WriteFile(path string, png []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
