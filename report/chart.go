// Package report renders backtest output as a standalone HTML chart.
package report

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// EquityChart builds a line chart of the daily portfolio-value series.
func EquityChart(title string, values []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "1200px",
			Height: "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d trading days", len(values)),
			Left:     "left",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", XAxisIndex: []int{0}}),
		charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
	)
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
	)

	days := make([]string, len(values))
	points := make([]opts.LineData, len(values))
	for i, v := range values {
		days[i] = strconv.Itoa(i)
		points[i] = opts.LineData{Value: v}
	}

	line.SetXAxis(days)
	line.AddSeries("Portfolio Value", points)
	return line
}

// WriteEquityChart renders the portfolio-value series to an HTML file.
func WriteEquityChart(path, title string, values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("report: no portfolio values to chart")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	defer f.Close()

	if err := EquityChart(title, values).Render(f); err != nil {
		return fmt.Errorf("report: render chart: %w", err)
	}
	return f.Close()
}
