// Package plot renders the improvement trace of a search run as a
// self-contained HTML line chart.
package plot

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/cliquepart/cpp"
)

// RenderConvergence writes a line chart of best value over elapsed time
// to w. The trace must hold at least one point (strategies always record
// the seed best).
func RenderConvergence(trace []cpp.TracePoint, title string, w io.Writer) error {
	if len(trace) == 0 {
		return fmt.Errorf("plot: empty improvement trace")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "elapsed (s)",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "best value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	labels := make([]string, len(trace))
	points := make([]opts.LineData, len(trace))

	var i int
	for i = range trace {
		labels[i] = fmt.Sprintf("%.2f", trace[i].Elapsed.Seconds())
		points[i] = opts.LineData{Value: trace[i].Value}
	}

	line.SetXAxis(labels).
		AddSeries("best value", points).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}))

	return line.Render(w)
}

// SaveConvergence renders the chart into an HTML file at path.
func SaveConvergence(trace []cpp.TracePoint, title, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: create chart file: %w", err)
	}
	defer file.Close()

	return RenderConvergence(trace, title, file)
}
