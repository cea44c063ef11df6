// Package components provides reusable rendering primitives for usage
// reports: bars, histograms, charts and the loading spinner.
package components

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/j-veylop/screentime/internal/models"
	"github.com/j-veylop/screentime/internal/ui/styles"
)

const (
	minChartWidth  = 20
	minChartHeight = 3
)

// RenderLineChart creates a single-series ASCII line chart.
func RenderLineChart(data []float64, width, height int, caption string) string {
	if len(data) == 0 {
		return styles.HelpStyle.Render("No data available")
	}

	// Ensure minimum dimensions
	width = max(width, minChartWidth)
	height = max(height, minChartHeight)

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	)
}

// RenderTrendChart plots daily screen time, in hours, across the series.
func RenderTrendChart(daily models.DailyUsage, width, height int) string {
	if len(daily) == 0 {
		return RenderLineChart(nil, width, height, "")
	}

	first := daily[0].Day.Format("Jan 2")
	last := daily[len(daily)-1].Day.Format("Jan 2")
	caption := fmt.Sprintf("hours per day, %s to %s", first, last)
	return RenderLineChart(daily.Hours(), width, height, caption)
}
