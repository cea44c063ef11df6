package render

import (
	"context"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/j-veylop/screentime/internal/format"
	"github.com/j-veylop/screentime/internal/models"
	"github.com/j-veylop/screentime/internal/ui/components"
	"github.com/j-veylop/screentime/internal/ui/styles"
)

// chartIndent prefixes every chart line inside the frame.
const chartIndent = "  "

// VisualOptions controls the framed report.
type VisualOptions struct {
	// BarWidth is the number of cells per usage bar.
	BarWidth int
	// Hourly, when set, adds the hour-of-day histogram below the bars.
	Hourly *models.HourlyUsage
}

// Visual writes the framed report: window, total screen time, one bar per
// application and, optionally, the hourly histogram.
func Visual(ctx context.Context, w io.Writer, r models.UsageReport, namer Namer, opts VisualOptions) error {
	if r.IsEmpty() {
		return Empty(w)
	}

	rule := styles.DividerStyle.Render(strings.Repeat("─", styles.FrameWidth))
	center := func(s string) string { return styles.CenterHorizontal(s, styles.FrameWidth) }

	lines := []string{
		"",
		rule,
		center(styles.TitleStyle.Render("Screen Time")),
		rule,
		center(format.WindowLabel(r.WindowDays)),
		"",
		center("Total screen time"),
		center(styles.TotalStyle.Render(format.Duration(r.TotalSeconds))),
		"",
		center(styles.SubTitleStyle.Render("Usage by app")),
		rule,
	}
	for _, line := range components.RenderBarChart(r, Labels(ctx, r, namer), opts.BarWidth) {
		lines = append(lines, chartIndent+line)
	}
	lines = append(lines, rule)

	if opts.Hourly != nil {
		lines = append(lines, center(styles.SubTitleStyle.Render("Usage by hour")))
		for _, line := range components.RenderHourlyHistogram(*opts.Hourly, components.DefaultHistogramLevels) {
			lines = append(lines, chartIndent+line)
		}
		lines = append(lines, rule)
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// Hourly writes the hour-of-day histogram on its own.
func Hourly(w io.Writer, hourly models.HourlyUsage, windowDays int) error {
	if hourly.Total() == 0 {
		return Empty(w)
	}

	lines := []string{
		"",
		styles.TitleStyle.Render("Usage by hour, " + format.WindowLabel(windowDays)),
		"",
	}
	lines = append(lines, components.RenderHourlyHistogram(hourly, components.DefaultHistogramLevels)...)
	lines = append(lines, "", "Total: "+format.Duration(hourly.Total()))

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// Trend writes the daily line chart.
func Trend(w io.Writer, daily models.DailyUsage, windowDays, width, height int) error {
	total := lo.SumBy(daily, func(d models.DayTotal) float64 { return d.Seconds })
	if total == 0 {
		return Empty(w)
	}

	lines := []string{
		"",
		styles.TitleStyle.Render("Daily screen time, " + format.WindowLabel(windowDays)),
		"",
		components.RenderTrendChart(daily, width, height),
		"",
		"Total: " + format.Duration(total),
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
