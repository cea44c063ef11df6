package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/j-veylop/screentime/internal/format"
	"github.com/j-veylop/screentime/internal/models"
	"github.com/j-veylop/screentime/internal/report"
)

// DefaultBarWidth is the number of cells in a usage bar.
const DefaultBarWidth = 30

const (
	filledCell = "█"
	emptyCell  = "░"
)

// BarLength scales seconds against maxSeconds into a whole number of
// cells, never exceeding width.
func BarLength(seconds, maxSeconds float64, width int) int {
	if maxSeconds <= 0 || width <= 0 {
		return 0
	}
	n := int(math.Round(seconds / maxSeconds * float64(width)))
	return max(0, min(n, width))
}

// Bar renders a fixed-width bar with n filled cells.
func Bar(n, width int) string {
	n = max(0, min(n, width))
	return strings.Repeat(filledCell, n) + strings.Repeat(emptyCell, width-n)
}

// BarLine renders one application row: the truncated name padded to a
// fixed column, the bar, the share of the total and the duration.
func BarLine(name string, seconds, maxSeconds, totalSeconds float64, width int) string {
	var percent float64
	if totalSeconds > 0 {
		percent = seconds / totalSeconds * 100
	}
	return fmt.Sprintf("%s %s %s (%s)",
		format.PadRight(format.Truncate(name), format.MaxNameLength),
		Bar(BarLength(seconds, maxSeconds, width), width),
		format.Percent(percent),
		format.Duration(seconds),
	)
}

// RenderBarChart renders one BarLine per record of r. labels holds the
// display name of each record, in the same order; missing labels fall back
// to the bundle identifier. Bars are scaled against the largest record.
func RenderBarChart(r models.UsageReport, labels []string, width int) []string {
	if r.IsEmpty() {
		return nil
	}
	if width <= 0 {
		width = DefaultBarWidth
	}

	maxSeconds := r.MaxSeconds()
	lines := make([]string, 0, len(r.Records))
	for i, rec := range r.Records {
		name := rec.AppID
		if i < len(labels) && labels[i] != "" {
			name = labels[i]
		}
		lines = append(lines, BarLine(name, rec.Seconds, maxSeconds, r.TotalSeconds, width))
	}
	return lines
}

// Shares returns the percentage of the total held by each record.
func Shares(r models.UsageReport) []float64 {
	shares := make([]float64, len(r.Records))
	for i, rec := range r.Records {
		shares[i] = report.Percent(r, rec.Seconds)
	}
	return shares
}
