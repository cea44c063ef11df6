package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/j-veylop/screentime/internal/models"
)

// DefaultHistogramLevels is the height of the hourly histogram in rows.
const DefaultHistogramLevels = 8

// labelEvery is the spacing, in hours, between axis labels.
const labelEvery = 3

// ColumnHeights scales each hourly bucket to a height between 0 and
// levels. When every bucket is zero the divisor is 1, so all heights are 0.
func ColumnHeights(hourly models.HourlyUsage, levels int) [24]int {
	divisor := hourly.Max()
	if divisor == 0 {
		divisor = 1
	}

	var heights [24]int
	for hour, v := range hourly {
		heights[hour] = int(math.Round(v / divisor * float64(levels)))
	}
	return heights
}

// RenderHourlyHistogram draws a 24-column vertical histogram, one column
// per hour of day. Rows are emitted top-down; a cell is filled when its
// column height reaches the row's level. A ruler and hour labels follow.
func RenderHourlyHistogram(hourly models.HourlyUsage, levels int) []string {
	if levels <= 0 {
		levels = DefaultHistogramLevels
	}
	heights := ColumnHeights(hourly, levels)

	lines := make([]string, 0, levels+2)
	for level := levels; level >= 1; level-- {
		var row strings.Builder
		for _, h := range heights {
			if h >= level {
				row.WriteString(filledCell)
			} else {
				row.WriteByte(' ')
			}
		}
		lines = append(lines, row.String())
	}

	lines = append(lines, strings.Repeat("-", len(heights)), HourLabels())
	return lines
}

// HourLabels returns the axis line under the histogram, e.g. " 0  3  6 ...".
func HourLabels() string {
	var b strings.Builder
	for hour := 0; hour < 24; hour += labelEvery {
		fmt.Fprintf(&b, "%-3s", fmt.Sprintf("%2d", hour))
	}
	return b.String()
}
