// Package format turns raw usage numbers into display strings.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	// MaxNameLength is the longest display name shown untruncated in charts.
	MaxNameLength = 15
	// truncatedNameLength is how many characters survive truncation.
	truncatedNameLength = 12
	ellipsis            = "..."
)

// Duration renders a number of seconds as a short human-readable string:
// "45s", "1.5m", "1h1m", or "2.0h" when the minute remainder is zero.
func Duration(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%.0fs", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%.1fm", seconds/60)
	default:
		hours := math.Floor(seconds / 3600)
		minutes := math.Floor(math.Mod(seconds, 3600) / 60)
		if minutes > 0 {
			return fmt.Sprintf("%.0fh%.0fm", hours, minutes)
		}
		return fmt.Sprintf("%.1fh", hours)
	}
}

// Truncate shortens names longer than MaxNameLength characters to their
// first 12 characters followed by an ellipsis.
func Truncate(name string) string {
	runes := []rune(name)
	if len(runes) <= MaxNameLength {
		return name
	}
	return string(runes[:truncatedNameLength]) + ellipsis
}

// PadRight left-aligns s in a field of the given terminal width.
func PadRight(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// PadLeft right-aligns s in a field of the given terminal width.
func PadLeft(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}

// WindowLabel describes a report window of the given number of days.
func WindowLabel(days int) string {
	switch days {
	case 1:
		return "past 24 hours"
	case 7:
		return "past 7 days"
	case 30:
		return "past 30 days"
	default:
		return fmt.Sprintf("past %d days", days)
	}
}

// Percent renders a percentage with one decimal, padded to four columns.
func Percent(p float64) string {
	return fmt.Sprintf("%4.1f%%", p)
}
