// Package models defines data structures and domain types.
package models

// TimeRange is one of the preset report windows.
type TimeRange int

const (
	// TimeRange24Hours covers the last 24 hours.
	TimeRange24Hours TimeRange = iota
	// TimeRange7Days covers the last 7 days.
	TimeRange7Days
	// TimeRange30Days covers the last 30 days.
	TimeRange30Days
)

// String returns the display name for a time range.
func (t TimeRange) String() string {
	switch t {
	case TimeRange24Hours:
		return "24 Hours"
	case TimeRange7Days:
		return "7 Days"
	case TimeRange30Days:
		return "30 Days"
	default:
		return "Unknown"
	}
}

// Days returns the number of days covered by the time range.
func (t TimeRange) Days() int {
	switch t {
	case TimeRange24Hours:
		return 1
	case TimeRange7Days:
		return 7
	case TimeRange30Days:
		return 30
	default:
		return 1
	}
}

// Next cycles to the next time range.
func (t TimeRange) Next() TimeRange {
	return (t + 1) % 3
}

// TimeRangeForDays maps a day count onto its preset, if one exists.
func TimeRangeForDays(days int) (TimeRange, bool) {
	switch days {
	case 1:
		return TimeRange24Hours, true
	case 7:
		return TimeRange7Days, true
	case 30:
		return TimeRange30Days, true
	default:
		return TimeRange24Hours, false
	}
}
