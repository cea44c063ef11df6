// Package models defines data structures and domain types.
package models

import (
	"errors"
	"time"
)

// UsageRecord is the total foreground time of one application inside a
// report window. Records come out of the store already filtered to more
// than a minute of use.
type UsageRecord struct {
	AppID   string  `db:"bundle_id"`
	Seconds float64 `db:"seconds"`
}

// UsageReport is the per-application breakdown of one window. Records are
// ordered by Seconds, largest first, and TotalSeconds is their sum.
type UsageReport struct {
	WindowDays   int
	TotalSeconds float64
	Records      []UsageRecord
}

// IsEmpty reports whether the report holds no records.
func (r UsageReport) IsEmpty() bool {
	return len(r.Records) == 0
}

// MaxSeconds returns the largest single-record value in the report.
func (r UsageReport) MaxSeconds() float64 {
	var maxSeconds float64
	for _, rec := range r.Records {
		if rec.Seconds > maxSeconds {
			maxSeconds = rec.Seconds
		}
	}
	return maxSeconds
}

// Interval is a single raw usage interval, with times in the Unix epoch.
type Interval struct {
	AppID   string
	Start   time.Time
	End     time.Time
	Seconds float64
}

// HourlyUsage holds seconds of use per hour of day (0-23).
type HourlyUsage [24]float64

// Total returns the sum of all buckets.
func (h HourlyUsage) Total() float64 {
	var total float64
	for _, v := range h {
		total += v
	}
	return total
}

// Max returns the largest bucket value.
func (h HourlyUsage) Max() float64 {
	var maxVal float64
	for _, v := range h {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// DayTotal is the usage accumulated on one calendar day.
type DayTotal struct {
	Day     time.Time
	Seconds float64
}

// DailyUsage is a chronological series of per-day totals.
type DailyUsage []DayTotal

// Hours returns the series values converted to hours.
func (d DailyUsage) Hours() []float64 {
	values := make([]float64, len(d))
	for i, day := range d {
		values[i] = day.Seconds / 3600
	}
	return values
}

// ErrInvalidWindow is returned when a report window is shorter than a day.
var ErrInvalidWindow = errors.New("window must be at least one day")
