// Package report aggregates usage records into ranked, paginated reports.
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/j-veylop/screentime/internal/models"
)

// DefaultPageSize is how many applications the ranked list shows individually.
const DefaultPageSize = 20

var (
	// ErrUnordered means records were not sorted largest first.
	ErrUnordered = errors.New("usage records are not ordered by seconds")
	// ErrDuplicateApp means an application appears in more than one record.
	ErrDuplicateApp = errors.New("usage records contain a duplicate application")
)

// Build assembles a report from records already ranked by the store.
// The order is verified, never changed.
func Build(records []models.UsageRecord, windowDays int) (models.UsageReport, error) {
	if windowDays < 1 {
		return models.UsageReport{}, models.ErrInvalidWindow
	}

	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		if i > 0 && rec.Seconds > records[i-1].Seconds {
			return models.UsageReport{}, fmt.Errorf("%w: %q after %q", ErrUnordered, rec.AppID, records[i-1].AppID)
		}
		if _, dup := seen[rec.AppID]; dup {
			return models.UsageReport{}, fmt.Errorf("%w: %q", ErrDuplicateApp, rec.AppID)
		}
		seen[rec.AppID] = struct{}{}
	}

	return models.UsageReport{
		WindowDays:   windowDays,
		TotalSeconds: lo.SumBy(records, func(r models.UsageRecord) float64 { return r.Seconds }),
		Records:      records,
	}, nil
}

// Percent returns the share of the report total represented by seconds.
// An empty report has no meaningful shares; callers handle it first, and
// Percent returns 0 rather than dividing by zero.
func Percent(r models.UsageReport, seconds float64) float64 {
	if r.TotalSeconds == 0 {
		return 0
	}
	return seconds / r.TotalSeconds * 100
}

// Page is the visible slice of a ranked list plus a summary of the rest.
type Page struct {
	Shown            []models.UsageRecord
	ShownSeconds     float64
	RemainingCount   int
	RemainingSeconds float64
}

// Paginate splits the report after the first limit records. The remainder
// is reported as the report total minus what was shown.
func Paginate(r models.UsageReport, limit int) Page {
	shown := r.Records
	if limit >= 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	shownSeconds := lo.SumBy(shown, func(rec models.UsageRecord) float64 { return rec.Seconds })

	p := Page{
		Shown:        shown,
		ShownSeconds: shownSeconds,
	}
	if remaining := len(r.Records) - len(shown); remaining > 0 {
		p.RemainingCount = remaining
		p.RemainingSeconds = r.TotalSeconds - shownSeconds
	}
	return p
}

// BucketByHour sums interval durations into the hour of day, in loc, at
// which each interval started. An interval that runs past the end of its
// starting hour is not split: all of it counts toward that hour.
func BucketByHour(intervals []models.Interval, loc *time.Location) models.HourlyUsage {
	var hourly models.HourlyUsage
	for _, iv := range intervals {
		hourly[iv.Start.In(loc).Hour()] += iv.Seconds
	}
	return hourly
}

// BucketByDay sums interval durations per calendar day of their start, in
// loc. The series runs from the day the window opened through today, so a
// window of N days usually spans N+1 calendar days.
func BucketByDay(intervals []models.Interval, days int, now time.Time, loc *time.Location) models.DailyUsage {
	if days < 1 {
		return nil
	}
	first := midnight(now.Add(-time.Duration(days)*24*time.Hour), loc)
	today := midnight(now, loc)

	var series models.DailyUsage
	index := make(map[string]int)
	for day := first; !day.After(today); day = day.AddDate(0, 0, 1) {
		index[day.Format(time.DateOnly)] = len(series)
		series = append(series, models.DayTotal{Day: day})
	}

	for _, iv := range intervals {
		idx, ok := index[iv.Start.In(loc).Format(time.DateOnly)]
		if !ok {
			continue
		}
		series[idx].Seconds += iv.Seconds
	}
	return series
}

func midnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
