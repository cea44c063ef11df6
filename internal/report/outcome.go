package report

import "github.com/j-veylop/screentime/internal/models"

// Status classifies how a report request ended.
type Status int

const (
	// StatusOK means the report holds at least one record.
	StatusOK Status = iota
	// StatusNoData means the query succeeded but nothing qualified.
	StatusNoData
	// StatusFailed means the report could not be produced; Err says why.
	StatusFailed
)

// String returns a short name for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoData:
		return "no data"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of a report request. Report is always usable: on
// failure or no data it is an empty report for the requested window.
type Outcome struct {
	Status Status
	Report models.UsageReport
	Err    error
}

// Evaluate turns the result of a usage fetch into an Outcome.
func Evaluate(records []models.UsageRecord, fetchErr error, windowDays int) Outcome {
	empty := models.UsageReport{WindowDays: windowDays}
	if fetchErr != nil {
		return Outcome{Status: StatusFailed, Report: empty, Err: fetchErr}
	}
	if len(records) == 0 {
		return Outcome{Status: StatusNoData, Report: empty}
	}

	r, err := Build(records, windowDays)
	if err != nil {
		return Outcome{Status: StatusFailed, Report: empty, Err: err}
	}
	return Outcome{Status: StatusOK, Report: r}
}
