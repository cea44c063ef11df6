package report

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/j-veylop/screentime/internal/models"
)

func ranked(n int) []models.UsageRecord {
	records := make([]models.UsageRecord, n)
	for i := range records {
		records[i] = models.UsageRecord{
			AppID:   fmt.Sprintf("com.example.app%02d", i),
			Seconds: float64((n - i) * 100),
		}
	}
	return records
}

func TestBuild(t *testing.T) {
	records := []models.UsageRecord{
		{AppID: "com.microsoft.VSCode", Seconds: 3600},
		{AppID: "com.apple.Safari", Seconds: 2400.5},
		{AppID: "com.apple.finder", Seconds: 70},
	}

	r, err := Build(records, 7)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if r.WindowDays != 7 {
		t.Errorf("WindowDays = %d, want 7", r.WindowDays)
	}
	if r.TotalSeconds != 6070.5 {
		t.Errorf("TotalSeconds = %v, want 6070.5", r.TotalSeconds)
	}
	if len(r.Records) != 3 || r.Records[0].AppID != "com.microsoft.VSCode" {
		t.Errorf("Records reordered: %+v", r.Records)
	}
}

func TestBuild_SumInvariant(t *testing.T) {
	r, err := Build(ranked(25), 1)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	var sum float64
	for _, rec := range r.Records {
		sum += rec.Seconds
	}
	if sum != r.TotalSeconds {
		t.Errorf("sum of records = %v, TotalSeconds = %v", sum, r.TotalSeconds)
	}
}

func TestBuild_Empty(t *testing.T) {
	r, err := Build(nil, 1)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if r.TotalSeconds != 0 || !r.IsEmpty() {
		t.Errorf("Build(nil) = %+v, want empty report", r)
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		records []models.UsageRecord
		days    int
		want    error
	}{
		{
			name:    "Unordered",
			records: []models.UsageRecord{{AppID: "a", Seconds: 100}, {AppID: "b", Seconds: 200}},
			days:    1,
			want:    ErrUnordered,
		},
		{
			name:    "Duplicate",
			records: []models.UsageRecord{{AppID: "a", Seconds: 200}, {AppID: "a", Seconds: 100}},
			days:    1,
			want:    ErrDuplicateApp,
		},
		{
			name: "InvalidWindow",
			days: 0,
			want: models.ErrInvalidWindow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build(tt.records, tt.days); !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuild_EqualSecondsKeepOrder(t *testing.T) {
	records := []models.UsageRecord{{AppID: "b", Seconds: 100}, {AppID: "a", Seconds: 100}}
	r, err := Build(records, 1)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if r.Records[0].AppID != "b" {
		t.Error("ties should keep the store's order")
	}
}

func TestPercent(t *testing.T) {
	r, _ := Build([]models.UsageRecord{{AppID: "a", Seconds: 300}, {AppID: "b", Seconds: 100}}, 1)

	if got := Percent(r, 300); got != 75 {
		t.Errorf("Percent() = %v, want 75", got)
	}

	var total float64
	for _, rec := range r.Records {
		total += Percent(r, rec.Seconds)
	}
	if math.Abs(total-100) > 1e-9 {
		t.Errorf("percentages sum to %v, want 100", total)
	}

	if got := Percent(models.UsageReport{}, 10); got != 0 {
		t.Errorf("Percent() on empty report = %v, want 0", got)
	}
}

func TestPaginate(t *testing.T) {
	r, err := Build(ranked(25), 1)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	p := Paginate(r, DefaultPageSize)
	if len(p.Shown) != 20 {
		t.Errorf("Shown = %d records, want 20", len(p.Shown))
	}
	if p.RemainingCount != 5 {
		t.Errorf("RemainingCount = %d, want 5", p.RemainingCount)
	}

	var shown float64
	for _, rec := range p.Shown {
		shown += rec.Seconds
	}
	if p.RemainingSeconds != r.TotalSeconds-shown {
		t.Errorf("RemainingSeconds = %v, want %v", p.RemainingSeconds, r.TotalSeconds-shown)
	}
	// The last five apps hold 500+400+300+200+100 seconds.
	if p.RemainingSeconds != 1500 {
		t.Errorf("RemainingSeconds = %v, want 1500", p.RemainingSeconds)
	}
}

func TestPaginate_FitsOnePage(t *testing.T) {
	r, _ := Build(ranked(20), 1)

	p := Paginate(r, DefaultPageSize)
	if len(p.Shown) != 20 || p.RemainingCount != 0 || p.RemainingSeconds != 0 {
		t.Errorf("Paginate() = %+v, want all shown and no remainder", p)
	}
	if p.ShownSeconds != r.TotalSeconds {
		t.Errorf("ShownSeconds = %v, want %v", p.ShownSeconds, r.TotalSeconds)
	}
}

func TestBucketByHour(t *testing.T) {
	loc := time.UTC
	intervals := []models.Interval{
		{AppID: "a", Start: time.Date(2024, 5, 10, 9, 10, 0, 0, loc), Seconds: 600},
		{AppID: "b", Start: time.Date(2024, 5, 10, 9, 50, 0, 0, loc), Seconds: 1800},
		{AppID: "a", Start: time.Date(2024, 5, 9, 23, 30, 0, 0, loc), Seconds: 120},
	}

	hourly := BucketByHour(intervals, loc)

	// The 9:50 interval runs past 10:00 but stays in the 9 o'clock bucket.
	if hourly[9] != 2400 {
		t.Errorf("hour 9 = %v, want 2400", hourly[9])
	}
	if hourly[10] != 0 {
		t.Errorf("hour 10 = %v, want 0", hourly[10])
	}
	if hourly[23] != 120 {
		t.Errorf("hour 23 = %v, want 120", hourly[23])
	}

	var raw float64
	for _, iv := range intervals {
		raw += iv.Seconds
	}
	if hourly.Total() != raw {
		t.Errorf("bucket total = %v, want %v", hourly.Total(), raw)
	}
}

func TestBucketByHour_Location(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	intervals := []models.Interval{
		{Start: time.Date(2024, 5, 10, 1, 0, 0, 0, time.UTC), Seconds: 100},
	}
	hourly := BucketByHour(intervals, tokyo)
	if hourly[10] != 100 {
		t.Errorf("hour 10 JST = %v, want 100", hourly[10])
	}
}

func TestBucketByDay(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, loc)
	intervals := []models.Interval{
		{Start: time.Date(2024, 5, 7, 13, 0, 0, 0, loc), Seconds: 600},
		{Start: time.Date(2024, 5, 10, 8, 0, 0, 0, loc), Seconds: 300},
		{Start: time.Date(2024, 5, 10, 9, 0, 0, 0, loc), Seconds: 200},
	}

	series := BucketByDay(intervals, 3, now, loc)
	if len(series) != 4 {
		t.Fatalf("len(series) = %d, want 4 (May 7 to May 10)", len(series))
	}
	if series[0].Seconds != 600 || series[3].Seconds != 500 {
		t.Errorf("series = %+v", series)
	}
	if series[1].Seconds != 0 || series[2].Seconds != 0 {
		t.Errorf("days without use should be zero: %+v", series)
	}

	if BucketByDay(intervals, 0, now, loc) != nil {
		t.Error("BucketByDay with zero days should be nil")
	}
}

func TestEvaluate(t *testing.T) {
	storeErr := errors.New("store unavailable")

	tests := []struct {
		name    string
		records []models.UsageRecord
		err     error
		want    Status
	}{
		{"OK", ranked(3), nil, StatusOK},
		{"NoData", nil, nil, StatusNoData},
		{"Failed", nil, storeErr, StatusFailed},
		{"BadOrder", []models.UsageRecord{{AppID: "a", Seconds: 1}, {AppID: "b", Seconds: 2}}, nil, StatusFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Evaluate(tt.records, tt.err, 7)
			if out.Status != tt.want {
				t.Errorf("Status = %v, want %v", out.Status, tt.want)
			}
			if out.Report.WindowDays != 7 {
				t.Errorf("Report.WindowDays = %d, want 7", out.Report.WindowDays)
			}
			if tt.err != nil && !errors.Is(out.Err, tt.err) {
				t.Errorf("Err = %v, want %v", out.Err, tt.err)
			}
			if out.Status != StatusOK && !out.Report.IsEmpty() {
				t.Error("non-OK outcome should carry an empty report")
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	if StatusNoData.String() != "no data" || Status(9).String() != "unknown" {
		t.Error("Status.String() mismatch")
	}
}
