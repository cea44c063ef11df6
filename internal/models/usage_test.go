package models

import (
	"testing"
	"time"
)

func TestUsageReport_MaxSeconds(t *testing.T) {
	r := UsageReport{Records: []UsageRecord{
		{AppID: "a", Seconds: 500},
		{AppID: "b", Seconds: 120},
	}}
	if got := r.MaxSeconds(); got != 500 {
		t.Errorf("MaxSeconds() = %v, want 500", got)
	}
	if (UsageReport{}).MaxSeconds() != 0 {
		t.Error("MaxSeconds() of empty report should be 0")
	}
	if !(UsageReport{}).IsEmpty() {
		t.Error("IsEmpty() should be true for empty report")
	}
}

func TestHourlyUsage_TotalMax(t *testing.T) {
	var h HourlyUsage
	h[3] = 100
	h[22] = 250
	if h.Total() != 350 {
		t.Errorf("Total() = %v, want 350", h.Total())
	}
	if h.Max() != 250 {
		t.Errorf("Max() = %v, want 250", h.Max())
	}
}

func TestDailyUsage_Hours(t *testing.T) {
	d := DailyUsage{
		{Day: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Seconds: 7200},
		{Day: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Seconds: 1800},
	}
	got := d.Hours()
	if len(got) != 2 || got[0] != 2 || got[1] != 0.5 {
		t.Errorf("Hours() = %v, want [2 0.5]", got)
	}
}
