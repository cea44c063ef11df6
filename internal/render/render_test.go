package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/j-veylop/screentime/internal/format"
	"github.com/j-veylop/screentime/internal/models"
	"github.com/j-veylop/screentime/internal/report"
)

type mapNamer map[string]string

func (m mapNamer) Name(_ context.Context, appID string) string {
	if name, ok := m[appID]; ok {
		return name
	}
	return appID
}

func buildReport(t *testing.T, days int, seconds ...float64) models.UsageReport {
	t.Helper()
	records := make([]models.UsageRecord, len(seconds))
	for i, s := range seconds {
		records[i] = models.UsageRecord{AppID: fmt.Sprintf("com.example.app%02d", i+1), Seconds: s}
	}
	r, err := report.Build(records, days)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	return r
}

func TestRankedList(t *testing.T) {
	r := buildReport(t, 7, 7200, 3660, 90)
	namer := mapNamer{"com.example.app01": "Safari"}

	var buf bytes.Buffer
	if err := RankedList(context.Background(), &buf, r, namer, ListOptions{}); err != nil {
		t.Fatalf("RankedList() failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Screen time, past 7 days",
		strings.Repeat("=", 50),
		"Total: 3h2m",
		strings.Repeat("-", 50),
		" 1. " + format.PadRight("Safari", 25) + " " + format.PadLeft("2.0h", 12) + " (65.8%)",
		" 2. " + format.PadRight("com.example.app02", 25) + " " + format.PadLeft("1h1m", 12) + " (33.4%)",
		" 3. " + format.PadRight("com.example.app03", 25) + " " + format.PadLeft("1.5m", 12) + " ( 0.8%)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "more apps") || strings.Contains(out, "Debug") {
		t.Errorf("unexpected summary or debug lines:\n%s", out)
	}
}

func TestRankedList_Pagination(t *testing.T) {
	seconds := make([]float64, 25)
	for i := range seconds {
		seconds[i] = float64(3000 - i*60)
	}
	r := buildReport(t, 1, seconds...)

	var buf bytes.Buffer
	if err := RankedList(context.Background(), &buf, r, mapNamer{}, ListOptions{}); err != nil {
		t.Fatalf("RankedList() failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "20. com.example.app20") {
		t.Error("20th app should be listed")
	}
	if strings.Contains(out, "com.example.app21") {
		t.Error("21st app should not be listed")
	}
	// The last five records hold 1800+1740+1680+1620+1560 = 8400s.
	if !strings.Contains(out, "    ... 5 more apps, remaining: 2h20m") {
		t.Errorf("missing remainder line:\n%s", out)
	}
}

func TestRankedList_Debug(t *testing.T) {
	r := buildReport(t, 1, 12000, 600)

	var buf bytes.Buffer
	if err := RankedList(context.Background(), &buf, r, mapNamer{}, ListOptions{Debug: true}); err != nil {
		t.Fatalf("RankedList() failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"total seconds = 12,600, apps = 2",
		"Verification:",
		"reported total:  12,600 s",
		"recomputed:      12,600 s",
		"displayed total: 12,600 s",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "totals differ") {
		t.Error("consistent totals should not warn")
	}
}

func TestRankedList_DebugMismatch(t *testing.T) {
	r := buildReport(t, 1, 600, 300)
	r.TotalSeconds += 5

	var buf bytes.Buffer
	if err := RankedList(context.Background(), &buf, r, mapNamer{}, ListOptions{Debug: true}); err != nil {
		t.Fatalf("RankedList() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "totals differ") {
		t.Errorf("drifted totals should warn:\n%s", buf.String())
	}
}

func TestRankedList_DebugSkipsVerificationWhenPaged(t *testing.T) {
	seconds := make([]float64, 21)
	for i := range seconds {
		seconds[i] = float64(5000 - i*100)
	}
	r := buildReport(t, 1, seconds...)

	var buf bytes.Buffer
	if err := RankedList(context.Background(), &buf, r, mapNamer{}, ListOptions{Debug: true}); err != nil {
		t.Fatalf("RankedList() failed: %v", err)
	}
	if strings.Contains(buf.String(), "Verification:") {
		t.Error("verification block should only appear when every app is listed")
	}
}

func TestEmpty(t *testing.T) {
	var buf bytes.Buffer
	empty := models.UsageReport{WindowDays: 1}

	if err := RankedList(context.Background(), &buf, empty, mapNamer{}, ListOptions{}); err != nil {
		t.Fatal(err)
	}
	if err := Visual(context.Background(), &buf, empty, mapNamer{}, VisualOptions{}); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), NoDataMessage); got != 2 {
		t.Errorf("no-data message printed %d times, want 2:\n%s", got, buf.String())
	}
}

func TestVisual(t *testing.T) {
	r := buildReport(t, 1, 3600, 1800)
	var hourly models.HourlyUsage
	hourly[9] = 3600
	hourly[20] = 1800

	var buf bytes.Buffer
	err := Visual(context.Background(), &buf, r, mapNamer{"com.example.app01": "Notes"}, VisualOptions{
		BarWidth: 30,
		Hourly:   &hourly,
	})
	if err != nil {
		t.Fatalf("Visual() failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Screen Time",
		"past 24 hours",
		"Total screen time",
		"1h30m",
		"Usage by app",
		"  Notes ",
		"Usage by hour",
		" 0  3  6  9 12 15 18 21",
		strings.Repeat("─", 60),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// The largest app fills its bar; the second fills half.
	if !strings.Contains(out, strings.Repeat("█", 30)) {
		t.Error("largest app should have a full bar")
	}
	if !strings.Contains(out, strings.Repeat("█", 15)+strings.Repeat("░", 15)) {
		t.Error("second app should have a half bar")
	}
}

func TestVisual_WithoutHourly(t *testing.T) {
	r := buildReport(t, 30, 3600)

	var buf bytes.Buffer
	if err := Visual(context.Background(), &buf, r, mapNamer{}, VisualOptions{}); err != nil {
		t.Fatalf("Visual() failed: %v", err)
	}
	if strings.Contains(buf.String(), "Usage by hour") {
		t.Error("histogram should be omitted without hourly data")
	}
	if !strings.Contains(buf.String(), "past 30 days") {
		t.Error("window label missing")
	}
}

func TestHourly(t *testing.T) {
	var hourly models.HourlyUsage
	hourly[13] = 5400

	var buf bytes.Buffer
	if err := Hourly(&buf, hourly, 3); err != nil {
		t.Fatalf("Hourly() failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "past 3 days") || !strings.Contains(out, "Total: 1h30m") {
		t.Errorf("unexpected output:\n%s", out)
	}

	buf.Reset()
	if err := Hourly(&buf, models.HourlyUsage{}, 1); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), NoDataMessage) {
		t.Error("empty histogram should print the no-data message")
	}
}

func TestTrend(t *testing.T) {
	day := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)
	daily := models.DailyUsage{
		{Day: day, Seconds: 3600},
		{Day: day.AddDate(0, 0, 1), Seconds: 0},
		{Day: day.AddDate(0, 0, 2), Seconds: 7200},
	}

	var buf bytes.Buffer
	if err := Trend(&buf, daily, 2, 40, 6); err != nil {
		t.Fatalf("Trend() failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Daily screen time, past 2 days") || !strings.Contains(out, "Total: 3.0h") {
		t.Errorf("unexpected output:\n%s", out)
	}

	buf.Reset()
	if err := Trend(&buf, models.DailyUsage{{Day: day}}, 1, 40, 6); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), NoDataMessage) {
		t.Error("all-zero trend should print the no-data message")
	}
}
