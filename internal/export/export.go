// Package export writes usage reports to JSON snapshot files.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/lo"

	"github.com/j-veylop/screentime/internal/format"
	"github.com/j-veylop/screentime/internal/models"
)

// filenameTimeLayout is the timestamp layout used in default file names.
const filenameTimeLayout = "20060102_150405"

// Namer resolves bundle identifiers to display names.
type Namer interface {
	Name(ctx context.Context, appID string) string
}

// Snapshot is the exported form of a usage report.
type Snapshot struct {
	ExportTime string `json:"export_time"`
	PeriodDays int    `json:"period_days"`
	TotalApps  int    `json:"total_apps"`
	Apps       []App  `json:"apps"`
}

// App is one application entry in a snapshot.
type App struct {
	BundleID       string  `json:"bundle_id"`
	AppName        string  `json:"app_name"`
	UsageSeconds   float64 `json:"usage_seconds"`
	UsageFormatted string  `json:"usage_formatted"`
}

// Build converts a report into a snapshot stamped with now.
func Build(ctx context.Context, r models.UsageReport, namer Namer, now time.Time) Snapshot {
	apps := lo.Map(r.Records, func(rec models.UsageRecord, _ int) App {
		return App{
			BundleID:       rec.AppID,
			AppName:        namer.Name(ctx, rec.AppID),
			UsageSeconds:   rec.Seconds,
			UsageFormatted: format.Duration(rec.Seconds),
		}
	})

	return Snapshot{
		ExportTime: now.Format(time.RFC3339),
		PeriodDays: r.WindowDays,
		TotalApps:  len(apps),
		Apps:       apps,
	}
}

// Records returns the usage records carried by the snapshot, in order.
func (s Snapshot) Records() []models.UsageRecord {
	return lo.Map(s.Apps, func(a App, _ int) models.UsageRecord {
		return models.UsageRecord{AppID: a.BundleID, Seconds: a.UsageSeconds}
	})
}

// DefaultFilename returns the file name used when no output path is given,
// e.g. "screen_time_7days_20240510_120000.json".
func DefaultFilename(days int, now time.Time) string {
	return fmt.Sprintf("screen_time_%ddays_%s.json", days, now.Format(filenameTimeLayout))
}

// Encode renders the snapshot as indented JSON. Non-ASCII names are
// written as-is.
func Encode(s Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(s); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Write stores the snapshot at path, creating parent directories.
func Write(path string, s Snapshot) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot previously written by Write.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return s, nil
}
