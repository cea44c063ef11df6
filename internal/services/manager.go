// Package services wires the usage store, name resolution and renderers
// into the report pipeline used by the command line and the browser.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/j-veylop/screentime/internal/config"
	"github.com/j-veylop/screentime/internal/db"
	"github.com/j-veylop/screentime/internal/export"
	"github.com/j-veylop/screentime/internal/logger"
	"github.com/j-veylop/screentime/internal/models"
	"github.com/j-veylop/screentime/internal/names"
	"github.com/j-veylop/screentime/internal/render"
	"github.com/j-veylop/screentime/internal/report"
)

// ErrReportFailed is returned after a failure message has been written to
// the output. Callers should exit non-zero without printing it again.
var ErrReportFailed = errors.New("report failed")

// Mode selects how a report is rendered.
type Mode int

// Report modes.
const (
	ModeList Mode = iota
	ModeDebug
	ModeVisual
	ModeHourly
	ModeTrend
)

// String returns the command name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeDebug:
		return "debug"
	case ModeVisual:
		return "visual"
	case ModeHourly:
		return "hourly"
	case ModeTrend:
		return "trend"
	default:
		return "unknown"
	}
}

// Trend chart dimensions.
const (
	trendWidth  = 60
	trendHeight = 10
)

// Source provides raw usage data.
type Source interface {
	FetchUsage(ctx context.Context, days int) ([]models.UsageRecord, error)
	FetchIntervals(ctx context.Context, days int) ([]models.Interval, error)
}

// Notifier shows a desktop notification.
type Notifier func(title, message string) error

// Manager runs report requests against a usage source.
type Manager struct {
	cfg    *config.Config
	source Source
	names  *names.Directory
	now    func() time.Time
	loc    *time.Location
	notify Notifier
}

// Option customizes a Manager.
type Option func(*Manager)

// WithSource replaces the store-backed source.
func WithSource(s Source) Option {
	return func(m *Manager) { m.source = s }
}

// WithNames replaces the default name directory.
func WithNames(d *names.Directory) Option {
	return func(m *Manager) { m.names = d }
}

// WithClock sets the time used for export stamps and day series.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithLocation sets the time zone used for hour and day bucketing.
func WithLocation(loc *time.Location) Option {
	return func(m *Manager) { m.loc = loc }
}

// WithNotifier replaces the desktop notifier.
func WithNotifier(n Notifier) Option {
	return func(m *Manager) { m.notify = n }
}

// NewManager creates a manager reading the store configured in cfg.
func NewManager(cfg *config.Config, opts ...Option) *Manager {
	m := &Manager{
		cfg:    cfg,
		now:    time.Now,
		loc:    time.Local,
		notify: desktopNotify,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.source == nil {
		m.source = db.New(cfg.DatabasePath).WithClock(m.now)
	}
	if m.names == nil {
		m.names = NewDirectory(cfg)
	}
	return m
}

// NewDirectory builds the name resolution chain for cfg: the built-in
// table, then Spotlight when enabled.
func NewDirectory(cfg *config.Config) *names.Directory {
	lookups := []names.Lookup{names.NewStatic(nil)}
	if cfg.UseSpotlight() {
		lookups = append(lookups, names.NewSpotlight(cfg.LookupTimeout))
	}
	return names.NewDirectory(lookups...)
}

func desktopNotify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Names returns the manager's display name directory.
func (m *Manager) Names() *names.Directory {
	return m.names
}

// Usage fetches and evaluates the per-application report for days.
func (m *Manager) Usage(ctx context.Context, days int) report.Outcome {
	records, err := m.source.FetchUsage(ctx, days)
	outcome := report.Evaluate(records, err, days)
	logger.Debug("usage report", "days", days, "status", outcome.Status, "apps", len(outcome.Report.Records))
	return outcome
}

// Hourly returns usage per hour of day over the window.
func (m *Manager) Hourly(ctx context.Context, days int) (models.HourlyUsage, error) {
	intervals, err := m.source.FetchIntervals(ctx, days)
	if err != nil {
		return models.HourlyUsage{}, err
	}
	return report.BucketByHour(intervals, m.loc), nil
}

// Daily returns usage per calendar day over the window.
func (m *Manager) Daily(ctx context.Context, days int) (models.DailyUsage, error) {
	intervals, err := m.source.FetchIntervals(ctx, days)
	if err != nil {
		return nil, err
	}
	return report.BucketByDay(intervals, days, m.now(), m.loc), nil
}

// Report renders a report for days in the given mode to w.
func (m *Manager) Report(ctx context.Context, w io.Writer, mode Mode, days int) error {
	switch mode {
	case ModeHourly:
		return m.reportHourly(ctx, w, days)
	case ModeTrend:
		return m.reportTrend(ctx, w, days)
	}

	outcome := m.Usage(ctx, days)
	if err := m.writeStatus(w, outcome); err != nil || outcome.Status != report.StatusOK {
		return err
	}

	switch mode {
	case ModeVisual:
		opts := render.VisualOptions{BarWidth: m.cfg.BarWidth}
		if hourly, err := m.Hourly(ctx, days); err != nil {
			logger.Warn("hourly breakdown unavailable", "error", err)
		} else {
			opts.Hourly = &hourly
		}
		return render.Visual(ctx, w, outcome.Report, m.names, opts)
	case ModeDebug:
		return render.RankedList(ctx, w, outcome.Report, m.names, render.ListOptions{Debug: true})
	default:
		return render.RankedList(ctx, w, outcome.Report, m.names, render.ListOptions{})
	}
}

func (m *Manager) reportHourly(ctx context.Context, w io.Writer, days int) error {
	hourly, err := m.Hourly(ctx, days)
	if err != nil {
		return m.writeStatus(w, report.Outcome{Status: report.StatusFailed, Err: err})
	}
	return render.Hourly(w, hourly, days)
}

func (m *Manager) reportTrend(ctx context.Context, w io.Writer, days int) error {
	daily, err := m.Daily(ctx, days)
	if err != nil {
		return m.writeStatus(w, report.Outcome{Status: report.StatusFailed, Err: err})
	}
	return render.Trend(w, daily, days, trendWidth, trendHeight)
}

// writeStatus prints the message for a non-OK outcome. It returns
// ErrReportFailed for failures so the caller can set the exit status.
func (m *Manager) writeStatus(w io.Writer, outcome report.Outcome) error {
	if outcome.Status == report.StatusOK {
		return nil
	}
	if _, err := fmt.Fprintln(w, m.Message(outcome)); err != nil {
		return err
	}
	if outcome.Status == report.StatusFailed {
		return fmt.Errorf("%w: %w", ErrReportFailed, outcome.Err)
	}
	return nil
}

// Export writes the report for days to path, or to a generated file name
// in the export directory when path is empty. It returns the path written,
// or an empty string when there was nothing to export.
func (m *Manager) Export(ctx context.Context, w io.Writer, days int, path string) (string, error) {
	outcome := m.Usage(ctx, days)
	if outcome.Status == report.StatusNoData {
		_, err := fmt.Fprintln(w, "😔 No usage data to export")
		return "", err
	}
	if err := m.writeStatus(w, outcome); err != nil {
		return "", err
	}

	now := m.now()
	if path == "" {
		path = filepath.Join(m.cfg.ExportDir, export.DefaultFilename(days, now))
	}

	snapshot := export.Build(ctx, outcome.Report, m.names, now)
	if err := export.Write(path, snapshot); err != nil {
		return "", fmt.Errorf("failed to export report: %w", err)
	}
	logger.Info("report exported", "path", path, "apps", snapshot.TotalApps)

	if _, err := fmt.Fprintf(w, "✅ Exported %d apps to: %s\n", snapshot.TotalApps, path); err != nil {
		return path, err
	}

	if m.cfg.Notify {
		body := fmt.Sprintf("%d apps, %s", snapshot.TotalApps, filepath.Base(path))
		if err := m.notify("Screen time exported", body); err != nil {
			logger.Warn("failed to send notification", "error", err)
		}
	}
	return path, nil
}
