package db

import (
	"context"
	"fmt"

	"github.com/j-veylop/screentime/internal/logger"
	"github.com/j-veylop/screentime/internal/models"
)

// intervalRow is one raw interval as stored, in store seconds.
type intervalRow struct {
	BundleID  string  `db:"bundle_id"`
	StartDate float64 `db:"start_date"`
	EndDate   float64 `db:"end_date"`
	Duration  float64 `db:"duration"`
}

// FetchUsage returns total seconds per application over the last days,
// largest first. Applications with a minute or less in total are omitted.
func (s *Store) FetchUsage(ctx context.Context, days int) ([]models.UsageRecord, error) {
	if days < 1 {
		return nil, models.ErrInvalidWindow
	}

	conn, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Error("failed to close store", "error", err)
		}
	}()

	query := `
		SELECT
			ZVALUESTRING AS bundle_id,
			SUM(ZENDDATE - ZSTARTDATE) AS seconds
		FROM ZOBJECT
		WHERE ` + sqlUsageFilterClause + `
		GROUP BY ZVALUESTRING
		HAVING seconds > ?
		ORDER BY seconds DESC
	`

	records := []models.UsageRecord{}
	if err := conn.SelectContext(ctx, &records, query, s.windowStart(days), MinSeconds); err != nil {
		return nil, fmt.Errorf("%w: failed to query usage: %w", ErrQueryFailed, err)
	}

	logger.Debug("fetched usage", "days", days, "apps", len(records))
	return records, nil
}

// FetchIntervals returns the raw intervals longer than a minute over the
// last days, oldest first.
func (s *Store) FetchIntervals(ctx context.Context, days int) ([]models.Interval, error) {
	if days < 1 {
		return nil, models.ErrInvalidWindow
	}

	conn, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Error("failed to close store", "error", err)
		}
	}()

	query := `
		SELECT
			ZVALUESTRING AS bundle_id,
			ZSTARTDATE AS start_date,
			ZENDDATE AS end_date,
			ZENDDATE - ZSTARTDATE AS duration
		FROM ZOBJECT
		WHERE ` + sqlUsageFilterClause + `
		  AND ZENDDATE - ZSTARTDATE > ?
		ORDER BY ZSTARTDATE
	`

	var rows []intervalRow
	if err := conn.SelectContext(ctx, &rows, query, s.windowStart(days), MinSeconds); err != nil {
		return nil, fmt.Errorf("%w: failed to query intervals: %w", ErrQueryFailed, err)
	}

	intervals := make([]models.Interval, 0, len(rows))
	for _, row := range rows {
		intervals = append(intervals, models.Interval{
			AppID:   row.BundleID,
			Start:   FromStoreTime(row.StartDate),
			End:     FromStoreTime(row.EndDate),
			Seconds: row.Duration,
		})
	}

	logger.Debug("fetched intervals", "days", days, "intervals", len(intervals))
	return intervals, nil
}
