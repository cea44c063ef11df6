// Package db reads application usage from the macOS Knowledge store.
package db

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	// Import modernc.org/sqlite as a blank import to register the driver
	_ "modernc.org/sqlite"
)

// Failure classes reported by the store. Callers match them with errors.Is.
var (
	// ErrStoreNotFound means the store file does not exist.
	ErrStoreNotFound = errors.New("usage store not found")
	// ErrStoreUnavailable means the file exists but cannot be opened,
	// typically because the terminal lacks Full Disk Access.
	ErrStoreUnavailable = errors.New("usage store unavailable")
	// ErrQueryFailed means the store opened but a query did not succeed.
	ErrQueryFailed = errors.New("usage query failed")
)

// Store is a read-only view of a Knowledge store file. A connection is
// opened for each query and closed before the call returns.
type Store struct {
	path string
	now  func() time.Time
}

// New creates a store reading from path.
func New(path string) *Store {
	return &Store{
		path: path,
		now:  time.Now,
	}
}

// WithClock returns a copy of the store that uses now as the current time.
func (s *Store) WithClock(now func() time.Time) *Store {
	c := *s
	c.now = now
	return &c
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Check verifies that the store exists and can be opened.
func (s *Store) Check(ctx context.Context) error {
	conn, err := s.open(ctx)
	if err != nil {
		return err
	}
	return conn.Close()
}

// open stats the file and opens a read-only connection to it.
func (s *Store) open(ctx context.Context) (*sqlx.DB, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, s.path)
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	conn, err := sqlx.Open("sqlite", dsn(s.path))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", ErrStoreUnavailable, s.path, err)
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: failed to connect to %s: %w", ErrStoreUnavailable, s.path, err)
	}

	return conn, nil
}

// windowStart returns the store timestamp days before now.
func (s *Store) windowStart(days int) float64 {
	since := s.now().Add(-time.Duration(days) * 24 * time.Hour)
	return ToStoreTime(since)
}

// dsn builds a read-only sqlite URI for path.
func dsn(path string) string {
	escaped := strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23").Replace(path)
	return fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(%d)", escaped, busyTimeoutMillis)
}

// ToStoreTime converts a wall-clock time into store seconds.
func ToStoreTime(t time.Time) float64 {
	return float64(t.Unix()-CoreDataEpochOffset) + float64(t.Nanosecond())/1e9
}

// FromStoreTime converts store seconds into a wall-clock time.
func FromStoreTime(v float64) time.Time {
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec)+CoreDataEpochOffset, int64(frac*1e9))
}
