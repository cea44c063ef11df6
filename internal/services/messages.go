package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/j-veylop/screentime/internal/db"
	"github.com/j-veylop/screentime/internal/render"
	"github.com/j-veylop/screentime/internal/report"
)

// Message converts a non-OK outcome into the text shown to the user.
func (m *Manager) Message(outcome report.Outcome) string {
	switch outcome.Status {
	case report.StatusOK:
		return ""
	case report.StatusNoData:
		return render.NoDataMessage
	}

	err := outcome.Err
	switch {
	case errors.Is(err, db.ErrStoreNotFound):
		return strings.Join([]string{
			"❌ Usage database not found: " + m.cfg.DatabasePath,
			"screentime reads the macOS Screen Time store and must run on macOS.",
			"Set SCREENTIME_DB_PATH to read a copy from another location.",
		}, "\n")
	case errors.Is(err, db.ErrStoreUnavailable):
		return strings.Join([]string{
			fmt.Sprintf("❌ Cannot access the usage database: %v", err),
			"",
			"💡 To fix this:",
			"1. Open System Settings → Privacy & Security → Full Disk Access",
			"2. Click + and add Terminal (or the app you run screentime from)",
			"3. Run screentime again",
		}, "\n")
	case errors.Is(err, db.ErrQueryFailed):
		return fmt.Sprintf("❌ Failed to query the usage database: %v", err)
	default:
		return fmt.Sprintf("❌ %v", err)
	}
}
