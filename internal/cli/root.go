// Package cli implements the screentime command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/j-veylop/screentime/internal/services"
	"github.com/j-veylop/screentime/internal/version"
)

const rootLong = `screentime reports how long each application was in use on this Mac,
read from the macOS Screen Time store.

Windows:
  (no arguments)     visual report for the past 24 hours
  1, 24h, today      past 24 hours
  7, 7d, week        past 7 days
  30, 30d, month     past 30 days
  N                  past N days

Notes:
  - The terminal needs Full Disk Access the first time it runs.
  - Data source: ~/Library/Application Support/Knowledge/knowledgeC.db

Environment:
  SCREENTIME_DB_PATH         store path
  SCREENTIME_EXPORT_DIR      directory for generated export files (default: .)
  SCREENTIME_LOOKUP_TIMEOUT  timeout per Spotlight name lookup (default: 5s)
  SCREENTIME_SPOTLIGHT       auto, on or off (default: auto)
  SCREENTIME_BAR_WIDTH       cells per usage bar (default: 30)
  SCREENTIME_LOG_LEVEL       debug, info, warn or error (default: warn)
  SCREENTIME_NOTIFY          desktop notification after export (default: false)`

const rootExample = `  screentime
  screentime 7
  screentime visual
  screentime iphone 7
  screentime debug 1
  screentime export 7
  screentime export 30 -o month.json`

// NewRootCommand builds the command tree around mgr.
func NewRootCommand(mgr *services.Manager) *cobra.Command {
	root := &cobra.Command{
		Use:     "screentime [window]",
		Short:   "Report application screen time on macOS",
		Long:    rootLong,
		Example: rootExample,
		Version: version.Info(),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return mgr.Report(cmd.Context(), cmd.OutOrStdout(), services.ModeVisual, 1)
			}
			days, err := ParseDays(args[0])
			if err != nil {
				return err
			}
			return mgr.Report(cmd.Context(), cmd.OutOrStdout(), services.ModeList, days)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddCommand(
		newReportCommand(mgr, reportDef{
			use:     "visual",
			aliases: []string{"v", "iphone"},
			short:   "Show a framed bar chart of app usage",
			mode:    services.ModeVisual,
		}),
		newReportCommand(mgr, reportDef{
			use:   "debug",
			short: "Show the ranked list with raw totals and a consistency check",
			mode:  services.ModeDebug,
		}),
		newReportCommand(mgr, reportDef{
			use:   "hourly",
			short: "Show usage by hour of day",
			mode:  services.ModeHourly,
		}),
		newReportCommand(mgr, reportDef{
			use:   "trend",
			short: "Show a daily usage chart",
			mode:  services.ModeTrend,
		}),
		newExportCommand(mgr),
		newBrowseCommand(mgr),
		newVersionCommand(),
	)
	return root
}

// Execute runs the command line with args and returns the exit status.
func Execute(ctx context.Context, mgr *services.Manager, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(mgr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var unknown *UnknownCommandError
	switch {
	case errors.As(err, &unknown):
		fmt.Fprintf(stdout, "❌ Unknown command: %s\n", unknown.Token)
		fmt.Fprintln(stdout, "Run 'screentime help' for usage.")
	case errors.Is(err, services.ErrReportFailed):
		// Already reported.
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}
