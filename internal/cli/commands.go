package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/j-veylop/screentime/internal/services"
	"github.com/j-veylop/screentime/internal/ui/browse"
	"github.com/j-veylop/screentime/internal/version"
)

type reportDef struct {
	use     string
	aliases []string
	short   string
	mode    services.Mode
}

func newReportCommand(mgr *services.Manager, def reportDef) *cobra.Command {
	return &cobra.Command{
		Use:     def.use + " [days]",
		Aliases: def.aliases,
		Short:   def.short,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := daysArg(args)
			if err != nil {
				return err
			}
			return mgr.Report(cmd.Context(), cmd.OutOrStdout(), def.mode, days)
		},
	}
}

func newExportCommand(mgr *services.Manager) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [days]",
		Short: "Export usage to a JSON file",
		Long: `Export per-application usage to a JSON file.

Without --output the file is named screen_time_<days>days_<timestamp>.json
and written to SCREENTIME_EXPORT_DIR.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := daysArg(args)
			if err != nil {
				return err
			}
			_, err = mgr.Export(cmd.Context(), cmd.OutOrStdout(), days, output)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: generated name)")
	return cmd
}

func newBrowseCommand(mgr *services.Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [days]",
		Short: "Browse usage interactively",
		Long: `Browse usage interactively.

Keys:
  t      cycle the window (24h, 7d, 30d)
  v      switch between list and bars
  r      reload
  ↑/↓    scroll
  q      quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := daysArg(args)
			if err != nil {
				return err
			}
			return browse.Run(cmd.Context(), mgr, days)
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}
}
