package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mj1618/eve-ui-reader/internal/log"
	"github.com/mj1618/eve-ui-reader/internal/output"
	"github.com/mj1618/eve-ui-reader/internal/snapshot"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir|snapshot>...",
	Short: "Re-parse snapshots whenever they are written",
	Long: `Watch snapshot files, or directories the memory reader writes snapshots
into, and print a summary each time one is written. Stops on Ctrl-C.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Duration("debounce", snapshot.DefaultDebounce, "Quiet time after a write before parsing")
	watchCmd.Flags().String("pattern", "*.json", "File name pattern inside watched directories")
	watchCmd.Flags().Bool("components", false, "Include every recognised component")
}

func runWatch(cmd *cobra.Command, args []string) error {
	debounce, _ := cmd.Flags().GetDuration("debounce")
	pattern, _ := cmd.Flags().GetString("pattern")
	withComponents, _ := cmd.Flags().GetBool("components")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchSnapshots(ctx, args, snapshot.WatchOptions{Debounce: debounce, Pattern: pattern}, withComponents)
}

func watchSnapshots(ctx context.Context, targets []string, opts snapshot.WatchOptions, withComponents bool) error {
	return snapshot.Watch(ctx, targets, opts, func(path string) {
		ui, err := loadSnapshot(path)
		if err != nil {
			log.Warn("snapshot failed", "path", path, "err", err)
			return
		}
		report := output.Summarize(ui, path)
		if withComponents {
			report = report.WithComponents(ui)
		}
		log.Info("parsed",
			"path", path,
			"nodes", humanize.Comma(int64(report.Nodes)),
			"windows", len(report.Windows),
			"errors", len(report.Errors),
		)
		if err := output.Print(report); err != nil {
			log.Error("print report", "err", err)
		}
	})
}
