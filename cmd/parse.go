package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/eve-ui-reader/internal/log"
	"github.com/mj1618/eve-ui-reader/internal/output"
	"github.com/mj1618/eve-ui-reader/internal/snapshot"
)

var parseCmd = &cobra.Command{
	Use:   "parse <snapshot|dir|pattern>...",
	Short: "Parse snapshots and print a summary of each",
	Long: `Parse one or more UI tree snapshots. Arguments may be files, directories
(every .json file below them) or patterns such as "samples/**/*.json".

Texts that were found but could not be read, such as an overview distance
in an unknown unit, are listed under errors.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().Bool("components", false, "Include every recognised component with its region and path")
	parseCmd.Flags().Int("jobs", 0, "Snapshots parsed in parallel (0 = one per CPU)")
}

func runParse(cmd *cobra.Command, args []string) error {
	withComponents, _ := cmd.Flags().GetBool("components")
	jobs, _ := cmd.Flags().GetInt("jobs")

	paths, err := snapshot.Expand(args)
	if err != nil {
		return err
	}
	results, err := snapshot.ParseAll(cmd.Context(), paths, parseConfig, jobs)
	if err != nil {
		return err
	}

	reports := make(output.Reports, 0, len(results))
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			log.Warn("snapshot failed", "path", r.Path, "err", r.Err)
			reports = append(reports, output.Report{Source: r.Path, Windows: []string{}, Errors: []string{r.Err.Error()}})
			continue
		}
		report := output.Summarize(r.UI, r.Path)
		if withComponents {
			report = report.WithComponents(r.UI)
		}
		reports = append(reports, report)
	}

	if len(reports) == 1 {
		err = output.Print(reports[0])
	} else {
		err = output.Print(reports)
	}
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d snapshots failed to load", failed, len(results))
	}
	return nil
}
