package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/eve-ui-reader/internal/output"
)

var diffCmd = &cobra.Command{
	Use:   "diff <before> <after>",
	Short: "Compare the components of two snapshots",
	Long: `List components that appeared, disappeared or changed text or region
between two snapshots. Components are matched by path and position, so the
second overview entry is compared with the second overview entry.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	before, err := loadSnapshot(args[0])
	if err != nil {
		return err
	}
	after, err := loadSnapshot(args[1])
	if err != nil {
		return err
	}
	changes := output.DiffComponents(output.Components(before), output.Components(after))
	if changes == nil {
		changes = []output.Change{}
	}
	return output.Print(output.Changes(changes))
}
