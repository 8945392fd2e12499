package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mj1618/eve-ui-reader/internal/output"
)

var componentsCmd = &cobra.Command{
	Use:     "components <snapshot>",
	Aliases: []string{"ls"},
	Short:   "List recognised components with IDs, regions and paths",
	Long:    "List every recognised component of a snapshot. IDs match the [id] labels drawn by render --labels id.",
	Args:    exactlyOneSnapshot,
	RunE:    runComponents,
}

func init() {
	rootCmd.AddCommand(componentsCmd)
	componentsCmd.Flags().String("kind", "", "Only list components of this kind (e.g. ModuleButton)")
}

func runComponents(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("kind")

	ui, err := loadSnapshot(args[0])
	if err != nil {
		return err
	}
	components := output.Components(ui)
	if kind != "" {
		filtered := []output.Component{}
		for _, c := range components {
			if strings.EqualFold(c.Kind, kind) {
				filtered = append(filtered, c)
			}
		}
		components = filtered
	}
	return output.Print(components)
}
