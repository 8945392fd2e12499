package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mj1618/eve-ui-reader/internal/output"
	"github.com/mj1618/eve-ui-reader/internal/search"
)

var findCmd = &cobra.Command{
	Use:   "find <snapshot>",
	Short: "Search a snapshot for nodes by display text",
	Long:  "Search every node of a snapshot by its display text. Matching ignores case and markup such as <color=...>; each match names the component that holds it.",
	Args:  exactlyOneSnapshot,
	RunE:  runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().String("text", "", "Text to search for (case-insensitive substring match)")
	findCmd.Flags().String("types", "", "Filter by node type (e.g. \"EveLabelMedium,Button\")")
	findCmd.Flags().Int("limit", 10, "Max matches to return (0 = unlimited)")
	findCmd.Flags().Bool("exact", false, "Require exact match instead of substring")
	findCmd.Flags().Bool("fuzzy", false, "Also accept similar texts (Jaro-Winkler)")
	findCmd.Flags().Float64("threshold", search.DefaultThreshold, "Lowest similarity for --fuzzy matches")
	_ = findCmd.MarkFlagRequired("text")
}

func runFind(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	typesStr, _ := cmd.Flags().GetString("types")
	limit, _ := cmd.Flags().GetInt("limit")
	exact, _ := cmd.Flags().GetBool("exact")
	fuzzy, _ := cmd.Flags().GetBool("fuzzy")
	threshold, _ := cmd.Flags().GetFloat64("threshold")

	var types []string
	for _, t := range strings.Split(typesStr, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}

	ui, err := loadSnapshot(args[0])
	if err != nil {
		return err
	}
	matches, err := search.Find(ui, search.Options{
		Text:      text,
		Exact:     exact,
		Fuzzy:     fuzzy,
		Threshold: threshold,
		Types:     types,
		Limit:     limit,
	})
	if err != nil {
		return err
	}
	return output.Print(matches)
}
