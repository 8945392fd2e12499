package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/eve-ui-reader/internal/config"
	"github.com/mj1618/eve-ui-reader/internal/log"
	"github.com/mj1618/eve-ui-reader/internal/output"
	"github.com/mj1618/eve-ui-reader/internal/uiparse"
	"github.com/mj1618/eve-ui-reader/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "eve-ui-reader",
	Short: "Read EVE Online UI tree snapshots",
	Long: `Parse UI tree snapshots taken from the EVE Online client's memory into
structured views of the ship, targets, overview, drones, inventories and
windows, with the screen region of every recognised component.`,
	SilenceUsage: true,
}

// parseConfig is the key and maneuver configuration every command parses
// with. PersistentPreRunE fills it from --config.
var parseConfig = uiparse.DefaultConfig()

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json, msgpack, text (default yaml, json when piped)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("config", "", "Config file (.yaml or .toml), default $"+config.EnvPath)
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")

		// Smart default: piped output is for programs, terminals are for people.
		if format == "" {
			if output.IsOutputPiped() {
				format = string(output.FormatJSON)
			} else {
				format = string(output.FormatYAML)
			}
		}
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		path, _ := rootCmd.PersistentFlags().GetString("config")
		cfg, file, err := config.Resolve(path)
		if err != nil {
			return err
		}
		parseConfig = cfg

		level := file.LogLevel
		if flag := rootCmd.PersistentFlags().Lookup("log-level"); flag.Changed {
			level = flag.Value.String()
		}
		return log.SetLevel(level)
	}
}
