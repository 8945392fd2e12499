package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/eve-ui-reader/internal/snapshot"
	"github.com/mj1618/eve-ui-reader/internal/uiparse"
)

// loadSnapshot parses the single snapshot file a command takes.
func loadSnapshot(path string) (*uiparse.UserInterface, error) {
	return snapshot.Load(path, parseConfig)
}

// exactlyOneSnapshot is cobra.ExactArgs(1) with a friendlier message.
func exactlyOneSnapshot(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%s takes exactly one snapshot file, got %d", cmd.Name(), len(args))
	}
	return nil
}
