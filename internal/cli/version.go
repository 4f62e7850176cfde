package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/regexbench/runner/internal/engine"
)

// The harness protocol probes a runner binary for its engine version
// before sending any benchmark, so this must work with nothing on
// stdin.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the selected engine binding's version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		binding, err := engine.Lookup(engineName)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), binding.Version())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
