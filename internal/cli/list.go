/*
PURPOSE:
  Defines the 'list' subcommand.
  Prints the registered engine bindings and supported benchmark
  models, as a sanity check before wiring this runner into a harness.

REQUIREMENTS:
  User-specified:
  - Enumerate what this binary can run.

  Implementation-discovered:
  - Useful validation step before a full run.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Bindings(), internal/engine.Models()

ERROR HANDLING:
  - None; the registries are static.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  regex-runner list

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/binding.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/regexbench/runner/internal/engine"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available engine bindings and benchmark models",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "engines:")
		for _, name := range engine.Bindings() {
			b, err := engine.Lookup(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  %s\t%s\n", name, b.Version())
		}
		fmt.Fprintln(out, "models:")
		for _, name := range engine.Models() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
