/*
PURPOSE:
  Defines the 'run' subcommand.
  Reads a KLV benchmark specification from stdin, executes it against
  the selected engine binding, and emits samples on stdout.

REQUIREMENTS:
  User-specified:
  - Read stdin once, fully, before any benchmark executes.
  - No samples are printed if anything fails before or during the
    measurement phase.

  Implementation-discovered:
  - Using cobra's InOrStdin/OutOrStdout keeps the command testable
    with in-memory streams.

ARCHITECTURE INTEGRATION:
  - Calls: internal/config.Parse, internal/engine.Run,
    internal/output.Emitter

ERROR HANDLING:
  - Every error is fatal: returned to main for a non-zero exit, with
    the diagnostic identifying the error kind and offending key/value.

IMPLEMENTATION RULES:
  - Logic: Lookup binding -> Parse config -> Run -> Emit.
  - Buffer the samples, then emit; execution order is emission order.

USAGE:
  from a harness:  some-harness | regex-runner run --engine go
  by hand:         regex-runner klv bench.yaml | regex-runner run

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when the runner protocol grows new obligations.
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/regexbench/runner/internal/config"
	"github.com/regexbench/runner/internal/engine"
	"github.com/regexbench/runner/internal/output"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one benchmark from a KLV specification on stdin",
	Long: `Executes a single benchmark. The specification arrives on stdin as KLV
records (name, model, pattern, case-insensitive, unicode, haystack and
the iteration/time budgets). Warmup iterations are discarded; each
measurement iteration produces one 'duration,count' line.`,
	Example: `  # count all matches of a pattern with the stdlib engine
  regex-runner klv bench.yaml | regex-runner run

  # same benchmark on the backtracking engine
  regex-runner klv bench.yaml | regex-runner run --engine regexp2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output.SetVerbose(verbose)

		binding, err := engine.Lookup(engineName)
		if err != nil {
			return err
		}
		cfg, err := config.Parse(cmd.InOrStdin())
		if err != nil {
			return err
		}
		output.Logger.Info("parsed benchmark",
			"name", cfg.Name,
			"model", cfg.Model,
			"engine", binding.Name(),
			"haystack_bytes", len(cfg.Haystack),
		)

		samples, err := engine.Run(cfg, binding)
		if err != nil {
			return err
		}
		output.Logger.Info("benchmark complete", "samples", len(samples))

		if quiet {
			return nil
		}
		return output.NewEmitter(cmd.OutOrStdout()).EmitAll(samples)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
