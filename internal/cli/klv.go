/*
PURPOSE:
  Defines the 'klv' subcommand.
  Builds a KLV benchmark stream from a YAML definition file, so a
  benchmark can be composed by hand and piped into 'run' without a
  harness on the other end.

REQUIREMENTS:
  User-specified:
  - Every wire key must be expressible from the definition file.
  - The output must be byte-exact KLV; haystacks may be binary.

  Implementation-discovered:
  - Writing raw KLV to a terminal is rarely useful, so the typical
    usage is a pipe into 'run'.

ARCHITECTURE INTEGRATION:
  - Calls: internal/config.LoadDef, internal/klv (via Def.AppendKLV)

ERROR HANDLING:
  - Missing/invalid definition files and unreadable haystack paths
    return explicit errors.

IMPLEMENTATION RULES:
  - The command takes exactly one positional argument: the YAML path.

USAGE:
  regex-runner klv bench.yaml | regex-runner run --engine regexp2

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/config/def.go

MAINTENANCE:
  - Keep in lockstep with the KLV key set.
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/regexbench/runner/internal/config"
)

var klvCmd = &cobra.Command{
	Use:   "klv <definition.yaml>",
	Short: "Emit the KLV stream for a YAML benchmark definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := config.LoadDef(args[0])
		if err != nil {
			return err
		}
		raw, err := def.AppendKLV(nil)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(raw)
		return err
	},
}

func init() {
	rootCmd.AddCommand(klvCmd)
}
