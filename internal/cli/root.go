/*
PURPOSE:
  Defines the root Cobra command for the regex-runner CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - An external argument selects which engine binding to load before
    the core consumes the configuration stream.
  - Support a quiet mode that runs everything but emits no samples.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/regex-runner/main.go
  - Calls: Child commands (run, version, list, klv)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands, Root is usually empty or helps.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to init().

RELATED FILES:
  - cmd/regex-runner/main.go

MAINTENANCE:
  - Update when adding new global configuration options.
*/

package cli

import (
	"github.com/spf13/cobra"
)

var (
	// engineName selects the regex engine binding to drive.
	engineName string
	// quiet runs the benchmark but suppresses the sample stream.
	quiet bool
	// verbose raises the stderr log level to Info.
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "regex-runner",
		Short: "Cross-engine regex benchmark runner",
		Long: `A benchmark runner that receives a KLV benchmark specification on stdin,
executes one of the fixed measurement models against a pattern/haystack
pair using the selected regex engine binding, and emits one
'duration,count' line per measurement iteration on stdout.`,
		// Stdout carries nothing but samples, and main owns the error
		// diagnostic; cobra must not write usage text or a second copy
		// of the error on a failed run.
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&engineName, "engine", "go", "regex engine binding to use (see 'list')")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "run the benchmark but emit no samples")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log progress diagnostics to stderr")
}
