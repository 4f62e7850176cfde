/*
PURPOSE:
  Provides a structured logger for the runner.
  Wraps slog for consistent output.

REQUIREMENTS:
  User-specified:
  - Diagnostics must never mix into the sample stream: stdout is
    reserved for `duration,count` lines, so the logger writes to
    stderr.

  Implementation-discovered:
  - Default level is Warn so a normal run emits nothing but samples;
    --verbose raises it to Info.

ARCHITECTURE INTEGRATION:
  - Used everywhere.

ERROR HANDLING:
  - N/A

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).

USAGE:
  output.Logger.Info("message", "key", "value")

SELF-HEALING INSTRUCTIONS:
  - Ensure Go 1.21+ is used.
  - If samples show up interleaved with log lines, something rebound
    the handler to stdout; it must stay on stderr.

RELATED FILES:
  - All.

MAINTENANCE:
  - Configurable log levels?
*/

package output

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

var level = new(slog.LevelVar)

func init() {
	level.Set(slog.LevelWarn)
	Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *slog.Logger) {
	Logger = l
}

// SetVerbose lowers the level gate so Info diagnostics appear.
func SetVerbose(v bool) {
	if v {
		level.Set(slog.LevelInfo)
	} else {
		level.Set(slog.LevelWarn)
	}
}
