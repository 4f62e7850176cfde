/*
PURPOSE:
  Defines the YAML benchmark-definition format and its loading logic.
  A Def is the human-editable counterpart of the KLV stream: the `klv`
  subcommand loads one and emits the equivalent wire bytes, so a
  benchmark can be driven by hand without assembling KLV manually.

REQUIREMENTS:
  User-specified:
  - Allow every KLV key to be expressed in a file.
  - Haystacks may be inline or loaded from a path (binary safe).

  Implementation-discovered:
  - Time budgets read better as Go duration strings ("1.5s") than as
    raw nanosecond integers; both are accepted.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli (klv subcommand)
  - Dependencies: gopkg.in/yaml.v3, internal/klv

ERROR HANDLING:
  - Returns explicit error if the file is missing or invalid.
  - Inline haystack and haystack-path are mutually exclusive.

IMPLEMENTATION RULES:
  - Def struct tags use the KLV key spellings so the two formats read
    the same.
  - Encoding always emits every key; the KLV fold treats absent and
    zero identically, but explicit streams are easier to diff.

USAGE:
  def, err := config.LoadDef("bench.yaml")
  raw, err := def.AppendKLV(nil)

SELF-HEALING INSTRUCTIONS:
  - If a definition parses but 'run' rejects the stream, compare the
    emitted keys against Parse in config.go.

RELATED FILES:
  - internal/config/config.go - the consumer of the emitted stream.

MAINTENANCE:
  - Keep the field set in lockstep with the KLV keys handled by Parse
    in config.go.
*/

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/regexbench/runner/internal/klv"
)

// Def is a YAML benchmark definition.
type Def struct {
	Name            string   `yaml:"name"`
	Model           string   `yaml:"model"`
	Patterns        []string `yaml:"patterns"`
	CaseInsensitive bool     `yaml:"case-insensitive"`
	Unicode         bool     `yaml:"unicode"`
	Haystack        string   `yaml:"haystack"`
	HaystackPath    string   `yaml:"haystack-path"`
	MaxIters        int      `yaml:"max-iters"`
	MaxWarmupIters  int      `yaml:"max-warmup-iters"`
	MaxTime         string   `yaml:"max-time"`
	MaxWarmupTime   string   `yaml:"max-warmup-time"`
}

// LoadDef reads a benchmark definition from a YAML file.
func LoadDef(path string) (*Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	def := &Def{}
	if err := yaml.Unmarshal(data, def); err != nil {
		return nil, fmt.Errorf("failed to parse benchmark definition %s: %w", path, err)
	}
	return def, nil
}

// AppendKLV encodes the definition as a KLV stream onto dst. A
// haystack-path is resolved relative to the working directory and read
// as raw bytes.
func (d *Def) AppendKLV(dst []byte) ([]byte, error) {
	haystack := []byte(d.Haystack)
	if d.HaystackPath != "" {
		if d.Haystack != "" {
			return nil, fmt.Errorf("haystack and haystack-path are mutually exclusive")
		}
		data, err := os.ReadFile(d.HaystackPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read haystack: %w", err)
		}
		haystack = data
	}
	maxTime, err := parseBudget("max-time", d.MaxTime)
	if err != nil {
		return nil, err
	}
	maxWarmupTime, err := parseBudget("max-warmup-time", d.MaxWarmupTime)
	if err != nil {
		return nil, err
	}

	dst = appendString(dst, "name", d.Name)
	dst = appendString(dst, "model", d.Model)
	for _, p := range d.Patterns {
		dst = appendString(dst, "pattern", p)
	}
	dst = appendString(dst, "case-insensitive", strconv.FormatBool(d.CaseInsensitive))
	dst = appendString(dst, "unicode", strconv.FormatBool(d.Unicode))
	dst = klv.Append(dst, klv.Item{Key: "haystack", Value: haystack})
	dst = appendString(dst, "max-iters", strconv.Itoa(d.MaxIters))
	dst = appendString(dst, "max-warmup-iters", strconv.Itoa(d.MaxWarmupIters))
	dst = appendString(dst, "max-time", strconv.FormatInt(int64(maxTime), 10))
	dst = appendString(dst, "max-warmup-time", strconv.FormatInt(int64(maxWarmupTime), 10))
	return dst, nil
}

// parseBudget accepts either a Go duration string ("250ms") or a raw
// nanosecond integer, matching what the wire format carries.
func parseBudget(key, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative %s budget '%s'", key, value)
		}
		return time.Duration(n), nil
	}
	dur, err := time.ParseDuration(value)
	if err != nil || dur < 0 {
		return 0, fmt.Errorf("invalid %s budget '%s'", key, value)
	}
	return dur, nil
}

func appendString(dst []byte, key, value string) []byte {
	return klv.Append(dst, klv.Item{Key: key, Value: []byte(value)})
}
