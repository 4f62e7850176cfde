/*
PURPOSE:
  Defines the benchmark configuration and the logic that builds it from
  a KLV stream. A Config is an immutable snapshot of one benchmark run:
  which model to execute, the pattern(s), the haystack, match options,
  and the warmup/measurement budgets.

REQUIREMENTS:
  User-specified:
  - Fold decoded KLV items into a typed, validated configuration.
  - The key set is closed: unknown keys are fatal, not ignored.
  - Expose encoding-aware accessors so Unicode mode selects text and
    byte mode selects raw bytes, uniformly.

  Implementation-discovered:
  - Scalar keys are last-write-wins; only 'pattern' accumulates.
  - Time budgets arrive as decimal nanoseconds.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: internal/klv, internal/model

ERROR HANDLING:
  - Typed errors per failure kind: *UnrecognizedKeyError,
    *InvalidNumberError, *InvalidEncodingError, *WrongPatternCountError.
  - All are fatal to the run; there is no partial configuration.

IMPLEMENTATION RULES:
  - The haystack is stored raw and only UTF-8 decoded by
    EffectiveHaystack when Unicode mode asks for text.
  - Accessors compute, they do not cache; Config itself never mutates
    after Parse returns.

USAGE:
  cfg, err := config.Parse(os.Stdin)
  hay, err := cfg.EffectiveHaystack()

SELF-HEALING INSTRUCTIONS:
  - If a key is rejected as unrecognized, check the sender, not this
    switch; the key set is closed on purpose.

RELATED FILES:
  - internal/klv/klv.go - the wire format.
  - internal/config/def.go - YAML definitions for the klv subcommand.

MAINTENANCE:
  - New keys require updating both Parse and Def; the key set is part
    of the wire protocol.
*/

package config

import (
	"fmt"
	"io"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/regexbench/runner/internal/klv"
	"github.com/regexbench/runner/internal/model"
)

// Config describes a single benchmark run. The zero value is the
// documented starting point for the KLV fold: empty strings, no
// patterns, both booleans false, all budgets zero.
type Config struct {
	Name            string
	Model           string
	Patterns        []string
	CaseInsensitive bool
	Unicode         bool
	Haystack        []byte
	MaxIters        int
	MaxWarmupIters  int
	MaxTime         time.Duration
	MaxWarmupTime   time.Duration
}

// UnrecognizedKeyError reports a KLV key outside the closed set.
type UnrecognizedKeyError struct {
	Key string
}

func (e *UnrecognizedKeyError) Error() string {
	return fmt.Sprintf("unrecognized KLV item key '%s'", e.Key)
}

// InvalidNumberError reports a numeric field that failed to parse as a
// non-negative decimal integer.
type InvalidNumberError struct {
	Key   string
	Value string
	Err   error
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number '%s' for key '%s'", e.Value, e.Key)
}

func (e *InvalidNumberError) Unwrap() error { return e.Err }

// InvalidEncodingError reports bytes that were required to be valid
// UTF-8 but were not.
type InvalidEncodingError struct {
	Key string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("value for key '%s' is not valid UTF-8", e.Key)
}

// WrongPatternCountError reports a model that requires exactly one
// pattern receiving zero or several.
type WrongPatternCountError struct {
	Got int
}

func (e *WrongPatternCountError) Error() string {
	return fmt.Sprintf("expected 1 pattern, but got %d", e.Got)
}

// Parse reads the entire stream and folds its KLV items into a Config.
func Parse(rdr io.Reader) (*Config, error) {
	raw, err := io.ReadAll(rdr)
	if err != nil {
		return nil, fmt.Errorf("failed to read KLV data: %w", err)
	}
	items, err := klv.Parse(raw)
	if err != nil {
		return nil, err
	}
	c := &Config{}
	for _, it := range items {
		switch it.Key {
		case "name":
			s, err := decodeUTF8(it)
			if err != nil {
				return nil, err
			}
			c.Name = s
		case "model":
			s, err := decodeUTF8(it)
			if err != nil {
				return nil, err
			}
			c.Model = s
		case "pattern":
			s, err := decodeUTF8(it)
			if err != nil {
				return nil, err
			}
			c.Patterns = append(c.Patterns, s)
		case "case-insensitive":
			c.CaseInsensitive = string(it.Value) == "true"
		case "unicode":
			c.Unicode = string(it.Value) == "true"
		case "haystack":
			// Stored raw; decoded lazily by EffectiveHaystack.
			c.Haystack = it.Value
		case "max-iters":
			n, err := decodeInt(it)
			if err != nil {
				return nil, err
			}
			c.MaxIters = n
		case "max-warmup-iters":
			n, err := decodeInt(it)
			if err != nil {
				return nil, err
			}
			c.MaxWarmupIters = n
		case "max-time":
			n, err := decodeInt(it)
			if err != nil {
				return nil, err
			}
			c.MaxTime = time.Duration(int64(n))
		case "max-warmup-time":
			n, err := decodeInt(it)
			if err != nil {
				return nil, err
			}
			c.MaxWarmupTime = time.Duration(int64(n))
		default:
			return nil, &UnrecognizedKeyError{Key: it.Key}
		}
	}
	return c, nil
}

func decodeUTF8(it klv.Item) (string, error) {
	if !utf8.Valid(it.Value) {
		return "", &InvalidEncodingError{Key: it.Key}
	}
	return string(it.Value), nil
}

func decodeInt(it klv.Item) (int, error) {
	n, err := strconv.Atoi(string(it.Value))
	if err != nil || n < 0 {
		return 0, &InvalidNumberError{Key: it.Key, Value: string(it.Value), Err: err}
	}
	return n, nil
}

// EffectiveHaystack returns the haystack in the mode the benchmark
// runs in: UTF-8 text when Unicode mode is on, raw bytes otherwise.
// The UTF-8 validation happens here, outside any measurement.
func (c *Config) EffectiveHaystack() (model.Haystack, error) {
	if c.Unicode {
		if !utf8.Valid(c.Haystack) {
			return model.Haystack{}, &InvalidEncodingError{Key: "haystack"}
		}
		return model.Text(string(c.Haystack)), nil
	}
	return model.Bytes(c.Haystack), nil
}

// OnePattern returns the benchmark's single pattern in the same mode
// as the haystack. Every current model requires exactly one pattern;
// anything else fails with *WrongPatternCountError.
func (c *Config) OnePattern() (model.Haystack, error) {
	if len(c.Patterns) != 1 {
		return model.Haystack{}, &WrongPatternCountError{Got: len(c.Patterns)}
	}
	p := c.Patterns[0]
	if c.Unicode {
		return model.Text(p), nil
	}
	return model.Bytes([]byte(p)), nil
}

// MatchFlags derives the engine-facing flags from this configuration.
func (c *Config) MatchFlags() model.Flags {
	return model.Flags{
		CaseInsensitive: c.CaseInsensitive,
		Unicode:         c.Unicode,
	}
}
