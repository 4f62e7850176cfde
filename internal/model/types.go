/*
PURPOSE:
  Defines the core data structures shared across the runner.
  These model benchmark samples, match flags, and the dual
  byte/text haystack representation.

REQUIREMENTS:
  User-specified:
  - Record one (duration, count) sample per measurement iteration.
  - Represent haystacks and patterns as either raw bytes or UTF-8 text
    depending on the benchmark's Unicode mode.

  Implementation-discovered:
  - Grep-style models need LF-only line splitting with CRLF handling;
    putting it on Haystack keeps encoding handling in one place.

ARCHITECTURE INTEGRATION:
  - Used by: internal/config, internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs). Encoding validation happens in
    internal/config before a Haystack is constructed.

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Use time.Duration for sample durations.
  - Haystack is immutable once constructed.

USAGE:
  s := model.Sample{Duration: elapsed, Count: n}
  h := model.Text("foo\nbar\n")

SELF-HEALING INSTRUCTIONS:
  - If new metrics are needed, add a Sample field and update the
    emitter's record mapping.

RELATED FILES:
  - internal/engine/binding.go
  - internal/output/emitter.go

MAINTENANCE:
  - Update when adding new metrics to capture.
*/

package model

import (
	"bytes"
	"time"
)

// Sample is the result of a single measurement iteration: how long one
// bench() call took, and the match count used to verify it.
type Sample struct {
	Duration time.Duration `json:"duration"`
	Count    int           `json:"count"`
}

// Flags carries the engine-facing match options derived from a
// benchmark configuration.
type Flags struct {
	// CaseInsensitive requests case folding during matching.
	CaseInsensitive bool
	// Unicode selects text mode. In byte mode, character classes are
	// ASCII-only unless an engine binding documents otherwise.
	Unicode bool
}

// Haystack is a tagged union of UTF-8 text and raw bytes. A benchmark
// in Unicode mode operates on text; otherwise on bytes. Engine
// bindings receive both patterns and haystacks in this form so the
// core never branches on the encoding mode.
type Haystack struct {
	text   string
	raw    []byte
	isText bool
}

// Text wraps an already-validated UTF-8 string.
func Text(s string) Haystack {
	return Haystack{text: s, isText: true}
}

// Bytes wraps a raw byte sequence.
func Bytes(b []byte) Haystack {
	return Haystack{raw: b}
}

// IsText reports whether the haystack is in text mode.
func (h Haystack) IsText() bool { return h.isText }

// Len returns the length in bytes regardless of mode, so counts remain
// comparable across encoding modes.
func (h Haystack) Len() int {
	if h.isText {
		return len(h.text)
	}
	return len(h.raw)
}

// String returns the contents as a string. For byte mode this is a
// raw byte-preserving conversion, not a UTF-8 guarantee.
func (h Haystack) String() string {
	if h.isText {
		return h.text
	}
	return string(h.raw)
}

// Raw returns the contents as bytes.
func (h Haystack) Raw() []byte {
	if h.isText {
		return []byte(h.text)
	}
	return h.raw
}

// Rewrap wraps s in the same mode as h. Useful for building patterns
// and replacements that must match the haystack's mode.
func (h Haystack) Rewrap(s string) Haystack {
	if h.isText {
		return Text(s)
	}
	return Bytes([]byte(s))
}

// Lines splits the haystack into lines on literal '\n' only, never on
// other Unicode line separators. A trailing empty line produced by a
// final '\n' is dropped, and one trailing '\r' is stripped per line.
// Each line keeps the haystack's mode. Splitting on an ASCII byte
// cannot break up a UTF-8 sequence, so text-mode lines stay valid.
func (h Haystack) Lines() []Haystack {
	raw := h.Raw()
	split := bytes.Split(raw, []byte{'\n'})
	if len(split) > 0 && len(split[len(split)-1]) == 0 {
		split = split[:len(split)-1]
	}
	lines := make([]Haystack, 0, len(split))
	for _, line := range split {
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		if h.isText {
			lines = append(lines, Text(string(line)))
		} else {
			lines = append(lines, Bytes(line))
		}
	}
	return lines
}
