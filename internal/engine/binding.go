/*
PURPOSE:
  Defines the narrow capability interface every regex engine binding
  must implement, plus the registry that selects a binding by name at
  process startup. The benchmark core drives whichever binding is
  active and never branches on its identity.

REQUIREMENTS:
  User-specified:
  - Capabilities: compile, iterate matches, substitute, and an explicit
    cache-invalidation operation.
  - A second flavor variant of an engine is just another binding
    reusing the same core.

  Implementation-discovered:
  - Matches only need to surface a byte length and a participating
    capture group count; no model inspects offsets.

ARCHITECTURE INTEGRATION:
  - Implemented by: gostd.go, regexp2.go
  - Used by: internal/engine/models.go, internal/engine/runner.go,
    internal/cli

ERROR HANDLING:
  - Binding failures (bad pattern syntax, unsupported flags) surface
    as *EngineError wrapping the underlying cause.
  - Unknown binding names fail at Lookup, before any input is read.

IMPLEMENTATION RULES:
  - PurgeCache must discard every compiled pattern the binding has
    cached, process-wide. The execution loop calls it between
    iterations; only a real purge keeps the compile model honest.
  - Bindings must not retain state that survives a purge.

USAGE:
  b, err := engine.Lookup("go")
  p, err := b.Compile(pattern, flags)

SELF-HEALING INSTRUCTIONS:
  - If Lookup fails for a name you expect, check the bindings map and
    the constructor registration below.

RELATED FILES:
  - internal/engine/runner.go - the loop that drives a binding.

MAINTENANCE:
  - Register new bindings in the bindings map; names are part of the
    CLI surface.
*/

package engine

import (
	"fmt"
	"sort"

	"github.com/regexbench/runner/internal/model"
)

// Match is one regex match as reported by an engine binding.
type Match struct {
	// Len is the matched span's length in UTF-8 bytes, in both text
	// and byte mode.
	Len int
	// Groups is the number of capture groups that participated in the
	// match, excluding the implicit whole-match group.
	Groups int
}

// Pattern is a compiled regex, scoped to the binding that produced it.
type Pattern interface {
	// FindAll returns every non-overlapping match in order.
	FindAll(hay model.Haystack) ([]Match, error)
	// Matches reports whether the pattern matches anywhere.
	Matches(hay model.Haystack) (bool, error)
	// ReplaceAll substitutes every match with repl and returns the new
	// haystack in the same mode.
	ReplaceAll(hay, repl model.Haystack) (model.Haystack, error)
}

// Binding is a regex engine the runner can drive.
type Binding interface {
	// Name is the registry key, e.g. "go" or "regexp2".
	Name() string
	// Version identifies the engine build for the version subcommand.
	Version() string
	// Compile builds a pattern with the given flags. Implementations
	// may serve compiles from an internal cache; see PurgeCache.
	Compile(pattern model.Haystack, flags model.Flags) (Pattern, error)
	// PurgeCache invalidates every cached compiled pattern. Called by
	// the execution loop before each iteration.
	PurgeCache()
}

// EngineError is an opaque failure surfaced by an engine binding.
type EngineError struct {
	Engine string
	Op     string
	Err    error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine '%s': %s: %v", e.Engine, e.Op, e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }

var bindings = map[string]func() Binding{
	"go":          newGoBinding,
	"regexp2":     newRegexp2Binding,
	"regexp2-re2": newRegexp2RE2Binding,
}

// Lookup returns a fresh binding by registry name.
func Lookup(name string) (Binding, error) {
	mk, ok := bindings[name]
	if !ok {
		return nil, fmt.Errorf("unrecognized engine '%s'", name)
	}
	return mk(), nil
}

// Bindings lists the registered binding names, sorted.
func Bindings() []string {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
