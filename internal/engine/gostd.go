/*
PURPOSE:
  Engine binding for the standard library's regexp package (RE2
  syntax, linear-time matching). This is the default binding.

REQUIREMENTS:
  User-specified:
  - Case-insensitivity and Unicode mode derived from benchmark flags.
  - Explicit cache invalidation.

  Implementation-discovered:
  - Go regexes are always Unicode-aware; there is no byte-mode toggle.
    \w, \d and \s stay ASCII-only regardless. This is an engine
    constraint, not a harness choice.
  - regexp has no process-wide compile cache, so the binding keeps its
    own. Without one, PurgeCache would be a no-op and untestable.

ARCHITECTURE INTEGRATION:
  - Registered in: internal/engine/binding.go
  - Dependencies: stdlib regexp. The binding layer exists precisely so
    the rest of the harness never imports a regex package directly.

ERROR HANDLING:
  - Compile failures wrap as *EngineError.

IMPLEMENTATION RULES:
  - Case-insensitivity is applied by wrapping the pattern in "(?i:...)"
    so the cache key covers the flags.
  - Text mode uses the string search entry points, byte mode the byte
    ones; offsets are byte offsets in both.

USAGE:
  Selected via `regex-runner --engine go`.

SELF-HEALING INSTRUCTIONS:
  - If compile-model durations collapse toward zero, suspect the cache
    surviving a purge; TestGoBinding_CacheAndPurge pins this down.

RELATED FILES:
  - internal/engine/regexp2.go - the second-flavor binding.

MAINTENANCE:
  - None; tracks the Go release in use.
*/

package engine

import (
	"regexp"
	"runtime"
	"sync"

	"github.com/regexbench/runner/internal/model"
)

type goBinding struct {
	mu    sync.Mutex
	cache map[string]*regexp.Regexp
}

func newGoBinding() Binding {
	return &goBinding{cache: map[string]*regexp.Regexp{}}
}

func (b *goBinding) Name() string { return "go" }

func (b *goBinding) Version() string { return runtime.Version() }

func (b *goBinding) Compile(pattern model.Haystack, flags model.Flags) (Pattern, error) {
	expr := pattern.String()
	if flags.CaseInsensitive {
		expr = "(?i:" + expr + ")"
	}
	b.mu.Lock()
	re, ok := b.cache[expr]
	b.mu.Unlock()
	if !ok {
		var err error
		re, err = regexp.Compile(expr)
		if err != nil {
			return nil, &EngineError{Engine: b.Name(), Op: "compile", Err: err}
		}
		b.mu.Lock()
		b.cache[expr] = re
		b.mu.Unlock()
	}
	return &goPattern{re: re}, nil
}

func (b *goBinding) PurgeCache() {
	b.mu.Lock()
	b.cache = map[string]*regexp.Regexp{}
	b.mu.Unlock()
}

type goPattern struct {
	re *regexp.Regexp
}

func (p *goPattern) FindAll(hay model.Haystack) ([]Match, error) {
	var raw [][]int
	if hay.IsText() {
		raw = p.re.FindAllStringSubmatchIndex(hay.String(), -1)
	} else {
		raw = p.re.FindAllSubmatchIndex(hay.Raw(), -1)
	}
	matches := make([]Match, 0, len(raw))
	for _, m := range raw {
		groups := 0
		for i := 2; i < len(m); i += 2 {
			if m[i] >= 0 {
				groups++
			}
		}
		matches = append(matches, Match{Len: m[1] - m[0], Groups: groups})
	}
	return matches, nil
}

func (p *goPattern) Matches(hay model.Haystack) (bool, error) {
	if hay.IsText() {
		return p.re.MatchString(hay.String()), nil
	}
	return p.re.Match(hay.Raw()), nil
}

func (p *goPattern) ReplaceAll(hay, repl model.Haystack) (model.Haystack, error) {
	if hay.IsText() {
		return model.Text(p.re.ReplaceAllString(hay.String(), repl.String())), nil
	}
	return model.Bytes(p.re.ReplaceAll(hay.Raw(), repl.Raw())), nil
}
