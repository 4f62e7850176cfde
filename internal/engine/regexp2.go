/*
PURPOSE:
  Engine bindings for github.com/dlclark/regexp2, a backtracking
  engine with .NET-flavor syntax. Registered twice: "regexp2" with its
  native flavor defaults, and "regexp2-re2" with the RE2 compatibility
  option, which is effectively a different engine sharing this code.

REQUIREMENTS:
  User-specified:
  - Same capability surface as every other binding.
  - Flavor variants selectable as distinct bindings.

  Implementation-discovered:
  - regexp2 operates on rune slices. Byte-mode haystacks pass through
    a string conversion, so invalid UTF-8 is not searched byte-for-byte
    the way the stdlib binding searches it. Engine constraint; the
    match lengths reported here are the UTF-8 byte lengths of the
    matched text.

ARCHITECTURE INTEGRATION:
  - Registered in: internal/engine/binding.go
  - Dependencies: github.com/dlclark/regexp2

ERROR HANDLING:
  - Compile, search and substitute failures wrap as *EngineError
    (regexp2 returns errors from searches, unlike stdlib regexp).

IMPLEMENTATION RULES:
  - Flags map to regexp2 options (IgnoreCase, Unicode) rather than
    pattern rewriting, and the options value is part of the cache key.
  - A group participates in a match when it holds at least one capture.

USAGE:
  Selected via `regex-runner --engine regexp2` or
  `regex-runner --engine regexp2-re2`.

SELF-HEALING INSTRUCTIONS:
  - If match counts disagree with the stdlib binding on byte-mode
    haystacks, re-read the rune-conversion constraint above before
    touching the match loop.

RELATED FILES:
  - internal/engine/gostd.go

MAINTENANCE:
  - Track regexp2 releases; the RE2 option set may grow.
*/

package engine

import (
	"fmt"
	"sync"

	"github.com/dlclark/regexp2"

	"github.com/regexbench/runner/internal/model"
)

type regexp2Binding struct {
	name   string
	flavor regexp2.RegexOptions
	mu     sync.Mutex
	cache  map[string]*regexp2.Regexp
}

func newRegexp2Binding() Binding {
	return &regexp2Binding{
		name:  "regexp2",
		cache: map[string]*regexp2.Regexp{},
	}
}

func newRegexp2RE2Binding() Binding {
	return &regexp2Binding{
		name:   "regexp2-re2",
		flavor: regexp2.RE2,
		cache:  map[string]*regexp2.Regexp{},
	}
}

func (b *regexp2Binding) Name() string { return b.name }

func (b *regexp2Binding) Version() string {
	if b.flavor&regexp2.RE2 != 0 {
		return "dlclark/regexp2 (RE2 compatibility flavor)"
	}
	return "dlclark/regexp2 (.NET flavor)"
}

func (b *regexp2Binding) Compile(pattern model.Haystack, flags model.Flags) (Pattern, error) {
	opts := b.flavor
	if flags.CaseInsensitive {
		opts |= regexp2.IgnoreCase
	}
	if flags.Unicode {
		opts |= regexp2.Unicode
	}
	key := fmt.Sprintf("%d\x00%s", opts, pattern.String())
	b.mu.Lock()
	re, ok := b.cache[key]
	b.mu.Unlock()
	if !ok {
		var err error
		re, err = regexp2.Compile(pattern.String(), opts)
		if err != nil {
			return nil, &EngineError{Engine: b.name, Op: "compile", Err: err}
		}
		b.mu.Lock()
		b.cache[key] = re
		b.mu.Unlock()
	}
	return &regexp2Pattern{engine: b.name, re: re}, nil
}

func (b *regexp2Binding) PurgeCache() {
	b.mu.Lock()
	b.cache = map[string]*regexp2.Regexp{}
	b.mu.Unlock()
}

type regexp2Pattern struct {
	engine string
	re     *regexp2.Regexp
}

func (p *regexp2Pattern) FindAll(hay model.Haystack) ([]Match, error) {
	var matches []Match
	m, err := p.re.FindStringMatch(hay.String())
	if err != nil {
		return nil, &EngineError{Engine: p.engine, Op: "find", Err: err}
	}
	for m != nil {
		groups := 0
		for _, g := range m.Groups()[1:] {
			if len(g.Captures) > 0 {
				groups++
			}
		}
		matches = append(matches, Match{Len: len(m.String()), Groups: groups})
		m, err = p.re.FindNextMatch(m)
		if err != nil {
			return nil, &EngineError{Engine: p.engine, Op: "find", Err: err}
		}
	}
	return matches, nil
}

func (p *regexp2Pattern) Matches(hay model.Haystack) (bool, error) {
	ok, err := p.re.MatchString(hay.String())
	if err != nil {
		return false, &EngineError{Engine: p.engine, Op: "match", Err: err}
	}
	return ok, nil
}

func (p *regexp2Pattern) ReplaceAll(hay, repl model.Haystack) (model.Haystack, error) {
	out, err := p.re.Replace(hay.String(), repl.String(), -1, -1)
	if err != nil {
		return model.Haystack{}, &EngineError{Engine: p.engine, Op: "replace", Err: err}
	}
	return hay.Rewrap(out), nil
}
