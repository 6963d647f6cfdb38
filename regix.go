// Package regix compiles a small regex-like pattern language into an
// immutable node tree and matches it against input text by recursive
// backtracking.
//
// The syntax:
//   - ( ) capturing group, [ ] non-capturing group
//   - |   ordered alternation of the previous unit and the next single unit
//   - ? * + zero-or-one / zero-or-more / one-or-more of the previous unit
//   - .   any single character
//   - ^   negation of the next single unit
//   - \l \d \w letter / digit / whitespace classes, \x the literal x
//   - any other character matches itself
//
// Operators bind to exactly one adjacent unit in a single left-to-right
// pass; there is no precedence grouping, so a|bc means (a|b) followed by
// the literal c. Matching is anchored at both ends: only whole-string
// matches count (a prefix variant is provided for partial-match use).
//
// Basic usage:
//
//	p, err := regix.Compile(`colou?r`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.MatchesFullyString("color")  // true
//	p.MatchesFullyString("colour") // true
//	p.MatchesFullyString("colr")   // false
//
// Capture groups record every occurrence in order:
//
//	p := regix.MustCompile(`(a)+`)
//	m := p.Match([]byte("aaa"))
//	m.Group(0) // ["a", "a", "a"]
//
// Fully literal patterns never run the evaluator: matching degenerates
// to string comparison, and patterns with mandatory literal fragments
// reject non-candidate input through an Aho-Corasick prefilter before
// backtracking starts.
package regix

import (
	"github.com/coregx/regix/meta"
)

// Pattern is a compiled pattern.
//
// A Pattern is immutable apart from internal statistics counters and is
// safe for concurrent use from multiple goroutines; every match call
// owns its capture state.
type Pattern struct {
	engine  *meta.Engine
	pattern string
}

// Match is the outcome of a successful capturing match. See meta.Match.
type Match = meta.Match

// Compile compiles pattern text.
//
// Returns a *syntax.ParseError when the pattern is invalid; there is no
// partial result on error. Match failure is never an error: a compiled
// pattern that matches nothing interesting simply returns false.
//
// Example:
//
//	p, err := regix.Compile(`(\d\d)+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Pattern, error) {
	engine, err := meta.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Pattern{engine: engine, pattern: pattern}, nil
}

// MustCompile compiles pattern text and panics if it fails.
// Useful for patterns known to be valid at compile time.
//
// Example:
//
//	var hex = regix.MustCompile(`(\d|a|b|c|d|e|f)+`)
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic("regix: Compile(`" + pattern + "`): " + err.Error())
	}
	return p
}

// CompileWithConfig compiles a pattern with custom engine configuration.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false
//	p, err := regix.CompileWithConfig(`(ab)+`, config)
func CompileWithConfig(pattern string, config meta.Config) (*Pattern, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Pattern{engine: engine, pattern: pattern}, nil
}

// DefaultConfig returns the default engine configuration for use with
// CompileWithConfig.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// MatchesFully reports whether the pattern consumes the entire input,
// anchored at both ends. This is not a substring search: "bc" inside
// "abcd" does not count.
//
// Example:
//
//	p := regix.MustCompile(`a*`)
//	p.MatchesFully([]byte(""))     // true
//	p.MatchesFully([]byte("aaaa")) // true
//	p.MatchesFully([]byte("aab"))  // false
func (p *Pattern) MatchesFully(input []byte) bool {
	return p.engine.IsFullMatch(input)
}

// MatchesFullyString reports whether the pattern consumes the entire
// input string.
func (p *Pattern) MatchesFullyString(input string) bool {
	return p.engine.IsFullMatch([]byte(input))
}

// Match evaluates the pattern against the entire input and returns the
// match with its capture table, or nil when the input is not a full
// match.
//
// Example:
//
//	p := regix.MustCompile(`(a)(b)`)
//	m := p.Match([]byte("ab"))
//	m.Group(0) // ["a"]
//	m.Group(1) // ["b"]
func (p *Pattern) Match(input []byte) *Match {
	m, ok := p.engine.MatchFull(input)
	if !ok {
		return nil
	}
	return m
}

// MatchString evaluates the pattern against the entire input string.
func (p *Pattern) MatchString(input string) *Match {
	return p.Match([]byte(input))
}

// MatchPrefix evaluates the pattern anchored at the start of input only
// and returns the match with its consumed length and capture table, or
// nil when no prefix matches. Matching is greedy and single-commit, so
// the returned length is the one the evaluator's first success commits
// to, not necessarily the longest possible.
//
// Example:
//
//	p := regix.MustCompile(`a+`)
//	m := p.MatchPrefix([]byte("aaab"))
//	m.Length() // 3
func (p *Pattern) MatchPrefix(input []byte) *Match {
	m, ok := p.engine.MatchPrefix(input)
	if !ok {
		return nil
	}
	return m
}

// NumGroups returns the number of capture groups in the pattern.
// Group ids are 0-based, assigned in order of opening-parenthesis
// appearance.
func (p *Pattern) NumGroups() int {
	return p.engine.NumGroups()
}

// String returns the source text used to compile the pattern.
func (p *Pattern) String() string {
	return p.pattern
}

// Strategy returns the engine's selected execution strategy. Useful for
// debugging and tests.
func (p *Pattern) Strategy() meta.Strategy {
	return p.engine.Strategy()
}

// Stats returns a snapshot of the engine's execution statistics.
func (p *Pattern) Stats() meta.Stats {
	return p.engine.Stats()
}
