package meta

import (
	"bytes"
	"sync/atomic"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/regix/backtrack"
	"github.com/coregx/regix/literal"
	"github.com/coregx/regix/syntax"
)

// Engine is a compiled pattern ready for matching.
//
// An Engine is immutable after compilation apart from its statistics
// counters, which are atomic; it is safe for concurrent use from
// multiple goroutines. Every match call owns its capture state.
//
// Example:
//
//	engine, err := meta.Compile("(colou?r)+")
//	if err != nil {
//	    return err
//	}
//	engine.IsFullMatch([]byte("colorcolour")) // true
type Engine struct {
	tree    *syntax.Node
	matcher *backtrack.Matcher
	groups  int

	strategy Strategy
	literals *literal.Seq

	// exact holds the complete literal set for UseAnchoredLiteral and
	// UseLiteralSet: matching is membership, no evaluator run.
	exact [][]byte

	// prefilter rejects input containing none of the must-appear
	// candidates before the evaluator runs. Nil when no usable
	// candidates exist or prefiltering is disabled.
	prefilter *ahocorasick.Automaton

	config Config
	stats  Stats
}

// Stats tracks execution statistics for performance analysis.
// Counters are updated atomically; read them through Engine.Stats.
type Stats struct {
	// BacktrackSearches counts evaluator runs.
	BacktrackSearches uint64

	// LiteralSearches counts matches answered by literal comparison
	// alone.
	LiteralSearches uint64

	// PrefilterHits counts inputs the prefilter passed through to the
	// evaluator.
	PrefilterHits uint64

	// PrefilterMisses counts inputs the prefilter rejected outright.
	PrefilterMisses uint64
}

// Compile compiles pattern text into an executable Engine with the
// default configuration.
//
// Steps:
//  1. Parse the pattern to a node tree
//  2. Extract literal candidates from the tree
//  3. Select a strategy (literal comparison vs. evaluator)
//  4. Build the Aho-Corasick prefilter when candidates warrant one
//
// Returns a *syntax.ParseError when the pattern is invalid; there is no
// partial result on error.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom configuration.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	tree, groups, err := syntax.ParseWithLimit(pattern, config.MaxNestingDepth)
	if err != nil {
		return nil, err
	}

	extractorConfig := literal.DefaultConfig()
	extractorConfig.MaxLiterals = config.MaxLiterals
	lits := literal.New(extractorConfig).Extract(tree)

	e := &Engine{
		tree:     tree,
		matcher:  backtrack.NewMatcher(tree, groups),
		groups:   groups,
		strategy: selectStrategy(lits),
		literals: lits,
		config:   config,
	}

	switch e.strategy {
	case UseAnchoredLiteral, UseLiteralSet:
		e.exact = make([][]byte, lits.Len())
		for i := 0; i < lits.Len(); i++ {
			e.exact[i] = lits.Get(i).Bytes
		}

	case UseBacktracker:
		if config.EnablePrefilter && !lits.IsEmpty() && lits.MinLen() >= config.MinLiteralLen {
			builder := ahocorasick.NewBuilder()
			for i := 0; i < lits.Len(); i++ {
				builder.AddPattern(lits.Get(i).Bytes)
			}
			auto, err := builder.Build()
			if err == nil {
				e.prefilter = auto
			}
			// On builder failure the engine degrades to plain evaluation.
		}
	}

	return e, nil
}

// NumGroups returns the number of capture groups in the pattern.
func (e *Engine) NumGroups() int {
	return e.groups
}

// Strategy returns the selected execution strategy.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Tree returns the compiled node tree. The tree is immutable and must
// not be modified.
func (e *Engine) Tree() *syntax.Node {
	return e.tree
}

// Stats returns a snapshot of the execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		BacktrackSearches: atomic.LoadUint64(&e.stats.BacktrackSearches),
		LiteralSearches:   atomic.LoadUint64(&e.stats.LiteralSearches),
		PrefilterHits:     atomic.LoadUint64(&e.stats.PrefilterHits),
		PrefilterMisses:   atomic.LoadUint64(&e.stats.PrefilterMisses),
	}
}

// ResetStats zeroes the execution statistics.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.BacktrackSearches, 0)
	atomic.StoreUint64(&e.stats.LiteralSearches, 0)
	atomic.StoreUint64(&e.stats.PrefilterHits, 0)
	atomic.StoreUint64(&e.stats.PrefilterMisses, 0)
}

// IsFullMatch reports whether the pattern consumes the entire input,
// anchored at both ends.
func (e *Engine) IsFullMatch(input []byte) bool {
	switch e.strategy {
	case UseAnchoredLiteral, UseLiteralSet:
		atomic.AddUint64(&e.stats.LiteralSearches, 1)
		return e.matchExact(input)
	default:
		if !e.passesPrefilter(input) {
			return false
		}
		atomic.AddUint64(&e.stats.BacktrackSearches, 1)
		return e.matcher.IsFullMatch(input)
	}
}

// MatchFull evaluates the pattern anchored at both ends and returns the
// match with its capture table, or nil and false when the input is not
// a full match. Capturing always runs the evaluator: literal fast paths
// cannot fill group tables.
func (e *Engine) MatchFull(input []byte) (*Match, bool) {
	if !e.passesPrefilter(input) {
		return nil, false
	}
	atomic.AddUint64(&e.stats.BacktrackSearches, 1)
	groups, ok := e.matcher.MatchFull(input)
	if !ok {
		return nil, false
	}
	return newMatch(len(input), groups), true
}

// MatchPrefix evaluates the pattern anchored at the start only and
// returns the consumed length and capture table, or nil and false when
// no prefix of the input matches.
func (e *Engine) MatchPrefix(input []byte) (*Match, bool) {
	if !e.passesPrefilter(input) {
		return nil, false
	}
	atomic.AddUint64(&e.stats.BacktrackSearches, 1)
	n, groups, ok := e.matcher.MatchPrefix(input)
	if !ok {
		return nil, false
	}
	return newMatch(n, groups), true
}

// matchExact answers full matching by literal comparison.
func (e *Engine) matchExact(input []byte) bool {
	for _, lit := range e.exact {
		if bytes.Equal(input, lit) {
			return true
		}
	}
	return false
}

// passesPrefilter returns false when the prefilter proves no match is
// possible: every match must contain at least one extracted candidate,
// and none occurs in the input.
func (e *Engine) passesPrefilter(input []byte) bool {
	if e.prefilter == nil {
		return true
	}
	if !e.prefilter.IsMatch(input) {
		atomic.AddUint64(&e.stats.PrefilterMisses, 1)
		return false
	}
	atomic.AddUint64(&e.stats.PrefilterHits, 1)
	return true
}
