// Package meta implements the engine orchestrator: it compiles pattern
// text, analyzes the resulting tree, selects an execution strategy and
// coordinates literal fast paths, the Aho-Corasick prefilter and the
// backtracking evaluator.
package meta

import (
	"errors"

	"github.com/coregx/regix/syntax"
)

// ErrInvalidConfig indicates invalid engine configuration was provided.
var ErrInvalidConfig = errors.New("invalid engine configuration")

// Config controls engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // always run the evaluator
//	engine, err := meta.CompileWithConfig("(ab)+c", config)
type Config struct {
	// EnablePrefilter enables literal-based prefiltering. When false, no
	// Aho-Corasick automaton is built even if candidates are available.
	// Default: true
	EnablePrefilter bool

	// MinLiteralLen is the minimum length of the shortest candidate for
	// the prefilter to be built. Shorter candidates occur in almost any
	// input and filter nothing.
	// Default: 2
	MinLiteralLen int

	// MaxLiterals caps the number of candidates extracted from
	// alternations.
	// Default: 64
	MaxLiterals int

	// MaxNestingDepth limits group/negation nesting during parsing.
	// Evaluator recursion depth equals tree depth, so this bounds stack
	// usage; deeper patterns fail compilation with
	// syntax.ErrNestingTooDeep.
	// Default: syntax.DefaultMaxNesting
	MaxNestingDepth int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
		MinLiteralLen:   2,
		MaxLiterals:     64,
		MaxNestingDepth: syntax.DefaultMaxNesting,
	}
}

// validate rejects configurations the engine cannot honor.
func (c Config) validate() error {
	if c.MinLiteralLen < 1 || c.MaxLiterals < 1 || c.MaxNestingDepth < 1 {
		return ErrInvalidConfig
	}
	return nil
}
