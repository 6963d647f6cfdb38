package meta

import (
	"fmt"

	"github.com/coregx/regix/literal"
)

// Strategy represents the execution strategy for full-string matching.
//
// Strategy selection is automatic, based on literal analysis of the
// compiled tree. Capturing operations (MatchFull, MatchPrefix) always
// run the evaluator regardless of strategy, since only the evaluator
// fills the capture table.
type Strategy int

const (
	// UseBacktracker runs the tree-walking evaluator, optionally behind
	// the Aho-Corasick prefilter. Selected for every pattern that is not
	// fully literal.
	UseBacktracker Strategy = iota

	// UseAnchoredLiteral compares the input against a single complete
	// literal. Selected when the whole pattern is one literal run, e.g.
	// "uwu"; full matching degenerates to bytes.Equal.
	UseAnchoredLiteral

	// UseLiteralSet compares the input against a set of complete
	// literals. Selected for alternations whose branches are all fully
	// literal, e.g. "(foo)|(bar)".
	UseLiteralSet
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case UseBacktracker:
		return "Backtracker"
	case UseAnchoredLiteral:
		return "AnchoredLiteral"
	case UseLiteralSet:
		return "LiteralSet"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// selectStrategy picks the strategy from the extracted literal set.
func selectStrategy(lits *literal.Seq) Strategy {
	if lits.AllComplete() {
		if lits.Len() == 1 {
			return UseAnchoredLiteral
		}
		return UseLiteralSet
	}
	return UseBacktracker
}
