// Package syntax compiles the regix pattern language into an immutable
// node tree.
//
// The syntax is deliberately small: ( ) capturing group, [ ] non-capturing
// group, | ordered alternation of the previous unit against the next single
// unit, ? * + postfix quantifiers on the previous unit, . any character,
// ^ negation of the next single unit, \l \d \w character classes, \x the
// literal x, and every other character a literal.
//
// Parsing is a single left-to-right pass: operators bind to exactly one
// adjacent unit, so there is no precedence grouping. In particular a|bc
// parses as (a|b) followed by the literal c. This is a documented property
// of the language, not an accident of the parser.
package syntax

import (
	"errors"
	"fmt"
)

// Parse error sentinels. Every compilation failure wraps exactly one of
// these; test with errors.Is.
var (
	// ErrUnbalancedGroup indicates a '(' without a matching ')', or a
	// stray ')' with no open group.
	ErrUnbalancedGroup = errors.New("unbalanced capture group")

	// ErrUnbalancedClass indicates a '[' without a matching ']', or a
	// stray ']' with no open group.
	ErrUnbalancedClass = errors.New("unbalanced non-capturing group")

	// ErrDanglingOperator indicates a postfix operator ('|', '?', '*', '+')
	// with no preceding unit to bind to.
	ErrDanglingOperator = errors.New("operator has no preceding unit")

	// ErrMalformedAlternation indicates a '|' whose right operand is not
	// exactly one unit.
	ErrMalformedAlternation = errors.New("alternation has no right operand")

	// ErrMalformedNegation indicates a '^' whose operand is not exactly
	// one unit.
	ErrMalformedNegation = errors.New("negation has no operand")

	// ErrTrailingEscape indicates a '\' at the end of the pattern with no
	// character to escape.
	ErrTrailingEscape = errors.New("trailing escape at end of pattern")

	// ErrNestingTooDeep indicates the pattern nests groups deeper than
	// the configured limit. Evaluation recursion depth equals pattern
	// nesting depth, so this bounds evaluator stack usage at compile time.
	ErrNestingTooDeep = errors.New("pattern nesting too deep")
)

// ParseError reports a compilation failure with its position in the
// pattern text. The wrapped sentinel identifies the failure class.
type ParseError struct {
	Pattern string
	Pos     int
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("regix: parsing %q at position %d: %v", e.Pattern, e.Pos, e.Err)
}

// Unwrap returns the sentinel error for use with errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Err
}
