package syntax

import (
	"errors"
	"strings"
	"testing"
)

// TestParseStructure verifies tree shapes via the debug representation.
// The single-pass grammar has no precedence: operators bind to exactly
// one adjacent unit.
func TestParseStructure(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{
			"empty pattern",
			"",
			"Sequence()",
		},
		{
			"literal run",
			"abc",
			`Sequence(Sequence(Literal('a'), Literal('b'), Literal('c')))`,
		},
		{
			"escapes in run",
			`a\d\x`,
			`Sequence(Sequence(Literal('a'), DigitClass, Literal('x')))`,
		},
		{
			"any char",
			"a.b",
			`Sequence(Sequence(Literal('a')), AnyChar, Sequence(Literal('b')))`,
		},
		{
			"optional binds one character",
			"colou?r",
			`Sequence(Sequence(Literal('c'), Literal('o'), Literal('l'), Literal('o')), ` +
				`Optional(Sequence(Literal('u'))), Sequence(Literal('r')))`,
		},
		{
			"alternation right operand is one unit",
			"a|bc",
			`Sequence(Alternation(Sequence(Literal('a')), Literal('b')), Sequence(Literal('c')))`,
		},
		{
			"alternation left operand is one unit",
			"ab|c",
			`Sequence(Sequence(Literal('a')), Alternation(Sequence(Literal('b')), Literal('c')))`,
		},
		{
			"capture group",
			"(ab)",
			`Sequence(Capture#0(Sequence(Literal('a'), Literal('b'))))`,
		},
		{
			"non-capturing group",
			"[ab]",
			`Sequence(Sequence(Sequence(Literal('a'), Literal('b'))))`,
		},
		{
			"group alternation",
			"(a)|(b)",
			`Sequence(Alternation(Capture#0(Sequence(Literal('a'))), Capture#1(Sequence(Literal('b')))))`,
		},
		{
			"quantified group",
			"(ab)+",
			`Sequence(Repeat[min=1](Capture#0(Sequence(Literal('a'), Literal('b')))))`,
		},
		{
			"star",
			"a*",
			`Sequence(Repeat[min=0](Sequence(Literal('a'))))`,
		},
		{
			"negation binds one unit",
			"^ab",
			`Sequence(Negation(Literal('a')), Sequence(Literal('b')))`,
		},
		{
			"negated group",
			"^(ab)",
			`Sequence(Negation(Capture#0(Sequence(Literal('a'), Literal('b')))))`,
		},
		{
			"double negation",
			"^^a",
			`Sequence(Negation(Negation(Literal('a'))))`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, _, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.pattern, err)
			}
			if got := tree.String(); got != tt.want {
				t.Errorf("Parse(%q) =\n  %s\nwant\n  %s", tt.pattern, got, tt.want)
			}
		})
	}
}

// TestParseGroupIDs verifies sequential pre-order group id assignment.
func TestParseGroupIDs(t *testing.T) {
	tree, groups, err := Parse("((a)(b))(c)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if groups != 4 {
		t.Errorf("group count = %d, want 4", groups)
	}
	// Outer group opens first: ids follow opening-parenthesis order.
	want := `Sequence(Capture#0(Capture#1(Sequence(Literal('a'))), Capture#2(Sequence(Literal('b')))), ` +
		`Capture#3(Sequence(Literal('c'))))`
	if got := tree.String(); got != want {
		t.Errorf("tree =\n  %s\nwant\n  %s", got, want)
	}
}

// TestParseErrors covers the full failure taxonomy.
func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    error
	}{
		{"unterminated group", "(ab", ErrUnbalancedGroup},
		{"unterminated nested group", "(a(b)", ErrUnbalancedGroup},
		{"stray close paren", "ab)", ErrUnbalancedGroup},
		{"unterminated class", "[ab", ErrUnbalancedClass},
		{"stray close bracket", "ab]", ErrUnbalancedClass},
		{"leading alternation", "|ab", ErrDanglingOperator},
		{"leading optional", "?a", ErrDanglingOperator},
		{"leading star", "*a", ErrDanglingOperator},
		{"leading plus", "+a", ErrDanglingOperator},
		{"operator first in group", "(|a)", ErrDanglingOperator},
		{"alternation at end", "a|", ErrMalformedAlternation},
		{"alternation into operator", "a|*", ErrMalformedAlternation},
		{"negation at end", "^", ErrMalformedNegation},
		{"negation of operator", "^*", ErrMalformedNegation},
		{"trailing escape", `ab\`, ErrTrailingEscape},
		{"lone escape", `\`, ErrTrailingEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, _, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want %v", tt.pattern, tt.want)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.pattern, err, tt.want)
			}
			if tree != nil {
				t.Errorf("Parse(%q) returned partial tree on error", tt.pattern)
			}

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse(%q) error type = %T, want *ParseError", tt.pattern, err)
			}
			if pe.Pattern != tt.pattern {
				t.Errorf("ParseError.Pattern = %q, want %q", pe.Pattern, tt.pattern)
			}
			if pe.Pos < 0 || pe.Pos > len(tt.pattern) {
				t.Errorf("ParseError.Pos = %d out of range for %q", pe.Pos, tt.pattern)
			}
		})
	}
}

// TestParseNestingLimit tests the compile-time depth guard.
func TestParseNestingLimit(t *testing.T) {
	deep := strings.Repeat("(", 300) + "a" + strings.Repeat(")", 300)
	_, _, err := Parse(deep)
	if !errors.Is(err, ErrNestingTooDeep) {
		t.Errorf("Parse(300 levels) error = %v, want ErrNestingTooDeep", err)
	}

	// A custom limit admits what the default rejects.
	if _, _, err := ParseWithLimit(deep, 400); err != nil {
		t.Errorf("ParseWithLimit(300 levels, 400) failed: %v", err)
	}

	// Negation chains count against the limit too.
	hats := strings.Repeat("^", 300) + "a"
	if _, _, err := Parse(hats); !errors.Is(err, ErrNestingTooDeep) {
		t.Errorf("Parse(300 negations) error = %v, want ErrNestingTooDeep", err)
	}
}

// TestParseErrorMessage tests the position-carrying message format.
func TestParseErrorMessage(t *testing.T) {
	_, _, err := Parse("(ab")
	if err == nil {
		t.Fatal("Parse(\"(ab\") succeeded")
	}
	msg := err.Error()
	if !strings.Contains(msg, `"(ab"`) || !strings.Contains(msg, "position") {
		t.Errorf("error message %q missing pattern or position", msg)
	}
}

// TestNodeAccessorsWrongKind tests that accessors are kind-checked.
func TestNodeAccessorsWrongKind(t *testing.T) {
	tree, _, err := Parse("a")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	// The root is a sequence: literal accessors return zero values.
	if tree.Char() != 0 {
		t.Errorf("Char() on Sequence = %q, want 0", tree.Char())
	}
	if tree.Group() != -1 {
		t.Errorf("Group() on Sequence = %d, want -1", tree.Group())
	}
	if tree.Inner() != nil {
		t.Error("Inner() on Sequence != nil")
	}
	if tree.Left() != nil || tree.Right() != nil {
		t.Error("Left()/Right() on Sequence != nil")
	}
}

// TestCharClassification tests the class predicates used by the matcher.
func TestCharClassification(t *testing.T) {
	for c := byte('0'); c <= '9'; c++ {
		if !IsDigit(c) {
			t.Errorf("IsDigit(%q) = false", c)
		}
	}
	if IsDigit('a') || IsLetter('0') || IsWhitespace('x') {
		t.Error("classification accepted wrong character")
	}
	if !IsLetter('a') || !IsLetter('Z') {
		t.Error("IsLetter rejected ASCII letter")
	}
	for _, c := range []byte{' ', '\t', '\n', '\r', '\v', '\f'} {
		if !IsWhitespace(c) {
			t.Errorf("IsWhitespace(%q) = false", c)
		}
	}
}
