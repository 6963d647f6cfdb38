package syntax

import (
	"fmt"
	"strings"
)

// Kind identifies the type of a compiled pattern node and determines
// which fields of Node are valid.
type Kind uint8

const (
	// KindLiteral matches exactly one specific character.
	KindLiteral Kind = iota

	// KindAnyChar matches any single character.
	KindAnyChar

	// KindDigitClass matches one decimal digit ('0'-'9').
	KindDigitClass

	// KindLetterClass matches one ASCII letter ('a'-'z', 'A'-'Z').
	KindLetterClass

	// KindWhitespaceClass matches one whitespace character
	// (space, tab, newline, carriage return, vertical tab, form feed).
	KindWhitespaceClass

	// KindSequence matches its children left to right, consuming the sum
	// of their lengths. A failing child fails the whole sequence; earlier
	// siblings are never re-explored.
	KindSequence

	// KindCapture behaves as KindSequence and additionally records the
	// matched substring under its group id. A capture evaluated multiple
	// times (e.g. under a repetition) records each occurrence in order.
	KindCapture

	// KindAlternation is ordered choice: the left child is tried first
	// and preferred on success; the right child is only tried against
	// the same input when the left fails.
	KindAlternation

	// KindRepeat matches its inner node zero or more times (Min 0) or
	// one or more times (Min 1), greedily, stopping at the first inner
	// failure.
	KindRepeat

	// KindOptional matches its inner node, or the empty string when the
	// inner node fails.
	KindOptional

	// KindNegation consumes exactly one character iff its inner node
	// fails against the remaining input. The inner node's would-be match
	// length is irrelevant: negation is single-character by policy, so
	// it is only meaningful over inner nodes that consume at most one
	// character.
	KindNegation
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindAnyChar:
		return "AnyChar"
	case KindDigitClass:
		return "DigitClass"
	case KindLetterClass:
		return "LetterClass"
	case KindWhitespaceClass:
		return "WhitespaceClass"
	case KindSequence:
		return "Sequence"
	case KindCapture:
		return "Capture"
	case KindAlternation:
		return "Alternation"
	case KindRepeat:
		return "Repeat"
	case KindOptional:
		return "Optional"
	case KindNegation:
		return "Negation"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// Node is one tagged unit of a compiled pattern tree. The node's kind
// determines which fields are valid. Nodes are immutable once the parser
// returns: a compiled tree may be shared freely across concurrent match
// calls.
//
// Each composite node exclusively owns its children; the tree has no
// sharing and no cycles.
type Node struct {
	kind Kind

	// For Literal: the character to match.
	char byte

	// For Repeat: minimum number of occurrences (0 or 1).
	min int

	// For Capture: 0-based group id, assigned in order of
	// opening-parenthesis appearance.
	group int

	// For Sequence/Capture: all children in match order.
	// For Alternation: children[0] is left, children[1] is right.
	// For Repeat/Optional/Negation: children[0] is the inner node.
	children []*Node
}

// Kind returns the node's type.
func (n *Node) Kind() Kind {
	return n.kind
}

// Char returns the character for Literal nodes.
// Returns 0 for other kinds.
func (n *Node) Char() byte {
	if n.kind != KindLiteral {
		return 0
	}
	return n.char
}

// Min returns the minimum occurrence count for Repeat nodes.
// Returns 0 for other kinds.
func (n *Node) Min() int {
	if n.kind != KindRepeat {
		return 0
	}
	return n.min
}

// Group returns the group id for Capture nodes.
// Returns -1 for other kinds.
func (n *Node) Group() int {
	if n.kind != KindCapture {
		return -1
	}
	return n.group
}

// Children returns the child list for Sequence and Capture nodes.
// The returned slice is shared and must not be modified.
func (n *Node) Children() []*Node {
	if n.kind != KindSequence && n.kind != KindCapture {
		return nil
	}
	return n.children
}

// Left returns the left operand of an Alternation node, nil otherwise.
func (n *Node) Left() *Node {
	if n.kind != KindAlternation {
		return nil
	}
	return n.children[0]
}

// Right returns the right operand of an Alternation node, nil otherwise.
func (n *Node) Right() *Node {
	if n.kind != KindAlternation {
		return nil
	}
	return n.children[1]
}

// Inner returns the operand of a Repeat, Optional or Negation node,
// nil otherwise.
func (n *Node) Inner() *Node {
	switch n.kind {
	case KindRepeat, KindOptional, KindNegation:
		return n.children[0]
	default:
		return nil
	}
}

// String returns a compact debug representation of the subtree.
func (n *Node) String() string {
	var b strings.Builder
	n.debug(&b)
	return b.String()
}

func (n *Node) debug(b *strings.Builder) {
	switch n.kind {
	case KindLiteral:
		fmt.Fprintf(b, "Literal(%q)", n.char)
	case KindCapture:
		fmt.Fprintf(b, "Capture#%d(", n.group)
		n.debugChildren(b)
		b.WriteByte(')')
	case KindSequence:
		b.WriteString("Sequence(")
		n.debugChildren(b)
		b.WriteByte(')')
	case KindAlternation:
		b.WriteString("Alternation(")
		n.children[0].debug(b)
		b.WriteString(", ")
		n.children[1].debug(b)
		b.WriteByte(')')
	case KindRepeat:
		fmt.Fprintf(b, "Repeat[min=%d](", n.min)
		n.children[0].debug(b)
		b.WriteByte(')')
	case KindOptional, KindNegation:
		b.WriteString(n.kind.String())
		b.WriteByte('(')
		n.children[0].debug(b)
		b.WriteByte(')')
	default:
		b.WriteString(n.kind.String())
	}
}

func (n *Node) debugChildren(b *strings.Builder) {
	for i, c := range n.children {
		if i > 0 {
			b.WriteString(", ")
		}
		c.debug(b)
	}
}

// IsDigit reports whether c is a decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsLetter reports whether c is an ASCII letter.
func IsLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsWhitespace reports whether c is a whitespace character.
func IsWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
