// Package backtrack evaluates a compiled pattern tree against input text
// by single-pass recursive backtracking.
//
// Evaluation of a node returns a consumed length or failure. Failure is
// ordinary control flow: it drives alternation, optional and repeat
// decisions and never surfaces as an error. Matching is greedy and
// single-commit: once a sequence child has matched, earlier siblings are
// never re-explored when a later sibling fails.
package backtrack

import (
	"sync"

	"github.com/coregx/regix/syntax"
)

// Matcher evaluates one compiled tree. The tree is immutable, so a
// Matcher is safe for concurrent use: every call owns its own capture
// state.
type Matcher struct {
	tree   *syntax.Node
	groups int

	// statePool recycles capture tables across capturing calls.
	// Boolean-only matching skips capture recording entirely and does
	// not touch the pool.
	statePool sync.Pool
}

// NewMatcher creates a matcher for the given tree and capture group count.
func NewMatcher(tree *syntax.Node, groups int) *Matcher {
	m := &Matcher{tree: tree, groups: groups}
	m.statePool.New = func() any {
		return &state{captures: make([][]string, groups)}
	}
	return m
}

// NumGroups returns the number of capture groups in the pattern.
func (m *Matcher) NumGroups() int {
	return m.groups
}

// state holds per-call mutable match state: the capture table, indexed
// by group id. A nil *state disables capture recording.
type state struct {
	captures [][]string
}

func (m *Matcher) getState() *state {
	st := m.statePool.Get().(*state)
	for i := range st.captures {
		st.captures[i] = st.captures[i][:0]
	}
	return st
}

func (m *Matcher) putState(st *state) {
	m.statePool.Put(st)
}

// snapshot copies the capture table out of pooled state. Groups that
// never matched are nil.
func (st *state) snapshot() [][]string {
	out := make([][]string, len(st.captures))
	for i, g := range st.captures {
		out[i] = append([]string(nil), g...)
	}
	return out
}

// IsFullMatch reports whether the pattern consumes the entire input.
// Capture recording is skipped: the boolean outcome does not need it.
func (m *Matcher) IsFullMatch(input []byte) bool {
	n, ok := m.match(m.tree, input, 0, nil)
	return ok && n == len(input)
}

// MatchFull evaluates the pattern anchored at both ends and returns the
// capture table on success. The returned table is a fresh copy owned by
// the caller.
func (m *Matcher) MatchFull(input []byte) ([][]string, bool) {
	st := m.getState()
	defer m.putState(st)
	n, ok := m.match(m.tree, input, 0, st)
	if !ok || n != len(input) {
		return nil, false
	}
	return st.snapshot(), true
}

// MatchPrefix evaluates the pattern anchored at the start only and
// returns the consumed length and capture table on success.
func (m *Matcher) MatchPrefix(input []byte) (int, [][]string, bool) {
	st := m.getState()
	defer m.putState(st)
	n, ok := m.match(m.tree, input, 0, st)
	if !ok {
		return 0, nil, false
	}
	return n, st.snapshot(), true
}

// match evaluates node against input[pos:], returning the consumed
// length and whether the node matched. Recursion depth equals tree
// depth, which the parser bounds; sibling and repetition loops are
// iterative.
func (m *Matcher) match(n *syntax.Node, input []byte, pos int, st *state) (int, bool) {
	switch n.Kind() {
	case syntax.KindLiteral:
		if pos < len(input) && input[pos] == n.Char() {
			return 1, true
		}
		return 0, false

	case syntax.KindAnyChar:
		if pos < len(input) {
			return 1, true
		}
		return 0, false

	case syntax.KindDigitClass:
		if pos < len(input) && syntax.IsDigit(input[pos]) {
			return 1, true
		}
		return 0, false

	case syntax.KindLetterClass:
		if pos < len(input) && syntax.IsLetter(input[pos]) {
			return 1, true
		}
		return 0, false

	case syntax.KindWhitespaceClass:
		if pos < len(input) && syntax.IsWhitespace(input[pos]) {
			return 1, true
		}
		return 0, false

	case syntax.KindSequence:
		return m.matchSeq(n.Children(), input, pos, st)

	case syntax.KindCapture:
		total, ok := m.matchSeq(n.Children(), input, pos, st)
		if !ok {
			return 0, false
		}
		if st != nil {
			g := n.Group()
			st.captures[g] = append(st.captures[g], string(input[pos:pos+total]))
		}
		return total, true

	case syntax.KindAlternation:
		// Ordered choice: the left branch is preferred; the right branch
		// sees the same input only when the left fails.
		if total, ok := m.match(n.Left(), input, pos, st); ok {
			return total, true
		}
		return m.match(n.Right(), input, pos, st)

	case syntax.KindOptional:
		if total, ok := m.match(n.Inner(), input, pos, st); ok {
			return total, true
		}
		return 0, true

	case syntax.KindRepeat:
		inner := n.Inner()
		total := 0
		count := 0
		for {
			step, ok := m.match(inner, input, pos+total, st)
			if !ok {
				break
			}
			count++
			total += step
			if step == 0 {
				// A zero-length success would repeat forever; count it
				// once and stop.
				break
			}
		}
		if count < n.Min() {
			return 0, false
		}
		return total, true

	case syntax.KindNegation:
		// Consumes exactly one character iff the inner node fails here.
		if _, ok := m.match(n.Inner(), input, pos, st); ok {
			return 0, false
		}
		if pos < len(input) {
			return 1, true
		}
		return 0, false
	}

	return 0, false
}

// matchSeq evaluates children left to right on successively advanced
// input. Any child failure fails the whole sequence immediately.
func (m *Matcher) matchSeq(children []*syntax.Node, input []byte, pos int, st *state) (int, bool) {
	total := 0
	for _, child := range children {
		step, ok := m.match(child, input, pos+total, st)
		if !ok {
			return 0, false
		}
		total += step
	}
	return total, true
}
