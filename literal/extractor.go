package literal

import "github.com/coregx/regix/syntax"

// ExtractorConfig bounds literal extraction.
type ExtractorConfig struct {
	// MaxLiterals caps the number of candidates. Extraction returns an
	// empty sequence when an alternation tree would exceed it.
	// Default: 64.
	MaxLiterals int

	// MaxLiteralLen truncates long literal runs. A truncated literal is
	// never Complete. Default: 64.
	MaxLiteralLen int
}

// DefaultConfig returns the default extraction limits.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
	}
}

// Extractor derives literal candidates from a compiled pattern tree.
//
// The returned sequence satisfies: every full match of the tree contains
// at least one candidate as a substring. A candidate marked Complete is
// additionally a full match of the tree by itself.
//
// Extraction rules per node kind:
//   - a literal run yields its own bytes (Complete when it is the whole
//     tree);
//   - alternation unions both branches, and yields nothing when either
//     branch yields nothing;
//   - optional, min-0 repeat, negation, character classes and '.' yield
//     nothing (they can match without any fixed text);
//   - min-1 repeat and capture delegate to their inner tree;
//   - a sequence picks its strongest mandatory member.
type Extractor struct {
	config ExtractorConfig
}

// New creates an Extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// Extract returns the literal candidates for the tree. The result is
// empty when no usable candidate exists or a limit is exceeded.
func (e *Extractor) Extract(root *syntax.Node) *Seq {
	seq, _ := e.extract(root)
	if seq == nil || seq.Len() > e.config.MaxLiterals {
		return NewSeq()
	}
	return seq
}

// extract returns the candidate set for a subtree and whether every
// candidate is a complete match of that subtree.
func (e *Extractor) extract(n *syntax.Node) (*Seq, bool) {
	switch n.Kind() {
	case syntax.KindLiteral:
		return NewSeq(NewLiteral([]byte{n.Char()}, true)), true

	case syntax.KindSequence, syntax.KindCapture:
		return e.extractSeq(n.Children())

	case syntax.KindAlternation:
		left, lc := e.extract(n.Left())
		if left == nil || left.IsEmpty() {
			return nil, false
		}
		right, rc := e.extract(n.Right())
		if right == nil || right.IsEmpty() {
			return nil, false
		}
		union := NewSeq()
		union.AddAll(left)
		union.AddAll(right)
		return union, lc && rc

	case syntax.KindRepeat:
		if n.Min() < 1 {
			return nil, false
		}
		// At least one inner occurrence is mandatory, so the inner
		// candidates remain valid. They are no longer complete: a+
		// also matches "aa".
		inner, _ := e.extract(n.Inner())
		if inner == nil || inner.IsEmpty() {
			return nil, false
		}
		return incomplete(inner), false

	default:
		// Optional, negation, classes, anychar: no fixed text.
		return nil, false
	}
}

// extractSeq handles sequence and capture children.
func (e *Extractor) extractSeq(children []*syntax.Node) (*Seq, bool) {
	if len(children) == 0 {
		return nil, false
	}
	if len(children) == 1 {
		// Single-unit sequences (the common shape: runs are wrapped,
		// groups hold one unit list entry per unit) delegate directly,
		// preserving completeness.
		return e.extract(children[0])
	}

	// Multiple units. Accumulate contiguous literal children into runs
	// and collect one guarantee per mandatory member, then keep the
	// strongest: the one whose weakest candidate is longest.
	var best *Seq
	bestScore := 0
	consider := func(s *Seq) {
		if s == nil || s.IsEmpty() {
			return
		}
		if score := s.MinLen(); score > bestScore {
			best = s
			bestScore = score
		}
	}

	var run []byte
	allLiteral := true
	flushRun := func() {
		if len(run) > 0 {
			consider(NewSeq(e.runLiteral(run, false)))
			run = nil
		}
	}

	for _, child := range children {
		if child.Kind() == syntax.KindLiteral {
			run = append(run, child.Char())
			continue
		}
		allLiteral = false
		flushRun()
		sub, _ := e.extract(child)
		if sub != nil && !sub.IsEmpty() {
			consider(incomplete(sub))
		}
	}

	if allLiteral {
		lit := e.runLiteral(run, true)
		return NewSeq(lit), lit.Complete
	}
	flushRun()
	return best, false
}

// runLiteral builds a literal from a run, truncating to MaxLiteralLen.
// Truncation clears Complete.
func (e *Extractor) runLiteral(run []byte, complete bool) Literal {
	b := append([]byte(nil), run...)
	if len(b) > e.config.MaxLiteralLen {
		b = b[:e.config.MaxLiteralLen]
		complete = false
	}
	return NewLiteral(b, complete)
}

// incomplete copies a sequence with every Complete flag cleared.
func incomplete(s *Seq) *Seq {
	out := NewSeq()
	for i := 0; i < s.Len(); i++ {
		out.Add(NewLiteral(s.Get(i).Bytes, false))
	}
	return out
}
