// Package literal extracts literal byte sequences from compiled pattern
// trees.
//
// The engine uses extracted literals two ways:
//   - When the whole pattern is literal (a single literal, or an
//     alternation of fully literal branches), matching degenerates to
//     string comparison and the evaluator is skipped entirely.
//   - Otherwise the literals act as a prefilter: every full match must
//     contain at least one candidate as a substring, so input containing
//     none of them can be rejected without running the evaluator.
package literal

import "bytes"

// Literal is a candidate byte sequence extracted from a pattern.
// Complete indicates the literal is an entire match of the pattern on
// its own, not just a required fragment.
type Literal struct {
	// Bytes is the literal byte sequence.
	Bytes []byte

	// Complete is true when matching this literal alone is a full match
	// of the pattern, so no evaluator run is needed.
	Complete bool
}

// NewLiteral creates a Literal from the given bytes and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a debug representation of the literal.
func (l Literal) String() string {
	if l.Complete {
		return "literal{" + string(l.Bytes) + ", complete}"
	}
	return "literal{" + string(l.Bytes) + "}"
}

// Seq is an ordered set of alternative literals. The extraction contract
// is: every full match of the pattern contains at least one member of
// the sequence as a substring.
type Seq struct {
	literals []Literal
}

// NewSeq creates a sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	return len(s.literals)
}

// IsEmpty returns true when the sequence holds no literals.
func (s *Seq) IsEmpty() bool {
	return len(s.literals) == 0
}

// Get returns the literal at index i.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// Add appends a literal, dropping exact duplicates.
func (s *Seq) Add(lit Literal) {
	for _, have := range s.literals {
		if have.Complete == lit.Complete && bytes.Equal(have.Bytes, lit.Bytes) {
			return
		}
	}
	s.literals = append(s.literals, lit)
}

// AddAll appends every literal from other.
func (s *Seq) AddAll(other *Seq) {
	for _, lit := range other.literals {
		s.Add(lit)
	}
}

// AllComplete returns true when the sequence is non-empty and every
// literal is a complete match of the pattern.
func (s *Seq) AllComplete() bool {
	if len(s.literals) == 0 {
		return false
	}
	for _, lit := range s.literals {
		if !lit.Complete {
			return false
		}
	}
	return true
}

// MinLen returns the length of the shortest literal, or 0 for an empty
// sequence. Prefilter quality is bounded by the shortest candidate.
func (s *Seq) MinLen() int {
	if len(s.literals) == 0 {
		return 0
	}
	min := s.literals[0].Len()
	for _, lit := range s.literals[1:] {
		if lit.Len() < min {
			min = lit.Len()
		}
	}
	return min
}
