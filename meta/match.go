package meta

// Match is the outcome of a successful capturing match. It owns a fresh
// snapshot of the capture table: a capture group nested inside a
// repetition records one substring per occurrence, in match order.
type Match struct {
	length int
	groups [][]string
}

func newMatch(length int, groups [][]string) *Match {
	return &Match{length: length, groups: groups}
}

// Length returns the number of input characters the match consumed.
// For a full match this equals the input length.
func (m *Match) Length() int {
	return m.length
}

// NumGroups returns the number of capture groups in the pattern,
// whether or not they recorded anything in this match.
func (m *Match) NumGroups() int {
	return len(m.groups)
}

// Group returns the ordered substrings recorded by group id. Returns
// nil when the id is out of range or the group never matched. The
// returned slice must not be modified.
func (m *Match) Group(id int) []string {
	if id < 0 || id >= len(m.groups) {
		return nil
	}
	return m.groups[id]
}

// Groups returns the whole capture table, indexed by group id.
// The returned table must not be modified.
func (m *Match) Groups() [][]string {
	return m.groups
}
