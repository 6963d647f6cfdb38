package syntax

// DefaultMaxNesting is the default limit on group/negation nesting depth.
// Evaluator recursion depth equals tree depth, so bounding nesting at
// compile time bounds evaluator stack usage.
const DefaultMaxNesting = 200

// Parse compiles a pattern into a node tree using DefaultMaxNesting.
// It returns the root node, the number of capture groups, and a
// *ParseError on failure. There is no partial result on error.
func Parse(pattern string) (*Node, int, error) {
	return ParseWithLimit(pattern, DefaultMaxNesting)
}

// ParseWithLimit compiles a pattern with an explicit nesting-depth limit.
//
// The parse is a single left-to-right pass. At each nesting level the
// parser maintains an ordered list of already-parsed sibling units
// ("pending"); postfix operators pop the last pending unit, and prefix
// negation parses exactly one following unit. The whole pattern is
// wrapped in an implicit root sequence.
func ParseWithLimit(pattern string, maxNesting int) (*Node, int, error) {
	p := &parser{
		cur:        NewCursor(pattern),
		pattern:    pattern,
		maxNesting: maxNesting,
	}
	pending, err := p.parseUnits(0, 0)
	if err != nil {
		return nil, 0, err
	}
	return &Node{kind: KindSequence, children: pending}, p.nextGroup, nil
}

// parser holds the single-pass parse state: the cursor over pattern text
// and the one group-id counter shared across the whole parse.
type parser struct {
	cur        *Cursor
	pattern    string
	nextGroup  int
	maxNesting int
}

// fail wraps a sentinel with the current pattern position.
func (p *parser) fail(err error) error {
	return &ParseError{Pattern: p.pattern, Pos: p.cur.Pos(), Err: err}
}

// isPostfix reports whether c is a postfix operator. A literal run breaks
// before a character immediately followed by one of these, so the
// operator binds to exactly one character unit.
func isPostfix(c byte) bool {
	return c == '?' || c == '*' || c == '+' || c == '|'
}

// parseUnits parses sibling units until the terminator (or end of text
// for terminator 0), consuming the terminator. Returns the pending list.
func (p *parser) parseUnits(terminator byte, depth int) ([]*Node, error) {
	var pending []*Node
	for !p.cur.AtEnd() {
		if terminator != 0 && p.cur.Peek(terminator) {
			p.cur.Advance(1)
			return pending, nil
		}
		c, _ := p.cur.At(0)
		switch c {
		case '(':
			node, err := p.parseGroup(depth)
			if err != nil {
				return nil, err
			}
			pending = append(pending, node)

		case '[':
			node, err := p.parseClass(depth)
			if err != nil {
				return nil, err
			}
			pending = append(pending, node)

		case ')':
			// Stray closer: no capture group is open here.
			return nil, p.fail(ErrUnbalancedGroup)

		case ']':
			return nil, p.fail(ErrUnbalancedClass)

		case '|':
			p.cur.Advance(1)
			if len(pending) == 0 {
				return nil, p.fail(ErrDanglingOperator)
			}
			left := pending[len(pending)-1]
			right, err := p.parseAtom(depth)
			if err != nil {
				return nil, err
			}
			if right == nil {
				return nil, p.fail(ErrMalformedAlternation)
			}
			pending[len(pending)-1] = &Node{
				kind:     KindAlternation,
				children: []*Node{left, right},
			}

		case '?':
			p.cur.Advance(1)
			inner, err := p.popPending(&pending)
			if err != nil {
				return nil, err
			}
			pending = append(pending, &Node{kind: KindOptional, children: []*Node{inner}})

		case '*':
			p.cur.Advance(1)
			inner, err := p.popPending(&pending)
			if err != nil {
				return nil, err
			}
			pending = append(pending, &Node{kind: KindRepeat, min: 0, children: []*Node{inner}})

		case '+':
			p.cur.Advance(1)
			inner, err := p.popPending(&pending)
			if err != nil {
				return nil, err
			}
			pending = append(pending, &Node{kind: KindRepeat, min: 1, children: []*Node{inner}})

		case '.':
			p.cur.Advance(1)
			pending = append(pending, &Node{kind: KindAnyChar})

		case '^':
			p.cur.Advance(1)
			inner, err := p.parseAtom(depth + 1)
			if err != nil {
				return nil, err
			}
			if inner == nil {
				return nil, p.fail(ErrMalformedNegation)
			}
			pending = append(pending, &Node{kind: KindNegation, children: []*Node{inner}})

		default:
			node, err := p.parseRun()
			if err != nil {
				return nil, err
			}
			pending = append(pending, node)
		}
	}
	if terminator == ')' {
		return nil, p.fail(ErrUnbalancedGroup)
	}
	if terminator == ']' {
		return nil, p.fail(ErrUnbalancedClass)
	}
	return pending, nil
}

// popPending removes and returns the last pending unit for a postfix
// operator to bind to.
func (p *parser) popPending(pending *[]*Node) (*Node, error) {
	s := *pending
	if len(s) == 0 {
		return nil, p.fail(ErrDanglingOperator)
	}
	last := s[len(s)-1]
	*pending = s[:len(s)-1]
	return last, nil
}

// parseGroup parses a '(' ... ')' capturing group. The group id is
// assigned at the opening parenthesis, so ids are sequential in order of
// appearance.
func (p *parser) parseGroup(depth int) (*Node, error) {
	if depth+1 > p.maxNesting {
		return nil, p.fail(ErrNestingTooDeep)
	}
	p.cur.Advance(1)
	group := p.nextGroup
	p.nextGroup++
	children, err := p.parseUnits(')', depth+1)
	if err != nil {
		return nil, err
	}
	return &Node{kind: KindCapture, group: group, children: children}, nil
}

// parseClass parses a '[' ... ']' non-capturing group.
func (p *parser) parseClass(depth int) (*Node, error) {
	if depth+1 > p.maxNesting {
		return nil, p.fail(ErrNestingTooDeep)
	}
	p.cur.Advance(1)
	children, err := p.parseUnits(']', depth+1)
	if err != nil {
		return nil, err
	}
	return &Node{kind: KindSequence, children: children}, nil
}

// parseAtom parses exactly one unit for an operand position (the right
// side of '|' or the operand of '^'). Unlike the main loop, a literal
// character here is a single unit, never a maximal run: that is what
// makes a|bc parse as (a|b) followed by c.
//
// Returns (nil, nil) when the next character cannot start a unit; the
// caller reports the appropriate malformed-operand error.
func (p *parser) parseAtom(depth int) (*Node, error) {
	if p.cur.AtEnd() {
		return nil, nil
	}
	c, _ := p.cur.At(0)
	switch c {
	case '(':
		return p.parseGroup(depth)
	case '[':
		return p.parseClass(depth)
	case '.':
		p.cur.Advance(1)
		return &Node{kind: KindAnyChar}, nil
	case '^':
		if depth+1 > p.maxNesting {
			return nil, p.fail(ErrNestingTooDeep)
		}
		p.cur.Advance(1)
		inner, err := p.parseAtom(depth + 1)
		if err != nil {
			return nil, err
		}
		if inner == nil {
			return nil, p.fail(ErrMalformedNegation)
		}
		return &Node{kind: KindNegation, children: []*Node{inner}}, nil
	case ')', ']', '|', '?', '*', '+':
		return nil, nil
	case '\\':
		return p.parseEscape()
	default:
		p.cur.Advance(1)
		return &Node{kind: KindLiteral, char: c}, nil
	}
}

// parseEscape parses a two-character escape at the cursor.
func (p *parser) parseEscape() (*Node, error) {
	if !p.cur.PeekWindow(2, func(w []byte) bool { return w[0] == '\\' }) {
		return nil, p.fail(ErrTrailingEscape)
	}
	e, _ := p.cur.At(1)
	p.cur.Advance(2)
	switch e {
	case 'l':
		return &Node{kind: KindLetterClass}, nil
	case 'd':
		return &Node{kind: KindDigitClass}, nil
	case 'w':
		return &Node{kind: KindWhitespaceClass}, nil
	default:
		return &Node{kind: KindLiteral, char: e}, nil
	}
}

// isReserved reports whether c terminates a literal run.
func isReserved(c byte) bool {
	switch c {
	case '(', ')', '[', ']', '|', '?', '*', '+', '.', '^':
		return true
	}
	return false
}

// parseRun consumes a maximal run of literal characters and escapes and
// wraps it in a sequence node.
//
// The run breaks before a character that is immediately followed by a
// postfix operator, so the operator binds to that one character alone:
// colou?r parses as the run "colo", an optional "u", and the run "r".
func (p *parser) parseRun() (*Node, error) {
	var run []*Node
	for !p.cur.AtEnd() {
		c, _ := p.cur.At(0)
		if isReserved(c) {
			break
		}

		var node *Node
		width := 1
		if c == '\\' {
			e, ok := p.cur.At(1)
			if !ok {
				return nil, p.fail(ErrTrailingEscape)
			}
			width = 2
			switch e {
			case 'l':
				node = &Node{kind: KindLetterClass}
			case 'd':
				node = &Node{kind: KindDigitClass}
			case 'w':
				node = &Node{kind: KindWhitespaceClass}
			default:
				node = &Node{kind: KindLiteral, char: e}
			}
		} else {
			node = &Node{kind: KindLiteral, char: c}
		}

		next, hasNext := p.cur.At(width)
		standalone := hasNext && isPostfix(next)
		if standalone && len(run) > 0 {
			// The next entity belongs to a postfix operator; close the
			// run before it.
			break
		}
		p.cur.Advance(width)
		run = append(run, node)
		if standalone {
			break
		}
	}
	return &Node{kind: KindSequence, children: run}, nil
}
