package regexfa

import (
	"strconv"
	"strings"
)

// parser is the recursive-descent cursor over a regex source string.
type parser struct {
	src   []rune
	pos   int
	flags Flags
}

func (p *parser) more() bool {
	return p.pos < len(p.src)
}

func (p *parser) peek(s string) bool {
	return p.more() && strings.ContainsRune(s, p.src[p.pos])
}

func (p *parser) match(c rune) bool {
	if p.pos >= len(p.src) || p.src[p.pos] != c {
		return false
	}
	p.pos++
	return true
}

func (p *parser) next() rune {
	c := p.src[p.pos]
	p.pos++
	return c
}

func (p *parser) check(want Flags) bool {
	return p.flags.Has(want)
}

// parse runs the full grammar over src under flags and requires the
// cursor to reach end-of-input once parsing completes. The empty string
// is handled by the caller (New), which returns Str("") without invoking
// the parser at all.
func parse(src string, flags Flags) (*Node, error) {
	p := &parser{src: []rune(src), flags: flags}
	e, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.src) {
		return nil, syntaxErrorf(p.pos, "end-of-string expected at position %d", p.pos)
	}
	return e, nil
}

// union ::= inter ('|' union)?
func (p *parser) parseUnion() (*Node, error) {
	e, err := p.parseInter()
	if err != nil {
		return nil, err
	}
	if p.match('|') {
		e2, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		return NewUnion(e, e2), nil
	}
	return e, nil
}

// inter ::= concat ('&' inter)?  -- only if Intersection flag set
func (p *parser) parseInter() (*Node, error) {
	e, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	if p.check(Intersection) && p.match('&') {
		e2, err := p.parseInter()
		if err != nil {
			return nil, err
		}
		return NewIntersection(e, e2), nil
	}
	return e, nil
}

// concat ::= repeat concat?
//
// Another term follows iff input remains, the next code point is not ')'
// or '|', and, when Intersection is enabled, it is not '&' either.
func (p *parser) parseConcat() (*Node, error) {
	e, err := p.parseRepeat()
	if err != nil {
		return nil, err
	}
	if p.more() && !p.peek(")|") && (!p.check(Intersection) || !p.peek("&")) {
		e2, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		return NewConcat(e, e2), nil
	}
	return e, nil
}

// repeat ::= compl ('?' | '*' | '+' | '{' n (',' m?)? '}')*
func (p *parser) parseRepeat() (*Node, error) {
	e, err := p.parseCompl()
	if err != nil {
		return nil, err
	}

	for p.peek("?*+{") {
		switch {
		case p.match('?'):
			e = NewOptional(e)
		case p.match('*'):
			e = NewRepeat(e)
		case p.match('+'):
			e = NewRepeatMin(e, 1)
		case p.match('{'):
			n, err := p.parseDecimal()
			if err != nil {
				return nil, err
			}
			if p.match(',') {
				start := p.pos
				for p.peek("0123456789") {
					p.next()
				}
				if start == p.pos {
					if !p.match('}') {
						return nil, syntaxErrorf(p.pos, "expected '}' at position %d", p.pos)
					}
					e = NewRepeatMin(e, n)
				} else {
					m, err := p.parseIntFrom(start, p.pos)
					if err != nil {
						return nil, err
					}
					if !p.match('}') {
						return nil, syntaxErrorf(p.pos, "expected '}' at position %d", p.pos)
					}
					e = NewRepeatMinMax(e, n, m)
				}
			} else {
				if !p.match('}') {
					return nil, syntaxErrorf(p.pos, "expected '}' at position %d", p.pos)
				}
				e = NewRepeatMinMax(e, n, n)
			}
		}
	}

	return e, nil
}

// parseDecimal reads a run of ASCII digits at the cursor and parses it as
// a non-negative 32-bit integer, reporting SyntaxError for an empty run
// or for overflow.
func (p *parser) parseDecimal() (int, error) {
	start := p.pos
	for p.peek("0123456789") {
		p.next()
	}
	if start == p.pos {
		return 0, syntaxErrorf(p.pos, "integer expected at position %d", p.pos)
	}
	return p.parseIntFrom(start, p.pos)
}

func (p *parser) parseIntFrom(start, end int) (int, error) {
	return parseDecimalRunes(p.src[start:end], end)
}

func parseDecimalRunes(digits []rune, errPos int) (int, error) {
	n, err := strconv.ParseInt(string(digits), 10, 32)
	if err != nil {
		return 0, syntaxErrorf(errPos, "integer too large at position %d", errPos)
	}
	return int(n), nil
}

// compl ::= '~' compl | charclass  -- only if Complement flag set
func (p *parser) parseCompl() (*Node, error) {
	if p.check(Complement) && p.match('~') {
		e, err := p.parseCompl()
		if err != nil {
			return nil, err
		}
		return NewComplement(e), nil
	}
	return p.parseCharClass()
}

// charclass ::= '[' '^'? charclasses ']' | simple
func (p *parser) parseCharClass() (*Node, error) {
	if p.match('[') {
		negate := p.match('^')
		e, err := p.parseCharClasses()
		if err != nil {
			return nil, err
		}
		if negate {
			e = NewIntersection(NewAnyChar(), NewComplement(e))
		}
		if !p.match(']') {
			return nil, syntaxErrorf(p.pos, "expected ']' at position %d", p.pos)
		}
		return e, nil
	}
	return p.parseSimple()
}

// charclasses ::= charclass_item charclass_item*  -- implicit union,
// terminated by ']'
func (p *parser) parseCharClasses() (*Node, error) {
	e, err := p.parseCharClassItem()
	if err != nil {
		return nil, err
	}
	for p.more() && !p.peek("]") {
		e2, err := p.parseCharClassItem()
		if err != nil {
			return nil, err
		}
		e = NewUnion(e, e2)
	}
	return e, nil
}

// charclass_item ::= charexp ('-' charexp)?
func (p *parser) parseCharClassItem() (*Node, error) {
	c, err := p.parseCharExp()
	if err != nil {
		return nil, err
	}
	if p.match('-') {
		c2, err := p.parseCharExp()
		if err != nil {
			return nil, err
		}
		return NewCharRange(c, c2)
	}
	return NewChar(c), nil
}

// simple matches '.', '#', '@', quoted strings, parenthesized groups,
// '<identifier>'/'<min-max>', and falls through to a single escaped or
// literal character.
func (p *parser) parseSimple() (*Node, error) {
	switch {
	case p.match('.'):
		return NewAnyChar(), nil
	case p.check(Empty) && p.match('#'):
		return NewEmpty(), nil
	case p.check(AnyString) && p.match('@'):
		return NewAnyString(), nil
	case p.match('"'):
		return p.parseQuoted()
	case p.match('('):
		if p.match(')') {
			return NewString(""), nil
		}
		e, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		if !p.match(')') {
			return nil, syntaxErrorf(p.pos, "expected ')' at position %d", p.pos)
		}
		return e, nil
	case (p.check(AutomatonRef) || p.check(Interval)) && p.match('<'):
		return p.parseAngle()
	}

	c, err := p.parseCharExp()
	if err != nil {
		return nil, err
	}
	return NewChar(c), nil
}

func (p *parser) parseQuoted() (*Node, error) {
	start := p.pos
	for p.more() && !p.peek("\"") {
		p.next()
	}
	if !p.match('"') {
		return nil, syntaxErrorf(p.pos, `expected '"' at position %d`, p.pos)
	}
	return NewString(string(p.src[start : p.pos-1])), nil
}

// parseAngle parses the contents of '<...>': a bare identifier
// (NamedAutomaton, requires AutomatonRef) or exactly one interior '-'
// (Interval, requires Interval).
func (p *parser) parseAngle() (*Node, error) {
	start := p.pos
	for p.more() && !p.peek(">") {
		p.next()
	}
	if !p.match('>') {
		return nil, syntaxErrorf(p.pos, "expected '>' at position %d", p.pos)
	}
	s := string(p.src[start : p.pos-1])
	dash := strings.IndexRune(s, '-')

	if dash == -1 {
		if !p.check(AutomatonRef) {
			return nil, syntaxErrorf(p.pos-1, "interval syntax error at position %d", p.pos-1)
		}
		return NewNamedAutomaton(s), nil
	}

	if !p.check(Interval) {
		return nil, syntaxErrorf(p.pos-1, "illegal identifier at position %d", p.pos-1)
	}
	if dash == 0 || dash == len(s)-1 || dash != strings.LastIndex(s, "-") {
		return nil, syntaxErrorf(p.pos-1, "interval syntax error at position %d", p.pos-1)
	}

	smin, smax := s[:dash], s[dash+1:]
	imin, err := parseDecimalRunes([]rune(smin), p.pos-1)
	if err != nil {
		return nil, err
	}
	imax, err := parseDecimalRunes([]rune(smax), p.pos-1)
	if err != nil {
		return nil, err
	}
	digits := 0
	if len(smin) == len(smax) {
		digits = len(smin)
	}
	if imin > imax {
		imin, imax = imax, imin
	}
	return NewInterval(imin, imax, digits), nil
}

// charexp ::= '\' <any> | <any non-reserved>
//
// The backslash is a raw escape: it suppresses whatever syntactic meaning
// the following code point would otherwise have and is never itself
// interpreted (no \n, \t, \d, ...).
func (p *parser) parseCharExp() (rune, error) {
	p.match('\\')
	if !p.more() {
		return 0, syntaxErrorf(p.pos, "unexpected end-of-string")
	}
	return p.next(), nil
}
