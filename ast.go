package regexfa

import "strings"

// Kind tags the sixteen variants a Node can take. Matching on Kind
// exhaustively, rather than a method-per-variant dispatch, keeps every
// case of a traversal (lowering, printing, identifier collection) in one
// place per operation instead of scattered across sixteen types.
type Kind int

const (
	KindUnion Kind = iota
	KindConcat
	KindIntersection
	KindOptional
	KindRepeat
	KindRepeatMin
	KindRepeatMinMax
	KindComplement
	KindChar
	KindCharRange
	KindAnyChar
	KindEmpty
	KindStr
	KindAnyStr
	KindNamedAutomaton
	KindInterval
)

// Node is a tagged AST value: every parsed construct is one of the sixteen
// Kind variants above, each carrying only the fields its variant needs.
// Nodes are built exclusively through the New* constructors in this file,
// which apply local normalization (see NewConcat), and are immutable
// once built.
type Node struct {
	kind Kind

	l, r *Node // Union, Concat, Intersection: both children. Unary nodes: l only.

	s string // Str, NamedAutomaton

	c rune // Char

	from, to rune // CharRange

	min, max, digits int // RepeatMin, RepeatMinMax, Interval
}

// Kind reports which of the sixteen variants n is.
func (n *Node) Kind() Kind { return n.kind }

// L returns the left (or sole) child of a binary or unary node. Nil for
// leaf variants.
func (n *Node) L() *Node { return n.l }

// R returns the right child of a binary node. Nil otherwise.
func (n *Node) R() *Node { return n.r }

// Str returns the literal payload of a Str or NamedAutomaton node.
func (n *Node) Str() string { return n.s }

// Char returns the code point of a Char node.
func (n *Node) Char() rune { return n.c }

// Range returns the inclusive bounds of a CharRange node.
func (n *Node) Range() (from, to rune) { return n.from, n.to }

// Bounds returns (min, max) for RepeatMin (max is unused and reads 0) and
// RepeatMinMax nodes, and (min, max) for Interval nodes alongside Digits.
func (n *Node) Bounds() (min, max int) { return n.min, n.max }

// Digits returns the zero-padding width of an Interval node (0 means no
// padding).
func (n *Node) Digits() int { return n.digits }

func newLeaf(kind Kind) *Node {
	return &Node{kind: kind}
}

func newUnary(kind Kind, e *Node) *Node {
	return &Node{kind: kind, l: e}
}

func newBinary(kind Kind, l, r *Node) *Node {
	return &Node{kind: kind, l: l, r: r}
}

// NewChar builds a Char leaf for code point c.
func NewChar(c rune) *Node {
	return &Node{kind: KindChar, c: c}
}

// NewAnyChar builds the '.' leaf.
func NewAnyChar() *Node {
	return newLeaf(KindAnyChar)
}

// NewEmpty builds the '#' leaf (accepts no strings).
func NewEmpty() *Node {
	return newLeaf(KindEmpty)
}

// NewAnyString builds the '@' leaf (accepts every string).
func NewAnyString() *Node {
	return newLeaf(KindAnyStr)
}

// NewNamedAutomaton builds a '<s>' leaf referencing an externally
// resolved automaton.
func NewNamedAutomaton(s string) *Node {
	return &Node{kind: KindNamedAutomaton, s: s}
}

// NewString wraps a literal string leaf.
func NewString(s string) *Node {
	return &Node{kind: KindStr, s: s}
}

// NewCharRange builds an inclusive [from, to] range leaf. Returns
// RangeError if from > to.
func NewCharRange(from, to rune) (*Node, error) {
	if from > to {
		return nil, &RangeError{From: from, To: to}
	}
	return &Node{kind: KindCharRange, from: from, to: to}, nil
}

// NewInterval wraps a numeric interval leaf. The caller (the parser, or a
// programmatic builder) is responsible for having already ordered min/max
// and computed digits; NewInterval does not renormalize.
func NewInterval(min, max, digits int) *Node {
	return &Node{kind: KindInterval, min: min, max: max, digits: digits}
}

// NewOptional wraps e in 'E?'.
func NewOptional(e *Node) *Node {
	return newUnary(KindOptional, e)
}

// NewRepeat wraps e in 'E*'.
func NewRepeat(e *Node) *Node {
	return newUnary(KindRepeat, e)
}

// NewRepeatMin wraps e in 'E{min,}'.
func NewRepeatMin(e *Node, min int) *Node {
	return &Node{kind: KindRepeatMin, l: e, min: min}
}

// NewRepeatMinMax wraps e in 'E{min,max}'. max >= min is not enforced
// here; a reversed range is forwarded to the automaton library, which
// treats it as the empty language.
func NewRepeatMinMax(e *Node, min, max int) *Node {
	return &Node{kind: KindRepeatMinMax, l: e, min: min, max: max}
}

// NewComplement wraps e in '~E'.
func NewComplement(e *Node) *Node {
	return newUnary(KindComplement, e)
}

// NewUnion wraps l and r in 'L|R' without normalization.
func NewUnion(l, r *Node) *Node {
	return newBinary(KindUnion, l, r)
}

// NewIntersection wraps l and r in 'L&R' without normalization.
func NewIntersection(l, r *Node) *Node {
	return newBinary(KindIntersection, l, r)
}

// NewConcat wraps l and r in 'LR', merging adjacent literal runs so the
// tree stays shallow and the printer emits fused string literals instead
// of runs of single escaped characters.
func NewConcat(l, r *Node) *Node {
	if isLiteral(l) && isLiteral(r) {
		return NewString(literalText(l) + literalText(r))
	}

	var nl, nr *Node
	switch {
	case l.kind == KindConcat && isLiteral(l.r) && isLiteral(r):
		nl = l.l
		nr = NewString(literalText(l.r) + literalText(r))
	case isLiteral(l) && r.kind == KindConcat && isLiteral(r.l):
		nl = NewString(literalText(l) + literalText(r.l))
		nr = r.r
	default:
		nl = l
		nr = r
	}
	return newBinary(KindConcat, nl, nr)
}

func isLiteral(n *Node) bool {
	return n.kind == KindChar || n.kind == KindStr
}

func literalText(n *Node) string {
	if n.kind == KindStr {
		return n.s
	}
	var b strings.Builder
	b.WriteRune(n.c)
	return b.String()
}
