package regexfa

// Flags is a bitmask selecting which optional surface productions a parse
// permits. Passed by value at construction and immutable for the
// lifetime of a parse.
type Flags uint16

const (
	// Intersection enables the 'L & R' production.
	Intersection Flags = 1 << iota
	// Complement enables the '~E' production.
	Complement
	// Empty enables the '#' (empty language) production.
	Empty
	// AnyString enables the '@' (Sigma*) production.
	AnyString
	// AutomatonRef enables the '<identifier>' named-automaton production.
	AutomatonRef
	// Interval enables the '<min-max>' numeric interval production.
	Interval
	// CaseInsensitive folds Char and Str leaves to accept both ASCII
	// cases. It has no surface syntax of its own; it only affects
	// lowering.
	CaseInsensitive
)

// All enables every optional production. It does not include
// CaseInsensitive, which takes effect only when passed explicitly.
const All = Intersection | Complement | Empty | AnyString | AutomatonRef | Interval

// None enables no optional production: only union, concatenation, the
// four repetition operators, character classes, '.', quoted strings and
// parenthesized grouping are available.
const None Flags = 0

// Has reports whether every bit set in want is also set in f.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}
