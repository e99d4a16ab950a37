package automaton

// This file is the package's public face: it exports the constructor and
// combinator names that the regexfa lowering engine (package regexfa)
// consumes as an external collaborator. The implementations all live in
// automata.go/operations.go/minimizationoperations.go unchanged; this is
// purely a naming seam so callers outside this package never reach for an
// unexported symbol.

// MakeChar returns an automaton accepting exactly the single code point c.
func MakeChar(c rune) (*Automaton, error) {
	return defaultAutomata.MakeChar(int32(c))
}

// MakeCharRange returns an automaton accepting any single code point in
// [from, to]. Returns the empty-language automaton if from > to; callers
// that must reject a reversed range (the regexfa AST builder) check that
// themselves before calling.
func MakeCharRange(from, to rune) (*Automaton, error) {
	return defaultAutomata.MakeCharRange(int32(from), int32(to))
}

// MakeAnyChar returns an automaton accepting any single code point.
func MakeAnyChar() (*Automaton, error) {
	return defaultAutomata.MakeAnyChar()
}

// MakeEmpty returns an automaton accepting no strings at all.
func MakeEmpty() *Automaton {
	return defaultAutomata.MakeEmpty()
}

// MakeEmptyString returns an automaton accepting only the empty string.
func MakeEmptyString() *Automaton {
	return defaultAutomata.MakeEmptyString()
}

// MakeString returns an automaton accepting exactly the literal string s.
func MakeString(s string) (*Automaton, error) {
	return defaultAutomata.MakeString(s)
}

// MakeAnyString returns an automaton accepting every string (Sigma*).
func MakeAnyString() (*Automaton, error) {
	return defaultAutomata.MakeAnyString()
}

// MakeInterval returns an automaton accepting the decimal string
// representations of every integer in [min, max], zero-padded to digits
// width when digits > 0.
func MakeInterval(min, max, digits int) (*Automaton, error) {
	return defaultAutomata.MakeDecimalInterval(min, max, digits)
}

// Union returns an automaton accepting the union of the languages of
// automatons.
func Union(automatons ...*Automaton) (*Automaton, error) {
	return union(automatons...)
}

// Concatenate returns an automaton accepting the concatenation of the
// languages of automatons, in order.
func Concatenate(automatons ...*Automaton) (*Automaton, error) {
	return concatenate(automatons...)
}

// Intersect returns an automaton accepting the intersection of a1 and a2.
func Intersect(a1, a2 *Automaton) (*Automaton, error) {
	return intersection(a1, a2)
}

// Complement returns an automaton accepting every string not accepted by a.
func Complement(a *Automaton, determinizeWorkLimit int) (*Automaton, error) {
	return complement(a, determinizeWorkLimit)
}

// Optional returns an automaton accepting the empty string in addition to
// a's language.
func Optional(a *Automaton) (*Automaton, error) {
	return optional(a)
}

// Repeat returns an automaton accepting zero or more repetitions of a's
// language (Kleene star).
func Repeat(a *Automaton) (*Automaton, error) {
	return repeat(a)
}

// RepeatMin returns an automaton accepting min or more repetitions of a's
// language.
func RepeatMin(a *Automaton, min int) (*Automaton, error) {
	return repeatCount(a, min)
}

// RepeatMinMax returns an automaton accepting between min and max
// (inclusive) repetitions of a's language. If max < min this forwards to
// repeatRange, which treats it as the empty language.
func RepeatMinMax(a *Automaton, min, max int) (*Automaton, error) {
	return repeatRange(a, min, max)
}

// Determinize determinizes a, subject to workLimit.
func Determinize(a *Automaton, workLimit int) (*Automaton, error) {
	return determinize(a, workLimit)
}

// Clone returns a deep copy of a, sharing no state with the original.
func Clone(a *Automaton) *Automaton {
	c := NewAutomaton()
	c.Copy(a)
	c.FinishState()
	return c
}
