package regexfa

import "fmt"

// SyntaxError is the parser's single error kind: every structural defect
// the recursive-descent parser detects (unbalanced brackets, a missing
// terminator, an out-of-range interval, trailing input, ...) surfaces as
// one of these, carrying the source position at which the defect was
// found.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Msg
}

func syntaxErrorf(pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// RangeError is raised by NewCharRange (the make_char_range builder) when
// from > to.
type RangeError struct {
	From, To rune
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range: from (%d) cannot be > to (%d)", e.From, e.To)
}

// ResolverError is raised when lowering a NamedAutomaton leaf fails: the
// identifier was absent from any supplied binding map and either no
// Resolver was supplied or the Resolver itself failed. Cause is nil in
// the plain-absence case and wraps the Resolver's own error otherwise.
type ResolverError struct {
	Identifier string
	Cause      error
}

func (e *ResolverError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%q: %s", e.Identifier, e.Cause)
	}
	return fmt.Sprintf("%q not found", e.Identifier)
}

func (e *ResolverError) Unwrap() error {
	return e.Cause
}
