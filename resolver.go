package regexfa

import "github.com/geange/regexfa/automaton"

// Resolver resolves a '<identifier>' reference to the automaton it
// stands for, returning an error if the identifier is unknown or
// otherwise unavailable.
type Resolver interface {
	Resolve(identifier string) (*automaton.Automaton, error)
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(identifier string) (*automaton.Automaton, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(identifier string) (*automaton.Automaton, error) {
	return f(identifier)
}

// Bindings is a constant identifier-to-automaton mapping, the first of
// the two resolver sources tried by the lowering engine.
type Bindings map[string]*automaton.Automaton
