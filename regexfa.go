// Package regexfa compiles an extended regular-expression surface syntax
// into an abstract syntax tree and lowers that tree to a finite-state
// automaton built by package automaton.
package regexfa

import (
	"fmt"

	"github.com/geange/regexfa/automaton"
)

// Regexp is a parsed, immutable regular expression: the AST root plus
// the flags it was parsed under.
type Regexp struct {
	root   *Node
	flags  Flags
	source string
}

type parseOptions struct {
	flags Flags
}

// Option configures New.
type Option func(*parseOptions)

// WithSyntaxFlags selects which optional productions the parse permits.
// Omitting it is equivalent to passing All.
func WithSyntaxFlags(flags Flags) Option {
	return func(o *parseOptions) { o.flags = flags }
}

// New parses source under the given options (default: All) into a
// Regexp, or returns a *SyntaxError; a flag bit outside All|CaseInsensitive
// is rejected with a plain error. An empty source string parses to
// Str("") without invoking the parser.
func New(source string, opts ...Option) (*Regexp, error) {
	o := &parseOptions{flags: All}
	for _, fn := range opts {
		fn(o)
	}
	if o.flags&^(All|CaseInsensitive) != 0 {
		return nil, fmt.Errorf("illegal syntax flag")
	}

	var root *Node
	if source == "" {
		root = NewString("")
	} else {
		r, err := parse(source, o.flags)
		if err != nil {
			return nil, err
		}
		root = r
	}

	return &Regexp{root: root, flags: o.flags, source: source}, nil
}

// MustNew is New, panicking on error. Intended for call sites (CLI flag
// defaults, tests, package-level pattern tables) that already know the
// pattern is well-formed.
func MustNew(source string, opts ...Option) *Regexp {
	r, err := New(source, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Root returns the parsed AST root.
func (r *Regexp) Root() *Node { return r.root }

// Flags returns the syntax flags r was parsed with.
func (r *Regexp) Flags() Flags { return r.flags }

// String renders r back to canonical surface syntax.
func (r *Regexp) String() string { return r.root.String() }

// Identifiers returns every '<identifier>' referenced anywhere in r.
func (r *Regexp) Identifiers() map[string]struct{} { return r.root.Identifiers() }

// ToAutomatonOption configures ToAutomaton.
type ToAutomatonOption func(*lowerCtx)

// WithBindings supplies the constant identifier-to-automaton mapping
// consulted before any Resolver.
func WithBindings(b Bindings) ToAutomatonOption {
	return func(c *lowerCtx) { c.bindings = b }
}

// WithResolver supplies the fallback single-method provider consulted
// when an identifier is absent from any supplied Bindings.
func WithResolver(r Resolver) ToAutomatonOption {
	return func(c *lowerCtx) { c.resolver = r }
}

// WithWorkLimit overrides the determinize work limit the automaton
// library's minimize/complement/bounded-repeat guards consume. Defaults
// to automaton.DEFAULT_DETERMINIZE_WORK_LIMIT.
func WithWorkLimit(limit int) ToAutomatonOption {
	return func(c *lowerCtx) { c.workLimit = limit }
}

// WithAllowMutate opts a single ToAutomaton call into the same
// shared-reference behavior as the package-wide SetAllowMutate, without
// touching package state.
func WithAllowMutate(allow bool) ToAutomatonOption {
	return func(c *lowerCtx) { c.allowMutate = allow }
}

// ToAutomaton lowers r to an automaton. With no options, no named-
// automaton references can be resolved, so a pattern containing one
// fails with ResolverError.
func (r *Regexp) ToAutomaton(opts ...ToAutomatonOption) (*automaton.Automaton, error) {
	ctx := &lowerCtx{
		workLimit:       automaton.DEFAULT_DETERMINIZE_WORK_LIMIT,
		caseInsensitive: r.flags.Has(CaseInsensitive),
		allowMutate:     allowMutate,
	}
	for _, fn := range opts {
		fn(ctx)
	}
	return r.root.lower(ctx)
}
