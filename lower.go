package regexfa

import (
	"fmt"
	"unicode"

	"github.com/geange/regexfa/automaton"
)

// lowerCtx carries everything a lowering pass needs at every recursive
// step: the two resolver sources (bindings and a fallback Resolver), the
// determinize work limit the automaton library's minimize/complement/
// repeat-count guards consume, whether ASCII case-folding is active, and
// the per-call allow-mutate opt-in (the safer alternative to the package
// global in mutate.go).
type lowerCtx struct {
	bindings        Bindings
	resolver        Resolver
	workLimit       int
	caseInsensitive bool
	allowMutate     bool
}

// lower translates n to an automaton by dispatching on n.Kind and calling
// package automaton's exported combinators. Every non-leaf case passes its
// result through automaton.Minimize before returning it; leaves are
// returned as the automaton constructors build them (an unpadded interval
// leaf, for one, is not deterministic).
func (n *Node) lower(ctx *lowerCtx) (*automaton.Automaton, error) {
	switch n.kind {
	case KindUnion:
		list, err := n.flatten(KindUnion, ctx)
		if err != nil {
			return nil, err
		}
		a, err := automaton.Union(list...)
		if err != nil {
			return nil, err
		}
		return automaton.Minimize(a, ctx.workLimit)

	case KindConcat:
		list, err := n.flatten(KindConcat, ctx)
		if err != nil {
			return nil, err
		}
		a, err := automaton.Concatenate(list...)
		if err != nil {
			return nil, err
		}
		return automaton.Minimize(a, ctx.workLimit)

	case KindIntersection:
		a1, err := n.l.lower(ctx)
		if err != nil {
			return nil, err
		}
		a2, err := n.r.lower(ctx)
		if err != nil {
			return nil, err
		}
		a, err := automaton.Intersect(a1, a2)
		if err != nil {
			return nil, err
		}
		return automaton.Minimize(a, ctx.workLimit)

	case KindOptional:
		a1, err := n.l.lower(ctx)
		if err != nil {
			return nil, err
		}
		a, err := automaton.Optional(a1)
		if err != nil {
			return nil, err
		}
		return automaton.Minimize(a, ctx.workLimit)

	case KindRepeat:
		a1, err := n.l.lower(ctx)
		if err != nil {
			return nil, err
		}
		a, err := automaton.Repeat(a1)
		if err != nil {
			return nil, err
		}
		return automaton.Minimize(a, ctx.workLimit)

	case KindRepeatMin:
		a1, err := n.l.lower(ctx)
		if err != nil {
			return nil, err
		}
		if work := (a1.GetNumStates() - 1) * n.min; work > ctx.workLimit {
			return nil, fmt.Errorf("too complex to determinize: %d", work)
		}
		a, err := automaton.RepeatMin(a1, n.min)
		if err != nil {
			return nil, err
		}
		return automaton.Minimize(a, ctx.workLimit)

	case KindRepeatMinMax:
		a1, err := n.l.lower(ctx)
		if err != nil {
			return nil, err
		}
		if work := (a1.GetNumStates() - 1) * n.max; work > ctx.workLimit {
			return nil, fmt.Errorf("too complex to determinize: %d", work)
		}
		a, err := automaton.RepeatMinMax(a1, n.min, n.max)
		if err != nil {
			return nil, err
		}
		return automaton.Minimize(a, ctx.workLimit)

	case KindComplement:
		a1, err := n.l.lower(ctx)
		if err != nil {
			return nil, err
		}
		a, err := automaton.Complement(a1, ctx.workLimit)
		if err != nil {
			return nil, err
		}
		return automaton.Minimize(a, ctx.workLimit)

	case KindChar:
		if ctx.caseInsensitive {
			return ctx.lowerCaseInsensitiveChar(n.c)
		}
		return automaton.MakeChar(n.c)

	case KindCharRange:
		return automaton.MakeCharRange(n.from, n.to)

	case KindAnyChar:
		return automaton.MakeAnyChar()

	case KindEmpty:
		return automaton.MakeEmpty(), nil

	case KindStr:
		if ctx.caseInsensitive {
			return ctx.lowerCaseInsensitiveString(n.s)
		}
		return automaton.MakeString(n.s)

	case KindAnyStr:
		return automaton.MakeAnyString()

	case KindNamedAutomaton:
		a, err := ctx.resolve(n.s)
		if err != nil {
			return nil, err
		}
		// A caller mutating the bound or resolved automaton after this
		// call returns must never corrupt an already-lowered result,
		// so every reference is cloned by default. allowMutate lets a
		// caller waive that isolation and take the resolved automaton
		// directly, skipping the copy.
		if ctx.allowMutate {
			return a, nil
		}
		return automaton.Clone(a), nil

	case KindInterval:
		return automaton.MakeInterval(n.min, n.max, n.digits)
	}

	panic(fmt.Sprintf("regexfa: unreachable node kind %d", n.kind))
}

// flatten walks n's left and right children, collecting every descendant
// leaf that is not itself of kind (the union/concat spine), lowering each
// and appending in left-to-right order. Feeding the whole run to the
// variadic union/concatenate combinators at once avoids re-minimizing a
// left-leaning chain one node at a time.
func (n *Node) flatten(kind Kind, ctx *lowerCtx) ([]*automaton.Automaton, error) {
	var list []*automaton.Automaton
	var walk func(*Node) error
	walk = func(e *Node) error {
		if e.kind == kind {
			if err := walk(e.l); err != nil {
				return err
			}
			return walk(e.r)
		}
		a, err := e.lower(ctx)
		if err != nil {
			return err
		}
		list = append(list, a)
		return nil
	}
	if err := walk(n.l); err != nil {
		return nil, err
	}
	if err := walk(n.r); err != nil {
		return nil, err
	}
	return list, nil
}

// resolve consults bindings first, then resolver. A resolver failure is
// wrapped as ResolverError carrying the identifier; absence from both
// sources is also a ResolverError, with a nil Cause.
func (ctx *lowerCtx) resolve(identifier string) (*automaton.Automaton, error) {
	if ctx.bindings != nil {
		if a, ok := ctx.bindings[identifier]; ok {
			return a, nil
		}
	}
	if ctx.resolver != nil {
		a, err := ctx.resolver.Resolve(identifier)
		if err != nil {
			return nil, &ResolverError{Identifier: identifier, Cause: err}
		}
		if a != nil {
			return a, nil
		}
	}
	return nil, &ResolverError{Identifier: identifier}
}

// lowerCaseInsensitiveChar folds c to accept both ASCII cases, whether c
// itself is lowercase or uppercase, so a literal of either case matches
// both.
func (ctx *lowerCtx) lowerCaseInsensitiveChar(c rune) (*automaton.Automaton, error) {
	case1, err := automaton.MakeChar(c)
	if err != nil {
		return nil, err
	}
	if c > 128 {
		// Folding is an ASCII-only courtesy; non-ASCII code points are
		// left as a single-case automaton.
		return case1, nil
	}

	alt := c
	switch {
	case unicode.IsLower(c):
		alt = unicode.ToUpper(c)
	case unicode.IsUpper(c):
		alt = unicode.ToLower(c)
	}
	if alt == c {
		return case1, nil
	}

	case2, err := automaton.MakeChar(alt)
	if err != nil {
		return nil, err
	}
	u, err := automaton.Union(case1, case2)
	if err != nil {
		return nil, err
	}
	return automaton.Minimize(u, ctx.workLimit)
}

// lowerCaseInsensitiveString folds every code point of s independently
// and concatenates the results.
func (ctx *lowerCtx) lowerCaseInsensitiveString(s string) (*automaton.Automaton, error) {
	list := make([]*automaton.Automaton, 0, len(s))
	for _, c := range s {
		a, err := ctx.lowerCaseInsensitiveChar(c)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	a, err := automaton.Concatenate(list...)
	if err != nil {
		return nil, err
	}
	return automaton.Minimize(a, ctx.workLimit)
}
