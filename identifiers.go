package regexfa

// Identifiers collects every NamedAutomaton identifier occurring anywhere
// in n's tree into a fresh set.
func (n *Node) Identifiers() map[string]struct{} {
	ids := make(map[string]struct{})
	n.collectIdentifiers(ids)
	return ids
}

func (n *Node) collectIdentifiers(ids map[string]struct{}) {
	switch n.kind {
	case KindNamedAutomaton:
		ids[n.s] = struct{}{}
	case KindUnion, KindConcat, KindIntersection:
		n.l.collectIdentifiers(ids)
		n.r.collectIdentifiers(ids)
	case KindOptional, KindRepeat, KindRepeatMin, KindRepeatMinMax, KindComplement:
		n.l.collectIdentifiers(ids)
	}
}
