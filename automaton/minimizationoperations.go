package automaton

// Minimize
// Determinizes the given automaton; an automaton whose initial state is
// non-accepting and has no transitions becomes an automaton with no states.
// No state-merging (Hopcroft) pass is run, so the result is deterministic but
// not necessarily minimal.
func Minimize(a *Automaton, determinizeWorkLimit int) (*Automaton, error) {
	if a.GetNumStates() == 0 || (a.IsAccept(0) == false && a.GetNumTransitionsWithState(0) == 0) {
		// Fastmatch for common case
		return NewAutomaton(), nil
	}

	// TODO: fix it
	return determinize(a, determinizeWorkLimit)
}

type IntPair struct {
	n1 int
	n2 int
}

type StateList struct {
}

type StateListNode struct {
}
