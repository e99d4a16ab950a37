package regexfa

// allowMutate is the package-wide boolean ToAutomaton reads at entry to
// decide whether a named-automaton reference may be returned directly
// instead of being defensively cloned. This is NOT thread-safe: toggling
// it concurrently with a ToAutomaton call on another goroutine is
// unsupported. Prefer WithAllowMutate on a single call instead, which has
// the same effect without touching package state.
var allowMutate bool

// SetAllowMutate sets the global allow-mutate toggle and returns its
// previous value, so callers can restore it. Not thread-safe.
func SetAllowMutate(allow bool) bool {
	prev := allowMutate
	allowMutate = allow
	return prev
}
