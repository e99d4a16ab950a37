package regexfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geange/regexfa/automaton"
)

func TestPrintUnion(t *testing.T) {
	r, err := New("a|b")
	require.NoError(t, err)
	assert.Equal(t, `(\a|\b)`, r.String())
}

func TestPrintCharRange(t *testing.T) {
	r, err := New("[a-z]")
	require.NoError(t, err)
	assert.Equal(t, `[\a-\z]`, r.String())
}

func TestPrintLeaves(t *testing.T) {
	assert.Equal(t, ".", NewAnyChar().String())
	assert.Equal(t, "#", NewEmpty().String())
	assert.Equal(t, "@", NewAnyString().String())
	assert.Equal(t, "<foo>", NewNamedAutomaton("foo").String())
	assert.Equal(t, `"abc"`, NewString("abc").String())
}

func TestPrintInterval(t *testing.T) {
	assert.Equal(t, "<05-12>", NewInterval(5, 12, 2).String())
	assert.Equal(t, "<5-12>", NewInterval(5, 12, 0).String())
}

func TestPrintRepetition(t *testing.T) {
	a := NewChar('a')
	assert.Equal(t, `(\a)?`, NewOptional(a).String())
	assert.Equal(t, `(\a)*`, NewRepeat(a).String())
	assert.Equal(t, `(\a){2,}`, NewRepeatMin(a, 2).String())
	assert.Equal(t, `(\a){2,5}`, NewRepeatMinMax(a, 2, 5).String())
	assert.Equal(t, `~(\a)`, NewComplement(a).String())
}

// TestPrintParseRoundTrip exercises P3: for every AST A,
// parse(print(A), All).lower() accepts the same language as A.lower().
func TestPrintParseRoundTrip(t *testing.T) {
	patterns := []string{
		"a|b", "ab*c", "[a-z]", "[^abc]", "a{2,5}", "a+", "a?",
		`"hello"`, "<1-99>", "~a", "a&b", "(a|b)c*",
	}

	for _, pattern := range patterns {
		pattern := pattern
		t.Run(pattern, func(t *testing.T) {
			r1, err := New(pattern)
			require.NoError(t, err)

			printed := r1.String()
			r2, err := New(printed, WithSyntaxFlags(All))
			require.NoErrorf(t, err, "reparsing printed form %q", printed)

			equivalentLanguages(t, r1, r2)
		})
	}
}

// equivalentLanguages asserts that two Regexps accept the same set of
// strings among a small probe corpus, using automaton.Run as the
// language-equivalence oracle. Matching is outside this module's public
// surface, but automaton.Run is exactly the tool needed to make this
// property testable without reimplementing a matcher.
func equivalentLanguages(t *testing.T, r1, r2 *Regexp) {
	t.Helper()
	a1, err := r1.ToAutomaton()
	require.NoError(t, err)
	a2, err := r2.ToAutomaton()
	require.NoError(t, err)

	probes := []string{"", "a", "b", "c", "ab", "abc", "aab", "1", "99", "100", "xyz"}
	for _, s := range probes {
		assert.Equalf(t, automaton.Run(a1, s), automaton.Run(a2, s), "probe %q", s)
	}
}
