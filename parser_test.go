package regexfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmptyInput(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)
	assert.Equal(t, KindStr, r.Root().Kind())
	assert.Equal(t, "", r.Root().Str())
}

func TestParseEmptyGroup(t *testing.T) {
	r, err := New("()")
	require.NoError(t, err)
	assert.Equal(t, KindStr, r.Root().Kind())
	assert.Equal(t, "", r.Root().Str())
}

func TestParseUnion(t *testing.T) {
	r, err := New("a|b")
	require.NoError(t, err)
	assert.Equal(t, `(\a|\b)`, r.String())
}

func TestParseConcatRepeat(t *testing.T) {
	r, err := New("ab*c")
	require.NoError(t, err)
	root := r.Root()
	require.Equal(t, KindConcat, root.Kind())
	assert.Equal(t, KindChar, root.L().Kind())
	assert.Equal(t, 'a', root.L().Char())
	require.Equal(t, KindConcat, root.R().Kind())
	assert.Equal(t, KindRepeat, root.R().L().Kind())
	assert.Equal(t, 'c', root.R().R().Char())
}

func TestParseRepetitionOperators(t *testing.T) {
	t.Run("{n} is RepeatMinMax(n,n)", func(t *testing.T) {
		r, err := New("a{3}")
		require.NoError(t, err)
		require.Equal(t, KindRepeatMinMax, r.Root().Kind())
		min, max := r.Root().Bounds()
		assert.Equal(t, 3, min)
		assert.Equal(t, 3, max)
	})

	t.Run("{n,} is RepeatMin(n)", func(t *testing.T) {
		r, err := New("a{2,}")
		require.NoError(t, err)
		require.Equal(t, KindRepeatMin, r.Root().Kind())
		min, _ := r.Root().Bounds()
		assert.Equal(t, 2, min)
	})

	t.Run("{n,m} is RepeatMinMax(n,m)", func(t *testing.T) {
		r, err := New("a{2,5}")
		require.NoError(t, err)
		require.Equal(t, KindRepeatMinMax, r.Root().Kind())
		min, max := r.Root().Bounds()
		assert.Equal(t, 2, min)
		assert.Equal(t, 5, max)
	})

	t.Run("operators apply left-to-right in a loop", func(t *testing.T) {
		r, err := New("a**?")
		require.NoError(t, err)
		require.Equal(t, KindOptional, r.Root().Kind())
		require.Equal(t, KindRepeat, r.Root().L().Kind())
	})

	t.Run("missing '}' is a SyntaxError", func(t *testing.T) {
		_, err := New("a{3")
		require.Error(t, err)
		var synErr *SyntaxError
		require.ErrorAs(t, err, &synErr)
	})
}

func TestParseCharClass(t *testing.T) {
	t.Run("range", func(t *testing.T) {
		r, err := New("[a-z]")
		require.NoError(t, err)
		require.Equal(t, KindCharRange, r.Root().Kind())
	})

	t.Run("implicit union of items", func(t *testing.T) {
		r, err := New("[abc]")
		require.NoError(t, err)
		assert.Equal(t, KindUnion, r.Root().Kind())
	})

	t.Run("negation lowers to AnyChar & ~inner", func(t *testing.T) {
		r, err := New("[^a]")
		require.NoError(t, err)
		require.Equal(t, KindIntersection, r.Root().Kind())
		assert.Equal(t, KindAnyChar, r.Root().L().Kind())
		assert.Equal(t, KindComplement, r.Root().R().Kind())
	})

	t.Run("missing ']' is a SyntaxError", func(t *testing.T) {
		_, err := New("[abc")
		require.Error(t, err)
	})
}

func TestParseQuotedString(t *testing.T) {
	r, err := New(`"a|b*"`)
	require.NoError(t, err)
	require.Equal(t, KindStr, r.Root().Kind())
	assert.Equal(t, "a|b*", r.Root().Str())
}

func TestParseNamedAutomatonAndInterval(t *testing.T) {
	t.Run("named automaton", func(t *testing.T) {
		r, err := New("<foo>")
		require.NoError(t, err)
		require.Equal(t, KindNamedAutomaton, r.Root().Kind())
		assert.Equal(t, "foo", r.Root().Str())
	})

	t.Run("interval normalizes reversed bounds and computes digits", func(t *testing.T) {
		r, err := New("<12-5>")
		require.NoError(t, err)
		require.Equal(t, KindInterval, r.Root().Kind())
		min, max := r.Root().Bounds()
		assert.Equal(t, 5, min)
		assert.Equal(t, 12, max)
		assert.Equal(t, 0, r.Root().Digits())
	})

	t.Run("padded interval keeps shared digit width", func(t *testing.T) {
		r, err := New("<05-12>")
		require.NoError(t, err)
		min, max := r.Root().Bounds()
		assert.Equal(t, 5, min)
		assert.Equal(t, 12, max)
		assert.Equal(t, 2, r.Root().Digits())
	})

	t.Run("identifier with a leading dash is a syntax error", func(t *testing.T) {
		_, err := New("<-5>")
		require.Error(t, err)
	})

	t.Run("identifier with multiple dashes is a syntax error", func(t *testing.T) {
		_, err := New("<1-2-3>")
		require.Error(t, err)
	})

	t.Run("no '&&' operator exists in this grammar", func(t *testing.T) {
		_, err := New("[a-z&&[^aeiou]]")
		require.Error(t, err)
	})
}

func TestFlagGating(t *testing.T) {
	t.Run("intersection requires the flag", func(t *testing.T) {
		_, err := New("a&b", WithSyntaxFlags(None))
		require.Error(t, err)
		_, err = New("a&b", WithSyntaxFlags(Intersection))
		require.NoError(t, err)
	})

	t.Run("complement requires the flag", func(t *testing.T) {
		_, err := New("~a", WithSyntaxFlags(None))
		require.Error(t, err)
		r, err := New("~a", WithSyntaxFlags(Complement))
		require.NoError(t, err)
		assert.Equal(t, KindComplement, r.Root().Kind())
	})

	t.Run("empty-language literal requires the flag", func(t *testing.T) {
		_, err := New("#", WithSyntaxFlags(None))
		require.Error(t, err)
		r, err := New("#", WithSyntaxFlags(Empty))
		require.NoError(t, err)
		assert.Equal(t, KindEmpty, r.Root().Kind())
	})

	t.Run("any-string literal requires the flag", func(t *testing.T) {
		_, err := New("@", WithSyntaxFlags(None))
		require.Error(t, err)
		r, err := New("@", WithSyntaxFlags(AnyString))
		require.NoError(t, err)
		assert.Equal(t, KindAnyStr, r.Root().Kind())
	})

	t.Run("named automaton requires the flag", func(t *testing.T) {
		_, err := New("<foo>", WithSyntaxFlags(None))
		require.Error(t, err)
		_, err = New("<foo>", WithSyntaxFlags(AutomatonRef))
		require.NoError(t, err)
	})

	t.Run("interval requires the flag", func(t *testing.T) {
		_, err := New("<1-5>", WithSyntaxFlags(None))
		require.Error(t, err)
		_, err = New("<1-5>", WithSyntaxFlags(Interval))
		require.NoError(t, err)
	})

	t.Run("mandatory-only pattern parses identically under None and All", func(t *testing.T) {
		rNone, err := New("ab*c|d?", WithSyntaxFlags(None))
		require.NoError(t, err)
		rAll, err := New("ab*c|d?", WithSyntaxFlags(All))
		require.NoError(t, err)
		assert.Equal(t, rNone.String(), rAll.String())
	})
}

func TestParseTotality(t *testing.T) {
	inputs := []string{
		"", "a", "a|b", "ab*c", "[a-z]", "[^a]", `"quoted"`,
		"<foo>", "<1-5>", "a{2,5}", "~a", "a&b",
	}
	for _, in := range inputs {
		_, err := New(in)
		assert.NoErrorf(t, err, "input %q should parse under All", in)
	}
}

func TestParseTrailingInputIsSyntaxError(t *testing.T) {
	_, err := New("a)")
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
}

func TestParseOverflowIsSyntaxError(t *testing.T) {
	_, err := New("a{99999999999999999999}")
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
}

func TestParseSupplementaryCodePoint(t *testing.T) {
	r, err := New(`\`+string(rune(0x1F600)))
	require.NoError(t, err)
	require.Equal(t, KindChar, r.Root().Kind())
	assert.Equal(t, rune(0x1F600), r.Root().Char())
}
