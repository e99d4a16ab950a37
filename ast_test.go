package regexfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConcatLiteralFusion(t *testing.T) {
	t.Run("char+char fuses to Str", func(t *testing.T) {
		n := NewConcat(NewChar('a'), NewChar('b'))
		require.Equal(t, KindStr, n.Kind())
		assert.Equal(t, "ab", n.Str())
	})

	t.Run("str+str fuses", func(t *testing.T) {
		n := NewConcat(NewString("ab"), NewString("cd"))
		require.Equal(t, KindStr, n.Kind())
		assert.Equal(t, "abcd", n.Str())
	})

	t.Run("right spine merges trailing literal", func(t *testing.T) {
		x := NewNamedAutomaton("x")
		concatXa := NewConcat(x, NewString("a"))
		n := NewConcat(concatXa, NewString("b"))
		require.Equal(t, KindConcat, n.Kind())
		assert.Same(t, x, n.L())
		require.Equal(t, KindStr, n.R().Kind())
		assert.Equal(t, "ab", n.R().Str())
	})

	t.Run("left spine merges leading literal", func(t *testing.T) {
		x := NewNamedAutomaton("x")
		concatAx := NewConcat(NewString("a"), x)
		n := NewConcat(NewString("b"), concatAx)
		require.Equal(t, KindConcat, n.Kind())
		require.Equal(t, KindStr, n.L().Kind())
		assert.Equal(t, "ba", n.L().Str())
		assert.Same(t, x, n.R())
	})

	t.Run("unrelated operands stay a plain Concat", func(t *testing.T) {
		l := NewNamedAutomaton("l")
		r := NewNamedAutomaton("r")
		n := NewConcat(l, r)
		require.Equal(t, KindConcat, n.Kind())
		assert.Same(t, l, n.L())
		assert.Same(t, r, n.R())
	})
}

func TestNewCharRangeValidation(t *testing.T) {
	t.Run("from <= to succeeds", func(t *testing.T) {
		n, err := NewCharRange('a', 'z')
		require.NoError(t, err)
		from, to := n.Range()
		assert.Equal(t, 'a', from)
		assert.Equal(t, 'z', to)
	})

	t.Run("from > to fails with RangeError", func(t *testing.T) {
		_, err := NewCharRange('z', 'a')
		require.Error(t, err)
		var rangeErr *RangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, 'z', rangeErr.From)
		assert.Equal(t, 'a', rangeErr.To)
	})
}
