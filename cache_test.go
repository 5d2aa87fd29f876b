package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExprCacheLRU(t *testing.T) {
	c := newExprCache(2)
	a, b, d := &Expr{}, &Expr{}, &Expr{}
	c.set("a", a)
	c.set("b", b)
	got, ok := c.get("a")
	require.True(t, ok)
	assert.Same(t, a, got)
	// b is now least recently used.
	c.set("d", d)
	assert.Equal(t, 2, c.len())
	_, ok = c.get("b")
	assert.False(t, ok)
	_, ok = c.get("a")
	assert.True(t, ok)
	_, ok = c.get("d")
	assert.True(t, ok)
	c.clear()
	assert.Equal(t, 0, c.len())
}

func TestExprCacheDisabled(t *testing.T) {
	c := newExprCache(0)
	assert.Nil(t, c)
	c.set("a", &Expr{})
	_, ok := c.get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.len())
	c.clear()
}

func TestEvaluateCaches(t *testing.T) {
	e, err := New(CacheSize(4))
	require.NoError(t, err)
	require.NoError(t, e.DefineVariable("ab", 3))
	r, err := e.Evaluate("ab*2")
	require.NoError(t, err)
	assert.Equal(t, float32(6), r)
	assert.Equal(t, 1, e.cache.len())
	_, err = e.Evaluate("ab*2")
	require.NoError(t, err)
	assert.Equal(t, 1, e.cache.len())
	_, err = e.Evaluate("1 +")
	assert.Error(t, err)
	assert.Equal(t, 2, e.cache.len(), "compiled expressions are cached even if evaluation fails")
	_, err = e.Evaluate("(")
	assert.Error(t, err)
	assert.Equal(t, 2, e.cache.len(), "compile errors are not cached")

	// Defining b as an operator splits ab into two words.
	require.NoError(t, e.DefineOperator('b', 3, true, Dyadic(func(x, y float32) float32 { return x })))
	assert.Equal(t, 0, e.cache.len())
	_, err = e.Evaluate("ab*2")
	var serr *SymbolError
	assert.ErrorAs(t, err, &serr)
}

func TestEvalScratch(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	require.NoError(t, e.DefineVariable("y", 3))
	require.NoError(t, e.DefineFunction("inner", Monadic(func(x float32) float32 {
		r, err := e.Evaluate("y*2")
		if err != nil {
			panic(err)
		}
		return x + r
	})))
	x, err := e.Compile("inner(1) + 1")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		r, err := e.Eval(x)
		require.NoError(t, err)
		assert.Equal(t, float32(8), r)
	}
	assert.False(t, e.busy)
	assert.Equal(t, "1 inner 1 +", x.String())
}
