package calc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileString(t *testing.T, tb *table, src string) ([]symbol, error) {
	t.Helper()
	toks, err := tb.tokenize(src)
	require.NoError(t, err)
	return shunt(tb.resolveSigns(toks))
}

func TestShuntGolden(t *testing.T) {
	srcs := []string{
		"1+2*3",
		"(1+2)*3",
		"2^3^2",
		"8/4/2",
		"1-2+3",
		"-2^2",
		"2^-1",
		"pow(x, y+1)",
		"pow(pow(2,3),2)",
		"2.1+-3.2*5^(3-1)/(2*3.14 - 1)",
		"-(x)",
		"1,2",
	}
	tb := testTable(t)
	var b strings.Builder
	for _, src := range srcs {
		post, err := compileString(t, tb, src)
		require.NoError(t, err, src)
		fmt.Fprintf(&b, "%q => %s\n", src, fmtSyms(post, false))
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "postfix", []byte(b.String()))
}

func TestShuntBrackets(t *testing.T) {
	cases := []struct {
		src  string
		col  int
		left bool
	}{
		{"(1+2", 1, true},
		{"((1+2)", 1, true},
		{"1+(2", 3, true},
		{"1+2)", 4, false},
		{")", 1, false},
		{"(1))", 4, false},
		{"pow(1,2", 4, true},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			post, err := compileString(t, testTable(t), c.src)
			assert.Nil(t, post)
			var berr *BracketError
			require.ErrorAs(t, err, &berr)
			assert.Equal(t, c.col, berr.Pos())
			assert.Equal(t, c.left, berr.Left)
		})
	}
}

func TestYields(t *testing.T) {
	add := symbol{kind: symOperator, prec: 2, left: true}
	mul := symbol{kind: symOperator, prec: 3, left: true}
	pow := symbol{kind: symOperator, prec: 4}
	assert.True(t, yields(add, add))
	assert.True(t, yields(add, mul))
	assert.False(t, yields(mul, add))
	assert.False(t, yields(pow, pow))
	assert.True(t, yields(mul, pow))
}
