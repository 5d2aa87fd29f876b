package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSigns(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"-1", "u- 1"},
		{"+1", "1"},
		{"1-1", "1 - 1"},
		{"1+1", "1 + 1"},
		{"1--1", "1 - u- 1"},
		{"1++1", "1 + 1"},
		{"1+-1", "1 + u- 1"},
		{"- -1", "u- u- 1"},
		{"+-1", "u- 1"},
		{"-+1", "u- 1"},
		{"(-1)", "( u- 1 )"},
		{"(+1)", "( 1 )"},
		{"pow(-1,-2)", "pow ( u- 1 , u- 2 )"},
		{"pow(+1,+2)", "pow ( 1 , 2 )"},
		{"x-1", "x - 1"},
		{"(1)-1", "( 1 ) - 1"},
		{"2*-x", "2 * u- x"},
		{"2^-x", "2 ^ u- x"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			tb := testTable(t)
			toks, err := tb.tokenize(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, fmtSyms(tb.resolveSigns(toks), false))
		})
	}
}

func TestResolveSignsKeepsPositions(t *testing.T) {
	tb := testTable(t)
	toks, err := tb.tokenize("1 * -x")
	require.NoError(t, err)
	assert.Equal(t, "1@1 *@3 u-@5 x@6", fmtSyms(tb.resolveSigns(toks), true))
}
