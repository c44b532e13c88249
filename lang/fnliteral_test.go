package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFnLiteralArity(t *testing.T) {
	v, err := ReadString("#(+ % %2)")
	require.NoError(t, err)

	l, ok := v.(*List)
	require.True(t, ok)
	require.Len(t, l.Items, 3)
	assert.True(t, symEqual(l.Items[0], fnStar))

	params, ok := l.Items[1].(*Vector)
	require.True(t, ok)
	require.Len(t, params.Items, 2)
	p1, ok := params.Items[0].(*Symbol)
	require.True(t, ok)
	p2, ok := params.Items[1].(*Symbol)
	require.True(t, ok)
	assert.Regexp(t, `^p1__`, p1.Name)
	assert.Regexp(t, `^p2__`, p2.Name)

	body, ok := l.Items[2].(*List)
	require.True(t, ok)
	require.Len(t, body.Items, 3)
	bodyP1, ok := body.Items[1].(*Symbol)
	require.True(t, ok)
	bodyP2, ok := body.Items[2].(*Symbol)
	require.True(t, ok)
	assert.Equal(t, p1.Name, bodyP1.Name)
	assert.Equal(t, p2.Name, bodyP2.Name)
}

func TestFnLiteralRestArg(t *testing.T) {
	v, err := ReadString("#(apply + %&)")
	require.NoError(t, err)
	l := v.(*List)
	params := l.Items[1].(*Vector)
	require.Len(t, params.Items, 2)
	amp, ok := params.Items[0].(*Symbol)
	require.True(t, ok)
	assert.Equal(t, "&", amp.Name)
	rest, ok := params.Items[1].(*Symbol)
	require.True(t, ok)
	assert.Regexp(t, `^rest__`, rest.Name)
}

func TestFnLiteralBareArgMeansOne(t *testing.T) {
	v, err := ReadString("#(inc %)")
	require.NoError(t, err)
	l := v.(*List)
	params := l.Items[1].(*Vector)
	require.Len(t, params.Items, 1)
}

func TestNestedFnLiteralIsError(t *testing.T) {
	_, err := ReadString("#( #(%) )")
	require.Error(t, err)
	var rerr *ReaderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindMacroPosition, rerr.Kind)
}

func TestPercentOutsideFnLiteralIsSymbol(t *testing.T) {
	v, err := ReadString("%foo")
	require.NoError(t, err)
	sym, ok := v.(*Symbol)
	require.True(t, ok)
	assert.Equal(t, "%foo", sym.Name)
}
