package lang

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadStringAtoms(t *testing.T) {
	v, err := ReadString("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = ReadString("nil")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ReadString("true")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = ReadString("false")
	require.NoError(t, err)
	assert.Equal(t, false, v)

	v, err = ReadString("foo")
	require.NoError(t, err)
	sym, ok := v.(*Symbol)
	require.True(t, ok)
	assert.Equal(t, "foo", sym.Name)

	v, err = ReadString("ns/foo")
	require.NoError(t, err)
	sym, ok = v.(*Symbol)
	require.True(t, ok)
	assert.Equal(t, "ns", sym.Namespace)
	assert.Equal(t, "foo", sym.Name)
}

func TestReadStringKeyword(t *testing.T) {
	v, err := ReadString(":foo")
	require.NoError(t, err)
	kw, ok := v.(*Keyword)
	require.True(t, ok)
	assert.Equal(t, "foo", kw.Name)

	v, err = ReadString("::foo")
	require.NoError(t, err)
	kw, ok = v.(*Keyword)
	require.True(t, ok)
	assert.Equal(t, "user", kw.Namespace)
}

func TestReadStringWhitespaceAndComments(t *testing.T) {
	v, err := ReadString("  ; a comment\n  7")
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)

	v, err = ReadString(", 9 ,")
	require.NoError(t, err)
	assert.Equal(t, int64(9), v)
}

func TestReadStringCollections(t *testing.T) {
	v, err := ReadString("(1 2 3)")
	require.NoError(t, err)
	lst, ok := v.(*List)
	require.True(t, ok)
	assert.Equal(t, []interface{}{int64(1), int64(2), int64(3)}, lst.Items)

	v, err = ReadString("[1 2]")
	require.NoError(t, err)
	vec, ok := v.(*Vector)
	require.True(t, ok)
	assert.Len(t, vec.Items, 2)

	v, err = ReadString("{:a 1 :b 2}")
	require.NoError(t, err)
	m, ok := v.(*Map)
	require.True(t, ok)
	assert.Equal(t, 2, m.Count())
	got, found := m.Get(NewKeyword("", "a"))
	require.True(t, found)
	assert.Equal(t, int64(1), got)

	v, err = ReadString("#{1 2 2 3}")
	require.NoError(t, err)
	s, ok := v.(*Set)
	require.True(t, ok)
	assert.Len(t, s.Items, 3)
}

func TestReadStringUnmatchedDelimiter(t *testing.T) {
	_, err := ReadString(")")
	require.Error(t, err)
	var rerr *ReaderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindStructural, rerr.Kind)
}

func TestReadStringMapOddForms(t *testing.T) {
	_, err := ReadString("{:a}")
	require.Error(t, err)
}

func TestReadStringQuoteAndDeref(t *testing.T) {
	v, err := ReadString("'foo")
	require.NoError(t, err)
	lst, ok := v.(*List)
	require.True(t, ok)
	assert.True(t, symEqual(lst.Items[0], QUOTE))

	v, err = ReadString("@foo")
	require.NoError(t, err)
	lst, ok = v.(*List)
	require.True(t, ok)
	assert.True(t, symEqual(lst.Items[0], DEREF))
}

func TestReadStringStringEscape(t *testing.T) {
	v, err := ReadString(`"a\nb\t\"c"`)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\t\"c", v)
}

func TestReadStringLegacyDecimalEscape(t *testing.T) {
	v, err := ReadString(`"\0"`)
	require.NoError(t, err)
	assert.Equal(t, "\x00", v)

	v, err = ReadString(`"\7"`)
	require.NoError(t, err)
	assert.Equal(t, "\x07", v)
}

func TestReadStringCharLiteral(t *testing.T) {
	v, err := ReadString(`\a`)
	require.NoError(t, err)
	assert.Equal(t, 'a', v)

	v, err = ReadString(`\newline`)
	require.NoError(t, err)
	assert.Equal(t, '\n', v)
}

func TestReadStringDiscard(t *testing.T) {
	v, err := ReadString("[1 #_2 3]")
	require.NoError(t, err)
	vec, ok := v.(*Vector)
	require.True(t, ok)
	assert.Equal(t, []interface{}{int64(1), int64(3)}, vec.Items)
}

func TestReadStringMeta(t *testing.T) {
	v, err := ReadString("^:dynamic foo")
	require.NoError(t, err)
	sym, ok := v.(*Symbol)
	require.True(t, ok)
	meta := sym.Meta()
	require.NotNil(t, meta)
	_, present := meta[NewKeyword("", "dynamic")]
	assert.True(t, present)
}

func TestReadStringEOF(t *testing.T) {
	_, err := ReadString("")
	require.Error(t, err)
	var rerr *ReaderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindEOF, rerr.Kind)
}

func TestReaderReadWithEOFValue(t *testing.T) {
	rd := NewReader(strings.NewReader(""))
	v, err := rd.Read(false, NewKeyword("", "eof"))
	require.NoError(t, err)
	assert.Equal(t, NewKeyword("", "eof"), v)
}
