package lang

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchNumberInts(t *testing.T) {
	v, err := matchNumber("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = matchNumber("-42")
	require.NoError(t, err)
	assert.Equal(t, int64(-42), v)

	v, err = matchNumber("0")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	v, err = matchNumber("-0")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	v, err = matchNumber("0x1F")
	require.NoError(t, err)
	assert.Equal(t, int64(31), v)

	v, err = matchNumber("010")
	require.NoError(t, err)
	assert.Equal(t, int64(8), v)

	v, err = matchNumber("2r101")
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)

	v, err = matchNumber("36rZ")
	require.NoError(t, err)
	assert.Equal(t, int64(35), v)
}

func TestMatchNumberBigN(t *testing.T) {
	v, err := matchNumber("9999999999999999999999999999N")
	require.NoError(t, err)
	big1, ok := v.(*big.Int)
	require.True(t, ok)
	assert.Equal(t, "9999999999999999999999999999", big1.String())
}

func TestMatchNumberRatio(t *testing.T) {
	v, err := matchNumber("1/2")
	require.NoError(t, err)
	r, ok := v.(*Ratio)
	require.True(t, ok)
	assert.Equal(t, "1", r.Num.String())
	assert.Equal(t, "2", r.Den.String())

	v, err = matchNumber("4/2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)
}

func TestMatchNumberFloat(t *testing.T) {
	v, err := matchNumber("3.14")
	require.NoError(t, err)
	assert.Equal(t, 3.14, v)

	v, err = matchNumber("1e10")
	require.NoError(t, err)
	assert.Equal(t, 1e10, v)
}

func TestMatchNumberInvalid(t *testing.T) {
	_, err := matchNumber("1.2.3")
	assert.Error(t, err)
	var rerr *ReaderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindLexical, rerr.Kind)
}
