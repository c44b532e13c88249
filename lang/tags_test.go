package lang

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstTagParsesUTCComponents(t *testing.T) {
	v, err := ReadString(`#inst "1985-04-12T23:20:50.520Z"`)
	require.NoError(t, err)
	tm, ok := v.(time.Time)
	require.True(t, ok)
	assert.Equal(t, 1985, tm.Year())
	assert.Equal(t, time.April, tm.Month())
	assert.Equal(t, 12, tm.Day())
	assert.Equal(t, 23, tm.Hour())
	assert.Equal(t, 20, tm.Minute())
	assert.Equal(t, 50, tm.Second())
	assert.Equal(t, 520*int(time.Millisecond), tm.Nanosecond())
	assert.Equal(t, time.UTC, tm.Location())
}

func TestInstTagAppliesOffset(t *testing.T) {
	v, err := ReadString(`#inst "2020-01-01T01:00:00-02:00"`)
	require.NoError(t, err)
	tm := v.(time.Time)
	assert.Equal(t, 2020, tm.Year())
	assert.Equal(t, 3, tm.Hour())
}

func TestInstTagDefaultsOmittedFields(t *testing.T) {
	v, err := ReadString(`#inst "1970"`)
	require.NoError(t, err)
	tm := v.(time.Time)
	assert.True(t, tm.Equal(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestInstTagOutOfRangeMonth(t *testing.T) {
	_, err := ReadString(`#inst "1985-13-01"`)
	require.Error(t, err)
	var rerr *ReaderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindSemantic, rerr.Kind)
}

func TestInstTagNonStringArg(t *testing.T) {
	_, err := ReadString(`#inst 5`)
	require.Error(t, err)
}

func TestUUIDTag(t *testing.T) {
	v, err := ReadString(`#uuid "550e8400-e29b-41d4-a716-446655440000"`)
	require.NoError(t, err)
	id, ok := v.(uuid.UUID)
	require.True(t, ok)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
}

func TestQueueTag(t *testing.T) {
	v, err := ReadString(`#queue [1 2 3]`)
	require.NoError(t, err)
	q, ok := v.(*Queue)
	require.True(t, ok)
	assert.Equal(t, []interface{}{int64(1), int64(2), int64(3)}, q.Items)
}

func TestQueueTagRequiresVector(t *testing.T) {
	_, err := ReadString(`#queue (1 2 3)`)
	require.Error(t, err)
}

func TestUnknownTagIsError(t *testing.T) {
	_, err := ReadString(`#bogus 1`)
	require.Error(t, err)
	var rerr *ReaderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindSemantic, rerr.Kind)
}

func TestTagRegistryRegisterAndDeregister(t *testing.T) {
	reg := NewTagRegistry()
	prev := reg.Register("point", func(arg interface{}) (interface{}, error) {
		return arg, nil
	})
	assert.Nil(t, prev)

	v, err := ReadString(`#point [1 2]`, WithTagRegistry(reg))
	require.NoError(t, err)
	vec, ok := v.(*Vector)
	require.True(t, ok)
	assert.Len(t, vec.Items, 2)

	old := reg.Deregister("point")
	require.NotNil(t, old)

	_, err = ReadString(`#point [1 2]`, WithTagRegistry(reg))
	require.Error(t, err)
}
