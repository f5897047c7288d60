package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testColor uint32

const (
	testColorRed  testColor = 1
	testColorBlue testColor = 3
)

func (c testColor) Valid() bool {
	return c == testColorRed || c == testColorBlue
}

type testPoint struct {
	X    int32
	Y    int32
	Tags []string
}

func (p *testPoint) IntoObject(o *Object) {
	SInt32.Add(o, 1, p.X)
	SInt32.Add(o, 2, p.Y)
	List(String).Add(o, 3, p.Tags)
}

func (p *testPoint) FromObject(o *Object) error {
	var err error
	if p.X, err = SInt32.Get(o, 1); err != nil {
		return AtField(err, 1)
	}
	if p.Y, err = SInt32.Get(o, 2); err != nil {
		return AtField(err, 2)
	}
	if p.Tags, err = List(String).Get(o, 3); err != nil {
		return AtField(err, 3)
	}
	return nil
}

func TestOptional(t *testing.T) {
	f := Optional(Int64)
	o := NewObject()

	f.Add(o, 1, None[int64]())
	assert.Equal(t, 0, o.Count(1))
	got, err := f.Get(o, 1)
	require.NoError(t, err)
	assert.True(t, got.IsNone())

	f.Add(o, 1, Some[int64](0))
	got, err = f.Get(o, 1)
	require.NoError(t, err)
	v, ok := got.Get()
	assert.True(t, ok)
	assert.Equal(t, int64(0), v)

	assert.True(t, f.IsEmpty(None[int64]()))
	assert.False(t, f.IsEmpty(Some[int64](0)))
}

func TestOptionalCannotBeIndexed(t *testing.T) {
	f := Optional(Bool)
	assert.Panics(t, func() { f.Count(NewObject(), 1) })
	assert.Panics(t, func() { _, _ = f.Index(NewObject(), 1, 0) })
}

func TestListCardinality(t *testing.T) {
	f := List(Uint32)
	o := NewObject()

	f.Add(o, 2, []uint32{5, 1, 5})
	assert.Equal(t, 3, o.Count(2))

	got, err := f.Get(o, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint32{5, 1, 5}, got)

	f.Add(o, 3, nil)
	assert.Equal(t, 0, o.Count(3))
	empty, err := f.Get(o, 3)
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestListElementErrorCarriesIndex(t *testing.T) {
	o := NewObject()
	Enum[testColor]().Add(o, 4, testColorRed)
	o.AddVarint(4, 2)

	_, err := List(Enum[testColor]()).Get(o, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownDiscriminant))
	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.Equal(t, "[1]", ErrorPath(err))
}

func TestMapEncodesSortedKeys(t *testing.T) {
	f := Map(String, Float)
	o := NewObject()
	f.Add(o, 1, map[string]float32{"b": 2, "a": 1, "c": 3})

	require.Equal(t, 3, o.Count(1))
	for i, want := range []string{"a", "b", "c"} {
		entry, err := o.IndexObject(1, i)
		require.NoError(t, err)
		key, err := String.Get(entry, MapKeyFieldID)
		require.NoError(t, err)
		assert.Equal(t, want, key)
	}

	got, err := f.Get(o, 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]float32{"a": 1, "b": 2, "c": 3}, got)
}

func TestMapDuplicateKeyLastWins(t *testing.T) {
	o := NewObject()
	for _, v := range []int64{1, 2} {
		entry := o.AddObject(1)
		Uint32.Add(entry, MapKeyFieldID, 7)
		Int64.Add(entry, MapValueFieldID, v)
	}

	got, err := Map(Uint32, Int64).Get(o, 1)
	require.NoError(t, err)
	assert.Equal(t, map[uint32]int64{7: 2}, got)
}

func TestMapEmptyAndErrors(t *testing.T) {
	f := Map(Int32, String)
	o := NewObject()
	f.Add(o, 1, map[int32]string{})
	assert.Equal(t, 0, o.Count(1))

	got, err := f.Get(o, 1)
	require.NoError(t, err)
	assert.Nil(t, got)

	Int32.Add(o.AddObject(1), MapKeyFieldID, 1)
	_, err = f.Get(o, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.Equal(t, "[0]/2", ErrorPath(err))
}

func TestMapFuncBoolKeys(t *testing.T) {
	f := MapFunc(Bool, Enum[testColor](), CompareBool)
	o := NewObject()
	f.Add(o, 1, map[bool]testColor{true: testColorBlue, false: testColorRed})

	first, err := o.IndexObject(1, 0)
	require.NoError(t, err)
	key, err := Bool.Get(first, MapKeyFieldID)
	require.NoError(t, err)
	assert.False(t, key)

	got, err := f.Get(o, 1)
	require.NoError(t, err)
	assert.Equal(t, map[bool]testColor{true: testColorBlue, false: testColorRed}, got)
}

func TestCompareBool(t *testing.T) {
	assert.Equal(t, 0, CompareBool(true, true))
	assert.Equal(t, -1, CompareBool(false, true))
	assert.Equal(t, 1, CompareBool(true, false))
}

func TestEnumDiscriminantBoundary(t *testing.T) {
	f := Enum[testColor]()
	o := NewObject()
	f.Add(o, 1, testColorBlue)
	v, err := f.Get(o, 1)
	require.NoError(t, err)
	assert.Equal(t, testColorBlue, v)

	for _, raw := range []uint64{0, 2, 4, 1 << 32} {
		o := NewObject()
		o.AddVarint(1, raw)
		_, err := f.Get(o, 1)
		require.Error(t, err)
		var se *Error
		require.True(t, errors.As(err, &se))
		assert.Equal(t, ErrorCodeUnknownDiscriminant, se.Code)
		assert.Equal(t, raw, se.Value)
		assert.Equal(t, "testColor", se.TypeName)
	}
}

func TestNestedRecords(t *testing.T) {
	f := List(Nested[testPoint]())
	points := []testPoint{
		{X: 10, Y: -10, Tags: []string{"a"}},
		{X: 0, Y: 0},
	}
	o := NewObject()
	f.Add(o, 6, points)

	decoded, err := Unmarshal(o.Marshal())
	require.NoError(t, err)
	got, err := f.Get(decoded, 6)
	require.NoError(t, err)
	assert.Equal(t, points, got)
}

func TestNestedMissingFieldPath(t *testing.T) {
	o := NewObject()
	o.AddObject(6).AddVarint(1, 2)

	_, err := Nested[testPoint]().Get(o, 6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.Equal(t, "/2", ErrorPath(err))
	assert.Equal(t, "invalid value at /2: missing field 2", err.Error())

	_, err = Nested[testPoint]().Get(NewObject(), 6)
	assert.True(t, errors.Is(err, ErrMissingField))
}
