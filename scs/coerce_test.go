package scs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatVectorBindsWithoutCopy(t *testing.T) {
	src := []float64{1.5, -2.5, 3}
	got, copied, err := floatVector("Test", "v", src)
	require.NoError(t, err)
	assert.False(t, copied)
	assert.True(t, &src[0] == &got[0], "expected the original backing array to be bound")
}

func TestFloatVectorConvertsFloat32(t *testing.T) {
	got, copied, err := floatVector("Test", "v", []float32{1, 2.5})
	require.NoError(t, err)
	assert.True(t, copied)
	assert.Equal(t, []float64{1, 2.5}, got)
}

func TestFloatVectorNamedSliceType(t *testing.T) {
	type vector []float64
	src := vector{4, 5}
	got, copied, err := floatVector("Test", "v", src)
	require.NoError(t, err)
	assert.True(t, copied)
	assert.Equal(t, []float64{4, 5}, got)
}

func TestFloatVectorRejectsWrongKinds(t *testing.T) {
	for _, v := range []any{[]int{1, 2}, []string{"a"}, "nope", 3.0, nil} {
		_, _, err := floatVector("Test", "b", v)
		require.Error(t, err, "input %v", v)

		var serr *Error
		require.True(t, errors.As(err, &serr))
		assert.Equal(t, KindShape, serr.Kind)
		assert.Equal(t, "b", serr.Field)
	}
}

func TestIntVectorBindsWithoutCopy(t *testing.T) {
	src := []int{0, 1, 2}
	got, copied, err := intVector("Test", "v", src)
	require.NoError(t, err)
	assert.False(t, copied)
	assert.True(t, &src[0] == &got[0])
}

func TestIntVectorConverts(t *testing.T) {
	got, _, err := intVector("Test", "v", []int32{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, got)

	got, _, err = intVector("Test", "v", []int64{5, 6})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, got)
}

func TestIntVectorRejectsFloats(t *testing.T) {
	_, _, err := intVector("Test", "A.rowIndices", []float64{0, 1})
	require.Error(t, err)

	var serr *Error
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, KindShape, serr.Kind)
	assert.Equal(t, "A.rowIndices", serr.Field)
}

func TestAsIntScalars(t *testing.T) {
	for _, v := range []any{int(7), int32(7), int64(7), uint8(7)} {
		n, ok := asInt(v)
		require.True(t, ok, "input %T", v)
		assert.Equal(t, 7, n)
	}
	_, ok := asInt(7.0)
	assert.False(t, ok, "floats are not integers")
}
