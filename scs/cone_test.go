package scs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConeScalarAndListEquivalent(t *testing.T) {
	scalar, err := parseCone(map[string]any{"q": 3}, newTracker())
	require.NoError(t, err)

	list, err := parseCone(map[string]any{"q": []int{3}}, newTracker())
	require.NoError(t, err)

	assert.Equal(t, []int{3}, scalar.SOCSizes)
	assert.Equal(t, scalar.SOCSizes, list.SOCSizes)
}

func TestParseConeDefaults(t *testing.T) {
	for _, cone := range []map[string]any{nil, {}} {
		k, err := parseCone(cone, newTracker())
		require.NoError(t, err)

		assert.Zero(t, k.FreeSize)
		assert.Zero(t, k.NonnegSize)
		assert.Zero(t, k.ExpPrimalCount)
		assert.Zero(t, k.ExpDualCount)
		assert.NotNil(t, k.SOCSizes, "absent fields normalize to empty, never nil")
		assert.NotNil(t, k.SDCSizes)
		assert.Empty(t, k.SOCSizes)
		assert.Empty(t, k.SDCSizes)
	}
}

func TestParseConeAllFields(t *testing.T) {
	k, err := parseCone(map[string]any{
		"f": 1, "l": 2, "q": []int{3, 4}, "s": 2, "ep": 1, "ed": 2,
	}, newTracker())
	require.NoError(t, err)

	assert.Equal(t, 1, k.FreeSize)
	assert.Equal(t, 2, k.NonnegSize)
	assert.Equal(t, []int{3, 4}, k.SOCSizes)
	assert.Equal(t, []int{2}, k.SDCSizes)
	assert.Equal(t, 1, k.ExpPrimalCount)
	assert.Equal(t, 2, k.ExpDualCount)
}

func TestParseConeNegativeValues(t *testing.T) {
	cases := []map[string]any{
		{"f": -1},
		{"l": -5},
		{"q": -2},
		{"q": []int{2, -1}},
		{"s": []int{-3}},
		{"ep": -1},
		{"ed": -1},
	}
	for _, cone := range cases {
		_, err := parseCone(cone, newTracker())
		require.Error(t, err, "cone %v", cone)

		var serr *Error
		require.True(t, errors.As(err, &serr))
		assert.Equal(t, KindConeField, serr.Kind)
		assert.NotEmpty(t, serr.Field, "errors must name the field")
	}
}

func TestParseConeBadShapes(t *testing.T) {
	cases := []map[string]any{
		{"f": "one"},
		{"l": 2.5},
		{"q": "big"},
		{"q": []string{"3"}},
		{"s": map[string]any{}},
	}
	for _, cone := range cases {
		_, err := parseCone(cone, newTracker())
		require.Error(t, err, "cone %v", cone)

		var serr *Error
		require.True(t, errors.As(err, &serr))
		assert.Equal(t, KindConeField, serr.Kind)
	}
}

func TestParseConeLooseListElements(t *testing.T) {
	// A []any of integers, as produced by config decoders.
	k, err := parseCone(map[string]any{"q": []any{int64(2), int64(3)}}, newTracker())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, k.SOCSizes)
}

func TestConeDim(t *testing.T) {
	k := &ConeSpec{
		FreeSize:       1,
		NonnegSize:     2,
		SOCSizes:       []int{3},
		SDCSizes:       []int{2},
		ExpPrimalCount: 1,
	}
	// 1 + 2 + 3 + 2*2 + 3*1
	assert.Equal(t, 13, k.Dim())
}
