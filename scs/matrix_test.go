package scs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityInput() (int, int, []float64, []int, []int, []float64, []float64) {
	return 2, 2, []float64{1, 1}, []int{0, 1}, []int{0, 1, 2}, []float64{1, 1}, []float64{1, 1}
}

func TestBuildProblemValid(t *testing.T) {
	rows, cols, ax, ai, ap, b, c := identityInput()
	trk := newTracker()

	p, err := buildProblem(rows, cols, ax, ai, ap, b, c, trk)
	require.NoError(t, err)

	assert.Equal(t, 2, p.Rows)
	assert.Equal(t, 2, p.Cols)
	assert.Equal(t, 2, p.A.Nonzeros())
	assert.Equal(t, b, p.B)
	assert.Equal(t, c, p.C)
	assert.Equal(t, 6, trk.live(), "values, rowIndices, colPointers, b, c, problem")
}

func TestBuildProblemNegativeDims(t *testing.T) {
	_, cols, ax, ai, ap, b, c := identityInput()
	trk := newTracker()

	_, err := buildProblem(-1, cols, ax, ai, ap, b, c, trk)
	require.Error(t, err)

	var serr *Error
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, KindDimension, serr.Kind)
	assert.Equal(t, "rows", serr.Field)
	assert.Equal(t, 0, trk.live(), "dimension checks precede any allocation")
}

func TestBuildProblemBadCDimension(t *testing.T) {
	rows, cols, ax, ai, ap, b, _ := identityInput()
	trk := newTracker()

	_, err := buildProblem(rows, cols, ax, ai, ap, b, []float64{1, 2, 3}, trk)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "c has incompatible dimension with A")

	var serr *Error
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, KindDimension, serr.Kind)
}

func TestBuildProblemBadBDimension(t *testing.T) {
	rows, cols, ax, ai, ap, _, c := identityInput()
	trk := newTracker()

	_, err := buildProblem(rows, cols, ax, ai, ap, []float64{1}, c, trk)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b has incompatible dimension with A")
}

func TestBuildProblemWrongElementKinds(t *testing.T) {
	rows, cols, ax, ai, ap, b, c := identityInput()

	_, err := buildProblem(rows, cols, []int{1, 1}, ai, ap, b, c, newTracker())
	var serr *Error
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, KindShape, serr.Kind)
	assert.Equal(t, "A.values", serr.Field)

	_, err = buildProblem(rows, cols, ax, []float64{0, 1}, ap, b, c, newTracker())
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "A.rowIndices", serr.Field)

	_, err = buildProblem(rows, cols, ax, ai, []float64{0, 1, 2}, b, c, newTracker())
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "A.colPointers", serr.Field)
}

func TestBuildProblemColPointerLength(t *testing.T) {
	rows, cols, ax, ai, _, b, c := identityInput()

	_, err := buildProblem(rows, cols, ax, ai, []int{0, 2}, b, c, newTracker())
	require.Error(t, err)

	var serr *Error
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, KindDimension, serr.Kind)
	assert.Equal(t, "A.colPointers", serr.Field)
}

func TestCompressNonzeros(t *testing.T) {
	m, err := CompressNonzeros(3, 2, []Nonzero{
		{Row: 2, Col: 1, Val: 4},
		{Row: 0, Col: 0, Val: 1},
		{Row: 1, Col: 0, Val: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 4}, m.Values)
	assert.Equal(t, []int{0, 1, 2}, m.RowIndices)
	assert.Equal(t, []int{0, 2, 3}, m.ColPointers)
	assert.Equal(t, 3, m.Nonzeros())
}

func TestCompressNonzerosDuplicatesKeepLast(t *testing.T) {
	m, err := CompressNonzeros(1, 1, []Nonzero{
		{Row: 0, Col: 0, Val: 1},
		{Row: 0, Col: 0, Val: 9},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{9}, m.Values)
}

func TestCompressNonzerosOutOfRange(t *testing.T) {
	_, err := CompressNonzeros(2, 2, []Nonzero{{Row: 2, Col: 0, Val: 1}})
	require.Error(t, err)

	_, err = CompressNonzeros(2, 2, []Nonzero{{Row: 0, Col: -1, Val: 1}})
	require.Error(t, err)
}

func TestCompressNonzerosEmptyColumns(t *testing.T) {
	m, err := CompressNonzeros(2, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0}, m.ColPointers)
	assert.Equal(t, 0, m.Nonzeros())
}
