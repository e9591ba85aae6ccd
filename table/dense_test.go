// Package table_test contains unit tests for the boolean decision tables.
package table_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/relocate/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidShapes ensures constructors reject non-positive extents.
func TestNewInvalidShapes(t *testing.T) {
	_, err := table.NewVector(0)
	require.ErrorIs(t, err, table.ErrBadShape)

	_, err = table.NewMatrix(0, 3)
	require.ErrorIs(t, err, table.ErrBadShape)

	_, err = table.NewMatrix(3, -1)
	require.ErrorIs(t, err, table.ErrBadShape)

	_, err = table.NewTensor(2, 0, 2)
	require.ErrorIs(t, err, table.ErrBadShape)
}

// TestNewTensorOverflow ensures cell counts that overflow int are rejected before allocation.
func TestNewTensorOverflow(t *testing.T) {
	_, err := table.NewTensor(math.MaxInt/2, 3, 3)
	require.ErrorIs(t, err, table.ErrBadShape)
}

// TestMatrixZeroFilled verifies fresh matrices contain only false cells.
func TestMatrixZeroFilled(t *testing.T) {
	m, err := table.NewMatrix(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())
	assert.Zero(t, m.Count())
}

// TestMatrixSetAt validates Set followed by At and the bounds checks.
func TestMatrixSetAt(t *testing.T) {
	m, err := table.NewMatrix(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, true))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.True(t, v)
	assert.Equal(t, 1, m.Count())
	assert.Equal(t, "[000]\n[001]\n", m.String())

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, table.ErrOutOfRange)
	err = m.Set(2, 0, true)
	require.ErrorIs(t, err, table.ErrOutOfRange)
}

// TestTensorLayout checks that layers do not alias each other.
func TestTensorLayout(t *testing.T) {
	tt, err := table.NewTensor(3, 2, 2)
	require.NoError(t, err)

	require.NoError(t, tt.Set(1, 0, 1, true))
	require.NoError(t, tt.Set(2, 1, 1, true))
	require.NoError(t, tt.Set(2, 1, 0, true))

	assert.Equal(t, 0, tt.CountLayer(0))
	assert.Equal(t, 1, tt.CountLayer(1))
	assert.Equal(t, 2, tt.CountLayer(2))
	assert.Equal(t, 0, tt.CountLayer(5))
	assert.Equal(t, 3, tt.Count())

	v, err := tt.At(0, 0, 1)
	require.NoError(t, err)
	assert.False(t, v)

	_, err = tt.At(3, 0, 0)
	require.ErrorIs(t, err, table.ErrOutOfRange)
}

// TestVectorSetAt covers the one-dimensional table.
func TestVectorSetAt(t *testing.T) {
	v, err := table.NewVector(3)
	require.NoError(t, err)
	require.NoError(t, v.Set(2, true))

	got, err := v.At(2)
	require.NoError(t, err)
	assert.True(t, got)
	assert.Equal(t, 1, v.Count())

	require.ErrorIs(t, v.Set(3, true), table.ErrOutOfRange)
}

// TestSolutionShapes verifies NewSolution allocates every table with the requested extents.
func TestSolutionShapes(t *testing.T) {
	sol, err := table.NewSolution(table.Shape{NumR: 4, NumShare: 3})
	require.NoError(t, err)

	assert.Equal(t, 4, sol.Single.Len())
	for _, m := range []*table.Matrix{sol.CoupleW, sol.CoupleM} {
		assert.Equal(t, 4, m.Rows())
		assert.Equal(t, 4, m.Cols())
	}
	for _, tt := range []*table.Tensor{sol.JointW, sol.JointM, sol.SoleW, sol.SoleM} {
		assert.Equal(t, 3, tt.Layers())
		assert.Equal(t, 4, tt.Rows())
		assert.Equal(t, 4, tt.Cols())
		assert.Zero(t, tt.Count())
	}
	assert.Equal(t, table.Shape{NumR: 4, NumShare: 3}, sol.Shape())

	_, err = table.NewSolution(table.Shape{NumR: 4, NumShare: 0})
	require.ErrorIs(t, err, table.ErrBadShape)
}

// TestSolutionEqual ensures a single differing cell breaks equality.
func TestSolutionEqual(t *testing.T) {
	shape := table.Shape{NumR: 2, NumShare: 2}
	a, err := table.NewSolution(shape)
	require.NoError(t, err)
	b, err := table.NewSolution(shape)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	require.NoError(t, b.SoleM.Set(1, 1, 0, true))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
}

// TestSolution_Unallocated: a zero Solution reports no tables and never panics.
func TestSolution_Unallocated(t *testing.T) {
	var empty table.Solution
	assert.False(t, empty.Allocated())
	assert.Equal(t, table.Shape{}, empty.Shape())

	var none *table.Solution
	assert.False(t, none.Allocated())

	full, err := table.NewSolution(table.Shape{NumR: 2, NumShare: 1})
	require.NoError(t, err)
	assert.True(t, full.Allocated())
	assert.False(t, full.Equal(&empty))
	assert.False(t, empty.Equal(full))

	partial := *full
	partial.SoleM = nil
	assert.False(t, partial.Allocated())
	assert.False(t, full.Equal(&partial))
}
