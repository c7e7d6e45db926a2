// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and accessors.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metricfield/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 3, 3)
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)
	for _, v := range m.Values() {
		assert.Zero(t, v)
	}
}

func TestNewDenseInvalid(t *testing.T) {
	t.Parallel()

	for _, shape := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		_, err := matrix.NewDense(shape[0], shape[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
	_, err := matrix.NewDenseFrom(3, 3, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7))
	assert.Equal(t, 7.0, MustAt(t, m, 1, 2))

	for _, ij := range [][2]int{{-1, 0}, {2, 0}, {0, 3}, {0, -1}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(ij[0], ij[1], 1), matrix.ErrOutOfRange)
	}
}

func TestNumericPolicy(t *testing.T) {
	t.Parallel()

	relaxed := MustDense(t, 1, 1)
	require.NoError(t, relaxed.Set(0, 0, math.Inf(1)))
	assert.False(t, relaxed.IsFinite())

	strict, err := matrix.NewDenseWithOptions(1, 1, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.NoError(t, strict.Set(0, 0, 2))
	assert.True(t, strict.IsFinite())

	// the policy survives cloning
	cp := strict.CloneDense()
	require.ErrorIs(t, cp.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	m := spd(t)
	cp := m.Clone()
	require.NoError(t, m.Set(0, 0, -1))
	assert.Equal(t, 4.0, MustAt(t, cp, 0, 0))

	vals := m.Values()
	vals[1] = 99
	assert.Equal(t, 1.0, MustAt(t, m, 0, 1))
}

func TestString(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, 2, 2, 1, 2.5, -3, 0)
	assert.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
