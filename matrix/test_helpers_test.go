// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the 3×3 tensor kernels.
//   - Keep fixtures explicit so failures point at a readable literal.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metricfield/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force the interface fallback paths.
//
// AI-Hints:
//   - Wrap ONLY the operand you want to de-opt; keep the other one *Dense.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFrom builds an r×c *Dense from row-major values or fails the test.
func MustFrom(t testing.TB, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireClose asserts AllClose(got, want, rtol, atol).
func RequireClose(t testing.TB, want, got matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtol, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "want\n%v\ngot\n%v", want, got)
}

// labJacobian is ∂(L*,a*,b*)/∂(X,Y,Z) at a mid-grey: the leading entry is
// zero, which defeats pivot-free elimination.
func labJacobian(t testing.TB) *matrix.Dense {
	t.Helper()

	return MustFrom(t, 3, 3,
		0, 116*0.5, 0,
		500*0.52, -500*0.5, 0,
		0, 200*0.5, -200*0.47,
	)
}

// spd is a fixed symmetric positive-definite tensor.
func spd(t testing.TB) *matrix.Dense {
	t.Helper()

	return MustFrom(t, 3, 3,
		4, 1, 0.5,
		1, 3, 0.25,
		0.5, 0.25, 2,
	)
}
