// SPDX-License-Identifier: MIT
// Package tensor_test contains shared fixtures for the tensor tests.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metricfield/data"
	"github.com/katalvlaran/metricfield/matrix"
	"github.com/katalvlaran/metricfield/space"
)

// chromaticLab are CIELAB samples well away from the neutral axis.
var chromaticLab = []space.Vec3{
	{60, 20, -10},
	{50, 0, 40},
	{50, 0, -40},
	{70, -30, 25},
	{35, 45, 10},
}

// labGrid is a regular CIELAB grid that avoids a = b = 0.
func labGrid() []space.Vec3 {
	var out []space.Vec3
	for _, l := range []float64{30, 50, 70} {
		for _, a := range []float64{-20, 0, 20} {
			for _, b := range []float64{-20, 20} {
				out = append(out, space.Vec3{l, a, b})
			}
		}
	}

	return out
}

// mustSet builds a data.Set or fails the test.
func mustSet(t testing.TB, sp space.Space, pts []space.Vec3) *data.Set {
	t.Helper()
	s, err := data.New(sp, pts)
	require.NoError(t, err)

	return s
}

// mustDense builds a 3×3 *Dense from row-major values or fails the test.
func mustDense(t testing.TB, v ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(3, 3, v)
	require.NoError(t, err)

	return m
}

// requireAllClose asserts element-wise closeness of two tensor arrays.
func requireAllClose(t testing.TB, want, got []*matrix.Dense, rtol, atol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		ok, err := matrix.AllClose(got[i], want[i], rtol, atol)
		require.NoError(t, err)
		require.Truef(t, ok, "tensor %d:\nwant\n%v\ngot\n%v", i, want[i], got[i])
	}
}

// requireIdentity asserts that every tensor is I₃.
func requireIdentity(t testing.TB, gs []*matrix.Dense) {
	t.Helper()
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	for i, g := range gs {
		ok, err := matrix.AllClose(g, I, 0, 0)
		require.NoError(t, err)
		require.Truef(t, ok, "tensor %d is not the identity:\n%v", i, g)
	}
}
