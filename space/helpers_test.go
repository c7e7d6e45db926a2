// SPDX-License-Identifier: MIT
// Package space_test contains shared fixtures for the space tests.

package space_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metricfield/matrix"
	"github.com/katalvlaran/metricfield/space"
)

// fdStep is the central-difference step in XYZ units.
const fdStep = 1e-6

// samplesXYZ are chromatic XYZ points inside the sRGB gamut; the last one sits
// on the linear branch of the CIE lightness compression.
var samplesXYZ = []space.Vec3{
	{0.3, 0.4, 0.2},
	{0.5, 0.45, 0.6},
	{0.2, 0.1, 0.05},
	{0.18, 0.25, 0.45},
	{0.004, 0.005, 0.002},
}

// alien wraps a built-in space but reports a kind outside the closed set.
type alien struct{ space.Space }

func (alien) Kind() space.Kind { return space.Kind(99) }

// numericJacobian returns ∂f/∂p by central differences as a 3×3 *Dense.
func numericJacobian(t *testing.T, f func(space.Vec3) space.Vec3, p space.Vec3) *matrix.Dense {
	t.Helper()
	vals := make([]float64, 9)
	for col := 0; col < 3; col++ {
		hi, lo := p, p
		hi[col] += fdStep
		lo[col] -= fdStep
		fh, fl := f(hi), f(lo)
		for row := 0; row < 3; row++ {
			vals[row*3+col] = (fh[row] - fl[row]) / (2 * fdStep)
		}
	}
	m, err := matrix.NewDenseFrom(3, 3, vals)
	require.NoError(t, err)

	return m
}

// requireClose asserts a ≈ b element-wise within the given tolerances.
func requireClose(t *testing.T, want, got *matrix.Dense, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtol, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\nwant\n%v\ngot\n%v", want, got)
}

// requireVecClose asserts |a-b| ≤ tol component-wise.
func requireVecClose(t *testing.T, want, got space.Vec3, tol float64) {
	t.Helper()
	for k := range want {
		require.InDeltaf(t, want[k], got[k], tol*math.Max(1, math.Abs(want[k])),
			"component %d: want %v got %v", k, want, got)
	}
}

// stretchAt is G(C) of CIEDE2000 at a CIELAB point.
func stretchAt(lab space.Vec3) float64 {
	c7 := math.Pow(math.Hypot(lab[1], lab[2]), 7)

	return 0.5 * (1 - math.Sqrt(c7/(c7+math.Pow(25, 7))))
}

// frozenLCh maps CIELAB to (L, C', h') with the a' stretch fixed at 1+g.
func frozenLCh(g float64) func(space.Vec3) space.Vec3 {
	return func(lab space.Vec3) space.Vec3 {
		ap := (1 + g) * lab[1]

		return space.Vec3{lab[0], math.Hypot(ap, lab[2]), math.Atan2(lab[2], ap)}
	}
}
