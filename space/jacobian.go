// SPDX-License-Identifier: MIT

// Package space: cross-space Jacobians and tensor re-expression through XYZ.
package space

import (
	"fmt"

	"github.com/katalvlaran/metricfield/matrix"
)

// Operation tags for error wrapping.
const (
	opJacobian    = "Jacobian"
	opToLinear    = "MetricsToLinear"
	opFromLinear  = "MetricsFromLinear"
	opCheck       = "Check"
	opLookup      = "Lookup"
	opMetricsSize = "metrics/points length"
)

// Check reports whether sp is a member of the closed set of variants.
//
// Errors:
//   - ErrUnsupportedSpace for nil or an unknown kind.
func Check(sp Space) error {
	if sp == nil {
		return spaceErrorf(opCheck, fmt.Errorf("nil space: %w", ErrUnsupportedSpace))
	}
	switch sp.Kind() {
	case KindXYZ, KindCIELAB, KindCIELUV, KindCIEDE00LCh, KindLinear:
		return nil
	default:
		return spaceErrorf(opCheck, fmt.Errorf("%s (%s): %w", sp.Name(), sp.Kind(), ErrUnsupportedSpace))
	}
}

// Same reports whether a and b denote the same coordinate system: equal
// variant, name and parameters (white point, transform). Linear spaces are
// equal only to themselves, so two NewLinear calls never compare equal.
func Same(a, b Space) bool {
	if a == nil || b == nil {
		return false
	}

	return a == b
}

// Jacobian returns, for every XYZ point, ∂(to)/∂(from): the derivative of the
// `to` coordinates with respect to the `from` coordinates,
//
//	J = (∂to/∂XYZ) · (∂from/∂XYZ)⁻¹.
//
// Singular or non-finite intermediate Jacobians produce non-finite entries
// rather than errors.
//
// Errors:
//   - ErrUnsupportedSpace when either space is nil or outside the closed set.
//
// Complexity: O(N).
func Jacobian(from, to Space, xyz []Vec3) ([]*matrix.Dense, error) {
	if err := Check(from); err != nil {
		return nil, spaceErrorf(opJacobian, err)
	}
	if err := Check(to); err != nil {
		return nil, spaceErrorf(opJacobian, err)
	}
	out := make([]*matrix.Dense, len(xyz))
	for i, p := range xyz {
		j, err := jacobianAt(from, to, p)
		if err != nil {
			return nil, spaceErrorf(opJacobian, fmt.Errorf("point %d: %w", i, err))
		}
		out[i] = j
	}

	return out, nil
}

// JacobianAt is Jacobian for a single XYZ point.
func JacobianAt(from, to Space, p Vec3) (*matrix.Dense, error) {
	if err := Check(from); err != nil {
		return nil, spaceErrorf(opJacobian, err)
	}
	if err := Check(to); err != nil {
		return nil, spaceErrorf(opJacobian, err)
	}

	return jacobianAt(from, to, p)
}

func jacobianAt(from, to Space, p Vec3) (*matrix.Dense, error) {
	jt := to.JacobianLinear(p)
	if from.Kind() == KindXYZ {
		return jt, nil
	}
	jfInv, err := matrix.Inverse3(from.JacobianLinear(p))
	if err != nil {
		return nil, err
	}
	if to.Kind() == KindXYZ {
		return jfInv, nil
	}

	return matrix.Mul(jt, jfInv)
}

// MetricsToLinear re-expresses tensors given in sp at the XYZ points xyz as
// tensors in XYZ: G_xyz = Jᵀ·G·J with J = ∂sp/∂XYZ.
//
// Errors:
//   - ErrUnsupportedSpace; matrix.ErrDimensionMismatch for length/shape mismatches.
func MetricsToLinear(sp Space, xyz []Vec3, g []*matrix.Dense) ([]*matrix.Dense, error) {
	if err := Check(sp); err != nil {
		return nil, spaceErrorf(opToLinear, err)
	}
	if len(xyz) != len(g) {
		return nil, spaceErrorf(opToLinear, fmt.Errorf("%s: %w", opMetricsSize, matrix.ErrDimensionMismatch))
	}
	out := make([]*matrix.Dense, len(g))
	for i := range g {
		c, err := matrix.Congruence(sp.JacobianLinear(xyz[i]), g[i])
		if err != nil {
			return nil, spaceErrorf(opToLinear, fmt.Errorf("point %d: %w", i, err))
		}
		out[i] = c
	}

	return out, nil
}

// MetricsFromLinear re-expresses XYZ tensors as tensors in sp:
// G_sp = J⁻ᵀ·G·J⁻¹ with J = ∂sp/∂XYZ.
func MetricsFromLinear(sp Space, xyz []Vec3, g []*matrix.Dense) ([]*matrix.Dense, error) {
	if err := Check(sp); err != nil {
		return nil, spaceErrorf(opFromLinear, err)
	}
	if len(xyz) != len(g) {
		return nil, spaceErrorf(opFromLinear, fmt.Errorf("%s: %w", opMetricsSize, matrix.ErrDimensionMismatch))
	}
	out := make([]*matrix.Dense, len(g))
	for i := range g {
		jInv, err := matrix.Inverse3(sp.JacobianLinear(xyz[i]))
		if err != nil {
			return nil, spaceErrorf(opFromLinear, fmt.Errorf("point %d: %w", i, err))
		}
		c, err := matrix.Congruence(jInv, g[i])
		if err != nil {
			return nil, spaceErrorf(opFromLinear, fmt.Errorf("point %d: %w", i, err))
		}
		out[i] = c
	}

	return out, nil
}
