// SPDX-License-Identifier: MIT

// Package space: the sealed Space interface and its closed set of kinds.
package space

import "github.com/katalvlaran/metricfield/matrix"

// Vec3 is a single colour coordinate triple in some space.
type Vec3 [3]float64

// Kind tags the concrete variant behind a Space. The set is closed: every
// Space value in this module reports one of the constants below.
type Kind int

const (
	// KindXYZ is CIE XYZ, the canonical linear space.
	KindXYZ Kind = iota + 1

	// KindCIELAB is CIE 1976 L*a*b*.
	KindCIELAB

	// KindCIELUV is CIE 1976 L*u*v*.
	KindCIELUV

	// KindCIEDE00LCh is the (L, C', h') cylinder used by CIEDE2000, h' in radians.
	KindCIEDE00LCh

	// KindLinear is any invertible linear image of XYZ (e.g. linear sRGB).
	KindLinear
)

// String returns the lower-case tag of the kind.
func (k Kind) String() string {
	switch k {
	case KindXYZ:
		return "xyz"
	case KindCIELAB:
		return "cielab"
	case KindCIELUV:
		return "cieluv"
	case KindCIEDE00LCh:
		return "ciede00lch"
	case KindLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// Space is a colour coordinate system related to CIE XYZ by a smooth,
// invertible map.
//
// Contract:
//   - ToLinear and FromLinear are mutually inverse on the space's domain.
//   - JacobianLinear(xyz) is ∂(space coordinates)/∂(X,Y,Z) evaluated at the
//     XYZ point xyz, as a fresh 3×3 matrix.
//   - EmptyMatrix(n) allocates n zeroed 3×3 matrices that accept non-finite
//     values.
//
// The interface is sealed; the variants are XYZ, CIELAB, CIELUV, CIEDE00LCh
// and Linear.
type Space interface {
	Name() string
	Kind() Kind
	ToLinear(p Vec3) Vec3
	FromLinear(xyz Vec3) Vec3
	JacobianLinear(xyz Vec3) *matrix.Dense
	EmptyMatrix(n int) []*matrix.Dense

	sealed()
}

// base carries the name/kind bookkeeping shared by every variant.
type base struct {
	name string
	kind Kind
}

func (b base) Name() string { return b.name }
func (b base) Kind() Kind    { return b.kind }
func (b base) sealed()       {}

// EmptyMatrix allocates n zeroed 3×3 tensors. n ≤ 0 yields an empty slice.
func (b base) EmptyMatrix(n int) []*matrix.Dense {
	if n <= 0 {
		return []*matrix.Dense{}
	}
	out := make([]*matrix.Dense, n)
	for i := range out {
		out[i], _ = matrix.NewDenseWithOptions(3, 3, matrix.WithNoValidateNaNInf()) // 3×3 is always valid
	}

	return out
}

// dense3 builds a 3×3 matrix from row-major literals.
func dense3(v ...float64) *matrix.Dense {
	m, _ := matrix.NewDenseFrom(3, 3, v) // callers always pass nine values

	return m
}

// apply returns m·p for a 3×3 m.
func apply(m *matrix.Dense, p Vec3) Vec3 {
	y, _ := matrix.MatVec(m, p[:]) // shapes fixed at construction

	return Vec3{y[0], y[1], y[2]}
}
