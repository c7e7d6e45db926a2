// SPDX-License-Identifier: MIT

package space

import (
	"fmt"

	"github.com/katalvlaran/metricfield/matrix"
)

type linearSpace struct {
	base
	fwd *matrix.Dense // XYZ → space
	inv *matrix.Dense // space → XYZ
}

// LinearSRGB is linear-light sRGB (IEC 61966-2-1 primaries, D65).
var LinearSRGB Space = mustLinear("linear-srgb", []float64{
	3.2406, -1.5372, -0.4986,
	-0.9689, 1.8758, 0.0415,
	0.0557, -0.2040, 1.0570,
})

// NewLinear returns the space y = M·x, where M is the row-major 3×3 matrix
// taking XYZ to the new coordinates.
//
// Errors:
//   - matrix.ErrDimensionMismatch when len(m) != 9.
//   - ErrSingularTransform (wrapping matrix.ErrSingular) when M is not invertible.
func NewLinear(name string, m []float64) (Space, error) {
	fwd, err := matrix.NewDenseFrom(3, 3, m)
	if err != nil {
		return nil, spaceErrorf("NewLinear", err)
	}
	inv, err := matrix.Inverse3Strict(fwd)
	if err != nil {
		return nil, spaceErrorf("NewLinear", fmt.Errorf("%w: %w", ErrSingularTransform, err))
	}

	return linearSpace{base: base{name: name, kind: KindLinear}, fwd: fwd, inv: inv}, nil
}

func mustLinear(name string, m []float64) Space {
	sp, err := NewLinear(name, m)
	if err != nil {
		panic(err)
	}

	return sp
}

func (s linearSpace) FromLinear(p Vec3) Vec3 { return apply(s.fwd, p) }
func (s linearSpace) ToLinear(p Vec3) Vec3   { return apply(s.inv, p) }

func (s linearSpace) JacobianLinear(Vec3) *matrix.Dense { return s.fwd.CloneDense() }
