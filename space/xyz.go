// SPDX-License-Identifier: MIT

package space

import "github.com/katalvlaran/metricfield/matrix"

// D65 is the reference white used by the CIE spaces, Y normalised to 1.
var D65 = Vec3{0.95047, 1.00000, 1.08883}

type xyzSpace struct{ base }

// XYZ is the canonical linear space. All transforms route through it.
var XYZ Space = xyzSpace{base{name: "xyz", kind: KindXYZ}}

func (xyzSpace) ToLinear(p Vec3) Vec3   { return p }
func (xyzSpace) FromLinear(p Vec3) Vec3 { return p }

func (xyzSpace) JacobianLinear(Vec3) *matrix.Dense {
	I, _ := matrix.NewIdentity(3)

	return I
}
