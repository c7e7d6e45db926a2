// SPDX-License-Identifier: MIT

package space

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/metricfield/matrix"
)

const (
	// labEpsilon is the CIE threshold (6/29)³ between the cube-root and the
	// linear branch of the lightness compression.
	labEpsilon = 216.0 / 24389.0

	// labKappa is (29/3)³; κ/116 is the slope of the linear branch.
	labKappa = 24389.0 / 27.0
)

type labSpace struct {
	base
	white Vec3
}

// CIELAB is CIE 1976 L*a*b* relative to D65, L* ∈ [0,100].
var CIELAB Space = NewCIELAB("cielab", D65)

// NewCIELAB returns a CIELAB space relative to the given reference white.
func NewCIELAB(name string, white Vec3) Space {
	return labSpace{base: base{name: name, kind: KindCIELAB}, white: white}
}

func (s labSpace) FromLinear(p Vec3) Vec3 {
	l, a, b := colorful.XyzToLabWhiteRef(p[0], p[1], p[2], [3]float64(s.white))

	return Vec3{100 * l, 100 * a, 100 * b}
}

func (s labSpace) ToLinear(p Vec3) Vec3 {
	x, y, z := colorful.LabToXyzWhiteRef(p[0]/100, p[1]/100, p[2]/100, [3]float64(s.white))

	return Vec3{x, y, z}
}

// JacobianLinear returns ∂(L*,a*,b*)/∂(X,Y,Z):
//
//	| 0           116·f'y/Yn    0          |
//	| 500·f'x/Xn  −500·f'y/Yn   0          |
//	| 0           200·f'y/Yn   −200·f'z/Zn |
func (s labSpace) JacobianLinear(p Vec3) *matrix.Dense {
	dfx := labFPrime(p[0]/s.white[0]) / s.white[0]
	dfy := labFPrime(p[1]/s.white[1]) / s.white[1]
	dfz := labFPrime(p[2]/s.white[2]) / s.white[2]

	return dense3(
		0, 116*dfy, 0,
		500*dfx, -500*dfy, 0,
		0, 200*dfy, -200*dfz,
	)
}

// labFPrime is the derivative of the CIE lightness compression f(t).
func labFPrime(t float64) float64 {
	if t > labEpsilon {
		c := math.Cbrt(t)

		return 1 / (3 * c * c)
	}

	return labKappa / 116
}
