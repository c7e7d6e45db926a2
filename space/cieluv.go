// SPDX-License-Identifier: MIT

package space

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/metricfield/matrix"
)

type luvSpace struct {
	base
	white Vec3
}

// CIELUV is CIE 1976 L*u*v* relative to D65, L* ∈ [0,100].
var CIELUV Space = NewCIELUV("cieluv", D65)

// NewCIELUV returns a CIELUV space relative to the given reference white.
func NewCIELUV(name string, white Vec3) Space {
	return luvSpace{base: base{name: name, kind: KindCIELUV}, white: white}
}

func (s luvSpace) FromLinear(p Vec3) Vec3 {
	l, u, v := colorful.XyzToLuvWhiteRef(p[0], p[1], p[2], [3]float64(s.white))

	return Vec3{100 * l, 100 * u, 100 * v}
}

func (s luvSpace) ToLinear(p Vec3) Vec3 {
	x, y, z := colorful.LuvToXyzWhiteRef(p[0]/100, p[1]/100, p[2]/100, [3]float64(s.white))

	return Vec3{x, y, z}
}

// JacobianLinear returns ∂(L*,u*,v*)/∂(X,Y,Z) with
// u* = 13·L*·(u'−u'n), v* = 13·L*·(v'−v'n), u' = 4X/D, v' = 9Y/D,
// D = X + 15Y + 3Z. D = 0 (black) yields non-finite entries.
func (s luvSpace) JacobianLinear(p Vec3) *matrix.Dense {
	x, y, z := p[0], p[1], p[2]
	l := s.FromLinear(p)[0]
	dl := 116 * labFPrime(y/s.white[1]) / s.white[1] // ∂L*/∂Y; L* does not depend on X, Z

	d := x + 15*y + 3*z
	d2 := d * d
	up, vp := 4*x/d, 9*y/d
	wd := s.white[0] + 15*s.white[1] + 3*s.white[2]
	un, vn := 4*s.white[0]/wd, 9*s.white[1]/wd

	dupX, dupY, dupZ := 4*(d-x)/d2, -60*x/d2, -12*x/d2
	dvpX, dvpY, dvpZ := -9*y/d2, 9*(d-15*y)/d2, -27*y/d2

	return dense3(
		0, dl, 0,
		13*l*dupX, 13*(dl*(up-un)+l*dupY), 13*l*dupZ,
		13*l*dvpX, 13*(dl*(vp-vn)+l*dvpY), 13*l*dvpZ,
	)
}
