// SPDX-License-Identifier: MIT

package space

import (
	"math"

	"github.com/katalvlaran/metricfield/matrix"
)

const (
	// pow25To7 is 25⁷, the chroma pivot of the CIEDE2000 a' stretch.
	pow25To7 = 6103515625.0

	// lchInverseMaxIter and lchInverseTol bound the fixed-point solve of
	// a' = (1+G(C))·a for a.
	lchInverseMaxIter = 100
	lchInverseTol     = 1e-13
)

type lch00Space struct {
	base
	lab labSpace
}

// CIEDE00LCh is the cylindrical (L, C', h') space of CIEDE2000 built on
// CIELAB/D65. h' is in radians in (−π, π] (atan2 convention, not wrapped).
var CIEDE00LCh Space = NewCIEDE00LCh("ciede00lch", D65)

// NewCIEDE00LCh returns the CIEDE2000 cylinder over CIELAB with the given white.
func NewCIEDE00LCh(name string, white Vec3) Space {
	return lch00Space{
		base: base{name: name, kind: KindCIEDE00LCh},
		lab:  labSpace{base: base{name: name + "-lab", kind: KindCIELAB}, white: white},
	}
}

// stretchG is G(C) = 0.5·(1 − sqrt(C⁷/(C⁷+25⁷))).
func stretchG(c float64) float64 {
	c7 := math.Pow(c, 7)

	return 0.5 * (1 - math.Sqrt(c7/(c7+pow25To7)))
}

func (s lch00Space) FromLinear(p Vec3) Vec3 {
	lab := s.lab.FromLinear(p)
	ap := (1 + stretchG(math.Hypot(lab[1], lab[2]))) * lab[1]

	return Vec3{lab[0], math.Hypot(ap, lab[2]), math.Atan2(lab[2], ap)}
}

func (s lch00Space) ToLinear(p Vec3) Vec3 {
	ap, b := p[1]*math.Cos(p[2]), p[1]*math.Sin(p[2])
	a := ap / 1.25 // G ∈ [0, 0.5]; start mid-range
	var next float64
	for i := 0; i < lchInverseMaxIter; i++ {
		next = ap / (1 + stretchG(math.Hypot(a, b)))
		if math.Abs(next-a) <= lchInverseTol*(1+math.Abs(a)) {
			a = next
			break
		}
		a = next
	}

	return s.lab.ToLinear(Vec3{p[0], a, b})
}

// JacobianLinear returns ∂(L,C',h')/∂(X,Y,Z) as the chain
//
//	P · A · ∂Lab/∂XYZ
//
// where P = ∂(L,C',h')/∂(L,a',b) is the polar map. At C' = 0 P is non-finite.
//
// A = diag(1, 1+G, 1) with G held at the point's chroma: CIEDE2000 evaluates
// one G for both colours of a pair, so for an infinitesimal pair
// Δa' = (1+G)·Δa. This is not the derivative of FromLinear, which also
// differentiates G through the point's own chroma.
func (s lch00Space) JacobianLinear(p Vec3) *matrix.Dense {
	lab := s.lab.FromLinear(p)
	a, b := lab[1], lab[2]
	g := stretchG(math.Hypot(a, b))
	ap := (1 + g) * a
	cp2 := ap*ap + b*b
	cp := math.Sqrt(cp2)

	stretch := dense3(
		1, 0, 0,
		0, 1+g, 0,
		0, 0, 1,
	)
	polar := dense3(
		1, 0, 0,
		0, ap/cp, b/cp,
		0, -b/cp2, ap/cp2,
	)

	pa, _ := matrix.Mul(polar, stretch) // 3×3 shapes are fixed
	j, _ := matrix.Mul(pa, s.lab.JacobianLinear(p))

	return j
}
