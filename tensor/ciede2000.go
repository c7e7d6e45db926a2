// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metricfield/data"
	"github.com/katalvlaran/metricfield/space"
)

const opDE00 = "DE00"

const (
	// pow25To7 is 25⁷, the chroma pivot of the rotation term.
	pow25To7 = 6103515625.0

	deg = math.Pi / 180
)

// Weights are the CIEDE2000 parametric factors kL, kC, kH.
type Weights struct {
	KL, KC, KH float64
}

// DefaultWeights returns the reference conditions kL = kC = kH = 1.
func DefaultWeights() Weights { return Weights{KL: 1, KC: 1, KH: 1} }

// validate rejects non-finite and non-positive factors.
func (w Weights) validate() error {
	for _, kv := range []struct {
		name string
		v    float64
	}{{"kL", w.KL}, {"kC", w.KC}, {"kH", w.KH}} {
		if math.IsNaN(kv.v) || math.IsInf(kv.v, 0) || kv.v <= 0 {
			return fmt.Errorf("%s=%v: %w", kv.name, kv.v, ErrInvalidWeight)
		}
	}

	return nil
}

// DE00 returns the local quadratic approximation of the CIEDE2000 colour
// difference, anchored in space.CIEDE00LCh (L, C', h' with h' in radians).
//
// Implementation:
//   - Stage 1: pull the L, C, h columns once.
//   - Stage 2: evaluate S_L, S_C, T, S_H and R_T as whole-column passes:
//     S_L = 1 + 0.015·(L−50)²/√(20+(L−50)²), S_C = 1 + 0.045·C,
//     T   = 1 − 0.17·cos(h°−30°) + 0.24·cos(2h) + 0.32·cos(3h°+6°) − 0.20·cos(4h°−63°),
//     S_H = 1 + 0.015·C·T, R_C = 2·√(C⁷/(C⁷+25⁷)),
//     Δθ  = 30·exp(−((h°−275)/25)²), R_T = −R_C·sin(2Δθ).
//   - Stage 3: fill G00 = (kL·S_L)⁻², G11 = (kC·S_C)⁻², G22 = C²·(kH·S_H)⁻²,
//     G12 = G21 = ½·C·R_T/(kC·S_C·kH·S_H); other entries stay zero.
//
// h° is h in degrees wrapped into [0, 360). cos(2h) takes the radian hue
// directly, which equals cos(2h°) in degrees.
//
// Behavior highlights:
//   - C = 0 gives R_C = 0 and a zero hue row/column; no error.
//   - Negative L or C is evaluated as-is.
//
// Errors:
//   - ErrNilData, ErrInvalidWeight.
//
// Complexity: O(N).
func DE00(set *data.Set, w Weights) (*Field, error) {
	if set == nil {
		return nil, tensorErrorf(opDE00, ErrNilData)
	}
	if err := w.validate(); err != nil {
		return nil, tensorErrorf(opDE00, err)
	}

	sp := space.CIEDE00LCh
	cols := make([][]float64, 3)
	for k := range cols {
		col, err := set.Column(sp, k)
		if err != nil {
			return nil, tensorErrorf(opDE00, err)
		}
		cols[k] = col
	}
	l, c, h := cols[0], cols[1], cols[2]
	n := len(l)

	hDeg := make([]float64, n)
	for i := range h {
		hDeg[i] = h[i] / deg
		if hDeg[i] < 0 {
			hDeg[i] += 360
		}
	}

	sl := make([]float64, n)
	for i := range l {
		dl2 := (l[i] - 50) * (l[i] - 50)
		sl[i] = 1 + 0.015*dl2/math.Sqrt(20+dl2)
	}

	sc := make([]float64, n)
	for i := range c {
		sc[i] = 1 + 0.045*c[i]
	}

	sh := make([]float64, n)
	for i := range c {
		t := 1 -
			0.17*math.Cos((hDeg[i]-30)*deg) +
			0.24*math.Cos(2*h[i]) +
			0.32*math.Cos((3*hDeg[i]+6)*deg) -
			0.20*math.Cos((4*hDeg[i]-63)*deg)
		sh[i] = 1 + 0.015*c[i]*t
	}

	rt := make([]float64, n)
	for i := range c {
		c7 := math.Pow(c[i], 7)
		rc := 2 * math.Sqrt(c7/(c7+pow25To7))
		dTheta := 30 * math.Exp(-math.Pow((hDeg[i]-275)/25, 2))
		rt[i] = -rc * math.Sin(2*dTheta*deg)
	}

	g := sp.EmptyMatrix(n)
	var wl, wc, wh, cross float64
	for i, m := range g {
		wl = w.KL * sl[i]
		wc = w.KC * sc[i]
		wh = w.KH * sh[i]
		cross = 0.5 * c[i] * rt[i] / (wc * wh)
		_ = m.Set(0, 0, 1/(wl*wl))
		_ = m.Set(1, 1, 1/(wc*wc))
		_ = m.Set(2, 2, c[i]*c[i]/(wh*wh))
		_ = m.Set(1, 2, cross)
		_ = m.Set(2, 1, cross)
	}

	return newField(sp, set, g), nil
}
