// SPDX-License-Identifier: MIT

package tensor

import (
	"github.com/katalvlaran/metricfield/data"
	"github.com/katalvlaran/metricfield/matrix"
	"github.com/katalvlaran/metricfield/space"
)

const opPoincareDisk = "PoincareDisk"

// PoincareDisk returns the hyperbolic Poincaré-disk metric in the plane of
// coordinates 1 and 2 of sp, with coefficient 1 on coordinate 0:
//
//	G = diag(1, s, s),  s = 4 / (1 − x² − y²)²
//
// The boundary x²+y² = 1 is not guarded: it yields +Inf, and points outside
// the disk yield whatever the arithmetic gives.
//
// Errors:
//   - ErrNilSpace, ErrNilData, space.ErrUnsupportedSpace.
func PoincareDisk(sp space.Space, set *data.Set) (*Field, error) {
	if err := checkInputs(sp, set); err != nil {
		return nil, tensorErrorf(opPoincareDisk, err)
	}
	x, err := set.Column(sp, 1)
	if err != nil {
		return nil, tensorErrorf(opPoincareDisk, err)
	}
	y, err := set.Column(sp, 2)
	if err != nil {
		return nil, tensorErrorf(opPoincareDisk, err)
	}

	g := make([]*matrix.Dense, set.Len())
	var d, s float64
	for i := range g {
		d = 1 - x[i]*x[i] - y[i]*y[i]
		s = 4 / (d * d)
		g[i], _ = matrix.NewDiagonal(1, s, s) // three entries, never empty
	}

	return newField(sp, set, g), nil
}
