// SPDX-License-Identifier: MIT

package tensor

import (
	"github.com/katalvlaran/metricfield/data"
	"github.com/katalvlaran/metricfield/space"
)

const opEuclidean = "Euclidean"

// Euclidean returns the field whose tensor is the 3×3 identity at every
// sample: distance is the Euclidean norm of coordinate differences in sp.
//
// Errors:
//   - ErrNilSpace, ErrNilData, space.ErrUnsupportedSpace.
func Euclidean(sp space.Space, set *data.Set) (*Field, error) {
	if err := checkInputs(sp, set); err != nil {
		return nil, tensorErrorf(opEuclidean, err)
	}
	g := sp.EmptyMatrix(set.Len())
	for _, m := range g {
		for k := 0; k < 3; k++ {
			_ = m.Set(k, k, 1) // 3×3, in range
		}
	}

	return newField(sp, set, g), nil
}

// DEab is the CIE 1976 ΔE*ab metric: Euclidean in CIELAB.
func DEab(set *data.Set) (*Field, error) { return Euclidean(space.CIELAB, set) }

// DEuv is the CIE 1976 ΔE*uv metric: Euclidean in CIELUV.
func DEuv(set *data.Set) (*Field, error) { return Euclidean(space.CIELUV, set) }

// checkInputs validates the arguments every constructor shares.
func checkInputs(sp space.Space, set *data.Set) error {
	if sp == nil {
		return ErrNilSpace
	}
	if err := space.Check(sp); err != nil {
		return err
	}
	if set == nil {
		return ErrNilData
	}

	return nil
}
