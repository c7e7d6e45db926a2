// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparison kernels behind the public facades.

package matrix

import "math"

// ewAllClose implements AllClose.
// Policy:
//   - rtol, atol must be finite; negatives are normalized to |rtol|, |atol|.
//   - Equal infinities compare equal; NaN compares unequal to everything.
//
// Complexity: Time O(r*c), Space O(1).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough is the scalar predicate shared by both AllClose paths.
func closeEnough(av, bv, rtol, atol float64) bool {
	if math.IsInf(av, 0) || math.IsInf(bv, 0) {
		return av == bv // same-signed infinities only
	}

	return math.Abs(av-bv) <= atol+rtol*math.Abs(bv) // false for NaN
}
