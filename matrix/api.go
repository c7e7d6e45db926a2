// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Thin, documented entry points for the operations tensor fields need.
//   - Each facade composes canonical kernels; no loop duplication except where
//     a closed form for 3×3 is clearer than a composition.
//
// AI-Hints:
//   - Congruence(J, G) is the change-of-basis rule for quadratic forms.
//   - QuadForm(G, dx) evaluates the squared line element dxᵀ·G·dx.

package matrix

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewDiagonal returns the square matrix with d on its main diagonal.
//
// Errors:
//   - ErrInvalidDimensions for an empty d.
func NewDiagonal(d ...float64) (*Dense, error) {
	n := len(d)
	D, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, v := range d {
		D.data[i*n+i] = v
	}

	return D, nil
}

// Congruence returns Jᵀ·G·J, the representation of the quadratic form G after
// the change of variables x = J·x'.
// Implementation: Transpose → Mul → Mul (deterministic composition).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (G must be n×n and J n×m).
//
// Complexity: O(n^2·m + n·m^2).
func Congruence(j, g Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(g); err != nil {
		return nil, matrixErrorf(opCongruence, err)
	}
	jt, err := Transpose(j)
	if err != nil {
		return nil, matrixErrorf(opCongruence, err)
	}
	left, err := Mul(jt, g)
	if err != nil {
		return nil, matrixErrorf(opCongruence, err)
	}
	out, err := Mul(left, j)
	if err != nil {
		return nil, matrixErrorf(opCongruence, err)
	}

	return out, nil
}

// QuadForm returns xᵀ·G·x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (G square, len(x) == n).
func QuadForm(g Matrix, x []float64) (float64, error) {
	if err := ValidateSquareNonNil(g); err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}
	gx, err := MatVec(g, x)
	if err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}
	s := ZeroSum
	for i := range x {
		s += x[i] * gx[i]
	}

	return s, nil
}

// EigenSym calls the Jacobi eigen-decomposition with package defaults.
func EigenSym(m Matrix) ([]float64, *Dense, error) {
	return Eigen(m, DefaultEigenTol, DefaultEigenMaxIter)
}

// IsPositiveSemiDefinite reports whether all eigenvalues of the symmetric m
// are ≥ −tol. Errors from the eigen kernel are returned unchanged.
func IsPositiveSemiDefinite(m Matrix, tol float64) (bool, error) {
	eigs, _, err := EigenSym(m)
	if err != nil {
		return false, err
	}
	for _, ev := range eigs {
		if ev < -tol {
			return false, nil
		}
	}

	return true, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for round-trip tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
