// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by tensor-field
// transforms: matrix product, transpose, matrix-vector product, symmetric
// Jacobi eigen-decomposition and the closed-form 3×3 inverse.
//
// Purpose:
//   - Canonical kernels with strict fail-fast validation on shapes.
//   - Numeric faults in VALUES (NaN/±Inf) are never turned into errors by the
//     arithmetic kernels; they propagate to the caller unchanged.
//
// Notes:
//   - All kernels use central validators and wrap errors via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for dot products and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opMatVec     = "MatVec"
	opEigen      = "Eigen"
	opInverse3   = "Inverse3"
	opCongruence = "Congruence"
	opQuadForm   = "QuadForm"
	opAllClose   = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate Dense(a.Rows, b.Cols).
//   - Stage 2: *Dense × *Dense uses the i→k→j flat loop; otherwise At-based i→j→k.
//
// Behavior highlights:
//   - Zero entries of A are NOT skipped: 0·Inf must yield NaN so non-finite
//     Jacobian entries reach the result.
//   - Result inherits A's numeric policy only through defaults (fresh Dense).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int
		av, bv  float64
		acc     float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				acc += av * bv
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[i*cols+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m·x.
//
// Errors:
//   - ErrNilMatrix (nil m or nil x), ErrDimensionMismatch (len(x) != Cols).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var i, j int
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			base := i * cols
			for j = 0; j < cols; j++ {
				y[i] += dm.data[base+j] * x[j]
			}
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol).
//   - Stage 2: repeatedly pick (p,q) with the largest |A[p,q]| (i→j scan) and
//     annihilate it with a plane rotation accumulated into Q.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix, unsorted).
//   - *Dense: Q whose columns are the eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry (validation).
//   - ErrNaNInf when m carries non-finite entries (no spectrum exists).
//   - ErrMatrixEigenFailed when max off-diagonal ≥ tol after maxIter.
//
// Complexity:
//   - Time O(maxIter * n^2) per sweep on Dense, Space O(n^2).
//
// AI-Hints:
//   - Good defaults for 3×3 tensors: DefaultEigenTol, DefaultEigenMaxIter.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := m.Rows()
	a, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = m.At(i, j) // bounds validated above
			if isNonFinite(v) {
				return nil, nil, matrixErrorf(opEigen, ErrNaNInf)
			}
			a.data[i*n+j] = v
		}
	}
	q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var (
		iter             int
		p, r             int
		maxOff, off      float64
		app, arr, apr    float64
		aip, air         float64
		qip, qir         float64
		theta, t, cs, sn float64
	)
	for iter = 0; iter < maxIter; iter++ {
		maxOff = NormZero
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[i*n+j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		app = a.data[p*n+p]
		arr = a.data[r*n+r]
		apr = a.data[p*n+r]
		// θ = (arr−app)/(2*apr); t = sign(θ)/(|θ|+√(θ²+1))
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		cs = 1.0 / math.Sqrt(t*t+1)
		sn = t * cs

		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			air = a.data[i*n+r]
			a.data[i*n+p] = cs*aip - sn*air
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+r] = sn*aip + cs*air
			a.data[r*n+i] = a.data[i*n+r]
		}
		a.data[p*n+p] = cs*cs*app - 2*cs*sn*apr + sn*sn*arr
		a.data[r*n+r] = sn*sn*app + 2*cs*sn*apr + cs*cs*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qir = q.data[i*n+r]
			q.data[i*n+p] = cs*qip - sn*qir
			q.data[i*n+r] = sn*qip + cs*qir
		}
	}

	maxOff = NormZero
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if off = math.Abs(a.data[i*n+j]); off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}

// Inverse3 returns the inverse of a 3×3 matrix via the adjugate/determinant
// closed form.
//
// Behavior highlights:
//   - No pivoting and no singularity error: a zero or non-finite determinant
//     yields ±Inf/NaN entries. Jacobians of colour transforms routinely have
//     a zero leading entry (∂L/∂X = 0), which rules out pivot-free LU.
//   - Use Inverse3Strict when singularity must be an error.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shape must be 3×3).
//
// Complexity:
//   - Time O(1), Space O(1).
func Inverse3(m Matrix) (*Dense, error) {
	if err := ValidateShape(m, 3, 3); err != nil {
		return nil, matrixErrorf(opInverse3, err)
	}
	var e [9]float64
	if dm, ok := m.(*Dense); ok {
		copy(e[:], dm.data)
	} else {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				e[i*3+j], _ = m.At(i, j)
			}
		}
	}

	// cofactors of the first row give the determinant
	c00 := e[4]*e[8] - e[5]*e[7]
	c01 := e[5]*e[6] - e[3]*e[8]
	c02 := e[3]*e[7] - e[4]*e[6]
	det := e[0]*c00 + e[1]*c01 + e[2]*c02
	inv := 1.0 / det

	return &Dense{r: 3, c: 3, data: []float64{
		c00 * inv, (e[2]*e[7] - e[1]*e[8]) * inv, (e[1]*e[5] - e[2]*e[4]) * inv,
		c01 * inv, (e[0]*e[8] - e[2]*e[6]) * inv, (e[2]*e[3] - e[0]*e[5]) * inv,
		c02 * inv, (e[1]*e[6] - e[0]*e[7]) * inv, (e[0]*e[4] - e[1]*e[3]) * inv,
	}}, nil
}

// Inverse3Strict is Inverse3 that reports ErrSingular for a zero or
// non-finite determinant instead of returning non-finite entries.
func Inverse3Strict(m Matrix) (*Dense, error) {
	inv, err := Inverse3(m)
	if err != nil {
		return nil, err
	}
	if !inv.IsFinite() {
		return nil, matrixErrorf(opInverse3, ErrSingular)
	}

	return inv, nil
}
