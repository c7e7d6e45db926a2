// Package matrix offers the dense linear algebra behind metric tensor fields.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     opt-in finite-only numeric policy (WithValidateNaNInf).
//   - Canonical kernels: Mul, Transpose, MatVec, Eigen (Jacobi, symmetric),
//     Inverse3 (closed-form 3×3, non-finite propagation).
//   - Facades used by tensor transforms: Congruence (Jᵀ·G·J), QuadForm
//     (xᵀ·G·x), IsPositiveSemiDefinite, AllClose.
//
// Values are never sanitised: NaN and ±Inf produced by a formula evaluated
// outside its domain flow through every arithmetic kernel so that callers can
// detect invalid input regions by inspecting results.
//
// See the tests in this package and in tensor for usage patterns.
package matrix
