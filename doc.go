// Package metricfield computes metric tensor fields over colour coordinates.
//
// For every colour sample a field holds a symmetric 3×3 matrix G that
// approximates a perceptual colour-difference formula locally as the
// quadratic form dxᵀ·G·dx. Fields are anchored in one coordinate space and
// can be re-expressed in any other supported space through the Jacobian
// congruence transform G' = Jᵀ·G·J.
//
// Subpackages:
//
//	matrix/   dense float64 matrices: Mul, Transpose, Jacobi eigen, closed-form 3×3 inverse, Congruence
//	space/    closed set of colour spaces (XYZ, CIELAB, CIELUV, CIEDE2000 LCh, linear RGB) and their Jacobians
//	data/     immutable sample sets, viewable in any space
//	tensor/   Field, Query/In re-expression, and the metric constructors (ΔE*ab, ΔE*uv, CIEDE2000, Poincaré disk)
//	cmd/metricfield/ command line front end
//
// Quick start:
//
//	set, _ := data.New(space.CIELAB, []space.Vec3{{50, 20, -10}})
//	f, _ := tensor.DE00(set, tensor.DefaultWeights())
//	inXYZ, _ := f.Query(space.XYZ)
//
// Numeric policy: nothing is clamped. A formula evaluated outside its domain
// produces ±Inf/NaN entries that callers can detect with (*matrix.Dense).IsFinite.
package metricfield
