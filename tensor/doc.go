// Package tensor builds metric tensor fields over colour samples and
// re-expresses them between coordinate spaces.
//
// A Field pairs a data.Set of N samples with N symmetric 3×3 matrices, each
// expressed in the basis of one anchor space.Space. The matrix Gᵢ defines the
// local squared colour difference dxᵀ·Gᵢ·dx around sample i.
//
// Re-expression (Field.Query, Field.In) is the congruence transform
//
//	G' = Jᵀ·G·J,   J = ∂(anchor)/∂(target)
//
// so the quadratic form stays the same physical quantity in the new
// coordinates. Jacobians are composed through CIE XYZ by package space.
//
// Constructors:
//
//	Euclidean(sp, set)     identity in sp
//	DEab(set)              identity in CIELAB (ΔE*ab)
//	DEuv(set)              identity in CIELUV (ΔE*uv)
//	DE00(set, w)           local CIEDE2000 form in (L, C', h')
//	PoincareDisk(sp, set)  hyperbolic disk on coordinates 1 and 2 of sp
//
// Build(name, set) selects a constructor by catalogue name.
//
// Numeric policy: formulas are evaluated as-is. Points outside a formula's
// domain (the Poincaré disk boundary, the achromatic axis under a hue
// Jacobian) yield ±Inf/NaN entries, never errors and never clamped values.
package tensor
