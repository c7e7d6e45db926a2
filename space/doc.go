// Package space implements the colour coordinate systems a metric tensor
// field can be expressed in.
//
// Every space is related to CIE XYZ (the canonical linear space, D65 white
// with Y=1) by a smooth invertible map and knows the Jacobian of that map.
// Cross-space Jacobians are composed through XYZ:
//
//	∂T/∂S = (∂T/∂XYZ) · (∂S/∂XYZ)⁻¹
//
// Variants:
//
//	XYZ          identity
//	CIELAB       CIE 1976 L*a*b*          (go-colorful conversions)
//	CIELUV       CIE 1976 L*u*v*          (go-colorful conversions)
//	CIEDE00LCh   L, C', h' of CIEDE2000   (a' = (1+G)·a, then polar)
//	Linear       y = M·x, e.g. LinearSRGB
//
// Look spaces up by name with Lookup; names are listed by Names.
package space
