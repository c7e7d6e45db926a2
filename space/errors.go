// SPDX-License-Identifier: MIT
// Package space: sentinel errors. Callers match with errors.Is.

package space

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedSpace indicates that no coordinate transform (and hence no
	// Jacobian) is known between the requested spaces: a nil space, a space
	// outside the closed set, or an unknown registry name.
	ErrUnsupportedSpace = errors.New("space: unsupported space")

	// ErrSingularTransform indicates that a linear space was declared with a
	// non-invertible matrix.
	ErrSingularTransform = errors.New("space: singular linear transform")
)

// spaceErrorf wraps err with an operation tag, preserving it for errors.Is.
func spaceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
