// SPDX-License-Identifier: MIT
// Package data: sentinel errors. Callers match with errors.Is.

package data

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSpace indicates a nil space argument.
	ErrNilSpace = errors.New("data: nil space")

	// ErrEmptySet indicates a set constructed without points.
	ErrEmptySet = errors.New("data: empty point set")

	// ErrColumnIndex indicates a coordinate index outside [0,3).
	ErrColumnIndex = errors.New("data: coordinate index out of range")
)

// dataErrorf wraps err with an operation tag.
func dataErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
