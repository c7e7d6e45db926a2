// SPDX-License-Identifier: MIT
// Package tensor: sentinel errors. Callers match with errors.Is; space
// sentinels (space.ErrUnsupportedSpace) and matrix sentinels are passed
// through wrapped.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSpace indicates a nil anchor space.
	ErrNilSpace = errors.New("tensor: nil space")

	// ErrNilData indicates a nil sample set.
	ErrNilData = errors.New("tensor: nil data set")

	// ErrLengthMismatch indicates len(tensors) != number of samples.
	ErrLengthMismatch = errors.New("tensor: tensor count does not match sample count")

	// ErrPointIndex indicates a sample index outside [0, N).
	ErrPointIndex = errors.New("tensor: point index out of range")

	// ErrInvalidWeight indicates a CIEDE2000 parametric factor that is not a
	// finite positive number.
	ErrInvalidWeight = errors.New("tensor: invalid parametric weight")

	// ErrUnknownMetric indicates a catalogue name with no constructor.
	ErrUnknownMetric = errors.New("tensor: unknown metric")
)

// tensorErrorf wraps err with an operation tag.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
