// SPDX-License-Identifier: MIT

package data

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/metricfield/space"
)

const (
	opNew    = "New"
	opGet    = "Get"
	opColumn = "Column"
)

// Set is an immutable, ordered collection of N colour samples.
//
// Implementation:
//   - Stage 1 (New): convert the input points to XYZ once; drop the input copy.
//   - Stage 2 (Get): convert XYZ into the requested space; memoise per space
//     under an RWMutex; hand out copies only.
//
// Invariants:
//   - Len() ≥ 1 and never changes.
//   - Point i is the same physical colour in every space.
type Set struct {
	xyz []space.Vec3

	mu    sync.RWMutex
	cache map[space.Space][]space.Vec3 // keyed by space.Same identity
}

// New builds a Set from points given in sp.
//
// Errors:
//   - ErrNilSpace, ErrEmptySet, space.ErrUnsupportedSpace.
//
// Complexity: O(N).
func New(sp space.Space, points []space.Vec3) (*Set, error) {
	if sp == nil {
		return nil, dataErrorf(opNew, ErrNilSpace)
	}
	if err := space.Check(sp); err != nil {
		return nil, dataErrorf(opNew, err)
	}
	if len(points) == 0 {
		return nil, dataErrorf(opNew, ErrEmptySet)
	}

	xyz := make([]space.Vec3, len(points))
	for i, p := range points {
		xyz[i] = sp.ToLinear(p)
	}
	s := &Set{xyz: xyz, cache: make(map[space.Space][]space.Vec3, 4)}
	if !space.Same(sp, space.XYZ) {
		s.cache[sp] = append([]space.Vec3(nil), points...)
	}

	return s, nil
}

// Len returns the number of samples.
func (s *Set) Len() int { return len(s.xyz) }

// Linear returns a copy of the samples in CIE XYZ.
func (s *Set) Linear() []space.Vec3 {
	return append([]space.Vec3(nil), s.xyz...)
}

// Get returns a copy of the samples expressed in sp.
//
// Errors:
//   - ErrNilSpace, space.ErrUnsupportedSpace.
//
// Complexity: O(N) on the first call per space, O(N) copy afterwards.
func (s *Set) Get(sp space.Space) ([]space.Vec3, error) {
	pts, err := s.view(sp)
	if err != nil {
		return nil, dataErrorf(opGet, err)
	}

	return append([]space.Vec3(nil), pts...), nil
}

// Column returns coordinate k (0, 1 or 2) of every sample in sp as an
// N-length slice aligned with the sample order.
//
// Errors:
//   - ErrNilSpace, space.ErrUnsupportedSpace, ErrColumnIndex.
func (s *Set) Column(sp space.Space, k int) ([]float64, error) {
	if k < 0 || k > 2 {
		return nil, dataErrorf(opColumn, fmt.Errorf("k=%d: %w", k, ErrColumnIndex))
	}
	pts, err := s.view(sp)
	if err != nil {
		return nil, dataErrorf(opColumn, err)
	}
	col := make([]float64, len(pts))
	for i := range pts {
		col[i] = pts[i][k]
	}

	return col, nil
}

// view returns the shared, memoised coordinates in sp. Callers must not
// modify the returned slice.
func (s *Set) view(sp space.Space) ([]space.Vec3, error) {
	if sp == nil {
		return nil, ErrNilSpace
	}
	if err := space.Check(sp); err != nil {
		return nil, err
	}
	if sp.Kind() == space.KindXYZ {
		return s.xyz, nil
	}

	s.mu.RLock()
	pts, ok := s.cache[sp]
	s.mu.RUnlock()
	if ok {
		return pts, nil
	}

	pts = make([]space.Vec3, len(s.xyz))
	for i, p := range s.xyz {
		pts[i] = sp.FromLinear(p)
	}

	s.mu.Lock()
	if prev, ok := s.cache[sp]; ok {
		pts = prev // another goroutine won the race
	} else {
		s.cache[sp] = pts
	}
	s.mu.Unlock()

	return pts, nil
}

