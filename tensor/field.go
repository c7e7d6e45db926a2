// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/metricfield/data"
	"github.com/katalvlaran/metricfield/matrix"
	"github.com/katalvlaran/metricfield/space"
)

const (
	opNew           = "New"
	opAt            = "At"
	opQuery         = "Query"
	opIn            = "In"
	opQuadraticForm = "QuadraticForm"
)

// Field is a metric tensor field: one symmetric 3×3 matrix per sample of a
// data.Set, expressed in the coordinates of an anchor space.
//
// Invariants:
//   - len(tensors) == set.Len(); tensors[i] belongs to sample i.
//   - The anchor space, the set reference and the stored tensors never change
//     after construction.
//   - Accessors and queries return copies.
//
// A Field is safe for concurrent use.
type Field struct {
	sp      space.Space
	set     *data.Set
	tensors []*matrix.Dense

	mu   sync.RWMutex
	memo map[space.Space][]*matrix.Dense // re-expressed tensors by target space
}

// New wraps tensors expressed in sp as a Field over set. The tensors are
// copied; the set is referenced. matrix.WithEpsilon sets the symmetry
// tolerance (default matrix.DefaultEpsilon); it is scaled by the largest
// finite |entry| of each tensor.
//
// Errors:
//   - ErrNilSpace, ErrNilData, ErrLengthMismatch.
//   - space.ErrUnsupportedSpace for a space outside the closed set.
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (tensor not 3×3),
//     matrix.ErrAsymmetry (|Gij−Gji| beyond the scaled tolerance).
//
// Complexity: O(N).
func New(sp space.Space, set *data.Set, tensors []*matrix.Dense, opts ...matrix.Option) (*Field, error) {
	if sp == nil {
		return nil, tensorErrorf(opNew, ErrNilSpace)
	}
	if err := space.Check(sp); err != nil {
		return nil, tensorErrorf(opNew, err)
	}
	if set == nil {
		return nil, tensorErrorf(opNew, ErrNilData)
	}
	if len(tensors) != set.Len() {
		return nil, tensorErrorf(opNew, fmt.Errorf("%d tensors for %d points: %w", len(tensors), set.Len(), ErrLengthMismatch))
	}

	eps := matrix.NewMatrixOptions(opts...).Epsilon()
	own := make([]*matrix.Dense, len(tensors))
	for i, g := range tensors {
		if err := matrix.ValidateShape(g, 3, 3); err != nil {
			return nil, tensorErrorf(opNew, fmt.Errorf("tensor %d: %w", i, err))
		}
		if err := matrix.ValidateSymmetric(g, symmetryTol(g, eps)); err != nil {
			return nil, tensorErrorf(opNew, fmt.Errorf("tensor %d: %w", i, err))
		}
		own[i] = g.CloneDense()
	}

	return newField(sp, set, own), nil
}

// newField assembles a Field from tensors the caller hands over.
func newField(sp space.Space, set *data.Set, tensors []*matrix.Dense) *Field {
	return &Field{sp: sp, set: set, tensors: tensors, memo: make(map[space.Space][]*matrix.Dense)}
}

// symmetryTol scales eps by the largest finite |entry|.
func symmetryTol(g *matrix.Dense, eps float64) float64 {
	scale := 1.0
	for _, v := range g.Values() {
		if a := math.Abs(v); !math.IsInf(a, 0) && a > scale {
			scale = a
		}
	}

	return eps * scale
}

// Space returns the anchor space.
func (f *Field) Space() space.Space { return f.sp }

// Data returns the sample set the field is defined over.
func (f *Field) Data() *data.Set { return f.set }

// Len returns the number of tensors (= samples).
func (f *Field) Len() int { return len(f.tensors) }

// At returns a copy of tensor i.
//
// Errors:
//   - ErrPointIndex.
func (f *Field) At(i int) (*matrix.Dense, error) {
	if i < 0 || i >= len(f.tensors) {
		return nil, tensorErrorf(opAt, fmt.Errorf("i=%d: %w", i, ErrPointIndex))
	}

	return f.tensors[i].CloneDense(), nil
}

// Tensors returns a deep copy of all tensors in the anchor space.
func (f *Field) Tensors() []*matrix.Dense { return cloneAll(f.tensors) }

// Query returns the field's tensors re-expressed in target.
//
// Implementation:
//   - Stage 1: target equal to the anchor → copies of the stored tensors.
//   - Stage 2: memo hit → copies of the memoised result.
//   - Stage 3: J = ∂(anchor)/∂(target) at each sample, G' = Jᵀ·G·J, over
//     WithWorkers(n) contiguous chunks; XYZ at either end routes through
//     space.MetricsToLinear / space.MetricsFromLinear. The result is memoised.
//
// Behavior highlights:
//   - Never mutates the field; every call returns fresh matrices.
//   - Non-finite Jacobians (e.g. hue on the neutral axis) give non-finite
//     tensors, not errors.
//
// Errors:
//   - space.ErrUnsupportedSpace for nil or unknown targets.
//
// Complexity: O(N) per space, O(N) copy on repeat queries.
func (f *Field) Query(target space.Space, opts ...QueryOption) ([]*matrix.Dense, error) {
	out, err := f.query(target, opts...)
	if err != nil {
		return nil, tensorErrorf(opQuery, err)
	}

	return cloneAll(out), nil
}

// In is Query wrapped as a new Field anchored at target over the same set.
func (f *Field) In(target space.Space, opts ...QueryOption) (*Field, error) {
	out, err := f.query(target, opts...)
	if err != nil {
		return nil, tensorErrorf(opIn, err)
	}

	return newField(target, f.set, cloneAll(out)), nil
}

// query returns shared matrices; callers copy before handing them out.
func (f *Field) query(target space.Space, opts ...QueryOption) ([]*matrix.Dense, error) {
	if err := space.Check(target); err != nil {
		return nil, err
	}
	if space.Same(target, f.sp) {
		return f.tensors, nil
	}

	f.mu.RLock()
	cached, ok := f.memo[target]
	f.mu.RUnlock()
	if ok {
		return cached, nil
	}

	o := gatherQueryOptions(opts...)
	xyz := f.set.Linear()
	out := make([]*matrix.Dense, len(f.tensors))

	var eg errgroup.Group
	for _, c := range chunks(len(xyz), o.workers) {
		lo, hi := c[0], c[1]
		eg.Go(func() error {
			gs, err := f.reexpress(target, xyz[lo:hi], f.tensors[lo:hi])
			if err != nil {
				return fmt.Errorf("points [%d,%d): %w", lo, hi, err)
			}
			copy(out[lo:hi], gs)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	if prev, ok := f.memo[target]; ok {
		out = prev
	} else {
		f.memo[target] = out
	}
	f.mu.Unlock()

	return out, nil
}

// reexpress maps anchor tensors g at the XYZ points pts into target. When
// either end is XYZ a single congruence through the canonical space suffices;
// otherwise J = ∂(anchor)/∂(target) and G' = Jᵀ·G·J.
func (f *Field) reexpress(target space.Space, pts []space.Vec3, g []*matrix.Dense) ([]*matrix.Dense, error) {
	switch {
	case target.Kind() == space.KindXYZ:
		return space.MetricsToLinear(f.sp, pts, g)
	case f.sp.Kind() == space.KindXYZ:
		return space.MetricsFromLinear(target, pts, g)
	}

	js, err := space.Jacobian(target, f.sp, pts)
	if err != nil {
		return nil, err
	}
	out := make([]*matrix.Dense, len(js))
	for k, j := range js {
		if out[k], err = matrix.Congruence(j, g[k]); err != nil {
			return nil, fmt.Errorf("point %d: %w", k, err)
		}
	}

	return out, nil
}

// QuadraticForm returns dxᵀ·Gᵢ·dx, the squared line element at sample i for a
// displacement dx in anchor-space coordinates.
//
// Errors:
//   - ErrPointIndex; matrix.ErrDimensionMismatch when len(dx) != 3.
func (f *Field) QuadraticForm(i int, dx []float64) (float64, error) {
	if i < 0 || i >= len(f.tensors) {
		return 0, tensorErrorf(opQuadraticForm, fmt.Errorf("i=%d: %w", i, ErrPointIndex))
	}
	v, err := matrix.QuadForm(f.tensors[i], dx)
	if err != nil {
		return 0, tensorErrorf(opQuadraticForm, err)
	}

	return v, nil
}

// chunks splits [0,n) into at most w contiguous [lo,hi) ranges.
func chunks(n, w int) [][2]int {
	if n == 0 {
		return nil
	}
	if w > n {
		w = n
	}
	size := (n + w - 1) / w
	out := make([][2]int, 0, w)
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		out = append(out, [2]int{lo, hi})
	}

	return out
}

func cloneAll(ms []*matrix.Dense) []*matrix.Dense {
	out := make([]*matrix.Dense, len(ms))
	for i, m := range ms {
		out[i] = m.CloneDense()
	}

	return out
}
