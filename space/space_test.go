// SPDX-License-Identifier: MIT

package space_test

import (
	"errors"
	"testing"

	"github.com/jkl1337/go-chromath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metricfield/matrix"
	"github.com/katalvlaran/metricfield/space"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want space.Space
	}{
		{"xyz", space.XYZ},
		{"CIELAB", space.CIELAB},
		{" cieluv ", space.CIELUV},
		{"ciede00lch", space.CIEDE00LCh},
		{"linear-srgb", space.LinearSRGB},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			sp, err := space.Lookup(tc.name)
			require.NoError(t, err)
			assert.True(t, space.Same(tc.want, sp))
		})
	}

	_, err := space.Lookup("hsv")
	require.ErrorIs(t, err, space.ErrUnsupportedSpace)
}

func TestNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"ciede00lch", "cielab", "cieluv", "linear-srgb", "xyz"}, space.Names())
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "xyz", space.KindXYZ.String())
	assert.Equal(t, "cielab", space.KindCIELAB.String())
	assert.Equal(t, "cieluv", space.KindCIELUV.String())
	assert.Equal(t, "ciede00lch", space.KindCIEDE00LCh.String())
	assert.Equal(t, "linear", space.KindLinear.String())
	assert.Equal(t, "unknown", space.Kind(0).String())
}

func TestCheck(t *testing.T) {
	t.Parallel()

	for _, name := range space.Names() {
		sp, err := space.Lookup(name)
		require.NoError(t, err)
		require.NoError(t, space.Check(sp), name)
	}
	require.ErrorIs(t, space.Check(nil), space.ErrUnsupportedSpace)
	require.ErrorIs(t, space.Check(alien{space.XYZ}), space.ErrUnsupportedSpace)
}

func TestSame(t *testing.T) {
	t.Parallel()

	assert.True(t, space.Same(space.CIELAB, space.CIELAB))
	assert.False(t, space.Same(space.CIELAB, space.CIELUV))
	assert.False(t, space.Same(space.CIELAB, nil))
	// Same kind, different white: distinct coordinate systems.
	d50 := space.NewCIELAB("cielab-d50", space.Vec3{0.96422, 1, 0.82521})
	assert.False(t, space.Same(space.CIELAB, d50))

	// A shared name does not make two spaces equal.
	sameName := space.NewCIELAB("cielab", space.Vec3{0.96422, 1, 0.82521})
	assert.False(t, space.Same(space.CIELAB, sameName))
	assert.True(t, space.Same(space.CIELAB, space.NewCIELAB("cielab", space.D65)))

	id := []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}
	rgb1, err := space.NewLinear("rgb", id)
	require.NoError(t, err)
	rgb2, err := space.NewLinear("rgb", id)
	require.NoError(t, err)
	assert.True(t, space.Same(rgb1, rgb1))
	assert.False(t, space.Same(rgb1, rgb2))
}

func TestEmptyMatrix(t *testing.T) {
	t.Parallel()

	ms := space.CIELAB.EmptyMatrix(4)
	require.Len(t, ms, 4)
	for _, m := range ms {
		r, c := m.Shape()
		require.Equal(t, 3, r)
		require.Equal(t, 3, c)
		require.NoError(t, m.Set(0, 0, posInf)) // non-finite values are storable
	}
	assert.Empty(t, space.XYZ.EmptyMatrix(0))
	assert.Empty(t, space.XYZ.EmptyMatrix(-3))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	spaces := []space.Space{space.XYZ, space.CIELAB, space.CIELUV, space.CIEDE00LCh, space.LinearSRGB}
	for _, sp := range spaces {
		sp := sp
		t.Run(sp.Name(), func(t *testing.T) {
			for _, p := range samplesXYZ {
				requireVecClose(t, p, sp.ToLinear(sp.FromLinear(p)), 1e-9)
			}
		})
	}
}

func TestCIELABWhiteAndBlack(t *testing.T) {
	t.Parallel()

	requireVecClose(t, space.Vec3{100, 0, 0}, space.CIELAB.FromLinear(space.D65), 1e-9)
	requireVecClose(t, space.Vec3{100, 0, 0}, space.CIELUV.FromLinear(space.D65), 1e-9)
	requireVecClose(t, space.Vec3{0, 0, 0}, space.CIELAB.FromLinear(space.Vec3{}), 1e-12)
}

// TestCIELABAgainstChromath compares the L*a*b* forward map with an
// independent implementation.
func TestCIELABAgainstChromath(t *testing.T) {
	t.Parallel()

	lab2xyz := chromath.NewLabTransformer(&chromath.IlluminantRefD65)
	for _, p := range samplesXYZ[:4] { // cube-root branch only; the CIE constants differ on the linear branch
		ref := lab2xyz.Invert(chromath.XYZ{p[0], p[1], p[2]})
		got := space.CIELAB.FromLinear(p)
		for k := 0; k < 3; k++ {
			assert.InDelta(t, ref[k], got[k], 5e-3, "point %v component %d", p, k)
		}
	}
}

func TestNewLinear(t *testing.T) {
	t.Parallel()

	sp, err := space.NewLinear("scaled", []float64{2, 0, 0, 0, 4, 0, 0, 0, 8})
	require.NoError(t, err)
	assert.Equal(t, space.KindLinear, sp.Kind())
	requireVecClose(t, space.Vec3{2, 4, 8}, sp.FromLinear(space.Vec3{1, 1, 1}), 1e-15)
	requireVecClose(t, space.Vec3{1, 1, 1}, sp.ToLinear(space.Vec3{2, 4, 8}), 1e-15)

	_, err = space.NewLinear("flat", []float64{1, 2, 3, 2, 4, 6, 0, 0, 1})
	require.True(t, errors.Is(err, space.ErrSingularTransform))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = space.NewLinear("short", []float64{1, 0, 0, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
