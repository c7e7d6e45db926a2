// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metricfield/matrix"
	"github.com/katalvlaran/metricfield/space"
	"github.com/katalvlaran/metricfield/tensor"
)

const lchPoints = `
space: ciede00lch
points:
  - [50, 20, 0]
  - [50, 20, 1.5707963267948966]
`

func defaultSettings() computeSettings {
	return computeSettings{metric: metricDE00, target: "ciede00lch", workers: 1, weights: tensor.DefaultWeights()}
}

func TestRunComputeAnchorSpace(t *testing.T) {
	doc, err := runCompute(strings.NewReader(lchPoints), defaultSettings())
	require.NoError(t, err)

	assert.Equal(t, "ciede00lch", doc.Anchor)
	assert.Equal(t, "ciede00lch", doc.Space)
	require.Len(t, doc.Tensors, 2)
	assert.InDelta(t, 1.0, doc.Tensors[0][0][0], 1e-12)
	assert.InDelta(t, 0.27700831, doc.Tensors[0][1][1], 1e-6)
	assert.Equal(t, [3]float64{50, 20, 0}, doc.Points[0])
	assert.Empty(t, doc.Indefinite)
}

func TestIndefinite(t *testing.T) {
	spd, err := matrix.NewDenseFrom(3, 3, []float64{2, 1, 0, 1, 2, 0, 0, 0, 1})
	require.NoError(t, err)
	saddle, err := matrix.NewDenseFrom(3, 3, []float64{1, 2, 0, 2, 1, 0, 0, 0, 1})
	require.NoError(t, err)
	inf, err := matrix.NewDenseFrom(3, 3, []float64{math.Inf(1), 0, 0, 0, -1, 0, 0, 0, 1})
	require.NoError(t, err)

	bad, err := indefinite([]*matrix.Dense{spd, saddle, inf, saddle})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, bad)

	asym, err := matrix.NewDenseFrom(3, 3, []float64{1, 2, 0, 0, 1, 0, 0, 0, 1})
	require.NoError(t, err)
	_, err = indefinite([]*matrix.Dense{asym})
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestRunComputeTargets(t *testing.T) {
	s := defaultSettings()
	s.metric = "dEab"
	s.target = "cieluv"
	s.workers = 2
	in := "points:\n  - [60, 20, -10]\n  - [40, -5, 30]\n"

	doc, err := runCompute(strings.NewReader(in), s)
	require.NoError(t, err)
	assert.Equal(t, "cielab", doc.Anchor)
	assert.Equal(t, "cieluv", doc.Space)
	require.Len(t, doc.Points, 2)
	// Points are reported in the target space.
	luv := space.CIELUV.FromLinear(space.CIELAB.ToLinear(space.Vec3{60, 20, -10}))
	assert.InDeltaSlice(t, luv[:], doc.Points[0][:], 1e-9)
}

func TestRunComputeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		mod  func(*computeSettings)
		want error
	}{
		{"bad space", "space: hsv\npoints: [[1,2,3]]\n", nil, space.ErrUnsupportedSpace},
		{"bad target", lchPoints, func(s *computeSettings) { s.target = "cmyk" }, space.ErrUnsupportedSpace},
		{"bad metric", lchPoints, func(s *computeSettings) { s.metric = "dE94" }, tensor.ErrUnknownMetric},
		{"bad weight", lchPoints, func(s *computeSettings) { s.weights.KC = 0 }, tensor.ErrInvalidWeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := defaultSettings()
			if tc.mod != nil {
				tc.mod(&s)
			}
			_, err := runCompute(strings.NewReader(tc.in), s)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := runCompute(strings.NewReader("points: ["), defaultSettings())
	require.Error(t, err)
	s := defaultSettings()
	s.workers = 0
	_, err = runCompute(strings.NewReader(lchPoints), s)
	require.Error(t, err)
}

func TestWriteDoc(t *testing.T) {
	doc, err := runCompute(strings.NewReader(lchPoints), defaultSettings())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeDoc(&buf, doc, "yaml"))
	var back fieldDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, doc.Tensors, back.Tensors)

	buf.Reset()
	require.NoError(t, writeDoc(&buf, doc, "JSON"))
	var fromJSON fieldDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, doc.Metric, fromJSON.Metric)

	require.ErrorIs(t, writeDoc(&buf, doc, "csv"), errFormat)
}

func TestComputeCommand(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "metricfield.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("format: json\nworkers: 2\n"), 0o600))
	t.Setenv("METRICFIELD_TARGET", "cielab")

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(lchPoints))
	root.SetArgs([]string{"compute", "--config", cfg})

	require.NoError(t, root.Execute())
	var doc fieldDoc
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc)) // format from the config file
	assert.Equal(t, "cielab", doc.Space)                 // target from the environment
	assert.Len(t, doc.Tensors, 2)
}

func TestComputeCommandMissingConfig(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(lchPoints))
	root.SetArgs([]string{"compute", "--config", filepath.Join(t.TempDir(), "absent.yaml")})

	require.Error(t, root.Execute())
}

func TestListCommands(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want []string
	}{
		{[]string{"spaces"}, space.Names()},
		{[]string{"metrics"}, tensor.Names()},
	} {
		root := newRootCmd()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&bytes.Buffer{})
		root.SetArgs(tc.args)
		require.NoError(t, root.Execute())
		for _, name := range tc.want {
			assert.Contains(t, out.String(), name)
		}
	}
}
